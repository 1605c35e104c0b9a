// Package config loads the process configuration from VALWATCH_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/valwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix.
const Prefix = "VALWATCH"

type Redis struct {
	Addr      string `default:"localhost:6379" validate:"required,hostname_port"`
	Username  string
	Password  string
	DB        int    `default:"0" validate:"gte=0"`
	KeyPrefix string `split_words:"true" validate:"required"`
}

type Postgres struct {
	DSN          string `validate:"required"`
	MaxOpenConns int    `split_words:"true" default:"10" validate:"gt=0"`
}

type Node struct {
	URL     string        `validate:"required,url"`
	Timeout time.Duration `default:"10s" validate:"gt=0"`
}

type Generator struct {
	BatchSize  int    `split_words:"true" default:"500" validate:"gt=0"`
	Workers    int    `default:"8" validate:"gt=0"`
	MaxCatchUp uint64 `split_words:"true" default:"100" validate:"gt=0"`
}

type Scheduler struct {
	Interval time.Duration `default:"1s" validate:"gt=0"`
	HourSpec string        `split_words:"true" default:"0 * * * *" validate:"required"`
	DaySpec  string        `split_words:"true" default:"0 0 * * *" validate:"required"`
	Workers  int           `default:"8" validate:"gt=0"`
}

type Telegram struct {
	Token   string
	BaseURL string `split_words:"true"`
}

// Enabled reports whether the channel has credentials.
func (t Telegram) Enabled() bool { return t.Token != "" }

type APNS struct {
	KeyFile string `split_words:"true" validate:"required_with=KeyID"`
	KeyID   string `split_words:"true" validate:"required_with=KeyFile"`
	TeamID  string `split_words:"true" validate:"required_with=KeyFile"`
	Topic   string `validate:"required_with=KeyFile"`
	Sandbox bool
}

func (a APNS) Enabled() bool { return a.KeyFile != "" }

type FCM struct {
	ServerKey string `split_words:"true"`
	URL       string
}

func (f FCM) Enabled() bool { return f.ServerKey != "" }

type SMTP struct {
	Host     string
	Port     int `default:"587"`
	Username string
	Password string
	From     string `validate:"required_with=Host"`
}

func (s SMTP) Enabled() bool { return s.Host != "" }

type Twilio struct {
	AccountSID string `split_words:"true" validate:"required_with=AuthToken"`
	AuthToken  string `split_words:"true" validate:"required_with=AccountSID"`
	From       string `validate:"required_with=AccountSID"`
	BaseURL    string `split_words:"true"`
}

func (t Twilio) Enabled() bool { return t.AccountSID != "" }

// Config is the full process configuration. Every command reads the same
// variables; the sections a command does not use are ignored.
type Config struct {
	LogLevel     string        `split_words:"true" default:"info" validate:"oneof=debug info warn error"`
	ServiceName  string        `split_words:"true" default:"valwatch"`
	Telemetry    bool          `default:"false"`
	RestartDelay time.Duration `split_words:"true" default:"5s" validate:"gt=0"`
	TemplateDir  string        `split_words:"true"`

	Network   string `default:"polkadot" validate:"required"`
	Redis     Redis
	Postgres  Postgres
	Node      Node
	Generator Generator
	Scheduler Scheduler

	Telegram Telegram
	APNS     APNS
	FCM      FCM
	SMTP     SMTP
	Twilio   Twilio
}

// Load reads and validates the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
