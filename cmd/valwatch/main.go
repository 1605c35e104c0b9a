// Command valwatch monitors a Substrate validator set and notifies
// subscribed users of the changes.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/valwatch/internal/chainevents"
	"github.com/gabapcia/valwatch/internal/config"
	"github.com/gabapcia/valwatch/internal/generator"
	"github.com/gabapcia/valwatch/internal/handlers/cli"
	"github.com/gabapcia/valwatch/internal/infra/blockchain/substrate"
	"github.com/gabapcia/valwatch/internal/infra/notifier/apns"
	"github.com/gabapcia/valwatch/internal/infra/notifier/email"
	"github.com/gabapcia/valwatch/internal/infra/notifier/fcm"
	"github.com/gabapcia/valwatch/internal/infra/notifier/telegram"
	"github.com/gabapcia/valwatch/internal/infra/notifier/twilio"
	"github.com/gabapcia/valwatch/internal/infra/storage/postgres"
	"github.com/gabapcia/valwatch/internal/infra/storage/redis"
	"github.com/gabapcia/valwatch/internal/notification"
	"github.com/gabapcia/valwatch/internal/pkg/logger"
	"github.com/gabapcia/valwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/valwatch/internal/pkg/transport/http"
	"github.com/gabapcia/valwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/valwatch/internal/render"
	"github.com/gabapcia/valwatch/internal/rules"
	"github.com/gabapcia/valwatch/internal/scheduler"
	"github.com/gabapcia/valwatch/internal/sender"
	"github.com/gabapcia/valwatch/internal/snapdiff"
)

// closer collects cleanup funcs and runs them in reverse order.
type closer []func()

func (c *closer) add(fn func()) { *c = append(*c, fn) }

func (c closer) close() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

func openPostgres(ctx context.Context, cfg config.Config, cl *closer) (postgresClient, error) {
	pg, err := postgres.NewClient(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	cl.add(func() { _ = pg.Close() })

	if err := pg.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	return pg, nil
}

// postgresClient is the set of storage contracts the Postgres client serves.
type postgresClient interface {
	notification.RuleStorage
	rules.RuleStorage
	snapdiff.AuditStorage
	chainevents.EventFeed
	scheduler.NotificationStorage
	sender.NetworkStorage
}

func buildGenerator(cfg config.Config) func(ctx context.Context) (generator.Service, func(), error) {
	return func(ctx context.Context) (generator.Service, func(), error) {
		var cl closer

		pg, err := openPostgres(ctx, cfg, &cl)
		if err != nil {
			cl.close()
			return nil, nil, err
		}

		cache, err := redis.NewClient(ctx, redis.Config{
			Addr:      cfg.Redis.Addr,
			Username:  cfg.Redis.Username,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		if err != nil {
			cl.close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		cl.add(func() { _ = cache.Close() })

		httpClient := transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.Node.Timeout),
			transporthttp.WithLogger(logger.Derive(ctx, "component", "node")),
		)
		node := substrate.NewClient(jsonrpc.NewClient(httpClient.StandardClient(), cfg.Node.URL))

		factory := notification.NewFactory(pg)

		engine := snapdiff.New(cfg.Network, cache, factory,
			snapdiff.WithBatchSize(cfg.Generator.BatchSize),
			snapdiff.WithWorkers(cfg.Generator.Workers),
			snapdiff.WithAuditStorage(pg),
		)
		cl.add(engine.Close)

		inspector := chainevents.New(cfg.Network, node, pg, factory,
			chainevents.WithCheckpointStorage(cache),
			chainevents.WithMaxCatchUp(cfg.Generator.MaxCatchUp),
		)

		return generator.New(cfg.Network, cache, engine, inspector), cl.close, nil
	}
}

func buildProviders(ctx context.Context, cfg config.Config) (map[notification.Channel]sender.Provider, error) {
	httpClient := transporthttp.NewClient(
		transporthttp.WithPassthroughErrors(),
		transporthttp.WithLogger(logger.Derive(ctx, "component", "notifier")),
	)
	providers := make(map[notification.Channel]sender.Provider)

	if cfg.Telegram.Enabled() {
		var opts []telegram.Option
		if cfg.Telegram.BaseURL != "" {
			opts = append(opts, telegram.WithBaseURL(cfg.Telegram.BaseURL))
		}
		providers[notification.ChannelTelegram] = telegram.New(cfg.Telegram.Token, httpClient, opts...)
	}

	if cfg.APNS.Enabled() {
		pem, err := os.ReadFile(cfg.APNS.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("read apns key: %w", err)
		}

		key, err := apns.ParseKey(pem)
		if err != nil {
			return nil, fmt.Errorf("parse apns key: %w", err)
		}

		var opts []apns.Option
		if cfg.APNS.Sandbox {
			opts = append(opts, apns.WithBaseURL(apns.DevelopmentURL))
		}

		creds := apns.Credentials{KeyID: cfg.APNS.KeyID, TeamID: cfg.APNS.TeamID, Key: key}
		providers[notification.ChannelAPNS] = apns.New(creds, cfg.APNS.Topic, httpClient, opts...)
	}

	if cfg.FCM.Enabled() {
		var opts []fcm.Option
		if cfg.FCM.URL != "" {
			opts = append(opts, fcm.WithURL(cfg.FCM.URL))
		}
		providers[notification.ChannelFCM] = fcm.New(cfg.FCM.ServerKey, httpClient, opts...)
	}

	if cfg.SMTP.Enabled() {
		p, err := email.New(email.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			return nil, err
		}
		providers[notification.ChannelEmail] = p
	}

	if cfg.Twilio.Enabled() {
		var opts []twilio.Option
		if cfg.Twilio.BaseURL != "" {
			opts = append(opts, twilio.WithBaseURL(cfg.Twilio.BaseURL))
		}
		providers[notification.ChannelSMS] = twilio.New(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.From, httpClient, opts...)
	}

	return providers, nil
}

func buildScheduler(cfg config.Config) func(ctx context.Context) (scheduler.Service, func(), error) {
	return func(ctx context.Context) (scheduler.Service, func(), error) {
		var cl closer

		pg, err := openPostgres(ctx, cfg, &cl)
		if err != nil {
			cl.close()
			return nil, nil, err
		}

		renderer, err := render.New(render.WithTemplateDir(cfg.TemplateDir))
		if err != nil {
			cl.close()
			return nil, nil, fmt.Errorf("load templates: %w", err)
		}

		providers, err := buildProviders(ctx, cfg)
		if err != nil {
			cl.close()
			return nil, nil, err
		}

		if len(providers) == 0 {
			logger.Warn(ctx, "no channel provider configured, every send will fail")
		}

		sched := scheduler.New(pg, sender.New(renderer, pg, providers),
			scheduler.WithInterval(cfg.Scheduler.Interval),
			scheduler.WithHourSpec(cfg.Scheduler.HourSpec),
			scheduler.WithDaySpec(cfg.Scheduler.DaySpec),
			scheduler.WithWorkers(cfg.Scheduler.Workers),
		)

		return sched, cl.close, nil
	}
}

func buildRules(cfg config.Config) func(ctx context.Context) (rules.Service, func(), error) {
	return func(ctx context.Context) (rules.Service, func(), error) {
		var cl closer

		pg, err := openPostgres(ctx, cfg, &cl)
		if err != nil {
			cl.close()
			return nil, nil, err
		}

		return rules.New(pg), cl.close, nil
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Telemetry {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName, cfg.Network)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return cli.Run(ctx, cli.Services{
		RestartDelay: cfg.RestartDelay,
		Generator:    buildGenerator(cfg),
		Scheduler:    buildScheduler(cfg),
		Rules:        buildRules(cfg),
	})
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
