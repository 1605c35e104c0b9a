// Package email delivers messages over SMTP.
package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	"github.com/gabapcia/valwatch/internal/sender"

	"github.com/google/uuid"
)

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type provider struct {
	cfg      Config
	from     *mail.Address
	sendMail sendMailFunc
	now      func() time.Time
}

var _ sender.Provider = (*provider)(nil)

// classify maps an SMTP failure to a sender error. 4xx replies and
// connection failures are transient; 5xx replies are rejections, except the
// mailbox errors which point at the target.
func classify(err error) error {
	var tpErr *textproto.Error
	if !errors.As(err, &tpErr) {
		return fmt.Errorf("%w: %w", sender.ErrTransientProvider, err)
	}

	switch {
	case tpErr.Code >= 400 && tpErr.Code < 500:
		return fmt.Errorf("%w: %w", sender.ErrTransientProvider, err)
	case tpErr.Code == 550 || tpErr.Code == 553:
		return fmt.Errorf("%w: %w", sender.ErrInvalidTarget, err)
	default:
		return fmt.Errorf("%w: %w", sender.ErrProviderRejected, err)
	}
}

func (p *provider) compose(to *mail.Address, subject, body, messageID string) []byte {
	var buf bytes.Buffer

	headers := [][2]string{
		{"From", p.from.String()},
		{"To", to.String()},
		{"Subject", mime.QEncoding.Encode("utf-8", subject)},
		{"Date", p.now().Format(time.RFC1123Z)},
		{"Message-ID", messageID},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/plain; charset=UTF-8"},
		{"Content-Transfer-Encoding", "8bit"},
	}
	for _, h := range headers {
		fmt.Fprintf(&buf, "%s: %s\r\n", h[0], h[1])
	}

	buf.WriteString("\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")

	return buf.Bytes()
}

// Deliver mails msg to the address in msg.Target and returns the generated
// Message-ID.
func (p *provider) Deliver(ctx context.Context, msg sender.Message) (string, error) {
	to, err := mail.ParseAddress(msg.Target)
	if err != nil {
		return "", fmt.Errorf("%w: %w", sender.ErrInvalidTarget, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), p.cfg.Host)

	var auth smtp.Auth
	if p.cfg.Username != "" {
		auth = smtp.PlainAuth("", p.cfg.Username, p.cfg.Password, p.cfg.Host)
	}

	addr := net.JoinHostPort(p.cfg.Host, strconv.Itoa(p.cfg.Port))
	if err := p.sendMail(addr, auth, p.from.Address, []string{to.Address}, p.compose(to, msg.Subject, msg.Body, messageID)); err != nil {
		return "", classify(err)
	}

	return messageID, nil
}

// New creates an SMTP provider. It fails when cfg.From is not a valid
// address.
func New(cfg Config) (*provider, error) {
	from, err := mail.ParseAddress(cfg.From)
	if err != nil {
		return nil, fmt.Errorf("parse sender address: %w", err)
	}

	return &provider{
		cfg:      cfg,
		from:     from,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}, nil
}
