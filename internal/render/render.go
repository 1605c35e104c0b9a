// Package render turns notification events into human-readable content.
//
// Templates are grouped in families: chat (Telegram HTML), plain (push, SMS
// and e-mail bodies) and grouped (periodic summaries). Each template is named
// "{family}.{type_code}". The defaults are embedded in the binary and any of
// them can be redefined by dropping a file with the family name
// (chat.tmpl, plain.tmpl or grouped.tmpl) in a template directory.
package render

import (
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"github.com/gabapcia/valwatch/internal/notification"
)

// ErrNotImplemented is returned when no template exists for a type code and
// family.
var ErrNotImplemented = errors.New("template not implemented")

//go:embed templates/*.tmpl
var defaultTemplates embed.FS

// Family selects the template set used for a channel or delivery mode.
type Family string

const (
	FamilyChat    Family = "chat"
	FamilyPlain   Family = "plain"
	FamilyGrouped Family = "grouped"
)

// Content is a rendered message.
type Content struct {
	Subject string
	Body    string
	HTML    bool
}

// Renderer renders events.
type Renderer interface {
	// Render executes the "{family}.{typeCode}" template with ctx.
	Render(typeCode notification.TypeCode, family Family, ctx Context) (string, error)

	// RenderSingle renders one event with the chat or plain family.
	RenderSingle(network notification.Network, ev notification.Event, family Family) (Content, error)

	// RenderGroup renders events of the same type code, in the given order,
	// as a single grouped summary.
	RenderGroup(network notification.Network, typeCode notification.TypeCode, events []notification.Event) (Content, error)
}

type renderer struct {
	chat    *htmltemplate.Template
	plain   *texttemplate.Template
	grouped *texttemplate.Template
}

var _ Renderer = (*renderer)(nil)

type config struct {
	templateDir string
}

// Option configures the renderer.
type Option func(*config)

// WithTemplateDir loads template overrides from dir.
func WithTemplateDir(dir string) Option {
	return func(c *config) {
		c.templateDir = dir
	}
}

// override returns the content of the family override in dir, or nil when
// there is none.
func override(dir string, family Family) ([]byte, error) {
	if dir == "" {
		return nil, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, string(family)+".tmpl"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	return data, err
}

func loadText(family Family, dir string) (*texttemplate.Template, error) {
	base, err := defaultTemplates.ReadFile("templates/" + string(family) + ".tmpl")
	if err != nil {
		return nil, err
	}

	t, err := texttemplate.New(string(family)).Funcs(texttemplate.FuncMap(funcs)).Parse(string(base))
	if err != nil {
		return nil, fmt.Errorf("parse %s templates: %w", family, err)
	}

	custom, err := override(dir, family)
	if err != nil {
		return nil, err
	}
	if custom != nil {
		if t, err = t.Parse(string(custom)); err != nil {
			return nil, fmt.Errorf("parse %s overrides: %w", family, err)
		}
	}

	return t, nil
}

func loadHTML(family Family, dir string) (*htmltemplate.Template, error) {
	base, err := defaultTemplates.ReadFile("templates/" + string(family) + ".tmpl")
	if err != nil {
		return nil, err
	}

	t, err := htmltemplate.New(string(family)).Funcs(htmltemplate.FuncMap(funcs)).Parse(string(base))
	if err != nil {
		return nil, fmt.Errorf("parse %s templates: %w", family, err)
	}

	custom, err := override(dir, family)
	if err != nil {
		return nil, err
	}
	if custom != nil {
		if t, err = t.Parse(string(custom)); err != nil {
			return nil, fmt.Errorf("parse %s overrides: %w", family, err)
		}
	}

	return t, nil
}

var funcs = map[string]any{
	"plural": func(n int, one, many string) string {
		if n == 1 {
			return one
		}
		return many
	},
}

func templateName(typeCode notification.TypeCode, family Family) string {
	return string(family) + "." + string(typeCode)
}

func (r *renderer) Render(typeCode notification.TypeCode, family Family, ctx Context) (string, error) {
	var (
		buf  strings.Builder
		name = templateName(typeCode, family)
		err  error
	)

	switch family {
	case FamilyChat:
		t := r.chat.Lookup(name)
		if t == nil {
			return "", fmt.Errorf("%w: %s", ErrNotImplemented, name)
		}
		err = t.Execute(&buf, ctx)
	case FamilyPlain, FamilyGrouped:
		set := r.plain
		if family == FamilyGrouped {
			set = r.grouped
		}

		t := set.Lookup(name)
		if t == nil {
			return "", fmt.Errorf("%w: %s", ErrNotImplemented, name)
		}
		err = t.Execute(&buf, ctx)
	default:
		return "", fmt.Errorf("%w: unknown family %q", ErrNotImplemented, family)
	}

	if err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}

	return strings.TrimSpace(buf.String()), nil
}

func (r *renderer) RenderSingle(network notification.Network, ev notification.Event, family Family) (Content, error) {
	ctx, err := NewContext(network, ev)
	if err != nil {
		return Content{}, err
	}

	body, err := r.Render(ev.Type, family, ctx)
	if err != nil {
		return Content{}, err
	}

	subject := fmt.Sprintf("%s: %s", network.DisplayName, Title(ev.Type))
	if short, ok := ctx["address_short"].(string); ok {
		subject += " (" + short + ")"
	}

	return Content{
		Subject: subject,
		Body:    body,
		HTML:    family == FamilyChat,
	}, nil
}

func (r *renderer) RenderGroup(network notification.Network, typeCode notification.TypeCode, events []notification.Event) (Content, error) {
	items := make([]Context, 0, len(events))
	for _, ev := range events {
		item, err := NewContext(network, ev)
		if err != nil {
			return Content{}, err
		}
		items = append(items, item)
	}

	ctx := baseContext(network, typeCode)
	ctx["items"] = items
	ctx["count"] = len(items)

	body, err := r.Render(typeCode, FamilyGrouped, ctx)
	if err != nil {
		return Content{}, err
	}

	return Content{
		Subject: fmt.Sprintf("%s: %s (%d)", network.DisplayName, Title(typeCode), len(items)),
		Body:    body,
	}, nil
}

// New loads the embedded templates and the overrides found in the
// configured template directory.
func New(opts ...Option) (*renderer, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	chat, err := loadHTML(FamilyChat, cfg.templateDir)
	if err != nil {
		return nil, err
	}

	plain, err := loadText(FamilyPlain, cfg.templateDir)
	if err != nil {
		return nil, err
	}

	grouped, err := loadText(FamilyGrouped, cfg.templateDir)
	if err != nil {
		return nil, err
	}

	return &renderer{
		chat:    chat,
		plain:   plain,
		grouped: grouped,
	}, nil
}
