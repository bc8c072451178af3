package vanilla

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
	rendertemplate "github.com/goliatone/go-contactform/pkg/render/template"
	gotemplate "github.com/goliatone/go-contactform/pkg/render/template/gotemplate"
)

// ErrorPageMessage is the text shown in place of the form when configuration
// loading fails. The surrounding container stays hidden so nothing half-built
// is visible.
const ErrorPageMessage = "Error loading configuration"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits a standalone HTML page: the configured questions as labeled
// controls inside a <form> wired to the resolved submission route, plus the
// embedded browser runtime that handles the download path.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	errors := render.MapErrorPayload(form, options.Errors)

	var fields strings.Builder
	for _, field := range form.Fields {
		var value any
		if options.Values != nil {
			value = options.Values[field.Name]
		}
		fields.WriteString(buildFieldMarkup(field, value, errors.Fields[field.Name]))
	}

	instructions := options.Instructions
	if instructions == "" {
		instructions = defaultInstructions(form.MailtoRouted(), form.Email)
	}

	result, err := r.templates.RenderTemplate("templates/page.tmpl", map[string]any{
		"title":          form.Title,
		"instructions":   instructions,
		"action":         form.Action,
		"method":         form.Method,
		"enctype":        form.Enctype,
		"form_errors":    errors.Form,
		"hidden_fields":  buildHiddenFields(options.HiddenFields),
		"fields":         fields.String(),
		"runtime":        runtimeScript(),
		"css_vars_style": cssVarsStyle(options.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// RenderError produces the degraded page shown when configuration loading or
// parsing fails: the form container stays hidden and a single alert paragraph
// carries the message.
func (r *Renderer) RenderError(_ context.Context, message string) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if strings.TrimSpace(message) == "" {
		message = ErrorPageMessage
	}

	result, err := r.templates.RenderTemplate("templates/error.tmpl", map[string]any{
		"title":   "Contact form",
		"message": message,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render error template: %w", err)
	}
	return []byte(result), nil
}

func buildHiddenFields(hidden map[string]string) string {
	sorted := render.SortedHiddenFields(hidden)
	if len(sorted) == 0 {
		return ""
	}

	var builder strings.Builder
	for _, field := range sorted {
		builder.WriteString(`    <input type="hidden" name="`)
		builder.WriteString(html.EscapeString(field.Name))
		builder.WriteString(`" value="`)
		builder.WriteString(html.EscapeString(field.Value))
		builder.WriteString("\">\n")
	}
	return builder.String()
}
