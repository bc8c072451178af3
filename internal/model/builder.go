package model

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	pkgconfig "github.com/goliatone/go-contactform/pkg/config"
)

const (
	// EnctypeURLEncoded is used when submissions post to a form backend.
	EnctypeURLEncoded = "application/x-www-form-urlencoded"
	// EnctypeTextPlain is used for mailto-routed submissions so mail clients
	// receive a readable body.
	EnctypeTextPlain = "text/plain"
)

// Options tunes builder behaviour.
type Options struct {
	// Labeler rewrites question labels before they reach the model. Defaults
	// to the identity function.
	Labeler func(string) string
}

func defaultOptions() Options {
	return Options{
		Labeler: func(label string) string { return label },
	}
}

// Builder converts validated configurations into form models.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	return &Builder{opts: opts}
}

// Build transforms a configuration into a FormModel suitable for rendering.
// The configuration is validated first so a malformed document never produces
// a partially built form.
func (b *Builder) Build(cfg pkgconfig.Config) (FormModel, error) {
	if err := pkgconfig.Validate(cfg); err != nil {
		return FormModel{}, fmt.Errorf("model builder: %w", err)
	}

	form := FormModel{
		Title:      cfg.Title,
		Subject:    cfg.Subject,
		Email:      cfg.Email,
		BackendURL: cfg.BackendURL(),
		Method:     "POST",
	}

	if form.BackendURL != "" {
		form.Action = form.BackendURL
		form.Enctype = EnctypeURLEncoded
	} else {
		form.Action = mailtoAction(cfg.Email, cfg.Subject)
		form.Enctype = EnctypeTextPlain
	}

	form.Fields = make([]Field, 0, len(cfg.Questions))
	for _, question := range cfg.Questions {
		form.Fields = append(form.Fields, b.buildField(question))
	}

	if err := validateForm(form); err != nil {
		return FormModel{}, err
	}
	return form, nil
}

func (b *Builder) buildField(q pkgconfig.Question) Field {
	field := Field{
		Label:    b.opts.Labeler(q.Label),
		Name:     q.Name,
		Type:     string(q.Type),
		Required: q.Required,
		Custom:   customAttrs(q.Custom),
	}

	if q.Type != pkgconfig.TypeSelectbox {
		// Options on non-selectbox questions were already warned about
		// during validation; the builder ignores them.
		return field
	}

	field.Multiple = q.Multiple()
	field.Options = make([]Option, 0, len(q.Options))
	for _, opt := range q.Options {
		option := Option{
			Label:    opt.Label,
			Value:    opt.Value,
			Selected: opt.Selected,
			Disabled: opt.Disabled,
		}
		if option.Placeholder() {
			field.HasPlaceholder = true
		}
		field.Options = append(field.Options, option)
	}
	return field
}

// customAttrs flattens the custom attribute map into a deterministic,
// name-sorted attribute list. Boolean false drops the attribute entirely,
// matching how absent boolean attributes behave in markup.
func customAttrs(custom map[string]any) []Attr {
	if len(custom) == 0 {
		return nil
	}

	names := make([]string, 0, len(custom))
	for name := range custom {
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]Attr, 0, len(names))
	for _, name := range names {
		switch value := custom[name].(type) {
		case bool:
			if value {
				attrs = append(attrs, Attr{Name: name, Boolean: true})
			}
		case string:
			attrs = append(attrs, Attr{Name: name, Value: value})
		}
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

// mailtoAction builds the mailto route with the subject percent-encoded the
// way encodeURIComponent does (spaces become %20, not +).
func mailtoAction(email, subject string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(subject), "+", "%20")
	return "mailto:" + email + "?subject=" + encoded
}
