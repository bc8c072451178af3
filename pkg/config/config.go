package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// QuestionType names the control rendered for a question. The token set is
// fixed: anything outside it fails validation rather than falling back to a
// plain text input.
type QuestionType string

const (
	TypeText          QuestionType = "text"
	TypeEmail         QuestionType = "email"
	TypeDate          QuestionType = "date"
	TypeDatetimeLocal QuestionType = "datetime-local"
	TypeNumber        QuestionType = "number"
	TypeSelectbox     QuestionType = "selectbox"
	TypeTel           QuestionType = "tel"
	TypeTextarea      QuestionType = "textarea"
	TypeTime          QuestionType = "time"
	TypeURL           QuestionType = "url"
)

var knownTypes = map[QuestionType]struct{}{
	TypeText:          {},
	TypeEmail:         {},
	TypeDate:          {},
	TypeDatetimeLocal: {},
	TypeNumber:        {},
	TypeSelectbox:     {},
	TypeTel:           {},
	TypeTextarea:      {},
	TypeTime:          {},
	TypeURL:           {},
}

// Known reports whether the type token belongs to the recognized set.
func (t QuestionType) Known() bool {
	_, ok := knownTypes[t]
	return ok
}

// Option describes one choice inside a selectbox question.
type Option struct {
	Label    string `json:"label" validate:"required"`
	Value    string `json:"value"`
	Selected bool   `json:"selected,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Placeholder reports whether the option is a "please select" prompt: an
// empty-valued, disabled option that starts out selected.
func (o Option) Placeholder() bool {
	return o.Value == "" && o.Disabled && o.Selected
}

// Question describes one form field. Options are meaningful only for
// selectbox questions; Custom carries arbitrary attribute name/value pairs
// applied verbatim to the rendered control.
type Question struct {
	Label    string         `json:"label" validate:"required"`
	Name     string         `json:"name" validate:"required"`
	Type     QuestionType   `json:"type" validate:"required"`
	Required bool           `json:"required"`
	Options  []Option       `json:"options,omitempty" validate:"dive"`
	Custom   map[string]any `json:"custom,omitempty"`
}

// Multiple reports whether the question opts into multi-select semantics via
// custom.multiple. Both boolean true and the string "multiple"/"true" count,
// matching the loose typing of the custom attribute escape hatch.
func (q Question) Multiple() bool {
	raw, ok := q.Custom["multiple"]
	if !ok {
		return false
	}
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		return v == "" || strings.EqualFold(v, "true") || strings.EqualFold(v, "multiple")
	default:
		return false
	}
}

// Config is the parsed contact-form configuration document.
type Config struct {
	Subject        string     `json:"subject" validate:"required"`
	Title          string     `json:"title" validate:"required"`
	Email          string     `json:"email" validate:"required,email"`
	FormBackendURL *string    `json:"form_backend_url,omitempty" validate:"omitempty,url"`
	Questions      []Question `json:"questions" validate:"dive"`
}

// BackendURL returns the configured form backend, or "" when submissions
// should be routed over mailto.
func (c Config) BackendURL() string {
	if c.FormBackendURL == nil {
		return ""
	}
	return strings.TrimSpace(*c.FormBackendURL)
}

// Parse decodes a Document into a Config without validating it. Callers that
// need the degrade-on-bad-config behavior should follow up with Validate.
func Parse(doc Document) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(doc.Raw(), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", locationOrDefault(doc), err)
	}
	return cfg, nil
}

// ParseAndValidate decodes and validates in one step, the common path for the
// orchestrator and the CLI.
func ParseAndValidate(doc Document) (Config, error) {
	cfg, err := Parse(doc)
	if err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config: validate %s: %w", locationOrDefault(doc), err)
	}
	return cfg, nil
}

func locationOrDefault(doc Document) string {
	if loc := doc.Location(); loc != "" {
		return loc
	}
	return "document"
}
