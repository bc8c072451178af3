package response

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-contactform/pkg/model"
)

// Result is the validity verdict attached to a serialization pass. Fields
// maps offending field names to their messages; a response is only turned
// into a download artifact when Valid is true.
type Result struct {
	Valid  bool
	Fields map[string][]string
}

func (r *Result) flag(name, message string) {
	r.Valid = false
	if r.Fields == nil {
		r.Fields = make(map[string][]string)
	}
	r.Fields[name] = append(r.Fields[name], message)
}

// SerializerOption configures a Serializer.
type SerializerOption func(*Serializer)

// WithRequiredMessage overrides the message recorded for blank required
// fields.
func WithRequiredMessage(message string) SerializerOption {
	return func(s *Serializer) {
		if strings.TrimSpace(message) != "" {
			s.requiredMessage = message
		}
	}
}

// Serializer extracts a FormResponse from submitted values. Serialization is
// pure: the same form and values always produce the same response, so
// repeated passes without new input are identical.
type Serializer struct {
	requiredMessage string
}

// NewSerializer constructs a Serializer applying any provided options.
func NewSerializer(options ...SerializerOption) *Serializer {
	s := &Serializer{
		requiredMessage: "this field is required",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Serialize walks the form's fields in document order, resolves each field's
// submitted value (scalar, or ordered list for multi-select controls), checks
// required fields, and records every resolved value under the field's stored
// label regardless of validity. Blank detection trims scalars and treats an
// empty list as blank; recorded values keep their original spacing.
func (s *Serializer) Serialize(form model.FormModel, values url.Values) (FormResponse, Result, error) {
	if len(form.Fields) == 0 {
		return FormResponse{}, Result{}, errors.New("response: form has no fields")
	}

	resp := FormResponse{Title: form.Title}
	result := Result{Valid: true}

	for _, field := range form.Fields {
		if field.Multiple {
			selected := selectedValues(values[field.Name])
			if field.Required && len(selected) == 0 {
				result.flag(field.Name, s.requiredMessage)
			}
			resp.record(Entry{Label: field.Label, Values: selected, List: true})
			continue
		}

		value := values.Get(field.Name)
		if field.Required && strings.TrimSpace(value) == "" {
			result.flag(field.Name, s.requiredMessage)
		}
		resp.record(Entry{Label: field.Label, Value: value})
	}

	return resp, result, nil
}

// SerializePairs is a convenience for non-HTTP callers (the CLI, the TUI
// renderer) holding name=value pairs instead of url.Values.
func (s *Serializer) SerializePairs(form model.FormModel, pairs []string) (FormResponse, Result, error) {
	values := url.Values{}
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(name) == "" {
			return FormResponse{}, Result{}, fmt.Errorf("response: malformed pair %q, want name=value", pair)
		}
		values.Add(name, value)
	}
	return s.Serialize(form, values)
}

// selectedValues keeps the submission order of a multi-select and drops
// placeholder entries (empty values). A disabled placeholder never reaches
// the submitted values in a browser, but non-browser callers may still hand
// one in.
func selectedValues(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, value := range raw {
		if value == "" {
			continue
		}
		out = append(out, value)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
