package tui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/response"
)

const skipChoice = "(skip)"

// Renderer implements render.Renderer for terminal-driven sessions: it walks
// the form's questions as interactive prompts, collects the answers, and
// serializes them with the same pipeline the browser download path uses.
type Renderer struct {
	driver          PromptDriver
	outputFormat    OutputFormat
	serializer      *response.Serializer
	snapshotOptions []response.SnapshotOption
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, snapshot HTML
// output).
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:       driver,
		outputFormat: OutputFormatSnapshotHTML,
		serializer:   response.NewSerializer(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver, err = newSurveyDriver()
		if err != nil {
			return nil, err
		}
	}
	if r.serializer == nil {
		r.serializer = response.NewSerializer()
	}

	return r, nil
}

func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "text/html; charset=utf-8"
	}
}

// Render prompts for each configured question in document order and emits the
// collected response. Required questions are enforced both at prompt time and
// by the serializer's validity check.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	if form.Title != "" {
		if err := r.driver.Info(ctx, form.Title); err != nil {
			return nil, err
		}
	}
	if opts.Instructions != "" {
		if err := r.driver.Info(ctx, opts.Instructions); err != nil {
			return nil, err
		}
	}

	values := url.Values{}
	for _, field := range form.Fields {
		if err := r.promptField(ctx, field, opts.Values, values); err != nil {
			return nil, err
		}
	}

	resp, result, err := r.serializer.Serialize(form, values)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, flaggedFields(result))
	}

	return r.serialize(resp, values)
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, prefill map[string]any, values url.Values) error {
	switch {
	case field.Textarea():
		answer, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: promptMessage(field),
			Default: scalarPrefill(prefill, field.Name),
		})
		if err != nil {
			return err
		}
		values.Set(field.Name, answer)
		return nil

	case field.Selectbox() && field.Multiple:
		labels, optionValues := selectChoices(field, false)
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  promptMessage(field),
			Options:  labels,
			Defaults: defaultIndices(field, optionValues, listPrefill(prefill, field.Name)),
		})
		if err != nil {
			return err
		}
		for _, idx := range indices {
			if idx >= 0 && idx < len(optionValues) {
				values.Add(field.Name, optionValues[idx])
			}
		}
		return nil

	case field.Selectbox():
		labels, optionValues := selectChoices(field, !field.Required)
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      promptMessage(field),
			Options:      labels,
			DefaultIndex: defaultIndex(field, optionValues, scalarPrefill(prefill, field.Name)),
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(optionValues) && optionValues[idx] != "" {
			values.Set(field.Name, optionValues[idx])
		}
		return nil

	default:
		cfg := InputConfig{
			Message: promptMessage(field),
			Default: scalarPrefill(prefill, field.Name),
		}
		if field.Required {
			cfg.Validator = requiredAnswer
		}
		answer, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		values.Set(field.Name, answer)
		return nil
	}
}

func (r *Renderer) serialize(resp response.FormResponse, values url.Values) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		return prettyText(resp), nil
	default:
		return response.RenderSnapshot(resp, r.snapshotOptions...), nil
	}
}

func prettyText(resp response.FormResponse) []byte {
	var b strings.Builder
	if resp.Title != "" {
		b.WriteString(resp.Title)
		b.WriteString("\n\n")
	}
	for _, entry := range resp.Entries {
		b.WriteString(entry.Label)
		b.WriteString(": ")
		if entry.List {
			b.WriteString(strings.Join(entry.Values, ", "))
		} else {
			b.WriteString(entry.Value)
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func promptMessage(field model.Field) string {
	if field.Required {
		return field.Label + " *"
	}
	return field.Label
}

// selectChoices flattens a select field's options into parallel label/value
// slices, skipping the placeholder prompt. withSkip prepends an explicit skip
// choice so optional selects can be left unanswered.
func selectChoices(field model.Field, withSkip bool) (labels, values []string) {
	if withSkip {
		labels = append(labels, skipChoice)
		values = append(values, "")
	}
	for _, option := range field.Options {
		if option.Placeholder() {
			continue
		}
		labels = append(labels, option.Label)
		values = append(values, option.Value)
	}
	return labels, values
}

func defaultIndex(field model.Field, optionValues []string, prefill string) int {
	if prefill != "" {
		for i, value := range optionValues {
			if value == prefill {
				return i
			}
		}
	}
	for i, value := range optionValues {
		for _, option := range field.Options {
			if option.Selected && !option.Placeholder() && option.Value == value {
				return i
			}
		}
	}
	return -1
}

func defaultIndices(field model.Field, optionValues []string, prefill []string) []int {
	want := make(map[string]struct{}, len(prefill))
	for _, value := range prefill {
		want[value] = struct{}{}
	}
	if len(want) == 0 {
		for _, option := range field.Options {
			if option.Selected && !option.Placeholder() {
				want[option.Value] = struct{}{}
			}
		}
	}
	var out []int
	for i, value := range optionValues {
		if _, ok := want[value]; ok {
			out = append(out, i)
		}
	}
	return out
}

func scalarPrefill(prefill map[string]any, name string) string {
	if prefill == nil {
		return ""
	}
	switch v := prefill[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func listPrefill(prefill map[string]any, name string) []string {
	if prefill == nil {
		return nil
	}
	switch v := prefill[name].(type) {
	case string:
		if v != "" {
			return []string{v}
		}
	case []string:
		return v
	}
	return nil
}

func requiredAnswer(answer string) error {
	if strings.TrimSpace(answer) == "" {
		return errors.New("an answer is required")
	}
	return nil
}

func flaggedFields(result response.Result) string {
	names := make([]string, 0, len(result.Fields))
	for name := range result.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
