package vanilla

import (
	"html"
	"strings"

	"github.com/goliatone/go-contactform/pkg/model"
)

// textareaRows is the fixed visible row count for multi-line controls.
const textareaRows = "5"

// buildFieldMarkup produces the labeled control block for one question:
// a wrapper div, a label bound to the control, the control itself, and any
// validation messages from a failed download attempt.
func buildFieldMarkup(field model.Field, value any, errors []string) string {
	var builder strings.Builder
	builder.Grow(256)

	builder.WriteString(`<div class="form-field" data-question="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString("\">\n")

	builder.WriteString(`    <label for="`)
	builder.WriteString(html.EscapeString(controlID(field.Name)))
	builder.WriteString(`">`)
	builder.WriteString(html.EscapeString(field.Label))
	if field.Required {
		builder.WriteString(" *")
	}
	builder.WriteString("</label>\n")

	builder.WriteString("    ")
	switch {
	case field.Textarea():
		writeTextarea(&builder, field, scalarValue(value), len(errors) > 0)
	case field.Selectbox():
		writeSelect(&builder, field, listValue(value), len(errors) > 0)
	default:
		writeInput(&builder, field, scalarValue(value), len(errors) > 0)
	}
	builder.WriteByte('\n')

	for _, message := range errors {
		builder.WriteString(`    <p class="field-errors" role="alert">`)
		builder.WriteString(html.EscapeString(message))
		builder.WriteString("</p>\n")
	}

	builder.WriteString("</div>\n")
	return builder.String()
}

func writeInput(builder *strings.Builder, field model.Field, value string, invalid bool) {
	builder.WriteString(`<input type="`)
	builder.WriteString(html.EscapeString(field.Type))
	builder.WriteString(`"`)
	writeSharedAttributes(builder, field, invalid)
	if value != "" {
		builder.WriteString(` value="`)
		builder.WriteString(html.EscapeString(value))
		builder.WriteString(`"`)
	}
	writeCustomAttributes(builder, field.Custom, false)
	builder.WriteString(">")
}

func writeTextarea(builder *strings.Builder, field model.Field, value string, invalid bool) {
	builder.WriteString(`<textarea rows="` + textareaRows + `"`)
	writeSharedAttributes(builder, field, invalid)
	writeCustomAttributes(builder, field.Custom, false)
	builder.WriteString(">")
	builder.WriteString(html.EscapeString(value))
	builder.WriteString("</textarea>")
}

func writeSelect(builder *strings.Builder, field model.Field, values []string, invalid bool) {
	builder.WriteString(`<select`)
	writeSharedAttributes(builder, field, invalid)
	if field.Multiple {
		builder.WriteString(" multiple")
	}
	if field.HasPlaceholder {
		builder.WriteString(` data-has-placeholder="true"`)
	}
	writeCustomAttributes(builder, field.Custom, true)
	builder.WriteString(">\n")

	prefilled := make(map[string]struct{}, len(values))
	for _, value := range values {
		prefilled[value] = struct{}{}
	}

	for _, option := range field.Options {
		builder.WriteString(`        <option value="`)
		builder.WriteString(html.EscapeString(option.Value))
		builder.WriteString(`"`)

		selected := option.Selected
		if len(prefilled) > 0 {
			_, selected = prefilled[option.Value]
		}
		if selected {
			builder.WriteString(" selected")
		}
		if option.Disabled {
			builder.WriteString(" disabled")
		}

		builder.WriteString(">")
		builder.WriteString(html.EscapeString(option.Label))
		builder.WriteString("</option>\n")
	}
	builder.WriteString("    </select>")
}

// writeSharedAttributes emits the post-processing every control receives:
// the id/name pair, the original label stored for serialization, and the
// required flag.
func writeSharedAttributes(builder *strings.Builder, field model.Field, invalid bool) {
	builder.WriteString(` id="`)
	builder.WriteString(html.EscapeString(controlID(field.Name)))
	builder.WriteString(`" name="`)
	builder.WriteString(html.EscapeString(field.Name))
	builder.WriteString(`" data-label="`)
	builder.WriteString(html.EscapeString(field.Label))
	builder.WriteString(`"`)
	if field.Required {
		builder.WriteString(" required")
	}
	if invalid {
		builder.WriteString(` class="field-invalid"`)
	}
}

// writeCustomAttributes applies the configuration's custom key/value pairs as
// literal attributes. Names are emitted verbatim (the escape hatch is
// deliberately unvalidated); values are escaped.
func writeCustomAttributes(builder *strings.Builder, attrs []model.Attr, skipMultiple bool) {
	for _, attr := range attrs {
		if skipMultiple && strings.EqualFold(attr.Name, "multiple") {
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(attr.Name)
		if attr.Boolean {
			continue
		}
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(attr.Value))
		builder.WriteString(`"`)
	}
}

func scalarValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
		return ""
	default:
		return ""
	}
}

func listValue(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	default:
		return nil
	}
}
