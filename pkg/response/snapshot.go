package response

import (
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// ArtifactFilename is the fixed name of the downloadable snapshot document.
const ArtifactFilename = "form-response.html"

var valuePolicy = bluemonday.StrictPolicy()

// SnapshotOption configures artifact metadata, mainly so tests can pin the
// generated ID and timestamp.
type SnapshotOption func(*snapshotConfig)

type snapshotConfig struct {
	id  string
	now func() time.Time
}

// WithSnapshotID pins the response ID embedded in the artifact footer.
func WithSnapshotID(id string) SnapshotOption {
	return func(cfg *snapshotConfig) {
		if strings.TrimSpace(id) != "" {
			cfg.id = id
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) SnapshotOption {
	return func(cfg *snapshotConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}

// RenderSnapshot produces the standalone HTML document embedding a heading
// and one label/value (or label/list) block per entry. Submitted values pass
// through bluemonday's strict policy before interpolation, so markup typed
// into a field arrives inert in the artifact.
func RenderSnapshot(resp FormResponse, options ...SnapshotOption) []byte {
	cfg := snapshotConfig{
		id:  uuid.NewString(),
		now: time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	title := strings.TrimSpace(resp.Title)
	if title == "" {
		title = "Form Response"
	}

	var builder strings.Builder
	builder.Grow(512 + len(resp.Entries)*128)

	builder.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	builder.WriteString(`<meta charset="utf-8">` + "\n")
	builder.WriteString("<title>")
	builder.WriteString(html.EscapeString(title))
	builder.WriteString("</title>\n</head>\n<body>\n")

	builder.WriteString("<h1>")
	builder.WriteString(html.EscapeString(title))
	builder.WriteString("</h1>\n")

	for _, entry := range resp.Entries {
		builder.WriteString(`<p><b>`)
		builder.WriteString(html.EscapeString(entry.Label))
		builder.WriteString(`:</b> `)

		if entry.List {
			builder.WriteString("</p>\n<ul>\n")
			for _, value := range entry.Values {
				builder.WriteString("<li>")
				builder.WriteString(valuePolicy.Sanitize(value))
				builder.WriteString("</li>\n")
			}
			builder.WriteString("</ul>\n")
			continue
		}

		builder.WriteString(valuePolicy.Sanitize(entry.Value))
		builder.WriteString("</p>\n")
	}

	builder.WriteString(`<footer><small>Response `)
	builder.WriteString(html.EscapeString(cfg.id))
	builder.WriteString(` generated at `)
	builder.WriteString(cfg.now().UTC().Format(time.RFC3339))
	builder.WriteString("</small></footer>\n")

	builder.WriteString("</body>\n</html>\n")
	return []byte(builder.String())
}
