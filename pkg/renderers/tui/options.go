package tui

import "github.com/goliatone/go-contactform/pkg/response"

// OutputFormat controls how the collected response is serialized.
type OutputFormat string

const (
	// OutputFormatSnapshotHTML emits the standalone response document, the
	// same artifact the browser download path produces.
	OutputFormatSnapshotHTML OutputFormat = "html"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded
	// payloads ready to POST at a form backend.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatPrettyText emits a human-friendly label: value summary.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithSerializer overrides the response serializer, letting callers customise
// the required-field message.
func WithSerializer(serializer *response.Serializer) Option {
	return func(r *Renderer) {
		if serializer != nil {
			r.serializer = serializer
		}
	}
}

// WithSnapshotOptions passes snapshot rendering options through, primarily so
// tests can pin the generated id and timestamp.
func WithSnapshotOptions(options ...response.SnapshotOption) Option {
	return func(r *Renderer) {
		r.snapshotOptions = options
	}
}
