package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the form model pipeline.
type RenderOptions struct {
	// Values pre-populates rendered controls keyed by field name. Multi-select
	// controls accept []string values; everything else expects a string.
	Values map[string]any

	// Errors surfaces validation feedback keyed by field name. The vanilla
	// renderer maps these onto per-field highlighting so a failed download
	// attempt re-renders with the offending controls flagged.
	Errors map[string][]string

	// Instructions overrides the default instructions block above the form.
	Instructions string

	// HiddenFields emits additional hidden inputs (CSRF tokens, honeypots)
	// alongside the configured questions. See the helpers in submission.go.
	HiddenFields map[string]string

	// Theme carries a resolved go-theme renderer configuration. Nil renders
	// with the built-in defaults.
	Theme *theme.RendererConfig
}
