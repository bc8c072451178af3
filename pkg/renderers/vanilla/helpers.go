package vanilla

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

func controlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "cf-" + trimmed
}

// cssVarsStyle flattens a resolved theme's CSS custom properties into an
// inline style declaration applied on <body>, keeping the rendered page
// standalone (no external stylesheet required).
func cssVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString(";")
	}
	return b.String()
}

func defaultInstructions(mailto bool, email string) string {
	if mailto {
		return "Fill out the form below. Submitting opens your mail client with the answers prefilled, addressed to " + email + "."
	}
	return "Fill out the form below and press Submit to send your answers."
}
