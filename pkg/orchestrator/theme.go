package orchestrator

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// defaultThemeFallbacks names the template partials a theme manifest may
// override, mapped to the built-in bundle locations used when it does not.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"forms.page":  "templates/page.tmpl",
		"forms.error": "templates/error.tmpl",
	}
}

// resolveTheme turns a theme/variant request into the renderer configuration
// renderers consume. A nil selector means theming is disabled and renderers
// fall back to their built-in defaults.
func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}

	if name == "" {
		name = o.defaultTheme
	}
	if variant == "" {
		variant = o.defaultVariant
	}
	if name == "" {
		return nil, nil
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}

	return rendererConfigFromSelection(selection, o.themeFallbacks), nil
}

func rendererConfigFromSelection(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: copyStringMap(fallbacks),
	}
	if cfg.Partials == nil {
		cfg.Partials = make(map[string]string)
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	cfg.Tokens = copyStringMap(manifest.Tokens)
	mergeStringMap(&cfg.Partials, manifest.Templates)

	assets := manifest.Assets
	files := copyStringMap(assets.Files)

	if variant, ok := manifest.Variants[selection.Variant]; ok {
		mergeStringMap(&cfg.Tokens, variant.Tokens)
		mergeStringMap(&cfg.Partials, variant.Templates)
		mergeStringMap(&files, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			assets.Prefix = variant.Assets.Prefix
		}
	}

	cfg.CSSVars = cssVarsFromTokens(cfg.Tokens)
	cfg.AssetURL = assetResolver(assets.Prefix, files)
	return cfg
}

// cssVarsFromTokens turns manifest tokens into CSS custom property
// declarations ("brand" becomes "--brand").
func cssVarsFromTokens(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := key
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		vars[name] = value
	}
	return vars
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
	}
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMap(dst *map[string]string, src map[string]string) {
	if len(src) == 0 {
		return
	}
	if *dst == nil {
		*dst = make(map[string]string, len(src))
	}
	for key, value := range src {
		(*dst)[key] = value
	}
}
