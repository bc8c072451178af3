package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*.js
var embeddedAssets embed.FS

// RuntimeScriptName is the embedded browser runtime handling the one-shot
// placeholder clearing and the client-side download path.
const RuntimeScriptName = "contactform-runtime.js"

// TemplatesFS exposes the embedded template bundle for consumers that want to
// customize the built-in page rendering.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded runtime bundle so callers can serve it over
// HTTP or copy it into their own asset pipeline.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// Should never happen, but fall back to the raw FS so assets remain
		// usable.
		return embeddedAssets
	}
	return sub
}

func runtimeScript() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+RuntimeScriptName)
	if err != nil {
		return ""
	}
	return string(data)
}
