// Package contactform generates working contact forms from JSON (or YAML)
// configuration documents: labeled HTML controls, submission routing to a
// form backend or a mailto address, and standalone response documents built
// from submitted values.
package contactform

import (
	"context"
	"io/fs"
	"net/url"

	internalLoader "github.com/goliatone/go-contactform/internal/config/loader"
	"github.com/goliatone/go-contactform/pkg/config"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
	"github.com/goliatone/go-contactform/pkg/response"
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// FormResponse is the label-to-value record built from submitted values.
type FormResponse = response.FormResponse

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module so callers can wire custom loaders, registries, or themes.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader constructs a configuration loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...config.LoaderOption) config.Loader {
	cfg := config.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// GenerateHTML loads the configuration source, builds the form model, and
// renders it using the named renderer. It is the simplest entry point for
// callers that just want the form page.
func GenerateHTML(ctx context.Context, source config.Source, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromDocument renders a form using a pre-loaded document,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateHTMLFromDocument(ctx context.Context, doc config.Document, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		Renderer: rendererName,
	})
}

// BuildResponse loads the configuration source, resolves the form model, and
// serializes the submitted values into a FormResponse plus validity verdict.
func BuildResponse(ctx context.Context, source config.Source, values url.Values, options ...orchestrator.Option) (response.FormResponse, response.Result, error) {
	gen := orchestrator.New(options...)
	form, err := gen.BuildModel(ctx, orchestrator.Request{Source: source})
	if err != nil {
		return response.FormResponse{}, response.Result{}, err
	}
	return response.NewSerializer().Serialize(form, values)
}

// BuildModel loads the configuration source and returns the resolved form
// model without rendering.
func BuildModel(ctx context.Context, source config.Source, options ...orchestrator.Option) (model.FormModel, error) {
	gen := orchestrator.New(options...)
	return gen.BuildModel(ctx, orchestrator.Request{Source: source})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so
// callers can reuse or extend them without importing the renderer package
// directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// RuntimeAssetsFS exposes the embedded browser runtime (placeholder clearing
// and the client-side download path) so applications can serve it without a
// build step.
//
// Typical mount:
//
//	mux.Handle("/assets/contactform/",
//	  http.StripPrefix("/assets/contactform/",
//	    http.FileServerFS(contactform.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
