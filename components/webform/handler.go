package webform

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
	"github.com/goliatone/go-contactform/pkg/response"
)

const htmlContentType = "text/html; charset=utf-8"

// Component wraps the page and response handlers around a shared
// configuration source and rendered-page cache.
type Component struct {
	opts Options

	mu         sync.Mutex
	cached     []byte
	renderedAt time.Time
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return c.opts
}

// InvalidateCache drops the cached page so the next request re-runs the
// pipeline. The configuration watcher calls this on file change.
func (c *Component) InvalidateCache() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}

// PageHandler serves the rendered form. Configuration failures degrade to the
// error page instead of a bare status code, mirroring how the page behaves
// when rendered client-side from an unreachable config.
func (c *Component) PageHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if c.opts.Guard != nil {
			if err := c.opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		if page, ok := c.cachedPage(); ok {
			c.servePage(w, r, http.StatusOK, page)
			return
		}

		page, err := c.opts.Orchestrator.Generate(r.Context(), c.pageRequest(render.RenderOptions{
			HiddenFields: c.opts.HiddenFields,
			Instructions: c.opts.Instructions,
		}))
		if err != nil {
			c.opts.Logger.Error("contact form render failed",
				"source", sourceLocation(c.opts.Source),
				"error", err)
			c.opts.Metrics.renderedPage("degraded")
			c.serveErrorPage(w, r)
			return
		}

		c.storePage(page)
		c.opts.Metrics.renderedPage("ok")
		c.servePage(w, r, http.StatusOK, page)
	})
}

// ResponseHandler accepts a POST submission, validates required answers, and
// either re-renders the form flagged (422) or streams the response document
// as an attachment.
func (c *Component) ResponseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if c.opts.Guard != nil {
			if err := c.opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		form, err := c.opts.Orchestrator.BuildModel(r.Context(), c.pageRequest(render.RenderOptions{}))
		if err != nil {
			c.opts.Logger.Error("contact form submission failed",
				"source", sourceLocation(c.opts.Source),
				"error", err)
			c.serveErrorPage(w, r)
			return
		}

		resp, result, err := c.opts.Serializer.Serialize(form, r.PostForm)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		if !result.Valid {
			c.opts.Metrics.rejectedSubmission()
			page, renderErr := c.opts.Orchestrator.Generate(r.Context(), c.pageRequest(render.RenderOptions{
				HiddenFields: c.opts.HiddenFields,
				Instructions: c.opts.Instructions,
				Values:       submittedValues(form, r.PostForm),
				Errors:       result.Fields,
			}))
			if renderErr != nil {
				http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
				return
			}
			c.servePage(w, r, http.StatusUnprocessableEntity, page)
			return
		}

		artifact := response.RenderSnapshot(resp, c.opts.SnapshotOptions...)
		c.opts.Metrics.servedDownload()

		w.Header().Set("Content-Type", htmlContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+response.ArtifactFilename+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(artifact)
	})
}

// AssetsHandler serves the embedded browser runtime. Mount it under
// Options.AssetsPath with a matching strip prefix; RegisterRoutes does both.
func (c *Component) AssetsHandler() http.Handler {
	return http.FileServer(http.FS(vanilla.AssetsFS()))
}

func (c *Component) pageRequest(options render.RenderOptions) orchestrator.Request {
	return orchestrator.Request{
		Source:        c.opts.Source,
		Renderer:      c.opts.Renderer,
		RenderOptions: options,
		ThemeName:     c.opts.ThemeName,
		ThemeVariant:  c.opts.ThemeVariant,
	}
}

func (c *Component) serveErrorPage(w http.ResponseWriter, r *http.Request) {
	page, err := c.opts.Orchestrator.ErrorPage(r.Context(), c.opts.Renderer, "")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	c.servePage(w, r, http.StatusOK, page)
}

func (c *Component) servePage(w http.ResponseWriter, r *http.Request, status int, page []byte) {
	w.Header().Set("Content-Type", htmlContentType)
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(page)
}

func (c *Component) cachedPage() ([]byte, bool) {
	if c.opts.CacheTTL <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached == nil || time.Since(c.renderedAt) > c.opts.CacheTTL {
		return nil, false
	}
	return c.cached, true
}

func (c *Component) storePage(page []byte) {
	if c.opts.CacheTTL <= 0 {
		return
	}
	c.mu.Lock()
	c.cached = page
	c.renderedAt = time.Now()
	c.mu.Unlock()
}

// submittedValues shapes a submission into the prefill map renderers expect:
// multi-select fields keep all selected values, everything else keeps the
// first submitted value.
func submittedValues(form model.FormModel, values url.Values) map[string]any {
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]any, len(form.Fields))
	for _, field := range form.Fields {
		if _, ok := values[field.Name]; !ok {
			continue
		}
		if field.Multiple {
			out[field.Name] = append([]string{}, values[field.Name]...)
			continue
		}
		out[field.Name] = values.Get(field.Name)
	}
	return out
}

func sourceLocation(source interface{ Location() string }) string {
	if source == nil {
		return ""
	}
	return source.Location()
}
