package webform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/goliatone/go-contactform/pkg/config"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
	"github.com/goliatone/go-contactform/pkg/response"
)

// GuardFunc runs before a request is served. Returning an error rejects the
// request; wrap it in StatusError to pick the response code.
type GuardFunc func(r *http.Request) error

type Options struct {
	// RoutePath serves the rendered form page.
	RoutePath string
	// ResponsePath accepts POST submissions and returns the download
	// artifact.
	ResponsePath string
	// AssetsPath serves the embedded browser runtime.
	AssetsPath string

	// Source locates the configuration document. Required.
	Source config.Source

	// Orchestrator runs the load → build → render pipeline. Defaults to
	// orchestrator.New().
	Orchestrator *orchestrator.Orchestrator

	// Renderer names the registry entry used for page rendering. Empty uses
	// the orchestrator default.
	Renderer string

	// Serializer extracts responses from submissions. Defaults to
	// response.NewSerializer().
	Serializer *response.Serializer

	// SnapshotOptions customise the download artifact (tests pin the id and
	// timestamp through these).
	SnapshotOptions []response.SnapshotOption

	// HiddenFields adds hidden inputs alongside the configured questions.
	HiddenFields map[string]string

	// Instructions overrides the copy above the form.
	Instructions string

	// ThemeName and ThemeVariant select a theme when the orchestrator
	// carries a selector.
	ThemeName    string
	ThemeVariant string

	// CacheTTL bounds how long a rendered page is reused before the pipeline
	// runs again. Zero disables caching.
	CacheTTL time.Duration

	Guard   GuardFunc
	Logger  *slog.Logger
	Metrics *Metrics
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    "/contact",
		ResponsePath: "/contact/response",
		AssetsPath:   "/assets/contactform/",
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/contact"
	}
	if opts.ResponsePath == "" {
		opts.ResponsePath = "/contact/response"
	}
	if opts.AssetsPath == "" {
		opts.AssetsPath = "/assets/contactform/"
	}
	if opts.Orchestrator == nil {
		opts.Orchestrator = orchestrator.New()
	}
	if opts.Serializer == nil {
		opts.Serializer = response.NewSerializer()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithResponsePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ResponsePath = path
	}
}

func WithAssetsPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.AssetsPath = path
	}
}

func WithSource(source config.Source) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Source = source
	}
}

func WithOrchestrator(orch *orchestrator.Orchestrator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if orch != nil {
			o.Orchestrator = orch
		}
	}
}

func WithRenderer(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderer = name
	}
}

func WithSerializer(serializer *response.Serializer) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if serializer != nil {
			o.Serializer = serializer
		}
	}
}

func WithSnapshotOptions(options ...response.SnapshotOption) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SnapshotOptions = options
	}
}

func WithHiddenFields(fields map[string]string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HiddenFields = fields
	}
}

func WithInstructions(text string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Instructions = text
	}
}

func WithTheme(name, variant string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ThemeName = name
		o.ThemeVariant = variant
	}
}

func WithCacheTTL(ttl time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CacheTTL = ttl
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if logger != nil {
			o.Logger = logger
		}
	}
}

func WithMetrics(metrics *Metrics) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Metrics = metrics
	}
}
