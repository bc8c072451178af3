package orchestrator

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-contactform/pkg/config"
	"github.com/goliatone/go-contactform/pkg/model"
	"github.com/goliatone/go-contactform/pkg/render"
)

const sampleConfig = `{
  "subject": "Message from example.com",
  "title": "Contact us",
  "email": "team@example.com",
  "form_backend_url": null,
  "questions": [
    {"label": "Name", "name": "name", "type": "text", "required": true},
    {"label": "Message", "name": "message", "type": "textarea", "required": true}
  ]
}`

type stubSource struct{}

func (stubSource) Kind() config.SourceKind { return config.SourceKindFile }
func (stubSource) Location() string        { return "stub" }

type captureRenderer struct {
	options render.RenderOptions
	form    model.FormModel
}

func (r *captureRenderer) Name() string        { return "capture" }
func (r *captureRenderer) ContentType() string { return "text/plain" }

func (r *captureRenderer) Render(_ context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	r.form = form
	r.options = opts
	return []byte(form.Title), nil
}

func TestGenerateRendersDocument(t *testing.T) {
	orch := New()

	doc := config.MustNewDocument(stubSource{}, []byte(sampleConfig))
	output, err := orch.Generate(context.Background(), Request{Document: &doc})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	page := string(output)
	if !strings.Contains(page, `<h1 id="title">Contact us</h1>`) {
		t.Fatalf("expected rendered title, got:\n%s", page)
	}
	if !strings.Contains(page, `action="mailto:team@example.com?subject=Message%20from%20example.com"`) {
		t.Fatalf("expected mailto action, got:\n%s", page)
	}
}

func TestGenerateFailsOnInvalidConfig(t *testing.T) {
	orch := New()

	doc := config.MustNewDocument(stubSource{}, []byte(`{"title": "No subject"}`))
	if _, err := orch.Generate(context.Background(), Request{Document: &doc}); err == nil {
		t.Fatal("expected error for invalid configuration")
	}

	doc = config.MustNewDocument(stubSource{}, []byte(`{not json`))
	if _, err := orch.Generate(context.Background(), Request{Document: &doc}); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestGenerateRequiresSourceOrDocument(t *testing.T) {
	orch := New()

	if _, err := orch.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error when neither source nor document is set")
	}
}

func TestGenerateUsesNamedRenderer(t *testing.T) {
	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(WithRegistry(registry), WithDefaultRenderer(renderer.Name()))

	doc := config.MustNewDocument(stubSource{}, []byte(sampleConfig))
	output, err := orch.Generate(context.Background(), Request{Document: &doc})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(output) != "Contact us" {
		t.Fatalf("expected capture renderer output, got %q", output)
	}
	if len(renderer.form.Fields) != 2 {
		t.Fatalf("expected built form passed through, got %+v", renderer.form)
	}

	if _, err := orch.Generate(context.Background(), Request{Document: &doc, Renderer: "missing"}); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestBuildModelExposesResolvedForm(t *testing.T) {
	orch := New()

	doc := config.MustNewDocument(stubSource{}, []byte(sampleConfig))
	form, err := orch.BuildModel(context.Background(), Request{Document: &doc})
	if err != nil {
		t.Fatalf("build model: %v", err)
	}
	if !form.MailtoRouted() {
		t.Fatalf("expected mailto routing, got %+v", form)
	}
	if form.Enctype != model.EnctypeTextPlain {
		t.Fatalf("expected text/plain enctype for mailto, got %q", form.Enctype)
	}
}

func TestErrorPageDegradesGracefully(t *testing.T) {
	orch := New()

	output, err := orch.ErrorPage(context.Background(), "", "")
	if err != nil {
		t.Fatalf("error page: %v", err)
	}

	page := string(output)
	if !strings.Contains(page, "Error loading configuration") {
		t.Fatalf("expected default error message, got:\n%s", page)
	}
	if !strings.Contains(page, `<div class="container" hidden></div>`) {
		t.Fatalf("expected hidden form container, got:\n%s", page)
	}
}
