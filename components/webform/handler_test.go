package webform

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	internalloader "github.com/goliatone/go-contactform/internal/config/loader"
	"github.com/goliatone/go-contactform/pkg/config"
	"github.com/goliatone/go-contactform/pkg/orchestrator"
	"github.com/goliatone/go-contactform/pkg/response"
)

const testConfig = `{
  "subject": "Message from example.com",
  "title": "Contact us",
  "email": "team@example.com",
  "form_backend_url": null,
  "questions": [
    {"label": "Name", "name": "name", "type": "text", "required": true},
    {
      "label": "Topics",
      "name": "topics",
      "type": "selectbox",
      "options": [
        {"label": "Pick one or more", "value": "", "selected": true, "disabled": true},
        {"label": "Billing", "value": "billing"},
        {"label": "Support", "value": "support"}
      ],
      "custom": {"multiple": true}
    },
    {"label": "Message", "name": "message", "type": "textarea", "required": true}
  ]
}`

func testComponent(t *testing.T, payload string, fns ...OptionFn) *Component {
	t.Helper()

	fsys := fstest.MapFS{
		"contact.json": &fstest.MapFile{Data: []byte(payload)},
	}
	orch := orchestrator.New(orchestrator.WithLoader(
		internalloader.New(config.NewLoaderOptions(config.WithFileSystem(fsys))),
	))

	fns = append([]OptionFn{
		WithSource(config.SourceFromFS("contact.json")),
		WithOrchestrator(orch),
	}, fns...)
	return New(fns...)
}

func TestPageHandlerServesForm(t *testing.T) {
	component := testComponent(t, testConfig)

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	rec := httptest.NewRecorder()
	component.PageHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != htmlContentType {
		t.Fatalf("unexpected content type %q", got)
	}

	page := rec.Body.String()
	for _, fragment := range []string{
		`<h1 id="title">Contact us</h1>`,
		`action="mailto:team@example.com?subject=Message%20from%20example.com"`,
		`data-has-placeholder="true"`,
		`id="download-button"`,
	} {
		if !strings.Contains(page, fragment) {
			t.Fatalf("expected page to contain %q, got:\n%s", fragment, page)
		}
	}
}

func TestPageHandlerDegradesOnBadConfig(t *testing.T) {
	component := testComponent(t, `{"title": "No subject"}`)

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	rec := httptest.NewRecorder()
	component.PageHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 degraded page, got %d", rec.Code)
	}
	page := rec.Body.String()
	if !strings.Contains(page, "Error loading configuration") {
		t.Fatalf("expected degraded message, got:\n%s", page)
	}
	if !strings.Contains(page, `<div class="container" hidden></div>`) {
		t.Fatalf("expected hidden container, got:\n%s", page)
	}
}

func TestPageHandlerMethodNotAllowed(t *testing.T) {
	component := testComponent(t, testConfig)

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	rec := httptest.NewRecorder()
	component.PageHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestPageHandlerGuard(t *testing.T) {
	component := testComponent(t, testConfig, WithGuard(func(*http.Request) error {
		return StatusError{Code: http.StatusTeapot}
	}))

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	rec := httptest.NewRecorder()
	component.PageHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected guard status, got %d", rec.Code)
	}
}

func TestPageHandlerCachesUntilInvalidated(t *testing.T) {
	component := testComponent(t, testConfig, WithCacheTTL(time.Minute))

	first := httptest.NewRecorder()
	component.PageHandler().ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/contact", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}

	if _, ok := component.cachedPage(); !ok {
		t.Fatal("expected page cached after first render")
	}

	component.InvalidateCache()
	if _, ok := component.cachedPage(); ok {
		t.Fatal("expected cache dropped after invalidation")
	}
}

func TestResponseHandlerStreamsDownload(t *testing.T) {
	fixed := time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)
	component := testComponent(t, testConfig, WithSnapshotOptions(
		response.WithSnapshotID("fixed-id"),
		response.WithClock(func() time.Time { return fixed }),
	))

	form := url.Values{
		"name":    {"Ada"},
		"topics":  {"billing", "support"},
		"message": {"Hello there"},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact/response", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	component.ResponseHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="form-response.html"` {
		t.Fatalf("unexpected content disposition %q", got)
	}

	body := rec.Body.String()
	for _, fragment := range []string{
		"<b>Name:</b> Ada",
		"<li>billing</li>",
		"<li>support</li>",
		"Hello there",
		"fixed-id",
	} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("expected artifact to contain %q, got:\n%s", fragment, body)
		}
	}
}

func TestResponseHandlerRejectsMissingRequired(t *testing.T) {
	component := testComponent(t, testConfig)

	form := url.Values{
		"name":   {"Ada"},
		"topics": {"billing"},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact/response", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	component.ResponseHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	page := rec.Body.String()
	if !strings.Contains(page, "this field is required") {
		t.Fatalf("expected validation message, got:\n%s", page)
	}
	if !strings.Contains(page, `value="Ada"`) {
		t.Fatalf("expected resubmitted value preserved, got:\n%s", page)
	}
	if !strings.Contains(page, `<option value="billing" selected>`) {
		t.Fatalf("expected resubmitted selection preserved, got:\n%s", page)
	}
}

func TestResponseHandlerMethodNotAllowed(t *testing.T) {
	component := testComponent(t, testConfig)

	req := httptest.NewRequest(http.MethodGet, "/contact/response", nil)
	rec := httptest.NewRecorder()
	component.ResponseHandler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
