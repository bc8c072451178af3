package loader

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-contactform/pkg/config"
)

const jsonPayload = `{
  "subject": "Hello",
  "title": "Contact",
  "email": "team@example.com",
  "questions": [{"label": "Name", "name": "name", "type": "text", "required": true}]
}`

const yamlPayload = `subject: Hello
title: Contact
email: team@example.com
questions:
  - label: Name
    name: name
    type: text
    required: true
`

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contact.json")
	if err := os.WriteFile(path, []byte(jsonPayload), 0o644); err != nil {
		t.Fatal(err)
	}

	l := New(config.NewLoaderOptions())
	doc, err := l.Load(context.Background(), config.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Location() != path {
		t.Fatalf("location = %q, want %q", doc.Location(), path)
	}

	cfg, err := config.ParseAndValidate(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Title != "Contact" {
		t.Fatalf("title = %q", cfg.Title)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	l := New(config.NewLoaderOptions())
	_, err := l.Load(context.Background(), config.SourceFromFile(filepath.Join(t.TempDir(), "absent.json")))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"configs/contact.json": {Data: []byte(jsonPayload)},
	}

	l := New(config.NewLoaderOptions(config.WithFileSystem(fsys)))
	doc, err := l.Load(context.Background(), config.SourceFromFS("configs/contact.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cfg, err := config.ParseAndValidate(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Email != "team@example.com" {
		t.Fatalf("email = %q", cfg.Email)
	}
}

func TestLoadFromFSWithoutFilesystem(t *testing.T) {
	l := New(config.NewLoaderOptions())
	_, err := l.Load(context.Background(), config.SourceFromFS("contact.json"))
	if err == nil || !strings.Contains(err.Error(), "fs is nil") {
		t.Fatalf("expected nil-fs error, got %v", err)
	}
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(jsonPayload))
	}))
	defer srv.Close()

	l := New(config.NewLoaderOptions(config.WithHTTPFallback(5 * time.Second)))
	doc, err := l.Load(context.Background(), config.SourceFromURL(srv.URL+"/contact.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cfg, err := config.ParseAndValidate(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Subject != "Hello" {
		t.Fatalf("subject = %q", cfg.Subject)
	}
}

func TestLoadFromHTTPRejectsNonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	l := New(config.NewLoaderOptions(config.WithHTTPFallback(5 * time.Second)))
	_, err := l.Load(context.Background(), config.SourceFromURL(srv.URL))
	if err == nil || !strings.Contains(err.Error(), "unexpected status") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLoadFromHTTPDisabledByDefault(t *testing.T) {
	l := New(config.NewLoaderOptions())
	_, err := l.Load(context.Background(), config.SourceFromURL("http://localhost:1/contact.json"))
	if err == nil || !strings.Contains(err.Error(), "http support disabled") {
		t.Fatalf("expected disabled-http error, got %v", err)
	}
}

func TestLoadFromHTTPHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New(config.NewLoaderOptions(config.WithHTTPClient(srv.Client())))
	if _, err := l.Load(ctx, config.SourceFromURL(srv.URL)); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestLoadNormalizesYAMLByExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"contact.yaml": {Data: []byte(yamlPayload)},
	}

	l := New(config.NewLoaderOptions(config.WithFileSystem(fsys)))
	doc, err := l.Load(context.Background(), config.SourceFromFS("contact.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !json.Valid(doc.Raw()) {
		t.Fatalf("expected normalized JSON payload, got %s", doc.Raw())
	}

	cfg, err := config.ParseAndValidate(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cfg.Questions) != 1 || cfg.Questions[0].Name != "name" {
		t.Fatalf("questions = %+v", cfg.Questions)
	}
}

func TestLoadSniffsYAMLWithoutExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"contact.conf": {Data: []byte(yamlPayload)},
	}

	l := New(config.NewLoaderOptions(config.WithFileSystem(fsys)))
	doc, err := l.Load(context.Background(), config.SourceFromFS("contact.conf"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !json.Valid(doc.Raw()) {
		t.Fatalf("expected normalized JSON payload, got %s", doc.Raw())
	}
}

func TestLoadReportsBrokenYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"contact.yaml": {Data: []byte("subject: [unclosed")},
	}

	l := New(config.NewLoaderOptions(config.WithFileSystem(fsys)))
	_, err := l.Load(context.Background(), config.SourceFromFS("contact.yaml"))
	if err == nil || !strings.Contains(err.Error(), "decode yaml") {
		t.Fatalf("expected yaml decode error, got %v", err)
	}
}

func TestLoadRejectsNilSource(t *testing.T) {
	l := New(config.NewLoaderOptions())
	if _, err := l.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}
