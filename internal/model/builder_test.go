package model

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgconfig "github.com/goliatone/go-contactform/pkg/config"
)

func baseConfig() pkgconfig.Config {
	return pkgconfig.Config{
		Subject: "Message from example.com",
		Title:   "Contact us",
		Email:   "team@example.com",
		Questions: []pkgconfig.Question{
			{Label: "Name", Name: "name", Type: pkgconfig.TypeText, Required: true},
			{Label: "Message", Name: "message", Type: pkgconfig.TypeTextarea, Required: true},
		},
	}
}

func TestBuildMailtoRouting(t *testing.T) {
	form, err := New(Options{}).Build(baseConfig())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := "mailto:team@example.com?subject=Message%20from%20example.com"
	if form.Action != want {
		t.Fatalf("action = %q, want %q", form.Action, want)
	}
	if form.Enctype != EnctypeTextPlain {
		t.Fatalf("enctype = %q, want %q", form.Enctype, EnctypeTextPlain)
	}
	if form.Method != "POST" {
		t.Fatalf("method = %q", form.Method)
	}
	if !form.MailtoRouted() {
		t.Fatal("expected mailto routing")
	}
}

func TestBuildBackendRouting(t *testing.T) {
	cfg := baseConfig()
	backend := "https://backend.example.com/submit"
	cfg.FormBackendURL = &backend

	form, err := New(Options{}).Build(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if form.Action != backend {
		t.Fatalf("action = %q, want %q", form.Action, backend)
	}
	if form.Enctype != EnctypeURLEncoded {
		t.Fatalf("enctype = %q, want %q", form.Enctype, EnctypeURLEncoded)
	}
	if form.MailtoRouted() {
		t.Fatal("expected backend routing")
	}
}

func TestBuildFieldMapping(t *testing.T) {
	cfg := baseConfig()
	cfg.Questions = append(cfg.Questions, pkgconfig.Question{
		Label: "Topics",
		Name:  "topics",
		Type:  pkgconfig.TypeSelectbox,
		Custom: map[string]any{
			"multiple": true,
			"size":     "4",
		},
		Options: []pkgconfig.Option{
			{Label: "Choose a topic", Value: "", Selected: true, Disabled: true},
			{Label: "Billing", Value: "billing"},
			{Label: "Support", Value: "support", Selected: true},
		},
	})

	form, err := New(Options{}).Build(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := Field{
		Label:          "Topics",
		Name:           "topics",
		Type:           "selectbox",
		Multiple:       true,
		HasPlaceholder: true,
		Options: []Option{
			{Label: "Choose a topic", Value: "", Selected: true, Disabled: true},
			{Label: "Billing", Value: "billing"},
			{Label: "Support", Value: "support", Selected: true},
		},
		Custom: []Attr{
			{Name: "multiple", Boolean: true},
			{Name: "size", Value: "4"},
		},
	}
	if diff := cmp.Diff(want, form.Fields[2]); diff != "" {
		t.Fatalf("selectbox field mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCustomAttrsSortedAndFiltered(t *testing.T) {
	cfg := baseConfig()
	cfg.Questions[0].Custom = map[string]any{
		"placeholder": "Your name",
		"autofocus":   true,
		"hidden":      false,
		"  ":          "dropped",
	}

	form, err := New(Options{}).Build(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []Attr{
		{Name: "autofocus", Boolean: true},
		{Name: "placeholder", Value: "Your name"},
	}
	if diff := cmp.Diff(want, form.Fields[0].Custom); diff != "" {
		t.Fatalf("custom attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildIgnoresOptionsOnNonSelectbox(t *testing.T) {
	cfg := baseConfig()
	cfg.Questions[0].Options = []pkgconfig.Option{{Label: "Ignored", Value: "x"}}

	form, err := New(Options{}).Build(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if form.Fields[0].Options != nil {
		t.Fatalf("expected options dropped, got %+v", form.Fields[0].Options)
	}
}

func TestBuildAppliesLabeler(t *testing.T) {
	form, err := New(Options{Labeler: strings.ToUpper}).Build(baseConfig())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if form.Fields[0].Label != "NAME" {
		t.Fatalf("label = %q", form.Fields[0].Label)
	}
	if form.Fields[0].Name != "name" {
		t.Fatalf("name should stay untouched, got %q", form.Fields[0].Name)
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := baseConfig()
	cfg.Subject = ""
	if _, err := New(Options{}).Build(cfg); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := baseConfig()
	cfg.Questions[0].Custom = map[string]any{"b": "2", "a": "1", "c": true}

	b := New(Options{})
	first, err := b.Build(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	second, err := b.Build(cfg)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("builds differ (-first +second):\n%s", diff)
	}
}
