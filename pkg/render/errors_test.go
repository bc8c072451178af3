package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/model"
)

func errorTestForm() model.FormModel {
	return model.FormModel{
		Action: "mailto:team@example.com?subject=Hello",
		Method: "POST",
		Fields: []model.Field{
			{Label: "Name", Name: "name", Type: "text"},
			{Label: "Email", Name: "email", Type: "email"},
		},
	}
}

func TestMapErrorPayloadSplitsFieldAndFormErrors(t *testing.T) {
	mapping := MapErrorPayload(errorTestForm(), map[string][]string{
		"name":    {"this field is required"},
		"email":   {" invalid address "},
		"form":    {"submission rejected"},
		"unknown": {"stray message"},
	})

	wantFields := map[string][]string{
		"name":  {"this field is required"},
		"email": {"invalid address"},
	}
	if diff := cmp.Diff(wantFields, mapping.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	for _, msg := range []string{"submission rejected", "stray message"} {
		if !contains(mapping.Form, msg) {
			t.Fatalf("form errors missing %q: %v", msg, mapping.Form)
		}
	}
}

func TestMapErrorPayloadDropsEmptyMessages(t *testing.T) {
	mapping := MapErrorPayload(errorTestForm(), map[string][]string{
		"name": {"  ", ""},
	})
	if mapping.Fields != nil {
		t.Fatalf("expected no field errors, got %v", mapping.Fields)
	}
	if mapping.Form != nil {
		t.Fatalf("expected no form errors, got %v", mapping.Form)
	}
}

func TestMapErrorPayloadDeduplicates(t *testing.T) {
	mapping := MapErrorPayload(errorTestForm(), map[string][]string{
		"name": {"required", "required", " required "},
	})
	want := map[string][]string{"name": {"required"}}
	if diff := cmp.Diff(want, mapping.Fields); diff != "" {
		t.Fatalf("dedupe mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayloadFormLevelKeys(t *testing.T) {
	for _, key := range []string{"", "form", "base", "__all__", "non_field_errors"} {
		mapping := MapErrorPayload(errorTestForm(), map[string][]string{
			key: {"something went wrong"},
		})
		if mapping.Fields != nil {
			t.Fatalf("key %q should not map to a field: %v", key, mapping.Fields)
		}
		if !contains(mapping.Form, "something went wrong") {
			t.Fatalf("key %q missing from form errors: %v", key, mapping.Form)
		}
	}
}

func TestMergeFormErrors(t *testing.T) {
	got := MergeFormErrors([]string{"first", " second "}, "second", "", "third")
	want := []string{"first", "second", "third"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
