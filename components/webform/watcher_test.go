package webform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherInvalidatesCacheOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contact.json")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	component := testComponent(t, testConfig, WithCacheTTL(time.Minute))

	rec := httptest.NewRecorder()
	component.PageHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))
	if _, ok := component.cachedPage(); !ok {
		t.Fatal("expected page cached")
	}

	watcher, err := NewWatcher(component, WatcherConfig{
		Path:          path,
		DebounceDelay: 10 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := watcher.Start(ctx); err != nil {
		t.Fatalf("start watcher: %v", err)
	}

	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		if _, ok := component.cachedPage(); !ok {
			return
		}
		select {
		case <-deadline:
			t.Fatal("cache was not invalidated after config change")
		case <-time.After(20 * time.Millisecond):
		}
	}
}
