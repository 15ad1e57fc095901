package cli

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/dotkit/pkg/cache"
)

func testPreviewServer(t *testing.T) *previewServer {
	t.Helper()
	c := testCLI(t)
	return &previewServer{
		cli:   c,
		input: writeGraphFile(t),
		opts:  &serveOpts{provider: "embedded"},
		store: cache.NewNullCache(),
		keyer: cache.NewScopedKeyer(nil, previewKeyPrefix),
	}
}

func TestServeIndex(t *testing.T) {
	srv := testPreviewServer(t)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/graph.svg") {
		t.Error("index page should reference the SVG endpoint")
	}
}

func TestServeSVG(t *testing.T) {
	srv := testPreviewServer(t)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graph.svg", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body does not look like SVG")
	}
}

func TestServeSVGCaches(t *testing.T) {
	srv := testPreviewServer(t)
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	srv.store = store

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graph.svg", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
}

func TestServeSVGMissingFile(t *testing.T) {
	srv := testPreviewServer(t)
	srv.input = "does-not-exist.json"

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graph.svg", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestServeHealthz(t *testing.T) {
	srv := testPreviewServer(t)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %q", rec.Body.String())
	}
}
