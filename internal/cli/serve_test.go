package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slantgrid/pkg/buildinfo"
	"github.com/matzehuels/slantgrid/pkg/errors"
	"github.com/matzehuels/slantgrid/pkg/observability"
	"github.com/matzehuels/slantgrid/pkg/pipeline"
	"github.com/matzehuels/slantgrid/pkg/sink"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Cleanup(observability.Reset)

	logger := log.New(io.Discard)
	defaults := pipeline.Options{}
	if err := defaults.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(newServer(pipeline.NewRunner(logger), defaults, logger).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func TestServeDrawingSVG(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/drawing.svg?width=100&height=50&seed=7")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if resp.Header.Get("X-Drawing-ID") == "" {
		t.Error("missing X-Drawing-ID")
	}
	if got := resp.Header.Get("X-Drawing-Seed"); got != "7" {
		t.Errorf("X-Drawing-Seed = %q, want 7", got)
	}
	if got := resp.Header.Get("Server"); got != buildinfo.UserAgent() {
		t.Errorf("Server = %q, want %q", got, buildinfo.UserAgent())
	}
	if !strings.Contains(string(body), `width="100" height="50"`) {
		t.Errorf("SVG has wrong size: %.120s", body)
	}
}

func TestServeDrawingSameSeedSameImage(t *testing.T) {
	ts := newTestServer(t)

	_, a := get(t, ts.URL+"/drawing.png?width=120&height=90&seed=11")
	_, b := get(t, ts.URL+"/drawing.png?width=120&height=90&seed=11")
	if !bytes.Equal(a, b) {
		t.Error("same seed should serve identical PNGs")
	}

	_, c := get(t, ts.URL+"/drawing.svg?width=120&height=90&seed=11")
	_, d := get(t, ts.URL+"/drawing.svg?width=120&height=90&seed=11")
	// Drawing IDs differ per request; strip them before comparing.
	strip := func(b []byte) string {
		s := string(b)
		i := strings.Index(s, ` data-id="`)
		j := strings.Index(s[i+10:], `"`)
		return s[:i] + s[i+10+j+1:]
	}
	if strip(c) != strip(d) {
		t.Error("same seed should serve identical SVG geometry")
	}
}

func TestServeDrawingJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/drawing.json?width=300&height=200&seed=4")
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var doc struct {
		ID     string  `json:"id"`
		Seed   uint64  `json:"seed"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.ID != resp.Header.Get("X-Drawing-ID") {
		t.Errorf("JSON id %q does not match header %q", doc.ID, resp.Header.Get("X-Drawing-ID"))
	}
	if doc.Seed != 4 || doc.Width != 300 || doc.Height != 200 {
		t.Errorf("doc = %+v", doc)
	}
}

func TestServeDrawingErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
		code   errors.Code
	}{
		{"unknown format", "/drawing.gif", http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"bad width", "/drawing.svg?width=wide", http.StatusBadRequest, errors.ErrCodeInvalidDimensions},
		{"zero height", "/drawing.svg?height=0", http.StatusBadRequest, errors.ErrCodeInvalidDimensions},
		{"huge width", "/drawing.svg?width=999999", http.StatusBadRequest, errors.ErrCodeInvalidDimensions},
		{"bad seed", "/drawing.svg?seed=-1", http.StatusBadRequest, errors.ErrCodeInvalidInput},
		{"png over raster budget", "/drawing.png?width=16384&height=16384", http.StatusBadRequest, errors.ErrCodeInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d (%s)", resp.StatusCode, tt.status, body)
			}
			var e errorResponse
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if e.Error != tt.code {
				t.Errorf("error code = %s, want %s", e.Error, tt.code)
			}
		})
	}
}

func TestServeDrawingPDF(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/drawing.pdf?width=80&height=60&seed=2")
	if !sink.PDFAvailable() {
		if resp.StatusCode != http.StatusNotImplemented {
			t.Errorf("without rsvg-convert want 501, got %d", resp.StatusCode)
		}
		return
	}
	if resp.StatusCode != http.StatusOK || !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Errorf("status = %d, body prefix = %.8q", resp.StatusCode, body)
	}
}

func TestServeIndex(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/?width=640&height=480")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(string(body), "/drawing.svg?width=640&height=480") {
		t.Errorf("index should embed a sized drawing:\n%s", body)
	}
}

func TestServeHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var health map[string]string
	if err := json.Unmarshal(body, &health); err != nil {
		t.Fatal(err)
	}
	if health["status"] != "ok" || health["version"] != buildinfo.Version {
		t.Errorf("health = %v", health)
	}
}

func TestServeFiresServerHooks(t *testing.T) {
	ts := newTestServer(t)
	hooks := &recordingServerHooks{}
	observability.SetServerHooks(hooks)

	get(t, ts.URL+"/drawing.svg?seed=1")
	get(t, ts.URL+"/drawing.gif")

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if hooks.requests != 2 {
		t.Errorf("requests = %d, want 2", hooks.requests)
	}
	want := []int{http.StatusOK, http.StatusBadRequest}
	if len(hooks.statuses) != 2 || hooks.statuses[0] != want[0] || hooks.statuses[1] != want[1] {
		t.Errorf("statuses = %v, want %v", hooks.statuses, want)
	}
}

type recordingServerHooks struct {
	mu       sync.Mutex
	requests int
	statuses []int
}

func (h *recordingServerHooks) OnRequest(context.Context, string, string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests++
}

func (h *recordingServerHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}
