//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// ScrapeCall is one batch received by the fake scraping service.
type ScrapeCall struct {
	Engine     string   `json:"engine"`
	BatchID    string   `json:"batch_id"`
	Keywords   []string `json:"keywords"`
	Location   string   `json:"location"`
	MaxResults int      `json:"max_results"`
	BatchSize  int      `json:"batch_size"`
}

// FakeScraper stands in for the remote scraping service.
type FakeScraper struct {
	srv *httptest.Server

	mu     sync.Mutex
	calls  []ScrapeCall
	status int
}

func NewFakeScraper(t *testing.T) *FakeScraper {
	f := &FakeScraper{status: http.StatusAccepted}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *FakeScraper) URL() string {
	return f.srv.URL
}

// FailWith makes every following batch fail with status until Reset.
func (f *FakeScraper) FailWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

func (f *FakeScraper) Calls() []ScrapeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ScrapeCall(nil), f.calls...)
}

func (f *FakeScraper) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
	f.status = http.StatusAccepted
}

func (f *FakeScraper) handle(w http.ResponseWriter, r *http.Request) {
	engine, ok := strings.CutPrefix(r.URL.Path, "/scrape/")
	if r.Method != http.MethodPost || !ok {
		http.NotFound(w, r)
		return
	}

	var call ScrapeCall
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	call.Engine = engine

	f.mu.Lock()
	status := f.status
	if status < 300 {
		f.calls = append(f.calls, call)
	}
	f.mu.Unlock()

	if status >= 300 {
		http.Error(w, "scraper unavailable", status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"batch_id": call.BatchID,
		"accepted": len(call.Keywords),
	})
}
