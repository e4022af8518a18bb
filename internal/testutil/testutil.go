// Package testutil provides test utilities and helpers.
package testutil

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"wordlookup/internal/dictionary"
)

// Response is one canned upstream answer.
type Response struct {
	Status int
	Body   string
}

// FakeDictionary is an httptest server standing in for the dictionary API.
// Answers are keyed by word; unknown words get an empty array.
type FakeDictionary struct {
	Server *httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	requests  []*http.Request
}

// NewFakeDictionary starts a fake dictionary server that is closed when the test ends.
func NewFakeDictionary(t *testing.T) *FakeDictionary {
	t.Helper()

	f := &FakeDictionary{responses: map[string]Response{}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// Set registers the answer for word.
func (f *FakeDictionary) Set(word string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[word] = Response{Status: status, Body: body}
}

// Requests returns a copy of every request received so far.
func (f *FakeDictionary) Requests() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*http.Request(nil), f.requests...)
}

// Client returns a dictionary client pointed at the fake server.
func (f *FakeDictionary) Client() *dictionary.Client {
	return dictionary.NewClient(f.Server.URL, "test-key", 5*time.Second, DiscardLogger())
}

func (f *FakeDictionary) serve(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimPrefix(r.URL.Path, "/")

	f.mu.Lock()
	f.requests = append(f.requests, r.Clone(r.Context()))
	resp, ok := f.responses[word]
	f.mu.Unlock()

	if !ok {
		resp = Response{Status: http.StatusOK, Body: `[]`}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	io.WriteString(w, resp.Body)
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// EntryJSON builds a minimal Collegiate API body with one entry.
func EntryJSON(audio string, shortdefs ...string) string {
	var b strings.Builder
	b.WriteString(`[{"hwi":{"hw":"x"`)
	if audio != "" {
		b.WriteString(`,"prs":[{"mw":"x","sound":{"audio":"` + audio + `"}}]`)
	}
	b.WriteString(`},"shortdef":[`)
	for i, d := range shortdefs {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`"` + d + `"`)
	}
	b.WriteString(`]}]`)
	return b.String()
}
