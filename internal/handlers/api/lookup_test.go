package api

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"wordlookup/internal/config"
	"wordlookup/internal/models"
	"wordlookup/internal/testutil"
)

type outcomeCall struct {
	word    string
	outcome string
}

type recorded struct {
	mu    sync.Mutex
	calls []outcomeCall
}

func (r *recorded) RecordWordLookup(word, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, outcomeCall{word: word, outcome: outcome})
}

func (r *recorded) list() []outcomeCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]outcomeCall(nil), r.calls...)
}

type successEnvelope struct {
	Status string                   `json:"status"`
	Data   models.LookupAPIResponse `json:"data"`
}

func setupAPI(t *testing.T) (*fiber.App, *testutil.FakeDictionary, *recorded) {
	t.Helper()
	dict := testutil.NewFakeDictionary(t)
	rec := &recorded{}
	h := NewLookupHandler(dict.Client(), rec, config.DefaultMediaBaseURL)

	app := fiber.New()
	app.Get("/api/v1/lookup/:word", h.Lookup)
	return app, dict, rec
}

func get(t *testing.T, app *fiber.App, path string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp.StatusCode, body
}

func TestLookup_Success(t *testing.T) {
	app, dict, rec := setupAPI(t)
	dict.Set("abc", http.StatusOK, testutil.EntryJSON("abc", "first sense", "second sense"))

	status, body := get(t, app, "/api/v1/lookup/abc")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", status, body)
	}

	var env successEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if env.Status != "ok" {
		t.Errorf("status field = %q, want ok", env.Status)
	}
	if env.Data.LookupID == uuid.Nil {
		t.Error("lookup_id is empty")
	}
	if env.Data.Word != "abc" {
		t.Errorf("word = %q, want abc", env.Data.Word)
	}
	if want := []string{"first sense", "second sense"}; !reflect.DeepEqual(env.Data.Definitions, want) {
		t.Errorf("definitions = %v, want %v", env.Data.Definitions, want)
	}
	if env.Data.AudioToken != "abc" {
		t.Errorf("audio_token = %q, want abc", env.Data.AudioToken)
	}
	if want := "https://media.merriam-webster.com/soundc11/a/abc.wav"; env.Data.AudioURL != want {
		t.Errorf("audio_url = %q, want %q", env.Data.AudioURL, want)
	}

	if got, want := rec.list(), []outcomeCall{{"abc", models.OutcomeResolved}}; !reflect.DeepEqual(got, want) {
		t.Errorf("recorded = %v, want %v", got, want)
	}
}

func TestLookup_NoAudioOmitsURL(t *testing.T) {
	app, dict, _ := setupAPI(t)
	dict.Set("cat", http.StatusOK, testutil.EntryJSON("", "a feline"))

	status, body := get(t, app, "/api/v1/lookup/cat")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if strings.Contains(string(body), "audio_url") || strings.Contains(string(body), "audio_token") {
		t.Errorf("body has audio fields: %s", body)
	}
}

func TestLookup_EscapedWord(t *testing.T) {
	app, dict, _ := setupAPI(t)
	dict.Set("ad hoc", http.StatusOK, testutil.EntryJSON("", "for a particular purpose"))

	status, body := get(t, app, "/api/v1/lookup/ad%20hoc")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", status, body)
	}

	var env successEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if env.Data.Word != "ad hoc" {
		t.Errorf("word = %q, want %q", env.Data.Word, "ad hoc")
	}
}

func TestLookup_Errors(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		status     int
		body       string
		wantStatus int
		wantError  string
		outcome    string
	}{
		{"no data", "qqqq", http.StatusOK, `[]`, http.StatusNotFound, "no data available for the given word", models.OutcomeNoData},
		{"upstream 500", "cat", http.StatusInternalServerError, ``, http.StatusBadGateway, "dictionary request failed", models.OutcomeUpstreamError},
		{"malformed", "cat", http.StatusOK, `{not json`, http.StatusBadGateway, "dictionary returned a malformed response", models.OutcomeMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, dict, rec := setupAPI(t)
			dict.Set(tt.word, tt.status, tt.body)

			status, body := get(t, app, "/api/v1/lookup/"+tt.word)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}

			var apiErr models.LookupAPIError
			if err := json.Unmarshal(body, &apiErr); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if apiErr.Status != "error" {
				t.Errorf("status field = %q, want error", apiErr.Status)
			}
			if apiErr.Error != tt.wantError {
				t.Errorf("error = %q, want %q", apiErr.Error, tt.wantError)
			}
			if apiErr.LookupID == uuid.Nil {
				t.Error("lookup_id is empty")
			}
			if got, want := rec.list(), []outcomeCall{{tt.word, tt.outcome}}; !reflect.DeepEqual(got, want) {
				t.Errorf("recorded = %v, want %v", got, want)
			}
		})
	}
}

func TestLookup_Suggestions(t *testing.T) {
	app, dict, _ := setupAPI(t)
	dict.Set("volumnous", http.StatusOK, `["voluminous","volumes"]`)

	status, body := get(t, app, "/api/v1/lookup/volumnous")
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}

	var apiErr models.LookupAPIError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if want := []string{"voluminous", "volumes"}; !reflect.DeepEqual(apiErr.Suggestions, want) {
		t.Errorf("suggestions = %v, want %v", apiErr.Suggestions, want)
	}
}

func TestLookup_InvalidWord(t *testing.T) {
	app, dict, rec := setupAPI(t)

	status, body := get(t, app, "/api/v1/lookup/%3Fkey%3Dx")
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if !strings.Contains(string(body), "invalid word") {
		t.Errorf("body = %s, want invalid word", body)
	}
	if n := len(dict.Requests()); n != 0 {
		t.Errorf("upstream requests = %d, want 0", n)
	}
	if calls := rec.list(); len(calls) != 0 {
		t.Errorf("recorded = %v, want none", calls)
	}
}

// Recorded words must not alias the request buffer of later requests.
func TestLookup_RecordedWordsOutliveRequest(t *testing.T) {
	app, dict, rec := setupAPI(t)
	dict.Set("cat", http.StatusOK, testutil.EntryJSON("", "a feline"))
	dict.Set("boom", http.StatusInternalServerError, ``)

	get(t, app, "/api/v1/lookup/cat")
	get(t, app, "/api/v1/lookup/boom")
	get(t, app, "/api/v1/lookup/nothing")

	want := []outcomeCall{
		{"cat", models.OutcomeResolved},
		{"boom", models.OutcomeUpstreamError},
		{"nothing", models.OutcomeNoData},
	}
	if got := rec.list(); !reflect.DeepEqual(got, want) {
		t.Errorf("recorded = %v, want %v", got, want)
	}
}

func TestLookup_NilRecorder(t *testing.T) {
	dict := testutil.NewFakeDictionary(t)
	dict.Set("cat", http.StatusOK, testutil.EntryJSON("", "a feline"))
	h := NewLookupHandler(dict.Client(), nil, config.DefaultMediaBaseURL)

	app := fiber.New()
	app.Get("/api/v1/lookup/:word", h.Lookup)

	if status, _ := get(t, app, "/api/v1/lookup/cat"); status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
}
