package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wordlookup/internal/models"
	"wordlookup/pkg/ctxutil"
)

const (
	userAgent = "wordlookup/1.0"

	// maxBodyBytes caps how much of a response is read.
	maxBodyBytes = 4 << 20
)

// Client fetches definitions and pronunciation tokens from the
// Merriam-Webster Collegiate dictionary API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the API at baseURL authenticated with apiKey.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "dictionary"),
	}
}

// RequestURL returns the URL queried for word. The key is sent as a query
// parameter and sents is a value-less flag.
func (c *Client) RequestURL(word string) string {
	return c.baseURL + "/" + url.PathEscape(word) + "?key=" + url.QueryEscape(c.apiKey) + "&sents"
}

// Lookup performs a single request for word and returns the parsed result.
// There is no retry. Failures are logged and returned; the caller keeps
// whatever it displayed before.
func (c *Client) Lookup(ctx context.Context, word string) (*models.LookupResult, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}

	log := c.log
	if id, ok := ctxutil.LookupIDFromCtx(ctx); ok {
		log = log.With(slog.String("lookup_id", id.String()))
	}

	log.DebugContext(ctx, "dictionary request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RequestURL(word), nil)
	if err != nil {
		return nil, fmt.Errorf("dictionary: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.ErrorContext(ctx, "error fetching data", slog.String("word", word), slog.String("error", redact(err, c.apiKey)))
		return nil, fmt.Errorf("%w: %s", ErrUpstream, redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		log.ErrorContext(ctx, "error fetching data", slog.String("word", word), slog.Int("status", resp.StatusCode))
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.ErrorContext(ctx, "error reading response", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: read body: %s", ErrUpstream, err.Error())
	}

	result, err := parseResponse(word, body)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			log.WarnContext(ctx, "no data available for the given word", slog.String("word", word), slog.String("reason", err.Error()))
		} else {
			log.ErrorContext(ctx, "error parsing JSON data", slog.String("word", word), slog.String("error", err.Error()))
		}
		return nil, err
	}

	log.DebugContext(ctx, "dictionary response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("definitions", len(result.Definitions)),
		slog.Bool("audio", result.HasAudio()),
	)

	return result, nil
}

// parseResponse decodes a Collegiate API body. Only the first array element
// is used. A leading string element means the API returned spelling
// suggestions instead of entries.
func parseResponse(word string, body []byte) (*models.LookupResult, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(body, &elems); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err.Error())
	}

	if len(elems) == 0 {
		return nil, ErrNoData
	}

	first := bytes.TrimSpace(elems[0])
	switch {
	case len(first) == 0 || bytes.Equal(first, []byte("null")):
		return nil, ErrNoData
	case first[0] == '"':
		return nil, &NotFoundError{Word: word, Suggestions: decodeSuggestions(elems)}
	case first[0] != '{':
		return nil, fmt.Errorf("%w: first element is not an entry", ErrMalformedResponse)
	}

	var entry apiEntry
	if err := json.Unmarshal(first, &entry); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err.Error())
	}
	if entry.Hwi == nil {
		return nil, fmt.Errorf("%w: entry has no headword information", ErrMalformedResponse)
	}

	definitions := entry.Shortdef
	if definitions == nil {
		definitions = []string{}
	}

	return &models.LookupResult{
		Word:        word,
		Definitions: definitions,
		AudioToken:  entry.audioToken(),
	}, nil
}

// decodeSuggestions keeps every string element of the array.
func decodeSuggestions(elems []json.RawMessage) []string {
	suggestions := make([]string, 0, len(elems))
	for _, raw := range elems {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}

// redact removes the API key from transport errors, which embed the request URL.
func redact(err error, key string) string {
	msg := err.Error()
	if key == "" {
		return msg
	}
	return strings.ReplaceAll(msg, url.QueryEscape(key), "REDACTED")
}
