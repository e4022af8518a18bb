package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/utils/v2"
	"github.com/google/uuid"

	"wordlookup/internal/config"
	"wordlookup/internal/dictionary"
	"wordlookup/internal/lookupstate"
	"wordlookup/internal/models"
	"wordlookup/internal/render"
	"wordlookup/internal/validation"
	"wordlookup/pkg/ctxutil"
)

// topWordsLimit is how many popular words the home page lists.
const topWordsLimit = 10

// DictionaryHandler serves the search page.
type DictionaryHandler struct {
	lookup   Lookuper
	recorder OutcomeRecorder
	topWords TopWordsSource
	cfg      *config.Config
}

// NewDictionaryHandler creates a new dictionary handler. recorder and
// topWords may be nil.
func NewDictionaryHandler(lookup Lookuper, recorder OutcomeRecorder, topWords TopWordsSource, cfg *config.Config) *DictionaryHandler {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &DictionaryHandler{
		lookup:   lookup,
		recorder: recorder,
		topWords: topWords,
		cfg:      cfg,
	}
}

// Index renders the page with the session's current lookup result.
func (h *DictionaryHandler) Index(c fiber.Ctx) error {
	result := h.currentResult(c)

	data := MergeBranding(h.resultData(result), h.cfg)

	if h.topWords != nil {
		top, err := h.topWords.GetTopWords(c.Context(), topWordsLimit)
		if err != nil {
			slog.Error("failed to load top words", "error", err)
		} else {
			data["TopWords"] = top
		}
	}

	return c.Render("index", data)
}

// Search looks up the submitted word. The Search button and the Enter key
// submit the same form; GET /search?word= is handled identically.
// On any failure the session keeps its previous result and nothing is shown
// to the user beyond the unchanged page.
func (h *DictionaryHandler) Search(c fiber.Ctx) error {
	word := validation.NormalizeWord(searchTerm(c))

	if !validation.ValidateWord(word) {
		slog.Warn("ignoring invalid search term", "word", word)
		return h.respond(c)
	}

	lookupID := uuid.New()
	ctx := ctxutil.WithLookupID(c.Context(), lookupID)

	result, err := h.lookup.Lookup(ctx, word)
	h.recorder.RecordWordLookup(word, dictionary.Outcome(err))
	if err != nil {
		// Already logged by the client; state stays as it was.
		return h.respond(c)
	}

	if err := lookupstate.Save(c, result); err != nil {
		slog.Error("failed to save lookup result", "lookup_id", lookupID.String(), "error", err)
	}

	return h.respond(c)
}

// respond finishes a search: HTMX requests get the results partial, plain
// form posts are redirected back to the page.
func (h *DictionaryHandler) respond(c fiber.Ctx) error {
	if c.Get("HX-Request") == "true" {
		return c.Render("partials/result", h.resultData(h.currentResult(c)), "")
	}
	return c.Redirect().Status(fiber.StatusSeeOther).To("/")
}

func (h *DictionaryHandler) currentResult(c fiber.Ctx) *models.LookupResult {
	result, err := lookupstate.Load(c)
	if err != nil {
		slog.Error("failed to load lookup result", "error", err)
		return nil
	}
	return result
}

func (h *DictionaryHandler) resultData(result *models.LookupResult) fiber.Map {
	word := ""
	if result != nil {
		word = result.Word
	}
	return fiber.Map{
		"Word": word,
		"View": render.Build(result, h.cfg.MediaBaseURL),
	}
}

// searchTerm reads the word from the form body, falling back to the query
// string. The result is copied out of the request buffer because it outlives
// the handler in metrics labels and background stats writes.
func searchTerm(c fiber.Ctx) string {
	if c.Method() == fiber.MethodPost {
		if w := c.FormValue("word"); w != "" {
			return utils.CopyString(w)
		}
	}
	return utils.CopyString(c.Query("word"))
}
