package api

import (
	"context"
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/utils/v2"
	"github.com/google/uuid"

	"wordlookup/internal/dictionary"
	"wordlookup/internal/models"
	"wordlookup/internal/validation"
	"wordlookup/pkg/ctxutil"
)

// Lookuper fetches one word from the dictionary.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (*models.LookupResult, error)
}

// OutcomeRecorder counts lookup outcomes.
type OutcomeRecorder interface {
	RecordWordLookup(word, outcome string)
}

// LookupHandler exposes dictionary lookups as JSON. It never touches the
// viewer's session.
type LookupHandler struct {
	lookup    Lookuper
	recorder  OutcomeRecorder
	mediaBase string
}

// NewLookupHandler creates a new API lookup handler. recorder may be nil.
func NewLookupHandler(lookup Lookuper, recorder OutcomeRecorder, mediaBase string) *LookupHandler {
	return &LookupHandler{lookup: lookup, recorder: recorder, mediaBase: mediaBase}
}

// Lookup handles GET /api/v1/lookup/:word.
func (h *LookupHandler) Lookup(c fiber.Ctx) error {
	// Params aliases the request buffer; the word is kept past this handler.
	raw, err := url.PathUnescape(utils.CopyString(c.Params("word")))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid word")
	}
	word := validation.NormalizeWord(raw)
	if !validation.ValidateWord(word) {
		return jsonError(c, fiber.StatusBadRequest, "invalid word")
	}

	lookupID := uuid.New()
	ctx := ctxutil.WithLookupID(c.Context(), lookupID)

	result, err := h.lookup.Lookup(ctx, word)
	if h.recorder != nil {
		h.recorder.RecordWordLookup(word, dictionary.Outcome(err))
	}
	if err != nil {
		return lookupError(c, lookupID, err)
	}

	return jsonSuccess(c, models.LookupAPIResponse{
		LookupID:    lookupID,
		Word:        result.Word,
		Definitions: result.Definitions,
		AudioToken:  result.AudioToken,
		AudioURL:    dictionary.AudioURL(h.mediaBase, result.AudioToken),
	})
}

func lookupError(c fiber.Ctx, lookupID uuid.UUID, err error) error {
	body := models.LookupAPIError{Status: "error", LookupID: lookupID}
	status := fiber.StatusBadGateway

	var nf *dictionary.NotFoundError
	switch {
	case errors.As(err, &nf):
		status = fiber.StatusNotFound
		body.Error = "no data available for the given word"
		body.Suggestions = nf.Suggestions
	case errors.Is(err, dictionary.ErrNoData):
		status = fiber.StatusNotFound
		body.Error = "no data available for the given word"
	case errors.Is(err, dictionary.ErrMalformedResponse):
		body.Error = "dictionary returned a malformed response"
	default:
		body.Error = "dictionary request failed"
	}

	return c.Status(status).JSON(body)
}
