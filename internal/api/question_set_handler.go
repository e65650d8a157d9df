package api

import (
	"errors"
	"mime"
	"net/http"
	"time"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
	"github.com/remaimber-it/mcquiz/internal/loader"
)

// ── Request / Response types ────────────────────────────────────────────────

type QuestionSetSummaryResponse struct {
	ID            string `json:"id" example:"6f1c2b9e-8a4d-4d7e-9b61-3f0c1a2d5e77"`
	Title         string `json:"title" example:"UPSC Practice Quiz"`
	QuestionCount int    `json:"question_count" example:"10"`
	CreatedAt     string `json:"created_at" example:"2026-01-02T15:04:05Z"`
}

type QuestionResponse struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"prompt" example:"What is the capital of India?"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index" example:"1"`
	Explanation  string   `json:"explanation"`
}

type QuestionSetResponse struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
}

func newQuestionSetResponse(set *questionbank.QuestionSet) QuestionSetResponse {
	questions := make([]QuestionResponse, len(set.Questions))
	for i, q := range set.Questions {
		questions[i] = QuestionResponse{
			ID:           q.ID,
			Prompt:       q.Prompt,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		}
	}
	return QuestionSetResponse{ID: set.ID, Title: set.Title, Questions: questions}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// defaultQuestions serves the default set as a quiz resource document.
// @Summary      Default quiz resource
// @Description  Returns the configured default question set, or the most recent one, in the document shape the quiz client loads.
// @Tags         Quiz
// @Produce      json
// @Success      200  {object}  loader.Document
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /questions.json [get]
func (h *Handler) defaultQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	setID := h.defaultSetID
	if setID == "" {
		id, err := h.store.LatestQuestionSetID(ctx)
		if h.handleStoreError(w, err, "question set") {
			return
		}
		setID = id
	}

	set, err := h.store.GetQuestionSet(ctx, setID)
	if h.handleStoreError(w, err, "question set") {
		return
	}

	respondJSON(w, http.StatusOK, loader.NewDocument(set))
}

// createQuestionSet stores a new question set.
// @Summary      Create a question set
// @Description  Create a question set from a quiz document (JSON, or YAML with a yaml content type). Every question is validated.
// @Tags         QuestionSets
// @Accept       json
// @Produce      json
// @Param        body  body      loader.Document  true  "Quiz document"
// @Success      201   {object}  QuestionSetSummaryResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /question-sets [post]
func (h *Handler) createQuestionSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := loader.FormatJSON
	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil {
		switch mediaType {
		case "application/yaml", "application/x-yaml", "text/yaml":
			format = loader.FormatYAML
		}
	}

	set, err := loader.Decode(http.MaxBytesReader(w, r.Body, maxBodySize), format)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := set.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveQuestionSet(ctx, set); err != nil {
		h.logger.Error("failed to save question set", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save question set")
		return
	}

	h.logger.Info("question set created", "set_id", set.ID, "questions", set.Len())
	respondJSON(w, http.StatusCreated, QuestionSetSummaryResponse{
		ID:            set.ID,
		Title:         set.Title,
		QuestionCount: set.Len(),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	})
}

// listQuestionSets lists every stored set, newest first.
// @Summary      List question sets
// @Tags         QuestionSets
// @Produce      json
// @Success      200  {array}   QuestionSetSummaryResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /question-sets [get]
func (h *Handler) listQuestionSets(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.ListQuestionSets(r.Context())
	if err != nil {
		h.logger.Error("failed to list question sets", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load question sets")
		return
	}

	response := make([]QuestionSetSummaryResponse, len(summaries))
	for i, s := range summaries {
		response[i] = QuestionSetSummaryResponse{
			ID:            s.ID,
			Title:         s.Title,
			QuestionCount: s.QuestionCount,
			CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	respondJSON(w, http.StatusOK, response)
}

// getQuestionSet returns a set with all its questions.
// @Summary      Get a question set
// @Tags         QuestionSets
// @Produce      json
// @Param        setID  path      string  true  "Question set ID"
// @Success      200    {object}  QuestionSetResponse
// @Failure      404    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /question-sets/{setID} [get]
func (h *Handler) getQuestionSet(w http.ResponseWriter, r *http.Request) {
	set, err := h.store.GetQuestionSet(r.Context(), r.PathValue("setID"))
	if h.handleStoreError(w, err, "question set") {
		return
	}

	respondJSON(w, http.StatusOK, newQuestionSetResponse(set))
}

// getQuestionSetDocument returns a set in the quiz resource shape, so a
// client can point its source at this URL.
// @Summary      Quiz resource for a set
// @Tags         Quiz
// @Produce      json
// @Param        setID  path      string  true  "Question set ID"
// @Success      200    {object}  loader.Document
// @Failure      404    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /question-sets/{setID}/questions.json [get]
func (h *Handler) getQuestionSetDocument(w http.ResponseWriter, r *http.Request) {
	set, err := h.store.GetQuestionSet(r.Context(), r.PathValue("setID"))
	if h.handleStoreError(w, err, "question set") {
		return
	}

	respondJSON(w, http.StatusOK, loader.NewDocument(set))
}

// deleteQuestionSet removes a set and its questions.
// @Summary      Delete a question set
// @Tags         QuestionSets
// @Param        setID  path  string  true  "Question set ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /question-sets/{setID} [delete]
func (h *Handler) deleteQuestionSet(w http.ResponseWriter, r *http.Request) {
	setID := r.PathValue("setID")
	err := h.store.DeleteQuestionSet(r.Context(), setID)
	if h.handleStoreError(w, err, "question set") {
		return
	}

	h.logger.Info("question set deleted", "set_id", setID)
	w.WriteHeader(http.StatusNoContent)
}

// isEmptySet reports whether err is the empty-set validation failure.
func isEmptySet(err error) bool {
	return errors.Is(err, questionbank.ErrEmptyQuestionSet)
}
