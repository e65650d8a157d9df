package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/remaimber-it/mcquiz/internal/loader"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportData struct {
	Version    string            `json:"version" example:"1.0"`
	ExportedAt string            `json:"exported_at"`
	Sets       []loader.Document `json:"sets"`
}

type ImportResult struct {
	SetsCreated      int      `json:"sets_created"`
	QuestionsCreated int      `json:"questions_created"`
	Skipped          int      `json:"skipped"`
	Errors           []string `json:"errors,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportAll writes every stored set as a downloadable document bundle.
// @Summary      Export all question sets
// @Tags         Export
// @Produce      json
// @Success      200  {object}  ExportData
// @Failure      500  {object}  ErrorResponse
// @Router       /export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	summaries, err := h.store.ListQuestionSets(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load question sets")
		return
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Sets:       make([]loader.Document, 0, len(summaries)),
	}

	for _, s := range summaries {
		set, err := h.store.GetQuestionSet(ctx, s.ID)
		if err != nil {
			h.logger.Warn("skipping set in export", "set_id", s.ID, "error", err)
			continue
		}
		exportData.Sets = append(exportData.Sets, loader.NewDocument(set))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=mcquiz-export.json")
	json.NewEncoder(w).Encode(exportData)
}

// importAll stores every valid set of an export bundle. Invalid sets are
// skipped and reported.
// @Summary      Import question sets
// @Tags         Export
// @Accept       json
// @Produce      json
// @Param        body  body      ExportData  true  "Export bundle"
// @Success      200   {object}  ImportResult
// @Failure      400   {object}  ErrorResponse
// @Router       /import [post]
func (h *Handler) importAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var importData ExportData
	if !decodeJSON(w, r, &importData) {
		return
	}

	result := ImportResult{}
	var errs *multierror.Error

	for i, doc := range importData.Sets {
		set, err := doc.ToQuestionSet()
		if err == nil {
			err = set.Validate()
		}
		if err != nil {
			if !isEmptySet(err) {
				errs = multierror.Append(errs, fmt.Errorf("set %d: %w", i+1, err))
			}
			result.Skipped++
			continue
		}

		if err := h.store.SaveQuestionSet(ctx, set); err != nil {
			h.logger.Error("failed to import question set", "title", set.Title, "error", err)
			errs = multierror.Append(errs, fmt.Errorf("set %d: save failed", i+1))
			result.Skipped++
			continue
		}
		result.SetsCreated++
		result.QuestionsCreated += set.Len()
	}

	if errs != nil {
		for _, err := range errs.Errors {
			result.Errors = append(result.Errors, err.Error())
		}
	}

	h.logger.Info("import finished",
		"sets_created", result.SetsCreated,
		"questions_created", result.QuestionsCreated,
		"skipped", result.Skipped,
	)
	respondJSON(w, http.StatusOK, result)
}
