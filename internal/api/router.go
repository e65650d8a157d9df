// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every question-set route onto mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Quiz resources
	mux.HandleFunc("GET /questions.json", h.defaultQuestions)

	// Question sets
	mux.HandleFunc("POST /question-sets", h.createQuestionSet)
	mux.HandleFunc("GET /question-sets", h.listQuestionSets)
	mux.HandleFunc("GET /question-sets/{setID}", h.getQuestionSet)
	mux.HandleFunc("DELETE /question-sets/{setID}", h.deleteQuestionSet)
	mux.HandleFunc("GET /question-sets/{setID}/questions.json", h.getQuestionSetDocument)

	// Export / Import
	mux.HandleFunc("GET /export", h.exportAll)
	mux.HandleFunc("POST /import", h.importAll)
}
