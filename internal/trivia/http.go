package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/luiarhs/trivia-api/internal/logging"
	"github.com/luiarhs/trivia-api/pkg/http/respond"
)

// HTTPHandlers exposes the question bank over REST.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for the trivia endpoints.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Register wires the trivia routes onto mux.
func (h *HTTPHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/questions", h.ListQuestions)
	mux.HandleFunc("POST /v1/questions", h.CreateQuestion)
	mux.HandleFunc("GET /v1/questions/{id}", h.GetQuestion)
	mux.HandleFunc("DELETE /v1/questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("GET /v1/categories", h.ListCategories)
	mux.HandleFunc("GET /v1/categories/{id}/questions", h.CategoryQuestions)
	mux.HandleFunc("POST /v1/quizzes", h.PlayQuiz)
}

type listQuestionsResponse struct {
	Success           bool     `json:"success"`
	NumberOfQuestions int      `json:"number_of_questions"`
	Questions         []string `json:"questions"`
	CurrentCategory   *string  `json:"current_category"`
	Categories        []string `json:"categories"`
}

// ListQuestions handles GET /v1/questions?category=&search=&page=.
// Empty category and search values are normalized to "absent" before the
// engine runs.
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 1
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respond.BadRequest(w, respond.ErrCodeInvalidRequest, "page must be an integer")
			return
		}
		page = parsed
	}

	params := ListParams{
		Category: strings.TrimSpace(query.Get("category")),
		Search:   strings.TrimSpace(query.Get("search")),
		Page:     page,
	}

	result, err := h.service.ListQuestions(r.Context(), params)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, listQuestionsResponse{
		Success:           true,
		NumberOfQuestions: result.Total,
		Questions:         result.Questions,
		CurrentCategory:   result.CurrentCategory,
		Categories:        result.Categories,
	})
}

type questionResponse struct {
	Success  bool     `json:"success"`
	Question Question `json:"question"`
}

// GetQuestion handles GET /v1/questions/{id} and returns the full record,
// answer included.
func (h *HTTPHandlers) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	question, err := h.service.GetQuestion(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, questionResponse{Success: true, Question: question})
}

type deleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// DeleteQuestion handles DELETE /v1/questions/{id}. Deleting an id that does
// not exist responds not_found rather than silently succeeding.
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, deleteQuestionResponse{Success: true, Deleted: id})
}

type createQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID int64  `json:"category_id"`
	Difficulty int    `json:"difficulty"`
}

type createQuestionResponse struct {
	Success   bool  `json:"success"`
	CreatedID int64 `json:"created_id"`
}

// CreateQuestion handles POST /v1/questions.
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, respond.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		respond.BadRequest(w, respond.ErrCodeInvalidRequest, "question and answer are required")
		return
	}
	if req.CategoryID <= 0 {
		respond.BadRequest(w, respond.ErrCodeInvalidRequest, "category_id must be a positive integer")
		return
	}

	id, err := h.service.CreateQuestion(r.Context(), NewQuestion{
		CategoryID: req.CategoryID,
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, createQuestionResponse{Success: true, CreatedID: id})
}

type listCategoriesResponse struct {
	Success            bool       `json:"success"`
	NumberOfCategories int        `json:"number_of_categories"`
	Categories         []Category `json:"categories"`
}

// ListCategories handles GET /v1/categories.
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, listCategoriesResponse{
		Success:            true,
		NumberOfCategories: len(categories),
		Categories:         categories,
	})
}

type categoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	CurrentCategory string     `json:"current_category"`
	Questions       []Question `json:"questions"`
}

// CategoryQuestions handles GET /v1/categories/{id}/questions: full records
// for one category, unprocessable when the category is empty.
func (h *HTTPHandlers) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	category, questions, err := h.service.CategoryQuestions(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		CurrentCategory: category.Type,
		Questions:       questions,
	})
}

type playQuizRequest struct {
	// PreviousQuestions is required, even when empty; a pointer distinguishes
	// an omitted field from an empty session.
	PreviousQuestions *[]int64 `json:"previous_questions"`
	QuizCategory      string   `json:"quiz_category"`
}

type playQuizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// PlayQuiz handles POST /v1/quizzes. A null question with success true means
// the pool is exhausted.
func (h *HTTPHandlers) PlayQuiz(w http.ResponseWriter, r *http.Request) {
	var req playQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, respond.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}
	if req.PreviousQuestions == nil {
		respond.BadRequest(w, respond.ErrCodeBadRequest, "previous_questions is required")
		return
	}

	question, err := h.service.PlayQuiz(r.Context(), *req.PreviousQuestions, strings.TrimSpace(req.QuizCategory))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, playQuizResponse{Success: true, Question: question})
}

func (h *HTTPHandlers) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.BadRequest(w, respond.ErrCodeInvalidRequest, "id must be an integer")
		return 0, false
	}
	return id, true
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.NotFound(w, "resource not found")
	case errors.Is(err, ErrNoQuestions):
		respond.Unprocessable(w, "category has no questions")
	default:
		// Prefer the request-scoped logger so the request id tags the failure.
		logger := logging.FromContext(r.Context())
		if logger.GetLevel() == zerolog.Disabled {
			logger = h.logger
		}
		logger.Error().Err(err).Str("path", r.URL.Path).Msg("store operation failed")
		respond.StoreFailure(w, "data store operation failed")
	}
}
