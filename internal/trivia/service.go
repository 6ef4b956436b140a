package trivia

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Service orchestrates the question bank: filter composition, pagination,
// quiz draws and the mutations around them. It is stateless across requests;
// quiz session state (the previously-seen ids) arrives fresh on every call.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	cache      CategoryCache
	pageSize   int
	logger     zerolog.Logger
}

// ServiceOptions tune the service. PageSize defaults to DefaultPageSize.
type ServiceOptions struct {
	PageSize int
}

// NewService wires the service. cache may be nil when Redis is not
// configured; the service then always reads categories from the store.
func NewService(questions QuestionStore, categories CategoryStore, cache CategoryCache, opts ServiceOptions, logger zerolog.Logger) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      cache,
		pageSize:   pageSize,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// ListParams are the normalized listing inputs. Empty Category and Search
// mean "absent"; the transport layer trims them before calling.
type ListParams struct {
	Category string
	Search   string
	Page     int
}

// ListResult is one listing page plus the context clients need around it:
// the pre-pagination total, the resolved category (nil when unfiltered) and
// the full set of category type names.
type ListResult struct {
	Total           int
	Questions       []string
	CurrentCategory *string
	Categories      []string
}

// ListQuestions composes the category and search filters, materializes the
// match set and returns the requested page. An unresolvable category name
// fails the whole operation with ErrNotFound; it never degrades to "all
// questions".
func (s *Service) ListQuestions(ctx context.Context, p ListParams) (ListResult, error) {
	var result ListResult

	filter := QuestionFilter{Search: p.Search}
	if p.Category != "" {
		cat, err := s.categories.ResolveByName(ctx, p.Category)
		if err != nil {
			return result, fmt.Errorf("resolve category %q: %w", p.Category, err)
		}
		filter.CategoryID = &cat.ID
		result.CurrentCategory = &cat.Type
	}

	questions, err := s.questions.List(ctx, filter)
	if err != nil {
		return result, fmt.Errorf("list questions: %w", err)
	}

	categories, err := s.categoryList(ctx)
	if err != nil {
		return result, fmt.Errorf("list categories: %w", err)
	}

	result.Total = len(questions)
	result.Questions = Paginate(questions, p.Page, s.pageSize)
	result.Categories = make([]string, 0, len(categories))
	for _, c := range categories {
		result.Categories = append(result.Categories, c.Type)
	}

	s.logger.Debug().
		Str("category", p.Category).
		Str("search", p.Search).
		Int("page", p.Page).
		Int("total", result.Total).
		Msg("listed questions")
	return result, nil
}

// GetQuestion returns the full record for id, or ErrNotFound.
func (s *Service) GetQuestion(ctx context.Context, id int64) (Question, error) {
	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

// DeleteQuestion removes id permanently. Deleting an absent id is
// ErrNotFound, not a silent success.
func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	deleted, err := s.questions.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	if !deleted {
		return fmt.Errorf("delete question %d: %w", id, ErrNotFound)
	}
	s.logger.Info().Int64("question_id", id).Msg("question deleted")
	return nil
}

// CreateQuestion inserts a question and returns the store-assigned id.
func (s *Service) CreateQuestion(ctx context.Context, q NewQuestion) (int64, error) {
	id, err := s.questions.Insert(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	s.logger.Info().Int64("question_id", id).Int64("category_id", q.CategoryID).Msg("question created")
	return id, nil
}

// ListCategories returns all categories with ids.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := s.categoryList(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CategoryQuestions is the display path for one category: the category must
// exist (ErrNotFound) and must have at least one question (ErrNoQuestions).
// Quiz pools do not go through here; see PlayQuiz.
func (s *Service) CategoryQuestions(ctx context.Context, id int64) (Category, []Question, error) {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return Category{}, nil, fmt.Errorf("get category %d: %w", id, err)
	}

	questions, err := s.questions.List(ctx, QuestionFilter{CategoryID: &cat.ID})
	if err != nil {
		return Category{}, nil, fmt.Errorf("list questions in category %d: %w", id, err)
	}
	if len(questions) == 0 {
		return Category{}, nil, fmt.Errorf("category %d: %w", id, ErrNoQuestions)
	}
	return cat, questions, nil
}

// PlayQuiz builds the pool (the whole bank, or one category's questions when
// a category name is given) and draws one unseen question. A nil result with
// a nil error means the pool is exhausted or empty, which is a normal quiz
// outcome. An unresolvable category name is ErrNotFound before any draw.
func (s *Service) PlayQuiz(ctx context.Context, previous []int64, category string) (*Question, error) {
	var filter QuestionFilter
	if category != "" {
		cat, err := s.categories.ResolveByName(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("resolve category %q: %w", category, err)
		}
		filter.CategoryID = &cat.ID
	}

	pool, err := s.questions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load quiz pool: %w", err)
	}

	q := Draw(pool, previous)
	if q == nil {
		quizDraws.WithLabelValues(drawOutcomeExhausted).Inc()
		s.logger.Debug().Str("category", category).Int("pool", len(pool)).Msg("quiz pool exhausted")
		return nil, nil
	}
	quizDraws.WithLabelValues(drawOutcomeQuestion).Inc()
	return q, nil
}

// categoryList reads categories through the cache when one is configured.
// Cache failures degrade to the store and are logged, never returned.
func (s *Service) categoryList(ctx context.Context) ([]Category, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}
