package trivia

import "context"

// Question is a full question record as stored in the bank.
type Question struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}

// Category is reference data seeded outside this service; the engine only reads it.
type Category struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// NewQuestion carries the caller-supplied fields for an insert. The store
// assigns the id.
type NewQuestion struct {
	CategoryID int64  `json:"category_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}

// QuestionFilter selects questions by optional category and optional
// case-insensitive substring match on the question text. The zero value
// matches everything. Callers normalize empty strings to "absent" before
// building a filter.
type QuestionFilter struct {
	CategoryID *int64
	Search     string
}

// QuestionStore is the persistence capability the engine needs for questions.
// List returns the full match set ordered by ascending id; pagination happens
// in the engine, which needs the pre-pagination total.
type QuestionStore interface {
	List(ctx context.Context, filter QuestionFilter) ([]Question, error)
	GetByID(ctx context.Context, id int64) (Question, error)
	Insert(ctx context.Context, q NewQuestion) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CategoryStore is the persistence capability for categories.
type CategoryStore interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (Category, error)
	ResolveByName(ctx context.Context, name string) (Category, error)
}
