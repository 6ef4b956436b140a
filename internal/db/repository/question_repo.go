package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luiarhs/trivia-api/internal/trivia"
)

// QuestionRepository implements trivia.QuestionStore on Postgres. Every query
// is parameterized; user input never reaches the SQL text.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// buildQuestionQuery composes the filtered listing query. Results are ordered
// by ascending id so pagination and quiz pools see insertion order.
func buildQuestionQuery(filter trivia.QuestionFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		conds = append(conds, fmt.Sprintf("question ILIKE '%%' || $%d || '%%'", len(args)))
	}

	query := "SELECT id, category_id, question, answer, difficulty FROM question"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	return query + " ORDER BY id", args
}

// List returns the full match set for filter, ordered by id.
func (r *QuestionRepository) List(ctx context.Context, filter trivia.QuestionFilter) ([]trivia.Question, error) {
	query, args := buildQuestionQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	questions := []trivia.Question{}
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.CategoryID, &q.Question, &q.Answer, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	return questions, nil
}

// GetByID returns one question or trivia.ErrNotFound.
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (trivia.Question, error) {
	var q trivia.Question
	err := r.pool.QueryRow(ctx,
		"SELECT id, category_id, question, answer, difficulty FROM question WHERE id = $1",
		id,
	).Scan(&q.ID, &q.CategoryID, &q.Question, &q.Answer, &q.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Question{}, trivia.ErrNotFound
		}
		return trivia.Question{}, fmt.Errorf("query question %d: %w", id, err)
	}
	return q, nil
}

// Insert creates a question and returns the assigned id in the same
// statement, so a concurrent identical insert can never hand back the wrong
// row.
func (r *QuestionRepository) Insert(ctx context.Context, q trivia.NewQuestion) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		"INSERT INTO question (category_id, question, answer, difficulty) VALUES ($1, $2, $3, $4) RETURNING id",
		q.CategoryID, q.Question, q.Answer, q.Difficulty,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// Delete removes a question permanently. It reports false when the id did not
// exist so callers can distinguish idempotent failure from success.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM question WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete question %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
