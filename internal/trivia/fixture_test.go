package trivia

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// The test bank mirrors db/migrations/00002_seed_trivia.sql: 19 questions
// across 6 categories, Art holding exactly ids 4-7, and "title" matching two
// questions of which one is in History.
func seedCategories() []Category {
	return []Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

func seedQuestions() []Question {
	return []Question{
		{ID: 1, CategoryID: 1, Question: "What is the heaviest organ in the human body?", Answer: "The liver", Difficulty: 4},
		{ID: 2, CategoryID: 1, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Difficulty: 3},
		{ID: 3, CategoryID: 1, Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Difficulty: 4},
		{ID: 4, CategoryID: 2, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Difficulty: 3},
		{ID: 5, CategoryID: 2, Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Difficulty: 4},
		{ID: 6, CategoryID: 2, Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", Difficulty: 2},
		{ID: 7, CategoryID: 2, Question: "Which Dutch graphic artist was a creator of optical illusions?", Answer: "M.C. Escher", Difficulty: 1},
		{ID: 8, CategoryID: 3, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Difficulty: 2},
		{ID: 9, CategoryID: 3, Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Difficulty: 3},
		{ID: 10, CategoryID: 3, Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Difficulty: 2},
		{ID: 11, CategoryID: 4, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Difficulty: 2},
		{ID: 12, CategoryID: 4, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Difficulty: 1},
		{ID: 13, CategoryID: 4, Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Difficulty: 4},
		{ID: 14, CategoryID: 5, Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Difficulty: 4},
		{ID: 15, CategoryID: 5, Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Difficulty: 4},
		{ID: 16, CategoryID: 5, Question: "What is the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Difficulty: 3},
		{ID: 17, CategoryID: 6, Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Difficulty: 3},
		{ID: 18, CategoryID: 6, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Difficulty: 4},
		{ID: 19, CategoryID: 6, Question: "What year was the first Super Bowl played?", Answer: "1967", Difficulty: 3},
	}
}

// stubQuestionStore keeps questions in memory with the same observable
// filter semantics as the Postgres repository.
type stubQuestionStore struct {
	questions []Question
	err       error
}

func newStubQuestionStore(questions []Question) *stubQuestionStore {
	return &stubQuestionStore{questions: questions}
}

func (s *stubQuestionStore) List(_ context.Context, filter QuestionFilter) ([]Question, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []Question{}
	for _, q := range s.questions {
		if filter.CategoryID != nil && q.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(q.Question), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (s *stubQuestionStore) GetByID(_ context.Context, id int64) (Question, error) {
	if s.err != nil {
		return Question{}, s.err
	}
	for _, q := range s.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return Question{}, ErrNotFound
}

func (s *stubQuestionStore) Insert(_ context.Context, q NewQuestion) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var next int64 = 1
	for _, existing := range s.questions {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	s.questions = append(s.questions, Question{
		ID:         next,
		CategoryID: q.CategoryID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
	})
	return next, nil
}

func (s *stubQuestionStore) Delete(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubCategoryStore struct {
	categories []Category
	err        error
	listCalls  int
}

func newStubCategoryStore(categories []Category) *stubCategoryStore {
	return &stubCategoryStore{categories: categories}
}

func (s *stubCategoryStore) List(_ context.Context) ([]Category, error) {
	s.listCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.categories, nil
}

func (s *stubCategoryStore) GetByID(_ context.Context, id int64) (Category, error) {
	if s.err != nil {
		return Category{}, s.err
	}
	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}

func (s *stubCategoryStore) ResolveByName(_ context.Context, name string) (Category, error) {
	if s.err != nil {
		return Category{}, s.err
	}
	// Lowest id wins on duplicates, matching the repository tie-break.
	var match *Category
	for i := range s.categories {
		c := s.categories[i]
		if strings.EqualFold(c.Type, name) && (match == nil || c.ID < match.ID) {
			match = &c
		}
	}
	if match == nil {
		return Category{}, ErrNotFound
	}
	return *match, nil
}

// memoryCategoryCache is an in-memory CategoryCache for service tests.
type memoryCategoryCache struct {
	categories []Category
	getErr     error
	setErr     error
	sets       int
}

func (c *memoryCategoryCache) Get(_ context.Context) ([]Category, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.categories, nil
}

func (c *memoryCategoryCache) Set(_ context.Context, categories []Category) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.categories = categories
	return nil
}

func zerologTestLogger() zerolog.Logger {
	return zerolog.Nop()
}

func newTestService(questions *stubQuestionStore, categories *stubCategoryStore, cache CategoryCache) *Service {
	return NewService(questions, categories, cache, ServiceOptions{}, zerologTestLogger())
}
