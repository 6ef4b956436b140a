package trivia

import "errors"

// Domain errors surfaced by the service. Anything else coming out of a store
// call is treated as a store failure by the transport layer and never shown
// raw to clients.
var (
	// ErrNotFound covers unresolvable category names and absent question or
	// category ids. A category that exists but matches nothing is not
	// ErrNotFound; callers can tell the two apart.
	ErrNotFound = errors.New("resource not found")

	// ErrNoQuestions means a category exists but has zero questions, for the
	// category listing endpoint that requires at least one. Quiz pools never
	// raise this; an empty pool is a normal draw outcome.
	ErrNoQuestions = errors.New("category has no questions")
)
