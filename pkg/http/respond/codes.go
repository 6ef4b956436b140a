package respond

// Error codes carried in the error envelope.
const (
	// ErrCodeBadRequest: a required field was omitted, e.g. previous_questions.
	ErrCodeBadRequest = "bad_request"

	// ErrCodeInvalidRequest: the request was malformed (bad JSON, non-numeric id).
	ErrCodeInvalidRequest = "invalid_request"

	// ErrCodeNotFound: the referenced category or question does not exist.
	ErrCodeNotFound = "not_found"

	// ErrCodeUnprocessable: the category exists but has zero questions, for an
	// operation that requires at least one.
	ErrCodeUnprocessable = "unprocessable"

	// ErrCodeStoreFailure: the data store rejected or failed an operation.
	ErrCodeStoreFailure = "store_failure"
)
