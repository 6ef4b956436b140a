package trivia

// DefaultPageSize is the listing page size when none is configured.
const DefaultPageSize = 5

// Paginate returns the question texts for the 1-based page of items.
// The listing view exposes the question text only; answers, category ids and
// difficulty are reserved for single-question retrieval.
//
// Out-of-range pages, including page <= 0, yield an empty slice rather than
// an error. Callers report len(items) alongside the page so clients can
// compute how many pages exist.
func Paginate(items []Question, page, pageSize int) []string {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	start := (page - 1) * pageSize
	if page <= 0 || start >= len(items) {
		return []string{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	texts := make([]string, 0, end-start)
	for _, q := range items[start:end] {
		texts = append(texts, q.Question)
	}
	return texts
}
