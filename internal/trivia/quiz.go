package trivia

import "math/rand/v2"

// Draw picks one question from pool uniformly at random, skipping ids the
// caller has already seen. It returns nil when no candidate remains, which is
// the normal terminal state of a quiz session, not an error. An empty pool
// (category with zero questions) looks the same at this layer; callers that
// care must distinguish the two before drawing.
//
// Each call is independent: the engine keeps no session state, so the same
// (pool, excluded) pair may yield different questions across calls. The
// top-level math/rand/v2 source is safe for concurrent requests.
func Draw(pool []Question, excluded []int64) *Question {
	seen := make(map[int64]struct{}, len(excluded))
	for _, id := range excluded {
		seen[id] = struct{}{}
	}

	candidates := make([]Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	q := candidates[rand.IntN(len(candidates))]
	return &q
}
