// Package impl contains the concrete implementations of the use case interfaces.
package impl

// clampPage converts 1-based page/limit inputs into a bounded limit and
// offset. Out-of-range values fall back to the given defaults.
func clampPage(page, limit, defaultLimit, maxLimit int) (boundedLimit, offset int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return limit, (page - 1) * limit
}
