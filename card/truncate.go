package card

import "strings"

// backoff is how far Truncate may walk back to end on a word boundary.
const backoff = 20

const ellipsis = "..."

// Truncate collapses whitespace runs in s to single spaces and, when the
// result exceeds limit runes, cuts it to at most limit runes ending in "...".
// The cut prefers the last space within the final 20 runes before the cut
// point. Below 3 runes only the first limit dots of the marker fit.
// Truncate is idempotent.
func Truncate(s string, limit int) string {
	normalized := strings.Join(strings.Fields(s), " ")
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	if limit < len(ellipsis) {
		return ellipsis[:max(0, limit)]
	}

	slicePoint := limit - len(ellipsis)
	sliced := runes[:slicePoint]
	if i := lastSpace(sliced); i >= 0 && i > slicePoint-backoff {
		sliced = sliced[:i]
	}
	return strings.TrimRight(string(sliced), " ") + ellipsis
}

func lastSpace(r []rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == ' ' {
			return i
		}
	}
	return -1
}
