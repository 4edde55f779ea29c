package cheatsheet

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// partialRatio scores how well the shorter string matches a window of
// the longer one, 0..100. A contained substring scores 100, so short
// search terms still hit long descriptions. Windows one rune wider than
// the term are also tried so a dropped letter costs one edit, not two.
func partialRatio(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if strings.Contains(string(long), string(short)) {
		return 100
	}
	best := 0
	for _, width := range []int{len(short), len(short) + 1} {
		if width > len(long) {
			continue
		}
		for start := 0; start+width <= len(long); start++ {
			window := string(long[start : start+width])
			dist := levenshtein.ComputeDistance(string(short), window)
			score := (width - dist) * 100 / width
			if score > best {
				best = score
			}
		}
	}
	return best
}
