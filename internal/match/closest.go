package match

import "fmt"

// MinSimilarity is the lowest normalized similarity accepted by Closest.
const MinSimilarity = 0.6

// Closest returns the candidate most similar to name. Ties go to the earlier
// candidate. It reports false when no candidate reaches MinSimilarity.
func Closest(name string, candidates []string) (string, bool) {
	want := Normalize(name)

	best, bestScore := "", 0.0
	for _, c := range candidates {
		if score := Similarity(want, Normalize(c)); score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}

// Hint returns ` (did you mean "X"?)` for the closest candidate, or "".
func Hint(name string, candidates []string) string {
	if c, ok := Closest(name, candidates); ok {
		return fmt.Sprintf(" (did you mean %q?)", c)
	}

	return ""
}
