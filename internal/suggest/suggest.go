// Package suggest enriches an InvalidFilePath diagnostic with a "did you
// mean" hint, the same Jaro-Winkler fuzzy match the teacher codebase
// uses to tolerate typos in search terms (internal/semantic.FuzzyMatcher).
package suggest

import "github.com/hbollon/go-edlib"

// Threshold is the minimum Jaro-Winkler similarity for a candidate to be
// offered as a suggestion. Below this, two type_dir tokens are treated
// as unrelated rather than as a likely typo.
const Threshold = 0.82

// ClosestTypeDir returns the known name most similar to typeDir, and
// whether its similarity clears Threshold. candidates is typically
// (*typetable.Table).Names().
func ClosestTypeDir(typeDir string, candidates []string) (best string, ok bool) {
	var bestScore float64
	for _, candidate := range candidates {
		score, err := edlib.StringsSimilarity(typeDir, candidate, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	return best, bestScore >= Threshold
}
