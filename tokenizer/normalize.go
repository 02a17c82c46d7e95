package tokenizer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the lookup form of s: NFC-composed and case-folded.
// Model keys and token types pass through Fold so that precomposed and
// decomposed polytonic Greek, and final and medial sigma, compare equal.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	// A Caser is stateful; build one per call to stay goroutine-safe.
	return cases.Fold().String(norm.NFC.String(s))
}
