// Package similarity scores how alike two personnel records are. Field-level
// scorers handle names, free text, categorical values, and numeric values
// with tolerance; the record scorer combines them into a weighted aggregate
// and a duplicate verdict.
package similarity

import (
	"math"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Normalize lowercases a string via Unicode case folding, strips
// punctuation, and collapses runs of whitespace. All string comparisons in
// this package operate on normalized input.
func Normalize(s string) string {
	folded := folder.String(s)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, folded)
	return strings.Join(strings.Fields(cleaned), " ")
}

// EditDistance returns the Levenshtein edit distance between two strings.
// It is symmetric and zero for equal strings.
func EditDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Name scores the similarity of two person names in [0,1]. Exact matches
// after normalization score 1.0. If every multi-character token of one name
// has a counterpart in the other within edit distance 1, the names score
// 0.9; this absorbs token reordering ("Doe, John"), minor typos, and
// middle names. Otherwise the score is the Levenshtein ratio of the
// normalized full strings.
func Name(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return 1.0
	}

	if tokensCovered(na, nb) || tokensCovered(nb, na) {
		return 0.9
	}

	return ratio(na, nb)
}

// Text scores the similarity of two free-text values (titles) in [0,1]
// using the normalized Levenshtein ratio.
func Text(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return 1.0
	}
	return ratio(na, nb)
}

// Categorical returns 1 when two categorical values (countries) are equal
// after normalization, 0 otherwise.
func Categorical(a, b string) float64 {
	if Normalize(a) == Normalize(b) {
		return 1.0
	}
	return 0.0
}

// Numeric scores the proximity of two non-negative numbers (salary
// amounts) in [0,1]. Equal values score 1.0; otherwise the relative
// difference against the mean is mapped through a step function.
func Numeric(a, b float64) float64 {
	if a == b {
		return 1.0
	}

	mean := (a + b) / 2
	if mean == 0 {
		return 0.2
	}

	rel := math.Abs(a-b) / mean
	switch {
	case rel <= 0.10:
		return 0.9
	case rel <= 0.20:
		return 0.7
	case rel <= 0.50:
		return 0.5
	default:
		return 0.2
	}
}

// ratio converts an edit distance to a similarity in [0,1] relative to the
// longer string.
func ratio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(EditDistance(a, b))/float64(longest)
}

// tokensCovered reports whether every multi-character token of a has a
// counterpart token in b within edit distance 1. Single-character tokens
// (initials) are ignored.
func tokensCovered(a, b string) bool {
	atoks := significantTokens(a)
	if len(atoks) == 0 {
		return false
	}
	btoks := strings.Fields(b)

	for _, at := range atoks {
		matched := false
		for _, bt := range btoks {
			if EditDistance(at, bt) <= 1 {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func significantTokens(s string) []string {
	var out []string
	for _, tok := range strings.Fields(s) {
		if len([]rune(tok)) > 1 {
			out = append(out, tok)
		}
	}
	return out
}
