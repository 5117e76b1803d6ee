package domain

import (
	"strings"
	"unicode"
)

// VariantToken is the placeholder a task-name pattern may carry. Expansion
// substitutes the capitalized variant name in its place.
const VariantToken = "{VARIANT}"

// Pattern is a task-name template. A pattern containing VariantToken names
// one task per variant and is expanded for every variant except the active
// one; a pattern without the token is a single canonical task name that is
// used verbatim.
type Pattern string

// String returns the raw template.
func (p Pattern) String() string { return string(p) }

// IsVariantScoped reports whether the pattern expands per variant.
func (p Pattern) IsVariantScoped() bool {
	return strings.Contains(string(p), VariantToken)
}

// Expand substitutes the variant into the pattern. Only the first character
// of the variant name is upper-cased; embedded digits and capitals are left
// untouched, so "releaseCandidate" becomes "ReleaseCandidate". Patterns
// without the token are returned unchanged.
func (p Pattern) Expand(v Variant) string {
	if !p.IsVariantScoped() {
		return string(p)
	}
	return strings.ReplaceAll(string(p), VariantToken, capitalize(v.Name))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
