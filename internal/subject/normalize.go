package subject

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks after canonical decomposition,
// so "célula" folds to "celula".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases text and removes diacritics. Matching is always done on
// folded text so "Substantivo" and "substantívo" compare equal.
func Fold(text string) string {
	folded, _, err := transform.String(foldTransformer, strings.ToLower(text))
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the lowered input.
		return strings.ToLower(text)
	}
	return folded
}
