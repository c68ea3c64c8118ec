package subject

import (
	"strings"
	"unicode"

	"github.com/layza-app/layza/internal/domain"
)

// stopwords are dropped before picking the topic keyword. Compared on
// folded text, so "é" and "e" are both covered by "e".
var stopwords = map[string]bool{
	"o": true, "a": true, "os": true, "as": true, "um": true, "uma": true,
	"e": true, "de": true, "do": true, "da": true, "dos": true, "das": true,
	"em": true, "no": true, "na": true, "nos": true, "nas": true,
	"que": true, "qual": true, "quais": true, "como": true, "por": true,
	"para": true, "pra": true, "com": true, "sobre": true, "se": true,
	"eu": true, "me": true, "meu": true, "minha": true, "voce": true,
	"ser": true, "sao": true, "esta": true, "isso": true, "mais": true,
}

// ExtractKeyword strips punctuation, lowercases, removes stopwords and
// returns the last remaining token. When every token is a stopword the
// subject's display name is returned instead.
//
// Picking the last content word is a crude heuristic carried over from the
// product's earlier behavior; it occasionally grabs an unhelpful trailing
// token on long questions.
func ExtractKeyword(text string, subj domain.Subject) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	keyword := ""
	for _, tok := range strings.Fields(cleaned) {
		if stopwords[Fold(tok)] {
			continue
		}
		keyword = tok
	}
	if keyword == "" {
		return subj.DisplayName()
	}
	return keyword
}
