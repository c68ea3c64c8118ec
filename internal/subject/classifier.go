// Package subject maps free-form student text onto Layza's fixed subject set
// and extracts the topic keyword a question is about.
package subject

import (
	"strings"

	"github.com/layza-app/layza/internal/domain"
)

// keywords holds the per-subject trigger terms, stored pre-folded.
// Matching is substring containment on folded text, not tokenized matching;
// a term embedded inside a longer word still matches.
var keywords = map[domain.Subject][]string{
	domain.SubjectPortuguese: {
		"portugues", "substantivo", "verbo", "pontuacao", "gramatica",
		"redacao", "literatura", "texto", "virgula", "ortografia",
	},
	domain.SubjectMath: {
		"matematica", "equacao", "geometria", "fracao", "algebra",
		"funcao", "calculo", "porcentagem", "estatistica", "grafico",
	},
	domain.SubjectScience: {
		"ciencia", "energia", "celula", "materia", "fisica",
		"quimica", "biologia", "atomo", "fotossintese", "experimento",
	},
}

// Classify returns the subject whose keyword set matches text, or ok=false
// when nothing matches. Subjects are tried in the fixed priority order
// portuguese, math, science; the first hit wins.
func Classify(text string) (domain.Subject, bool) {
	folded := Fold(text)
	for _, subj := range domain.AllSubjects {
		for _, kw := range keywords[subj] {
			if strings.Contains(folded, kw) {
				return subj, true
			}
		}
	}
	return "", false
}

// Matches reports whether text classifies as the given subject, treating
// unclassifiable text as a match. Used by the session to accept on-topic or
// neutral questions while rejecting cross-subject ones.
func Matches(text string, subj domain.Subject) bool {
	got, ok := Classify(text)
	return !ok || got == subj
}
