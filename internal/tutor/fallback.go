package tutor

import (
	"errors"

	"github.com/layza-app/layza/internal/domain"
	"github.com/layza-app/layza/internal/llm"
)

// rateLimitedFallback is shown when the API returns HTTP 429.
const rateLimitedFallback = "Ufa, tô recebendo muitas perguntas agora! 😅 Me dá um minutinho e tenta de novo, tá?"

// subjectFallbacks are the canned apologies shown when the gateway fails.
// The session treats them exactly like generated replies, so downstream
// code cannot tell a degraded response from a real one.
var subjectFallbacks = map[domain.Subject]string{
	domain.SubjectMath:       "Hmm, vamos pensar juntas nessa questão de matemática! 🤔 O que você já sabe sobre esse problema? Tente me dizer que informações você já identificou.",
	domain.SubjectScience:    "Hmm, interessante essa questão de ciências! 🧪 Você já parou pra pensar sobre qual conceito principal está sendo avaliado aqui?",
	domain.SubjectPortuguese: "Ótima questão de português! 📚 O que você entendeu do texto? Tenta me explicar com suas palavras!",
}

const defaultFallback = "Opa! Estou aqui pra te ajudar! 💪 Me conta de novo daqui a pouco, que agora me embaralhei toda."

// fallbackText maps a gateway error to the canned reply for the subject.
func fallbackText(subj domain.Subject, err error) string {
	if errors.Is(err, llm.ErrRateLimited) {
		return rateLimitedFallback
	}
	if text, ok := subjectFallbacks[subj]; ok {
		return text
	}
	return defaultFallback
}
