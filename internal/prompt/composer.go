// Package prompt renders the fixed prompt templates the tutor sends to the
// language model. Every template is a deterministic string interpolation:
// same inputs, same prompt, which is what makes the session response cache
// (keyed by exact prompt text) work.
package prompt

import (
	"fmt"
	"strings"

	"github.com/layza-app/layza/internal/domain"
)

// Kind selects one of the five prompt templates.
type Kind string

const (
	KindInitialQuestion        Kind = "initial_question"
	KindFeedbackOnAnswer       Kind = "feedback_on_answer"
	KindSimplifiedExplanation  Kind = "simplified_explanation"
	KindTechnicalExplanation   Kind = "technical_explanation"
	KindExamCorrection         Kind = "exam_correction"
)

// Input carries the template parameters. Fields unused by a given kind are
// ignored.
type Input struct {
	Subject       domain.Subject
	Level         domain.SchoolLevel
	Keyword       string
	HistoryText   string
	StudentAnswer string
	Preferences   []domain.Preference
}

// Compose renders the template for kind. It never fails: unknown kinds
// render as an initial question, and empty fields interpolate as-is.
func Compose(kind Kind, in Input) string {
	switch kind {
	case KindFeedbackOnAnswer:
		return composeFeedback(in)
	case KindSimplifiedExplanation:
		return composeSimplified(in)
	case KindTechnicalExplanation:
		return composeTechnical(in)
	case KindExamCorrection:
		return composeExamCorrection(in)
	default:
		return composeInitial(in)
	}
}

func composeInitial(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Um estudante do %s fez uma pergunta de %s sobre %q.\n",
		in.Level, in.Subject.DisplayName(), in.Keyword)
	if in.HistoryText != "" {
		fmt.Fprintf(&b, "Contexto recente da conversa:\n%s\n", in.HistoryText)
	}
	fmt.Fprintf(&b,
		"Não dê a resposta pronta. Responda com uma pergunta reflexiva curta que guie o estudante a pensar sobre %s, como em: %s",
		in.Keyword, exampleFor(in.Subject))
	return b.String()
}

func composeFeedback(in Input) string {
	return fmt.Sprintf(
		"O estudante respondeu à sua pergunta reflexiva sobre %q assim: %q.\n"+
			"Comente a resposta sem dizer se está certa ou errada. Aponte o que já está bem encaminhado e faça mais uma pergunta de %s que aprofunde o raciocínio.",
		in.Keyword, in.StudentAnswer, in.Subject.DisplayName())
}

func composeSimplified(in Input) string {
	return fmt.Sprintf(
		"O estudante do %s ficou confuso com %q em %s.\n"+
			"Explique o conceito do jeito mais simples possível, com um exemplo do dia a dia, e termine perguntando se ficou claro. Exemplo de tom: %s",
		in.Level, in.Keyword, in.Subject.DisplayName(), exampleFor(in.Subject))
}

func composeTechnical(in Input) string {
	return fmt.Sprintf(
		"O estudante quer uma explicação mais técnica sobre %q em %s, nível %s.\n"+
			"Explique com o vocabulário formal da disciplina, citando as definições envolvidas, e termine perguntando se ficou claro.",
		in.Keyword, in.Subject.DisplayName(), in.Level)
}

func composeExamCorrection(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Corrija esta questão de prova de %s sem dar a resposta:\n%s\n",
		in.Subject.DisplayName(), in.StudentAnswer)
	b.WriteString("Comente o que está bem, o que falta, e sugira o que revisar. Guie com perguntas em vez de corrigir diretamente.")
	if len(in.Preferences) > 0 {
		fmt.Fprintf(&b, " O estudante prefere material %s.", joinPreferences(in.Preferences))
	}
	return b.String()
}

func joinPreferences(prefs []domain.Preference) string {
	names := make([]string, len(prefs))
	for i, p := range prefs {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
