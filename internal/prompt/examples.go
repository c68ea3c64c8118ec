package prompt

import "github.com/layza-app/layza/internal/domain"

// subjectExamples holds one illustrative Socratic question per subject,
// interpolated into templates to anchor the model's tone.
var subjectExamples = map[domain.Subject]string{
	domain.SubjectMath:       `"O que uma equação precisa pra ser resolvida?"`,
	domain.SubjectPortuguese: `"O que é um substantivo? Dá um exemplo!"`,
	domain.SubjectScience:    `"O que faz algo ser vivo ou não?"`,
}

// SubjectConcepts lists the core concepts per subject, used by quiz and
// study-tip generation as well as prompt examples.
var SubjectConcepts = map[domain.Subject][]string{
	domain.SubjectMath:       {"equações", "geometria", "frações"},
	domain.SubjectPortuguese: {"substantivos", "verbos", "pontuação"},
	domain.SubjectScience:    {"energia", "vida", "matéria"},
}

func exampleFor(subj domain.Subject) string {
	if ex, ok := subjectExamples[subj]; ok {
		return ex
	}
	return `"Qual é a ideia principal disso?"`
}
