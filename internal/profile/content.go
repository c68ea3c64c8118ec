package profile

import "github.com/layza-app/layza/internal/domain"

// subjectAffinity weights how likely a subject is to be picked for a study
// tip. Matches the default interest profile of a new student.
var subjectAffinity = map[domain.Subject]float64{
	domain.SubjectMath:       0.8,
	domain.SubjectPortuguese: 0.6,
	domain.SubjectScience:    0.4,
}

// subjectTips holds ready-made study tips per subject.
var subjectTips = map[domain.Subject][]string{
	domain.SubjectMath: {
		"Tenta olhar o vídeo 'Básico de Matemática' no Khan Academy.",
		"Pega um caderno e faz uns cálculos simples pra praticar!",
		"Já pensou em usar exemplos do dia a dia pra entender melhor?",
	},
	domain.SubjectPortuguese: {
		"Leia um texto curto e tenta achar os substantivos.",
		"Escreve uma frase e vê onde a pontuação ajuda.",
		"Assiste 'Gramática Básica' no YouTube pra revisar!",
	},
	domain.SubjectScience: {
		"Olha o vídeo 'Ciências pra Crianças' no Khan Academy.",
		"Pensa num exemplo de energia que você usa todo dia.",
		"Tenta descrever algo que você vê como matéria!",
	},
}

// subjectQuestions holds the reflective quiz question pool per subject.
var subjectQuestions = map[domain.Subject][]string{
	domain.SubjectMath: {
		"O que uma equação precisa pra ser resolvida?",
		"Como você calcula a área de algo?",
		"O que significa uma fração na prática?",
	},
	domain.SubjectPortuguese: {
		"O que é um substantivo? Dá um exemplo!",
		"Como você sabe qual tempo um verbo tá?",
		"Por que a vírgula muda uma frase?",
	},
	domain.SubjectScience: {
		"O que faz algo ser vivo ou não?",
		"Como a energia muda de um tipo pra outro?",
		"O que é matéria pra você?",
	},
}
