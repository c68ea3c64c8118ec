package formatter

import (
	"testing"
	"time"

	"github.com/layza-app/layza/internal/domain"
	"github.com/layza-app/layza/internal/profile"
	"github.com/stretchr/testify/assert"
)

func TestFormatProfile(t *testing.T) {
	view := &profile.View{
		Student: "joão",
		Averages: map[domain.Subject]float64{
			domain.SubjectMath:    82.5,
			domain.SubjectScience: 44,
		},
		Progress: []domain.StudentProgress{
			{
				Student:           "joão",
				Subject:           domain.SubjectMath,
				QuestionsAnswered: 3,
				LastActive:        time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
			},
		},
	}

	out := FormatProfile(view)
	assert.Contains(t, out, "Perfil de joão")
	assert.Contains(t, out, "82.5")
	assert.Contains(t, out, "44.0")
	assert.Contains(t, out, "matemática")
	assert.Contains(t, out, "3 perguntas")
	assert.Contains(t, out, "15/03/2026")
}

func TestFormatProfile_Empty(t *testing.T) {
	out := FormatProfile(&profile.View{Student: "joão", Averages: map[domain.Subject]float64{}})
	assert.Contains(t, out, "Sem notas ainda")
	assert.Contains(t, out, "Nenhuma pergunta respondida ainda")
}

func TestFormatRecommendation(t *testing.T) {
	out := FormatRecommendation(&domain.Recommendation{
		Title: "Frações em 10 minutos",
		URL:   "https://videos.example/fracoes",
	})
	assert.Contains(t, out, "Frações em 10 minutos")
	assert.Contains(t, out, "https://videos.example/fracoes")

	assert.Empty(t, FormatRecommendation(nil))
}

func TestFormatTip(t *testing.T) {
	out := FormatTip(&profile.Tip{
		Subject: domain.SubjectMath,
		Text:    "Pega um caderno e faz uns cálculos simples pra praticar!",
		Reason:  "Escolhi matemática porque você parece gostar (0.8) e ainda não tem nota.",
	})
	assert.Contains(t, out, "cálculos simples")
	assert.Contains(t, out, "Escolhi matemática")
}
