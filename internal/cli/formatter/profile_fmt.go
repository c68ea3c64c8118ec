package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/layza-app/layza/internal/domain"
	"github.com/layza-app/layza/internal/profile"
)

// FormatProfile renders the profile view: grade averages per subject and
// activity counters. Subjects keep their fixed order.
func FormatProfile(view *profile.View) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Perfil de %s", view.Student)) + "\n\n")

	b.WriteString(StyleBold.Render("Médias") + "\n")
	if len(view.Averages) == 0 {
		b.WriteString(Dim("  Sem notas ainda.") + "\n")
	} else {
		for _, subj := range domain.AllSubjects {
			if avg, ok := view.Averages[subj]; ok {
				b.WriteString(fmt.Sprintf("  %-12s %s\n", subj.DisplayName(), scoreStyle(avg).Render(fmt.Sprintf("%.1f", avg))))
			}
		}
	}

	b.WriteString("\n" + StyleBold.Render("Atividade") + "\n")
	if len(view.Progress) == 0 {
		b.WriteString(Dim("  Nenhuma pergunta respondida ainda.") + "\n")
	} else {
		for _, p := range view.Progress {
			b.WriteString(fmt.Sprintf("  %-12s %d perguntas, última em %s\n",
				p.Subject.DisplayName(), p.QuestionsAnswered, p.LastActive.Format("02/01/2006")))
		}
	}
	return b.String()
}

func scoreStyle(avg float64) lipgloss.Style {
	switch {
	case avg >= 70:
		return StyleGreen
	case avg >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

// FormatTip renders a study tip with the reason for the subject pick.
func FormatTip(tip *profile.Tip) string {
	return StyleGreen.Render("Dica: ") + tip.Text + "\n" + Dim(tip.Reason)
}

// FormatRecommendation renders a content suggestion, or an empty string
// when there is none.
func FormatRecommendation(rec *domain.Recommendation) string {
	if rec == nil {
		return ""
	}
	line := StylePurple.Render("Sugestão: ") + rec.Title
	if rec.URL != "" {
		line += " " + Dim("("+rec.URL+")")
	}
	return line
}
