package subject

import (
	"testing"

	"github.com/layza-app/layza/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_CaseAndDiacriticsInsensitive(t *testing.T) {
	for _, text := range []string{
		"O que é um Substantivo?",
		"o que e um substantivo",
		"SUBSTANTÍVO",
	} {
		got, ok := Classify(text)
		require.True(t, ok, "expected a match for %q", text)
		assert.Equal(t, domain.SubjectPortuguese, got)
	}
}

func TestClassify_PerSubjectKeywords(t *testing.T) {
	tests := []struct {
		text string
		want domain.Subject
	}{
		{"como resolvo essa equação?", domain.SubjectMath},
		{"qual a área nesse problema de geometria", domain.SubjectMath},
		{"o que é uma célula?", domain.SubjectScience},
		{"me explica fotossíntese", domain.SubjectScience},
		{"onde vai a vírgula nessa frase", domain.SubjectPortuguese},
		{"ajuda com a redação do ENEM", domain.SubjectPortuguese},
	}
	for _, tt := range tests {
		got, ok := Classify(tt.text)
		require.True(t, ok, "expected a match for %q", tt.text)
		assert.Equal(t, tt.want, got, "text %q", tt.text)
	}
}

func TestClassify_SubstringNotTokenized(t *testing.T) {
	// A keyword embedded inside an unrelated word still matches.
	got, ok := Classify("antimatéria")
	require.True(t, ok)
	assert.Equal(t, domain.SubjectScience, got)
}

func TestClassify_PriorityOrder(t *testing.T) {
	// Portuguese wins over math when both match.
	got, ok := Classify("a gramática da equação")
	require.True(t, ok)
	assert.Equal(t, domain.SubjectPortuguese, got)
}

func TestClassify_NoMatch(t *testing.T) {
	for _, text := range []string{"", "bom dia", "qual o sentido da vida?"} {
		_, ok := Classify(text)
		assert.False(t, ok, "expected no match for %q", text)
	}
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("como resolvo essa equação?", domain.SubjectMath))
	assert.True(t, Matches("bom dia", domain.SubjectMath), "unclassifiable text is accepted")
	assert.False(t, Matches("o que é uma célula?", domain.SubjectMath))
}

func TestExtractKeyword(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"O que é uma célula?", "célula"},
		{"Como resolvo frações?", "frações"},
		{"o que é isso", "ciências"}, // all stopwords: subject-name fallback
		{"", "ciências"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractKeyword(tt.text, domain.SubjectScience), "text %q", tt.text)
	}
}

func TestIsConfused(t *testing.T) {
	assert.True(t, IsConfused("não sei"))
	assert.True(t, IsConfused("tô meio confusa ainda"))
	assert.True(t, IsConfused("pode explicar de novo?"))
	assert.False(t, IsConfused("acho que é a membrana que protege a célula"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "celula", Fold("Célula"))
	assert.Equal(t, "pontuacao", Fold("PONTUAÇÃO"))
}
