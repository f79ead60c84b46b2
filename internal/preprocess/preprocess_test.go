package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_LowercasesAndTokenizes(t *testing.T) {
	p := New("english")

	tokens := p.Normalize("The Prime Minister of India")

	assert.Equal(t, []string{"prime", "minist", "india"}, tokens)
}

func TestNormalize_DropsStopwords(t *testing.T) {
	p := New("english")

	tokens := p.Normalize("who is the head of government")

	assert.NotContains(t, tokens, "the")
	assert.NotContains(t, tokens, "of")
	assert.NotContains(t, tokens, "is")
	assert.Contains(t, tokens, "head")
}

func TestNormalize_KeepsDuplicates(t *testing.T) {
	// Term frequency must stay recoverable from the token sequence.
	p := New("english")

	tokens := p.Normalize("india india india")

	assert.Equal(t, []string{"india", "india", "india"}, tokens)
}

func TestNormalize_PreservesOrder(t *testing.T) {
	p := New("english")

	tokens := p.Normalize("capital city New Delhi")

	assert.Equal(t, []string{"capit", "citi", "new", "delhi"}, tokens)
}

func TestNormalize_StemsEnglish(t *testing.T) {
	p := New("english")

	tests := []struct {
		input string
		want  string
	}{
		{"running", "run"},
		{"governments", "govern"},
		{"cities", "citi"},
	}

	for _, tt := range tests {
		tokens := p.Normalize(tt.input)
		require.Len(t, tokens, 1)
		assert.Equal(t, tt.want, tokens[0])
	}
}

func TestNormalize_FoldsDiacritics(t *testing.T) {
	p := New("french")

	tokens := p.Normalize("Café")

	require.Len(t, tokens, 1)
	assert.Equal(t, "cafe", tokens[0])
}

func TestNormalize_StopwordOnlyQueryIsEmpty(t *testing.T) {
	p := New("english")

	tokens := p.Normalize("the of and is")

	assert.Empty(t, tokens)
}

func TestNormalize_EmptyInput(t *testing.T) {
	p := New("english")

	assert.Empty(t, p.Normalize(""))
	assert.Empty(t, p.Normalize("   \t\n  "))
	assert.Empty(t, p.Normalize("!!! ... ???"))
}

func TestNormalize_UnknownLanguageFallsBack(t *testing.T) {
	// An unknown language must not fail; it tokenizes and lowercases only.
	p := New("klingon")

	assert.False(t, p.Known())

	tokens := p.Normalize("The Warriors Attacked")
	assert.Equal(t, []string{"the", "warriors", "attacked"}, tokens)
}

func TestNormalize_HindiKeepsCombiningMarks(t *testing.T) {
	// Devanagari vowel signs are combining marks; folding must not strip them.
	p := New("hindi")

	tokens := p.Normalize("भारत की राजधानी दिल्ली")

	assert.Contains(t, tokens, "भारत")
	assert.Contains(t, tokens, "राजधानी")
	// "की" is a stopword.
	assert.NotContains(t, tokens, "की")
}

func TestNormalize_Deterministic(t *testing.T) {
	p := New("english")
	text := "The Indian economy is one of the fastest-growing major economies."

	first := p.Normalize(text)
	second := p.Normalize(text)

	assert.Equal(t, first, second)
}

func TestSupported_IncludesShippedLanguages(t *testing.T) {
	langs := Supported()

	assert.Contains(t, langs, "english")
	assert.Contains(t, langs, "hindi")
	assert.Contains(t, langs, "french")
	assert.True(t, sortedStrings(langs))
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestPipeline_Language(t *testing.T) {
	assert.Equal(t, "english", New(" English ").Language())
}
