package llm

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBuildUserPromptShortTextUntouched(t *testing.T) {
	out := BuildUserPrompt(ExtractRequest{
		Text:         "EF01MA01 Contagem até cem",
		FilenameHint: "bncc.pdf",
	})

	assert.Contains(t, out, "Filename: bncc.pdf")
	assert.Contains(t, out, "Contagem até cem")
	assert.NotContains(t, out, "truncated")
}

func TestBuildUserPromptTruncatesOnRuneBoundary(t *testing.T) {
	// Position a two-byte rune so a naive byte cut at the cap would split it.
	text := strings.Repeat("a", 47_999) + "é" + strings.Repeat("x", 2_000)

	out := BuildUserPrompt(ExtractRequest{Text: text})

	assert.True(t, utf8.ValidString(out), "truncation must not split a rune")
	assert.Contains(t, out, "truncated")
	assert.NotContains(t, out, "�")
	assert.Less(t, len(out), len(text))
}

func TestBuildUserPromptTruncatesLongASCII(t *testing.T) {
	out := BuildUserPrompt(ExtractRequest{Text: strings.Repeat("b", 60_000)})

	assert.Contains(t, out, "truncated")
	assert.True(t, utf8.ValidString(out))
}
