package llm

import (
	"strings"
	"unicode/utf8"
)

// BuildSystemPrompt composes the extraction instructions: what a BNCC document
// looks like, how to classify out-of-domain content, and strict-but-practical
// formatting rules.
func BuildSystemPrompt(req ExtractRequest) string {
	var subjLine string
	if len(req.Subjects) > 0 {
		subjLine = "Known curricular components: " + strings.Join(req.Subjects, ", ") +
			". Use one of these for 'subject' when the document matches; otherwise use the label the document itself uses. "
	} else {
		subjLine = "For 'subject', use the curricular component label the document uses. "
	}

	parts := []string{
		"You are a curriculum-standards parser for the Brazilian BNCC (Base Nacional Comum Curricular). Return ONLY JSON that matches the provided JSON Schema.",
		"First decide whether the document actually contains BNCC competencies/skills: set 'is_curriculum' to false when the text is unrelated (invoices, news, forms, unreadable scans) and leave 'items' empty, with a short Portuguese 'message' explaining why.",
		"When 'is_curriculum' is true, emit one item per habilidade found.",
		"'code' is the alphanumeric identifier exactly as printed (e.g. EF01MA01, EM13LGG101), uppercase, no spaces.",
		subjLine,
		"'description' is the full habilidade text. 'grade_level' is the ano/série (e.g. 1º Ano). 'thematic_unit' is the unidade temática when shown.",
		"Keep every code you find, even repeated ones; do not merge or deduplicate items.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the document text plus a filename hint. Text is
// capped; BNCC tables are dense and the head of the document decides the
// classification anyway.
func BuildUserPrompt(req ExtractRequest) string {
	const maxChars = 48_000

	var b strings.Builder
	if f := strings.TrimSpace(req.FilenameHint); f != "" {
		b.WriteString("Filename: ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString("\nDocument text:\n")
	text := strings.TrimSpace(req.Text)
	if len(text) > maxChars {
		// Back off to a rune boundary; Portuguese text is full of multi-byte
		// accents and a mid-rune cut would hand the model mojibake.
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		b.WriteString(text[:cut])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(text)
	}
	return b.String()
}
