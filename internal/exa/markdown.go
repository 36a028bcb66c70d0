package exa

import (
	"regexp"
	"strings"
)

// Exa contents come back as markdown-ish extracted text. These rules strip
// the formatting down to plain readable prose for the result panels.
var (
	mdImage      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	mdLink       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdHeader     = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	mdBold       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdBoldUnder  = regexp.MustCompile(`__([^_]+)__`)
	mdItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	mdCode       = regexp.MustCompile("`([^`]+)`")
	mdTableSep   = regexp.MustCompile(`^\s*\|[\s\-:|]+\|\s*$`)
	manyNewlines = regexp.MustCompile(`\n{3,}`)
	runSpaces    = regexp.MustCompile(`[ \t]+`)
)

// CleanMarkdown strips markdown links, images, headers, emphasis, inline
// code and table syntax from text, leaving plain content.
func CleanMarkdown(text string) string {
	if text == "" {
		return ""
	}

	text = mdImage.ReplaceAllString(text, "$1")
	text = mdLink.ReplaceAllString(text, "$1")
	text = mdHeader.ReplaceAllString(text, "")
	text = mdBold.ReplaceAllString(text, "$1")
	text = mdBoldUnder.ReplaceAllString(text, "$1")
	text = mdItalic.ReplaceAllString(text, "$1")
	text = mdCode.ReplaceAllString(text, "$1")

	// Flatten markdown tables: drop separator rows, join cells with " - "
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if mdTableSep.MatchString(line) {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			var cells []string
			for _, cell := range strings.Split(line, "|") {
				if c := strings.TrimSpace(cell); c != "" {
					cells = append(cells, c)
				}
			}
			if len(cells) > 0 {
				cleaned = append(cleaned, strings.Join(cells, " - "))
			}
			continue
		}
		cleaned = append(cleaned, line)
	}
	text = strings.Join(cleaned, "\n")

	text = manyNewlines.ReplaceAllString(text, "\n\n")
	text = runSpaces.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// Answer text carries inline citations like ([Source](url)) that read as
// noise once the citation URLs are listed separately.
var (
	groupedCitation = regexp.MustCompile(`\s*\([^()]*\[[^\]]*\]\([^)]+\)[^()]*\)`)
	inlineCitation  = regexp.MustCompile(`\s*\[[^\]]*\]\([^)]+\)`)
	danglingComma   = regexp.MustCompile(`\s*,\s*\)`)
	emptyParens     = regexp.MustCompile(`\(\s*,?\s*\)`)
	spaceBeforeEnd  = regexp.MustCompile(`\s+\)`)
	parenAfterPunct = regexp.MustCompile(`([.!?])\s*\)`)
	parenBeforePunc = regexp.MustCompile(`\)\s*([.!?])`)
	bulletPrefix    = regexp.MustCompile(`(?m)^\s*\*\s+`)
	headerMarks     = regexp.MustCompile(`#{1,6}\s*`)
	spacedPunct     = regexp.MustCompile(`\s+([.,!?])`)
	multiSpace      = regexp.MustCompile(`[ \t]{2,}`)
	multiNewline    = regexp.MustCompile(`\n{2,}`)
)

// CleanAnswer strips inline markdown citations and formatting from an
// Exa Answer API response.
func CleanAnswer(text string) string {
	text = groupedCitation.ReplaceAllString(text, "")
	text = inlineCitation.ReplaceAllString(text, "")
	text = danglingComma.ReplaceAllString(text, ")")
	text = emptyParens.ReplaceAllString(text, "")
	text = spaceBeforeEnd.ReplaceAllString(text, ")")
	text = parenAfterPunct.ReplaceAllString(text, "$1")
	text = parenBeforePunc.ReplaceAllString(text, "$1")

	text = mdBold.ReplaceAllString(text, "$1")
	text = mdItalic.ReplaceAllString(text, "$1")
	text = bulletPrefix.ReplaceAllString(text, "")
	text = headerMarks.ReplaceAllString(text, "")
	text = mdCode.ReplaceAllString(text, "$1")

	text = spacedPunct.ReplaceAllString(text, "$1")
	text = multiNewline.ReplaceAllString(text, "\n\n")
	text = multiSpace.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
