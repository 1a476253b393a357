// Package ingestion turns CV files and job offer pages into clean text
// ready to be sent to the model.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRun     = regexp.MustCompile(`[ \t\f\v]+`)
	blankLineRun = regexp.MustCompile(`\n{3,}`)
	// PDF exports of CVs use typographic bullets.
	glyphBullet = regexp.MustCompile(`^([ \t]*)[•·▪◦●■►‣–—]\s*`)
)

var invisible = strings.NewReplacer(
	"\u00a0", " ",
	"\u202f", " ",
	"\u200b", "",
	"\ufeff", "",
	"\u00ad", "",
)

// CleanText normalizes line endings, spacing and bullets while keeping the
// line structure: headings stay, indentation before bullets stays, and
// blank line runs shrink to one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = invisible.Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankLineRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	line = glyphBullet.ReplaceAllString(line, "$1- ")
	trimmed := strings.TrimLeft(line, " \t")

	if strings.HasPrefix(trimmed, "#") {
		return spaceRun.ReplaceAllString(trimmed, " ")
	}

	indent := ""
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		indent = strings.Repeat(" ", len(line)-len(trimmed))
	}
	return indent + spaceRun.ReplaceAllString(trimmed, " ")
}
