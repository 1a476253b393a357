package parsing

import (
	"strconv"
	"strings"
	"unicode"
)

// LineKind classifies a single line of the reply dialect
type LineKind int

const (
	// LineBlank is an empty or whitespace-only line
	LineBlank LineKind = iota
	// LineHeading starts with one or more '#'
	LineHeading
	// LineRule is a "---" separator
	LineRule
	// LineBullet is a '-' or '*' list item
	LineBullet
	// LineField starts with a bold "**Label:**" token
	LineField
	// LineText is anything else
	LineText
)

// ClassifyLine returns the kind of a line.
func ClassifyLine(line string) LineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return LineBlank
	case strings.HasPrefix(trimmed, "#"):
		return LineHeading
	case strings.HasPrefix(trimmed, TermRule) && strings.Trim(trimmed, "-") == "":
		return LineRule
	case IsBullet(trimmed):
		return LineBullet
	case strings.HasPrefix(trimmed, "**") && strings.Contains(trimmed[2:], ":**"):
		return LineField
	default:
		return LineText
	}
}

// ExtractLeadingInteger returns the first maximal run of decimal digits in s.
// ok is false when s holds no digits or the run does not fit an int.
func ExtractLeadingInteger(s string) (n int, ok bool) {
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsBullet reports whether the trimmed line starts with '-' or '*' followed by whitespace.
func IsBullet(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 {
		return false
	}
	if trimmed[0] != '-' && trimmed[0] != '*' {
		return false
	}
	return unicode.IsSpace(rune(trimmed[1]))
}

// StripBullet removes the bullet marker and the whitespace around the item.
func StripBullet(line string) string {
	trimmed := strings.TrimSpace(line)
	if !IsBullet(trimmed) {
		return trimmed
	}
	return strings.TrimSpace(trimmed[1:])
}

// SplitLabeledValue returns the trimmed text following label when line contains it.
func SplitLabeledValue(line, label string) (string, bool) {
	idx := strings.Index(line, label)
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(line[idx+len(label):]), true
}

// BulletItems returns the stripped bullet items of text in document order.
// Non-bullet lines are skipped. The result is never nil.
func BulletItems(text string) []string {
	items := []string{}
	for _, line := range strings.Split(text, "\n") {
		if ClassifyLine(line) != LineBullet {
			continue
		}
		if item := StripBullet(line); item != "" {
			items = append(items, item)
		}
	}
	return items
}
