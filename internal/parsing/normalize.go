package parsing

import "strings"

const fence = "```"

// escapedControls are two-character escape sequences left in the text by a
// producer that serialized it twice.
var escapedControls = strings.NewReplacer(
	`\n`, " ",
	`\r`, " ",
	`\t`, " ",
	`\b`, " ",
	`\f`, " ",
)

// StripFence removes a code fence wrapping the whole text. The opening fence
// may carry a language tag such as "markdown" or "json".
func StripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, fence) {
		return text
	}
	text = strings.TrimPrefix(text, fence)
	if idx := strings.Index(text, "\n"); idx >= 0 {
		tag := text[:idx]
		// A language tag is a short single word
		if len(tag) < 20 && !strings.ContainsAny(tag, " \t*#") {
			text = text[idx+1:]
		}
	} else if !strings.Contains(text, " ") {
		// Single line holding only a tag
		text = ""
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, fence)
	return strings.TrimSpace(text)
}

// Normalize sanitizes a reply before it reaches a stricter parser: it strips
// a wrapping code fence, turns literal escape sequences and raw control
// characters (other than newline, carriage return and tab) into spaces and
// drops blank lines. Markdown structure is not inspected.
func Normalize(text string) string {
	text = StripFence(text)
	text = escapedControls.Replace(text)
	text = strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\n' && r != '\r' && r != '\t' {
			return ' '
		}
		return r
	}, text)

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
