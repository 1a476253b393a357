package parsing

import "strings"

// ExtractSection returns the text between the first occurrence of start and
// the earliest occurrence of any terminator after it, or the end of text when
// no terminator follows. ok is false when start does not occur.
func ExtractSection(text, start string, terminators ...string) (string, bool) {
	idx := strings.Index(text, start)
	if idx < 0 {
		return "", false
	}
	body := text[idx+len(start):]
	end := len(body)
	for _, term := range terminators {
		if term == "" {
			continue
		}
		if pos := strings.Index(body, term); pos >= 0 && pos < end {
			end = pos
		}
	}
	return body[:end], true
}

// Scanner gives line and section access to one document or block.
type Scanner struct {
	text  string
	lines []string
}

// NewScanner creates a Scanner over text with surrounding whitespace removed.
func NewScanner(text string) *Scanner {
	text = strings.TrimSpace(text)
	return &Scanner{
		text:  text,
		lines: strings.Split(text, "\n"),
	}
}

// Text returns the scanned text.
func (s *Scanner) Text() string {
	return s.text
}

// Lines returns the lines of the scanned text.
func (s *Scanner) Lines() []string {
	return s.lines
}

// FirstLine returns the trimmed first line.
func (s *Scanner) FirstLine() string {
	if len(s.lines) == 0 {
		return ""
	}
	return strings.TrimSpace(s.lines[0])
}

// Fields parses the labels found in the first window lines.
func (s *Scanner) Fields(window int, labels ...string) FieldTable {
	return ParseFieldTable(s.lines, labels, window)
}

// Section returns the trimmed content of a section, see ExtractSection.
func (s *Scanner) Section(start string, terminators ...string) (string, bool) {
	body, ok := ExtractSection(s.text, start, terminators...)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(body), true
}

// Bullets returns the bullet items of a section, or nil when the section is absent.
func (s *Scanner) Bullets(start string, terminators ...string) []string {
	body, ok := ExtractSection(s.text, start, terminators...)
	if !ok {
		return nil
	}
	return BulletItems(body)
}
