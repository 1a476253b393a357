package parsing

// FieldTable maps a bold label to the trimmed raw value found for it.
type FieldTable map[string]string

// ParseFieldTable scans the first window lines and records, for each label,
// the value of the first line containing it. Labels never seen are absent.
func ParseFieldTable(lines []string, labels []string, window int) FieldTable {
	table := make(FieldTable, len(labels))
	if window > len(lines) {
		window = len(lines)
	}
	for _, line := range lines[:max(window, 0)] {
		for _, label := range labels {
			if _, seen := table[label]; seen {
				continue
			}
			if value, ok := SplitLabeledValue(line, label); ok {
				table[label] = value
				// One line carries one label; the first label listed wins.
				break
			}
		}
	}
	return table
}

// Value returns the raw value recorded for label.
func (t FieldTable) Value(label string) (string, bool) {
	v, ok := t[label]
	return v, ok
}

// Integer returns the leading integer of label's value. found reports whether
// the label was seen, ok whether its value held digits.
func (t FieldTable) Integer(label string) (n int, found bool, ok bool) {
	v, found := t[label]
	if !found {
		return 0, false, false
	}
	n, ok = ExtractLeadingInteger(v)
	return n, true, ok
}
