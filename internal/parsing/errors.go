package parsing

import "fmt"

// HeaderError is returned when a document-level numeric label is present but
// its value holds no digits. The whole document is then considered untrustworthy.
type HeaderError struct {
	Label string
	Value string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("header error: %s has no numeric value in %q", e.Label, e.Value)
}

// BlockError describes why a single block was rejected. It is recorded in the
// parse report and never returned to the caller.
type BlockError struct {
	Index  int
	Field  string
	Reason string
}

func (e *BlockError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("block %d: %s: %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("block %d: %s", e.Index, e.Reason)
}

// UnknownKindError is returned for an unsupported document kind
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown document kind %q", e.Kind)
}
