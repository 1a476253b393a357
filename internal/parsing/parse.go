package parsing

import "github.com/jonathan/cv-optimizer/internal/types"

// Options tune a Parse call
type Options struct {
	// Normalize runs Normalize on the text first
	Normalize bool
}

// Parse dispatches text to the parser of kind and returns its typed result.
func Parse(kind Kind, text string, opts Options) (any, types.ParseReport, error) {
	if opts.Normalize {
		text = Normalize(text)
	}
	switch kind {
	case KindAnalysis:
		return ParseAnalysis(text)
	case KindChecklist:
		return ParseChecklist(text)
	case KindAts:
		return ParseAts(text)
	case KindImprovements:
		return ParseImprovements(text)
	default:
		return nil, types.ParseReport{}, &UnknownKindError{Kind: string(kind)}
	}
}
