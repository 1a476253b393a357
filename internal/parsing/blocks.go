package parsing

import (
	"errors"
	"strings"

	"github.com/jonathan/cv-optimizer/internal/types"
)

// SplitBlocks splits doc on every occurrence of marker. Text before the first
// marker is returned as the preamble and never forms a block.
func SplitBlocks(doc, marker string) (blocks []string, preamble string) {
	if marker == "" {
		return nil, doc
	}
	parts := strings.Split(doc, marker)
	return parts[1:], parts[0]
}

// Outcome is the result of building one block: either an accepted record or
// the error that rejected it.
type Outcome[T any] struct {
	Index  int // 1-based position among the document's blocks
	Record T
	Err    error
}

// Accepted reports whether the block produced a record.
func (o Outcome[T]) Accepted() bool {
	return o.Err == nil
}

// buildBlocks runs build on every block and records each outcome.
func buildBlocks[B, T any](blocks []B, build func(index int, block B) (T, error)) []Outcome[T] {
	outcomes := make([]Outcome[T], 0, len(blocks))
	for i, block := range blocks {
		record, err := build(i+1, block)
		outcomes = append(outcomes, Outcome[T]{Index: i + 1, Record: record, Err: err})
	}
	return outcomes
}

// collect keeps accepted records in order and tallies rejections.
func collect[T any](outcomes []Outcome[T]) ([]T, types.ParseReport) {
	records := make([]T, 0, len(outcomes))
	report := types.ParseReport{Blocks: len(outcomes)}
	for _, o := range outcomes {
		if o.Accepted() {
			records = append(records, o.Record)
			report.Accepted++
			continue
		}
		report.Dropped++
		report.Rejections = append(report.Rejections, rejection(o.Index, o.Err))
	}
	return records, report
}

func rejection(index int, err error) types.BlockRejection {
	var blockErr *BlockError
	if errors.As(err, &blockErr) {
		return types.BlockRejection{Index: index, Field: blockErr.Field, Reason: blockErr.Reason}
	}
	return types.BlockRejection{Index: index, Reason: err.Error()}
}
