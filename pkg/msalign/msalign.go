// Package msalign provides the high-level API for multi-speaker dialogue
// alignment: align a hypothesis token sequence against a speaker-labeled
// reference, with or without segmentation, and derive match results,
// index maps, speaker labels, and word-error-rate statistics from the
// result.
//
// Example usage:
//
//	grid, speakers, err := msalign.AlignWithoutSegment(hypothesis, reference, labels, msalign.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	categories := msalign.TokenMatchResult(grid, msalign.DefaultOptions().PartialBound)
package msalign

import (
	"fmt"

	"github.com/dialogalign/msalign/internal/msa"
	"github.com/dialogalign/msalign/internal/result"
	"github.com/dialogalign/msalign/internal/scoring"
	"github.com/dialogalign/msalign/internal/segment"
	"github.com/dialogalign/msalign/internal/speaker"
	"github.com/dialogalign/msalign/internal/stats"
	"github.com/dialogalign/msalign/internal/token"
)

// Re-export the core types so callers need only import this one package.
type (
	Strand       = token.Strand
	Grid         = msa.Grid
	Category     = result.Category
	SpeakerStats = stats.SpeakerStats
	SetStats     = stats.SetStats
)

// Gap is the reserved gap sentinel.
const Gap = token.Gap

// Match category constants, re-exported from internal/result.
const (
	FullyMatch     = result.FullyMatch
	PartiallyMatch = result.PartiallyMatch
	Mismatch       = result.Mismatch
	CategoryGap    = result.Gap
)

// Options configures an alignment run.
type Options struct {
	PartialBound  int
	TensorCellCap int
}

// DefaultOptions returns partial_bound=2 and the default tensor cell cap.
func DefaultOptions() Options {
	return Options{PartialBound: scoring.DefaultPartialBound, TensorCellCap: msa.DefaultTensorCellCap}
}

func (o Options) aligner() *msa.Aligner {
	a := msa.New(o.PartialBound)
	if o.TensorCellCap > 0 {
		a.TensorCellCap = o.TensorCellCap
	}
	return a
}

// AlignWithoutSegment aligns the full hypothesis against the full
// reference in one aligner call, with no segmentation. Returns the
// aligned grid and the unique speaker labels (in grid-row order, rows
// 1..K).
func AlignWithoutSegment(hypothesis Strand, reference Strand, referenceLabels []string, opts Options) (Grid, []string, error) {
	if err := hypothesis.Validate(); err != nil {
		return nil, nil, fmt.Errorf("msalign: %w", err)
	}
	if err := token.ValidateLabeled(reference, referenceLabels); err != nil {
		return nil, nil, fmt.Errorf("msalign: %w", err)
	}
	unique := speaker.Unique(referenceLabels)
	refs, err := speaker.Partition(reference, referenceLabels, unique)
	if err != nil {
		return nil, nil, fmt.Errorf("msalign: %w", err)
	}
	grid, err := opts.aligner().Align(hypothesis, refs)
	if err != nil {
		return nil, nil, fmt.Errorf("msalign: %w", err)
	}
	return grid, unique, nil
}

// AlignWithAutoSegment sweeps segment.OptimalParameters over the default
// length range before segmenting and aligning.
func AlignWithAutoSegment(hypothesis, reference Strand, referenceLabels []string, opts Options) (Grid, []string, segment.Parameters, error) {
	params := segment.OptimalParameters(hypothesis, reference,
		segment.DefaultMinLength, segment.DefaultMaxLength, segment.DefaultBarrierLength)
	grid, unique, err := AlignWithManualSegment(hypothesis, reference, referenceLabels, params.SegmentLength, params.BarrierLength, opts)
	return grid, unique, params, err
}

// AlignWithManualSegment segments hypothesis and reference with the given
// parameters, aligns each segment independently, and stitches the results
// into one global grid.
func AlignWithManualSegment(hypothesis, reference Strand, referenceLabels []string, segmentLength, barrierLength int, opts Options) (Grid, []string, error) {
	if err := hypothesis.Validate(); err != nil {
		return nil, nil, fmt.Errorf("msalign: %w", err)
	}
	if err := token.ValidateLabeled(reference, referenceLabels); err != nil {
		return nil, nil, fmt.Errorf("msalign: %w", err)
	}
	unique := speaker.Unique(referenceLabels)

	cuts := segment.Find(hypothesis, reference, segmentLength, barrierLength)
	hypoSegs := segment.Sequences(hypothesis, cuts.Hypothesis)
	refSegs := segment.Sequences(reference, cuts.Reference)
	labelSegs := segment.LabelSequences(referenceLabels, cuts.Reference)

	aligner := opts.aligner()
	var global Grid
	for i := range hypoSegs {
		segUnique := speaker.Unique(labelSegs[i])
		segRefs, err := speaker.Partition(refSegs[i], labelSegs[i], segUnique)
		if err != nil {
			return nil, nil, fmt.Errorf("msalign: segment %d: %w", i, err)
		}
		segGrid, err := aligner.Align(hypoSegs[i], segRefs)
		if err != nil {
			return nil, nil, fmt.Errorf("msalign: segment %d: %w", i, err)
		}
		global, err = speaker.Stitch(global, unique, segGrid, segUnique)
		if err != nil {
			return nil, nil, fmt.Errorf("msalign: segment %d: %w", i, err)
		}
	}
	return global, unique, nil
}

// TokenMatchResult classifies every column of grid.
func TokenMatchResult(grid Grid, partialBound int) []Category {
	return result.TokenMatchResult(grid, partialBound)
}

// AlignIndices maps each reference row's non-gap tokens to the
// hypothesis's aligned column index.
func AlignIndices(grid Grid) [][]int {
	return result.AlignIndices(grid)
}

// RefOriginalIndices groups the original reference token positions by
// unique speaker.
func RefOriginalIndices(referenceLabels []string, uniqueSpeakers []string) [][]int {
	return result.RefOriginalIndices(referenceLabels, uniqueSpeakers)
}

// UniqueSpeakerLabel returns the distinct, lexicographically ordered
// speaker labels in referenceLabels.
func UniqueSpeakerLabel(referenceLabels []string) []string {
	return speaker.Unique(referenceLabels)
}

// AlignedHypoSpeakerLabel maps the aligned hypothesis row back to the
// original per-token hypothesis speaker labels.
func AlignedHypoSpeakerLabel(grid Grid, hypoSpeakerLabel []string) []string {
	return result.AlignedHypoSpeakerLabel(grid, hypoSpeakerLabel)
}

// AlignmentStats derives per-speaker and aggregate word-error-rate
// statistics from a completed alignment.
func AlignmentStats(grid Grid, uniqueSpeakers []string, partialBound int) (map[string]*SpeakerStats, *SetStats) {
	categories := result.TokenMatchResult(grid, partialBound)
	bySpeaker := stats.FromGrid(grid, uniqueSpeakers, categories)
	set := stats.FromSpeakerStats(bySpeaker, uniqueSpeakers, len(categories))
	return bySpeaker, set
}

// Version returns the module's version string.
func Version() string {
	return "0.1.0"
}
