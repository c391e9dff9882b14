// Package speaker implements the orchestration layer around the
// N-dimensional aligner: deriving the unique speaker set from a reference
// label sequence, partitioning reference tokens by speaker, and stitching
// per-segment alignment grids back into one K+1-row global grid.
package speaker

import (
	"fmt"
	"sort"

	"github.com/dialogalign/msalign/internal/msa"
	"github.com/dialogalign/msalign/internal/token"
)

// Unique returns the distinct labels in labels, ordered lexicographically
// for reproducibility (spec's resolved open question — a set-based
// dedup, as the original implementation used, gives no ordering
// guarantee across runs or platforms).
func Unique(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}

// Partition splits tokens into one Strand per entry of uniqueLabels,
// preserving each speaker's original relative token order. labels must be
// the same length as tokens and every entry must appear in uniqueLabels.
func Partition(tokens token.Strand, labels []string, uniqueLabels []string) ([]token.Strand, error) {
	index := make(map[string]int, len(uniqueLabels))
	for i, l := range uniqueLabels {
		index[l] = i
	}

	strands := make([]token.Strand, len(uniqueLabels))
	for i, t := range tokens {
		idx, ok := index[labels[i]]
		if !ok {
			return nil, fmt.Errorf("speaker: label %q at position %d is not in the unique speaker set", labels[i], i)
		}
		strands[idx] = append(strands[idx], t)
	}
	return strands, nil
}

// OriginalIndices groups the original positions of tokens (0-based,
// pre-alignment) by which unique speaker spoke them, preserving order
// within each speaker's group.
func OriginalIndices(labels []string, uniqueLabels []string) [][]int {
	index := make(map[string]int, len(uniqueLabels))
	for i, l := range uniqueLabels {
		index[l] = i
	}
	out := make([][]int, len(uniqueLabels))
	for i, l := range labels {
		idx := index[l]
		out[idx] = append(out[idx], i)
	}
	return out
}

// Stitch appends one segment's alignment grid onto a running global grid,
// routing each of the segment's reference rows to the global row owned by
// its speaker (segmentSpeakers[j] names the speaker of segment grid row
// j+1), then pads every reference row shorter than row 0 with gaps so all
// rows stay rectangular after the append.
func Stitch(global msa.Grid, uniqueLabels []string, segment msa.Grid, segmentSpeakers []string) (msa.Grid, error) {
	if len(global) == 0 {
		global = make(msa.Grid, len(uniqueLabels)+1)
	}
	if len(segment) == 0 {
		return global, nil
	}

	global[0] = append(global[0], segment[0]...)

	speakerRow := make(map[string]int, len(uniqueLabels))
	for i, l := range uniqueLabels {
		speakerRow[l] = i + 1
	}

	for j, spk := range segmentSpeakers {
		row, ok := speakerRow[spk]
		if !ok {
			return nil, fmt.Errorf("speaker: segment speaker %q is not in the global unique speaker set", spk)
		}
		global[row] = append(global[row], segment[j+1]...)
	}

	for i := 1; i < len(global); i++ {
		for len(global[i]) < len(global[0]) {
			global[i] = append(global[i], token.Gap)
		}
	}
	return global, nil
}
