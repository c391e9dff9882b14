// Package result derives the four post-alignment views spec.md asks for
// from a completed alignment grid: per-column match category, the
// reference-to-hypothesis index map, the reference-to-original index map,
// and the aligned hypothesis speaker labels.
package result

import (
	"github.com/dialogalign/msalign/internal/msa"
	"github.com/dialogalign/msalign/internal/scoring"
	"github.com/dialogalign/msalign/internal/token"
)

// Category is one of the four per-column match classifications.
type Category string

const (
	FullyMatch     Category = "fully match"
	PartiallyMatch Category = "partially match"
	Mismatch       Category = "mismatch"
	Gap            Category = "gap"
)

// TokenMatchResult classifies every column of grid: a column counts as a
// comparison only when exactly two of its rows (across the whole grid,
// hypothesis included) hold a non-gap token — anything else, including a
// hypothesis-only or reference-only column, is Gap.
func TokenMatchResult(grid msa.Grid, partialBound int) []Category {
	if len(grid) == 0 {
		return nil
	}
	width := len(grid[0])
	out := make([]Category, width)

	for col := 0; col < width; col++ {
		var present []token.Token
		for _, row := range grid {
			if row[col] != token.Gap {
				present = append(present, row[col])
			}
		}
		switch {
		case len(present) != 2:
			out[col] = Gap
		case present[0] == present[1]:
			out[col] = FullyMatch
		case scoring.EditDistance(present[0], present[1]) < partialBound:
			out[col] = PartiallyMatch
		default:
			out[col] = Mismatch
		}
	}
	return out
}

// AlignIndices maps each non-gap token of every reference row to the
// column index it shares with the hypothesis row, or -1 when the
// hypothesis is a gap in that column (the reference token aligned to
// nothing).
func AlignIndices(grid msa.Grid) [][]int {
	if len(grid) == 0 {
		return nil
	}
	hypo := grid[0]
	out := make([][]int, len(grid)-1)
	for i := 1; i < len(grid); i++ {
		var indexes []int
		for col, tok := range grid[i] {
			if tok == token.Gap {
				continue
			}
			if hypo[col] != token.Gap {
				indexes = append(indexes, col)
			} else {
				indexes = append(indexes, -1)
			}
		}
		out[i-1] = indexes
	}
	return out
}

// RefOriginalIndices groups the original (pre-alignment) positions of the
// reference token sequence by unique speaker, preserving each speaker's
// internal order. This does not look at the alignment grid at all — it
// derives purely from the original flat reference and its label sequence.
func RefOriginalIndices(labels []string, uniqueLabels []string) [][]int {
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

// AlignedHypoSpeakerLabel walks the aligned hypothesis row and consumes
// one original hypothesis speaker label per non-gap column, emitting the
// gap sentinel for every gap column.
func AlignedHypoSpeakerLabel(grid msa.Grid, hypoSpeakerLabel []string) []string {
	if len(grid) == 0 {
		return nil
	}
	hypo := grid[0]
	out := make([]string, len(hypo))
	j := 0
	for i, tok := range hypo {
		if tok != token.Gap {
			out[i] = hypoSpeakerLabel[j]
			j++
		} else {
			out[i] = token.Gap
		}
	}
	return out
}
