// Package msa implements the N-dimensional Needleman-Wunsch multi-sequence
// aligner: one hypothesis strand plus K reference strands (one per
// speaker) aligned together into a single gap-padded grid.
//
// This generalizes the teacher's pairwise global alignment (two strands, a
// 2-D score matrix, four traceback directions) to an arbitrary strand
// count: the score "matrix" becomes a dense tensor addressed through
// internal/tensor, and "four directions" becomes the subset/predecessor
// enumeration of internal/tensor — one predecessor per axis that could
// have advanced, plus the paired hypothesis+reference direction that a
// 2-D aligner gets for free from its single diagonal move.
package msa

import (
	"fmt"

	"github.com/dialogalign/msalign/internal/scoring"
	"github.com/dialogalign/msalign/internal/tensor"
	"github.com/dialogalign/msalign/internal/token"
)

// DefaultTensorCellCap bounds the score tensor's cell count so a runaway
// segment can't exhaust memory; callers doing real segmentation (internal
// /segment) keep segments far below this, but the cap is enforced
// unconditionally as a last line of defense.
const DefaultTensorCellCap = 64 << 20 // 64M cells * 2 bytes = 128MiB

// Aligner runs the N-dimensional dynamic program for a fixed partial-match
// bound and tensor-size cap.
type Aligner struct {
	PartialBound  int
	TensorCellCap int
}

// New returns an Aligner with the given partial-match bound and the
// default tensor cap.
func New(partialBound int) *Aligner {
	return &Aligner{PartialBound: partialBound, TensorCellCap: DefaultTensorCellCap}
}

// Grid is the aligned output: row 0 is the hypothesis, rows 1..K are the
// reference strands in the order they were passed to Align.
type Grid [][]token.Token

// Align runs the aligner on one hypothesis strand and K reference strands.
// The reference strands must already be gap-disjoint inputs (partitioned
// by speaker before this call); Align itself has no notion of speakers.
func (a *Aligner) Align(hypothesis token.Strand, references []token.Strand) (Grid, error) {
	strands := make([]token.Strand, 0, len(references)+1)
	strands = append(strands, hypothesis)
	strands = append(strands, references...)

	s := len(strands)
	lengths := make([]int, s)
	for i, st := range strands {
		lengths[i] = st.Len()
	}
	matrixSize := tensor.MatrixSize(lengths)

	cap := a.TensorCellCap
	if cap <= 0 {
		cap = DefaultTensorCellCap
	}
	total, err := tensor.Size(matrixSize, cap)
	if err != nil {
		return nil, fmt.Errorf("msa: %w", err)
	}

	score := make([]int16, total)

	for _, p := range tensor.Subsets(s) {
		next := coordsInSubset(p, matrixSize)
		for c, ok := next(); ok; c, ok = next() {
			preds := tensor.Predecessors(p, c)
			best := int16(0)
			haveBest := false
			for _, pr := range preds {
				hypo, refs := compareArgs(c, pr, strands)
				sc, cerr := scoring.Compare(hypo, refs, a.PartialBound)
				if cerr != nil {
					return nil, fmt.Errorf("msa: %w", cerr)
				}
				cand := score[tensor.Offset(pr.Coord, matrixSize)] + int16(sc)
				if !haveBest || cand > best {
					best = cand
					haveBest = true
				}
			}
			score[tensor.Offset(c, matrixSize)] = best
		}
	}

	rows := make([][]token.Token, s)
	c := make([]int, s)
	copy(c, lengths)

	for !allZero(c) {
		p := tensor.ActiveAxes(c)
		preds := tensor.Predecessors(p, c)

		matched := false
		for _, pr := range preds {
			hypo, refs := compareArgs(c, pr, strands)
			sc, cerr := scoring.Compare(hypo, refs, a.PartialBound)
			if cerr != nil {
				return nil, fmt.Errorf("msa: %w", cerr)
			}
			want := score[tensor.Offset(c, matrixSize)]
			got := score[tensor.Offset(pr.Coord, matrixSize)] + int16(sc)
			if want == got {
				rows[0] = append(rows[0], hypo)
				for i, r := range refs {
					rows[i+1] = append(rows[i+1], r)
				}
				c = pr.Coord
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("msa: backtracking found no matching predecessor at %v", c)
		}
	}

	for _, row := range rows {
		reverseTokens(row)
	}
	return rows, nil
}

// compareArgs derives the hypothesis and reference candidates for the
// column represented by moving from predecessor pr to coordinate c: an
// axis that was decremented to reach pr contributes the token at its new
// index in the corresponding strand; every other axis contributes a gap.
func compareArgs(c []int, pr tensor.Predecessor, strands []token.Strand) (token.Token, []token.Token) {
	hypo := token.Gap
	refs := make([]token.Token, len(strands)-1)
	for i := range refs {
		refs[i] = token.Gap
	}
	for _, axis := range pr.Axes {
		tok := strands[axis].At(c[axis] - 1)
		if axis == 0 {
			hypo = tok
		} else {
			refs[axis-1] = tok
		}
	}
	return hypo, refs
}

func allZero(c []int) bool {
	for _, v := range c {
		if v != 0 {
			return false
		}
	}
	return true
}

func reverseTokens(s []token.Token) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// coordsInSubset returns a generator over every coordinate in the region
// that subset p sweeps (axes in p ranging 1..L_i, all other axes fixed at
// 0), traversed with the last axis of p innermost: the last axis
// increments fastest, carrying into earlier axes of p (and resetting to 1,
// not 0) exactly as spec.md's forward-pass traversal requires.
func coordsInSubset(p []int, matrixSize []int) func() ([]int, bool) {
	c := make([]int, len(matrixSize))
	for _, ax := range p {
		c[ax] = 1
	}
	for _, ax := range p {
		if c[ax] >= matrixSize[ax] {
			return func() ([]int, bool) { return nil, false }
		}
	}

	started := false
	exhausted := false
	return func() ([]int, bool) {
		if exhausted {
			return nil, false
		}
		if !started {
			started = true
			out := make([]int, len(c))
			copy(out, c)
			return out, true
		}

		last := len(p) - 1
		c[p[last]]++
		for k := last; k >= 0; k-- {
			if c[p[k]] != matrixSize[p[k]] {
				break
			}
			if k == 0 {
				exhausted = true
				return nil, false
			}
			c[p[k-1]]++
			c[p[k]] = 1
		}

		out := make([]int, len(c))
		copy(out, c)
		return out, true
	}
}
