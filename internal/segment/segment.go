// Package segment implements the barrier-anchored cut-finding preprocessor
// that keeps the N-dimensional aligner's tensor tractable on long
// dialogues: it chops the hypothesis and reference into matched pairs of
// segments before internal/msa ever sees them.
package segment

import "github.com/dialogalign/msalign/internal/token"

// DefaultMinLength and DefaultMaxLength bound the optimal-length sweep;
// DefaultBarrierLength is the anchor window size used to confirm a cut
// point actually lines up across hypothesis and reference.
const (
	DefaultMinLength     = 30
	DefaultMaxLength     = 120
	DefaultBarrierLength = 6
)

// Index holds the cut points for one side (hypothesis or reference) of a
// segmentation: index[0] is always 0 and index[len(index)-1] is always the
// sequence's full length, so adjacent pairs bound each segment.
type Index []int

// Cuts pairs the hypothesis and reference cut points produced by the same
// segmentation pass; len(Hypothesis) == len(Reference) always, since both
// sides advance together.
type Cuts struct {
	Hypothesis Index
	Reference  Index
}

// Find scans the hypothesis starting at segmentLength, and for each
// position looks for a run of barrierLength consecutive tokens that also
// appears in the reference (starting no earlier than the previous cut);
// when found, the cut point on both sides is the midpoint of that matched
// barrier window, and the scan jumps ahead by exactly segmentLength. If no
// barrier match is found, the hypothesis position advances by one and the
// search continues. The final entry on each side is always the full length
// of that sequence.
func Find(hypothesis, reference token.Strand, segmentLength, barrierLength int) Cuts {
	hypoIdx := Index{0}
	refIdx := Index{0}

	for i := segmentLength; i < hypothesis.Len()-barrierLength; {
		matched := false
		for j := refIdx[len(refIdx)-1]; j < reference.Len()-barrierLength; j++ {
			if barrierMatches(hypothesis, reference, i, j, barrierLength) {
				hypoIdx = append(hypoIdx, i+barrierLength/2)
				refIdx = append(refIdx, j+barrierLength/2)
				i += segmentLength
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}

	hypoIdx = append(hypoIdx, hypothesis.Len())
	refIdx = append(refIdx, reference.Len())
	return Cuts{Hypothesis: hypoIdx, Reference: refIdx}
}

func barrierMatches(hypothesis, reference token.Strand, i, j, barrierLength int) bool {
	for k := 0; k < barrierLength; k++ {
		if hypothesis.At(i+k) != reference.At(j+k) {
			return false
		}
	}
	return true
}

// Parameters is the result of sweeping segment lengths to find the one
// that minimizes worst-case segment span.
type Parameters struct {
	SegmentLength int
	BarrierLength int
}

// OptimalParameters sweeps segmentLength over [minLength, maxLength),
// keeping barrierLength fixed, and returns whichever segmentLength
// minimizes the sum of the worst-case hypothesis segment span and the
// worst-case reference segment span. Ties favor the larger length: the
// loop runs length ascending and a candidate replaces the running minimum
// when it is better or equal (a `<=` comparison), so the last tying
// candidate is kept.
func OptimalParameters(hypothesis, reference token.Strand, minLength, maxLength, barrierLength int) Parameters {
	best := Parameters{SegmentLength: 0, BarrierLength: barrierLength}
	bestSum := -1

	for length := minLength; length < maxLength; length++ {
		cuts := Find(hypothesis, reference, length, barrierLength)
		hypoMax, refMax := 0, 0
		for i := 0; i < len(cuts.Hypothesis)-1; i++ {
			if d := cuts.Hypothesis[i+1] - cuts.Hypothesis[i]; d > hypoMax {
				hypoMax = d
			}
			if d := cuts.Reference[i+1] - cuts.Reference[i]; d > refMax {
				refMax = d
			}
		}
		sum := hypoMax + refMax
		if bestSum < 0 || sum <= bestSum {
			best.SegmentLength = length
			bestSum = sum
		}
	}
	return best
}

// Sequences splits tokens into the segments bounded by adjacent entries of
// idx.
func Sequences(tokens token.Strand, idx Index) []token.Strand {
	segments := make([]token.Strand, 0, len(idx)-1)
	for i := 0; i < len(idx)-1; i++ {
		segments = append(segments, tokens[idx[i]:idx[i+1]])
	}
	return segments
}

// LabelSequences splits a parallel label slice the same way Sequences
// splits tokens, for segmenting a speaker-label row alongside its tokens.
func LabelSequences(labels []string, idx Index) [][]string {
	segments := make([][]string, 0, len(idx)-1)
	for i := 0; i < len(idx)-1; i++ {
		segments = append(segments, labels[idx[i]:idx[i+1]])
	}
	return segments
}
