// Package tensor implements the index arithmetic the N-dimensional aligner
// is built on: which axes advance together at each step of the dynamic
// program, which predecessor cells a given step depends on, and the
// row-major bijection between an N-dimensional coordinate and a flat
// offset into the dense score buffer.
//
// None of this package knows about tokens or scores; it is pure integer
// index manipulation, expressed as plain combination enumeration (Subsets
// uses a small recursive helper) with no reflection.
package tensor

import "fmt"

// ResourceError reports that a score tensor would exceed the memory the
// caller is willing to allocate.
type ResourceError struct {
	Cells int
	Cap   int
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("score tensor would require %d cells, exceeding cap %d", e.Cells, e.Cap)
}

// MatrixSize converts per-strand lengths into per-axis dimension sizes
// (L_i+1, since each axis ranges over [0, L_i] inclusive).
func MatrixSize(lengths []int) []int {
	sizes := make([]int, len(lengths))
	for i, l := range lengths {
		sizes[i] = l + 1
	}
	return sizes
}

// Size returns the total number of cells in a tensor of the given
// dimension sizes, rejecting the request before allocation if the product
// would exceed cap (or overflow an int).
func Size(matrixSize []int, cap int) (int, error) {
	total := 1
	for _, sz := range matrixSize {
		if sz <= 0 {
			return 0, fmt.Errorf("tensor: non-positive axis size %d", sz)
		}
		if total > cap/sz+1 {
			return 0, &ResourceError{Cells: -1, Cap: cap}
		}
		total *= sz
		if total > cap {
			return 0, &ResourceError{Cells: total, Cap: cap}
		}
	}
	return total, nil
}

// Offset computes the flat, row-major buffer offset for coord, given the
// per-axis dimension sizes: offset = sum_i coord[i] * prod_{j>i} matrixSize[j].
func Offset(coord []int, matrixSize []int) int {
	offset := 0
	for i := range matrixSize {
		if coord[i] == 0 {
			continue
		}
		stride := 1
		for j := i + 1; j < len(matrixSize); j++ {
			stride *= matrixSize[j]
		}
		offset += coord[i] * stride
	}
	return offset
}

// Subsets enumerates every non-empty subset of {0, ..., s-1}, in
// lexicographic order by increasing size: all size-1 subsets in ascending
// order, then all size-2, and so on up to the single size-s subset. Each
// subset is returned as an ascending slice of axis indices.
func Subsets(s int) [][]int {
	var out [][]int
	axes := make([]int, s)
	for i := range axes {
		axes[i] = i
	}
	for size := 1; size <= s; size++ {
		combo := make([]int, 0, size)
		var rec func(start int)
		rec = func(start int) {
			if len(combo) == size {
				cp := make([]int, size)
				copy(cp, combo)
				out = append(out, cp)
				return
			}
			for i := start; i < s; i++ {
				combo = append(combo, axes[i])
				rec(i + 1)
				combo = combo[:len(combo)-1]
			}
		}
		rec(0)
	}
	return out
}

// Predecessor is one candidate cell a coordinate's score may derive from,
// together with the axes that were decremented to reach it: either a
// single reference/hypothesis axis ("single-token direction") or axis 0
// plus one other axis ("double-token direction", hypothesis consumed
// together with one reference token).
type Predecessor struct {
	Coord []int
	Axes  []int
}

// Predecessors enumerates, for coordinate c under subset p (p must equal
// {i : c[i] > 0} when called from the aligner, per spec), the candidate
// predecessor cells in the fixed order the forward pass and backtracking
// both rely on: for each axis i in p (ascending), the single-token
// predecessor that decrements only i, immediately followed — when 0 is in
// p and i != 0 — by the double-token predecessor that decrements both 0
// and i. This interleaved order is the deterministic tie-break used by
// backtracking.
func Predecessors(p []int, c []int) []Predecessor {
	hasZero := false
	for _, i := range p {
		if i == 0 {
			hasZero = true
			break
		}
	}

	preds := make([]Predecessor, 0, 2*len(p))
	for _, i := range p {
		single := append([]int(nil), c...)
		single[i]--
		preds = append(preds, Predecessor{Coord: single, Axes: []int{i}})

		if hasZero && i != 0 {
			double := append([]int(nil), single...)
			double[0]--
			preds = append(preds, Predecessor{Coord: double, Axes: []int{0, i}})
		}
	}
	return preds
}

// ActiveAxes returns { i : c[i] > 0 }, ascending — the subset P that
// backtracking uses at coordinate c.
func ActiveAxes(c []int) []int {
	var p []int
	for i, v := range c {
		if v > 0 {
			p = append(p, i)
		}
	}
	return p
}
