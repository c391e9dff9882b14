package msa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialogalign/msalign/internal/token"
)

func gridStrings(g Grid) []string {
	out := make([]string, len(g))
	for i, row := range g {
		s := ""
		for j, t := range row {
			if j > 0 {
				s += " "
			}
			s += t
		}
		out[i] = s
	}
	return out
}

func TestAlignIdenticalSingleReference(t *testing.T) {
	a := New(2)
	hypo := token.Strand{"the", "cat", "sat"}
	ref := token.Strand{"the", "cat", "sat"}

	grid, err := a.Align(hypo, []token.Strand{ref})
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"the cat sat", "the cat sat"}, gridStrings(grid))
}

func TestAlignInsertionInHypothesis(t *testing.T) {
	a := New(2)
	hypo := token.Strand{"the", "big", "cat", "sat"}
	ref := token.Strand{"the", "cat", "sat"}

	grid, err := a.Align(hypo, []token.Strand{ref})
	require.NoError(t, err)
	assert.Equal(t, "the big cat sat", gridStrings(grid)[0])
	assert.Equal(t, "the - cat sat", gridStrings(grid)[1])
}

func TestAlignDeletionFromHypothesis(t *testing.T) {
	a := New(2)
	hypo := token.Strand{"the", "sat"}
	ref := token.Strand{"the", "cat", "sat"}

	grid, err := a.Align(hypo, []token.Strand{ref})
	require.NoError(t, err)
	assert.Equal(t, "the - sat", gridStrings(grid)[0])
	assert.Equal(t, "the cat sat", gridStrings(grid)[1])
}

func TestAlignPartialMatch(t *testing.T) {
	a := New(2)
	hypo := token.Strand{"cats"}
	ref := token.Strand{"cat"}

	grid, err := a.Align(hypo, []token.Strand{ref})
	require.NoError(t, err)
	assert.Equal(t, "cats", gridStrings(grid)[0])
	assert.Equal(t, "cat", gridStrings(grid)[1])
}

func TestAlignTwoReferenceStrands(t *testing.T) {
	a := New(2)
	hypo := token.Strand{"hi", "bye"}
	ref1 := token.Strand{"hi"}
	ref2 := token.Strand{"bye"}

	grid, err := a.Align(hypo, []token.Strand{ref1, ref2})
	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Equal(t, "hi bye", gridStrings(grid)[0])

	for _, row := range grid {
		require.Len(t, row, len(grid[0]))
	}
}

func TestAlignEmptyHypothesis(t *testing.T) {
	a := New(2)
	hypo := token.Strand{}
	ref := token.Strand{"a", "b"}

	grid, err := a.Align(hypo, []token.Strand{ref})
	require.NoError(t, err)
	assert.Equal(t, "- -", gridStrings(grid)[0])
	assert.Equal(t, "a b", gridStrings(grid)[1])
}

func TestAlignEmptyEverything(t *testing.T) {
	a := New(2)
	grid, err := a.Align(token.Strand{}, []token.Strand{{}})
	require.NoError(t, err)
	assert.Equal(t, 0, len(grid[0]))
	assert.Equal(t, 0, len(grid[1]))
}

func TestAlignRowsSameLength(t *testing.T) {
	a := New(2)
	hypo := token.Strand{"a", "x", "b", "c"}
	ref1 := token.Strand{"a", "b", "c", "d"}
	ref2 := token.Strand{"a", "b"}

	grid, err := a.Align(hypo, []token.Strand{ref1, ref2})
	require.NoError(t, err)
	l := len(grid[0])
	for _, row := range grid {
		assert.Equal(t, l, len(row))
	}
}

func TestAlignNonGapTokensPreserved(t *testing.T) {
	a := New(2)
	hypo := token.Strand{"w1", "w2", "w3"}
	ref := token.Strand{"w1", "w3"}

	grid, err := a.Align(hypo, []token.Strand{ref})
	require.NoError(t, err)

	var hypoTokens, refTokens []string
	for _, tok := range grid[0] {
		if tok != token.Gap {
			hypoTokens = append(hypoTokens, tok)
		}
	}
	for _, tok := range grid[1] {
		if tok != token.Gap {
			refTokens = append(refTokens, tok)
		}
	}
	assert.Equal(t, []string{"w1", "w2", "w3"}, hypoTokens)
	assert.Equal(t, []string{"w1", "w3"}, refTokens)
}

func TestAlignGapColumnDisjoint(t *testing.T) {
	a := New(2)
	hypo := token.Strand{"a", "b"}
	ref1 := token.Strand{"a"}
	ref2 := token.Strand{"b"}

	grid, err := a.Align(hypo, []token.Strand{ref1, ref2})
	require.NoError(t, err)

	for col := 0; col < len(grid[0]); col++ {
		nonGapRefs := 0
		if grid[1][col] != token.Gap {
			nonGapRefs++
		}
		if grid[2][col] != token.Gap {
			nonGapRefs++
		}
		assert.LessOrEqual(t, nonGapRefs, 1)
	}
}

func TestAlignDeterministic(t *testing.T) {
	a := New(2)
	hypo := token.Strand{"a", "b", "c", "d", "e"}
	ref1 := token.Strand{"a", "c", "e"}
	ref2 := token.Strand{"b", "d"}

	first, err := a.Align(hypo, []token.Strand{ref1, ref2})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := a.Align(hypo, []token.Strand{ref1, ref2})
		require.NoError(t, err)
		assert.Equal(t, gridStrings(first), gridStrings(again))
	}
}

func TestCoordsInSubsetOrder(t *testing.T) {
	matrixSize := []int{3, 2}
	next := coordsInSubset([]int{0, 1}, matrixSize)
	var got [][]int
	for c, ok := next(); ok; c, ok = next() {
		got = append(got, c)
	}
	want := [][]int{{1, 1}, {2, 1}}
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.Equal(t, want[i], got[i])
	}
}
