package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialogalign/msalign/internal/msa"
	"github.com/dialogalign/msalign/internal/result"
)

func TestFromGridFullyMatch(t *testing.T) {
	grid := msa.Grid{
		{"a", "b"},
		{"a", "b"},
	}
	cats := result.TokenMatchResult(grid, 2)
	by := FromGrid(grid, []string{"S1"}, cats)

	require.Contains(t, by, "S1")
	assert.Equal(t, 2, by["S1"].FullyMatch)
	assert.Equal(t, 0.0, by["S1"].WER)
}

func TestFromGridSubstitution(t *testing.T) {
	grid := msa.Grid{
		{"cat"},
		{"dog"},
	}
	cats := result.TokenMatchResult(grid, 2)
	by := FromGrid(grid, []string{"S1"}, cats)

	assert.Equal(t, 1, by["S1"].Mismatch)
	assert.Equal(t, 1, by["S1"].Substitutions)
	assert.Equal(t, 1.0, by["S1"].WER)
}

func TestFromGridDeletion(t *testing.T) {
	grid := msa.Grid{
		{"-"},
		{"word"},
	}
	cats := result.TokenMatchResult(grid, 2)
	by := FromGrid(grid, []string{"S1"}, cats)

	assert.Equal(t, 1, by["S1"].Deletions)
	assert.Equal(t, 1, by["S1"].ReferenceTokens)
}

func TestFromGridInsertionUnattributed(t *testing.T) {
	grid := msa.Grid{
		{"extra"},
		{"-"},
	}
	cats := result.TokenMatchResult(grid, 2)
	by := FromGrid(grid, []string{"S1"}, cats)

	assert.Equal(t, 0, by["S1"].Insertions)
	assert.Equal(t, 1, by[unknownSpeaker].Insertions)
}

func TestFromSpeakerStatsAggregate(t *testing.T) {
	grid := msa.Grid{
		{"a", "b", "x"},
		{"a", "-", "-"},
	}
	cats := result.TokenMatchResult(grid, 2)
	by := FromGrid(grid, []string{"S1"}, cats)
	set := FromSpeakerStats(by, []string{"S1"}, len(grid[0]))

	assert.Equal(t, 1, set.SpeakerCount)
	assert.Equal(t, 3, set.TotalColumns)
}
