package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialogalign/msalign/internal/msa"
)

func TestTokenMatchResultCategories(t *testing.T) {
	grid := msa.Grid{
		{"cat", "cats", "dog", "-", "extra"},
		{"cat", "cat", "fox", "ref", "-"},
	}
	cats := TokenMatchResult(grid, 2)
	require.Len(t, cats, 5)
	assert.Equal(t, FullyMatch, cats[0])
	assert.Equal(t, PartiallyMatch, cats[1])
	assert.Equal(t, Mismatch, cats[2])
	assert.Equal(t, Gap, cats[3])
	assert.Equal(t, Gap, cats[4])
}

func TestAlignIndicesMapsToHypothesisColumn(t *testing.T) {
	grid := msa.Grid{
		{"a", "-", "b"},
		{"a", "c", "b"},
	}
	indices := AlignIndices(grid)
	require.Len(t, indices, 1)
	assert.Equal(t, []int{0, -1, 2}, indices[0])
}

func TestRefOriginalIndicesGroupsBySpeaker(t *testing.T) {
	labels := []string{"A", "B", "A"}
	unique := []string{"A", "B"}
	idx := RefOriginalIndices(labels, unique)
	assert.Equal(t, [][]int{{0, 2}, {1}}, idx)
}

func TestAlignedHypoSpeakerLabelConsumesOnlyNonGap(t *testing.T) {
	grid := msa.Grid{
		{"a", "-", "b"},
	}
	out := AlignedHypoSpeakerLabel(grid, []string{"H1", "H2"})
	assert.Equal(t, []string{"H1", "-", "H2"}, out)
}
