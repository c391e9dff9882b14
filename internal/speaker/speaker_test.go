package speaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialogalign/msalign/internal/msa"
	"github.com/dialogalign/msalign/internal/token"
)

func TestUniqueIsSortedAndDeduplicated(t *testing.T) {
	labels := []string{"B", "A", "B", "C", "A"}
	assert.Equal(t, []string{"A", "B", "C"}, Unique(labels))
}

func TestPartitionPreservesOrderPerSpeaker(t *testing.T) {
	tokens := token.Strand{"hi", "there", "bye", "now"}
	labels := []string{"A", "B", "A", "B"}
	unique := Unique(labels)

	strands, err := Partition(tokens, labels, unique)
	require.NoError(t, err)
	assert.Equal(t, token.Strand{"hi", "bye"}, strands[0])
	assert.Equal(t, token.Strand{"there", "now"}, strands[1])
}

func TestPartitionRejectsUnknownLabel(t *testing.T) {
	tokens := token.Strand{"hi"}
	labels := []string{"Z"}
	_, err := Partition(tokens, labels, []string{"A"})
	assert.Error(t, err)
}

func TestOriginalIndicesGroupsBySpeaker(t *testing.T) {
	labels := []string{"A", "B", "A", "B"}
	unique := Unique(labels)
	idx := OriginalIndices(labels, unique)
	assert.Equal(t, [][]int{{0, 2}, {1, 3}}, idx)
}

func TestStitchPadsShorterRows(t *testing.T) {
	unique := []string{"A", "B"}
	var global msa.Grid

	seg1 := msa.Grid{{"h1", "h2"}, {"a1", "-"}, {"-", "-"}}
	global, err := Stitch(global, unique, seg1, []string{"A", "B"})
	require.NoError(t, err)

	seg2 := msa.Grid{{"h3"}, {"-"}}
	global, err = Stitch(global, unique, seg2, []string{"B"})
	require.NoError(t, err)

	assert.Equal(t, []string{"h1", "h2", "h3"}, global[0])
	assert.Equal(t, 3, len(global[1]))
	assert.Equal(t, 3, len(global[2]))
	assert.Equal(t, "-", global[1][2])
}

func TestStitchRejectsUnknownSpeaker(t *testing.T) {
	unique := []string{"A"}
	var global msa.Grid
	seg := msa.Grid{{"h1"}, {"r1"}}
	_, err := Stitch(global, unique, seg, []string{"Z"})
	assert.Error(t, err)
}
