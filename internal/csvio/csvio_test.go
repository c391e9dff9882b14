package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialogalign/msalign/internal/msa"
	"github.com/dialogalign/msalign/internal/token"
)

const sample = "hi,there,bye\nhi,there,bye\nA,A,B\n"

func TestReadAndHypothesis(t *testing.T) {
	doc, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	hypo, err := doc.Hypothesis(0)
	require.NoError(t, err)
	assert.Equal(t, token.Strand{"hi", "there", "bye"}, hypo)
}

func TestReferenceWithLabel(t *testing.T) {
	doc, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	ref, labels, err := doc.ReferenceWithLabel(1, 2)
	require.NoError(t, err)
	assert.Equal(t, token.Strand{"hi", "there", "bye"}, ref)
	assert.Equal(t, []string{"A", "A", "B"}, labels)
}

func TestHypothesisOutOfRange(t *testing.T) {
	doc, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	_, err = doc.Hypothesis(99)
	assert.Error(t, err)
}

func TestWriteGridRoundTrip(t *testing.T) {
	grid := msa.Grid{{"a", "b"}, {"a", "-"}}
	var buf bytes.Buffer
	require.NoError(t, WriteGrid(&buf, grid))

	doc, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, doc, 2)
	assert.Equal(t, []string{"a", "b"}, []string(doc[0]))
}
