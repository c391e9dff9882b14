package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialogalign/msalign/internal/token"
)

func TestEditDistanceEqualTokensShortCircuits(t *testing.T) {
	assert.Equal(t, 0, EditDistance("fish", "fish"))
}

func TestEditDistanceFihsFish(t *testing.T) {
	// "fihs" -> "fish" needs two substitutions (h<->s), not a transposition:
	// Levenshtein distance has no transpose operation.
	assert.Equal(t, 2, EditDistance("fihs", "fish"))
}

func TestCompareFullyMatch(t *testing.T) {
	sc, err := Compare("fish", []token.Token{"fish"}, DefaultPartialBound)
	require.NoError(t, err)
	assert.Equal(t, FullyMatch, sc)
}

func TestComparePartialMatchWithWidePartialBound(t *testing.T) {
	// edit distance 2 < partial_bound 3 => partially match.
	sc, err := Compare("fihs", []token.Token{"fish"}, 3)
	require.NoError(t, err)
	assert.Equal(t, PartialMatch, sc)
}

func TestCompareMismatchWithDefaultPartialBound(t *testing.T) {
	// edit distance 2 is not < partial_bound 2 => mismatch, not partial.
	sc, err := Compare("fihs", []token.Token{"fish"}, DefaultPartialBound)
	require.NoError(t, err)
	assert.Equal(t, Mismatch, sc)
}

func TestComparePartialBoundOneForcesMismatch(t *testing.T) {
	sc, err := Compare("fihs", []token.Token{"fish"}, 1)
	require.NoError(t, err)
	assert.Equal(t, Mismatch, sc)

	// identical sequences are unaffected by a tight partial_bound.
	sc, err = Compare("fish", []token.Token{"fish"}, 1)
	require.NoError(t, err)
	assert.Equal(t, FullyMatch, sc)
}

func TestCompareHypothesisGapIsGapScore(t *testing.T) {
	sc, err := Compare(token.Gap, []token.Token{"fish"}, DefaultPartialBound)
	require.NoError(t, err)
	assert.Equal(t, GapScore, sc)
}

func TestCompareReferenceGapIsGapScore(t *testing.T) {
	sc, err := Compare("fish", []token.Token{token.Gap}, DefaultPartialBound)
	require.NoError(t, err)
	assert.Equal(t, GapScore, sc)
}

func TestCompareBothGapIsGapScore(t *testing.T) {
	sc, err := Compare(token.Gap, []token.Token{token.Gap, token.Gap}, DefaultPartialBound)
	require.NoError(t, err)
	assert.Equal(t, GapScore, sc)
}

func TestCompareMoreThanOneNonGapReferenceIsStructuralError(t *testing.T) {
	_, err := Compare("fish", []token.Token{"fish", "cod"}, DefaultPartialBound)
	require.Error(t, err)
	var structErr *StructuralError
	require.ErrorAs(t, err, &structErr)
	assert.Equal(t, 2, structErr.NonGapCount)
}
