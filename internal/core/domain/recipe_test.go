package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRecipe_ManagerBeforeInvestor(t *testing.T) {
	// Manager signs page 27, investors page 28: the manager page stays
	// attached to the body before the collected signatures.
	recipe := DefaultRecipe(28, 27)
	require.NoError(t, recipe.Validate())

	assert.Equal(t, []Segment{
		{Source: SourceClean, Start: 0, End: 28},
		{Source: SourceSignatures, Start: 0, End: -1},
		{Source: SourceClean, Start: 29, End: -1},
	}, recipe.Segments)
}

func TestDefaultRecipe_InvestorBeforeManager(t *testing.T) {
	recipe := DefaultRecipe(27, 28)
	require.NoError(t, recipe.Validate())

	assert.Equal(t, []Segment{
		{Source: SourceClean, Start: 0, End: 27},
		{Source: SourceSignatures, Start: 0, End: -1},
		{Source: SourceClean, Start: 28, End: 29},
		{Source: SourceClean, Start: 29, End: -1},
	}, recipe.Segments)
}

func TestRecipe_Validate(t *testing.T) {
	err := Recipe{}.Validate()
	assert.ErrorIs(t, err, ErrInvalidRecipe)

	err = Recipe{Segments: []Segment{{Source: "clipboard", Start: 0, End: 1}}}.Validate()
	assert.ErrorIs(t, err, ErrInvalidRecipe)

	err = Recipe{Segments: []Segment{{Source: SourceClean, Start: 0, End: -1}}}.Validate()
	assert.NoError(t, err)
}

func TestSegment_Resolve(t *testing.T) {
	rng, ok, err := Segment{Source: SourceClean, Start: 0, End: -1}.Resolve(10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, PageRange{Start: 0, End: 10}, rng)
}

func TestSegment_Resolve_EmptyIsSkipped(t *testing.T) {
	// A signature page on the last page leaves no trailing body.
	_, ok, err := Segment{Source: SourceClean, Start: 10, End: -1}.Resolve(10)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSegment_Resolve_ClampsEnd(t *testing.T) {
	rng, ok, err := Segment{Source: SourceClean, Start: 8, End: 99}.Resolve(10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, PageRange{Start: 8, End: 10}, rng)
}

func TestSegment_Resolve_NegativeStartOutOfRange(t *testing.T) {
	_, _, err := Segment{Source: SourceClean, Start: -20, End: -1}.Resolve(10)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
