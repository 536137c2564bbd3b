package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	m := diagonalMatrix(t, 8)

	v, err := Extract(m)
	require.NoError(t, err)

	iso, err := Isoperimeter(m)
	require.NoError(t, err)
	zones, err := Zoning(m)
	require.NoError(t, err)

	assert.Equal(t, iso, v.Isoperimeter)
	assert.Equal(t, zones, v.Zoning)
	assert.Equal(t, VerticalProfile(m), v.VerticalProfile)
	assert.Len(t, v.VerticalProfile, 8)
	assert.Contains(t, v.String(), "iso=")
}

func TestExtract_PropagatesErrors(t *testing.T) {
	_, err := Extract(filledMatrix(t, 8, Background))
	assert.ErrorIs(t, err, ErrDegenerateInput)

	_, err = Extract(filledMatrix(t, 6, Ink))
	assert.ErrorIs(t, err, ErrZoneSize)
}
