package entity

import (
	"testing"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVessel(t *testing.T) {
	t.Run("Starts with hits equal to its length", func(t *testing.T) {
		// When: a vessel of length 3 is created
		vessel, err := NewVessel(NewCoordinate(1, 1), 3, Horizontal)

		// Then: it is afloat with 3 hits remaining
		require.NoError(t, err)
		assert.Equal(t, 3, vessel.RemainingHits())
		assert.False(t, vessel.IsSunk())
	})

	t.Run("Rejects zero length", func(t *testing.T) {
		// When: a vessel of length 0 is created
		vessel, err := NewVessel(NewCoordinate(0, 0), 0, Vertical)

		// Then: ErrInvalidVessel is returned
		require.ErrorIs(t, err, apperror.ErrInvalidVessel)
		assert.Nil(t, vessel)
	})
}

func TestVessel_Cells(t *testing.T) {
	t.Run("Horizontal vessel grows along Y", func(t *testing.T) {
		// Given: a horizontal vessel at (1, 1)
		vessel, err := NewVessel(NewCoordinate(1, 1), 3, Horizontal)
		require.NoError(t, err)

		// When: asking for its cells
		cells := vessel.Cells()

		// Then: the cells run along the row
		assert.Equal(t, []Coordinate{{1, 1}, {1, 2}, {1, 3}}, cells)
	})

	t.Run("Vertical vessel grows along X", func(t *testing.T) {
		// Given: a vertical vessel at (2, 4)
		vessel, err := NewVessel(NewCoordinate(2, 4), 2, Vertical)
		require.NoError(t, err)

		// When: asking for its cells
		cells := vessel.Cells()

		// Then: the cells run down the column
		assert.Equal(t, []Coordinate{{2, 4}, {3, 4}}, cells)
	})

	t.Run("Cells are distinct and colinear for every length", func(t *testing.T) {
		for length := 1; length <= 6; length++ {
			for _, orientation := range []Orientation{Horizontal, Vertical} {
				vessel, err := NewVessel(NewCoordinate(0, 0), length, orientation)
				require.NoError(t, err)

				cells := vessel.Cells()
				require.Len(t, cells, length)

				seen := make(map[Coordinate]struct{}, length)
				for i, cell := range cells {
					seen[cell] = struct{}{}
					if orientation == Horizontal {
						assert.Equal(t, Coordinate{0, i}, cell)
					} else {
						assert.Equal(t, Coordinate{i, 0}, cell)
					}
				}
				assert.Len(t, seen, length)
			}
		}
	})
}

func TestVessel_takeHit(t *testing.T) {
	// Given: a single-cell vessel
	vessel, err := NewVessel(NewCoordinate(0, 0), 1, Horizontal)
	require.NoError(t, err)

	// When: it is hit twice
	vessel.takeHit()
	vessel.takeHit()

	// Then: it is sunk and the counter does not go negative
	assert.True(t, vessel.IsSunk())
	assert.Equal(t, 0, vessel.RemainingHits())
}

func TestVessel_Contains(t *testing.T) {
	vessel, err := NewVessel(NewCoordinate(3, 0), 3, Vertical)
	require.NoError(t, err)

	assert.True(t, vessel.Contains(NewCoordinate(5, 0)))
	assert.False(t, vessel.Contains(NewCoordinate(6, 0)))
	assert.False(t, vessel.Contains(NewCoordinate(3, 1)))
}
