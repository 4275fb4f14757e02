package entity

import (
	"fmt"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (that Orientation) String() string {
	switch that {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Vessel is a ship laid out in a straight line from its origin.
// Horizontal vessels grow along Y, vertical ones along X.
type Vessel struct {
	origin        Coordinate
	length        int
	orientation   Orientation
	remainingHits int
	placed        bool
}

func NewVessel(origin Coordinate, length int, orientation Orientation) (*Vessel, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidVessel, length)
	}

	return &Vessel{
		origin:        origin,
		length:        length,
		orientation:   orientation,
		remainingHits: length,
	}, nil
}

func (that *Vessel) Origin() Coordinate {
	return that.origin
}

func (that *Vessel) Length() int {
	return that.length
}

func (that *Vessel) Orientation() Orientation {
	return that.orientation
}

func (that *Vessel) RemainingHits() int {
	return that.remainingHits
}

func (that *Vessel) IsSunk() bool {
	return that.remainingHits == 0
}

// Cells returns the coordinates covered by the vessel, starting at the origin.
func (that *Vessel) Cells() []Coordinate {
	cells := make([]Coordinate, 0, that.length)
	for i := 0; i < that.length; i++ {
		if that.orientation == Vertical {
			cells = append(cells, that.origin.Add(i, 0))
		} else {
			cells = append(cells, that.origin.Add(0, i))
		}
	}

	return cells
}

func (that *Vessel) Contains(target Coordinate) bool {
	for _, cell := range that.Cells() {
		if cell == target {
			return true
		}
	}

	return false
}

// takeHit never drops below zero, a sunk vessel stays sunk.
func (that *Vessel) takeHit() {
	if that.remainingHits > 0 {
		that.remainingHits--
	}
}
