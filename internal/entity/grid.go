package entity

import (
	"fmt"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

type CellState int

const (
	CellEmpty CellState = iota
	// CellNoPlace marks the ring around a placed vessel. It blocks placement, not shots.
	CellNoPlace
	CellOccupied
	CellHit
	CellMiss
)

func (that CellState) String() string {
	switch that {
	case CellEmpty:
		return "empty"
	case CellNoPlace:
		return "no-place"
	case CellOccupied:
		return "occupied"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return "unknown"
	}
}

type ShotResult int

const (
	ShotMiss ShotResult = iota
	ShotHit
)

func (that ShotResult) String() string {
	if that == ShotHit {
		return "hit"
	}
	return "miss"
}

// GridView is the read-only side of a Grid used by strategies and renderers.
type GridView interface {
	Size() int
	Concealed() bool
	Afloat() int
	Visible(target Coordinate) CellState
}

var neighbours = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type Grid struct {
	size               int
	cells              [][]CellState
	vessels            []*Vessel
	afloat             int
	concealed          bool
	contourBlocksShots bool
}

type GridOption func(*Grid)

// WithConcealment hides vessels from Visible.
func WithConcealment() GridOption {
	return func(g *Grid) {
		g.concealed = true
	}
}

// WithContourBlockingShots makes the placement ring count as already shot.
func WithContourBlockingShots(enabled bool) GridOption {
	return func(g *Grid) {
		g.contourBlocksShots = enabled
	}
}

func NewGrid(size int, opts ...GridOption) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidBoardSize, size)
	}

	cells := make([][]CellState, size)
	for i := range cells {
		cells[i] = make([]CellState, size)
	}

	grid := &Grid{
		size:  size,
		cells: cells,
	}

	for _, opt := range opts {
		opt(grid)
	}

	return grid, nil
}

func (that *Grid) Size() int {
	return that.size
}

func (that *Grid) Concealed() bool {
	return that.concealed
}

// Afloat returns the number of vessels with hits remaining.
func (that *Grid) Afloat() int {
	return that.afloat
}

func (that *Grid) Vessels() []*Vessel {
	vessels := make([]*Vessel, len(that.vessels))
	copy(vessels, that.vessels)
	return vessels
}

func (that *Grid) IsOutside(target Coordinate) bool {
	return target.X < 0 || target.X >= that.size || target.Y < 0 || target.Y >= that.size
}

// Cell returns the true state of the cell.
func (that *Grid) Cell(target Coordinate) (CellState, error) {
	if that.IsOutside(target) {
		return CellEmpty, fmt.Errorf("%w: %s", apperror.ErrShotOutOfBounds, target)
	}

	return that.cells[target.X][target.Y], nil
}

// Visible returns the state an outside viewer may see. A concealed grid
// shows intact vessels as empty water. The placement ring is hidden too,
// unless it blocks shots, in which case the viewer must be able to avoid it.
func (that *Grid) Visible(target Coordinate) CellState {
	if that.IsOutside(target) {
		return CellEmpty
	}

	state := that.cells[target.X][target.Y]
	if !that.concealed {
		return state
	}

	if state == CellOccupied || (state == CellNoPlace && !that.contourBlocksShots) {
		return CellEmpty
	}

	return state
}

// AddVessel places the vessel if every cell it covers is on the board and empty.
// On failure the grid is left untouched.
func (that *Grid) AddVessel(vessel *Vessel) error {
	if vessel.placed {
		return apperror.ErrVesselPlaced
	}

	cells := vessel.Cells()
	for _, cell := range cells {
		if that.IsOutside(cell) || that.cells[cell.X][cell.Y] != CellEmpty {
			return fmt.Errorf("%w: %d-cell %s vessel at %s", apperror.ErrPlacementOutOfBounds, vessel.length, vessel.orientation, vessel.origin)
		}
	}

	for _, cell := range cells {
		that.cells[cell.X][cell.Y] = CellOccupied
	}

	vessel.placed = true
	that.vessels = append(that.vessels, vessel)
	that.afloat++
	that.MarkContour(vessel, true)

	return nil
}

// MarkContour marks the ring around the vessel. Verbose marking is done at
// placement and only claims empty cells as CellNoPlace. Otherwise empty and
// CellNoPlace cells become CellMiss. Vessel cells are never touched.
func (that *Grid) MarkContour(vessel *Vessel, verbose bool) {
	for _, cell := range vessel.Cells() {
		for _, offset := range neighbours {
			near := cell.Add(offset[0], offset[1])
			if that.IsOutside(near) {
				continue
			}

			switch state := that.cells[near.X][near.Y]; {
			case verbose && state == CellEmpty:
				that.cells[near.X][near.Y] = CellNoPlace
			case !verbose && (state == CellEmpty || state == CellNoPlace):
				that.cells[near.X][near.Y] = CellMiss
			}
		}
	}
}

// Shoot resolves a shot at this grid.
func (that *Grid) Shoot(target Coordinate) (ShotResult, error) {
	if that.IsOutside(target) {
		return ShotMiss, fmt.Errorf("%w: %s", apperror.ErrShotOutOfBounds, target)
	}

	switch that.cells[target.X][target.Y] {
	case CellHit, CellMiss:
		return ShotMiss, fmt.Errorf("%w: %s", apperror.ErrAlreadyShot, target)
	case CellNoPlace:
		if that.contourBlocksShots {
			return ShotMiss, fmt.Errorf("%w: %s", apperror.ErrAlreadyShot, target)
		}
	case CellOccupied:
		that.cells[target.X][target.Y] = CellHit

		vessel := that.vesselAt(target)
		if vessel == nil {
			return ShotHit, nil
		}

		vessel.takeHit()
		if vessel.IsSunk() {
			that.afloat--
			that.MarkContour(vessel, false)
		}

		return ShotHit, nil
	}

	that.cells[target.X][target.Y] = CellMiss

	return ShotMiss, nil
}

func (that *Grid) vesselAt(target Coordinate) *Vessel {
	for _, vessel := range that.vessels {
		if vessel.Contains(target) {
			return vessel
		}
	}

	return nil
}
