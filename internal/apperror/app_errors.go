package apperror

import "errors"

var (
	ErrPlacementOutOfBounds = errors.New("vessel does not fit on the board")
	ErrInvalidVessel        = errors.New("vessel length must be at least 1")
	ErrVesselPlaced         = errors.New("vessel is already placed on a board")
	ErrInvalidBoardSize     = errors.New("board size must be at least 1")
	ErrShotOutOfBounds      = errors.New("target is outside the board")
	ErrAlreadyShot          = errors.New("target has already been shot")
	ErrInputClosed          = errors.New("coordinate input is closed")
	ErrFleetPlacement       = errors.New("could not place fleet on the board")
	ErrMatchNotFound        = errors.New("match not found")
)
