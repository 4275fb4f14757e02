package entity

import "fmt"

// Coordinate is a cell address on a board. X is the row, Y is the column.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

func (that Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: that.X + dx, Y: that.Y + dy}
}

func (that Coordinate) String() string {
	return fmt.Sprintf("%d %d", that.X, that.Y)
}
