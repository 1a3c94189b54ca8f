package geo

import "fmt"

// Position is a non-negative offset from the origin in character cells.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) ToString() string {
	return fmt.Sprintf("%d/%d", p.X, p.Y)
}
