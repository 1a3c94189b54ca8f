package geo

import "fmt"

// Dimensions is the integer extent of an axis-aligned box.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func NewDimensions(width, height int) Dimensions {
	return Dimensions{Width: width, Height: height}
}

func (d Dimensions) Area() int {
	return d.Width * d.Height
}

// Perimeter returns 0 for degenerate boxes.
func (d Dimensions) Perimeter() int {
	if d.Width == 0 || d.Height == 0 {
		return 0
	}
	return 2 * (d.Width + d.Height)
}

func (d Dimensions) ToString() string {
	return fmt.Sprintf("%d/%d", d.Width, d.Height)
}

// Box is a Dimensions placed at a Position.
type Box struct {
	TopLeft Position
	Dimensions
}

func NewBox(tl Position, d Dimensions) Box {
	return Box{TopLeft: tl, Dimensions: d}
}

// BottomRight is exclusive: the first column and row past the box.
func (b Box) BottomRight() Position {
	return NewPosition(b.TopLeft.X+b.Width, b.TopLeft.Y+b.Height)
}

func (b Box) Contains(p Position) bool {
	br := b.BottomRight()
	return p.X >= b.TopLeft.X && p.X < br.X && p.Y >= b.TopLeft.Y && p.Y < br.Y
}

func (b Box) ToString() string {
	return fmt.Sprintf("{TopLeft: %s, Width: %d, Height: %d}", b.TopLeft.ToString(), b.Width, b.Height)
}
