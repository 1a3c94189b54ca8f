package shape

import (
	"fmt"
)

// Rectangle is an axis-aligned rectangle with a positive extent at a non-negative offset.
// Every mutation is validated and a rejected one leaves the rectangle unchanged.
type Rectangle struct {
	frame
}

var _ Shape = &Rectangle{}

func NewRectangle(width, height int, opts *Opts) (*Rectangle, error) {
	f, err := newFrame(width, height, opts)
	if err != nil {
		return nil, err
	}
	return &Rectangle{frame: f}, nil
}

func (r *Rectangle) GetType() string {
	return RECTANGLE_TYPE
}

func (r *Rectangle) SetWidth(v int) error {
	if err := checkPositive("width", v); err != nil {
		return err
	}
	r.dim.Width = v
	return nil
}

func (r *Rectangle) SetHeight(v int) error {
	if err := checkPositive("height", v); err != nil {
		return err
	}
	r.dim.Height = v
	return nil
}

// Update assigns args in the order id, width, height, x, y. Fewer values leave the
// trailing fields untouched. Nothing is committed unless every value is valid.
func (r *Rectangle) Update(args ...interface{}) error {
	next, err := r.frame.positional(rectangleFields, args)
	if err != nil {
		return err
	}
	r.frame = next
	return nil
}

func (r *Rectangle) Snapshot() Snapshot {
	return Snapshot{
		"id":     r.id,
		"width":  r.dim.Width,
		"height": r.dim.Height,
		"x":      r.pos.X,
		"y":      r.pos.Y,
	}
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("[%s] (%d) %s - %s", RECTANGLE_TYPE, r.id, r.pos.ToString(), r.dim.ToString())
}
