package shape

import (
	"oss.terrastruct.com/shapes/lib/geo"
	"oss.terrastruct.com/shapes/lib/ident"
	"oss.terrastruct.com/shapes/lib/textcanvas"
)

const (
	RECTANGLE_TYPE = "Rectangle"
	SQUARE_TYPE    = "Square"
)

// Types lists every concrete shape kind in a stable order.
var Types = []string{RECTANGLE_TYPE, SQUARE_TYPE}

type Shape interface {
	GetType() string
	ID() int

	Width() int
	Height() int
	X() int
	Y() int
	GetBox() geo.Box

	Area() int
	Perimeter() int
	Render(opts *RenderOpts) string

	Snapshot() Snapshot
	String() string
}

// Opts are the optional construction arguments. A nil *Opts places the shape at 0/0 with
// an identity drawn from ident.Default.
type Opts struct {
	X  int
	Y  int
	ID *int

	Generator ident.Generator
}

type RenderOpts struct {
	// Charset defaults to ASCII, which fills with '#'.
	Charset textcanvas.Charset
}

// frame is the state shared by every shape: identity, extent and offset.
type frame struct {
	id  int
	dim geo.Dimensions
	pos geo.Position
}

func newFrame(width, height int, opts *Opts) (frame, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if err := checkPositive("width", width); err != nil {
		return frame{}, err
	}
	if err := checkPositive("height", height); err != nil {
		return frame{}, err
	}
	if err := checkNonNegative("x", opts.X); err != nil {
		return frame{}, err
	}
	if err := checkNonNegative("y", opts.Y); err != nil {
		return frame{}, err
	}
	return frame{
		id:  ident.Resolve(opts.Generator, opts.ID),
		dim: geo.NewDimensions(width, height),
		pos: geo.NewPosition(opts.X, opts.Y),
	}, nil
}

func (f *frame) ID() int {
	return f.id
}

func (f *frame) Width() int {
	return f.dim.Width
}

func (f *frame) Height() int {
	return f.dim.Height
}

func (f *frame) X() int {
	return f.pos.X
}

func (f *frame) Y() int {
	return f.pos.Y
}

func (f *frame) SetX(v int) error {
	if err := checkNonNegative("x", v); err != nil {
		return err
	}
	f.pos.X = v
	return nil
}

func (f *frame) SetY(v int) error {
	if err := checkNonNegative("y", v); err != nil {
		return err
	}
	f.pos.Y = v
	return nil
}

func (f *frame) GetBox() geo.Box {
	return geo.NewBox(f.pos, f.dim)
}

func (f *frame) Area() int {
	return f.dim.Area()
}

func (f *frame) Perimeter() int {
	return f.dim.Perimeter()
}

// Render returns Y blank lines followed by Height lines of X blanks and Width fill
// glyphs, each line newline terminated.
func (f *frame) Render(opts *RenderOpts) string {
	cs := textcanvas.NewCharset(textcanvas.ASCII)
	if opts != nil && opts.Charset != nil {
		cs = opts.Charset
	}
	b := f.GetBox()
	c := textcanvas.ForBox(b, cs)
	c.FillBox(b, cs.Fill())
	return c.String()
}

// BiggerOrEqual returns a if its area is at least b's, otherwise b.
func BiggerOrEqual(a, b Shape) Shape {
	if a.Area() >= b.Area() {
		return a
	}
	return b
}
