package shape

import (
	"fmt"
)

// Square is a Rectangle whose width and height are a single size. There are no separate
// width or height setters, so the two sides are never observed apart.
type Square struct {
	frame
}

var _ Shape = &Square{}

func NewSquare(size int, opts *Opts) (*Square, error) {
	if err := checkPositive("size", size); err != nil {
		return nil, err
	}
	f, err := newFrame(size, size, opts)
	if err != nil {
		return nil, err
	}
	return &Square{frame: f}, nil
}

func (s *Square) GetType() string {
	return SQUARE_TYPE
}

func (s *Square) Size() int {
	return s.dim.Width
}

func (s *Square) SetSize(v int) error {
	if err := checkPositive("size", v); err != nil {
		return err
	}
	s.dim.Width = v
	s.dim.Height = v
	return nil
}

// Update has two mutually exclusive forms. With positional args they are assigned in
// the order id, size, x, y. Without them each assignment is applied by field.
//
// When args is non-empty the assignments are ignored entirely for that call, so callers
// should not mix the two.
func (s *Square) Update(args []interface{}, assigns ...Assignment) error {
	if len(args) > 0 {
		next, err := s.frame.positional(squareFields, args)
		if err != nil {
			return err
		}
		s.frame = next
		return nil
	}

	next := s.frame
	for _, a := range assigns {
		switch a.Field {
		case FieldID, FieldSize, FieldX, FieldY:
		default:
			return errorf(ValueKind, a.Field.String(), "square has no assignable field %v", a.Field)
		}
		if err := next.assign(a.Field, a.Value); err != nil {
			return err
		}
	}
	s.frame = next
	return nil
}

func (s *Square) Snapshot() Snapshot {
	return Snapshot{
		"id":   s.id,
		"size": s.dim.Width,
		"x":    s.pos.X,
		"y":    s.pos.Y,
	}
}

func (s *Square) String() string {
	return fmt.Sprintf("[%s] (%d) %s - %d", SQUARE_TYPE, s.id, s.pos.ToString(), s.dim.Width)
}
