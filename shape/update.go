package shape

import "fmt"

// Field names a single assignable attribute in a bulk update.
type Field int

const (
	FieldID Field = iota
	FieldWidth
	FieldHeight
	FieldSize
	FieldX
	FieldY
)

func (f Field) String() string {
	switch f {
	case FieldID:
		return "id"
	case FieldWidth:
		return "width"
	case FieldHeight:
		return "height"
	case FieldSize:
		return "size"
	case FieldX:
		return "x"
	case FieldY:
		return "y"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Assignment is one keyword style update.
type Assignment struct {
	Field Field
	Value interface{}
}

func Set(f Field, v interface{}) Assignment {
	return Assignment{Field: f, Value: v}
}

var (
	rectangleFields = []Field{FieldID, FieldWidth, FieldHeight, FieldX, FieldY}
	squareFields    = []Field{FieldID, FieldSize, FieldX, FieldY}
)

// assign validates v exactly as the matching setter would and stores it. Size writes
// both dimensions together.
func (f *frame) assign(field Field, v interface{}) error {
	switch field {
	case FieldID:
		id, err := Int(field.String(), v)
		if err != nil {
			return err
		}
		f.id = id
	case FieldWidth:
		w, err := PositiveInt(field.String(), v)
		if err != nil {
			return err
		}
		f.dim.Width = w
	case FieldHeight:
		h, err := PositiveInt(field.String(), v)
		if err != nil {
			return err
		}
		f.dim.Height = h
	case FieldSize:
		s, err := PositiveInt(field.String(), v)
		if err != nil {
			return err
		}
		f.dim.Width = s
		f.dim.Height = s
	case FieldX:
		x, err := NonNegativeInt(field.String(), v)
		if err != nil {
			return err
		}
		f.pos.X = x
	case FieldY:
		y, err := NonNegativeInt(field.String(), v)
		if err != nil {
			return err
		}
		f.pos.Y = y
	default:
		return errorf(ValueKind, field.String(), "unknown field %v", field)
	}
	return nil
}

// positional maps args onto order and applies them to a copy of f, which is returned only
// when every value is valid.
func (f frame) positional(order []Field, args []interface{}) (frame, error) {
	if len(args) > len(order) {
		return f, errorf(ValueKind, "", "update accepts at most %d values, got %d", len(order), len(args))
	}
	for i, v := range args {
		if err := f.assign(order[i], v); err != nil {
			return f, err
		}
	}
	return f, nil
}
