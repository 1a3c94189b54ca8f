package shape

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// TypeKind is a value that is not an integer where one is required.
	TypeKind ErrorKind = iota + 1
	// ValueKind is an integer outside the range its field allows.
	ValueKind
	// ParseKind is stored text that does not decode into an array of objects.
	ParseKind
)

func (k ErrorKind) String() string {
	switch k {
	case TypeKind:
		return "TypeKind"
	case ValueKind:
		return "ValueKind"
	case ParseKind:
		return "ParseKind"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Error struct {
	Kind    ErrorKind `json:"kind"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"errmsg"`
}

func (e Error) Error() string {
	return e.Message
}

func errorf(kind ErrorKind, field, format string, v ...interface{}) Error {
	return Error{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, v...),
	}
}

// IsKind reports whether any error in err's chain is an Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var serr Error
	return errors.As(err, &serr) && serr.Kind == kind
}
