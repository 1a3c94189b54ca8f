package shape

import (
	"encoding/json"
)

// Int accepts Go integer kinds and json.Number holding an integer literal. Everything
// else, bools and floats included, is a TypeKind error.
func Int(name string, v interface{}) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case json.Number:
		i, err := v.Int64()
		if err == nil {
			return int(i), nil
		}
	}
	return 0, errorf(TypeKind, name, "%s must be an integer", name)
}

func PositiveInt(name string, v interface{}) (int, error) {
	i, err := Int(name, v)
	if err != nil {
		return 0, err
	}
	return i, checkPositive(name, i)
}

func NonNegativeInt(name string, v interface{}) (int, error) {
	i, err := Int(name, v)
	if err != nil {
		return 0, err
	}
	return i, checkNonNegative(name, i)
}

func checkPositive(name string, v int) error {
	if v <= 0 {
		return errorf(ValueKind, name, "%s must be > 0", name)
	}
	return nil
}

func checkNonNegative(name string, v int) error {
	if v < 0 {
		return errorf(ValueKind, name, "%s must be >= 0", name)
	}
	return nil
}
