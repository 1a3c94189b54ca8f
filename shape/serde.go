package shape

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"oss.terrastruct.com/shapes/lib/geo"
	"oss.terrastruct.com/shapes/lib/ident"
)

// Snapshot is a detached copy of a shape's fields keyed by their serialized names.
type Snapshot map[string]interface{}

// Snapshots collects the Snapshot of each shape in order.
func Snapshots(shapes []Shape) []Snapshot {
	snaps := make([]Snapshot, 0, len(shapes))
	for _, s := range shapes {
		snaps = append(snaps, s.Snapshot())
	}
	return snaps
}

// ToJSON encodes snaps as a JSON array. Empty or nil input encodes as "[]".
func ToJSON(snaps []Snapshot) (string, error) {
	if len(snaps) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(snaps)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FromJSON decodes a JSON array of objects. Blank text decodes to an empty slice.
// Numbers holding integers come back as int so that a round trip through ToJSON
// compares equal.
func FromJSON(text string) ([]Snapshot, error) {
	if strings.TrimSpace(text) == "" {
		return []Snapshot{}, nil
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var raw []map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, errorf(ParseKind, "", "failed to decode shapes: %v", err)
	}
	if raw == nil {
		return nil, errorf(ParseKind, "", "failed to decode shapes: expected a JSON array")
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, errorf(ParseKind, "", "failed to decode shapes: unexpected data after array")
	}

	snaps := make([]Snapshot, 0, len(raw))
	for i, m := range raw {
		if m == nil {
			return nil, errorf(ParseKind, "", "failed to decode shapes: element %d is not an object", i)
		}
		snap := make(Snapshot, len(m))
		for k, v := range m {
			snap[k] = normalizeNumber(v)
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

func normalizeNumber(v interface{}) interface{} {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return v
}

// FromSnapshot builds a shape of the given type from snap, as if constructing the
// smallest such shape at 0/0 and then assigning every present field. Missing fields keep
// those defaults, a missing id is drawn from g (nil means ident.Default) and unknown keys
// are ignored.
func FromSnapshot(typ string, snap Snapshot, g ident.Generator) (Shape, error) {
	var order []Field
	switch typ {
	case RECTANGLE_TYPE:
		order = rectangleFields
	case SQUARE_TYPE:
		order = squareFields
	default:
		return nil, errorf(ValueKind, "", "unknown shape type %q", typ)
	}

	f := frame{dim: geo.NewDimensions(1, 1)}
	hasID := false
	for _, field := range order {
		v, ok := snap[field.String()]
		if !ok {
			continue
		}
		if err := f.assign(field, v); err != nil {
			return nil, err
		}
		if field == FieldID {
			hasID = true
		}
	}
	if !hasID {
		f.id = ident.Resolve(g, nil)
	}

	if typ == SQUARE_TYPE {
		return &Square{frame: f}, nil
	}
	return &Rectangle{frame: f}, nil
}
