package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/diff"

	"oss.terrastruct.com/shapes/lib/go2"
	"oss.terrastruct.com/shapes/lib/ident"
	"oss.terrastruct.com/shapes/shape"
)

func TestNewSquare(t *testing.T) {
	t.Parallel()

	g := ident.NewSequential()
	s, err := shape.NewSquare(4, &shape.Opts{X: 1, Y: 1, Generator: g})
	assert.NoError(t, err)
	assert.Equal(t, shape.Snapshot{"id": 1, "size": 4, "x": 1, "y": 1}, s.Snapshot())
	assert.Equal(t, 16, s.Area())
	assert.Equal(t, 16, s.Perimeter())
	assert.Equal(t, s.Width(), s.Height())
	diff.AssertStringEq(t, "\n ####\n ####\n ####\n ####\n", s.Render(nil))

	_, err = shape.NewSquare(0, nil)
	assert.EqualError(t, err, "size must be > 0")
	assert.True(t, shape.IsKind(err, shape.ValueKind))

	_, err = shape.NewSquare(2, &shape.Opts{X: -1})
	assert.EqualError(t, err, "x must be >= 0")
}

func TestSetSize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		size   int
		exp    int
		expErr string
	}{
		{name: "grow", size: 9, exp: 9},
		{name: "shrink", size: 1, exp: 1},
		{name: "zero", size: 0, exp: 5, expErr: "size must be > 0"},
		{name: "negative", size: -4, exp: 5, expErr: "size must be > 0"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := shape.NewSquare(5, &shape.Opts{ID: go2.Pointer(1)})
			assert.NoError(t, err)

			err = s.SetSize(tc.size)
			if tc.expErr != "" {
				assert.EqualError(t, err, tc.expErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.exp, s.Size())
			assert.Equal(t, tc.exp, s.Width())
			assert.Equal(t, tc.exp, s.Height())
		})
	}
}

func TestSquareUpdate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []interface{}
		assigns []shape.Assignment

		exp     shape.Snapshot
		expErr  string
		expKind shape.ErrorKind
	}{
		{
			name: "nothing",
			exp:  shape.Snapshot{"id": 1, "size": 2, "x": 3, "y": 4},
		},
		{
			name: "positional_partial",
			args: []interface{}{10, 5},
			exp:  shape.Snapshot{"id": 10, "size": 5, "x": 3, "y": 4},
		},
		{
			name: "positional_full",
			args: []interface{}{10, 5, 0, 1},
			exp:  shape.Snapshot{"id": 10, "size": 5, "x": 0, "y": 1},
		},
		{
			name:    "keyword",
			assigns: []shape.Assignment{shape.Set(shape.FieldY, 0), shape.Set(shape.FieldSize, 7)},
			exp:     shape.Snapshot{"id": 1, "size": 7, "x": 3, "y": 0},
		},
		{
			name:    "keyword_id",
			assigns: []shape.Assignment{shape.Set(shape.FieldID, 42)},
			exp:     shape.Snapshot{"id": 42, "size": 2, "x": 3, "y": 4},
		},
		{
			name:    "positional_suppresses_keyword",
			args:    []interface{}{10},
			assigns: []shape.Assignment{shape.Set(shape.FieldSize, 7), shape.Set(shape.FieldX, -1)},
			exp:     shape.Snapshot{"id": 10, "size": 2, "x": 3, "y": 4},
		},
		{
			name:    "keyword_width",
			assigns: []shape.Assignment{shape.Set(shape.FieldWidth, 7)},
			expErr:  "square has no assignable field width",
			expKind: shape.ValueKind,
		},
		{
			name:    "keyword_atomic",
			assigns: []shape.Assignment{shape.Set(shape.FieldSize, 7), shape.Set(shape.FieldX, "3")},
			expErr:  "x must be an integer",
			expKind: shape.TypeKind,
		},
		{
			name:    "positional_size_invalid",
			args:    []interface{}{10, 0},
			expErr:  "size must be > 0",
			expKind: shape.ValueKind,
		},
		{
			name:    "too_many",
			args:    []interface{}{1, 2, 3, 4, 5},
			expErr:  "update accepts at most 4 values, got 5",
			expKind: shape.ValueKind,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := shape.NewSquare(2, &shape.Opts{X: 3, Y: 4, ID: go2.Pointer(1)})
			assert.NoError(t, err)
			before := s.Snapshot()

			err = s.Update(tc.args, tc.assigns...)
			if tc.expErr != "" {
				assert.EqualError(t, err, tc.expErr)
				assert.True(t, shape.IsKind(err, tc.expKind))
				assert.Equal(t, before, s.Snapshot())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.exp, s.Snapshot())
			assert.Equal(t, s.Width(), s.Height())
		})
	}
}
