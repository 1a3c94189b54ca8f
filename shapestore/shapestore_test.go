package shapestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"oss.terrastruct.com/diff"

	"oss.terrastruct.com/shapes/lib/go2"
	"oss.terrastruct.com/shapes/lib/ident"
	"oss.terrastruct.com/shapes/lib/log"
	"oss.terrastruct.com/shapes/shape"
	"oss.terrastruct.com/shapes/shapestore"
)

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	st := shapestore.New(t.TempDir())

	r1, err := shape.NewRectangle(10, 7, &shape.Opts{X: 2, Y: 8, ID: go2.Pointer(1)})
	assert.NoError(t, err)
	r2, err := shape.NewRectangle(2, 4, &shape.Opts{ID: go2.Pointer(2)})
	assert.NoError(t, err)

	err = st.SaveAll(ctx, shape.RECTANGLE_TYPE, []shape.Shape{r1, r2})
	assert.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(st.Dir, "Rectangle.json"))
	assert.NoError(t, err)
	diff.AssertStringEq(t, `[{"height":7,"id":1,"width":10,"x":2,"y":8},{"height":4,"id":2,"width":2,"x":0,"y":0}]`, string(b))

	loaded, err := st.LoadAll(ctx, shape.RECTANGLE_TYPE)
	assert.NoError(t, err)
	if assert.Len(t, loaded, 2) {
		assert.Equal(t, r1.Snapshot(), loaded[0].Snapshot())
		assert.Equal(t, r2.Snapshot(), loaded[1].Snapshot())
		assert.NotSame(t, r1, loaded[0])
	}
}

func TestSaveLoadSquares(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	st := shapestore.New(t.TempDir())

	s, err := shape.NewSquare(4, &shape.Opts{X: 1, Y: 1, ID: go2.Pointer(5)})
	assert.NoError(t, err)
	assert.NoError(t, st.SaveAll(ctx, shape.SQUARE_TYPE, []shape.Shape{s}))

	loaded, err := st.LoadAll(ctx, shape.SQUARE_TYPE)
	assert.NoError(t, err)
	if assert.Len(t, loaded, 1) {
		assert.Equal(t, shape.SQUARE_TYPE, loaded[0].GetType())
		diff.AssertStringEq(t, "[Square] (5) 1/1 - 4", loaded[0].String())
	}

	// squares and rectangles live in separate files
	rects, err := st.LoadAll(ctx, shape.RECTANGLE_TYPE)
	assert.NoError(t, err)
	assert.Empty(t, rects)
}

func TestSaveEmpty(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	st := shapestore.New(t.TempDir())

	assert.NoError(t, st.SaveAll(ctx, shape.SQUARE_TYPE, nil))
	b, err := os.ReadFile(st.Path(shape.SQUARE_TYPE))
	assert.NoError(t, err)
	diff.AssertStringEq(t, "[]", string(b))

	loaded, err := st.LoadAll(ctx, shape.SQUARE_TYPE)
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	st := shapestore.New(filepath.Join(t.TempDir(), "nested"))

	loaded, err := st.LoadAll(ctx, shape.RECTANGLE_TYPE)
	assert.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		text    string
		expKind shape.ErrorKind
	}{
		{name: "malformed", text: `[{"id": `, expKind: shape.ParseKind},
		{name: "not_array", text: `{"id": 1}`, expKind: shape.ParseKind},
		{name: "bad_type", text: `[{"id": 1, "width": "wide"}]`, expKind: shape.TypeKind},
		{name: "bad_value", text: `[{"id": 1, "width": 3}, {"id": 2, "height": 0}]`, expKind: shape.ValueKind},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := log.WithTB(context.Background(), t, nil)
			st := shapestore.New(t.TempDir())
			err := os.WriteFile(st.Path(shape.RECTANGLE_TYPE), []byte(tc.text), 0644)
			assert.NoError(t, err)

			loaded, err := st.LoadAll(ctx, shape.RECTANGLE_TYPE)
			assert.Nil(t, loaded)
			assert.True(t, shape.IsKind(err, tc.expKind), "got %v", err)
			assert.Contains(t, err.Error(), "failed to load Rectangle shapes")
		})
	}
}

func TestSaveErrors(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	st := shapestore.New(t.TempDir())

	s, err := shape.NewSquare(1, nil)
	assert.NoError(t, err)

	err = st.SaveAll(ctx, shape.RECTANGLE_TYPE, []shape.Shape{s})
	assert.True(t, shape.IsKind(err, shape.ValueKind), "got %v", err)

	err = st.SaveAll(ctx, "Circle", nil)
	assert.True(t, shape.IsKind(err, shape.ValueKind), "got %v", err)

	_, err = os.Stat(st.Path(shape.RECTANGLE_TYPE))
	assert.True(t, os.IsNotExist(err))
}

func TestLoadAssignsMissingIDs(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)
	st := shapestore.New(t.TempDir())
	st.Generator = ident.NewSequential()
	err := os.WriteFile(st.Path(shape.SQUARE_TYPE), []byte(`[{"size": 2}, {"size": 3, "id": 40}, {"size": 4}]`), 0644)
	assert.NoError(t, err)

	loaded, err := st.LoadAll(ctx, shape.SQUARE_TYPE)
	assert.NoError(t, err)
	if assert.Len(t, loaded, 3) {
		assert.Equal(t, 1, loaded[0].ID())
		assert.Equal(t, 40, loaded[1].ID())
		assert.Equal(t, 2, loaded[2].ID())
	}

	sh, ok := shapestore.Find(loaded, 40)
	assert.True(t, ok)
	assert.Equal(t, 9, sh.Area())
	_, ok = shapestore.Find(loaded, 3)
	assert.False(t, ok)
}
