package shapecli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/shapes/lib/go2"
	"oss.terrastruct.com/shapes/lib/ident"
	"oss.terrastruct.com/shapes/lib/xmain"
	"oss.terrastruct.com/shapes/shape"
	"oss.terrastruct.com/shapes/shapestore"
)

func newCmd(ctx context.Context, ms *xmain.State, opts *options, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to create shape")

	if len(args) == 0 {
		return xmain.UsageErrorf("new must be passed a shape type")
	}
	typ, err := parseType(args[0])
	if err != nil {
		return err
	}
	args = args[1:]

	shapes, err := opts.store.LoadAll(ctx, typ)
	if err != nil {
		return err
	}
	// ids continue after the largest one on disk so repeated runs do not collide
	last := 0
	for _, sh := range shapes {
		last = go2.Max(last, sh.ID())
	}
	g := ident.NewSequentialFrom(last)

	var sh shape.Shape
	switch typ {
	case shape.RECTANGLE_TYPE:
		if len(args) != 2 && len(args) != 4 {
			return xmain.UsageErrorf("new rectangle takes width height [x y]")
		}
		sh, err = newRectangle(opts, g, args)
	case shape.SQUARE_TYPE:
		if len(args) != 1 && len(args) != 3 {
			return xmain.UsageErrorf("new square takes size [x y]")
		}
		sh, err = newSquare(opts, g, args)
	}
	if err != nil {
		return err
	}

	err = opts.store.SaveAll(ctx, typ, append(shapes, sh))
	if err != nil {
		return err
	}
	ms.Log.Success.Printf("saved %s to %s", sh, opts.store.Path(typ))
	fmt.Fprintln(ms.Stdout, sh)
	return nil
}

func newRectangle(opts *options, g ident.Generator, args []string) (shape.Shape, error) {
	width, err := shape.PositiveInt("width", parseValue(args[0]))
	if err != nil {
		return nil, err
	}
	height, err := shape.PositiveInt("height", parseValue(args[1]))
	if err != nil {
		return nil, err
	}
	so, err := shapeOpts(opts, g, args[2:])
	if err != nil {
		return nil, err
	}
	r, err := shape.NewRectangle(width, height, so)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newSquare(opts *options, g ident.Generator, args []string) (shape.Shape, error) {
	size, err := shape.PositiveInt("size", parseValue(args[0]))
	if err != nil {
		return nil, err
	}
	so, err := shapeOpts(opts, g, args[1:])
	if err != nil {
		return nil, err
	}
	sq, err := shape.NewSquare(size, so)
	if err != nil {
		return nil, err
	}
	return sq, nil
}

func shapeOpts(opts *options, g ident.Generator, pos []string) (*shape.Opts, error) {
	so := &shape.Opts{
		ID:        opts.id,
		Generator: g,
	}
	if len(pos) == 0 {
		return so, nil
	}
	x, err := shape.NonNegativeInt("x", parseValue(pos[0]))
	if err != nil {
		return nil, err
	}
	y, err := shape.NonNegativeInt("y", parseValue(pos[1]))
	if err != nil {
		return nil, err
	}
	so.X = x
	so.Y = y
	return so, nil
}

func listCmd(ctx context.Context, ms *xmain.State, opts *options, args []string) error {
	shapes, err := loadArg(ctx, opts, "list", args)
	if err != nil {
		return err
	}
	for _, sh := range shapes {
		fmt.Fprintln(ms.Stdout, sh)
	}
	return nil
}

func renderCmd(ctx context.Context, ms *xmain.State, opts *options, args []string) error {
	shapes, err := loadArg(ctx, opts, "render", args)
	if err != nil {
		return err
	}
	for _, sh := range shapes {
		fmt.Fprint(ms.Stdout, sh.Render(opts.render))
	}
	return nil
}

func infoCmd(ctx context.Context, ms *xmain.State, opts *options, args []string) error {
	shapes, err := loadArg(ctx, opts, "info", args)
	if err != nil {
		return err
	}
	for _, sh := range shapes {
		fmt.Fprintf(ms.Stdout, "%s: area %d, perimeter %d\n", sh, sh.Area(), sh.Perimeter())
	}
	return nil
}

func loadArg(ctx context.Context, opts *options, cmd string, args []string) ([]shape.Shape, error) {
	if len(args) != 1 {
		return nil, xmain.UsageErrorf("%s must be passed exactly one shape type", cmd)
	}
	typ, err := parseType(args[0])
	if err != nil {
		return nil, err
	}
	return opts.store.LoadAll(ctx, typ)
}

func updateCmd(ctx context.Context, ms *xmain.State, opts *options, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to update shape")

	if len(args) < 2 {
		return xmain.UsageErrorf("update must be passed a shape type and an id")
	}
	typ, err := parseType(args[0])
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return xmain.UsageErrorf("id must be an integer, got %q", args[1])
	}

	var positional []interface{}
	var assigns []shape.Assignment
	for _, arg := range args[2:] {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			positional = append(positional, parseValue(arg))
			continue
		}
		f, ok := fieldNames[k]
		if !ok {
			return xmain.UsageErrorf("unknown field %q", k)
		}
		assigns = append(assigns, shape.Set(f, parseValue(v)))
	}

	shapes, err := opts.store.LoadAll(ctx, typ)
	if err != nil {
		return err
	}
	sh, ok := shapestore.Find(shapes, id)
	if !ok {
		return xmain.ExitErrorf(1, "no %s with id %d in %s", typ, id, opts.store.Path(typ))
	}

	switch sh := sh.(type) {
	case *shape.Rectangle:
		if len(assigns) > 0 {
			return xmain.UsageErrorf("rectangles only accept positional values")
		}
		err = sh.Update(positional...)
	case *shape.Square:
		if len(positional) > 0 && len(assigns) > 0 {
			ms.Log.Warn.Printf("field=value pairs are ignored when positional values are given")
		}
		err = sh.Update(positional, assigns...)
	}
	if err != nil {
		return err
	}

	err = opts.store.SaveAll(ctx, typ, shapes)
	if err != nil {
		return err
	}
	fmt.Fprintln(ms.Stdout, sh)
	return nil
}

var fieldNames = map[string]shape.Field{
	"id":     shape.FieldID,
	"width":  shape.FieldWidth,
	"height": shape.FieldHeight,
	"size":   shape.FieldSize,
	"x":      shape.FieldX,
	"y":      shape.FieldY,
}

// parseValue hands integers to the validators as int and anything else as the raw
// string, which they reject as not an integer.
func parseValue(s string) interface{} {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return s
}

func exportCmd(ctx context.Context, ms *xmain.State, opts *options, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to export shapes")

	if len(args) != 1 && len(args) != 2 {
		return xmain.UsageErrorf("export takes type [file]")
	}
	typ, err := parseType(args[0])
	if err != nil {
		return err
	}
	out := "-"
	if len(args) == 2 {
		out = args[1]
	}

	shapes, err := opts.store.LoadAll(ctx, typ)
	if err != nil {
		return err
	}
	text, err := shape.ToJSON(shape.Snapshots(shapes))
	if err != nil {
		return err
	}
	err = ms.WritePath(out, []byte(text+"\n"))
	if err != nil {
		return err
	}
	if out != "-" {
		ms.Log.Success.Printf("exported %d %s shapes to %s", len(shapes), typ, ms.AbsPath(out))
	}
	return nil
}

// importCmd replaces the stored shapes of a type with the ones in a JSON file. Ids missing
// from the file continue after the largest stored or imported id.
func importCmd(ctx context.Context, ms *xmain.State, opts *options, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to import shapes")

	if len(args) != 2 {
		return xmain.UsageErrorf("import takes type file")
	}
	typ, err := parseType(args[0])
	if err != nil {
		return err
	}

	b, err := ms.ReadPath(args[1])
	if err != nil {
		return err
	}
	snaps, err := shape.FromJSON(string(b))
	if err != nil {
		return err
	}

	last := 0
	for _, snap := range snaps {
		if id, err := shape.Int("id", snap["id"]); err == nil {
			last = go2.Max(last, id)
		}
	}
	g := ident.NewSequentialFrom(last)

	shapes := make([]shape.Shape, 0, len(snaps))
	for i, snap := range snaps {
		sh, err := shape.FromSnapshot(typ, snap, g)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		shapes = append(shapes, sh)
	}

	err = opts.store.SaveAll(ctx, typ, shapes)
	if err != nil {
		return err
	}
	ms.Log.Success.Printf("imported %d %s shapes into %s", len(shapes), typ, opts.store.Path(typ))
	return nil
}
