// Package shapestore persists shapes as flat JSON files, one file per shape type named
// <Type>.json, inside a directory.
package shapestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/shapes/lib/go2"
	"oss.terrastruct.com/shapes/lib/ident"
	"oss.terrastruct.com/shapes/lib/log"
	"oss.terrastruct.com/shapes/shape"
)

type Store struct {
	Dir string

	// Generator numbers reconstructed shapes whose snapshot lacks an id. Nil means
	// ident.Default.
	Generator ident.Generator
}

// New returns a Store rooted at dir. An empty dir is the working directory.
func New(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{Dir: dir}
}

// Path is where shapes of typ are kept.
func (s *Store) Path(typ string) string {
	return filepath.Join(s.Dir, typ+".json")
}

// SaveAll replaces the file for typ with the snapshots of shapes in order. Every shape
// must be of typ. An empty slice writes "[]".
func (s *Store) SaveAll(ctx context.Context, typ string, shapes []shape.Shape) (err error) {
	defer xdefer.Errorf(&err, "failed to save %s shapes", typ)
	ctx = log.Named(ctx, "shapestore")

	if err := checkType(typ); err != nil {
		return err
	}
	for i, sh := range shapes {
		if sh.GetType() != typ {
			return shape.Error{
				Kind:    shape.ValueKind,
				Message: fmt.Sprintf("shape %d is a %s, not a %s", i, sh.GetType(), typ),
			}
		}
	}

	text, err := shape.ToJSON(shape.Snapshots(shapes))
	if err != nil {
		return err
	}

	p := s.Path(typ)
	err = os.MkdirAll(s.Dir, 0755)
	if err != nil {
		return err
	}
	err = os.WriteFile(p, []byte(text), 0644)
	if err != nil {
		return err
	}
	log.Debug(ctx, "saved shapes", slog.F("path", p), slog.F("count", len(shapes)))
	return nil
}

// LoadAll reconstructs every shape stored for typ in file order. A missing file loads as
// no shapes.
func (s *Store) LoadAll(ctx context.Context, typ string) (_ []shape.Shape, err error) {
	defer xdefer.Errorf(&err, "failed to load %s shapes", typ)
	ctx = log.Named(ctx, "shapestore")

	if err := checkType(typ); err != nil {
		return nil, err
	}

	p := s.Path(typ)
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(ctx, "no shapes stored yet", slog.F("path", p))
		return []shape.Shape{}, nil
	}
	if err != nil {
		return nil, err
	}

	snaps, err := shape.FromJSON(string(b))
	if err != nil {
		return nil, err
	}

	shapes := make([]shape.Shape, 0, len(snaps))
	for i, snap := range snaps {
		sh, err := shape.FromSnapshot(typ, snap, s.Generator)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		shapes = append(shapes, sh)
	}
	log.Debug(ctx, "loaded shapes", slog.F("path", p), slog.F("count", len(shapes)))
	return shapes, nil
}

// Find returns the shape of typ with the given id. The first match in file order wins
// since explicit ids may collide.
func Find(shapes []shape.Shape, id int) (shape.Shape, bool) {
	for _, sh := range shapes {
		if sh.ID() == id {
			return sh, true
		}
	}
	return nil, false
}

func checkType(typ string) error {
	if go2.Contains(shape.Types, typ) {
		return nil
	}
	return shape.Error{
		Kind:    shape.ValueKind,
		Message: fmt.Sprintf("unknown shape type %q", typ),
	}
}
