package shapecli

import (
	"fmt"
	"path/filepath"
	"strings"

	"oss.terrastruct.com/shapes/lib/version"
	"oss.terrastruct.com/shapes/lib/xmain"
	"oss.terrastruct.com/shapes/shape"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--dir=.] new rectangle width height [x y] [--id=n]
  %[1]s [--dir=.] new square size [x y] [--id=n]
  %[1]s [--dir=.] list|render|info type
  %[1]s [--dir=.] update type id values...
  %[1]s [--dir=.] export type [file|-]
  %[1]s [--dir=.] import type file|-

%[1]s keeps shapes in <Type>.json files inside --dir. Types are %[3]s.

update assigns values positionally in the order id, width, height, x, y for rectangles
and id, size, x, y for squares. Squares also accept field=value pairs (size=3 x=1).
If any positional value is given the field=value pairs are ignored.

Pass -- before values that start with a minus sign.

Flags:
%[4]s

Subcommands:
  %[1]s new - Create a shape and append it to its file
  %[1]s list type - Print the description of every stored shape
  %[1]s render type - Draw every stored shape
  %[1]s info type - Print the area and perimeter of every stored shape
  %[1]s update type id values... - Bulk update the stored shape with that id
  %[1]s export type [file] - Write the stored shapes as JSON, to stdout by default
  %[1]s import type file - Replace the stored shapes with the ones in a JSON file
  %[1]s version - Print the version
`, filepath.Base(ms.Name), version.Version, strings.Join(shape.Types, ", "), ms.Opts.Help())
}
