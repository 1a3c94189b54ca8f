package shapecli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/shapes/lib/env"
	"oss.terrastruct.com/shapes/lib/go2"
	"oss.terrastruct.com/shapes/lib/log"
	"oss.terrastruct.com/shapes/lib/textcanvas"
	"oss.terrastruct.com/shapes/lib/version"
	"oss.terrastruct.com/shapes/lib/xmain"
	"oss.terrastruct.com/shapes/shape"
	"oss.terrastruct.com/shapes/shapestore"
)

type options struct {
	store  *shapestore.Store
	render *shape.RenderOpts
	id     *int
}

func Run(ctx context.Context, ms *xmain.State) (err error) {
	ctx = log.WithDefault(ctx)

	dirFlag := ms.Opts.String("SHAPES_DIR", "dir", "D", env.Dir(), "directory that holds the <Type>.json files")
	fillFlag := ms.Opts.String("SHAPES_FILL", "fill", "", "", "glyph used to fill rendered shapes. Defaults to the ascii mode's fill")
	asciiModeFlag := ms.Opts.String("SHAPES_ASCII_MODE", "ascii-mode", "", "standard", "rendering mode. Options: 'standard' (#) or 'extended' (Unicode block)")
	idFlag, err := ms.Opts.Int64("", "id", "i", 0, "explicit id for new. When unset the next id is assigned")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
		ms.Env.Setenv("DEBUG", "1")
	}

	mode, err := textcanvas.ParseMode(*asciiModeFlag)
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}
	opts := &options{
		store: shapestore.New(*dirFlag),
		render: &shape.RenderOpts{
			Charset: textcanvas.WithFill(textcanvas.NewCharset(mode), *fillFlag),
		},
	}
	if ms.Opts.Flags.Changed("id") {
		opts.id = go2.Pointer(int(*idFlag))
	}
	ms.Log.Debug.Printf("using directory %s", opts.store.Dir)

	args := ms.Opts.Flags.Args()
	if len(args) == 0 {
		if *versionFlag {
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
		help(ms)
		return nil
	}

	switch args[0] {
	case "new":
		return newCmd(ctx, ms, opts, args[1:])
	case "list":
		return listCmd(ctx, ms, opts, args[1:])
	case "render":
		return renderCmd(ctx, ms, opts, args[1:])
	case "info":
		return infoCmd(ctx, ms, opts, args[1:])
	case "update":
		return updateCmd(ctx, ms, opts, args[1:])
	case "export":
		return exportCmd(ctx, ms, opts, args[1:])
	case "import":
		return importCmd(ctx, ms, opts, args[1:])
	case "version":
		if len(args) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}
	return xmain.UsageErrorf("unknown subcommand %q", args[0])
}

// parseType accepts type names in any case.
func parseType(s string) (string, error) {
	for _, t := range shape.Types {
		if strings.EqualFold(t, s) {
			return t, nil
		}
	}
	return "", xmain.UsageErrorf("unknown shape type %q. Expected one of %s", s, strings.Join(shape.Types, ", "))
}
