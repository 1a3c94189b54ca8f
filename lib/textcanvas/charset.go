package textcanvas

import "fmt"

// Charset defines the glyphs used when drawing onto a Canvas.
type Charset interface {
	Fill() string
	Blank() string
}

type CharsetType int

const (
	ASCII CharsetType = iota
	Unicode
)

// NewCharset returns the glyph set for t. Unknown types fall back to ASCII.
func NewCharset(t CharsetType) Charset {
	switch t {
	case Unicode:
		return unicodeSet{}
	default:
		return asciiSet{}
	}
}

// ParseMode maps the user facing mode names to a CharsetType.
func ParseMode(mode string) (CharsetType, error) {
	switch mode {
	case "", "standard":
		return ASCII, nil
	case "extended":
		return Unicode, nil
	}
	return ASCII, fmt.Errorf("unknown ascii mode %q: expected standard or extended", mode)
}

type asciiSet struct{}

func (asciiSet) Fill() string  { return "#" }
func (asciiSet) Blank() string { return " " }

type unicodeSet struct{}

func (unicodeSet) Fill() string  { return "█" }
func (unicodeSet) Blank() string { return " " }

// WithFill overrides the fill glyph of cs.
func WithFill(cs Charset, fill string) Charset {
	if fill == "" {
		return cs
	}
	return customFill{Charset: cs, fill: fill}
}

type customFill struct {
	Charset
	fill string
}

func (c customFill) Fill() string { return c.fill }
