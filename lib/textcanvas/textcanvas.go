// Package textcanvas draws filled boxes onto a grid of character cells.
package textcanvas

import (
	"strings"

	"oss.terrastruct.com/shapes/lib/geo"
)

type Canvas struct {
	grid  [][]string
	blank string
}

func New(width, height int, cs Charset) *Canvas {
	grid := make([][]string, height)
	for i := range grid {
		grid[i] = make([]string, width)
		for j := range grid[i] {
			grid[i][j] = cs.Blank()
		}
	}
	return &Canvas{grid: grid, blank: cs.Blank()}
}

// ForBox returns a canvas just big enough to hold b with its offset.
func ForBox(b geo.Box, cs Charset) *Canvas {
	br := b.BottomRight()
	return New(br.X, br.Y, cs)
}

func (c *Canvas) Set(x, y int, char string) {
	if c.IsInBounds(x, y) {
		c.grid[y][x] = char
	}
}

func (c *Canvas) Get(x, y int) string {
	if c.IsInBounds(x, y) {
		return c.grid[y][x]
	}
	return ""
}

func (c *Canvas) IsInBounds(x, y int) bool {
	return y >= 0 && y < len(c.grid) && x >= 0 && x < len(c.grid[y])
}

func (c *Canvas) Width() int {
	if len(c.grid) > 0 {
		return len(c.grid[0])
	}
	return 0
}

func (c *Canvas) Height() int {
	return len(c.grid)
}

// FillBox sets every cell covered by b to glyph.
func (c *Canvas) FillBox(b geo.Box, glyph string) {
	br := b.BottomRight()
	for y := b.TopLeft.Y; y < br.Y; y++ {
		for x := b.TopLeft.X; x < br.X; x++ {
			c.Set(x, y, glyph)
		}
	}
}

// String joins the rows with a trailing newline each. Trailing blanks are trimmed so an
// empty row prints as an empty line. Leading rows and columns are kept.
func (c *Canvas) String() string {
	var sb strings.Builder
	for _, row := range c.grid {
		end := len(row)
		for end > 0 && row[end-1] == c.blank {
			end--
		}
		sb.WriteString(strings.Join(row[:end], ""))
		sb.WriteByte('\n')
	}
	return sb.String()
}
