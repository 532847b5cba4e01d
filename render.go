package radical

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Longest returns the display width of the widest cell in g.
func Longest(g Grid) int {
	longest := 0
	for _, row := range g {
		for _, c := range row {
			if w := runewidth.StringWidth(c.Text); w > longest {
				longest = w
			}
		}
	}
	return longest
}

// Render writes g one row per line with every cell padded to the widest cell.
// Resolved cells are wrapped in pal.Resolved, other non-blank cells in
// pal.Value, and pal.Reset follows every cell. g is not modified.
func Render(w io.Writer, g Grid, pal ColorPalette) error {
	longest := Longest(g)
	buf := acquireLineBuf()
	defer releaseLineBuf(buf)

	for _, row := range g {
		buf.Reset()
		for _, c := range row {
			switch {
			case c.Resolved:
				buf.WriteString(pal.Resolved)
			case c.Text != "":
				buf.WriteString(pal.Value)
			}
			buf.WriteString(c.Text)
			if pad := longest - runewidth.StringWidth(c.Text); pad > 0 {
				buf.WriteString(strings.Repeat(" ", pad))
			}
			buf.WriteString(pal.Reset)
		}
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write grid row: %w", err)
		}
	}
	return nil
}

// Fprint writes the result line followed by its factoring grid unless
// opts.NoTree is set. Nil opts use DefaultOptions.
func Fprint(w io.Writer, res Result, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions
	}
	pal, err := ResolvePalette(opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, res.String()+"\n"); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if opts.NoTree {
		return nil
	}
	return Render(w, BuildGrid(res.Tree), pal)
}
