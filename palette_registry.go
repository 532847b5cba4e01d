package radical

import (
	"fmt"
	"sort"
	"strings"

	"pkt.systems/radical/internal/ansi"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName:    ansi.PaletteDefault,
	"green":               ansi.PaletteDefault,
	"bold":                ansi.PaletteBold,
	"catppuccin-mocha":    ansi.PaletteCatppuccinMocha,
	"doom-dracula":        ansi.PaletteDoomDracula,
	"doom-gruvbox":        ansi.PaletteDoomGruvbox,
	"doom-iosvkem":        ansi.PaletteDoomIosvkem,
	"doom-nord":           ansi.PaletteDoomNord,
	"monokai-vibrant":     ansi.PaletteMonokaiVibrant,
	"outrun-electric":     ansi.PaletteOutrunElectric,
	"solarized-nightfall": ansi.PaletteSolarizedNightfall,
	"synthwave84":         ansi.PaletteSynthwave84,
	"tokyo-night":         ansi.PaletteTokyoNight,
}

// ColorPalette holds the escape sequences written around grid cells.
type ColorPalette struct {
	Resolved string
	Value    string
	// Reset follows every cell, highlighted or not.
	Reset string
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// ResolvePalette returns the ColorPalette for the given options, defaulting
// to paletteDefaultName when opts.Palette is empty. The palette name "none"
// and opts.NoColor disable highlighting; the name is still validated.
func ResolvePalette(opts *Options) (ColorPalette, error) {
	name := paletteDefaultName
	if opts != nil && strings.TrimSpace(opts.Palette) != "" {
		name = strings.ToLower(strings.TrimSpace(opts.Palette))
	}

	if name == paletteNoneName {
		return NoColorPalette(), nil
	}

	ap, ok := paletteRegistry[name]
	if !ok {
		return ColorPalette{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}

	if opts != nil && opts.NoColor {
		return NoColorPalette(), nil
	}
	return ColorPalette{Resolved: ap.Resolved, Value: ap.Value, Reset: ansi.Reset}, nil
}

// NoColorPalette disables highlighting. Cells are still followed by the reset
// sequence so the terminal state is the same either way.
func NoColorPalette() ColorPalette {
	return ColorPalette{Reset: ansi.Reset}
}
