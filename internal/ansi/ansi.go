// Package ansi provides ANSI escape sequences and highlight palette presets.
// The colour values are derived from pkt.systems/pslog/ansi (MIT License).
package ansi

// Base ANSI escape codes.
const (
	Reset       = "\x1b[0m"
	Faint       = "\x1b[90m"
	Green       = "\x1b[0;32m"
	BrightGreen = "\x1b[1;32m"
)

// Palette holds the sequences used when printing a factoring grid.
type Palette struct {
	// Resolved highlights perfect-square leaves.
	Resolved string
	// Value is applied to every other non-blank cell. Usually empty.
	Value string
}

// PaletteDefault is plain green on resolved leaves.
var PaletteDefault = Palette{Resolved: Green}

// PaletteBold uses bright green resolved leaves on faint values.
var PaletteBold = Palette{Resolved: BrightGreen, Value: Faint}

// PaletteOutrunElectric delivers neon pinks and blues.
var PaletteOutrunElectric = Palette{Resolved: "\x1b[38;5;201m", Value: "\x1b[38;5;81m"}

// PaletteDoomIosvkem mirrors doom-emacs' iosvkem theme with seafoam greens.
var PaletteDoomIosvkem = Palette{Resolved: "\x1b[38;5;114m", Value: "\x1b[38;5;216m"}

// PaletteDoomGruvbox echoes doom-gruvbox colours with earthy ambers.
var PaletteDoomGruvbox = Palette{Resolved: "\x1b[38;5;107m", Value: "\x1b[38;5;178m"}

// PaletteDoomDracula mirrors doom-dracula with purple and cyan accents.
var PaletteDoomDracula = Palette{Resolved: "\x1b[38;5;117m", Value: "\x1b[38;5;141m"}

// PaletteDoomNord channels doom-nord with cool glacier blues.
var PaletteDoomNord = Palette{Resolved: "\x1b[38;5;117m", Value: "\x1b[38;5;152m"}

// PaletteTokyoNight draws on Tokyo Night's neon blues.
var PaletteTokyoNight = Palette{Resolved: "\x1b[38;5;111m", Value: "\x1b[38;5;110m"}

// PaletteSolarizedNightfall adapts Solarized Night with teal highlights.
var PaletteSolarizedNightfall = Palette{Resolved: "\x1b[38;5;36m", Value: "\x1b[38;5;86m"}

// PaletteCatppuccinMocha recreates Catppuccin Mocha pastels.
var PaletteCatppuccinMocha = Palette{Resolved: "\x1b[38;5;150m", Value: "\x1b[38;5;183m"}

// PaletteMonokaiVibrant supplies minty Monokai greens.
var PaletteMonokaiVibrant = Palette{Resolved: "\x1b[38;5;121m"}

// PaletteSynthwave84 channels glowing synthwave cyans.
var PaletteSynthwave84 = Palette{Resolved: "\x1b[38;5;81m", Value: "\x1b[38;5;51m"}
