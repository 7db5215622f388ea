package parabox

import (
	"fmt"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Kind selects the visual theme of a box.
type Kind uint8

const (
	KindRed  Kind = 1
	KindBlue Kind = 2
)

// Swatch addresses one entry of the palette by hue row and luminance column.
type Swatch struct {
	Hue, Lum int
}

// Palette swatches used by the world.
var (
	SwatchSand2 = Swatch{Hue: 3, Lum: 1}
	SwatchBlue2 = Swatch{Hue: 6, Lum: 1}
	SwatchRed2  = Swatch{Hue: 4, Lum: 2}
	SwatchRed3  = Swatch{Hue: 4, Lum: 3}
)

// paletteHues holds the hue angle of each palette row. Row 0 is greyscale.
var paletteHues = [8]float64{0, 20, 90, 45, 0, 130, 215, 280}

const (
	paletteSaturation = 0.55
	paletteLumBase    = 0.22
	paletteLumStep    = 0.16
	paletteLumCount   = 4
)

// Valid reports whether s addresses an existing palette entry.
func (s Swatch) Valid() bool {
	return s.Hue >= 0 && s.Hue < len(paletteHues) && s.Lum >= 0 && s.Lum < paletteLumCount
}

// Color converts the swatch to an opaque RGBA color. Out-of-range swatches
// are clamped onto the palette edge.
func (s Swatch) Color() Color {
	hue := min(max(s.Hue, 0), len(paletteHues)-1)
	lum := min(max(s.Lum, 0), paletteLumCount-1)
	sat := paletteSaturation
	if hue == 0 {
		sat = 0
	}
	c := colorful.Hsl(paletteHues[hue], sat, paletteLumBase+paletteLumStep*float64(lum)).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// ThemeTable maps every box kind in use to its swatch.
type ThemeTable map[Kind]Swatch

// DefaultThemes is the theme table of the built-in level.
var DefaultThemes = ThemeTable{
	KindRed:  SwatchRed2,
	KindBlue: SwatchBlue2,
}

// Lookup returns the swatch for k. Kinds missing from the table fail with
// ErrUnknownKind; there is no fallback swatch.
func (t ThemeTable) Lookup(k Kind) (Swatch, error) {
	s, ok := t[k]
	if !ok {
		return Swatch{}, fmt.Errorf("kind %d: %w", k, ErrUnknownKind)
	}
	return s, nil
}

// Check verifies that every kind used in w has a valid swatch.
func (t ThemeTable) Check(w *World) error {
	for _, k := range w.Kinds() {
		s, err := t.Lookup(k)
		if err != nil {
			return err
		}
		if !s.Valid() {
			return fmt.Errorf("kind %d: swatch %v outside palette: %w", k, s, ErrUnknownKind)
		}
	}
	return nil
}

// Kinds returns the kinds in the table in ascending order.
func (t ThemeTable) Kinds() []Kind {
	kinds := make([]Kind, 0, len(t))
	for k := range t {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
