package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/parabox"
)

// actorGlyph marks the actor.
const actorGlyph = '◆'

// cellAspect is the number of terminal columns per row so squares look
// square.
const cellAspect = 2

// Layout places the root box on the screen. Size is the box height in rows;
// it is drawn cellAspect times as wide.
type Layout struct {
	X, Y int
	Size int
}

// styleFor returns a style whose background is the swatch's color.
func styleFor(sw parabox.Swatch) tcell.Style {
	return tcell.StyleDefault.Background(tcellColor(sw.Color()))
}

func tcellColor(c parabox.Color) tcell.Color {
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func fill(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawBox draws b with its top-left at (x, y), size rows tall. Children are
// drawn into their slots by recursing over w.Flatten(b); recursion stops when
// a slot is smaller than one row.
func DrawBox(s tcell.Screen, w *parabox.World, themes parabox.ThemeTable, b parabox.Box, x, y, size int) error {
	sw, err := themes.Lookup(w.Kind(b))
	if err != nil {
		return fmt.Errorf("draw box %d: %w", b, err)
	}
	fill(s, x, y, size*cellAspect, size, styleFor(sw))

	grid := w.Grid()
	slot := size / grid.Extent
	if slot < 1 {
		return nil
	}
	inset := 0
	if slot >= 3 {
		inset = 1
	}
	backdrop := styleFor(parabox.Swatch{})
	for index, child := range w.Flatten(b) {
		cell, err := grid.Decode(index)
		if err != nil {
			return fmt.Errorf("draw box %d: %w", b, err)
		}
		sx := x + cell.Col*slot*cellAspect
		sy := y + cell.Row*slot
		if inset > 0 {
			fill(s, sx, sy, slot*cellAspect, slot, backdrop)
		}
		if err := DrawBox(s, w, themes, child, sx+inset*cellAspect, sy+inset, slot-2*inset); err != nil {
			return err
		}
	}
	return nil
}

// actorCell maps the actor's pixel position inside the root box to a screen
// cell.
func actorCell(l Layout, pos parabox.Vec2) (int, int) {
	scale := float64(l.Size) / parabox.BoxSize
	col := l.X + int(pos.X*scale)*cellAspect
	row := l.Y + int(pos.Y*scale)
	return col, row
}

// DrawFrame draws the whole game: the box tree, the actor and a status line
// under the box.
func DrawFrame(s tcell.Screen, g *parabox.Game, l Layout) error {
	s.Clear()
	if err := DrawBox(s, g.World(), g.Themes(), g.Root(), l.X, l.Y, l.Size); err != nil {
		return err
	}

	snap := g.Snapshot()
	col, row := actorCell(l, snap.Position)
	_, _, under, _ := s.GetContent(col, row)
	_, bg, _ := under.Decompose()
	s.SetContent(col, row, actorGlyph, nil,
		tcell.StyleDefault.Foreground(tcellColor(parabox.SwatchRed3.Color())).Background(bg))

	status := fmt.Sprintf("frame %d  cell (%d,%d)  ←↑↓→ move  q quit",
		snap.Frame, snap.Cell.Col, snap.Cell.Row)
	putString(s, l.X, l.Y+l.Size+1, status, tcell.StyleDefault)
	return nil
}

// putString writes str starting at (x, y), advancing by each rune's display
// width. It returns the column after the last rune.
func putString(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
