package term

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/parabox"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	ss.SetSize(80, 24)
	return ss
}

func newTestGame(t *testing.T) *parabox.Game {
	t.Helper()
	g, err := parabox.DefaultLevel().Build()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func bgAt(s tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := s.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawBoxNested(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()
	g := newTestGame(t)

	if err := DrawBox(ss, g.World(), g.Themes(), g.Root(), 2, 1, 16); err != nil {
		t.Fatal(err)
	}
	red := tcellColor(parabox.SwatchRed2.Color())
	blue := tcellColor(parabox.SwatchBlue2.Color())
	slot := tcellColor(parabox.Swatch{}.Color())

	// The child sits in slot (3,3): 4 rows and 8 columns starting at (26,13),
	// drawn one row and two columns in.
	tests := []struct {
		name string
		x, y int
		want tcell.Color
	}{
		{"root top-left", 2, 1, red},
		{"root right edge", 33, 1, red},
		{"slot border", 26, 13, slot},
		{"root bottom-right", 33, 16, slot},
		{"child", 28, 14, blue},
		{"child far corner", 31, 15, blue},
	}
	for _, tt := range tests {
		if got := bgAt(ss, tt.x, tt.y); got != tt.want {
			t.Errorf("%s: bg at (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
	if got := bgAt(ss, 34, 1); got == red {
		t.Error("nothing should be drawn right of the box")
	}
}

func TestDrawBoxUnknownKind(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()

	w := parabox.NewWorld(parabox.FaceGrid)
	root := w.Create(parabox.KindRed)
	if err := w.Add(root, 0, w.Create(parabox.Kind(7))); err != nil {
		t.Fatal(err)
	}
	err := DrawBox(ss, w, parabox.DefaultThemes, root, 0, 0, 16)
	if !errors.Is(err, parabox.ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestDrawFrame(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()
	g := newTestGame(t)
	l := Layout{X: 2, Y: 1, Size: 16}

	if err := g.Step(0.01); err != nil {
		t.Fatal(err)
	}
	if err := DrawFrame(ss, g, l); err != nil {
		t.Fatal(err)
	}
	// Cell (0,0) has its center at 10px, one row in at this size.
	r, _, _, _ := ss.GetContent(4, 2)
	if r != actorGlyph {
		t.Errorf("actor glyph = %q, want %q", r, actorGlyph)
	}
	if got := bgAt(ss, 4, 2); got != tcellColor(parabox.SwatchRed2.Color()) {
		t.Errorf("actor should keep the box background, got %v", got)
	}
	if status := rowText(ss, l.Y+l.Size+1); !strings.Contains(status, "frame 1  cell (0,0)") {
		t.Errorf("status = %q", status)
	}
}

func TestPutStringWideRunes(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()
	end := putString(ss, 0, 0, "a世b", tcell.StyleDefault)
	if end != 4 {
		t.Errorf("end = %d, want 4", end)
	}
	if r, _, _, _ := ss.GetContent(3, 0); r != 'b' {
		t.Errorf("rune after wide rune = %q, want 'b'", r)
	}
}

func TestKeyPollerHoldWindow(t *testing.T) {
	now := time.Unix(1000, 0)
	p := &KeyPoller{Hold: 200 * time.Millisecond, now: func() time.Time { return now }}

	if p.Pressed(parabox.DirUp) {
		t.Fatal("nothing pressed yet")
	}
	p.Press(parabox.DirUp, now)
	if !p.Pressed(parabox.DirUp) || p.Pressed(parabox.DirDown) {
		t.Fatal("only up should be pressed")
	}

	now = now.Add(150 * time.Millisecond)
	if !p.Pressed(parabox.DirUp) {
		t.Error("up should still be held inside the window")
	}
	// An older event never shortens the hold.
	p.Press(parabox.DirUp, now.Add(-time.Second))

	now = now.Add(100 * time.Millisecond)
	if p.Pressed(parabox.DirUp) {
		t.Error("up should be released after the window")
	}

	p.Press(parabox.DirLeft, now)
	p.Reset()
	if p.Pressed(parabox.DirLeft) {
		t.Error("Reset should release everything")
	}
}

func TestKeyPollerMapping(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want parabox.Direction
		ok   bool
	}{
		{tcell.KeyUp, 0, parabox.DirUp, true},
		{tcell.KeyRight, 0, parabox.DirRight, true},
		{tcell.KeyRune, 's', parabox.DirDown, true},
		{tcell.KeyRune, 'h', parabox.DirLeft, true},
		{tcell.KeyRune, 'x', 0, false},
		{tcell.KeyEnter, 0, 0, false},
	}
	for _, tt := range tests {
		d, ok := directionForKey(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
		if ok != tt.ok || (ok && d != tt.want) {
			t.Errorf("key %v %q = %v, %v; want %v, %v", tt.key, tt.r, d, ok, tt.want, tt.ok)
		}
	}

	p := NewKeyPoller()
	if !p.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)) {
		t.Fatal("down arrow should be handled")
	}
	if !p.Pressed(parabox.DirDown) {
		t.Error("down should be pressed right after its key event")
	}
}

func TestHostQuitKeys(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()
	h := NewHost(ss, newTestGame(t), Options{})

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if err := h.handleEvent(ev); !errors.Is(err, errQuit) {
			t.Errorf("%v: err = %v, want errQuit", ev.Name(), err)
		}
	}
	if err := h.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)); err != nil {
		t.Fatal(err)
	}
	if !h.Keys().Pressed(parabox.DirLeft) {
		t.Error("left should be pressed")
	}
}

func TestHostHaltOnError(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()
	g := newTestGame(t)
	boom := errors.New("boom")
	g.Clock().OnFrame("broken", func(parabox.FrameSample) error { return boom })

	h := NewHost(ss, g, Options{})
	if err := h.frame(0.01); err != nil {
		t.Fatalf("without HaltOnError the frame should succeed: %v", err)
	}
	h.opts.HaltOnError = true
	if err := h.frame(0.01); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestHostRunStopsOnContext(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()
	g := newTestGame(t)
	h := NewHost(ss, g, Options{TPS: 100})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := h.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if g.Clock().Frame() < 2 {
		t.Errorf("Frame = %d, want several frames", g.Clock().Frame())
	}
}

func TestHostRunQuits(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()
	h := NewHost(ss, newTestGame(t), Options{})

	ss.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not quit on 'q'")
	}
}
