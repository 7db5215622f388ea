package parabox

import (
	"image/color"
	"math/rand/v2"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestActorStaysInBounds(t *testing.T) {
	a, err := NewActor(DefaultActorConfig())
	if err != nil {
		t.Fatal(err)
	}
	bounds := a.Bounds()
	if bounds != (Rect{10, 10, 140, 140}) {
		t.Fatalf("Bounds = %v", bounds)
	}

	// Tweens run in float32; allow for rounding at the edges.
	loose := Rect{bounds.X - 0.01, bounds.Y - 0.01, bounds.Width + 0.02, bounds.Height + 0.02}
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 2000; i++ {
		in := DirectionalInput{
			Up:    float64(rng.IntN(3)),
			Down:  float64(rng.IntN(3)),
			Left:  float64(rng.IntN(3)),
			Right: float64(rng.IntN(3)),
		}
		a.SetDirectionalInput(in)
		a.Advance(rng.Float64()*0.2, 0)
		p := a.Position()
		if !loose.Contains(p.X, p.Y) {
			t.Fatalf("frame %d: position %v outside %v", i, p, bounds)
		}
	}
}

func TestColorToRGBA(t *testing.T) {
	if got := ColorWhite.toRGBA(); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("white = %v", got)
	}
	// Premultiplied and clamped.
	got := Color{R: 2, G: 0.5, B: -1, A: 0.5}.toRGBA()
	if got != (color.RGBA{R: 255, G: 63, B: 0, A: 127}) {
		t.Errorf("toRGBA = %v", got)
	}
}

func TestDirectionNames(t *testing.T) {
	for d := DirUp; d <= DirRight; d++ {
		back, ok := ParseDirection(d.String())
		if !ok || back != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), back, ok)
		}
	}
	if Direction(9).String() != "unknown" {
		t.Error("out-of-range direction should be unknown")
	}
	if _, ok := ParseDirection("Up"); ok {
		t.Error("names are lower-case")
	}
}

func BenchmarkRectContains(b *testing.B) {
	r := Rect{10, 20, 100, 50}
	b.ReportAllocs()
	for b.Loop() {
		_ = r.Contains(50, 40)
	}
}
