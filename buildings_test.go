package isotown

import "testing"

// --- Bilinear quad mapping ---

func TestBilinearCorners(t *testing.T) {
	g1 := Vec2{0, 10}
	g2 := Vec2{8, 14}
	r1 := Vec2{0, 0}
	r2 := Vec2{8, 4}

	tests := []struct {
		name string
		u, v float64
		want Vec2
	}{
		{"ground left", 0, 0, g1},
		{"ground right", 1, 0, g2},
		{"roof left", 0, 1, r1},
		{"roof right", 1, 1, r2},
		{"center", 0.5, 0.5, Vec2{4, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bilinear(g1, g2, r1, r2, tt.u, tt.v); got != tt.want {
				t.Errorf("bilinear(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

// --- Window pattern ---

func TestWindowLitPattern(t *testing.T) {
	// Deterministic: the same indices always give the same state.
	for wall := 0; wall < 4; wall++ {
		for floor := 1; floor < 5; floor++ {
			for win := 0; win < 3; win++ {
				want := (wall*7+floor*3+win)%3 != 0
				if got := windowLit(wall, floor, win); got != want {
					t.Fatalf("windowLit(%d, %d, %d) = %v, want %v", wall, floor, win, got, want)
				}
			}
		}
	}
}

// --- Wall shading ---

func TestWallToneSelection(t *testing.T) {
	tones := wallTones{lit: 58, shadow: 46, roof: 72}

	tests := []struct {
		name   string
		dx, dy float64
		want   float64
	}{
		// Normal (-dy, dx) dotted with the top-left light (-0.7071, -0.7071).
		{"edge running east", 10, 0, tones.shadow},  // normal (0, 10)
		{"edge running west", -10, 0, tones.lit},    // normal (0, -10)
		{"edge running south", 0, 10, tones.lit},    // normal (-10, 0)
		{"edge running north", 0, -10, tones.shadow}, // normal (10, 0)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tones.wallTone(tt.dx, tt.dy); got != tt.want {
				t.Errorf("wallTone(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestBuildingTonesDeterministic(t *testing.T) {
	b := &Building{Center: Vec2{123.4, 567.8}, HeightMeters: 90}
	a := buildingTones(b)
	c := buildingTones(b)
	if a != c {
		t.Fatal("tones must be deterministic per building")
	}
	if a.shadow >= a.lit || a.roof <= a.lit {
		t.Errorf("tone ordering wrong: %+v", a)
	}
}

func TestTallerBuildingsReadDarker(t *testing.T) {
	// Same center (same jitter), different surveyed heights.
	low := buildingTones(&Building{Center: Vec2{10, 10}, HeightMeters: 10})
	high := buildingTones(&Building{Center: Vec2{10, 10}, HeightMeters: 150})
	if high.lit >= low.lit {
		t.Errorf("tall lit tone %v should be darker than short %v", high.lit, low.lit)
	}
}

// --- Color helpers ---

func TestHexParsing(t *testing.T) {
	c := Hex("#FF0080")
	if !approxEq(c.R, 1, 1e-9) || !approxEq(c.G, 0, 1e-9) || !approxEq(c.B, 128.0/255, 1e-9) {
		t.Errorf("Hex(#FF0080) = %+v", c)
	}
	if c.A != 1 {
		t.Error("hex colors are opaque")
	}

	fallback := Hex("not-a-color")
	if fallback != (Color{0.533, 0.533, 0.533, 1}) {
		t.Errorf("malformed hex = %+v, want gray fallback", fallback)
	}
}

func TestShadeClamps(t *testing.T) {
	c := shade(Color{0.95, 0.5, 0.02, 1}, 10)
	if c.R != 1 {
		t.Errorf("R = %v, want clamped to 1", c.R)
	}
	if !approxEq(c.G, 0.6, 1e-9) {
		t.Errorf("G = %v, want 0.6", c.G)
	}

	d := shade(Color{0.05, 0.5, 0.5, 1}, -10)
	if d.R != 0 {
		t.Errorf("R = %v, want clamped to 0", d.R)
	}
}

// --- Geometry helpers ---

func TestPolygonArea(t *testing.T) {
	square := []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if got := polygonArea(square); got != 100 {
		t.Errorf("area = %v, want 100", got)
	}
	// Winding direction must not matter.
	reversed := []Vec2{{0, 10}, {10, 10}, {10, 0}, {0, 0}}
	if got := polygonArea(reversed); got != 100 {
		t.Errorf("reversed area = %v, want 100", got)
	}
}

func TestBoundsOfCoversBothRings(t *testing.T) {
	ground := []Vec2{{0, 10}, {10, 10}, {10, 20}}
	roof := []Vec2{{0, 0}, {10, 0}, {10, 10}}
	b := boundsOf(ground, roof)
	want := Rect{X: 0, Y: 0, Width: 10, Height: 20}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
}
