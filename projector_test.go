package isotown

import (
	"math"
	"testing"
)

func approxEq(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// --- Projection ---

func TestProjectKnownPoints(t *testing.T) {
	proj := Projector{PixelScale: 3}
	cam := Camera{Zoom: 1}

	tests := []struct {
		name   string
		pt     Vec2
		wantX  float64
		wantY  float64
	}{
		{"east axis", Vec2{10, 0}, 2.357, 1.179},
		{"south axis", Vec2{0, 10}, -2.357, 1.179},
		{"diagonal", Vec2{10, 10}, 0, 2.357},
		{"origin", Vec2{0, 0}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := proj.Project(tt.pt, cam)
			if !approxEq(got.X, tt.wantX, 0.001) || !approxEq(got.Y, tt.wantY, 0.001) {
				t.Errorf("Project(%v) = (%.4f, %.4f), want (%.4f, %.4f)",
					tt.pt, got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestProjectPanAndZoom(t *testing.T) {
	proj := Projector{PixelScale: 3}
	cam := Camera{PanX: 30, PanY: 60, Zoom: 2}

	got := proj.Project(Vec2{10, 0}, cam)
	wantX := (10*isoBasisX*2 + 30) / 3
	wantY := (10*isoBasisY*2 + 60) / 3
	if got.X != wantX || got.Y != wantY {
		t.Errorf("Project = (%v, %v), want (%v, %v)", got.X, got.Y, wantX, wantY)
	}
}

func TestProjectDeterministic(t *testing.T) {
	proj := Projector{PixelScale: 3}
	cam := Camera{PanX: 17.3, PanY: -4.2, Zoom: 1.3}
	pt := Vec2{123.4, 567.8}

	a := proj.Project(pt, cam)
	b := proj.Project(pt, cam)
	if a != b {
		t.Fatalf("projection not bit-identical: %v vs %v", a, b)
	}
}

func TestHeightOffset(t *testing.T) {
	proj := Projector{PixelScale: 3}
	got := proj.HeightOffset(30, Camera{Zoom: 1.3})
	want := 30 * 1.3 / 3.0
	if !approxEq(got, want, 1e-12) {
		t.Errorf("HeightOffset = %v, want %v", got, want)
	}
}

func TestPanForCentersPoint(t *testing.T) {
	proj := Projector{PixelScale: 3}
	center := Vec2{100, 250}
	panX, panY := proj.PanFor(center, 1.3, 1280, 800)

	cam := Camera{PanX: panX, PanY: panY, Zoom: 1.3}
	got := proj.Project(center, cam)
	if !approxEq(got.X, 1280/2.0/3, 1e-9) || !approxEq(got.Y, 800/2.0/3, 1e-9) {
		t.Errorf("projected center = (%v, %v), want working-surface midpoint", got.X, got.Y)
	}
}

// --- Zoom clamping ---

func TestClampZoom(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below min", 0.1, ZoomMin},
		{"at min", 0.3, 0.3},
		{"mid range", 1.3, 1.3},
		{"at max", 5.0, 5.0},
		{"above max", 7.2, ZoomMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampZoom(tt.in); got != tt.want {
				t.Errorf("ClampZoom(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
