package isotown

import "math"

// lightDir is the single global light direction shared by every shading
// decision, so the whole scene reads as one consistent sun. Classic top-left.
var lightDir = Vec2{X: -0.7071, Y: -0.7071}

// Palette holds the fixed 16-bit-style color set. The zero value is not
// usable; start from DefaultPalette.
type Palette struct {
	Sky Color

	Road     Color
	RoadEdge Color
	RoadDash Color
	Crossing Color
	Stripe   Color

	WindowLit    Color
	WindowDim    Color
	WindowGround Color
	FloorLine    Color

	RailBed Color

	ParkDark  Color
	ParkLight Color

	BuildingLabel Color
	RoadLabel     Color
	ScrambleLabel Color
	ParkLabel     Color
	StationLabel  Color
}

// DefaultPalette returns the stock palette.
func DefaultPalette() Palette {
	return Palette{
		Sky: Hex("#1a1028"),

		Road:     Hex("#2d2d40"),
		RoadEdge: Hex("#3d3d50"),
		RoadDash: Hex("#444455"),
		Crossing: Hex("#222233"),
		Stripe:   Hex("#aaaaaa"),

		WindowLit:    Hex("#FFEE88"),
		WindowDim:    Hex("#665544"),
		WindowGround: Hex("#88DDFF"),
		FloorLine:    Hex("#111111"),

		RailBed: Hex("#111111"),

		ParkDark:  Hex("#1E4D1E"),
		ParkLight: Hex("#2D6B2D"),

		BuildingLabel: Hex("#dddddd"),
		RoadLabel:     Hex("#777788"),
		ScrambleLabel: Hex("#999999"),
		ParkLabel:     Hex("#66AA44"),
		StationLabel:  Hex("#ffffff"),
	}
}

// kioskColors cycles the bodies of roadside kiosks.
var kioskColors = [4]Color{
	Hex("#CC2222"), Hex("#2244CC"), Hex("#22AA44"), Hex("#DD8822"),
}

// pedestrianColors cycles the 1px bodies scattered on the scramble area.
var pedestrianColors = [8]Color{
	Hex("#DDDDDD"), Hex("#AAAAAA"), Hex("#997766"), Hex("#334455"),
	Hex("#CC8866"), Hex("#667788"), Hex("#BBAA99"), Hex("#445566"),
}

// pedestrianHead is the skin tone pixel above each pedestrian body.
var pedestrianHead = Hex("#EEDDCC")

// treeCanopyDark, treeCanopyLight, treeTrunk draw the pixel trees along
// pedestrian ways.
var (
	treeCanopyDark  = Hex("#336633")
	treeCanopyLight = Hex("#448844")
	treeTrunk       = Hex("#554433")

	parkTreeDark  = Hex("#226622")
	parkTreeLight = Hex("#338833")
)

// wallTones is the two-tone-plus-roof shading set for one building. All
// tones are grayscale lightness values for a mono-chrome concrete look;
// hue never varies, only lightness derived from height.
type wallTones struct {
	lit    float64 // lightness of sun-facing walls
	shadow float64 // lightness of walls facing away
	roof   float64
}

// buildingTones derives a building's shading set. Taller buildings read
// slightly darker (concrete/steel); a deterministic per-building jitter from
// the center position keeps neighbors from merging visually.
func buildingTones(b *Building) wallTones {
	seed := int(math.Abs(math.Floor(b.Center.X*73+b.Center.Y*137))) % 360
	hf := b.HeightMeters / 150
	if hf > 1 {
		hf = 1
	}
	base := 58 - hf*14 + float64(seed%8)
	return wallTones{lit: base, shadow: base - 12, roof: base + 14}
}

// wallTone picks the lit or shadow tone for a wall whose ground edge runs
// along (dx, dy). The outward normal is the edge perpendicular; a positive
// dot product with the global light direction means the wall faces the sun.
func (t wallTones) wallTone(dx, dy float64) float64 {
	nx, ny := -dy, dx
	if nx*lightDir.X+ny*lightDir.Y > 0 {
		return t.lit
	}
	return t.shadow
}
