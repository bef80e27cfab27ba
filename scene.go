package isotown

// The scene data model is an immutable, pre-projected snapshot delivered once
// by the data-preparation pipeline. The renderer never parses raw geographic
// formats; it only consumes these records. At runtime the only mutable state
// is the Camera, the Selection, and the per-frame hit-test index.

// Usage is a building's coarse usage category.
type Usage string

const (
	UsageOffice        Usage = "office"
	UsageShop          Usage = "shop"
	UsageHotel         Usage = "hotel"
	UsageCommercial    Usage = "commercial"
	UsageHouse         Usage = "house"
	UsageApartment     Usage = "apartment"
	UsageShopHouse     Usage = "shop_house"
	UsageShopApartment Usage = "shop_apartment"
	UsageWorkshopHouse Usage = "workshop_house"
	UsageGovernment    Usage = "government"
	UsageSchool        Usage = "school"
	UsageTransport     Usage = "transport"
	UsageFactory       Usage = "factory"
	UsageUnknown       Usage = "unknown"
)

// usageLabels maps categories to bilingual display labels for the inspector.
var usageLabels = map[Usage]string{
	UsageOffice:        "業務施設 Office",
	UsageShop:          "商業施設 Shop",
	UsageHotel:         "宿泊施設 Hotel",
	UsageCommercial:    "商業系複合 Commercial",
	UsageHouse:         "住宅 House",
	UsageApartment:     "共同住宅 Apartment",
	UsageShopHouse:     "店舗併用住宅 Shop+House",
	UsageShopApartment: "店舗併用共同住宅 Shop+Apt",
	UsageWorkshopHouse: "作業所併用住宅 Workshop",
	UsageGovernment:    "官公庁 Government",
	UsageSchool:        "文教厚生 School",
	UsageTransport:     "運輸倉庫 Transport",
	UsageFactory:       "工場 Factory",
	UsageUnknown:       "不明 Unknown",
}

// ParseUsage maps a category string to a Usage, defaulting to UsageUnknown.
func ParseUsage(s string) Usage {
	u := Usage(s)
	if _, ok := usageLabels[u]; ok {
		return u
	}
	return UsageUnknown
}

// Label returns the bilingual display label for the category.
func (u Usage) Label() string {
	if l, ok := usageLabels[u]; ok {
		return l
	}
	return usageLabels[UsageUnknown]
}

// isShopLike reports whether the category gets a storefront ground floor.
func (u Usage) isShopLike() bool {
	switch u {
	case UsageShop, UsageCommercial, UsageShopHouse, UsageShopApartment:
		return true
	}
	return false
}

// RoadClass is the coarse road classification driving width defaults,
// centerline dashes, labels, and ambient decoration.
type RoadClass uint8

const (
	RoadOther RoadClass = iota
	RoadPrimary
	RoadSecondary
	RoadService
	RoadPedestrian
	RoadFootway
	RoadPath
	RoadLiving
)

// ParseRoadClass maps an upstream highway-type string to a RoadClass.
// Unrecognized types become RoadOther, never an error.
func ParseRoadClass(s string) RoadClass {
	switch s {
	case "primary", "trunk":
		return RoadPrimary
	case "secondary", "tertiary":
		return RoadSecondary
	case "service":
		return RoadService
	case "pedestrian":
		return RoadPedestrian
	case "footway":
		return RoadFootway
	case "path":
		return RoadPath
	case "living_street":
		return RoadLiving
	}
	return RoadOther
}

// RooftopKind selects the ornament glyph drawn on a hero building's roof.
type RooftopKind uint8

const (
	RooftopNone RooftopKind = iota
	RooftopAntenna
	RooftopHelipad
	RooftopScreen
	RooftopBillboard
	RooftopSign
)

// ParseRooftopKind maps an ornament string to its kind. Unknown strings
// resolve to RooftopNone.
func ParseRooftopKind(s string) RooftopKind {
	switch s {
	case "antenna":
		return RooftopAntenna
	case "helipad":
		return RooftopHelipad
	case "screen":
		return RooftopScreen
	case "billboard_top":
		return RooftopBillboard
	case "sign":
		return RooftopSign
	}
	return RooftopNone
}

// Billboard is a neon sign rectangle in wall-local UV space: u runs along
// the wall's ground edge, v from ground (0) to roof (1).
type Billboard struct {
	U0, V0, U1, V1 float64
	Color          Color
}

// Hero carries the extra decoration data of a designated landmark building.
type Hero struct {
	Billboards []Billboard
	Accent     Color
	Rooftop    RooftopKind
}

// Building is one footprint extruded to its surveyed height.
type Building struct {
	Name         string
	Footprint    []Vec2 // open ring, ≥3 points after admission
	Center       Vec2   // planar anchor for depth sorting and labels
	Height       float64
	HeightMeters float64
	Floors       int
	Usage        Usage
	Hero         *Hero // nil for ordinary buildings
}

// depthKey is the painter's-algorithm sort key: the isometric depth axis.
func (b *Building) depthKey() float64 {
	return b.Center.X + b.Center.Y
}

// Road is an ordered polyline with a drawing width.
type Road struct {
	Name   string
	Class  RoadClass
	Width  float64
	Points []Vec2
}

// RailSegment is one piece of a railway line. Several segments may share a
// line name; they are drawn independently, never merged.
type RailSegment struct {
	Line     string
	Operator string
	Color    Color
	Points   []Vec2
}

// Station is a deduplicated station marker. Deduplication happens upstream
// by (name, rounded position); the core does not re-deduplicate.
type Station struct {
	Name  string
	Line  string
	Color Color
	Pos   Vec2
}

// Park is a point feature whose marker size derives from √area.
type Park struct {
	Name string
	Area float64
	Pos  Vec2
}

// Scramble is the multi-directional crossing feature: a ground highlight
// polygon plus the marked pedestrian-lane polylines. A missing area ring
// disables crossing rendering entirely.
type Scramble struct {
	Area      []Vec2
	Crossings [][]Vec2
	Caption   string // optional label drawn at the area centroid
}

// GroundTile is one aerial imagery tile, affine-projected from its three
// anchor corners (the fourth corner is implied). Payload is the raw encoded
// image; decoding happens asynchronously and a tile whose decode never
// completes simply never contributes to the ground layer.
type GroundTile struct {
	TopLeft, TopRight, BottomLeft Vec2
	Payload                       []byte
}

// Scene is the complete immutable snapshot consumed by the renderer.
type Scene struct {
	Buildings []Building
	Roads     []Road
	Railways  []RailSegment
	Stations  []Station
	Parks     []Park
	Scramble  Scramble
	Tiles     []GroundTile
}

// Center returns the vertex-average center of all building footprints,
// used as the default camera anchor.
func (s *Scene) Center() Vec2 {
	var sum Vec2
	var n float64
	for i := range s.Buildings {
		for _, p := range s.Buildings[i].Footprint {
			sum.X += p.X
			sum.Y += p.Y
			n++
		}
	}
	if n == 0 {
		return Vec2{}
	}
	return Vec2{X: sum.X / n, Y: sum.Y / n}
}

// AdmissionReport counts the entities dropped or normalized during
// admission. Drops are degradations, never errors.
type AdmissionReport struct {
	DroppedBuildings int
	DroppedRoads     int
	DroppedRailways  int
	DroppedCrossings int
	DroppedTiles     int
	ClosedRings      int // footprints normalized from closed to open
	ScrambleDisabled bool
}

// Dropped returns the total number of dropped entities.
func (r AdmissionReport) Dropped() int {
	return r.DroppedBuildings + r.DroppedRoads + r.DroppedRailways +
		r.DroppedCrossings + r.DroppedTiles
}

// Admit applies the structural admission checks and defaults from the data
// contract: rings are normalized to open form, entities below structural
// minimums are dropped, and missing optional attributes resolve to their
// documented defaults. The input scene is not modified.
func Admit(in Scene) (Scene, AdmissionReport) {
	var out Scene
	var rep AdmissionReport

	for _, b := range in.Buildings {
		ring, closed := normalizeRing(b.Footprint)
		if closed {
			rep.ClosedRings++
		}
		if len(ring) < 3 || b.Height <= 0 {
			rep.DroppedBuildings++
			continue
		}
		b.Footprint = ring
		if b.Floors < 1 {
			b.Floors = 1
		}
		if b.Usage == "" {
			b.Usage = UsageUnknown
		}
		if (b.Center == Vec2{}) {
			b.Center = polygonCentroid(ring)
		}
		out.Buildings = append(out.Buildings, b)
	}

	for _, r := range in.Roads {
		if len(r.Points) < 2 || r.Width <= 0 {
			rep.DroppedRoads++
			continue
		}
		out.Roads = append(out.Roads, r)
	}

	for _, r := range in.Railways {
		if len(r.Points) < 2 {
			rep.DroppedRailways++
			continue
		}
		out.Railways = append(out.Railways, r)
	}

	out.Stations = append(out.Stations, in.Stations...)

	for _, p := range in.Parks {
		if p.Area < 0 {
			p.Area = 0
		}
		out.Parks = append(out.Parks, p)
	}

	area, closed := normalizeRing(in.Scramble.Area)
	if closed {
		rep.ClosedRings++
	}
	if len(area) >= 3 {
		out.Scramble.Area = area
		out.Scramble.Caption = in.Scramble.Caption
	} else if len(in.Scramble.Area) > 0 {
		rep.ScrambleDisabled = true
	}
	for _, c := range in.Scramble.Crossings {
		if len(c) < 2 {
			rep.DroppedCrossings++
			continue
		}
		out.Scramble.Crossings = append(out.Scramble.Crossings, c)
	}

	for _, t := range in.Tiles {
		if len(t.Payload) == 0 {
			rep.DroppedTiles++
			continue
		}
		out.Tiles = append(out.Tiles, t)
	}

	return out, rep
}

// normalizeRing strips a duplicated closing point so draw routines always
// see open rings and close them implicitly. Reports whether the ring was
// closed. The input slice is never modified.
func normalizeRing(ring []Vec2) ([]Vec2, bool) {
	if len(ring) >= 2 && ring[0] == ring[len(ring)-1] {
		return ring[:len(ring)-1], true
	}
	return ring, false
}
