// Package scenepack loads scene payloads produced by the data-preparation
// pipeline: a JSON document (optionally zstd-compressed) holding the
// pre-projected planar geometry of one city district. Payloads are validated
// against an embedded JSON schema before decoding, then passed through the
// engine's admission checks.
package scenepack

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	_ "embed"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mokuren/isotown"
)

//go:embed scene.schema.json
var schemaSrc string

var sceneSchema = jsonschema.MustCompileString("scene.schema.json", schemaSrc)

// --- Payload DTOs ---

type pointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type billboardDTO struct {
	U0    float64 `json:"u0"`
	V0    float64 `json:"v0"`
	U1    float64 `json:"u1"`
	V1    float64 `json:"v1"`
	Color string  `json:"color"`
}

type heroDTO struct {
	Billboards []billboardDTO `json:"billboards"`
	Accent     string         `json:"accent"`
	Rooftop    string         `json:"rooftop"`
}

type buildingDTO struct {
	Name    string     `json:"name"`
	Levels  int        `json:"levels"`
	Usage   string     `json:"usage"`
	HeightM float64    `json:"height_m"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
	Height  float64    `json:"height"`
	Coords  []pointDTO `json:"coords"`
	Hero    *heroDTO   `json:"hero"`
}

type roadDTO struct {
	Name   string     `json:"name"`
	Type   string     `json:"type"`
	Width  float64    `json:"width"`
	Coords []pointDTO `json:"coords"`
}

type railwayDTO struct {
	Name     string     `json:"name"`
	Operator string     `json:"operator"`
	Color    string     `json:"color"`
	Coords   []pointDTO `json:"coords"`
}

type stationDTO struct {
	Name  string  `json:"name"`
	Line  string  `json:"line"`
	Color string  `json:"color"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type parkDTO struct {
	Name string  `json:"name"`
	Area float64 `json:"area"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type tileDTO struct {
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	X2   float64 `json:"x2"`
	Y2   float64 `json:"y2"`
	Data string  `json:"data"`
}

type payloadDTO struct {
	Buildings         []buildingDTO `json:"buildings"`
	Roads             []roadDTO     `json:"roads"`
	Railways          []railwayDTO  `json:"railways"`
	Stations          []stationDTO  `json:"stations"`
	Parks             []parkDTO     `json:"parks"`
	ScrambleArea      []pointDTO    `json:"scramble_area"`
	ScrambleCrossings [][]pointDTO  `json:"scramble_crossings"`
	ScrambleCaption   string        `json:"scramble_caption"`
	Tiles             []tileDTO     `json:"tiles"`
}

// Load reads, validates, and admits a scene payload from disk. A path ending
// in .zst is transparently decompressed. The admission report counts entities
// dropped by structural checks; drops are degradations, not errors.
func Load(path string) (*isotown.Scene, isotown.AdmissionReport, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, isotown.AdmissionReport{}, err
	}
	if strings.HasSuffix(path, ".zst") {
		raw, err = decompress(raw)
		if err != nil {
			return nil, isotown.AdmissionReport{}, fmt.Errorf("scenepack: %s: %w", path, err)
		}
	}
	return Decode(raw)
}

// Decode validates and admits a raw JSON payload.
func Decode(raw []byte) (*isotown.Scene, isotown.AdmissionReport, error) {
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, isotown.AdmissionReport{}, fmt.Errorf("scenepack: parse: %w", err)
	}
	if err := sceneSchema.Validate(generic); err != nil {
		return nil, isotown.AdmissionReport{}, fmt.Errorf("scenepack: schema: %w", err)
	}

	var p payloadDTO
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, isotown.AdmissionReport{}, fmt.Errorf("scenepack: decode: %w", err)
	}

	scene, rep := isotown.Admit(convert(&p))
	return &scene, rep, nil
}

func decompress(raw []byte) ([]byte, error) {
	r, err := zstd.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// convert maps the wire DTOs onto the engine's scene model. Malformed color
// strings resolve to the engine's gray fallback rather than failing.
func convert(p *payloadDTO) isotown.Scene {
	var s isotown.Scene

	for _, b := range p.Buildings {
		bld := isotown.Building{
			Name:         b.Name,
			Footprint:    points(b.Coords),
			Center:       isotown.Vec2{X: b.X, Y: b.Y},
			Height:       b.Height,
			HeightMeters: b.HeightM,
			Floors:       b.Levels,
			Usage:        isotown.ParseUsage(b.Usage),
		}
		if b.Hero != nil {
			h := &isotown.Hero{
				Accent:  isotown.Hex(b.Hero.Accent),
				Rooftop: isotown.ParseRooftopKind(b.Hero.Rooftop),
			}
			for _, bb := range b.Hero.Billboards {
				h.Billboards = append(h.Billboards, isotown.Billboard{
					U0: bb.U0, V0: bb.V0, U1: bb.U1, V1: bb.V1,
					Color: isotown.Hex(bb.Color),
				})
			}
			bld.Hero = h
		}
		s.Buildings = append(s.Buildings, bld)
	}

	for _, r := range p.Roads {
		s.Roads = append(s.Roads, isotown.Road{
			Name:   r.Name,
			Class:  isotown.ParseRoadClass(r.Type),
			Width:  r.Width,
			Points: points(r.Coords),
		})
	}

	for _, r := range p.Railways {
		s.Railways = append(s.Railways, isotown.RailSegment{
			Line:     r.Name,
			Operator: r.Operator,
			Color:    isotown.Hex(r.Color),
			Points:   points(r.Coords),
		})
	}

	for _, st := range p.Stations {
		s.Stations = append(s.Stations, isotown.Station{
			Name:  st.Name,
			Line:  st.Line,
			Color: isotown.Hex(st.Color),
			Pos:   isotown.Vec2{X: st.X, Y: st.Y},
		})
	}

	for _, pk := range p.Parks {
		s.Parks = append(s.Parks, isotown.Park{
			Name: pk.Name,
			Area: pk.Area,
			Pos:  isotown.Vec2{X: pk.X, Y: pk.Y},
		})
	}

	s.Scramble.Area = points(p.ScrambleArea)
	s.Scramble.Caption = p.ScrambleCaption
	for _, c := range p.ScrambleCrossings {
		s.Scramble.Crossings = append(s.Scramble.Crossings, points(c))
	}

	for _, t := range p.Tiles {
		data, err := base64.StdEncoding.DecodeString(t.Data)
		if err != nil {
			// Undecodable payloads become empty and are dropped by
			// admission, counted in the report.
			data = nil
		}
		s.Tiles = append(s.Tiles, isotown.GroundTile{
			TopLeft:    isotown.Vec2{X: t.X0, Y: t.Y0},
			TopRight:   isotown.Vec2{X: t.X1, Y: t.Y1},
			BottomLeft: isotown.Vec2{X: t.X2, Y: t.Y2},
			Payload:    data,
		})
	}

	return s
}

func points(pts []pointDTO) []isotown.Vec2 {
	if len(pts) == 0 {
		return nil
	}
	out := make([]isotown.Vec2, len(pts))
	for i, p := range pts {
		out[i] = isotown.Vec2{X: p.X, Y: p.Y}
	}
	return out
}
