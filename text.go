package isotown

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
)

// Faces bundles the two typeface sources used by the viewer: a monospace
// face for in-scene pixel labels and surface text, and a bold face for the
// inspector panel title.
type Faces struct {
	Mono *text.GoTextFaceSource
	Bold *text.GoTextFaceSource
}

// LoadFaces parses the embedded Go fonts. Called once at startup.
func LoadFaces() (*Faces, error) {
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load mono face: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold face: %w", err)
	}
	return &Faces{Mono: mono, Bold: bold}, nil
}

// monoFace returns a sized monospace face.
func (f *Faces) monoFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.Mono, Size: size}
}

// boldFace returns a sized bold face.
func (f *Faces) boldFace(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.Bold, Size: size}
}
