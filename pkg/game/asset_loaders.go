package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FontLoader decodes TrueType/OpenType files into text face sources.
// Faces of a concrete size are created from the source when text is spawned.
// For a font collection (.ttc) the first font is used.
type FontLoader struct{}

func (FontLoader) Load(path string, data []byte) (any, error) {
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		sources, err := text.NewGoTextFaceSourcesFromCollection(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode font collection: %w", err)
		}
		if len(sources) == 0 {
			return nil, fmt.Errorf("decode font collection: no fonts in %s", path)
		}
		return sources[0], nil
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode font: %w", err)
	}
	return source, nil
}

func (FontLoader) Extensions() []string {
	return []string{".ttf", ".otf", ".ttc"}
}

// ImageLoader decodes PNG and JPEG files into ebiten images.
type ImageLoader struct{}

func (ImageLoader) Load(path string, data []byte) (any, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func (ImageLoader) Extensions() []string {
	return []string{".png", ".jpg", ".jpeg"}
}
