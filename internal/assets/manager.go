package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed images/*.png
var projectAssets embed.FS

// Sprite file names
const (
	StarFile       = "star.png"
	BoxFile        = "box.png"
	BackgroundFile = "background.png"
)

// Sprites holds every image the game draws.
type Sprites struct {
	Star       *ebiten.Image
	Box        *ebiten.Image
	Background *ebiten.Image
}

// LoadSprites loads the sprite set. Files found in overrideDir replace
// the embedded ones; an empty overrideDir uses only embedded images.
func LoadSprites(overrideDir string) (*Sprites, error) {
	var s Sprites
	for _, it := range []struct {
		name string
		dst  **ebiten.Image
	}{
		{StarFile, &s.Star},
		{BoxFile, &s.Box},
		{BackgroundFile, &s.Background},
	} {
		img, err := LoadImage(it.name, overrideDir)
		if err != nil {
			return nil, err
		}
		*it.dst = img
	}
	return &s, nil
}

// LoadImage decodes a PNG sprite into VRAM
func LoadImage(name, overrideDir string) (*ebiten.Image, error) {
	fileData, err := readImage(name, overrideDir)
	if err != nil {
		return nil, fmt.Errorf("read image %q: %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", name, err)
	}

	return ebiten.NewImageFromImage(img), nil
}

func readImage(name, overrideDir string) ([]byte, error) {
	if overrideDir != "" {
		data, err := os.ReadFile(filepath.Join(overrideDir, name))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return projectAssets.ReadFile("images/" + name)
}
