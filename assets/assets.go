package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// Levels is the embedded level directory. Paths look like "levels/sandbox.tmx".
func Levels() fs.FS {
	return levelFS
}

// ImageLoader reads and caches textures from an asset filesystem. Missing
// files are remembered so the renderer can fall back to placeholders without
// hitting the filesystem every frame.
type ImageLoader struct {
	fsys    fs.FS
	cache   map[string]*ebiten.Image
	missing map[string]bool
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:    fsys,
		cache:   make(map[string]*ebiten.Image),
		missing: make(map[string]bool),
	}
}

// LoadImage returns the decoded image at path.
func (l *ImageLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create image from bytes for %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// Frame returns the texture named by an obstacle or particle frame, or nil
// when there is none.
func (l *ImageLoader) Frame(name string) *ebiten.Image {
	if name == "" || l.fsys == nil {
		return nil
	}
	path := fmt.Sprintf("images/obstacles/%s.png", name)
	if l.missing[path] {
		return nil
	}
	img, err := l.LoadImage(path)
	if err != nil {
		log.Printf("[assets] %v", err)
		l.missing[path] = true
		return nil
	}
	return img
}

var imageLoader = NewImageLoader(nil)

// LoadAssets points the global loaders at an asset directory. Without one
// everything is drawn as placeholders and no sound plays.
func LoadAssets(fsys fs.FS) {
	imageLoader = NewImageLoader(fsys)
	audioFS = fsys
}

func GetFrame(name string) *ebiten.Image {
	return imageLoader.Frame(name)
}
