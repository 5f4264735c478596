package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/avatarview/internal/model"
	"github.com/decker502/avatarview/pkg/embedded"
)

// ResourceManager is responsible for centralized management of viewer
// resources. It provides loading and caching for images, fonts, and 3D
// model assets, ensuring each resource is decoded only once and reused
// for the lifetime of the app.
//
// Thread safety: the caches are plain maps. All loads must happen on
// the game loop goroutine; asynchronous flows (the avatar preload) go
// through avatar.Loader, which does its single LoadModel call on its
// own goroutine before anything else touches the model cache entry.
type ResourceManager struct {
	imageCache map[string]*ebiten.Image  // path -> decoded image
	modelCache map[string]*model.Model   // resource ID -> loaded model
	fontCache  map[float64]*text.GoTextFace
	fontSource *text.GoTextFaceSource

	config      *ResourceConfig   // Parsed resource manifest
	resourceMap map[string]string // Resource ID -> file path
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:  make(map[string]*ebiten.Image),
		modelCache:  make(map[string]*model.Model),
		fontCache:   make(map[float64]*text.GoTextFace),
		resourceMap: make(map[string]string),
	}
}

// LoadResourceConfig loads the resource manifest from the embedded
// filesystem and builds the ID -> path lookup used by LoadModel and
// LoadImageByID.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	cfg, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("failed to load resource config %s: %w", configPath, err)
	}

	rm.config = cfg
	for group, g := range cfg.Groups {
		for _, m := range g.Models {
			rm.resourceMap[m.ID] = path.Join(cfg.BasePath, m.Path)
		}
		for _, img := range g.Images {
			rm.resourceMap[img.ID] = path.Join(cfg.BasePath, img.Path)
		}
		log.Printf("[ResourceManager] Registered group %q (%d models, %d images)",
			group, len(g.Models), len(g.Images))
	}
	return nil
}

// ResourcePath resolves a manifest resource ID to its file path.
func (rm *ResourceManager) ResourcePath(id string) (string, error) {
	p, ok := rm.resourceMap[id]
	if !ok {
		return "", fmt.Errorf("unknown resource ID %q", id)
	}
	return p, nil
}

// LoadModel loads and caches the model asset registered under the given
// resource ID. The decoded model is shared; callers must not mutate it
// (playback state lives in per-scene poses, not in the model).
func (rm *ResourceManager) LoadModel(id string) (*model.Model, error) {
	if cached, exists := rm.modelCache[id]; exists {
		return cached, nil
	}

	p, err := rm.ResourcePath(id)
	if err != nil {
		return nil, err
	}

	data, err := embedded.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", p, err)
	}

	m, err := model.LoadGLB(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s: %w", p, err)
	}

	log.Printf("[ResourceManager] Loaded model %s: %d nodes, %d meshes, %d clips",
		id, len(m.Nodes), len(m.Meshes), len(m.Clips))
	rm.modelCache[id] = m
	return m, nil
}

// LoadImage loads an image from the embedded filesystem and caches it.
// Supported formats: PNG and JPEG.
func (rm *ResourceManager) LoadImage(imagePath string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache[imagePath]; exists {
		return cached, nil
	}

	data, err := embedded.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", imagePath, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", imagePath, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[imagePath] = ebitenImg
	return ebitenImg, nil
}

// LoadImageByID loads an image registered in the resource manifest.
func (rm *ResourceManager) LoadImageByID(id string) (*ebiten.Image, error) {
	p, err := rm.ResourcePath(id)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(p)
}

// LoadFont returns a text face at the given size, backed by the bundled
// Go Regular typeface. Faces are cached per size.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if cached, exists := rm.fontCache[size]; exists {
		return cached, nil
	}

	if rm.fontSource == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to parse bundled font: %w", err)
		}
		rm.fontSource = src
	}

	face := &text.GoTextFace{Source: rm.fontSource, Size: size}
	rm.fontCache[size] = face
	return face, nil
}
