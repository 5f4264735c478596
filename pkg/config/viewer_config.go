package config

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

// ViewerConfig is the top-level viewer configuration loaded from
// data/viewer.yaml. It covers everything that is data rather than code:
// which model to show, camera placement, palette, and the log lines the
// avatar screen suppresses while mounted.
type ViewerConfig struct {
	// Model is the resource ID of the avatar asset (see resources.yaml)
	Model string `yaml:"model"`

	// Camera places the wireframe camera
	Camera CameraConfig `yaml:"camera"`

	// Colors is the screen palette, hex encoded ("#rrggbb")
	Colors ColorConfig `yaml:"colors"`

	// LogFilter lists substrings of log lines to suppress while the
	// avatar screen is mounted
	LogFilter []string `yaml:"log_filter"`
}

// CameraConfig describes the perspective camera.
type CameraConfig struct {
	Eye    [3]float64 `yaml:"eye"`    // camera position
	Center [3]float64 `yaml:"center"` // look-at target
	FOV    float64    `yaml:"fov"`    // vertical field of view, degrees
}

// ColorConfig is the screen palette. All values are "#rrggbb" strings
// in YAML; use Parse to obtain color.RGBA values.
type ColorConfig struct {
	Background string `yaml:"background"`
	Wireframe  string `yaml:"wireframe"`
	Ready      string `yaml:"ready"`
	Loading    string `yaml:"loading"`
	Error      string `yaml:"error"`
	Text       string `yaml:"text"`
}

// Palette is the decoded color set used by the scenes.
type Palette struct {
	Background color.RGBA
	Wireframe  color.RGBA
	Ready      color.RGBA
	Loading    color.RGBA
	Error      color.RGBA
	Text       color.RGBA
}

// DefaultViewerConfig returns the built-in configuration used when the
// embedded YAML is missing or a field is absent.
func DefaultViewerConfig() *ViewerConfig {
	return &ViewerConfig{
		Model: "MODEL_AVATAR",
		Camera: CameraConfig{
			Eye:    [3]float64{0, 1.2, 3.2},
			Center: [3]float64{0, 0.9, 0},
			FOV:    45,
		},
		Colors: ColorConfig{
			Background: "#101418",
			Wireframe:  "#7fd4ff",
			Ready:      "#4caf50",
			Loading:    "#daa520",
			Error:      "#ec4e20",
			Text:       "#e8e8e8",
		},
		LogFilter: []string{
			"unsupported extension",
			"matrix transform; only TRS is supported",
			"cubic spline interpolation",
		},
	}
}

// LoadViewerConfig parses YAML configuration data. Fields left empty in
// the file keep their default values.
func LoadViewerConfig(data []byte) (*ViewerConfig, error) {
	cfg := DefaultViewerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse viewer config: %w", err)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultViewerConfig().Model
	}
	if cfg.Camera.FOV <= 0 || cfg.Camera.FOV >= 180 {
		return nil, fmt.Errorf("camera fov %.1f out of range (0, 180)", cfg.Camera.FOV)
	}
	return cfg, nil
}

// Parse decodes the palette. Invalid or empty entries fall back to the
// default palette rather than failing: colors are cosmetic.
func (c ColorConfig) Parse() Palette {
	def := DefaultViewerConfig().Colors
	return Palette{
		Background: hexOr(c.Background, def.Background),
		Wireframe:  hexOr(c.Wireframe, def.Wireframe),
		Ready:      hexOr(c.Ready, def.Ready),
		Loading:    hexOr(c.Loading, def.Loading),
		Error:      hexOr(c.Error, def.Error),
		Text:       hexOr(c.Text, def.Text),
	}
}

func hexOr(value, fallback string) color.RGBA {
	if c, err := ParseHexColor(value); err == nil {
		return c
	}
	c, _ := ParseHexColor(fallback)
	return c
}

// ParseHexColor parses "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
