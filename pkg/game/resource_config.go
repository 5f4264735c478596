package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ResourceConfig represents the resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    models: [...]
//	    images: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Manifest file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g. "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup is a collection of related resources loaded together.
type ResourceGroup struct {
	Models []ModelResource `yaml:"models"` // 3D model assets in this group
	Images []ImageResource `yaml:"images"` // Image assets in this group
}

// ModelResource is a single model asset definition.
//
//	- id: MODEL_AVATAR
//	  path: models/avatar.glb
type ModelResource struct {
	ID   string `yaml:"id"`   // Unique identifier, e.g. "MODEL_AVATAR"
	Path string `yaml:"path"` // Path relative to base_path
}

// ImageResource is a single image asset definition.
type ImageResource struct {
	ID   string `yaml:"id"`   // Unique identifier, e.g. "IMAGE_BACKDROP"
	Path string `yaml:"path"` // Path relative to base_path
}

// ParseResourceConfig parses manifest YAML and validates that every
// resource has an ID and a path.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	for group, g := range cfg.Groups {
		for _, m := range g.Models {
			if m.ID == "" || m.Path == "" {
				return nil, fmt.Errorf("group %q: model entry missing id or path", group)
			}
		}
		for _, img := range g.Images {
			if img.ID == "" || img.Path == "" {
				return nil, fmt.Errorf("group %q: image entry missing id or path", group)
			}
		}
	}
	return &cfg, nil
}
