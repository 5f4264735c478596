package game

import "testing"

func TestParseResourceConfig(t *testing.T) {
	data := []byte(`
version: "1.0"
base_path: assets
groups:
  viewer:
    models:
      - id: MODEL_AVATAR
        path: models/avatar.glb
    images:
      - id: IMAGE_BACKDROP
        path: images/backdrop.png
`)
	cfg, err := ParseResourceConfig(data)
	if err != nil {
		t.Fatalf("ParseResourceConfig failed: %v", err)
	}
	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %q", cfg.Version)
	}
	if cfg.BasePath != "assets" {
		t.Errorf("Expected base_path assets, got %q", cfg.BasePath)
	}

	group, ok := cfg.Groups["viewer"]
	if !ok {
		t.Fatal("Expected viewer group")
	}
	if len(group.Models) != 1 || group.Models[0].ID != "MODEL_AVATAR" {
		t.Errorf("Unexpected models: %+v", group.Models)
	}
	if len(group.Images) != 1 || group.Images[0].Path != "images/backdrop.png" {
		t.Errorf("Unexpected images: %+v", group.Images)
	}
}

func TestParseResourceConfigRejectsIncompleteEntries(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"model without id", "groups:\n  g:\n    models:\n      - path: m.glb\n"},
		{"model without path", "groups:\n  g:\n    models:\n      - id: MODEL_X\n"},
		{"image without id", "groups:\n  g:\n    images:\n      - path: i.png\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseResourceConfig([]byte(tt.data)); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestParseResourceConfigInvalidYAML(t *testing.T) {
	if _, err := ParseResourceConfig([]byte("groups: [")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
