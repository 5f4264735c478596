package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerSettings are the user-tunable display settings. They are
// global, not per-model.
type ViewerSettings struct {
	// Fullscreen starts the desktop viewer in fullscreen
	Fullscreen bool `yaml:"fullscreen"`

	// ShowStats overlays frame statistics on the avatar screen
	ShowStats bool `yaml:"showStats"`

	// IdleMotion enables the procedural bob/yaw once the model is ready
	IdleMotion bool `yaml:"idleMotion"`
}

// DefaultSettings returns the settings used on first launch.
func DefaultSettings() *ViewerSettings {
	return &ViewerSettings{
		Fullscreen: false,
		ShowStats:  false,
		IdleMotion: true,
	}
}

// SettingsManager loads and saves viewer settings. Persistence goes
// through gdata so the same code works on desktop and mobile; when no
// gdata manager is available the settings live in memory only.
type SettingsManager struct {
	gdataManager *gdata.Manager // may be nil (degraded, memory-only mode)
	settings     *ViewerSettings
}

// Storage keys
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// NewSettingsManager creates a settings manager and loads any
// previously saved settings. A load failure is not fatal: the manager
// falls back to defaults and reports the error.
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load reads settings from gdata. Missing storage or a missing settings
// blob leaves the defaults in place.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded ViewerSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save writes the current settings to gdata. In memory-only mode Save
// succeeds without persisting.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings returns the current settings instance.
func (sm *SettingsManager) GetSettings() *ViewerSettings {
	return sm.settings
}

// SetFullscreen updates the fullscreen preference in memory. Call Save
// to persist.
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowStats updates the stats overlay preference in memory. Call
// Save to persist.
func (sm *SettingsManager) SetShowStats(enabled bool) {
	sm.settings.ShowStats = enabled
}

// SetIdleMotion updates the idle motion preference in memory. Call Save
// to persist.
func (sm *SettingsManager) SetIdleMotion(enabled bool) {
	sm.settings.IdleMotion = enabled
}
