package game

import "testing"

// All tests run in degraded (memory-only) mode: gdata storage points at
// platform-specific user directories, which tests must not touch.

func TestNewSettingsManagerDefaults(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}

	s := sm.GetSettings()
	if s.Fullscreen {
		t.Error("Expected fullscreen disabled by default")
	}
	if s.ShowStats {
		t.Error("Expected stats overlay disabled by default")
	}
	if !s.IdleMotion {
		t.Error("Expected idle motion enabled by default")
	}
}

func TestSettingsManagerSetters(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetFullscreen(true)
	sm.SetShowStats(true)
	sm.SetIdleMotion(false)

	s := sm.GetSettings()
	if !s.Fullscreen || !s.ShowStats || s.IdleMotion {
		t.Errorf("Setters not applied: %+v", s)
	}
}

func TestSettingsManagerSaveWithoutStorage(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	if err := sm.Save(); err != nil {
		t.Errorf("Save in memory-only mode should succeed, got %v", err)
	}
}

func TestSettingsManagerLoadWithoutStorage(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetFullscreen(true)

	if err := sm.Load(); err != nil {
		t.Fatalf("Load in memory-only mode failed: %v", err)
	}
	// Memory-only Load resets to defaults.
	if sm.GetSettings().Fullscreen {
		t.Error("Expected Load to restore defaults in memory-only mode")
	}
}
