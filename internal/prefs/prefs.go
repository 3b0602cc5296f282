// Package prefs persists viewer preferences across runs. Preferences only
// affect the viewer (overlays, grid, export); the model itself is fixed.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// PrefsPath is the path to the viewer config file, relative to the process
// working directory.
const PrefsPath = "config/viewer.json"

// ViewerPrefs holds viewer-only preferences (debug overlays, grid, figure
// export). Persisted across runs.
type ViewerPrefs struct {
	ShowFPS     bool   `json:"show_fps"`
	ShowStats   bool   `json:"show_stats"`
	GridVisible bool   `json:"grid_visible"`
	ExportPath  string `json:"export_path,omitempty"`
}

// Default returns default viewer preferences (overlays off, grid on, no
// figure export).
func Default() ViewerPrefs {
	return ViewerPrefs{
		ShowFPS:     false,
		ShowStats:   false,
		GridVisible: true,
		ExportPath:  "",
	}
}

// Load reads viewer preferences from config/viewer.json. If the file is
// missing or invalid, returns Default() and does not create a file.
func Load() (ViewerPrefs, error) {
	data, err := os.ReadFile(PrefsPath)
	if err != nil {
		return Default(), nil
	}
	var p ViewerPrefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes viewer preferences to config/viewer.json, creating the config
// directory if needed.
func Save(p ViewerPrefs) error {
	dir := filepath.Dir(PrefsPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(PrefsPath, data, 0644)
}
