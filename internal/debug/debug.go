// Package debug draws optional runtime overlays (FPS, model statistics).
package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the FPS text every N frames to reduce
	// allocations. Model stats are fixed and formatted once.
	updateInterval = 30
)

// Debug holds runtime debugging overlays. All overlays are off by default.
type Debug struct {
	ShowFPS   bool
	ShowStats bool

	frameCount  uint32
	lastFpsText string
	statsText   string
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowStats sets whether model statistics are drawn under the FPS
// counter.
func (d *Debug) SetShowStats(show bool) {
	d.ShowStats = show
}

// SetModelStats records the model statistics line. The model never changes
// after startup, so the text is formatted once here.
func (d *Debug) SetModelStats(meshes, vertices, triangles int) {
	d.statsText = fmt.Sprintf("%d meshes  %d verts  %d tris", meshes, vertices, triangles)
}

// Draw renders any enabled debug overlays. Call after the 3D scene in the
// draw loop. FPS text is only recomputed every updateInterval frames.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		if text := d.lastFpsText; text != "" {
			w := rl.MeasureText(text, fontSize)
			rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		}
		y += lineHeight
	}

	if d.ShowStats && d.statsText != "" {
		w := rl.MeasureText(d.statsText, fontSize)
		rl.DrawText(d.statsText, screenW-w-padding, y, fontSize, rl.Green)
	}
}
