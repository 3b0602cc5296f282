// Package graphics owns the window and the main loop.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "Rocket Model"
	targetFPS    = 60
)

// Run starts the window and main loop. Each frame it calls update (camera
// input), then clears the screen and calls draw. The model is static, so all
// heavy work happens before Run; the loop only orbits the camera and redraws.
// Close via the window button or ESC.
func Run(update, draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
