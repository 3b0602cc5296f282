package main

import (
	"fmt"
	"os"

	"rocket-model/internal/debug"
	"rocket-model/internal/figure"
	"rocket-model/internal/graphics"
	"rocket-model/internal/logger"
	"rocket-model/internal/prefs"
	"rocket-model/internal/scene"
	"rocket-model/internal/viewer"
)

func main() {
	log := logger.New()

	p, _ := prefs.Load()
	quality := scene.LoadQuality()

	meshes, err := scene.Build(scene.Rocket(quality), log)
	if err != nil {
		log.Logf("build failed: %v", err)
		fmt.Fprintln(os.Stderr, "build failed:", err)
		os.Exit(1)
	}

	view := viewer.New(meshes)
	view.GridVisible = p.GridVisible
	nMeshes, nVerts, nTris := view.Stats()
	log.Logf("built rocket model: %d meshes, %d vertices, %d triangles", nMeshes, nVerts, nTris)

	if p.ExportPath != "" {
		fig := figure.New(meshes)
		if err := fig.WriteFile(p.ExportPath); err != nil {
			log.Logf("figure export failed: %v", err)
		} else {
			log.Logf("figure exported to %s", p.ExportPath)
		}
	}

	dbg := debug.New()
	dbg.SetShowFPS(p.ShowFPS)
	dbg.SetShowStats(p.ShowStats)
	dbg.SetModelStats(nMeshes, nVerts, nTris)

	draw := func() {
		view.Draw()
		dbg.Draw()
	}
	graphics.Run(view.Update, draw)
}
