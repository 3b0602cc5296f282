package scene

import (
	"rocket-model/internal/mesh"
)

// palette maps the CSS color names used by the scene graph to RGBA.
// Values are the CSS3 named-color definitions.
var palette = map[string]mesh.Color{
	"silver":    {R: 192, G: 192, B: 192, A: 255},
	"red":       {R: 255, G: 0, B: 0, A: 255},
	"blue":      {R: 0, G: 0, B: 255, A: 255},
	"lightblue": {R: 173, G: 216, B: 230, A: 255},
	"darkgrey":  {R: 169, G: 169, B: 169, A: 255},
	"orange":    {R: 255, G: 165, B: 0, A: 255},
	"gold":      {R: 255, G: 215, B: 0, A: 255},
	"grey":      {R: 128, G: 128, B: 128, A: 255},
	"white":     {R: 255, G: 255, B: 255, A: 255},
}

// colorDefault is used when a node names a color the palette doesn't know.
var colorDefault = mesh.Color{R: 128, G: 128, B: 128, A: 255}

// lookupColor resolves a CSS color name, falling back to mid-grey.
func lookupColor(name string) mesh.Color {
	if c, ok := palette[name]; ok {
		return c
	}
	return colorDefault
}
