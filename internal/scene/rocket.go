package scene

import (
	"github.com/chewxy/math32"
)

// Rocket model dimensions. The body is a cylinder standing on the XY plane
// (after its translate), the nose cone sits on top, three fins are placed
// around the base by rotating an offset cube about the Z axis, and two torus
// rings decorate the hull.
const (
	bodyRadius    = 1.0
	bodyHeight    = 6.0
	noseHeight    = 3.0
	finTilt       = 10 // degrees, leaned outward about X for looks
	windowRadius  = 0.3
	windowOrbit   = 0.8 // distance of window centers from the rocket axis
	exhaustRadius = 0.7
	exhaustHeight = 1.0
	nozzleRadius  = 0.3
	nozzleHeight  = 0.8
	ringMajor     = 1.1 // slightly larger than the body radius
	ringMinor     = 0.05
)

// finSize is thin on X, wide on Y, tall on Z.
var finSize = [3]float32{0.2, 2.5, 2.0}

// Rocket returns the scene graph of the toy rocket, tessellated at the given
// quality. The graph is built once at startup and never mutated; transforms
// are absolute, so each part's chain places its local geometry directly in
// world space.
func Rocket(q Quality) Node {
	return Group{
		Name: "rocket",
		Children: []Node{
			Primitive{
				Name:  "body",
				Shape: Cylinder{Radius: bodyRadius, Height: bodyHeight, Segments: q.CylinderSegments},
				Color: "silver",
				Transforms: []Transform{
					// Center the body around Z = half its height.
					Translate{DZ: bodyHeight / 2},
				},
			},
			Primitive{
				Name:  "nose_cone",
				Shape: Cone{Radius: bodyRadius, Height: noseHeight, Segments: q.ConeSegments},
				Color: "red",
				Transforms: []Transform{
					// Base of the cone at the top of the body.
					Translate{DZ: bodyHeight},
				},
			},
			fin("fin_1", 0),
			fin("fin_2", 120),
			fin("fin_3", 240),
			window("window_1", 0, 5.0, q),
			window("window_2", 90, 4.0, q),
			window("window_3", 180, 5.0, q),
			Primitive{
				Name:  "exhaust",
				Shape: Cylinder{Radius: exhaustRadius, Height: exhaustHeight, Segments: q.CylinderSegments},
				Color: "darkgrey",
				Transforms: []Transform{
					// Below the body base.
					Translate{DZ: -exhaustHeight / 2},
				},
			},
			nozzle("nozzle_1", 0.3, 0.3, q),
			nozzle("nozzle_2", -0.3, -0.3, q),
			ring("ring_top", 5.5, q),
			ring("ring_bottom", 1.5, q),
		},
	}
}

// fin returns one fin: a thin cube offset from the axis, swung around Z to
// its position, then tilted. Translate-before-rotate is what places it on
// the hull; the reverse order would leave it at the origin.
func fin(name string, zAngle float32) Node {
	return Primitive{
		Name:  name,
		Shape: Cube{Size: finSize},
		Color: "blue",
		Transforms: []Transform{
			Translate{DY: -1.0, DZ: 1.0},
			RotateZ{Degrees: zAngle},
			RotateX{Degrees: finTilt},
		},
	}
}

// window returns one porthole sphere, placed on the hull at the given angle
// around the axis and the given height.
func window(name string, angle, z float32, q Quality) Node {
	rad := angle * math32.Pi / 180
	transforms := []Transform{
		Translate{
			DX: windowOrbit * math32.Cos(rad),
			DY: windowOrbit * math32.Sin(rad),
			DZ: z,
		},
	}
	if angle != 0 {
		transforms = append(transforms, RotateZ{Degrees: angle})
	}
	return Primitive{
		Name:       name,
		Shape:      Sphere{Radius: windowRadius, Segments: q.SphereSegments},
		Color:      "lightblue",
		Transforms: transforms,
	}
}

// nozzle returns one engine nozzle: a small cone flipped to point downward,
// tucked inside the exhaust at the given XY offset.
func nozzle(name string, dx, dy float32, q Quality) Node {
	return Primitive{
		Name:  name,
		Shape: Cone{Radius: nozzleRadius, Height: nozzleHeight, Segments: q.ConeSegments},
		Color: "orange",
		Transforms: []Transform{
			Translate{DX: dx, DY: dy, DZ: -0.9},
			RotateX{Degrees: 180},
		},
	}
}

// ring returns one decorative torus at the given height.
func ring(name string, z float32, q Quality) Node {
	return Primitive{
		Name:  name,
		Shape: Torus{MajorRadius: ringMajor, MinorRadius: ringMinor, MajorSegments: q.TorusMajorSegments, MinorSegments: q.TorusMinorSegments},
		Color: "gold",
		Transforms: []Transform{
			Translate{DZ: z},
		},
	}
}
