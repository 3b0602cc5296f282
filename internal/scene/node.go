// Package scene defines the declarative scene graph for the rocket model and
// builds it into a flat list of renderable meshes.
//
// The graph is a tree of Group and Primitive nodes. A Primitive names a shape
// with typed per-kind parameters, a color, and an ordered transform chain that
// is applied to the generated geometry. Transforms are absolute (world-space):
// groups provide structure only and carry no transform of their own.
package scene

import (
	"rocket-model/internal/mesh"
)

// Node is one element of the scene graph, either a Group or a Primitive.
type Node interface {
	node()
}

// Group nests child nodes in declaration order. Order determines the order of
// the built mesh list, nothing else.
type Group struct {
	Name     string
	Children []Node
}

// Primitive instantiates one shape. Transforms apply to the shape-local
// geometry in declared order.
type Primitive struct {
	Name       string
	Shape      Shape
	Color      string // CSS color name, resolved via the palette at build time
	Transforms []Transform
}

func (Group) node()     {}
func (Primitive) node() {}

// Shape is the set of known primitive kinds. Each variant carries the
// parameters of its generator; the builder dispatches on the concrete type.
type Shape interface {
	shape()
}

// Cube is an axis-aligned box with per-axis size.
type Cube struct {
	Size mesh.Vec3
}

// Cylinder stands along the Z axis, centered at the origin.
type Cylinder struct {
	Radius   float32
	Height   float32
	Segments int
}

// Cone has its base circle at z=0 and its apex at z=Height.
type Cone struct {
	Radius   float32
	Height   float32
	Segments int
}

// Sphere is a UV sphere centered at the origin.
type Sphere struct {
	Radius   float32
	Segments int
}

// Torus lies in the XY plane, centered at the origin.
type Torus struct {
	MajorRadius   float32
	MinorRadius   float32
	MajorSegments int
	MinorSegments int
}

func (Cube) shape()     {}
func (Cylinder) shape() {}
func (Cone) shape()     {}
func (Sphere) shape()   {}
func (Torus) shape()    {}

// Transform is one step of a primitive's transform chain.
type Transform interface {
	transform()
}

// Translate moves the geometry by (DX, DY, DZ).
type Translate struct {
	DX, DY, DZ float32
}

// RotateX rotates about the X axis, in degrees.
type RotateX struct {
	Degrees float32
}

// RotateY rotates about the Y axis, in degrees.
type RotateY struct {
	Degrees float32
}

// RotateZ rotates about the Z axis, in degrees.
type RotateZ struct {
	Degrees float32
}

// Scale multiplies the geometry elementwise by (SX, SY, SZ).
type Scale struct {
	SX, SY, SZ float32
}

func (Translate) transform() {}
func (RotateX) transform()   {}
func (RotateY) transform()   {}
func (RotateZ) transform()   {}
func (Scale) transform()     {}
