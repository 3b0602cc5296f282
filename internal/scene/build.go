package scene

import (
	"fmt"

	"rocket-model/internal/logger"
	"rocket-model/internal/mesh"
)

// Build walks the scene graph and returns one mesh per primitive node, in
// declaration order. The walk is a single stateless pass: building the same
// graph twice yields identical output.
//
// A shape variant the builder doesn't know is fatal — an unrenderable part is
// a bug, not something to skip. An unknown transform variant is only a
// warning: the step is logged and skipped, leaving the vertices unchanged.
// log may be nil.
func Build(n Node, log *logger.Logger) ([]mesh.Mesh, error) {
	switch node := n.(type) {
	case Group:
		meshes := make([]mesh.Mesh, 0, len(node.Children))
		for _, child := range node.Children {
			built, err := Build(child, log)
			if err != nil {
				return nil, err
			}
			meshes = append(meshes, built...)
		}
		return meshes, nil
	case Primitive:
		m, err := buildPrimitive(node, log)
		if err != nil {
			return nil, err
		}
		return []mesh.Mesh{m}, nil
	default:
		return nil, fmt.Errorf("unknown scene node type %T", n)
	}
}

// origin is the local center for all generated shapes; placement happens
// through the transform chain, as in the scene description.
var origin = mesh.Vec3{0, 0, 0}

func buildPrimitive(p Primitive, log *logger.Logger) (mesh.Mesh, error) {
	var verts []mesh.Vec3
	var faces []mesh.Face

	switch s := p.Shape.(type) {
	case Cube:
		verts, faces = mesh.Cube(origin, s.Size)
	case Cylinder:
		verts, faces = mesh.Cylinder(origin, s.Radius, s.Height, s.Segments)
	case Cone:
		verts, faces = mesh.Cone(origin, s.Radius, s.Height, s.Segments)
	case Sphere:
		verts, faces = mesh.Sphere(origin, s.Radius, s.Segments)
	case Torus:
		verts, faces = mesh.Torus(origin, s.MajorRadius, s.MinorRadius, s.MajorSegments, s.MinorSegments)
	default:
		return mesh.Mesh{}, fmt.Errorf("unknown primitive shape %T in node %q", p.Shape, p.Name)
	}

	verts = applyTransforms(verts, p.Transforms, p.Name, log)

	return mesh.Mesh{
		Name:        p.Name,
		Vertices:    verts,
		Faces:       faces,
		Color:       lookupColor(p.Color),
		Opacity:     1.0,
		FlatShading: true,
	}, nil
}

// applyTransforms applies the chain in declared order. Order matters:
// translate-then-rotate places the fins around the rocket axis, while the
// reverse would not.
func applyTransforms(verts []mesh.Vec3, chain []Transform, nodeName string, log *logger.Logger) []mesh.Vec3 {
	for _, t := range chain {
		switch op := t.(type) {
		case Translate:
			verts = mesh.Translate(verts, op.DX, op.DY, op.DZ)
		case RotateX:
			verts = mesh.RotateX(verts, op.Degrees)
		case RotateY:
			verts = mesh.RotateY(verts, op.Degrees)
		case RotateZ:
			verts = mesh.RotateZ(verts, op.Degrees)
		case Scale:
			verts = mesh.Scale(verts, op.SX, op.SY, op.SZ)
		default:
			log.Logf("warning: unknown transformation type %T in node %q, skipped", t, nodeName)
		}
	}
	return verts
}
