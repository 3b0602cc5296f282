// Package mesh generates and transforms triangle meshes for the rocket model.
// Generators and transforms are pure functions: same input, same output, no
// shared state. Vertices are float32 points; faces index into the vertex set.
package mesh

// Vec3 is a 3D point or offset.
type Vec3 = [3]float32

// Face is one triangle, given as three indices into a vertex set.
// Winding is counter-clockwise as seen from outside the surface.
type Face = [3]int

// Color is an RGBA color, 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// Mesh is one renderable part: a vertex set, the triangles over it, and how
// to shade them. Built once per scene primitive and not shared or mutated
// afterwards.
type Mesh struct {
	Name        string
	Vertices    []Vec3
	Faces       []Face
	Color       Color
	Opacity     float32
	FlatShading bool
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangle faces.
func (m *Mesh) TriangleCount() int { return len(m.Faces) }

// Valid reports whether every face index is within [0, vertex count).
func (m *Mesh) Valid() bool {
	n := len(m.Vertices)
	for _, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return false
			}
		}
	}
	return true
}
