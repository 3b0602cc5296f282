package mesh

import (
	"github.com/chewxy/math32"
)

// Transforms operate on whole vertex sets and return a fresh slice of the
// same length; the input is never modified and face topology is unaffected.
// Rotations use the row-vector convention v' = v · Rᵀ with right-handed
// rotation matrices, angles in degrees.

// Translate moves every vertex by (dx, dy, dz).
func Translate(verts []Vec3, dx, dy, dz float32) []Vec3 {
	out := make([]Vec3, len(verts))
	for i, v := range verts {
		out[i] = Vec3{v[0] + dx, v[1] + dy, v[2] + dz}
	}
	return out
}

// RotateX rotates every vertex about the X axis by the given angle in degrees.
func RotateX(verts []Vec3, degrees float32) []Vec3 {
	sin, cos := math32.Sincos(degrees * math32.Pi / 180)
	out := make([]Vec3, len(verts))
	for i, v := range verts {
		out[i] = Vec3{
			v[0],
			v[1]*cos - v[2]*sin,
			v[1]*sin + v[2]*cos,
		}
	}
	return out
}

// RotateY rotates every vertex about the Y axis by the given angle in degrees.
func RotateY(verts []Vec3, degrees float32) []Vec3 {
	sin, cos := math32.Sincos(degrees * math32.Pi / 180)
	out := make([]Vec3, len(verts))
	for i, v := range verts {
		out[i] = Vec3{
			v[0]*cos + v[2]*sin,
			v[1],
			-v[0]*sin + v[2]*cos,
		}
	}
	return out
}

// RotateZ rotates every vertex about the Z axis by the given angle in degrees.
func RotateZ(verts []Vec3, degrees float32) []Vec3 {
	sin, cos := math32.Sincos(degrees * math32.Pi / 180)
	out := make([]Vec3, len(verts))
	for i, v := range verts {
		out[i] = Vec3{
			v[0]*cos - v[1]*sin,
			v[0]*sin + v[1]*cos,
			v[2],
		}
	}
	return out
}

// Scale multiplies every vertex elementwise by (sx, sy, sz). Normals are not
// tracked, so non-uniform scale needs no compensation here; shading is
// per-face and derived from the final positions.
func Scale(verts []Vec3, sx, sy, sz float32) []Vec3 {
	out := make([]Vec3, len(verts))
	for i, v := range verts {
		out[i] = Vec3{v[0] * sx, v[1] * sy, v[2] * sz}
	}
	return out
}
