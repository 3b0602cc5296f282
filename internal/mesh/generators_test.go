package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

// validFaces fails the test if any face index falls outside the vertex set.
func validFaces(t *testing.T, verts []Vec3, faces []Face) {
	t.Helper()
	for fi, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(verts) {
				t.Fatalf("face %d references vertex %d, have %d vertices", fi, idx, len(verts))
			}
		}
	}
}

func TestVertexAndFaceCounts(t *testing.T) {
	tests := []struct {
		name      string
		verts     []Vec3
		faces     []Face
		wantVerts int
		wantFaces int
	}{
		{"cube", nil, nil, 8, 12},
		{"cylinder", nil, nil, 2*20 + 2, 4 * 20},
		{"cone", nil, nil, 20 + 2, 2 * 20},
		{"sphere", nil, nil, 21 * 21, 2 * 20 * 20},
		{"torus", nil, nil, 30 * 15, 2 * 30 * 15},
	}
	origin := Vec3{0, 0, 0}
	tests[0].verts, tests[0].faces = Cube(origin, Vec3{1, 1, 1})
	tests[1].verts, tests[1].faces = Cylinder(origin, 0.5, 1, 20)
	tests[2].verts, tests[2].faces = Cone(origin, 0.5, 1, 20)
	tests[3].verts, tests[3].faces = Sphere(origin, 0.5, 20)
	tests[4].verts, tests[4].faces = Torus(origin, 1, 0.2, 30, 15)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantVerts, len(tc.verts))
			assert.Equal(t, tc.wantFaces, len(tc.faces))
			validFaces(t, tc.verts, tc.faces)
		})
	}
}

func TestCubeCorners(t *testing.T) {
	verts, faces := Cube(Vec3{0, 0, 0}, Vec3{2, 2, 2})
	assert.Len(t, verts, 8)
	assert.Len(t, faces, 12)

	// All combinations of ±1 must appear exactly once.
	seen := map[Vec3]bool{}
	for _, v := range verts {
		seen[v] = true
	}
	for _, x := range []float32{-1, 1} {
		for _, y := range []float32{-1, 1} {
			for _, z := range []float32{-1, 1} {
				assert.True(t, seen[Vec3{x, y, z}], "missing corner (%v,%v,%v)", x, y, z)
			}
		}
	}
}

func TestConeFourSegments(t *testing.T) {
	verts, faces := Cone(Vec3{0, 0, 0}, 1, 1, 4)
	assert.Len(t, verts, 6, "4 base + apex + base center")
	assert.Len(t, faces, 8, "4 side + 4 cap")

	// Apex sits height above the base plane, base center at the origin.
	assert.InDelta(t, 1, verts[4][2], tol)
	assert.Equal(t, Vec3{0, 0, 0}, verts[5])

	// Base ring vertices lie on the unit circle at z=0.
	for i := 0; i < 4; i++ {
		v := verts[i]
		assert.InDelta(t, 1, v[0]*v[0]+v[1]*v[1], tol)
		assert.Equal(t, float32(0), v[2])
	}
}

func TestCylinderLayout(t *testing.T) {
	const segments = 8
	verts, _ := Cylinder(Vec3{0, 0, 0}, 2, 4, segments)

	// Bottom ring, then top ring, then the two cap centers.
	for i := 0; i < segments; i++ {
		assert.InDelta(t, -2, verts[i][2], tol, "bottom ring z")
		assert.InDelta(t, 2, verts[segments+i][2], tol, "top ring z")
		assert.InDelta(t, 4, verts[i][0]*verts[i][0]+verts[i][1]*verts[i][1], tol, "ring radius²")
	}
	assert.Equal(t, Vec3{0, 0, -2}, verts[2*segments])
	assert.Equal(t, Vec3{0, 0, 2}, verts[2*segments+1])
}

// The sphere duplicates its longitude seam (inclusive 0..segments sampling):
// the first and last vertex of every latitude ring coincide.
func TestSphereSeamDuplicated(t *testing.T) {
	const segments = 12
	verts, _ := Sphere(Vec3{0, 0, 0}, 1, segments)
	cols := segments + 1
	for i := 0; i <= segments; i++ {
		first := verts[i*cols]
		last := verts[i*cols+segments]
		assert.InDelta(t, first[0], last[0], tol)
		assert.InDelta(t, first[1], last[1], tol)
		assert.InDelta(t, first[2], last[2], tol)
	}
}

// The torus wraps via modulo instead: no duplicated column, and every face
// index stays within the vertex count even at the wrap seams.
func TestTorusWrapsWithoutSeam(t *testing.T) {
	verts, faces := Torus(Vec3{0, 0, 0}, 1, 0.25, 6, 4)
	assert.Len(t, verts, 6*4)
	validFaces(t, verts, faces)

	// The last grid cell must reference first-row and first-column vertices.
	wrapped := false
	for _, f := range faces[len(faces)-2:] {
		for _, idx := range f {
			if idx < 4 {
				wrapped = true
			}
		}
	}
	assert.True(t, wrapped, "expected final faces to wrap to ring 0")
}

func TestCenterOffsetTranslatesOutput(t *testing.T) {
	offset := Vec3{1.5, -2, 3.25}

	type gen func(center Vec3) ([]Vec3, []Face)
	tests := []struct {
		name string
		g    gen
	}{
		{"cube", func(c Vec3) ([]Vec3, []Face) { return Cube(c, Vec3{1, 2, 3}) }},
		{"cylinder", func(c Vec3) ([]Vec3, []Face) { return Cylinder(c, 0.5, 2, 12) }},
		{"cone", func(c Vec3) ([]Vec3, []Face) { return Cone(c, 0.5, 2, 12) }},
		{"sphere", func(c Vec3) ([]Vec3, []Face) { return Sphere(c, 0.5, 8) }},
		{"torus", func(c Vec3) ([]Vec3, []Face) { return Torus(c, 1, 0.2, 8, 6) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base, baseFaces := tc.g(Vec3{0, 0, 0})
			moved, movedFaces := tc.g(offset)
			assert.Equal(t, baseFaces, movedFaces, "faces must not depend on center")
			for i := range base {
				assert.InDelta(t, base[i][0]+offset[0], moved[i][0], tol)
				assert.InDelta(t, base[i][1]+offset[1], moved[i][1], tol)
				assert.InDelta(t, base[i][2]+offset[2], moved[i][2], tol)
			}
		})
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	v1, f1 := Torus(Vec3{0, 0, 0}, 1.1, 0.05, 30, 15)
	v2, f2 := Torus(Vec3{0, 0, 0}, 1.1, 0.05, 30, 15)
	assert.Equal(t, v1, v2)
	assert.Equal(t, f1, f2)
}
