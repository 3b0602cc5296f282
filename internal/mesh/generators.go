package mesh

import (
	"github.com/chewxy/math32"
)

const twoPi = 2 * math32.Pi

// Cube returns the 8 corner vertices of an axis-aligned box centered at
// center with the given per-axis size, and 12 triangles covering its 6 faces.
func Cube(center, size Vec3) ([]Vec3, []Face) {
	x, y, z := center[0], center[1], center[2]
	sx, sy, sz := size[0]/2, size[1]/2, size[2]/2

	verts := []Vec3{
		{x - sx, y - sy, z - sz}, // 0
		{x + sx, y - sy, z - sz}, // 1
		{x + sx, y + sy, z - sz}, // 2
		{x - sx, y + sy, z - sz}, // 3
		{x - sx, y - sy, z + sz}, // 4
		{x + sx, y - sy, z + sz}, // 5
		{x + sx, y + sy, z + sz}, // 6
		{x - sx, y + sy, z + sz}, // 7
	}

	faces := []Face{
		// bottom
		{0, 1, 2}, {0, 2, 3},
		// top
		{4, 5, 6}, {4, 6, 7},
		// front
		{0, 1, 5}, {0, 5, 4},
		// back
		{3, 2, 6}, {3, 6, 7},
		// left
		{0, 3, 7}, {0, 7, 4},
		// right
		{1, 2, 6}, {1, 6, 5},
	}

	return verts, faces
}

// Cylinder returns a cylinder of the given radius and height centered at
// center, with its axis along Z. The side is sampled at segments angular
// steps; vertex layout is bottom ring, top ring, bottom cap center, top cap
// center (2*segments + 2 vertices total).
func Cylinder(center Vec3, radius, height float32, segments int) ([]Vec3, []Face) {
	halfH := height / 2
	verts := make([]Vec3, 0, 2*segments+2)

	// Bottom ring then top ring; both rings share the same angular samples.
	for _, z := range [2]float32{center[2] - halfH, center[2] + halfH} {
		for i := 0; i < segments; i++ {
			theta := twoPi * float32(i) / float32(segments)
			verts = append(verts, Vec3{
				radius*math32.Cos(theta) + center[0],
				radius*math32.Sin(theta) + center[1],
				z,
			})
		}
	}
	idxCenterBottom := 2 * segments
	idxCenterTop := 2*segments + 1
	verts = append(verts,
		Vec3{center[0], center[1], center[2] - halfH},
		Vec3{center[0], center[1], center[2] + halfH},
	)

	faces := make([]Face, 0, 4*segments)
	// Cap fans.
	for i := 0; i < segments; i++ {
		faces = append(faces, Face{i, (i + 1) % segments, idxCenterBottom})
	}
	for i := 0; i < segments; i++ {
		faces = append(faces, Face{segments + i, segments + (i+1)%segments, idxCenterTop})
	}
	// Side quads, two triangles each, ring closed by the modulo.
	for i := 0; i < segments; i++ {
		v0 := i
		v1 := (i + 1) % segments
		v2 := segments + (i+1)%segments
		v3 := segments + i
		faces = append(faces, Face{v0, v1, v2}, Face{v0, v2, v3})
	}

	return verts, faces
}

// Cone returns a cone whose base circle of the given radius lies at
// center's Z plane and whose apex sits height above it. Vertex layout is
// base ring, apex, base cap center (segments + 2 vertices total).
func Cone(center Vec3, radius, height float32, segments int) ([]Vec3, []Face) {
	verts := make([]Vec3, 0, segments+2)
	for i := 0; i < segments; i++ {
		theta := twoPi * float32(i) / float32(segments)
		verts = append(verts, Vec3{
			radius*math32.Cos(theta) + center[0],
			radius*math32.Sin(theta) + center[1],
			center[2],
		})
	}
	idxApex := segments
	idxCenterBase := segments + 1
	verts = append(verts,
		Vec3{center[0], center[1], center[2] + height},
		Vec3{center[0], center[1], center[2]},
	)

	faces := make([]Face, 0, 2*segments)
	for i := 0; i < segments; i++ {
		faces = append(faces, Face{i, (i + 1) % segments, idxApex})
	}
	for i := 0; i < segments; i++ {
		faces = append(faces, Face{i, (i + 1) % segments, idxCenterBase})
	}

	return verts, faces
}

// Sphere returns a UV sphere of the given radius centered at center.
// Latitude rings run pole to pole and longitude samples include both 0 and
// 2π, so the seam column is duplicated rather than wrapped: (segments+1)²
// vertices, 2*segments² triangles. The duplicate seam is intentional; faces
// use adjacent grid indices with no modulo.
func Sphere(center Vec3, radius float32, segments int) ([]Vec3, []Face) {
	cols := segments + 1
	verts := make([]Vec3, 0, cols*cols)
	for i := 0; i <= segments; i++ {
		lat := math32.Pi * (-0.5 + float32(i)/float32(segments))
		for j := 0; j <= segments; j++ {
			lon := twoPi * float32(j) / float32(segments)
			verts = append(verts, Vec3{
				radius*math32.Cos(lat)*math32.Cos(lon) + center[0],
				radius*math32.Cos(lat)*math32.Sin(lon) + center[1],
				radius*math32.Sin(lat) + center[2],
			})
		}
	}

	faces := make([]Face, 0, 2*segments*segments)
	for i := 0; i < segments; i++ {
		for j := 0; j < segments; j++ {
			v0 := i*cols + j
			v1 := v0 + 1
			v2 := (i+1)*cols + j + 1
			v3 := (i+1)*cols + j
			faces = append(faces, Face{v0, v1, v2}, Face{v0, v2, v3})
		}
	}

	return verts, faces
}

// Torus returns a torus centered at center, lying in the XY plane: the tube
// of minorRadius sweeps a circle of majorRadius around the Z axis. Unlike
// the sphere, the torus is closed in both directions, so faces wrap both
// indices via modulo and no seam is duplicated: majorSegments*minorSegments
// vertices, 2*majorSegments*minorSegments triangles.
func Torus(center Vec3, majorRadius, minorRadius float32, majorSegments, minorSegments int) ([]Vec3, []Face) {
	verts := make([]Vec3, 0, majorSegments*minorSegments)
	for i := 0; i < majorSegments; i++ {
		phi := twoPi * float32(i) / float32(majorSegments)
		for j := 0; j < minorSegments; j++ {
			theta := twoPi * float32(j) / float32(minorSegments)
			ring := majorRadius + minorRadius*math32.Cos(theta)
			verts = append(verts, Vec3{
				ring*math32.Cos(phi) + center[0],
				ring*math32.Sin(phi) + center[1],
				minorRadius*math32.Sin(theta) + center[2],
			})
		}
	}

	faces := make([]Face, 0, 2*majorSegments*minorSegments)
	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			v0 := i*minorSegments + j
			v1 := i*minorSegments + (j+1)%minorSegments
			v2 := ((i+1)%majorSegments)*minorSegments + (j+1)%minorSegments
			v3 := ((i+1)%majorSegments)*minorSegments + j
			faces = append(faces, Face{v0, v1, v2}, Face{v0, v2, v3})
		}
	}

	return verts, faces
}
