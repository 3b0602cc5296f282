// Package viewer renders the built model in a raylib window with an orbit
// camera. The model is static, so flat shading is computed once up front and
// each frame only replays the shaded triangles.
package viewer

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"rocket-model/internal/figure"
	"rocket-model/internal/mesh"
)

const (
	gridExtent     = 10
	gridStep       = 1
	gridLineAlpha  = 60
	gridAxisAlpha  = 160
	cameraFovy     = 45
	cameraFitScale = 2.4 // eye distance as a multiple of the model radius
	orbitSpeed     = 0.005
	zoomSpeed      = 0.6
	pitchLimit     = 1.55 // just short of the poles
	minDistance    = 1.0
)

// Lighting for the flat shading pass: one directional light plus ambient.
var (
	lightDir       = [3]float32{0.45, 0.35, 0.82} // direction to light, roughly normalized
	ambient        = [3]float32{0.20, 0.22, 0.26}
	lightColor     = [3]float32{1.0, 0.98, 0.95}
	lightIntensity = float32(0.85)
)

// shadedTri is one triangle with its precomputed face color.
type shadedTri struct {
	a, b, c rl.Vector3
	col     rl.Color
}

// Viewer draws a mesh list with per-face flat shading and a Z-up orbit
// camera. Update handles mouse orbit/zoom; Draw renders between BeginMode3D
// and EndMode3D.
type Viewer struct {
	Camera      rl.Camera3D
	GridVisible bool

	tris   []shadedTri
	meshes int
	verts  int

	// Orbit state, spherical around target with Z up.
	target rl.Vector3
	yaw    float32
	pitch  float32
	dist   float32
}

// New shades the mesh list and sets up the camera from the figure's fixed
// eye/center/up, scaled so the model fits the view.
func New(meshes []mesh.Mesh) *Viewer {
	v := &Viewer{GridVisible: true}
	v.meshes = len(meshes)
	for i := range meshes {
		v.verts += meshes[i].VertexCount()
		v.shade(&meshes[i])
	}

	center := figure.CameraCenter
	v.target = rl.NewVector3(center[0], center[1], center[2])
	radius := modelRadius(meshes, center)
	if radius < 1 {
		radius = 1
	}

	eye := figure.CameraEye
	eyeLen := math32.Sqrt(eye[0]*eye[0] + eye[1]*eye[1] + eye[2]*eye[2])
	v.yaw = math32.Atan2(eye[1], eye[0])
	v.pitch = math32.Asin(eye[2] / eyeLen)
	v.dist = radius * cameraFitScale

	v.Camera.Up = rl.NewVector3(figure.CameraUp[0], figure.CameraUp[1], figure.CameraUp[2])
	v.Camera.Target = v.target
	v.Camera.Fovy = cameraFovy
	v.Camera.Projection = rl.CameraPerspective
	v.place()
	return v
}

// Stats returns mesh, vertex, and triangle counts for the debug overlay.
func (v *Viewer) Stats() (meshes, vertices, triangles int) {
	return v.meshes, v.verts, len(v.tris)
}

// shade appends one flat-shaded triangle per face. The face normal comes
// from the cross product of the edge vectors; shading is two-sided since
// the figure contract doesn't require consistent winding.
func (v *Viewer) shade(m *mesh.Mesh) {
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		n := faceNormal(a, b, c)
		ndl := math32.Abs(n[0]*lightDir[0] + n[1]*lightDir[1] + n[2]*lightDir[2])
		col := rl.Color{
			R: shadeChannel(m.Color.R, 0, ndl),
			G: shadeChannel(m.Color.G, 1, ndl),
			B: shadeChannel(m.Color.B, 2, ndl),
			A: m.Color.A,
		}
		if m.Opacity < 1 {
			col.A = uint8(float32(col.A) * m.Opacity)
		}
		v.tris = append(v.tris, shadedTri{
			a:   rl.NewVector3(a[0], a[1], a[2]),
			b:   rl.NewVector3(b[0], b[1], b[2]),
			c:   rl.NewVector3(c[0], c[1], c[2]),
			col: col,
		})
	}
}

// shadeChannel applies ambient + diffuse to one color channel.
func shadeChannel(base uint8, ch int, ndl float32) uint8 {
	f := ambient[ch] + ndl*lightColor[ch]*lightIntensity
	out := float32(base) * f
	if out > 255 {
		out = 255
	}
	return uint8(out)
}

// faceNormal returns the unit normal of triangle (a, b, c), or a zero vector
// for degenerate triangles.
func faceNormal(a, b, c mesh.Vec3) [3]float32 {
	e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	n := [3]float32{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
	norm := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if norm == 0 {
		return [3]float32{}
	}
	return [3]float32{n[0] / norm, n[1] / norm, n[2] / norm}
}

// modelRadius returns the largest vertex distance from center.
func modelRadius(meshes []mesh.Mesh, center [3]float32) float32 {
	var r2 float32
	for i := range meshes {
		for _, p := range meshes[i].Vertices {
			dx, dy, dz := p[0]-center[0], p[1]-center[1], p[2]-center[2]
			if d := dx*dx + dy*dy + dz*dz; d > r2 {
				r2 = d
			}
		}
	}
	return math32.Sqrt(r2)
}

// place recomputes the camera position from the orbit state.
func (v *Viewer) place() {
	cp := math32.Cos(v.pitch)
	v.Camera.Position = rl.NewVector3(
		v.target.X+v.dist*cp*math32.Cos(v.yaw),
		v.target.Y+v.dist*cp*math32.Sin(v.yaw),
		v.target.Z+v.dist*math32.Sin(v.pitch),
	)
}

// Update applies mouse input: left-drag orbits, wheel zooms.
func (v *Viewer) Update() {
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		v.yaw -= delta.X * orbitSpeed
		v.pitch += delta.Y * orbitSpeed
		if v.pitch > pitchLimit {
			v.pitch = pitchLimit
		}
		if v.pitch < -pitchLimit {
			v.pitch = -pitchLimit
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.dist -= wheel * zoomSpeed
		if v.dist < minDistance {
			v.dist = minDistance
		}
	}
	v.place()
}

// Draw renders the grid and the shaded triangles. Triangles are drawn in
// mesh-list order; culling is disabled because shading is two-sided.
func (v *Viewer) Draw() {
	rl.BeginMode3D(v.Camera)
	if v.GridVisible {
		v.drawGrid()
	}
	rl.DisableBackfaceCulling()
	for _, t := range v.tris {
		rl.DrawTriangle3D(t.a, t.b, t.c, t.col)
	}
	rl.EnableBackfaceCulling()
	rl.EndMode3D()
}

// drawGrid draws a reference grid on the XY ground plane (the model is
// Z-up), with brighter lines on the axes.
func (v *Viewer) drawGrid() {
	for i := -gridExtent; i <= gridExtent; i += gridStep {
		alpha := uint8(gridLineAlpha)
		if i == 0 {
			alpha = gridAxisAlpha
		}
		col := rl.Color{R: 130, G: 130, B: 130, A: alpha}
		fi := float32(i)
		rl.DrawLine3D(rl.NewVector3(fi, -gridExtent, 0), rl.NewVector3(fi, gridExtent, 0), col)
		rl.DrawLine3D(rl.NewVector3(-gridExtent, fi, 0), rl.NewVector3(gridExtent, fi, 0), col)
	}
}
