// Package figure assembles built meshes into a renderable figure: flattened
// coordinate and face-index arrays per mesh plus camera and layout settings.
// The JSON form follows the plotly mesh3d schema, so the figure can be
// embedded in a host page exactly like the reference model.
package figure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"rocket-model/internal/mesh"
)

// Camera and layout constants for the rocket model: the eye looks slightly
// down at the hull, the look-at center sits mid-body, and Z is up.
var (
	CameraEye    = [3]float32{1.8, 1.8, 1.0}
	CameraCenter = [3]float32{0, 0, 3.0}
	CameraUp     = [3]float32{0, 0, 1}
)

const (
	figureTitle   = "3D Rocket Model"
	transparentBG = "rgba(0,0,0,0)"
)

// Trace is one mesh in figure form: coordinates flattened into x/y/z arrays
// and faces into parallel i/j/k index arrays.
type Trace struct {
	Type        string    `json:"type"`
	Name        string    `json:"name,omitempty"`
	X           []float32 `json:"x"`
	Y           []float32 `json:"y"`
	Z           []float32 `json:"z"`
	I           []int     `json:"i"`
	J           []int     `json:"j"`
	K           []int     `json:"k"`
	Color       string    `json:"color"`
	Opacity     float32   `json:"opacity"`
	FlatShading bool      `json:"flatshading"`
}

// Vec is a camera vector in layout form.
type Vec struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Axis hides one scene axis entirely.
type Axis struct {
	ShowBackground bool `json:"showbackground"`
	ShowTickLabels bool `json:"showticklabels"`
	ZeroLine       bool `json:"zeroline"`
	Visible        bool `json:"visible"`
}

// Camera holds the eye position, look-at center, and up vector.
type Camera struct {
	Eye    Vec `json:"eye"`
	Center Vec `json:"center"`
	Up     Vec `json:"up"`
}

// SceneLayout configures the 3D scene: hidden axes, real-proportion aspect
// mode, and the camera.
type SceneLayout struct {
	XAxis      Axis   `json:"xaxis"`
	YAxis      Axis   `json:"yaxis"`
	ZAxis      Axis   `json:"zaxis"`
	AspectMode string `json:"aspectmode"`
	Camera     Camera `json:"camera"`
}

// Margin is the figure margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	B int `json:"b"`
	T int `json:"t"`
}

// Layout holds everything around the traces.
type Layout struct {
	Title        string      `json:"title"`
	Scene        SceneLayout `json:"scene"`
	Margin       Margin      `json:"margin"`
	PaperBGColor string      `json:"paper_bgcolor"`
	PlotBGColor  string      `json:"plot_bgcolor"`
}

// Figure is the complete renderable figure.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// New assembles the mesh list into a figure. Trace order preserves mesh
// order; the layout uses the fixed rocket camera, hides all axes, keeps real
// proportions (aspectmode "data"), and makes the background transparent.
func New(meshes []mesh.Mesh) *Figure {
	traces := make([]Trace, 0, len(meshes))
	for i := range meshes {
		traces = append(traces, newTrace(&meshes[i]))
	}
	hidden := Axis{} // all fields false: no background, no labels, invisible
	return &Figure{
		Data: traces,
		Layout: Layout{
			Title: figureTitle,
			Scene: SceneLayout{
				XAxis:      hidden,
				YAxis:      hidden,
				ZAxis:      hidden,
				AspectMode: "data",
				Camera: Camera{
					Eye:    Vec{CameraEye[0], CameraEye[1], CameraEye[2]},
					Center: Vec{CameraCenter[0], CameraCenter[1], CameraCenter[2]},
					Up:     Vec{CameraUp[0], CameraUp[1], CameraUp[2]},
				},
			},
			Margin:       Margin{L: 0, R: 0, B: 0, T: 30},
			PaperBGColor: transparentBG,
			PlotBGColor:  transparentBG,
		},
	}
}

// newTrace flattens one mesh.
func newTrace(m *mesh.Mesh) Trace {
	t := Trace{
		Type:        "mesh3d",
		Name:        m.Name,
		X:           make([]float32, 0, len(m.Vertices)),
		Y:           make([]float32, 0, len(m.Vertices)),
		Z:           make([]float32, 0, len(m.Vertices)),
		I:           make([]int, 0, len(m.Faces)),
		J:           make([]int, 0, len(m.Faces)),
		K:           make([]int, 0, len(m.Faces)),
		Color:       cssColor(m.Color),
		Opacity:     m.Opacity,
		FlatShading: m.FlatShading,
	}
	for _, v := range m.Vertices {
		t.X = append(t.X, v[0])
		t.Y = append(t.Y, v[1])
		t.Z = append(t.Z, v[2])
	}
	for _, f := range m.Faces {
		t.I = append(t.I, f[0])
		t.J = append(t.J, f[1])
		t.K = append(t.K, f[2])
	}
	return t
}

// cssColor renders an RGBA color as a CSS color string.
func cssColor(c mesh.Color) string {
	if c.A == 255 {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

// JSON serializes the figure for embedding in a host page.
func (f *Figure) JSON() ([]byte, error) {
	return json.Marshal(f)
}

// WriteFile serializes the figure and writes it to path, creating parent
// directories as needed.
func (f *Figure) WriteFile(path string) error {
	data, err := json.MarshalIndent(f, "", "\t")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
