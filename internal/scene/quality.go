package scene

import (
	"os"

	"gopkg.in/yaml.v3"
)

// QualityPath is the path to the optional tessellation config, relative to
// the process working directory.
const QualityPath = "config/quality.yaml"

// Quality holds the segment counts used when tessellating curved primitives.
// It tunes density only; the scene graph itself is fixed in code.
type Quality struct {
	CylinderSegments   int `yaml:"cylinder_segments"`
	ConeSegments       int `yaml:"cone_segments"`
	SphereSegments     int `yaml:"sphere_segments"`
	TorusMajorSegments int `yaml:"torus_major_segments"`
	TorusMinorSegments int `yaml:"torus_minor_segments"`
}

// DefaultQuality returns the segment counts of the reference model.
func DefaultQuality() Quality {
	return Quality{
		CylinderSegments:   20,
		ConeSegments:       20,
		SphereSegments:     20,
		TorusMajorSegments: 30,
		TorusMinorSegments: 15,
	}
}

// LoadQuality reads config/quality.yaml. If the file is missing or invalid,
// returns DefaultQuality() and does not create a file. Fields left zero or
// negative in the file keep their defaults.
func LoadQuality() Quality {
	q := DefaultQuality()
	data, err := os.ReadFile(QualityPath)
	if err != nil {
		return q
	}
	var in Quality
	if err := yaml.Unmarshal(data, &in); err != nil {
		return q
	}
	if in.CylinderSegments > 0 {
		q.CylinderSegments = in.CylinderSegments
	}
	if in.ConeSegments > 0 {
		q.ConeSegments = in.ConeSegments
	}
	if in.SphereSegments > 0 {
		q.SphereSegments = in.SphereSegments
	}
	if in.TorusMajorSegments > 0 {
		q.TorusMajorSegments = in.TorusMajorSegments
	}
	if in.TorusMinorSegments > 0 {
		q.TorusMinorSegments = in.TorusMinorSegments
	}
	return q
}
