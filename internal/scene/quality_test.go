package scene

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadQualityMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	assert.Equal(t, DefaultQuality(), LoadQuality())
}

func TestLoadQualityOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll("config", 0755))
	yaml := "sphere_segments: 32\ntorus_major_segments: 48\n"
	require.NoError(t, os.WriteFile(QualityPath, []byte(yaml), 0644))

	q := LoadQuality()
	assert.Equal(t, 32, q.SphereSegments)
	assert.Equal(t, 48, q.TorusMajorSegments)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, DefaultQuality().CylinderSegments, q.CylinderSegments)
	assert.Equal(t, DefaultQuality().TorusMinorSegments, q.TorusMinorSegments)
}

func TestLoadQualityInvalidFile(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll("config", 0755))
	require.NoError(t, os.WriteFile(QualityPath, []byte("{not yaml"), 0644))
	assert.Equal(t, DefaultQuality(), LoadQuality())
}

func TestLoadQualityRejectsNonPositive(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll("config", 0755))
	require.NoError(t, os.WriteFile(QualityPath, []byte("cone_segments: -3\n"), 0644))
	assert.Equal(t, DefaultQuality().ConeSegments, LoadQuality().ConeSegments)
}
