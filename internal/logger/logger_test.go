package logger

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAppendsToMemoryAndFile(t *testing.T) {
	chdir(t, t.TempDir())
	l := New()
	l.Log("hello")
	l.Logf("built %d meshes", 13)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "hello")
	assert.Contains(t, lines[1], "built 13 meshes")

	data, err := os.ReadFile(LogFilePath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
	assert.Contains(t, string(data), "built 13 meshes")
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Log("dropped")
	l.Logf("dropped %d", 1)
	assert.Nil(t, l.Lines())
}
