package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rehexed/rehex"
	"github.com/katalvlaran/rehexed/tilegraph"
)

// execute runs the root command with args and returns stdout and the log.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

// field returns the value printed for key by the build command.
func field(t *testing.T, out, key string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		f := strings.Fields(line)
		if len(f) == 2 && f[0] == key {
			return f[1]
		}
	}
	t.Fatalf("no %q in output:\n%s", key, out)
	return ""
}

func TestBuildCommand(t *testing.T) {
	out, logs, err := execute(t, "build", "-n", "2", "--shuffle-seed", "3", "-w", "2")
	require.NoError(t, err)

	assert.Equal(t, "92", field(t, out, "vertices"))
	assert.Equal(t, "180", field(t, out, "triangles"))
	assert.Equal(t, "12", field(t, out, "pentagons"))
	assert.Equal(t, "80", field(t, out, "hexagons"))
	assert.Equal(t, "270", field(t, out, "edges"))
	assert.Equal(t, "2", field(t, out, "euler"))
	assert.Equal(t, "1", field(t, out, "components"))
	assert.Contains(t, logs, "Built 92 tiles")
	assert.NotContains(t, logs, "scanned triangles", "debug lines need --verbose")
}

func TestBuildCommand_Verbose(t *testing.T) {
	_, logs, err := execute(t, "build", "-n", "1", "-v")
	require.NoError(t, err)
	assert.Contains(t, logs, "generated mesh")
	assert.Contains(t, logs, "scanned triangles")
	assert.Contains(t, logs, "finalized tiles")
}

func TestBuildCommand_OtherBases(t *testing.T) {
	out, _, err := execute(t, "build", "--base", "Octahedron", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "18", field(t, out, "vertices"))
	assert.Equal(t, "0", field(t, out, "pentagons"))
	assert.Equal(t, "2", field(t, out, "euler"))

	out, _, err = execute(t, "build", "--base", "tetrahedron", "-n", "0")
	require.NoError(t, err)
	assert.Equal(t, "4", field(t, out, "vertices"))

	_, _, err = execute(t, "build", "--base", "octahedron", "--min-degree", "5")
	require.ErrorIs(t, err, rehex.ErrIncomplete)
}

func TestBuildCommand_InvalidFlags(t *testing.T) {
	_, _, err := execute(t, "build", "--base", "cube")
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = execute(t, "build", "-w", "0")
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = execute(t, "build", "--subdivisions=-1")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestBuildCommand_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rehexed.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[mesh]
base = "icosahedron"
subdivisions = 1

[build]
workers = 3
strict = true
`), 0o600))

	out, _, err := execute(t, "--config", path, "build")
	require.NoError(t, err)
	assert.Equal(t, "42", field(t, out, "vertices"))

	// Flags win over the file.
	out, _, err = execute(t, "--config", path, "build", "-n", "0")
	require.NoError(t, err)
	assert.Equal(t, "12", field(t, out, "vertices"))
}

func TestNeighborsCommand(t *testing.T) {
	out, _, err := execute(t, "neighbors", "-n", "0", "0", "11")
	require.NoError(t, err)
	assert.Equal(t, "0: [1 2 3 4 5]\n11: [6 10 9 8 7]\n", out)

	_, _, err = execute(t, "neighbors", "-n", "0", "12")
	require.ErrorIs(t, err, tilegraph.ErrVertexOutOfRange)

	_, _, err = execute(t, "neighbors", "x")
	require.Error(t, err)
}

func TestRingCommand(t *testing.T) {
	out, _, err := execute(t, "ring", "-n", "0", "0", "--radius", "1")
	require.NoError(t, err)
	assert.Equal(t, "5 tiles at 1 from 0: [1 2 3 4 5]\n", out)

	out, _, err = execute(t, "ring", "-n", "0", "0", "-r", "3")
	require.NoError(t, err)
	assert.Equal(t, "1 tiles at 3 from 0: [11]\n", out)
}

func TestPathCommand(t *testing.T) {
	out, _, err := execute(t, "path", "-n", "0", "0", "11")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "3 steps: [0 "), out)
	assert.True(t, strings.HasSuffix(out, " 11]\n"), out)
}

func TestCancelledContext(t *testing.T) {
	var out, logs bytes.Buffer
	root := New(&out, &logs, LogInfo).RootCommand()
	root.SetArgs([]string{"build", "-n", "3"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := root.ExecuteContext(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
