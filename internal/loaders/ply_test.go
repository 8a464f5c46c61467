package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalPLY = `ply
format ascii 1.0
element vertex 3
property float x
property float y
property float z
element face 1
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
0 1 0
3 0 1 2
`

const plyWithNormalsAndUV = `ply
format ascii 1.0
element vertex 3
property float x
property float y
property float z
property float nx
property float ny
property float nz
property float u
property float v
element face 1
property list uchar int vertex_indices
end_header
0 0 0 0 0 1 0 0
1 0 0 0 0 1 1 0
0 1 0 0 0 1 0 1
3 0 1 2
`

func writeTempPLY(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.ply")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPLY_ParsesFlatTriangleAndComputesFaceNormal(t *testing.T) {
	path := writeTempPLY(t, minimalPLY)
	triangles, err := LoadPLY(path, nil)
	require.NoError(t, err)
	require.Len(t, triangles, 1)

	tri := triangles[0]
	assert.InDelta(t, 1, tri.N0.Z, 1e-9) // CCW winding in the XY plane faces +Z
}

func TestLoadPLY_ParsesNormalsAndUVs(t *testing.T) {
	path := writeTempPLY(t, plyWithNormalsAndUV)
	triangles, err := LoadPLY(path, nil)
	require.NoError(t, err)
	require.Len(t, triangles, 1)

	tri := triangles[0]
	assert.True(t, tri.N0.Equals(tri.N1))
	assert.InDelta(t, 0, tri.UV0.X, 1e-9)
	assert.InDelta(t, 1, tri.UV1.X, 1e-9)
}

func TestLoadPLY_RejectsBinaryFormat(t *testing.T) {
	path := writeTempPLY(t, "ply\nformat binary_little_endian 1.0\nend_header\n")
	_, err := LoadPLY(path, nil)
	assert.Error(t, err)
}

func TestLoadPLY_RejectsNonTriangularFaces(t *testing.T) {
	badFace := `ply
format ascii 1.0
element vertex 4
property float x
property float y
property float z
element face 1
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
1 1 0
0 1 0
4 0 1 2 3
`
	path := writeTempPLY(t, badFace)
	_, err := LoadPLY(path, nil)
	assert.Error(t, err)
}

func TestLoadPLY_MissingFileReturnsError(t *testing.T) {
	_, err := LoadPLY(filepath.Join(t.TempDir(), "does-not-exist.ply"), nil)
	assert.Error(t, err)
}
