package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nordlicht/spectra/internal/core"
	"github.com/nordlicht/spectra/internal/geometry"
	"github.com/nordlicht/spectra/internal/material"
)

// plyVertex holds one decoded vertex's position, optional normal, and
// optional UV, in the order its properties appeared in the header.
type plyVertex struct {
	pos core.Vec3
	normal core.Vec3
	uv core.Vec2
}

// LoadPLY reads an ASCII PLY file of triangulated position(+normal)(+uv)
// vertices and returns MeshTriangles using mat for every face. It
// supports the common ASCII case and rejects anything else with a
// clear error rather than implementing the full binary-format
// variants of the PLY spec.
func LoadPLY(path string, mat material.Material) ([]*geometry.MeshTriangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: failed to open PLY file %q: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	vertexCount, faceCount := 0, 0
	var propNames []string
	haveNormals, haveUV := false, false
	inHeader := true
	currentElement := ""

	for inHeader && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "format":
			if len(fields) < 2 || fields[1] != "ascii" {
				return nil, fmt.Errorf("loaders: PLY file %q is not ASCII format (only ascii is supported)", path)
			}
		case "element":
			if len(fields) >= 2 {
				currentElement = fields[1]
			}
			if len(fields) >= 3 {
				n, _ := strconv.Atoi(fields[2])
				switch fields[1] {
				case "vertex":
					vertexCount = n
				case "face":
					faceCount = n
				}
			}
		case "property":
			// Only vertex properties describe the columns of a vertex
			// line; the face element's index list is read separately.
			if currentElement != "vertex" {
				break
			}
			name := fields[len(fields)-1]
			propNames = append(propNames, name)
			switch name {
			case "nx", "ny", "nz":
				haveNormals = true
			case "u", "v", "s", "t":
				haveUV = true
			}
		case "end_header":
			inHeader = false
		}
	}

	vertices := make([]plyVertex, 0, vertexCount)
	for i := 0; i < vertexCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("loaders: PLY file %q ended before %d vertices were read", path, vertexCount)
		}
		values := strings.Fields(scanner.Text())
		v, err := parsePLYVertex(values, propNames)
		if err != nil {
			return nil, fmt.Errorf("loaders: %q: vertex %d: %w", path, i, err)
		}
		vertices = append(vertices, v)
	}

	var triangles []*geometry.MeshTriangle
	for i := 0; i < faceCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("loaders: PLY file %q ended before %d faces were read", path, faceCount)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			return nil, fmt.Errorf("loaders: %q: face %d: expected a vertex count followed by indices", path, i)
		}
		n, _ := strconv.Atoi(fields[0])
		if n != 3 {
			return nil, fmt.Errorf("loaders: %q: face %d: only triangular faces are supported, got %d vertices", path, i, n)
		}
		idx := make([]int, 3)
		for k := 0; k < 3; k++ {
			v, err := strconv.Atoi(fields[1+k])
			if err != nil || v < 0 || v >= len(vertices) {
				return nil, fmt.Errorf("loaders: %q: face %d: invalid vertex index", path, i)
			}
			idx[k] = v
		}

		a, b, c := vertices[idx[0]], vertices[idx[1]], vertices[idx[2]]
		var n0, n1, n2 core.Vec3
		if haveNormals {
			n0, n1, n2 = a.normal, b.normal, c.normal
		} else {
			flat := b.pos.Subtract(a.pos).Cross(c.pos.Subtract(a.pos)).Normalize()
			n0, n1, n2 = flat, flat, flat
		}
		var uv0, uv1, uv2 core.Vec2
		if haveUV {
			uv0, uv1, uv2 = a.uv, b.uv, c.uv
		}

		triangles = append(triangles, geometry.NewMeshTriangle(a.pos, b.pos, c.pos, n0, n1, n2, uv0, uv1, uv2, mat))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: error reading PLY file %q: %w", path, err)
	}

	return triangles, nil
}

func parsePLYVertex(values, names []string) (plyVertex, error) {
	if len(values) < len(names) {
		return plyVertex{}, fmt.Errorf("expected %d properties, got %d", len(names), len(values))
	}
	var v plyVertex
	for i, name := range names {
		f, err := strconv.ParseFloat(values[i], 64)
		if err != nil {
			return plyVertex{}, fmt.Errorf("invalid value for property %q: %w", name, err)
		}
		switch name {
		case "x":
			v.pos.X = f
		case "y":
			v.pos.Y = f
		case "z":
			v.pos.Z = f
		case "nx":
			v.normal.X = f
		case "ny":
			v.normal.Y = f
		case "nz":
			v.normal.Z = f
		case "u", "s":
			v.uv.X = f
		case "v", "t":
			v.uv.Y = f
		}
	}
	return v, nil
}
