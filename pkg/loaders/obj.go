package loaders

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/geometry"
)

// LoadOBJ reads a Wavefront OBJ stream. Only v, vt, vn and f records are
// interpreted; faces are fan-triangulated and every distinct v/vt/vn triple
// becomes one mesh vertex.
func LoadOBJ(r io.Reader, material core.Material) (*geometry.Mesh, error) {
	data, err := readOBJ(r)
	if err != nil {
		return nil, err
	}
	return data.toMesh(material)
}

// objCorner identifies a face corner by zero-based array positions, -1 when absent
type objCorner struct {
	v, vt, vn int
}

func readOBJ(r io.Reader) (*meshData, error) {
	var positions, normals []core.Vec3
	var texCoords [][2]float64

	data := &meshData{}
	corners := make(map[objCorner]int)
	hasTexCoords, hasNormals := true, true

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v", "vn":
			vec, err := parseOBJFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			if fields[0] == "v" {
				positions = append(positions, core.NewVec3(vec[0], vec[1], vec[2]))
			} else {
				normals = append(normals, core.NewVec3(vec[0], vec[1], vec[2]).Normalize())
			}
		case "vt":
			uv, err := parseOBJFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			texCoords = append(texCoords, [2]float64{uv[0], uv[1]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: %w: %d vertices", lineNumber, ErrUnsupportedFace, len(fields)-1)
			}
			polygon := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				corner, err := parseOBJCorner(field, len(positions), len(texCoords), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNumber, err)
				}
				index, ok := corners[corner]
				if !ok {
					index = len(data.Vertices)
					corners[corner] = index
					data.Vertices = append(data.Vertices, positions[corner.v])
					hasTexCoords = hasTexCoords && corner.vt >= 0
					hasNormals = hasNormals && corner.vn >= 0
					if corner.vt >= 0 {
						data.TexCoords = append(data.TexCoords, texCoords[corner.vt])
					} else {
						data.TexCoords = append(data.TexCoords, [2]float64{})
					}
					if corner.vn >= 0 {
						data.Normals = append(data.Normals, normals[corner.vn])
					} else {
						data.Normals = append(data.Normals, core.Vec3{})
					}
				}
				polygon = append(polygon, index)
			}
			data.addPolygon(polygon)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ: %w", err)
	}

	// Attributes only count when every corner carries them
	if !hasTexCoords || len(data.Vertices) == 0 {
		data.TexCoords = nil
	}
	if !hasNormals || len(data.Vertices) == 0 {
		data.Normals = nil
	}
	return data, nil
}

func parseOBJFloats(fields []string, n int) ([]float64, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	values := make([]float64, n)
	for i := range values {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", fields[i])
		}
		values[i] = value
	}
	return values, nil
}

// parseOBJCorner decodes v, v/vt, v//vn or v/vt/vn. Negative references
// count back from the most recent record of their kind.
func parseOBJCorner(field string, nv, nvt, nvn int) (objCorner, error) {
	parts := strings.Split(field, "/")
	if len(parts) > 3 {
		return objCorner{}, fmt.Errorf("%w: %q", ErrUnsupportedFace, field)
	}

	corner := objCorner{v: -1, vt: -1, vn: -1}
	targets := []*int{&corner.v, &corner.vt, &corner.vn}
	counts := []int{nv, nvt, nvn}
	for i, part := range parts {
		if part == "" {
			if i == 0 {
				return objCorner{}, fmt.Errorf("%w: %q has no vertex", ErrUnsupportedFace, field)
			}
			continue
		}
		ref, err := strconv.Atoi(part)
		if err != nil {
			return objCorner{}, fmt.Errorf("%w: %q", ErrUnsupportedFace, field)
		}
		index := ref - 1
		if ref < 0 {
			index = counts[i] + ref
		}
		if ref == 0 || index < 0 || index >= counts[i] {
			return objCorner{}, fmt.Errorf("%w: reference %d out of range in %q", ErrUnsupportedFace, ref, field)
		}
		*targets[i] = index
	}
	return corner, nil
}
