// Package loaders reads triangle meshes from disk and tessellates signed
// distance functions into meshes.
package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/geometry"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/log"
)

var logger = log.New("loaders")

// ErrUnsupportedFace is returned for faces with fewer than three vertices
// or with references that do not resolve.
var ErrUnsupportedFace = errors.New("loaders: unsupported face")

// ErrUnknownFormat is returned by LoadMesh for unrecognized file extensions
var ErrUnknownFormat = errors.New("loaders: unknown mesh format")

// meshData accumulates arrays while a file is parsed
type meshData struct {
	Vertices  []core.Vec3
	Normals   []core.Vec3
	TexCoords [][2]float64
	Indices   []int
}

// addPolygon splits a convex polygon into a triangle fan around its first vertex
func (d *meshData) addPolygon(polygon []int) {
	for i := 1; i+1 < len(polygon); i++ {
		d.Indices = append(d.Indices, polygon[0], polygon[i], polygon[i+1])
	}
}

func (d *meshData) toMesh(material core.Material) (*geometry.Mesh, error) {
	var normals []core.Vec3
	if len(d.Normals) == len(d.Vertices) {
		normals = d.Normals
	}
	mesh, err := geometry.NewMesh(d.Vertices, normals, d.Indices, material)
	if err != nil {
		return nil, err
	}
	if len(d.TexCoords) > 0 {
		if err := mesh.SetTexCoords(d.TexCoords); err != nil {
			return nil, err
		}
	}
	return mesh, nil
}

// LoadMesh reads an .obj or .ply file into a mesh with the given material
func LoadMesh(path string, material core.Material) (*geometry.Mesh, error) {
	var read func(io.Reader) (*meshData, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		read = readOBJ
	case ".ply":
		read = readPLY
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file: %w", err)
	}
	defer file.Close()

	data, err := read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	mesh, err := data.toMesh(material)
	if err != nil {
		return nil, fmt.Errorf("failed to build mesh from %s: %w", path, err)
	}

	logger.Infof("loaded %s: %d vertices, %d triangles", filepath.Base(path), len(mesh.Vertices), mesh.TriangleCount())
	return mesh, nil
}
