package geometry

import (
	"errors"
	"fmt"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
)

// ErrBadMeshIndices is returned when a mesh index array is malformed
var ErrBadMeshIndices = errors.New("geometry: malformed mesh indices")

// Mesh stores triangles as shared vertex, normal and index arrays. Its
// triangles are lightweight handles into these arrays, so an acceleration
// structure can reference one triangle from many leaves without copying it.
type Mesh struct {
	Vertices  []core.Vec3
	Normals   []core.Vec3 // Optional per-vertex normals, same length as Vertices
	TexCoords [][2]float64
	Indices   []int // Three consecutive indices per triangle
	Material  core.Material

	triangles []core.Intersectable
	bbox      core.AABB
}

// NewMesh validates the arrays and builds the triangle handles
func NewMesh(vertices, normals []core.Vec3, indices []int, material core.Material) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices is not a multiple of 3", ErrBadMeshIndices, len(indices))
	}
	if normals != nil && len(normals) != len(vertices) {
		return nil, fmt.Errorf("%w: %d normals for %d vertices", ErrBadMeshIndices, len(normals), len(vertices))
	}
	for i, index := range indices {
		if index < 0 || index >= len(vertices) {
			return nil, fmt.Errorf("%w: index %d at position %d out of range", ErrBadMeshIndices, index, i)
		}
	}

	m := &Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
		Material: material,
		bbox:     core.EmptyAABB(),
	}

	m.triangles = make([]core.Intersectable, len(indices)/3)
	for i := range m.triangles {
		tri := &MeshTriangle{mesh: m, index: i}
		m.triangles[i] = tri
		m.bbox = m.bbox.Union(tri.BoundingBox())
	}

	return m, nil
}

// SetTexCoords attaches per-vertex texture coordinates
func (m *Mesh) SetTexCoords(texCoords [][2]float64) error {
	if len(texCoords) != len(m.Vertices) {
		return fmt.Errorf("%w: %d texture coordinates for %d vertices", ErrBadMeshIndices, len(texCoords), len(m.Vertices))
	}
	m.TexCoords = texCoords
	return nil
}

// Primitives returns one handle per triangle
func (m *Mesh) Primitives() []core.Intersectable {
	return m.triangles
}

// TriangleCount returns the number of triangles in this mesh
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Intersect scans all triangles; wrap the mesh in an accelerator for speed
func (m *Mesh) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	return nearestHit(m.triangles, ray)
}

// BoundingBox returns the box around all triangles
func (m *Mesh) BoundingBox() core.AABB {
	return m.bbox
}

// MeshTriangle is a triangle of a Mesh, identified by its index
type MeshTriangle struct {
	mesh  *Mesh
	index int
}

func (t *MeshTriangle) vertexIndices() (int, int, int) {
	i := t.index * 3
	return t.mesh.Indices[i], t.mesh.Indices[i+1], t.mesh.Indices[i+2]
}

// Intersect tests the ray against the triangle. With vertex normals the hit
// carries the interpolated normal, otherwise the face normal.
func (t *MeshTriangle) Intersect(ray core.Ray) (*core.HitRecord, bool) {
	i0, i1, i2 := t.vertexIndices()
	v0, v1, v2 := t.mesh.Vertices[i0], t.mesh.Vertices[i1], t.mesh.Vertices[i2]

	tHit, u, v, ok := intersectTriangle(ray, v0, v1, v2)
	if !ok {
		return nil, false
	}

	var normal core.Vec3
	if t.mesh.Normals != nil {
		w := 1 - u - v
		normal = t.mesh.Normals[i0].Normalize().Multiply(w).
			Add(t.mesh.Normals[i1].Normalize().Multiply(u)).
			Add(t.mesh.Normals[i2].Normalize().Multiply(v)).
			Normalize()
	} else {
		normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	}

	hit := core.NewHitRecord(ray, tHit, normal, t, t.mesh.Material)
	hit.U, hit.V = u, v
	if t.mesh.TexCoords != nil {
		w := 1 - u - v
		tc0, tc1, tc2 := t.mesh.TexCoords[i0], t.mesh.TexCoords[i1], t.mesh.TexCoords[i2]
		hit.U = w*tc0[0] + u*tc1[0] + v*tc2[0]
		hit.V = w*tc0[1] + u*tc1[1] + v*tc2[1]
	}
	return hit, true
}

// BoundingBox returns the box of the three vertices
func (t *MeshTriangle) BoundingBox() core.AABB {
	i0, i1, i2 := t.vertexIndices()
	return core.NewAABBFromPoints(t.mesh.Vertices[i0], t.mesh.Vertices[i1], t.mesh.Vertices[i2])
}

// Index returns the position of this triangle in the mesh
func (t *MeshTriangle) Index() int {
	return t.index
}
