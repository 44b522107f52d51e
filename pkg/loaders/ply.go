package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/core"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/geometry"
)

// plyProperty is a property declaration from a PLY header
type plyProperty struct {
	Name     string
	Type     string // Scalar type, or element type of a list
	IsList   bool
	ListType string // Type of the list length
}

// plyElement is an element declaration with its properties
type plyElement struct {
	Name       string
	Count      int
	Properties []plyProperty
}

// plyHeader is the parsed header of a PLY file
type plyHeader struct {
	Format   string // "ascii", "binary_little_endian" or "binary_big_endian"
	Elements []plyElement
}

// readPLY parses a PLY stream into vertex positions, optional normals and
// triangle indices. Polygons are split into triangle fans; properties other
// than positions, normals and vertex indices are skipped.
func readPLY(r io.Reader) (*meshData, error) {
	reader := bufio.NewReader(r)
	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyValueReader
	switch header.Format {
	case "ascii":
		scanner := bufio.NewScanner(reader)
		scanner.Split(bufio.ScanWords)
		values = &plyASCIIReader{scanner: scanner}
	case "binary_little_endian":
		values = &plyBinaryReader{reader: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &plyBinaryReader{reader: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %q", header.Format)
	}

	data := &meshData{}
	for _, element := range header.Elements {
		switch element.Name {
		case "vertex":
			err = readPLYVertices(values, element, data)
		case "face":
			err = readPLYFaces(values, element, data)
		default:
			err = skipPLYElement(values, element)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read PLY %s data: %w", element.Name, err)
		}
	}

	return data, nil
}

func parsePLYHeader(reader *bufio.Reader) (*plyHeader, error) {
	header := &plyHeader{}

	magic, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(magic) != "ply" {
		return nil, fmt.Errorf("missing ply magic number")
	}

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("header ended before end_header: %w", err)
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "end_header":
			return header, nil
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line %q", strings.TrimSpace(line))
			}
			header.Format = parts[1]
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line %q", strings.TrimSpace(line))
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, plyElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property declared before any element")
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			element := &header.Elements[len(header.Elements)-1]
			element.Properties = append(element.Properties, prop)
		}
	}
}

func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) >= 4 && parts[0] == "list" {
		return plyProperty{IsList: true, ListType: parts[1], Type: parts[2], Name: parts[3]}, nil
	}
	if len(parts) >= 2 && parts[0] != "list" {
		return plyProperty{Type: parts[0], Name: parts[1]}, nil
	}
	return plyProperty{}, fmt.Errorf("invalid property definition %q", strings.Join(parts, " "))
}

func readPLYVertices(values plyValueReader, element plyElement, data *meshData) error {
	hasNormals := false
	for _, prop := range element.Properties {
		if prop.Name == "nx" {
			hasNormals = true
		}
	}

	for i := 0; i < element.Count; i++ {
		var position, normal core.Vec3
		for _, prop := range element.Properties {
			if prop.IsList {
				if err := skipPLYList(values, prop); err != nil {
					return err
				}
				continue
			}
			value, err := values.Scalar(prop.Type)
			if err != nil {
				return fmt.Errorf("vertex %d: %w", i, err)
			}
			switch prop.Name {
			case "x":
				position.X = value
			case "y":
				position.Y = value
			case "z":
				position.Z = value
			case "nx":
				normal.X = value
			case "ny":
				normal.Y = value
			case "nz":
				normal.Z = value
			}
		}
		data.Vertices = append(data.Vertices, position)
		if hasNormals {
			data.Normals = append(data.Normals, normal)
		}
	}
	return nil
}

func readPLYFaces(values plyValueReader, element plyElement, data *meshData) error {
	for i := 0; i < element.Count; i++ {
		for _, prop := range element.Properties {
			if !prop.IsList || (prop.Name != "vertex_indices" && prop.Name != "vertex_index") {
				if err := skipPLYProperty(values, prop); err != nil {
					return err
				}
				continue
			}

			count, err := values.Scalar(prop.ListType)
			if err != nil {
				return fmt.Errorf("face %d: %w", i, err)
			}
			if count < 3 {
				return fmt.Errorf("%w: face %d has %d vertices", ErrUnsupportedFace, i, int(count))
			}
			polygon := make([]int, int(count))
			for j := range polygon {
				index, err := values.Scalar(prop.Type)
				if err != nil {
					return fmt.Errorf("face %d: %w", i, err)
				}
				polygon[j] = int(index)
			}
			data.addPolygon(polygon)
		}
	}
	return nil
}

func skipPLYElement(values plyValueReader, element plyElement) error {
	for i := 0; i < element.Count; i++ {
		for _, prop := range element.Properties {
			if err := skipPLYProperty(values, prop); err != nil {
				return err
			}
		}
	}
	return nil
}

func skipPLYProperty(values plyValueReader, prop plyProperty) error {
	if prop.IsList {
		return skipPLYList(values, prop)
	}
	_, err := values.Scalar(prop.Type)
	return err
}

func skipPLYList(values plyValueReader, prop plyProperty) error {
	count, err := values.Scalar(prop.ListType)
	if err != nil {
		return err
	}
	for i := 0; i < int(count); i++ {
		if _, err := values.Scalar(prop.Type); err != nil {
			return err
		}
	}
	return nil
}

// plyValueReader decodes one scalar of a PLY type from the body
type plyValueReader interface {
	Scalar(dataType string) (float64, error)
}

type plyASCIIReader struct {
	scanner *bufio.Scanner
}

func (r *plyASCIIReader) Scalar(dataType string) (float64, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(r.scanner.Text(), 64)
}

type plyBinaryReader struct {
	reader io.Reader
	order  binary.ByteOrder
	buf    [8]byte
}

func (r *plyBinaryReader) Scalar(dataType string) (float64, error) {
	size := plyTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	b := r.buf[:size]
	if _, err := io.ReadFull(r.reader, b); err != nil {
		return 0, err
	}

	switch dataType {
	case "char", "int8":
		return float64(int8(b[0])), nil
	case "uchar", "uint8":
		return float64(b[0]), nil
	case "short", "int16":
		return float64(int16(r.order.Uint16(b))), nil
	case "ushort", "uint16":
		return float64(r.order.Uint16(b)), nil
	case "int", "int32":
		return float64(int32(r.order.Uint32(b))), nil
	case "uint", "uint32":
		return float64(r.order.Uint32(b)), nil
	case "float", "float32":
		return float64(math.Float32frombits(r.order.Uint32(b))), nil
	default:
		return math.Float64frombits(r.order.Uint64(b)), nil
	}
}

// plyTypeSize returns the size in bytes of a PLY data type, zero if unknown
func plyTypeSize(dataType string) int {
	switch dataType {
	case "char", "int8", "uchar", "uint8":
		return 1
	case "short", "int16", "ushort", "uint16":
		return 2
	case "int", "int32", "uint", "uint32", "float", "float32":
		return 4
	case "double", "float64":
		return 8
	default:
		return 0
	}
}

// LoadPLY reads an ASCII or binary PLY stream into a mesh
func LoadPLY(r io.Reader, material core.Material) (*geometry.Mesh, error) {
	data, err := readPLY(r)
	if err != nil {
		return nil, err
	}
	return data.toMesh(material)
}
