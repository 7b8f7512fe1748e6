package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads a whitespace-delimited TSPLIB-style instance file from path
// and builds an Instance with k candidate neighbors per node.
//
// Recognized header keys: NAME, DIMENSION, EDGE_WEIGHT_TYPE. Only
// EDGE_WEIGHT_TYPE EUC_2D is supported. NODE_COORD_SECTION introduces
// DIMENSION lines of "<index> <x> <y>" with 1-based indices, stored 0-based.
//
// Errors are strict sentinels from this package (ErrIO, ErrMalformedHeader,
// ErrUnsupportedEdgeWeightType, ErrDimensionMismatch, ErrInvalidNodeIndex,
// ErrEmptyInstance); the driver is expected to skip instances that fail to
// load rather than abort the whole batch.
func Load(path string, k int) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, err)
	}
	defer f.Close()

	return parse(f, k)
}

// parse performs the actual header/section parsing; split out from Load so
// tests can exercise it against an in-memory reader.
func parse(r io.Reader, k int) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		name           string
		dimension      int
		edgeWeightType string
		inCoordSection bool
		coords         []Point
		seen           []bool
	)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if inCoordSection {
			if line == "EOF" {
				break
			}
			fields := strings.Fields(line)
			if len(fields) != 3 {
				// A non-triple line ends the coordinate section (e.g. a
				// trailing "EOF" without the literal token, or a new section
				// marker this reader does not recognize).
				inCoordSection = false
			} else {
				idx, errIdx := strconv.Atoi(fields[0])
				x, errX := strconv.ParseFloat(fields[1], 64)
				y, errY := strconv.ParseFloat(fields[2], 64)
				if errIdx != nil || errX != nil || errY != nil {
					return nil, fmt.Errorf("%w: bad NODE_COORD_SECTION line %q", ErrMalformedHeader, line)
				}
				if idx < 1 || idx > dimension {
					return nil, fmt.Errorf("%w: index %d (dimension %d)", ErrInvalidNodeIndex, idx, dimension)
				}
				coords[idx-1] = Point{X: x, Y: y}
				seen[idx-1] = true

				continue
			}
		}

		if line == "NODE_COORD_SECTION" {
			if dimension <= 0 {
				return nil, fmt.Errorf("%w: NODE_COORD_SECTION before DIMENSION", ErrMalformedHeader)
			}
			coords = make([]Point, dimension)
			seen = make([]bool, dimension)
			inCoordSection = true

			continue
		}

		key, value, ok := splitHeader(line)
		if !ok {
			// Unrecognized, non-header, non-section line: ignore (forward
			// compatibility with TSPLIB keys this reader does not need).
			continue
		}

		switch key {
		case "NAME":
			name = value
		case "DIMENSION":
			d, errD := strconv.Atoi(value)
			if errD != nil {
				return nil, fmt.Errorf("%w: DIMENSION %q", ErrMalformedHeader, value)
			}
			dimension = d
		case "EDGE_WEIGHT_TYPE":
			edgeWeightType = value
		}
	}
	if errSc := sc.Err(); errSc != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, errSc)
	}

	if edgeWeightType != "" && edgeWeightType != "EUC_2D" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEdgeWeightType, edgeWeightType)
	}
	if dimension <= 0 || len(coords) == 0 {
		return nil, ErrEmptyInstance
	}
	if len(coords) != dimension {
		return nil, ErrDimensionMismatch
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: node %d missing from NODE_COORD_SECTION", ErrDimensionMismatch, i+1)
		}
	}

	if name == "" {
		name = "instance"
	}

	return New(name, coords, k)
}

// splitHeader parses a "KEY : value" or "KEY: value" line into (key, value).
// Returns ok=false if the line does not look like a header.
func splitHeader(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	value = strings.TrimSpace(line[idx+1:])
	if key == "" {
		return "", "", false
	}

	return key, value, true
}
