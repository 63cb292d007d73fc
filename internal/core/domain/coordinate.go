package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Coordinate identifies a single third-party artifact requirement in
// "group:artifact:version" form.
type Coordinate struct {
	Group    string
	Artifact string
	Version  string
}

// ParseCoordinate parses a "group:artifact:version" string.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Coordinate{}, zerr.With(ErrInvalidCoordinate, "coordinate", s)
	}
	for _, part := range parts {
		if part == "" {
			return Coordinate{}, zerr.With(ErrInvalidCoordinate, "coordinate", s)
		}
	}
	return Coordinate{Group: parts[0], Artifact: parts[1], Version: parts[2]}, nil
}

// ParseCoordinates parses a list of coordinate strings, preserving order.
func ParseCoordinates(specs []string) ([]Coordinate, error) {
	coords := make([]Coordinate, 0, len(specs))
	for _, spec := range specs {
		coord, err := ParseCoordinate(spec)
		if err != nil {
			return nil, err
		}
		coords = append(coords, coord)
	}
	return coords, nil
}

// String returns the canonical "group:artifact:version" form.
func (c Coordinate) String() string {
	return c.Group + ":" + c.Artifact + ":" + c.Version
}
