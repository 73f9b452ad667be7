// Package query parses the interactive query line: four comma separated
// numbers, optionally surrounded by whitespace.
package query

import (
	"errors"
	"strings"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/geom"
)

var ErrInvalidFormat = errors.New("invalid input format")

// Parse rejects the whole line on any deviation: a missing or extra value, or
// a value that is not a finite decimal number once surrounding whitespace is
// trimmed.
func Parse(line string) (geom.Point, error) {
	var p geom.Point
	parts := strings.Split(strings.TrimRight(line, "\r\n"), ",")
	if len(parts) != geom.NumFeatures {
		return p, ErrInvalidFormat
	}
	for i, part := range parts {
		value, err := geom.ParseValue(part)
		if err != nil {
			return p, ErrInvalidFormat
		}
		p[i] = value
	}
	return p, nil
}
