package geom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrNotReal = errors.New("not a real number")

// ParseValue parses one feature value written in decimal notation, with
// optional surrounding whitespace. NaN, infinities and hexadecimal literals
// are rejected.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "xXpP_") {
		return 0, fmt.Errorf("%w: %q", ErrNotReal, s)
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotReal, s)
	}
	return value, nil
}
