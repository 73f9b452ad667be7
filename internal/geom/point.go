package geom

import (
	"fmt"
	"strconv"
	"strings"
)

// NumFeatures is the number of real values describing every observation and query.
const NumFeatures = 4

type Point [NumFeatures]float64

// New copies vec into a Point. vec must hold exactly NumFeatures values.
func New(vec []float64) (Point, error) {
	var p Point
	if len(vec) != NumFeatures {
		return p, fmt.Errorf("%w: got %d, expected %d", ErrDimNotEqual, len(vec), NumFeatures)
	}
	copy(p[:], vec)
	return p, nil
}

func (v Point) Dimensions() int {
	return len(v)
}

func (v Point) Dim(idx int) float64 {
	return v[idx]
}

func (v Point) Points() []float64 {
	p := make([]float64, len(v))
	copy(p, v[:])
	return p
}

func (v Point) Equal(vec Point) bool {
	return v == vec
}

func (v Point) String() string {
	parts := make([]string, len(v))
	for i := range v {
		parts[i] = strconv.FormatFloat(v[i], 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
