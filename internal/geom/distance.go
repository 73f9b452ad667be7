package geom

import (
	"fmt"
	"math"
)

var ErrDimNotEqual = fmt.Errorf("vectors dimension is not equal")

// EuclideanDistance returns sqrt(sum((vec[i]-vec1[i])^2)) over all NumFeatures dimensions.
func EuclideanDistance(vec, vec1 Point) float64 {
	var d float64
	for i := 0; i < len(vec); i++ {
		diff := vec[i] - vec1[i]
		d += diff * diff
	}
	return math.Sqrt(d)
}
