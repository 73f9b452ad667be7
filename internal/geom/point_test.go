package geom

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		vec         []float64
		expected    Point
		expectedErr error
	}{
		{name: "positive", vec: []float64{1, 2, 3, 4}, expected: Point{1, 2, 3, 4}},
		{name: "short", vec: []float64{1, 2, 3}, expectedErr: ErrDimNotEqual},
		{name: "long", vec: []float64{1, 2, 3, 4, 5}, expectedErr: ErrDimNotEqual},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := New(test.vec)
			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("unexpected error got: %v, expected: %v", err, test.expectedErr)
			}
			if err == nil && !got.Equal(test.expected) {
				t.Errorf("the point got: %v, expected: %v", got, test.expected)
			}
		})
	}
}

func TestPoint_Points(t *testing.T) {
	t.Parallel()
	p := Point{1, 2, 3, 4}
	slice := p.Points()
	slice[0] = 100
	if p.Dim(0) != 1 {
		t.Errorf("Points must return a copy, got: %v", p)
	}
	if p.Dimensions() != NumFeatures {
		t.Errorf("the dimensions got: %d, expected: %d", p.Dimensions(), NumFeatures)
	}
}

func TestPoint_String(t *testing.T) {
	t.Parallel()
	if got := (Point{5.1, 3.5, 1.4, 0.2}).String(); got != "5.1,3.5,1.4,0.2" {
		t.Errorf("the string form got: %q, expected: %q", got, "5.1,3.5,1.4,0.2")
	}
}
