package predictor

import (
	"errors"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/geom"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/record"
)

var (
	// ErrOutOfRange is returned when k is below 1 or above the number of
	// stored observations.
	ErrOutOfRange = errors.New("k is out of range")
	// ErrEmptyStore is returned when there is nothing to vote on.
	ErrEmptyStore = errors.New("no training data")
)

type ProvideFn func(Source) (Classifier, error)

// Source is the read side of the record store.
type Source interface {
	Len() int
	At(idx int) record.Observation
}

// Neighbor is a stored observation ranked by its distance to a query.
type Neighbor struct {
	Index    int
	Distance float64
	Label    string
}

type KNNAlg interface {
	Len() int
	KNN(query geom.Point, k int) ([]Neighbor, error)
}

type Classifier interface {
	KNNAlg
	Predict(query geom.Point, k int) (string, error)
}
