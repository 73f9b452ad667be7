package brute

import (
	"fmt"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/geom"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/predictor"
	"github.com/AeronFaust/CISC-7700X-HW-2/pkg/pqueue"
)

var _ predictor.KNNAlg = (*brute)(nil)

type DistanceFn func(vec, vec1 geom.Point) float64

// NewBruteAlg compares the query with every observation of src.
func NewBruteAlg(src predictor.Source, distFn DistanceFn) *brute {
	return &brute{src: src, distFunc: distFn}
}

type brute struct {
	src      predictor.Source
	distFunc DistanceFn
}

func (b *brute) Len() int {
	return b.src.Len()
}

// KNN returns the k observations closest to vec, nearest first. Observations
// at equal distance keep their store order.
func (b *brute) KNN(vec geom.Point, k int) ([]predictor.Neighbor, error) {
	n := b.src.Len()
	if n == 0 {
		return nil, predictor.ErrEmptyStore
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d, stored=%d", predictor.ErrOutOfRange, k, n)
	}

	pq := pqueue.New(pqueue.WithCap(uint(k)))
	for i := 0; i < n; i++ {
		item := b.src.At(i)
		distance := b.distFunc(item.Features, vec)
		pq.Push(predictor.Neighbor{Index: i, Distance: distance, Label: item.Label}, distance)
	}

	knn := make([]predictor.Neighbor, pq.Len())
	for i, pData := range pq.PopAll() {
		knn[i] = pData.(predictor.Neighbor)
	}
	return knn, nil
}
