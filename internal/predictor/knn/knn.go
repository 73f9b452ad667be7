// Package knn classifies a query by majority vote among its k nearest
// stored observations under Euclidean distance.
package knn

import (
	"fmt"

	"github.com/AeronFaust/CISC-7700X-HW-2/internal/geom"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/predictor"
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/predictor/knn/brute"
)

var _ predictor.Classifier = (*classifier)(nil)

type Option func(*classifier)

func WithVoteMode(m predictor.VoteMode) Option {
	return func(c *classifier) {
		c.opts.voteMode = m
	}
}

var defaultOptions = Options{voteMode: predictor.VoteModeLabel}

type Options struct {
	voteMode predictor.VoteMode
}

func New(src predictor.Source, opts ...Option) (*classifier, error) {
	if src == nil {
		return nil, fmt.Errorf("unable creating knn instance, source is nil")
	}
	c := &classifier{
		src:  src,
		opts: defaultOptions,
	}
	for _, f := range opts {
		f(c)
	}
	vote, err := VoteFuncFor(c.opts.voteMode)
	if err != nil {
		return nil, fmt.Errorf("unable creating knn instance, %w", err)
	}
	c.vote = vote
	c.alg = brute.NewBruteAlg(src, geom.EuclideanDistance)
	return c, nil
}

type classifier struct {
	opts Options
	src  predictor.Source
	alg  predictor.KNNAlg
	vote VoteFn
}

func (c *classifier) Len() int {
	return c.alg.Len()
}

func (c *classifier) KNN(query geom.Point, k int) ([]predictor.Neighbor, error) {
	return c.alg.KNN(query, k)
}

// Predict returns the majority label among the k nearest observations.
// It fails with predictor.ErrEmptyStore or predictor.ErrOutOfRange when there
// are no k observations to vote.
func (c *classifier) Predict(query geom.Point, k int) (string, error) {
	nn, err := c.alg.KNN(query, k)
	if err != nil {
		return "", fmt.Errorf("unable to predict %v: %w", query, err)
	}
	return c.vote(c.src, nn), nil
}
