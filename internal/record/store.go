// Package record holds the labeled training observations and turns delimited
// text into them.
package record

import (
	"github.com/AeronFaust/CISC-7700X-HW-2/internal/geom"
)

// Observation is one labeled training point. It is never modified after it
// is appended to a Store.
type Observation struct {
	Features geom.Point `json:"features"`
	Label    string     `json:"label"`
}

// Store is an append-only sequence of observations. Insertion order is kept
// because prediction tie-breaking depends on it.
//
// Store is not safe for concurrent use; callers serialize access.
type Store struct {
	items []Observation
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(features geom.Point, label string) {
	s.items = append(s.items, Observation{Features: features, Label: label})
}

func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) At(idx int) Observation {
	return s.items[idx]
}

// All returns a copy of the stored observations in store order.
func (s *Store) All() []Observation {
	list := make([]Observation, len(s.items))
	copy(list, s.items)
	return list
}
