// Package pqueue implements a bounded queue ordered by priority. Items with
// equal priority keep the order in which they were pushed.
package pqueue

import (
	"sort"
)

func WithOrderAsc() Option {
	return func(q *Queue) {
		q.order = orderAsc
	}
}

func WithOrderDesc() Option {
	return func(q *Queue) {
		q.order = orderDesc
	}
}

// WithCap bounds the queue; items ranked after the first size are dropped.
func WithCap(size uint) Option {
	return func(q *Queue) {
		q.cap = int(size)
	}
}

type Option func(*Queue)

type order uint8

const (
	orderAsc order = iota
	orderDesc
)

type item struct {
	value interface{}
	prior float64
}

func New(opts ...Option) *Queue {
	p := &Queue{order: orderAsc, cap: -1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type Queue struct {
	order order
	cap   int
	items []item
}

func (q *Queue) PopAll() []interface{} {
	pulled := make([]interface{}, len(q.items))
	for i := range q.items {
		pulled[i] = q.items[i].value
	}
	q.items = q.items[:0]
	return pulled
}

func (q *Queue) Head() interface{} {
	if len(q.items) == 0 {
		return nil
	}
	x := q.items[0]
	q.items = q.items[1:]
	return x.value
}

func (q *Queue) Tail() interface{} {
	l := len(q.items) - 1
	if l < 0 {
		return nil
	}
	x := q.items[l]
	q.items = q.items[:l]
	return x.value
}

// Push inserts val after every item of equal priority already queued. When
// the queue is full an item ranked after the last one is dropped right away.
func (q *Queue) Push(val interface{}, priority float64) {
	idx := sort.Search(len(q.items), func(i int) bool {
		return q.before(priority, q.items[i].prior)
	})
	if q.cap >= 0 && idx >= q.cap {
		return
	}

	if q.cap < 0 || len(q.items) < q.cap {
		q.items = append(q.items, item{})
	}
	copy(q.items[idx+1:], q.items[idx:])
	q.items[idx] = item{value: val, prior: priority}
}

func (q *Queue) Cap() int { return q.cap }

func (q *Queue) Len() int { return len(q.items) }

// before reports whether priority a is ranked strictly ahead of b.
func (q *Queue) before(a, b float64) bool {
	if q.order == orderAsc {
		return a < b
	}
	return a > b
}

func (q *Queue) Seek(idx int) (interface{}, float64) {
	item := q.items[idx]
	return item.value, item.prior
}
