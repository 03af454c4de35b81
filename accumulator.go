// SPDX-License-Identifier: MIT
package linescan

import "golang.org/x/exp/constraints"

// Number is the constraint for values folded by an accumulator.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum is a running total; the zero value is ready for use & totals 0.
type Sum[T Number] struct {
	total T
	count int
}

// Add folds values into the Sum.
func (s *Sum[T]) Add(values ...T) {
	for _, v := range values {
		s.total += v
	}
	s.count += len(values)
}

// Total obtains the accumulated total.
func (s *Sum[T]) Total() T { return s.total }

// Count obtains the number of folded values.
func (s *Sum[T]) Count() int { return s.count }

// Product multiplies values; an empty list yields 0 rather than the multiplicative identity.
func Product[T Number](values ...T) (p T) {
	if len(values) < 1 {
		return
	}

	p = 1
	for _, v := range values {
		p *= v
	}

	return
}
