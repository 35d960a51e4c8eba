/*
 *     Copyright 2024 The Orderstat Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package medianset provides a multiset order-statistic container that
// tracks the lower median of its elements under insertion and removal in
// amortized O(log n). Removed entries are deleted lazily: they stay in
// their partition heap until they surface at the top.
package medianset

import (
	"container/heap"
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by Median when the multiset holds no elements.
var ErrEmpty = errors.New("median set is empty")

// MedianSet is an order-statistic multiset over a totally ordered scalar
// type. It is not safe for concurrent use, see SafeMedianSet.
type MedianSet[T constraints.Ordered] interface {
	// Add inserts one occurrence of x.
	Add(x T)
	// Remove deletes one occurrence of x, reporting whether x was present.
	Remove(x T) bool
	// Median returns the lower median: the element at index ⌊(n-1)/2⌋ of
	// the sorted multiset. Returns ErrEmpty when the multiset is empty.
	Median() (T, error)
	// Len returns the number of elements, counting multiplicity.
	Len() int
	// Count returns the multiplicity of x.
	Count(x T) int
	// Contains reports whether at least one occurrence of x is present.
	Contains(x T) bool
	// Distinct returns the number of distinct values present.
	Distinct() int
}

type medianSet[T constraints.Ordered] struct {
	lower lowerHeap[T]
	upper upperHeap[T]

	// Logical sizes of the two halves. Raw heap lengths also count
	// entries that are merely scheduled for removal, so they are never
	// read as sizes directly.
	leftSize  int
	rightSize int

	present map[T]int // live multiplicity per value
	stale   map[T]int // heap entries awaiting physical removal per value
	n       int       // total live elements
}

// New returns an empty MedianSet.
func New[T constraints.Ordered]() MedianSet[T] {
	return &medianSet[T]{
		present: make(map[T]int),
		stale:   make(map[T]int),
	}
}

func (s *medianSet[T]) Add(x T) {
	if s.leftSize == 0 {
		heap.Push(&s.lower, x)
		s.leftSize = 1
	} else {
		s.pruneLower()
		if x <= s.reference(x) {
			heap.Push(&s.lower, x)
			s.leftSize++
		} else {
			heap.Push(&s.upper, x)
			s.rightSize++
		}
	}

	s.present[x]++
	s.n++
	s.rebalance()
}

func (s *medianSet[T]) Remove(x T) bool {
	if s.present[x] == 0 {
		return false
	}

	// Attribute the removal to a half by the same comparison rule Add
	// routes with, against the pre-removal lower top. The stale credit
	// must land after the comparison: pruning once the credit exists can
	// consume the occurrence being removed and expose a shifted top,
	// skewing the attribution away from the half that really shrank.
	s.pruneLower()
	left := x <= s.reference(x)

	s.decrement(s.present, x)
	s.stale[x]++
	s.n--

	if left {
		s.leftSize--
	} else {
		s.rightSize--
	}

	s.pruneLower()
	s.pruneUpper()
	s.rebalance()
	s.pruneLower()
	return true
}

func (s *medianSet[T]) Median() (T, error) {
	if s.n == 0 {
		var zero T
		return zero, ErrEmpty
	}

	s.pruneLower()
	return s.lower[0], nil
}

func (s *medianSet[T]) Len() int {
	return s.n
}

func (s *medianSet[T]) Count(x T) int {
	return s.present[x]
}

func (s *medianSet[T]) Contains(x T) bool {
	return s.present[x] > 0
}

func (s *medianSet[T]) Distinct() int {
	return len(s.present)
}

// reference returns the lower-median candidate used to route x between
// the two halves. The caller must prune the lower heap first. Falls back
// to the upper top, then to x itself when both heaps are drained.
func (s *medianSet[T]) reference(x T) T {
	if len(s.lower) > 0 {
		return s.lower[0]
	}

	if len(s.upper) > 0 {
		return s.upper[0]
	}

	return x
}

// pruneLower pops lower-heap tops that are scheduled for removal,
// consuming one stale credit per pop. Must run before the top is trusted
// and after any pop that may expose a new stale top.
func (s *medianSet[T]) pruneLower() {
	for len(s.lower) > 0 && s.stale[s.lower[0]] > 0 {
		v := heap.Pop(&s.lower).(T)
		s.decrement(s.stale, v)
	}
}

func (s *medianSet[T]) pruneUpper() {
	for len(s.upper) > 0 && s.stale[s.upper[0]] > 0 {
		v := heap.Pop(&s.upper).(T)
		s.decrement(s.stale, v)
	}
}

// rebalance moves at most one element between the halves so that
// leftSize-rightSize lands back in {0, 1}. A single move suffices since
// every mutation changes one size by exactly one before rebalancing.
func (s *medianSet[T]) rebalance() {
	if s.leftSize < s.rightSize {
		s.pruneUpper()
		v := heap.Pop(&s.upper).(T)
		heap.Push(&s.lower, v)
		s.rightSize--
		s.leftSize++
		s.pruneUpper()
	} else if s.leftSize-s.rightSize > 1 {
		s.pruneLower()
		v := heap.Pop(&s.lower).(T)
		heap.Push(&s.upper, v)
		s.leftSize--
		s.rightSize++
		s.pruneLower()
	}
}

// decrement lowers the count of v by one, dropping the key at zero so
// the map never retains entries for values no longer tracked.
func (s *medianSet[T]) decrement(counts map[T]int, v T) {
	if c := counts[v]; c > 1 {
		counts[v] = c - 1
	} else {
		delete(counts, v)
	}
}
