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

// Package stats builds streaming statistics on top of the medianset
// container.
package stats

import (
	"errors"

	"github.com/gammazero/deque"
	"golang.org/x/exp/constraints"

	"github.com/orderstat/medianset/pkg/container/medianset"
)

// Window tracks the lower median of the last capacity values of a
// stream. Evicting the oldest value goes through the container's lazy
// deletion, so both Push and Median stay amortized O(log capacity).
// Not safe for concurrent use.
type Window[T constraints.Ordered] struct {
	capacity int
	resident deque.Deque[T]
	set      medianset.MedianSet[T]
}

// NewWindow returns a sliding window over the last capacity values.
func NewWindow[T constraints.Ordered](capacity int) (*Window[T], error) {
	if capacity <= 0 {
		return nil, errors.New("window capacity must be positive")
	}

	return &Window[T]{
		capacity: capacity,
		set:      medianset.New[T](),
	}, nil
}

// Push appends v to the window, evicting the oldest value once full.
func (w *Window[T]) Push(v T) {
	if w.resident.Len() == w.capacity {
		w.set.Remove(w.resident.PopFront())
	}

	w.resident.PushBack(v)
	w.set.Add(v)
}

// Median returns the lower median of the resident values, or
// medianset.ErrEmpty before the first Push.
func (w *Window[T]) Median() (T, error) {
	return w.set.Median()
}

// Len returns the number of resident values, at most Cap.
func (w *Window[T]) Len() int {
	return w.resident.Len()
}

// Cap returns the window capacity.
func (w *Window[T]) Cap() int {
	return w.capacity
}
