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

package medianset

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// SafeMedianSet is a MedianSet safe for concurrent use.
type SafeMedianSet[T constraints.Ordered] interface {
	MedianSet[T]
}

type safeMedianSet[T constraints.Ordered] struct {
	mu   sync.RWMutex
	data MedianSet[T]
}

// NewSafeMedianSet returns an empty MedianSet guarded by a lock.
func NewSafeMedianSet[T constraints.Ordered]() SafeMedianSet[T] {
	return &safeMedianSet[T]{
		data: New[T](),
	}
}

func (s *safeMedianSet[T]) Add(x T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Add(x)
}

func (s *safeMedianSet[T]) Remove(x T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.Remove(x)
}

// Median takes the write lock: reading the median prunes lazily removed
// entries out of the partition heaps.
func (s *safeMedianSet[T]) Median() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.Median()
}

func (s *safeMedianSet[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.Len()
}

func (s *safeMedianSet[T]) Count(x T) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.Count(x)
}

func (s *safeMedianSet[T]) Contains(x T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.Contains(x)
}

func (s *safeMedianSet[T]) Distinct() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.Distinct()
}
