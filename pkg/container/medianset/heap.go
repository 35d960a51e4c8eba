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

import "golang.org/x/exp/constraints"

// lowerHeap is a max-heap holding the smaller half of the multiset,
// so its top is the lower-median candidate. Duplicate entries are legal.
type lowerHeap[T constraints.Ordered] []T

func (h lowerHeap[T]) Len() int           { return len(h) }
func (h lowerHeap[T]) Less(i, j int) bool { return h[i] > h[j] }
func (h lowerHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *lowerHeap[T]) Push(x any) {
	*h = append(*h, x.(T))
}

func (h *lowerHeap[T]) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// upperHeap is a min-heap holding the larger half of the multiset.
type upperHeap[T constraints.Ordered] []T

func (h upperHeap[T]) Len() int           { return len(h) }
func (h upperHeap[T]) Less(i, j int) bool { return h[i] < h[j] }
func (h upperHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *upperHeap[T]) Push(x any) {
	*h = append(*h, x.(T))
}

func (h *upperHeap[T]) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}
