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
	"math/rand"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

const N = 1000

func TestSafeMedianSetMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		expect func(t *testing.T, s SafeMedianSet[int])
	}{
		{
			name:   "empty",
			values: nil,
			expect: func(t *testing.T, s SafeMedianSet[int]) {
				assert := assert.New(t)
				_, err := s.Median()
				assert.ErrorIs(err, ErrEmpty)
			},
		},
		{
			name:   "odd size",
			values: []int{3, 1, 2},
			expect: func(t *testing.T, s SafeMedianSet[int]) {
				assert := assert.New(t)
				v, err := s.Median()
				assert.NoError(err)
				assert.Equal(v, 2)
			},
		},
		{
			name:   "even size",
			values: []int{4, 1, 3, 2},
			expect: func(t *testing.T, s SafeMedianSet[int]) {
				assert := assert.New(t)
				v, err := s.Median()
				assert.NoError(err)
				assert.Equal(v, 2)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSafeMedianSet[int]()
			for _, v := range tc.values {
				s.Add(v)
			}
			tc.expect(t, s)
		})
	}
}

func TestSafeMedianSetAdd_Concurrent(t *testing.T) {
	runtime.GOMAXPROCS(2)

	s := NewSafeMedianSet[int]()
	nums := rand.Perm(N)

	var wg sync.WaitGroup
	wg.Add(len(nums))
	for i := 0; i < len(nums); i++ {
		go func(i int) {
			s.Add(i)
			wg.Done()
		}(i)
	}

	wg.Wait()
	assert := assert.New(t)
	assert.Equal(s.Len(), N)
	for _, n := range nums {
		if !s.Contains(n) {
			t.Errorf("median set is missing element: %v", n)
		}
	}

	// 0..N-1 were inserted exactly once each.
	v, err := s.Median()
	assert.NoError(err)
	assert.Equal(v, (N-1)/2)
}

func TestSafeMedianSetMutate_Concurrent(t *testing.T) {
	runtime.GOMAXPROCS(2)

	s := NewSafeMedianSet[int]()
	for i := 0; i < N; i++ {
		s.Add(i % 10)
	}

	var wg sync.WaitGroup
	wg.Add(N)
	for i := 0; i < N; i++ {
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				s.Add(i % 10)
			} else {
				s.Remove(i % 10)
			}
			s.Median() // nolint: errcheck
		}(i)
	}

	wg.Wait()
	assert := assert.New(t)
	assert.Equal(s.Len(), N)
}
