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

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package service

import (
	logger "github.com/orderstat/medianset/internal/mslog"
	"github.com/orderstat/medianset/pkg/container/medianset"
	"github.com/orderstat/medianset/server/types"
)

// Service is the int64 facade the HTTP handlers talk to.
type Service interface {
	// AddValue inserts one occurrence and returns the new size.
	AddValue(value int64) int
	// RemoveValue deletes one occurrence, reporting whether it was present.
	RemoveValue(value int64) bool
	// Median returns the lower median, or medianset.ErrEmpty.
	Median() (int64, error)
	// Stats returns the current multiset statistics.
	Stats() types.StatsResponse
}

type service struct {
	values medianset.SafeMedianSet[int64]
	log    *logger.SugaredLoggerOnWith
}

// New returns a Service over an empty multiset.
func New() Service {
	return &service{
		values: medianset.NewSafeMedianSet[int64](),
		log:    logger.With("component", "medianService"),
	}
}

func (s *service) AddValue(value int64) int {
	s.values.Add(value)
	size := s.values.Len()
	s.log.Debugf("add value %d, size %d", value, size)
	return size
}

func (s *service) RemoveValue(value int64) bool {
	if !s.values.Remove(value) {
		s.log.Warnf("remove absent value %d", value)
		return false
	}

	s.log.Debugf("remove value %d, size %d", value, s.values.Len())
	return true
}

func (s *service) Median() (int64, error) {
	return s.values.Median()
}

func (s *service) Stats() types.StatsResponse {
	return types.StatsResponse{
		Size:     s.values.Len(),
		Distinct: s.values.Distinct(),
	}
}
