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

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/orderstat/medianset/pkg/container/medianset"
	"github.com/orderstat/medianset/server/service/mocks"
	"github.com/orderstat/medianset/server/types"
)

func mockMedianRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	apiv1 := r.Group("/api/v1")
	apiv1.POST("/values", h.CreateValue)
	apiv1.DELETE("/values/:value", h.DestroyValue)
	apiv1.GET("/median", h.GetMedian)
	apiv1.GET("/stats", h.GetStats)
	return r
}

func TestHandlers_CreateValue(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(svc *mocks.MockService)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/values", strings.NewReader(`{"value":5}`)),
			mock: func(svc *mocks.MockService) {
				svc.EXPECT().AddValue(int64(5)).Return(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.JSONEq(`{"size":1}`, w.Body.String())
			},
		},
		{
			name: "zero value is valid",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/values", strings.NewReader(`{"value":0}`)),
			mock: func(svc *mocks.MockService) {
				svc.EXPECT().AddValue(int64(0)).Return(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
		{
			name: "missing value",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/values", strings.NewReader(`{}`)),
			mock: func(svc *mocks.MockService) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "malformed body",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/values", strings.NewReader(`{`)),
			mock: func(svc *mocks.MockService) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			tc.mock(svc)

			w := httptest.NewRecorder()
			mockMedianRouter(New(svc)).ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_DestroyValue(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(svc *mocks.MockService)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodDelete, "/api/v1/values/5", nil),
			mock: func(svc *mocks.MockService) {
				svc.EXPECT().RemoveValue(int64(5)).Return(true)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
		{
			name: "negative value",
			req:  httptest.NewRequest(http.MethodDelete, "/api/v1/values/-3", nil),
			mock: func(svc *mocks.MockService) {
				svc.EXPECT().RemoveValue(int64(-3)).Return(true)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
		{
			name: "absent value",
			req:  httptest.NewRequest(http.MethodDelete, "/api/v1/values/5", nil),
			mock: func(svc *mocks.MockService) {
				svc.EXPECT().RemoveValue(int64(5)).Return(false)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusNotFound, w.Code)
			},
		},
		{
			name: "not a number",
			req:  httptest.NewRequest(http.MethodDelete, "/api/v1/values/abc", nil),
			mock: func(svc *mocks.MockService) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			tc.mock(svc)

			w := httptest.NewRecorder()
			mockMedianRouter(New(svc)).ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetMedian(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(svc *mocks.MockService)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			mock: func(svc *mocks.MockService) {
				svc.EXPECT().Median().Return(int64(7), nil)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.JSONEq(`{"median":7}`, w.Body.String())
			},
		},
		{
			name: "empty multiset",
			mock: func(svc *mocks.MockService) {
				svc.EXPECT().Median().Return(int64(0), medianset.ErrEmpty)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusNotFound, w.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			tc.mock(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/median", nil)
			mockMedianRouter(New(svc)).ServeHTTP(w, req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetStats(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	svc := mocks.NewMockService(ctl)
	svc.EXPECT().Stats().Return(types.StatsResponse{Size: 3, Distinct: 2})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	mockMedianRouter(New(svc)).ServeHTTP(w, req)

	assert := assert.New(t)
	assert.Equal(http.StatusOK, w.Code)
	assert.JSONEq(`{"size":3,"distinct":2}`, w.Body.String())
}
