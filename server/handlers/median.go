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
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orderstat/medianset/pkg/container/medianset"
	"github.com/orderstat/medianset/server/types"
)

// @Summary Create Value
// @Description Insert one occurrence of a value
// @Tags Value
// @Accept json
// @Produce json
// @Param Value body types.AddValueRequest true "Value"
// @Success 200 {object} types.AddValueResponse
// @Failure 422
// @Router /api/v1/values [post]
func (h *Handlers) CreateValue(ctx *gin.Context) {
	var json types.AddValueRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	size := h.service.AddValue(*json.Value)
	ctx.JSON(http.StatusOK, types.AddValueResponse{Size: size})
}

// @Summary Destroy Value
// @Description Remove one occurrence of a value
// @Tags Value
// @Accept json
// @Produce json
// @Param value path int true "value"
// @Success 200
// @Failure 404
// @Failure 422
// @Router /api/v1/values/{value} [delete]
func (h *Handlers) DestroyValue(ctx *gin.Context) {
	value, err := strconv.ParseInt(ctx.Param("value"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	if !h.service.RemoveValue(value) {
		ctx.JSON(http.StatusNotFound, gin.H{"errors": "value not present"})
		return
	}

	ctx.Status(http.StatusOK)
}

// @Summary Get Median
// @Description Get the lower median of the multiset
// @Tags Value
// @Accept json
// @Produce json
// @Success 200 {object} types.MedianResponse
// @Failure 404
// @Router /api/v1/median [get]
func (h *Handlers) GetMedian(ctx *gin.Context) {
	median, err := h.service.Median()
	if err != nil {
		if errors.Is(err, medianset.ErrEmpty) {
			ctx.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
			return
		}

		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, types.MedianResponse{Median: median})
}

// @Summary Get Stats
// @Description Get multiset statistics
// @Tags Value
// @Accept json
// @Produce json
// @Success 200 {object} types.StatsResponse
// @Router /api/v1/stats [get]
func (h *Handlers) GetStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.service.Stats())
}
