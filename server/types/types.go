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

package types

// AddValueRequest carries one value to insert. The pointer keeps zero a
// valid value under the required binding.
type AddValueRequest struct {
	Value *int64 `json:"value" binding:"required"`
}

type AddValueResponse struct {
	Size int `json:"size"`
}

type MedianResponse struct {
	Median int64 `json:"median"`
}

type StatsResponse struct {
	Size     int `json:"size"`
	Distinct int `json:"distinct"`
}
