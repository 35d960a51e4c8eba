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

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	assert := assert.New(t)
	assert.False(coreLogLevelEnabler.Enabled(zapcore.DebugLevel))

	SetLevel(zapcore.DebugLevel)
	defer SetLevel(zapcore.InfoLevel)
	assert.True(coreLogLevelEnabler.Enabled(zapcore.DebugLevel))
}

func TestWith(t *testing.T) {
	assert := assert.New(t)

	log := With("component", "values")
	child := log.With("task", "replay")
	assert.Len(child.withArgs, 4)

	// Suppressed at the default info level, must not touch the fields.
	child.Debugf("value %d", 1)
}
