// Copyright 2025 go-hptt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hptt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	withDefaults(t, 6, true, func() {
		assert.Equal(t, 6, DefaultNumThreads())
		assert.True(t, DefaultRowMajor())
		assert.Equal(t, Options{NumThreads: 6, Order: RowMajor}, DefaultOptions())
	})

	withDefaults(t, -3, false, func() {
		assert.Equal(t, 1, DefaultNumThreads(), "thread counts are clamped to 1")
		assert.Equal(t, Options{NumThreads: 1, Order: ColumnMajor}, DefaultOptions())
	})
}

func TestOptionsNumThreads(t *testing.T) {
	assert.Equal(t, 1, Options{}.numThreads())
	assert.Equal(t, 1, Options{NumThreads: -2}.numThreads())
	assert.Equal(t, 8, Options{NumThreads: 8}.numThreads())
}

func TestEnvParsing(t *testing.T) {
	t.Setenv("HPTT_TEST_INT", "12")
	assert.Equal(t, 12, envInt("HPTT_TEST_INT", 1))
	t.Setenv("HPTT_TEST_INT", "zero")
	assert.Equal(t, 1, envInt("HPTT_TEST_INT", 1))
	t.Setenv("HPTT_TEST_INT", "0")
	assert.Equal(t, 3, envInt("HPTT_TEST_INT", 3))
	assert.Equal(t, 5, envInt("HPTT_TEST_UNSET", 5))

	t.Setenv("HPTT_TEST_BOOL", "true")
	assert.True(t, envBool("HPTT_TEST_BOOL", false))
	t.Setenv("HPTT_TEST_BOOL", "0")
	assert.False(t, envBool("HPTT_TEST_BOOL", true))
	t.Setenv("HPTT_TEST_BOOL", "maybe")
	assert.True(t, envBool("HPTT_TEST_BOOL", true))
}
