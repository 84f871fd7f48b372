/*
 * Fixint - fixed-width integers with a total arithmetic contract
 *
 * Copyright Fixint Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	assert.Equal(t, "0", Int(0))
	assert.Equal(t, "-1", Int(-1))
	assert.Equal(t, "-9223372036854775808", Int(math.MinInt64))
	assert.Equal(t, "9223372036854775807", Int(math.MaxInt64))
}

func TestUint(t *testing.T) {
	assert.Equal(t, "0", Uint(0))
	assert.Equal(t, "18446744073709551615", Uint(math.MaxUint64))
}
