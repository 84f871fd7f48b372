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

package fixint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog2(t *testing.T) {
	assert.Equal(t, uint32(0), U8(1).Log2())
	assert.Equal(t, uint32(1), U8(2).Log2())
	assert.Equal(t, uint32(1), U8(3).Log2())
	assert.Equal(t, uint32(2), U8(4).Log2())
	assert.Equal(t, uint32(7), U8Max.Log2())
	assert.Equal(t, uint32(6), I8Max.Log2())
	assert.Equal(t, uint32(63), U64Max.Log2())

	require.PanicsWithError(t, "logarithm domain error", func() {
		U8(0).Log2()
	})
	require.PanicsWithError(t, "logarithm domain error", func() {
		I8(-1).Log2()
	})

	_, ok := I8(0).CheckedLog2()
	assert.False(t, ok)

	got, ok := U16(1024).CheckedLog2()
	require.True(t, ok)
	assert.Equal(t, uint32(10), got)
}

func TestLog10(t *testing.T) {
	assert.Equal(t, uint32(0), U8(1).Log10())
	assert.Equal(t, uint32(0), U8(9).Log10())
	assert.Equal(t, uint32(1), U8(10).Log10())
	assert.Equal(t, uint32(2), U8(100).Log10())
	assert.Equal(t, uint32(2), U8Max.Log10())
	assert.Equal(t, uint32(19), U64Max.Log10())

	require.PanicsWithError(t, "logarithm domain error", func() {
		I64(0).Log10()
	})

	_, ok := I8(-10).CheckedLog10()
	assert.False(t, ok)
}

func TestLog(t *testing.T) {
	assert.Equal(t, uint32(4), U8(81).Log(3))
	assert.Equal(t, uint32(3), U8(80).Log(3))
	assert.Equal(t, uint32(1), I32(5).Log(5))
	assert.Equal(t, uint32(0), I32(4).Log(5))

	require.PanicsWithError(t, "logarithm domain error", func() {
		U8(8).Log(1)
	})
	require.PanicsWithError(t, "logarithm domain error", func() {
		I8(0).Log(2)
	})

	_, ok := U8(8).CheckedLog(0)
	assert.False(t, ok)

	got, ok := U8(8).CheckedLog(2)
	require.True(t, ok)
	assert.Equal(t, uint32(3), got)
}

func TestNextPowerOfTwo(t *testing.T) {
	assert.Equal(t, U8(1), U8(0).NextPowerOfTwo())
	assert.Equal(t, U8(1), U8(1).NextPowerOfTwo())
	assert.Equal(t, U8(2), U8(2).NextPowerOfTwo())
	assert.Equal(t, U8(4), U8(3).NextPowerOfTwo())
	assert.Equal(t, U8(128), U8(100).NextPowerOfTwo())
	assert.Equal(t, U8(128), U8(128).NextPowerOfTwo())
	assert.Equal(t, U64(1)<<33, U64(1<<33-1).NextPowerOfTwo())

	require.PanicsWithError(t, "overflow", func() {
		U8(129).NextPowerOfTwo()
	})

	_, ok := U8(200).CheckedNextPowerOfTwo()
	assert.False(t, ok)

	got, ok := U8(64).CheckedNextPowerOfTwo()
	require.True(t, ok)
	assert.Equal(t, U8(64), got)

	assert.Equal(t, U8(0), U8(129).WrappingNextPowerOfTwo())
	assert.Equal(t, U8(32), U8(17).WrappingNextPowerOfTwo())
}

func TestIsPowerOfTwo(t *testing.T) {
	assert.False(t, U8(0).IsPowerOfTwo())
	assert.True(t, U8(1).IsPowerOfTwo())
	assert.True(t, U8(2).IsPowerOfTwo())
	assert.False(t, U8(3).IsPowerOfTwo())
	assert.True(t, U8(128).IsPowerOfTwo())
	assert.False(t, U8Max.IsPowerOfTwo())
	assert.True(t, U64(1<<40).IsPowerOfTwo())
}
