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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertInRange(t *testing.T) {
	assert.Equal(t, I8(127), ConvertI8(int64(127)))
	assert.Equal(t, I8(-128), ConvertI8(int32(-128)))
	assert.Equal(t, U8(255), ConvertU8(uint64(255)))
	assert.Equal(t, U8(0), ConvertU8(int8(0)))

	// Widening always succeeds.
	assert.Equal(t, I64(-1), ConvertI64(int8(-1)))
	assert.Equal(t, I64(math.MaxInt32), ConvertI64(int32(math.MaxInt32)))
	assert.Equal(t, U64(math.MaxUint32), ConvertU64(uint32(math.MaxUint32)))
	assert.Equal(t, I16(255), ConvertI16(uint8(255)))

	// Signed to unsigned of the same width, and back.
	assert.Equal(t, U8(127), ConvertU8(int8(127)))
	assert.Equal(t, I8(127), ConvertI8(uint8(127)))

	// A uint64 above MaxInt64 is in range for U64 but not I64.
	assert.Equal(t, U64Max, ConvertU64(uint64(math.MaxUint64)))
}

func TestConvertOutOfRange(t *testing.T) {
	require.PanicsWithError(t, "overflow", func() {
		ConvertI8(int16(128))
	})
	require.PanicsWithError(t, "underflow", func() {
		ConvertI8(int16(-129))
	})
	require.PanicsWithError(t, "underflow", func() {
		ConvertU8(int8(-1))
	})
	require.PanicsWithError(t, "overflow", func() {
		ConvertU8(int16(256))
	})
	require.PanicsWithError(t, "overflow", func() {
		ConvertI64(uint64(math.MaxInt64) + 1)
	})
	require.PanicsWithError(t, "underflow", func() {
		ConvertU64(int8(-1))
	})
	require.PanicsWithError(t, "overflow", func() {
		ConvertI16(int32(math.MaxInt16) + 1)
	})
	require.PanicsWithError(t, "overflow", func() {
		ConvertU32(uint64(math.MaxUint32) + 1)
	})
}

func TestConvertSizeTypes(t *testing.T) {
	assert.Equal(t, Isize(-1), ConvertIsize(int8(-1)))
	assert.Equal(t, Usize(42), ConvertUsize(uint8(42)))

	require.PanicsWithError(t, "underflow", func() {
		ConvertUsize(int64(-1))
	})

	if IsizeBits == 32 {
		require.PanicsWithError(t, "overflow", func() {
			ConvertIsize(int64(math.MaxInt32) + 1)
		})
	}
}
