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

package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixint/fixint"
)

func TestEncodeWireFormat(t *testing.T) {
	// Values encode as plain CBOR integers, in the shortest form.

	data, err := EncodeU8(0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, data)

	data, err = EncodeU8(23)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x17}, data)

	data, err = EncodeU8(24)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x18, 0x18}, data)

	data, err = EncodeI8(-1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x20}, data)

	data, err = EncodeU16(0x1234)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x19, 0x12, 0x34}, data)

	data, err = EncodeU64(fixint.U64Max)
	require.NoError(t, err)
	assert.Equal(
		t,
		[]byte{0x1B, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		data,
	)
}

func TestRoundTripBoundaries(t *testing.T) {
	t.Run("signed", func(t *testing.T) {
		for _, v := range []fixint.I64{
			fixint.I64Min,
			-1,
			0,
			1,
			fixint.I64Max,
		} {
			data, err := EncodeI64(v)
			require.NoError(t, err)

			decoded, err := DecodeI64(data)
			require.NoError(t, err)
			assert.Equal(t, v, decoded)
		}
	})

	t.Run("unsigned", func(t *testing.T) {
		for _, v := range []fixint.U64{
			0,
			1,
			fixint.U64Max,
		} {
			data, err := EncodeU64(v)
			require.NoError(t, err)

			decoded, err := DecodeU64(data)
			require.NoError(t, err)
			assert.Equal(t, v, decoded)
		}
	})
}

func TestRoundTripAllTypes(t *testing.T) {
	i8, err := EncodeI8(fixint.I8Min)
	require.NoError(t, err)
	gotI8, err := DecodeI8(i8)
	require.NoError(t, err)
	assert.Equal(t, fixint.I8Min, gotI8)

	i16, err := EncodeI16(-12345)
	require.NoError(t, err)
	gotI16, err := DecodeI16(i16)
	require.NoError(t, err)
	assert.Equal(t, fixint.I16(-12345), gotI16)

	i32, err := EncodeI32(fixint.I32Max)
	require.NoError(t, err)
	gotI32, err := DecodeI32(i32)
	require.NoError(t, err)
	assert.Equal(t, fixint.I32Max, gotI32)

	isize, err := EncodeIsize(-42)
	require.NoError(t, err)
	gotIsize, err := DecodeIsize(isize)
	require.NoError(t, err)
	assert.Equal(t, fixint.Isize(-42), gotIsize)

	u8, err := EncodeU8(fixint.U8Max)
	require.NoError(t, err)
	gotU8, err := DecodeU8(u8)
	require.NoError(t, err)
	assert.Equal(t, fixint.U8Max, gotU8)

	u16, err := EncodeU16(fixint.U16Max)
	require.NoError(t, err)
	gotU16, err := DecodeU16(u16)
	require.NoError(t, err)
	assert.Equal(t, fixint.U16Max, gotU16)

	u32, err := EncodeU32(0xDEADBEEF)
	require.NoError(t, err)
	gotU32, err := DecodeU32(u32)
	require.NoError(t, err)
	assert.Equal(t, fixint.U32(0xDEADBEEF), gotU32)

	usize, err := EncodeUsize(42)
	require.NoError(t, err)
	gotUsize, err := DecodeUsize(usize)
	require.NoError(t, err)
	assert.Equal(t, fixint.Usize(42), gotUsize)
}

func TestDecodeOutOfRange(t *testing.T) {
	// 256 does not fit a U8.
	data, err := EncodeU16(256)
	require.NoError(t, err)
	_, err = DecodeU8(data)
	assert.Error(t, err)

	// Negative values never fit an unsigned type.
	data, err = EncodeI8(-1)
	require.NoError(t, err)
	_, err = DecodeU64(data)
	assert.Error(t, err)

	// MaxUint64 does not fit an I64.
	data, err = EncodeU64(fixint.U64Max)
	require.NoError(t, err)
	_, err = DecodeI64(data)
	assert.Error(t, err)

	// 128 does not fit an I8.
	data, err = EncodeU8(128)
	require.NoError(t, err)
	_, err = DecodeI8(data)
	assert.Error(t, err)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := DecodeU8(nil)
	assert.Error(t, err)

	_, err = DecodeI32([]byte{0x19, 0x12})
	assert.Error(t, err)

	// A CBOR text string is not an integer.
	_, err = DecodeU32([]byte{0x61, 0x41})
	assert.Error(t, err)
}
