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

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestToBytes(t *testing.T) {
	assert.Equal(t, [2]byte{0x12, 0x34}, U16(0x1234).ToBeBytes())
	assert.Equal(t, [2]byte{0x34, 0x12}, U16(0x1234).ToLeBytes())

	assert.Equal(t, [4]byte{0x12, 0x34, 0x56, 0x78}, U32(0x12345678).ToBeBytes())
	assert.Equal(t, [4]byte{0x78, 0x56, 0x34, 0x12}, U32(0x12345678).ToLeBytes())

	assert.Equal(t, [1]byte{0x80}, I8Min.ToBeBytes())
	assert.Equal(t, [1]byte{0xFF}, I8(-1).ToBeBytes())

	// Two's complement: -2 is all ones but the lowest bit.
	assert.Equal(t, [2]byte{0xFF, 0xFE}, I16(-2).ToBeBytes())
	assert.Equal(t, [2]byte{0xFE, 0xFF}, I16(-2).ToLeBytes())

	assert.Equal(
		t,
		[8]byte{0x80, 0, 0, 0, 0, 0, 0, 0},
		I64Min.ToBeBytes(),
	)
}

func TestFromBytes(t *testing.T) {
	assert.Equal(t, U16(0x1234), U16FromBeBytes([2]byte{0x12, 0x34}))
	assert.Equal(t, U16(0x1234), U16FromLeBytes([2]byte{0x34, 0x12}))
	assert.Equal(t, I8Min, I8FromBeBytes([1]byte{0x80}))
	assert.Equal(t, I16(-2), I16FromBeBytes([2]byte{0xFF, 0xFE}))
	assert.Equal(t, U64(1), U64FromBeBytes([8]byte{0, 0, 0, 0, 0, 0, 0, 1}))
	assert.Equal(t, U64(1)<<56, U64FromLeBytes([8]byte{0, 0, 0, 0, 0, 0, 0, 1}))
}

func TestBytesRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("big endian round-trips", prop.ForAll(
		func(v int32) bool {
			return I32FromBeBytes(I32(v).ToBeBytes()) == I32(v)
		},
		gen.Int32(),
	))

	properties.Property("little endian round-trips", prop.ForAll(
		func(v uint64) bool {
			return U64FromLeBytes(U64(v).ToLeBytes()) == U64(v)
		},
		gen.UInt64(),
	))

	properties.Property("native endian round-trips", prop.ForAll(
		func(v int16) bool {
			return I16FromNeBytes(I16(v).ToNeBytes()) == I16(v)
		},
		gen.Int16(),
	))

	properties.Property("big and little endian are byte reversals", prop.ForAll(
		func(v uint32) bool {
			be := U32(v).ToBeBytes()
			le := U32(v).ToLeBytes()
			for i := range be {
				if be[i] != le[len(le)-1-i] {
					return false
				}
			}
			return true
		},
		gen.UInt32(),
	))

	properties.TestingRun(t)
}

func TestPlatformWidthBytes(t *testing.T) {
	assert.Len(t, Isize(-1).ToBeBytes(), int(IsizeBits/8))
	assert.Len(t, Usize(1).ToLeBytes(), int(UsizeBits/8))

	assert.Equal(t, IsizeMin, IsizeFromBeBytes(IsizeMin.ToBeBytes()))
	assert.Equal(t, Isize(-12345), IsizeFromLeBytes(Isize(-12345).ToLeBytes()))
	assert.Equal(t, UsizeMax, UsizeFromNeBytes(UsizeMax.ToNeBytes()))

	// The native-endian encoding of a size type matches the fixed-width
	// type of the same width.
	if UsizeBits == 64 {
		fixed := U64(0xDEADBEEF).ToNeBytes()
		assert.Equal(t, fixed[:], Usize(0xDEADBEEF).ToNeBytes())
	}
}
