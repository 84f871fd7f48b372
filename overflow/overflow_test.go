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

package overflow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	assert.Equal(t, int8(math.MinInt8), Min[int8]())
	assert.Equal(t, int8(math.MaxInt8), Max[int8]())
	assert.Equal(t, uint8(0), Min[uint8]())
	assert.Equal(t, uint8(math.MaxUint8), Max[uint8]())
	assert.Equal(t, int64(math.MinInt64), Min[int64]())
	assert.Equal(t, int64(math.MaxInt64), Max[int64]())
	assert.Equal(t, uint64(math.MaxUint64), Max[uint64]())

	assert.Equal(t, uint32(8), Bits[int8]())
	assert.Equal(t, uint32(16), Bits[uint16]())
	assert.Equal(t, uint32(64), Bits[int64]())
}

func TestAddInt8(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int8
		want     int8
		overflow bool
	}{
		{"zero plus zero", 0, 0, 0, false},
		{"small positives", 1, 2, 3, false},
		{"mixed signs", 100, -100, 0, false},
		{"max boundary", math.MaxInt8 - 1, 1, math.MaxInt8, false},
		{"min boundary", math.MinInt8 + 1, -1, math.MinInt8, false},
		{"overflow wraps to min", math.MaxInt8, 1, math.MinInt8, true},
		{"underflow wraps to max", math.MinInt8, -1, math.MaxInt8, true},
		{"max plus max", math.MaxInt8, math.MaxInt8, -2, true},
		{"min plus min", math.MinInt8, math.MinInt8, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, over := Add(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.overflow, over)
		})
	}
}

func TestAddUint8(t *testing.T) {
	tests := []struct {
		name     string
		a, b     uint8
		want     uint8
		overflow bool
	}{
		{"zero plus zero", 0, 0, 0, false},
		{"max boundary", math.MaxUint8 - 1, 1, math.MaxUint8, false},
		{"wraps to zero", math.MaxUint8, 1, 0, true},
		{"wraps past zero", math.MaxUint8, math.MaxUint8, math.MaxUint8 - 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, over := Add(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.overflow, over)
		})
	}
}

func TestSubInt8(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int8
		want     int8
		overflow bool
	}{
		{"simple", 5, 3, 2, false},
		{"min boundary", math.MinInt8 + 1, 1, math.MinInt8, false},
		{"underflow", math.MinInt8, 1, math.MaxInt8, true},
		{"overflow", math.MaxInt8, -1, math.MinInt8, true},
		{"max minus max", math.MaxInt8, math.MaxInt8, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, over := Sub(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.overflow, over)
		})
	}
}

func TestSubUint8(t *testing.T) {
	got, over := Sub(uint8(0), uint8(1))
	assert.Equal(t, uint8(math.MaxUint8), got)
	assert.True(t, over)

	got, over = Sub(uint8(3), uint8(3))
	assert.Equal(t, uint8(0), got)
	assert.False(t, over)
}

func TestMulInt8(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int8
		want     int8
		overflow bool
	}{
		{"by zero", 13, 0, 0, false},
		{"zero by min", 0, math.MinInt8, 0, false},
		{"small", 6, 7, 42, false},
		{"negative in range", -64, 2, math.MinInt8, false},
		{"positive overflow", 64, 2, math.MinInt8, true},
		{"negative times negative overflow", math.MinInt8, -1, math.MinInt8, true},
		{"negative underflow", -65, 2, 126, true},
		{"max by one", math.MaxInt8, 1, math.MaxInt8, false},
		{"min by one", math.MinInt8, 1, math.MinInt8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, over := Mul(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.overflow, over)
		})
	}
}

func TestMulUint8(t *testing.T) {
	got, over := Mul(uint8(16), uint8(16))
	assert.Equal(t, uint8(0), got)
	assert.True(t, over)

	got, over = Mul(uint8(15), uint8(17))
	assert.Equal(t, uint8(255), got)
	assert.False(t, over)
}

func TestShl(t *testing.T) {
	// In-range amounts shift normally.
	got, over := Shl(int8(1), 3)
	assert.Equal(t, int8(8), got)
	assert.False(t, over)

	// Bits shifted out of the top are discarded without a flag; only the
	// amount is validated.
	got, over = Shl(int8(64), 1)
	assert.Equal(t, int8(math.MinInt8), got)
	assert.False(t, over)

	// An amount >= width reports overflow and masks the amount.
	got, over = Shl(int8(1), 8)
	assert.Equal(t, int8(1), got)
	assert.True(t, over)

	got, over = Shl(int8(1), 9)
	assert.Equal(t, int8(2), got)
	assert.True(t, over)

	got64, over := Shl(uint64(1), 63)
	assert.Equal(t, uint64(1)<<63, got64)
	assert.False(t, over)
}

func TestShrIsLogical(t *testing.T) {
	// The sign bit shifts out like any other bit.
	got, over := Shr(int8(-1), 1)
	assert.Equal(t, int8(math.MaxInt8), got)
	assert.False(t, over)

	got, over = Shr(int8(-128), 7)
	assert.Equal(t, int8(1), got)
	assert.False(t, over)

	got, over = Shr(int8(2), 9)
	assert.Equal(t, int8(1), got)
	assert.True(t, over)

	gotU, over := Shr(uint16(0x8000), 15)
	assert.Equal(t, uint16(1), gotU)
	assert.False(t, over)
}

func TestPow(t *testing.T) {
	tests := []struct {
		name     string
		base     int8
		exp      uint32
		want     int8
		overflow bool
	}{
		{"zeroth power", 13, 0, 1, false},
		{"first power", 13, 1, 13, false},
		{"square", 11, 2, 121, false},
		{"cube", -5, 3, -125, false},
		{"exact max bit", 2, 6, 64, false},
		{"overflow wraps", 2, 7, math.MinInt8, true},
		{"negative exact min", -2, 7, math.MinInt8, false},
		{"zero base", 0, 12, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, over := Pow(tt.base, tt.exp)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.overflow, over)
		})
	}

	gotU, over := Pow(uint8(2), 8)
	require.True(t, over)
	assert.Equal(t, uint8(0), gotU)

	gotU, over = Pow(uint8(3), 5)
	require.False(t, over)
	assert.Equal(t, uint8(243), gotU)
}
