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
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, I8(3), I8(1).Add(2))
	assert.Equal(t, I8Max, I8(I8Max-1).Add(1))
	assert.Equal(t, I8Min, I8(I8Min+1).Add(-1))
	assert.Equal(t, U8Max, U8(200).Add(55))

	require.PanicsWithError(t, "overflow", func() {
		I8Max.Add(1)
	})
	require.PanicsWithError(t, "underflow", func() {
		I8Min.Add(-1)
	})
	require.PanicsWithError(t, "overflow", func() {
		U8Max.Add(1)
	})
}

func TestAddForms(t *testing.T) {
	_, ok := I8Max.CheckedAdd(1)
	assert.False(t, ok)

	got, ok := I8(100).CheckedAdd(27)
	require.True(t, ok)
	assert.Equal(t, I8Max, got)

	got, over := I8Max.OverflowingAdd(1)
	assert.True(t, over)
	assert.Equal(t, I8Min, got)

	assert.Equal(t, I8Min, I8Max.WrappingAdd(1))
	assert.Equal(t, I8Max, I8Max.SaturatingAdd(1))
	assert.Equal(t, I8Min, I8Min.SaturatingAdd(-1))
	assert.Equal(t, U8(0), U8Max.WrappingAdd(1))
	assert.Equal(t, U8Max, U8Max.SaturatingAdd(1))
}

func TestSub(t *testing.T) {
	assert.Equal(t, I8(2), I8(5).Sub(3))
	assert.Equal(t, U8(0), U8(3).Sub(3))

	require.PanicsWithError(t, "underflow", func() {
		I8Min.Sub(1)
	})
	require.PanicsWithError(t, "overflow", func() {
		I8Max.Sub(-1)
	})
	require.PanicsWithError(t, "underflow", func() {
		U8(0).Sub(1)
	})

	_, ok := U8(0).CheckedSub(1)
	assert.False(t, ok)

	got, over := U8(0).OverflowingSub(1)
	assert.True(t, over)
	assert.Equal(t, U8Max, got)

	assert.Equal(t, U8Max, U8(0).WrappingSub(1))
	assert.Equal(t, U8(0), U8(0).SaturatingSub(1))
	assert.Equal(t, I8Max, I8Min.WrappingSub(1))
	assert.Equal(t, I8Min, I8Min.SaturatingSub(1))
	assert.Equal(t, I8Max, I8Max.SaturatingSub(-1))
}

func TestMul(t *testing.T) {
	assert.Equal(t, I8(42), I8(6).Mul(7))
	assert.Equal(t, I8Min, I8(-64).Mul(2))

	require.PanicsWithError(t, "overflow", func() {
		I8(64).Mul(2)
	})
	require.PanicsWithError(t, "underflow", func() {
		I8(-65).Mul(2)
	})
	require.PanicsWithError(t, "overflow", func() {
		U8(16).Mul(16)
	})

	_, ok := I8(64).CheckedMul(2)
	assert.False(t, ok)

	got, over := I8(64).OverflowingMul(2)
	assert.True(t, over)
	assert.Equal(t, I8Min, got)

	assert.Equal(t, I8(126), I8(-65).WrappingMul(2))
	assert.Equal(t, I8Max, I8(64).SaturatingMul(2))
	assert.Equal(t, I8Min, I8(-65).SaturatingMul(2))
	assert.Equal(t, U8Max, U8(16).SaturatingMul(16))
}

func TestDiv(t *testing.T) {
	assert.Equal(t, I8(-3), I8(-7).Div(2))
	assert.Equal(t, I8(-1), I8(-7).Rem(2))
	assert.Equal(t, U8(3), U8(7).Div(2))

	require.PanicsWithError(t, "division by zero", func() {
		I8(1).Div(0)
	})
	require.PanicsWithError(t, "division by zero", func() {
		U8(1).Rem(0)
	})
	require.PanicsWithError(t, "overflow", func() {
		I8Min.Div(-1)
	})
	require.PanicsWithError(t, "overflow", func() {
		I8Min.Rem(-1)
	})
}

func TestDivMinByMinusOne(t *testing.T) {
	// The only quotient truncated division cannot represent.

	_, ok := I8Min.CheckedDiv(-1)
	assert.False(t, ok)
	_, ok = I8Min.CheckedRem(-1)
	assert.False(t, ok)

	got, over := I8Min.OverflowingDiv(-1)
	assert.True(t, over)
	assert.Equal(t, I8Min, got)

	got, over = I8Min.OverflowingRem(-1)
	assert.True(t, over)
	assert.Equal(t, I8(0), got)

	assert.Equal(t, I8Min, I8Min.WrappingDiv(-1))
	assert.Equal(t, I8(0), I8Min.WrappingRem(-1))
	assert.Equal(t, I8Max, I8Min.SaturatingDiv(-1))

	// A zero divisor is not an overflow; it panics in every form.
	require.PanicsWithError(t, "division by zero", func() {
		I8(1).WrappingDiv(0)
	})
	require.PanicsWithError(t, "division by zero", func() {
		I8(1).OverflowingDiv(0)
	})
	require.PanicsWithError(t, "division by zero", func() {
		I8(1).SaturatingDiv(0)
	})
	require.PanicsWithError(t, "division by zero", func() {
		I8(1).WrappingRem(0)
	})

	_, ok = I8(1).CheckedDiv(0)
	assert.False(t, ok)
}

func TestDivEuclid(t *testing.T) {
	assert.Equal(t, I8(-4), I8(-7).DivEuclid(2))
	assert.Equal(t, I8(1), I8(-7).RemEuclid(2))
	assert.Equal(t, I8(4), I8(-7).DivEuclid(-2))
	assert.Equal(t, I8(1), I8(-7).RemEuclid(-2))
	assert.Equal(t, I8(3), I8(7).DivEuclid(2))
	assert.Equal(t, I8(1), I8(7).RemEuclid(2))
	assert.Equal(t, I8(-3), I8(7).DivEuclid(-2))
	assert.Equal(t, I8(1), I8(7).RemEuclid(-2))
	assert.Equal(t, U8(3), U8(7).DivEuclid(2))

	require.PanicsWithError(t, "division by zero", func() {
		I8(1).DivEuclid(0)
	})
	require.PanicsWithError(t, "overflow", func() {
		I8Min.RemEuclid(-1)
	})

	got, over := I8Min.OverflowingDivEuclid(-1)
	assert.True(t, over)
	assert.Equal(t, I8Min, got)

	assert.Equal(t, I8(0), I8Min.WrappingRemEuclid(-1))
}

func TestNeg(t *testing.T) {
	assert.Equal(t, I8(-5), I8(5).Neg())
	assert.Equal(t, I8(5), I8(-5).Neg())

	require.PanicsWithError(t, "overflow", func() {
		I8Min.Neg()
	})

	_, ok := I8Min.CheckedNeg()
	assert.False(t, ok)

	got, over := I8Min.OverflowingNeg()
	assert.True(t, over)
	assert.Equal(t, I8Min, got)

	assert.Equal(t, I8Min, I8Min.WrappingNeg())
	assert.Equal(t, I8Max, I8Min.SaturatingNeg())

	// Unsigned negation succeeds only for zero.
	got8, ok := U8(0).CheckedNeg()
	require.True(t, ok)
	assert.Equal(t, U8(0), got8)

	_, ok = U8(1).CheckedNeg()
	assert.False(t, ok)

	got8, over = U8(1).OverflowingNeg()
	assert.True(t, over)
	assert.Equal(t, U8Max, got8)

	assert.Equal(t, U8Max, U8(1).WrappingNeg())
}

func TestAbs(t *testing.T) {
	assert.Equal(t, I8(5), I8(-5).Abs())
	assert.Equal(t, I8(5), I8(5).Abs())

	require.PanicsWithError(t, "overflow", func() {
		I8Min.Abs()
	})

	_, ok := I8Min.CheckedAbs()
	assert.False(t, ok)

	got, over := I8Min.OverflowingAbs()
	assert.True(t, over)
	assert.Equal(t, I8Min, got)

	assert.Equal(t, I8Min, I8Min.WrappingAbs())
	assert.Equal(t, I8Max, I8Min.SaturatingAbs())

	assert.Equal(t, U8(128), I8Min.UnsignedAbs())
	assert.Equal(t, U8(5), I8(-5).UnsignedAbs())
	assert.Equal(t, U8(5), I8(5).UnsignedAbs())

	assert.Equal(t, U8(255), I8Min.AbsDiff(I8Max))
	assert.Equal(t, U8(3), I8(-1).AbsDiff(2))
	assert.Equal(t, U8(7), U8(3).AbsDiff(10))
}

func TestPowMethods(t *testing.T) {
	assert.Equal(t, I32(1), I32(17).Pow(0))
	assert.Equal(t, I32(1024), I32(2).Pow(10))
	assert.Equal(t, I32(-243), I32(-3).Pow(5))
	assert.Equal(t, U8(243), U8(3).Pow(5))

	require.PanicsWithError(t, "overflow", func() {
		I8(2).Pow(7)
	})

	_, ok := U8(2).CheckedPow(8)
	assert.False(t, ok)

	got, over := U8(2).OverflowingPow(8)
	assert.True(t, over)
	assert.Equal(t, U8(0), got)

	assert.Equal(t, U8(0), U8(2).WrappingPow(8))
	assert.Equal(t, U8Max, U8(2).SaturatingPow(8))
	assert.Equal(t, I8Max, I8(2).SaturatingPow(7))
	// A negative base raised to an odd exponent saturates downward.
	assert.Equal(t, I8Min, I8(-3).SaturatingPow(5))
	assert.Equal(t, I8Max, I8(-3).SaturatingPow(4))
}

func TestArithProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("checked add agrees with wide arithmetic", prop.ForAll(
		func(a, b int8) bool {
			got, ok := I8(a).CheckedAdd(I8(b))
			wide := int16(a) + int16(b)
			if wide < int16(I8Min) || wide > int16(I8Max) {
				return !ok
			}
			return ok && got == I8(wide)
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.Property("overflowing add wraps mod 2^8", prop.ForAll(
		func(a, b int8) bool {
			got, over := I8(a).OverflowingAdd(I8(b))
			_, ok := I8(a).CheckedAdd(I8(b))
			return got == I8(a).WrappingAdd(I8(b)) && over == !ok
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.Property("saturating mul clamps the wide product", prop.ForAll(
		func(a, b int8) bool {
			wide := int16(a) * int16(b)
			want := wide
			if wide > int16(I8Max) {
				want = int16(I8Max)
			} else if wide < int16(I8Min) {
				want = int16(I8Min)
			}
			return I8(a).SaturatingMul(I8(b)) == I8(want)
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.Property("euclidean quotient and remainder reconstruct the dividend", prop.ForAll(
		func(a, b int8) bool {
			if b == 0 || (a == int8(I8Min) && b == -1) {
				return true
			}
			q := I8(a).DivEuclid(I8(b))
			r := I8(a).RemEuclid(I8(b))
			if r.IsNegative() {
				return false
			}
			if int16(r) >= int16(I8(b).UnsignedAbs()) {
				return false
			}
			return int16(q)*int16(b)+int16(r) == int16(a)
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.Property("abs diff is the wide absolute difference", prop.ForAll(
		func(a, b int8) bool {
			wide := int16(a) - int16(b)
			if wide < 0 {
				wide = -wide
			}
			return I8(a).AbsDiff(I8(b)) == U8(wide)
		},
		gen.Int8(),
		gen.Int8(),
	))

	properties.Property("unsigned abs is the exact magnitude", prop.ForAll(
		func(a int8) bool {
			wide := int16(a)
			if wide < 0 {
				wide = -wide
			}
			return I8(a).UnsignedAbs() == U8(wide)
		},
		gen.Int8(),
	))

	properties.Property("wrapping sub inverts wrapping add", prop.ForAll(
		func(a, b uint8) bool {
			return U8(a).WrappingAdd(U8(b)).WrappingSub(U8(b)) == U8(a)
		},
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

func TestArithWiderTypes(t *testing.T) {
	// The operator suite is shared, so spot checks suffice for the wider
	// widths.

	assert.Equal(t, I64Max, I64(I64Max-1).Add(1))
	require.PanicsWithError(t, "overflow", func() {
		I64Max.Add(1)
	})
	assert.Equal(t, I64Min, I64Max.WrappingAdd(1))
	assert.Equal(t, I64Max, I64Min.SaturatingDiv(-1))

	assert.Equal(t, U64(0), U64Max.WrappingAdd(1))
	require.PanicsWithError(t, "underflow", func() {
		U64(0).Sub(1)
	})

	assert.Equal(t, I16Min, I16(-16384).Mul(2))
	require.PanicsWithError(t, "overflow", func() {
		I16(16384).Mul(2)
	})

	assert.Equal(t, I32(-4), I32(-7).DivEuclid(2))
	assert.Equal(t, U32Max, U32Max.SaturatingMul(2))

	require.PanicsWithError(t, "overflow", func() {
		IsizeMin.Neg()
	})
	assert.Equal(t, UsizeMax, Usize(0).WrappingSub(1))
}
