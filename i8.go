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

	"github.com/fixint/fixint/bitops"
	"github.com/fixint/fixint/format"
	"github.com/fixint/fixint/overflow"
)

// I8 is an 8-bit signed integer. Operators that can overflow panic in
// their default form and come in Checked, Overflowing, Wrapping, and
// Saturating variants; see the package documentation for the contract of
// each form.
type I8 int8

const (
	I8Min I8 = math.MinInt8
	I8Max I8 = math.MaxInt8
)

// I8Bits is the width of I8 in bits.
const I8Bits uint32 = 8

func NewI8(v int8) I8 {
	return I8(v)
}

func (v I8) Prim() int8 {
	return int8(v)
}

func (v I8) String() string {
	return format.Int(int64(v))
}

// Cmp returns -1 if v < o, 0 if v == o, and 1 if v > o.
func (v I8) Cmp(o I8) int {
	return cmpOrd(v, o)
}

func (v I8) Min(o I8) I8 {
	return minVal(v, o)
}

func (v I8) Max(o I8) I8 {
	return maxVal(v, o)
}

// Clamp returns v limited to the range [low, high].
func (v I8) Clamp(low, high I8) I8 {
	return clampVal(v, low, high)
}

func (v I8) Signum() I8 {
	return signum(v)
}

func (v I8) IsNegative() bool {
	return v < 0
}

func (v I8) IsPositive() bool {
	return v > 0
}

// Default arithmetic. These are the "I asserted this can't happen"
// spellings: any overflow, zero divisor, or I8Min / -1 quotient panics.

func (v I8) Add(o I8) I8 {
	return add(v, o)
}

func (v I8) Sub(o I8) I8 {
	return sub(v, o)
}

func (v I8) Mul(o I8) I8 {
	return mul(v, o)
}

// Div returns v / o, truncated toward zero.
func (v I8) Div(o I8) I8 {
	return div(v, o)
}

// Rem returns v % o, with the sign of v.
func (v I8) Rem(o I8) I8 {
	return rem(v, o)
}

// DivEuclid returns the quotient q such that v = q*o + r with 0 <= r < |o|.
func (v I8) DivEuclid(o I8) I8 {
	return divEuclid(v, o)
}

// RemEuclid returns the remainder r such that v = q*o + r with 0 <= r < |o|.
func (v I8) RemEuclid(o I8) I8 {
	return remEuclid(v, o)
}

// Neg returns -v, panicking if v is I8Min.
func (v I8) Neg() I8 {
	return neg(v)
}

// Abs returns the absolute value of v, panicking if v is I8Min.
func (v I8) Abs() I8 {
	return abs(v)
}

// UnsignedAbs returns the exact magnitude of v as a U8. It never fails,
// including for I8Min.
func (v I8) UnsignedAbs() U8 {
	if v >= 0 {
		return U8(v)
	}
	return U8(wrappingNeg(v))
}

// AbsDiff returns |v - o| as a U8, which is always representable.
func (v I8) AbsDiff(o I8) U8 {
	if v >= o {
		return U8(v - o)
	}
	return U8(o - v)
}

// Pow raises v to exp by iterated squaring, panicking on overflow.
func (v I8) Pow(exp uint32) I8 {
	return pow(v, exp)
}

// Checked arithmetic: false instead of a panic.

func (v I8) CheckedAdd(o I8) (I8, bool) {
	return checkedAdd(v, o)
}

func (v I8) CheckedSub(o I8) (I8, bool) {
	return checkedSub(v, o)
}

func (v I8) CheckedMul(o I8) (I8, bool) {
	return checkedMul(v, o)
}

func (v I8) CheckedDiv(o I8) (I8, bool) {
	return checkedDiv(v, o)
}

func (v I8) CheckedRem(o I8) (I8, bool) {
	return checkedRem(v, o)
}

func (v I8) CheckedDivEuclid(o I8) (I8, bool) {
	return checkedDivEuclid(v, o)
}

func (v I8) CheckedRemEuclid(o I8) (I8, bool) {
	return checkedRemEuclid(v, o)
}

func (v I8) CheckedNeg() (I8, bool) {
	return checkedNeg(v)
}

func (v I8) CheckedAbs() (I8, bool) {
	return checkedAbs(v)
}

func (v I8) CheckedPow(exp uint32) (I8, bool) {
	return checkedPow(v, exp)
}

// Overflowing arithmetic: the wrapped value plus a flag. The division
// forms still panic on a zero divisor, which is not an overflow.

func (v I8) OverflowingAdd(o I8) (I8, bool) {
	return overflow.Add(v, o)
}

func (v I8) OverflowingSub(o I8) (I8, bool) {
	return overflow.Sub(v, o)
}

func (v I8) OverflowingMul(o I8) (I8, bool) {
	return overflow.Mul(v, o)
}

func (v I8) OverflowingDiv(o I8) (I8, bool) {
	return overflowingDiv(v, o)
}

func (v I8) OverflowingRem(o I8) (I8, bool) {
	return overflowingRem(v, o)
}

func (v I8) OverflowingDivEuclid(o I8) (I8, bool) {
	return overflowingDivEuclid(v, o)
}

func (v I8) OverflowingRemEuclid(o I8) (I8, bool) {
	return overflowingRemEuclid(v, o)
}

func (v I8) OverflowingNeg() (I8, bool) {
	return overflowingNeg(v)
}

func (v I8) OverflowingAbs() (I8, bool) {
	return overflowingAbs(v)
}

func (v I8) OverflowingPow(exp uint32) (I8, bool) {
	return overflow.Pow(v, exp)
}

// Wrapping arithmetic: the two's-complement modular result, silently.
// WrappingDiv and WrappingRem wrap only for I8Min / -1, where they
// return I8Min and 0; a zero divisor still panics.

func (v I8) WrappingAdd(o I8) I8 {
	return wrappingAdd(v, o)
}

func (v I8) WrappingSub(o I8) I8 {
	return wrappingSub(v, o)
}

func (v I8) WrappingMul(o I8) I8 {
	return wrappingMul(v, o)
}

func (v I8) WrappingDiv(o I8) I8 {
	return wrappingDiv(v, o)
}

func (v I8) WrappingRem(o I8) I8 {
	return wrappingRem(v, o)
}

func (v I8) WrappingDivEuclid(o I8) I8 {
	return wrappingDivEuclid(v, o)
}

func (v I8) WrappingRemEuclid(o I8) I8 {
	return wrappingRemEuclid(v, o)
}

func (v I8) WrappingNeg() I8 {
	return wrappingNeg(v)
}

func (v I8) WrappingAbs() I8 {
	return wrappingAbs(v)
}

func (v I8) WrappingPow(exp uint32) I8 {
	return wrappingPow(v, exp)
}

// Saturating arithmetic: clamps to I8Min or I8Max instead of overflowing.
// SaturatingDiv still panics on a zero divisor.

func (v I8) SaturatingAdd(o I8) I8 {
	return saturatingAdd(v, o)
}

func (v I8) SaturatingSub(o I8) I8 {
	return saturatingSub(v, o)
}

func (v I8) SaturatingMul(o I8) I8 {
	return saturatingMul(v, o)
}

func (v I8) SaturatingDiv(o I8) I8 {
	return saturatingDiv(v, o)
}

func (v I8) SaturatingNeg() I8 {
	return saturatingNeg(v)
}

func (v I8) SaturatingAbs() I8 {
	return saturatingAbs(v)
}

func (v I8) SaturatingPow(exp uint32) I8 {
	return saturatingPow(v, exp)
}

// Unchecked arithmetic: the caller guarantees the operation cannot
// overflow, for example because it already range-checked the operands.
// The result is unspecified if the guarantee is violated. Never the
// default spelling.

func (v I8) UncheckedAdd(o I8) I8 {
	return v + o
}

func (v I8) UncheckedSub(o I8) I8 {
	return v - o
}

func (v I8) UncheckedMul(o I8) I8 {
	return v * o
}

func (v I8) UncheckedNeg() I8 {
	return -v
}

// Shifts. A shift amount of I8Bits or more panics in the plain forms,
// reports overflow in the Checked/Overflowing forms, and is masked to
// amount mod I8Bits in the Wrapping forms. Bits shifted out are
// discarded; see RotateLeft and RotateRight to reintroduce them instead.

func (v I8) Shl(amount uint32) I8 {
	return shl(v, amount)
}

func (v I8) Shr(amount uint32) I8 {
	return shr(v, amount)
}

func (v I8) CheckedShl(amount uint32) (I8, bool) {
	return checkedShl(v, amount)
}

func (v I8) CheckedShr(amount uint32) (I8, bool) {
	return checkedShr(v, amount)
}

func (v I8) OverflowingShl(amount uint32) (I8, bool) {
	return overflow.Shl(v, amount)
}

func (v I8) OverflowingShr(amount uint32) (I8, bool) {
	return overflow.Shr(v, amount)
}

func (v I8) WrappingShl(amount uint32) I8 {
	return wrappingShl(v, amount)
}

func (v I8) WrappingShr(amount uint32) I8 {
	return wrappingShr(v, amount)
}

// Bit operations. All of them act on the unsigned bit pattern, so the sign
// bit is an ordinary bit.

func (v I8) CountOnes() uint32 {
	return bitops.OnesCount(v)
}

func (v I8) CountZeros() uint32 {
	return bitops.ZerosCount(v)
}

func (v I8) LeadingZeros() uint32 {
	return bitops.LeadingZeros(v)
}

func (v I8) TrailingZeros() uint32 {
	return bitops.TrailingZeros(v)
}

func (v I8) LeadingOnes() uint32 {
	return bitops.LeadingOnes(v)
}

func (v I8) TrailingOnes() uint32 {
	return bitops.TrailingOnes(v)
}

// RotateLeft rotates by n mod I8Bits places, reintroducing bits shifted
// out at the other end. Not a shift.
func (v I8) RotateLeft(n uint32) I8 {
	return bitops.RotateLeft(v, n)
}

func (v I8) RotateRight(n uint32) I8 {
	return bitops.RotateRight(v, n)
}

func (v I8) ReverseBits() I8 {
	return bitops.Reverse(v)
}

func (v I8) SwapBytes() I8 {
	return bitops.ReverseBytes(v)
}

// Logarithms, rounded down. The plain forms panic for a non-positive
// operand or a base smaller than 2; the Checked forms report false.

func (v I8) Log2() uint32 {
	return log2(v)
}

func (v I8) Log10() uint32 {
	return log10(v)
}

func (v I8) Log(base I8) uint32 {
	return log(v, base)
}

func (v I8) CheckedLog2() (uint32, bool) {
	return checkedLog2(v)
}

func (v I8) CheckedLog10() (uint32, bool) {
	return checkedLog10(v)
}

func (v I8) CheckedLog(base I8) (uint32, bool) {
	return checkedLog(v, base)
}

// Byte serialization. The big- and little-endian forms are bit-exact
// two's-complement encodings; the native-endian form matches the running
// platform's memory order.

func (v I8) ToBeBytes() [1]byte {
	return [1]byte{byte(v)}
}

func (v I8) ToLeBytes() [1]byte {
	return [1]byte{byte(v)}
}

func (v I8) ToNeBytes() [1]byte {
	return [1]byte{byte(v)}
}

// I8FromBeBytes is the exact inverse of ToBeBytes.
func I8FromBeBytes(b [1]byte) I8 {
	return I8(b[0])
}

func I8FromLeBytes(b [1]byte) I8 {
	return I8(b[0])
}

func I8FromNeBytes(b [1]byte) I8 {
	return I8(b[0])
}
