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
	"encoding/binary"
	"math"

	"github.com/fixint/fixint/bitops"
	"github.com/fixint/fixint/format"
	"github.com/fixint/fixint/overflow"
)

// I16 is a 16-bit signed integer. Operators that can overflow panic in
// their default form and come in Checked, Overflowing, Wrapping, and
// Saturating variants; see the package documentation for the contract of
// each form.
type I16 int16

const (
	I16Min I16 = math.MinInt16
	I16Max I16 = math.MaxInt16
)

// I16Bits is the width of I16 in bits.
const I16Bits uint32 = 16

func NewI16(v int16) I16 {
	return I16(v)
}

func (v I16) Prim() int16 {
	return int16(v)
}

func (v I16) String() string {
	return format.Int(int64(v))
}

// Cmp returns -1 if v < o, 0 if v == o, and 1 if v > o.
func (v I16) Cmp(o I16) int {
	return cmpOrd(v, o)
}

func (v I16) Min(o I16) I16 {
	return minVal(v, o)
}

func (v I16) Max(o I16) I16 {
	return maxVal(v, o)
}

// Clamp returns v limited to the range [low, high].
func (v I16) Clamp(low, high I16) I16 {
	return clampVal(v, low, high)
}

func (v I16) Signum() I16 {
	return signum(v)
}

func (v I16) IsNegative() bool {
	return v < 0
}

func (v I16) IsPositive() bool {
	return v > 0
}

// Default arithmetic. These are the "I asserted this can't happen"
// spellings: any overflow, zero divisor, or I16Min / -1 quotient panics.

func (v I16) Add(o I16) I16 {
	return add(v, o)
}

func (v I16) Sub(o I16) I16 {
	return sub(v, o)
}

func (v I16) Mul(o I16) I16 {
	return mul(v, o)
}

// Div returns v / o, truncated toward zero.
func (v I16) Div(o I16) I16 {
	return div(v, o)
}

// Rem returns v % o, with the sign of v.
func (v I16) Rem(o I16) I16 {
	return rem(v, o)
}

// DivEuclid returns the quotient q such that v = q*o + r with 0 <= r < |o|.
func (v I16) DivEuclid(o I16) I16 {
	return divEuclid(v, o)
}

// RemEuclid returns the remainder r such that v = q*o + r with 0 <= r < |o|.
func (v I16) RemEuclid(o I16) I16 {
	return remEuclid(v, o)
}

// Neg returns -v, panicking if v is I16Min.
func (v I16) Neg() I16 {
	return neg(v)
}

// Abs returns the absolute value of v, panicking if v is I16Min.
func (v I16) Abs() I16 {
	return abs(v)
}

// UnsignedAbs returns the exact magnitude of v as a U16. It never fails,
// including for I16Min.
func (v I16) UnsignedAbs() U16 {
	if v >= 0 {
		return U16(v)
	}
	return U16(wrappingNeg(v))
}

// AbsDiff returns |v - o| as a U16, which is always representable.
func (v I16) AbsDiff(o I16) U16 {
	if v >= o {
		return U16(v - o)
	}
	return U16(o - v)
}

// Pow raises v to exp by iterated squaring, panicking on overflow.
func (v I16) Pow(exp uint32) I16 {
	return pow(v, exp)
}

// Checked arithmetic: false instead of a panic.

func (v I16) CheckedAdd(o I16) (I16, bool) {
	return checkedAdd(v, o)
}

func (v I16) CheckedSub(o I16) (I16, bool) {
	return checkedSub(v, o)
}

func (v I16) CheckedMul(o I16) (I16, bool) {
	return checkedMul(v, o)
}

func (v I16) CheckedDiv(o I16) (I16, bool) {
	return checkedDiv(v, o)
}

func (v I16) CheckedRem(o I16) (I16, bool) {
	return checkedRem(v, o)
}

func (v I16) CheckedDivEuclid(o I16) (I16, bool) {
	return checkedDivEuclid(v, o)
}

func (v I16) CheckedRemEuclid(o I16) (I16, bool) {
	return checkedRemEuclid(v, o)
}

func (v I16) CheckedNeg() (I16, bool) {
	return checkedNeg(v)
}

func (v I16) CheckedAbs() (I16, bool) {
	return checkedAbs(v)
}

func (v I16) CheckedPow(exp uint32) (I16, bool) {
	return checkedPow(v, exp)
}

// Overflowing arithmetic: the wrapped value plus a flag. The division
// forms still panic on a zero divisor, which is not an overflow.

func (v I16) OverflowingAdd(o I16) (I16, bool) {
	return overflow.Add(v, o)
}

func (v I16) OverflowingSub(o I16) (I16, bool) {
	return overflow.Sub(v, o)
}

func (v I16) OverflowingMul(o I16) (I16, bool) {
	return overflow.Mul(v, o)
}

func (v I16) OverflowingDiv(o I16) (I16, bool) {
	return overflowingDiv(v, o)
}

func (v I16) OverflowingRem(o I16) (I16, bool) {
	return overflowingRem(v, o)
}

func (v I16) OverflowingDivEuclid(o I16) (I16, bool) {
	return overflowingDivEuclid(v, o)
}

func (v I16) OverflowingRemEuclid(o I16) (I16, bool) {
	return overflowingRemEuclid(v, o)
}

func (v I16) OverflowingNeg() (I16, bool) {
	return overflowingNeg(v)
}

func (v I16) OverflowingAbs() (I16, bool) {
	return overflowingAbs(v)
}

func (v I16) OverflowingPow(exp uint32) (I16, bool) {
	return overflow.Pow(v, exp)
}

// Wrapping arithmetic: the two's-complement modular result, silently.
// WrappingDiv and WrappingRem wrap only for I16Min / -1, where they
// return I16Min and 0; a zero divisor still panics.

func (v I16) WrappingAdd(o I16) I16 {
	return wrappingAdd(v, o)
}

func (v I16) WrappingSub(o I16) I16 {
	return wrappingSub(v, o)
}

func (v I16) WrappingMul(o I16) I16 {
	return wrappingMul(v, o)
}

func (v I16) WrappingDiv(o I16) I16 {
	return wrappingDiv(v, o)
}

func (v I16) WrappingRem(o I16) I16 {
	return wrappingRem(v, o)
}

func (v I16) WrappingDivEuclid(o I16) I16 {
	return wrappingDivEuclid(v, o)
}

func (v I16) WrappingRemEuclid(o I16) I16 {
	return wrappingRemEuclid(v, o)
}

func (v I16) WrappingNeg() I16 {
	return wrappingNeg(v)
}

func (v I16) WrappingAbs() I16 {
	return wrappingAbs(v)
}

func (v I16) WrappingPow(exp uint32) I16 {
	return wrappingPow(v, exp)
}

// Saturating arithmetic: clamps to I16Min or I16Max instead of overflowing.
// SaturatingDiv still panics on a zero divisor.

func (v I16) SaturatingAdd(o I16) I16 {
	return saturatingAdd(v, o)
}

func (v I16) SaturatingSub(o I16) I16 {
	return saturatingSub(v, o)
}

func (v I16) SaturatingMul(o I16) I16 {
	return saturatingMul(v, o)
}

func (v I16) SaturatingDiv(o I16) I16 {
	return saturatingDiv(v, o)
}

func (v I16) SaturatingNeg() I16 {
	return saturatingNeg(v)
}

func (v I16) SaturatingAbs() I16 {
	return saturatingAbs(v)
}

func (v I16) SaturatingPow(exp uint32) I16 {
	return saturatingPow(v, exp)
}

// Unchecked arithmetic: the caller guarantees the operation cannot
// overflow, for example because it already range-checked the operands.
// The result is unspecified if the guarantee is violated. Never the
// default spelling.

func (v I16) UncheckedAdd(o I16) I16 {
	return v + o
}

func (v I16) UncheckedSub(o I16) I16 {
	return v - o
}

func (v I16) UncheckedMul(o I16) I16 {
	return v * o
}

func (v I16) UncheckedNeg() I16 {
	return -v
}

// Shifts. A shift amount of I16Bits or more panics in the plain forms,
// reports overflow in the Checked/Overflowing forms, and is masked to
// amount mod I16Bits in the Wrapping forms. Bits shifted out are
// discarded; see RotateLeft and RotateRight to reintroduce them instead.

func (v I16) Shl(amount uint32) I16 {
	return shl(v, amount)
}

func (v I16) Shr(amount uint32) I16 {
	return shr(v, amount)
}

func (v I16) CheckedShl(amount uint32) (I16, bool) {
	return checkedShl(v, amount)
}

func (v I16) CheckedShr(amount uint32) (I16, bool) {
	return checkedShr(v, amount)
}

func (v I16) OverflowingShl(amount uint32) (I16, bool) {
	return overflow.Shl(v, amount)
}

func (v I16) OverflowingShr(amount uint32) (I16, bool) {
	return overflow.Shr(v, amount)
}

func (v I16) WrappingShl(amount uint32) I16 {
	return wrappingShl(v, amount)
}

func (v I16) WrappingShr(amount uint32) I16 {
	return wrappingShr(v, amount)
}

// Bit operations. All of them act on the unsigned bit pattern, so the sign
// bit is an ordinary bit.

func (v I16) CountOnes() uint32 {
	return bitops.OnesCount(v)
}

func (v I16) CountZeros() uint32 {
	return bitops.ZerosCount(v)
}

func (v I16) LeadingZeros() uint32 {
	return bitops.LeadingZeros(v)
}

func (v I16) TrailingZeros() uint32 {
	return bitops.TrailingZeros(v)
}

func (v I16) LeadingOnes() uint32 {
	return bitops.LeadingOnes(v)
}

func (v I16) TrailingOnes() uint32 {
	return bitops.TrailingOnes(v)
}

// RotateLeft rotates by n mod I16Bits places, reintroducing bits shifted
// out at the other end. Not a shift.
func (v I16) RotateLeft(n uint32) I16 {
	return bitops.RotateLeft(v, n)
}

func (v I16) RotateRight(n uint32) I16 {
	return bitops.RotateRight(v, n)
}

func (v I16) ReverseBits() I16 {
	return bitops.Reverse(v)
}

func (v I16) SwapBytes() I16 {
	return bitops.ReverseBytes(v)
}

// Logarithms, rounded down. The plain forms panic for a non-positive
// operand or a base smaller than 2; the Checked forms report false.

func (v I16) Log2() uint32 {
	return log2(v)
}

func (v I16) Log10() uint32 {
	return log10(v)
}

func (v I16) Log(base I16) uint32 {
	return log(v, base)
}

func (v I16) CheckedLog2() (uint32, bool) {
	return checkedLog2(v)
}

func (v I16) CheckedLog10() (uint32, bool) {
	return checkedLog10(v)
}

func (v I16) CheckedLog(base I16) (uint32, bool) {
	return checkedLog(v, base)
}

// Byte serialization. The big- and little-endian forms are bit-exact
// two's-complement encodings; the native-endian form matches the running
// platform's memory order.

func (v I16) ToBeBytes() [2]byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	return b
}

func (v I16) ToLeBytes() [2]byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(v))
	return b
}

func (v I16) ToNeBytes() [2]byte {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], uint16(v))
	return b
}

// I16FromBeBytes is the exact inverse of ToBeBytes.
func I16FromBeBytes(b [2]byte) I16 {
	return I16(binary.BigEndian.Uint16(b[:]))
}

func I16FromLeBytes(b [2]byte) I16 {
	return I16(binary.LittleEndian.Uint16(b[:]))
}

func I16FromNeBytes(b [2]byte) I16 {
	return I16(binary.NativeEndian.Uint16(b[:]))
}
