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

// I32 is a 32-bit signed integer. Operators that can overflow panic in
// their default form and come in Checked, Overflowing, Wrapping, and
// Saturating variants; see the package documentation for the contract of
// each form.
type I32 int32

const (
	I32Min I32 = math.MinInt32
	I32Max I32 = math.MaxInt32
)

// I32Bits is the width of I32 in bits.
const I32Bits uint32 = 32

func NewI32(v int32) I32 {
	return I32(v)
}

func (v I32) Prim() int32 {
	return int32(v)
}

func (v I32) String() string {
	return format.Int(int64(v))
}

// Cmp returns -1 if v < o, 0 if v == o, and 1 if v > o.
func (v I32) Cmp(o I32) int {
	return cmpOrd(v, o)
}

func (v I32) Min(o I32) I32 {
	return minVal(v, o)
}

func (v I32) Max(o I32) I32 {
	return maxVal(v, o)
}

// Clamp returns v limited to the range [low, high].
func (v I32) Clamp(low, high I32) I32 {
	return clampVal(v, low, high)
}

func (v I32) Signum() I32 {
	return signum(v)
}

func (v I32) IsNegative() bool {
	return v < 0
}

func (v I32) IsPositive() bool {
	return v > 0
}

// Default arithmetic. These are the "I asserted this can't happen"
// spellings: any overflow, zero divisor, or I32Min / -1 quotient panics.

func (v I32) Add(o I32) I32 {
	return add(v, o)
}

func (v I32) Sub(o I32) I32 {
	return sub(v, o)
}

func (v I32) Mul(o I32) I32 {
	return mul(v, o)
}

// Div returns v / o, truncated toward zero.
func (v I32) Div(o I32) I32 {
	return div(v, o)
}

// Rem returns v % o, with the sign of v.
func (v I32) Rem(o I32) I32 {
	return rem(v, o)
}

// DivEuclid returns the quotient q such that v = q*o + r with 0 <= r < |o|.
func (v I32) DivEuclid(o I32) I32 {
	return divEuclid(v, o)
}

// RemEuclid returns the remainder r such that v = q*o + r with 0 <= r < |o|.
func (v I32) RemEuclid(o I32) I32 {
	return remEuclid(v, o)
}

// Neg returns -v, panicking if v is I32Min.
func (v I32) Neg() I32 {
	return neg(v)
}

// Abs returns the absolute value of v, panicking if v is I32Min.
func (v I32) Abs() I32 {
	return abs(v)
}

// UnsignedAbs returns the exact magnitude of v as a U32. It never fails,
// including for I32Min.
func (v I32) UnsignedAbs() U32 {
	if v >= 0 {
		return U32(v)
	}
	return U32(wrappingNeg(v))
}

// AbsDiff returns |v - o| as a U32, which is always representable.
func (v I32) AbsDiff(o I32) U32 {
	if v >= o {
		return U32(v - o)
	}
	return U32(o - v)
}

// Pow raises v to exp by iterated squaring, panicking on overflow.
func (v I32) Pow(exp uint32) I32 {
	return pow(v, exp)
}

// Checked arithmetic: false instead of a panic.

func (v I32) CheckedAdd(o I32) (I32, bool) {
	return checkedAdd(v, o)
}

func (v I32) CheckedSub(o I32) (I32, bool) {
	return checkedSub(v, o)
}

func (v I32) CheckedMul(o I32) (I32, bool) {
	return checkedMul(v, o)
}

func (v I32) CheckedDiv(o I32) (I32, bool) {
	return checkedDiv(v, o)
}

func (v I32) CheckedRem(o I32) (I32, bool) {
	return checkedRem(v, o)
}

func (v I32) CheckedDivEuclid(o I32) (I32, bool) {
	return checkedDivEuclid(v, o)
}

func (v I32) CheckedRemEuclid(o I32) (I32, bool) {
	return checkedRemEuclid(v, o)
}

func (v I32) CheckedNeg() (I32, bool) {
	return checkedNeg(v)
}

func (v I32) CheckedAbs() (I32, bool) {
	return checkedAbs(v)
}

func (v I32) CheckedPow(exp uint32) (I32, bool) {
	return checkedPow(v, exp)
}

// Overflowing arithmetic: the wrapped value plus a flag. The division
// forms still panic on a zero divisor, which is not an overflow.

func (v I32) OverflowingAdd(o I32) (I32, bool) {
	return overflow.Add(v, o)
}

func (v I32) OverflowingSub(o I32) (I32, bool) {
	return overflow.Sub(v, o)
}

func (v I32) OverflowingMul(o I32) (I32, bool) {
	return overflow.Mul(v, o)
}

func (v I32) OverflowingDiv(o I32) (I32, bool) {
	return overflowingDiv(v, o)
}

func (v I32) OverflowingRem(o I32) (I32, bool) {
	return overflowingRem(v, o)
}

func (v I32) OverflowingDivEuclid(o I32) (I32, bool) {
	return overflowingDivEuclid(v, o)
}

func (v I32) OverflowingRemEuclid(o I32) (I32, bool) {
	return overflowingRemEuclid(v, o)
}

func (v I32) OverflowingNeg() (I32, bool) {
	return overflowingNeg(v)
}

func (v I32) OverflowingAbs() (I32, bool) {
	return overflowingAbs(v)
}

func (v I32) OverflowingPow(exp uint32) (I32, bool) {
	return overflow.Pow(v, exp)
}

// Wrapping arithmetic: the two's-complement modular result, silently.
// WrappingDiv and WrappingRem wrap only for I32Min / -1, where they
// return I32Min and 0; a zero divisor still panics.

func (v I32) WrappingAdd(o I32) I32 {
	return wrappingAdd(v, o)
}

func (v I32) WrappingSub(o I32) I32 {
	return wrappingSub(v, o)
}

func (v I32) WrappingMul(o I32) I32 {
	return wrappingMul(v, o)
}

func (v I32) WrappingDiv(o I32) I32 {
	return wrappingDiv(v, o)
}

func (v I32) WrappingRem(o I32) I32 {
	return wrappingRem(v, o)
}

func (v I32) WrappingDivEuclid(o I32) I32 {
	return wrappingDivEuclid(v, o)
}

func (v I32) WrappingRemEuclid(o I32) I32 {
	return wrappingRemEuclid(v, o)
}

func (v I32) WrappingNeg() I32 {
	return wrappingNeg(v)
}

func (v I32) WrappingAbs() I32 {
	return wrappingAbs(v)
}

func (v I32) WrappingPow(exp uint32) I32 {
	return wrappingPow(v, exp)
}

// Saturating arithmetic: clamps to I32Min or I32Max instead of overflowing.
// SaturatingDiv still panics on a zero divisor.

func (v I32) SaturatingAdd(o I32) I32 {
	return saturatingAdd(v, o)
}

func (v I32) SaturatingSub(o I32) I32 {
	return saturatingSub(v, o)
}

func (v I32) SaturatingMul(o I32) I32 {
	return saturatingMul(v, o)
}

func (v I32) SaturatingDiv(o I32) I32 {
	return saturatingDiv(v, o)
}

func (v I32) SaturatingNeg() I32 {
	return saturatingNeg(v)
}

func (v I32) SaturatingAbs() I32 {
	return saturatingAbs(v)
}

func (v I32) SaturatingPow(exp uint32) I32 {
	return saturatingPow(v, exp)
}

// Unchecked arithmetic: the caller guarantees the operation cannot
// overflow, for example because it already range-checked the operands.
// The result is unspecified if the guarantee is violated. Never the
// default spelling.

func (v I32) UncheckedAdd(o I32) I32 {
	return v + o
}

func (v I32) UncheckedSub(o I32) I32 {
	return v - o
}

func (v I32) UncheckedMul(o I32) I32 {
	return v * o
}

func (v I32) UncheckedNeg() I32 {
	return -v
}

// Shifts. A shift amount of I32Bits or more panics in the plain forms,
// reports overflow in the Checked/Overflowing forms, and is masked to
// amount mod I32Bits in the Wrapping forms. Bits shifted out are
// discarded; see RotateLeft and RotateRight to reintroduce them instead.

func (v I32) Shl(amount uint32) I32 {
	return shl(v, amount)
}

func (v I32) Shr(amount uint32) I32 {
	return shr(v, amount)
}

func (v I32) CheckedShl(amount uint32) (I32, bool) {
	return checkedShl(v, amount)
}

func (v I32) CheckedShr(amount uint32) (I32, bool) {
	return checkedShr(v, amount)
}

func (v I32) OverflowingShl(amount uint32) (I32, bool) {
	return overflow.Shl(v, amount)
}

func (v I32) OverflowingShr(amount uint32) (I32, bool) {
	return overflow.Shr(v, amount)
}

func (v I32) WrappingShl(amount uint32) I32 {
	return wrappingShl(v, amount)
}

func (v I32) WrappingShr(amount uint32) I32 {
	return wrappingShr(v, amount)
}

// Bit operations. All of them act on the unsigned bit pattern, so the sign
// bit is an ordinary bit.

func (v I32) CountOnes() uint32 {
	return bitops.OnesCount(v)
}

func (v I32) CountZeros() uint32 {
	return bitops.ZerosCount(v)
}

func (v I32) LeadingZeros() uint32 {
	return bitops.LeadingZeros(v)
}

func (v I32) TrailingZeros() uint32 {
	return bitops.TrailingZeros(v)
}

func (v I32) LeadingOnes() uint32 {
	return bitops.LeadingOnes(v)
}

func (v I32) TrailingOnes() uint32 {
	return bitops.TrailingOnes(v)
}

// RotateLeft rotates by n mod I32Bits places, reintroducing bits shifted
// out at the other end. Not a shift.
func (v I32) RotateLeft(n uint32) I32 {
	return bitops.RotateLeft(v, n)
}

func (v I32) RotateRight(n uint32) I32 {
	return bitops.RotateRight(v, n)
}

func (v I32) ReverseBits() I32 {
	return bitops.Reverse(v)
}

func (v I32) SwapBytes() I32 {
	return bitops.ReverseBytes(v)
}

// Logarithms, rounded down. The plain forms panic for a non-positive
// operand or a base smaller than 2; the Checked forms report false.

func (v I32) Log2() uint32 {
	return log2(v)
}

func (v I32) Log10() uint32 {
	return log10(v)
}

func (v I32) Log(base I32) uint32 {
	return log(v, base)
}

func (v I32) CheckedLog2() (uint32, bool) {
	return checkedLog2(v)
}

func (v I32) CheckedLog10() (uint32, bool) {
	return checkedLog10(v)
}

func (v I32) CheckedLog(base I32) (uint32, bool) {
	return checkedLog(v, base)
}

// Byte serialization. The big- and little-endian forms are bit-exact
// two's-complement encodings; the native-endian form matches the running
// platform's memory order.

func (v I32) ToBeBytes() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return b
}

func (v I32) ToLeBytes() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return b
}

func (v I32) ToNeBytes() [4]byte {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], uint32(v))
	return b
}

// I32FromBeBytes is the exact inverse of ToBeBytes.
func I32FromBeBytes(b [4]byte) I32 {
	return I32(binary.BigEndian.Uint32(b[:]))
}

func I32FromLeBytes(b [4]byte) I32 {
	return I32(binary.LittleEndian.Uint32(b[:]))
}

func I32FromNeBytes(b [4]byte) I32 {
	return I32(binary.NativeEndian.Uint32(b[:]))
}
