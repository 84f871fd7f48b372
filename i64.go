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

// I64 is a 64-bit signed integer. Operators that can overflow panic in
// their default form and come in Checked, Overflowing, Wrapping, and
// Saturating variants; see the package documentation for the contract of
// each form.
type I64 int64

const (
	I64Min I64 = math.MinInt64
	I64Max I64 = math.MaxInt64
)

// I64Bits is the width of I64 in bits.
const I64Bits uint32 = 64

func NewI64(v int64) I64 {
	return I64(v)
}

func (v I64) Prim() int64 {
	return int64(v)
}

func (v I64) String() string {
	return format.Int(int64(v))
}

// Cmp returns -1 if v < o, 0 if v == o, and 1 if v > o.
func (v I64) Cmp(o I64) int {
	return cmpOrd(v, o)
}

func (v I64) Min(o I64) I64 {
	return minVal(v, o)
}

func (v I64) Max(o I64) I64 {
	return maxVal(v, o)
}

// Clamp returns v limited to the range [low, high].
func (v I64) Clamp(low, high I64) I64 {
	return clampVal(v, low, high)
}

func (v I64) Signum() I64 {
	return signum(v)
}

func (v I64) IsNegative() bool {
	return v < 0
}

func (v I64) IsPositive() bool {
	return v > 0
}

// Default arithmetic. These are the "I asserted this can't happen"
// spellings: any overflow, zero divisor, or I64Min / -1 quotient panics.

func (v I64) Add(o I64) I64 {
	return add(v, o)
}

func (v I64) Sub(o I64) I64 {
	return sub(v, o)
}

func (v I64) Mul(o I64) I64 {
	return mul(v, o)
}

// Div returns v / o, truncated toward zero.
func (v I64) Div(o I64) I64 {
	return div(v, o)
}

// Rem returns v % o, with the sign of v.
func (v I64) Rem(o I64) I64 {
	return rem(v, o)
}

// DivEuclid returns the quotient q such that v = q*o + r with 0 <= r < |o|.
func (v I64) DivEuclid(o I64) I64 {
	return divEuclid(v, o)
}

// RemEuclid returns the remainder r such that v = q*o + r with 0 <= r < |o|.
func (v I64) RemEuclid(o I64) I64 {
	return remEuclid(v, o)
}

// Neg returns -v, panicking if v is I64Min.
func (v I64) Neg() I64 {
	return neg(v)
}

// Abs returns the absolute value of v, panicking if v is I64Min.
func (v I64) Abs() I64 {
	return abs(v)
}

// UnsignedAbs returns the exact magnitude of v as a U64. It never fails,
// including for I64Min.
func (v I64) UnsignedAbs() U64 {
	if v >= 0 {
		return U64(v)
	}
	return U64(wrappingNeg(v))
}

// AbsDiff returns |v - o| as a U64, which is always representable.
func (v I64) AbsDiff(o I64) U64 {
	if v >= o {
		return U64(v - o)
	}
	return U64(o - v)
}

// Pow raises v to exp by iterated squaring, panicking on overflow.
func (v I64) Pow(exp uint32) I64 {
	return pow(v, exp)
}

// Checked arithmetic: false instead of a panic.

func (v I64) CheckedAdd(o I64) (I64, bool) {
	return checkedAdd(v, o)
}

func (v I64) CheckedSub(o I64) (I64, bool) {
	return checkedSub(v, o)
}

func (v I64) CheckedMul(o I64) (I64, bool) {
	return checkedMul(v, o)
}

func (v I64) CheckedDiv(o I64) (I64, bool) {
	return checkedDiv(v, o)
}

func (v I64) CheckedRem(o I64) (I64, bool) {
	return checkedRem(v, o)
}

func (v I64) CheckedDivEuclid(o I64) (I64, bool) {
	return checkedDivEuclid(v, o)
}

func (v I64) CheckedRemEuclid(o I64) (I64, bool) {
	return checkedRemEuclid(v, o)
}

func (v I64) CheckedNeg() (I64, bool) {
	return checkedNeg(v)
}

func (v I64) CheckedAbs() (I64, bool) {
	return checkedAbs(v)
}

func (v I64) CheckedPow(exp uint32) (I64, bool) {
	return checkedPow(v, exp)
}

// Overflowing arithmetic: the wrapped value plus a flag. The division
// forms still panic on a zero divisor, which is not an overflow.

func (v I64) OverflowingAdd(o I64) (I64, bool) {
	return overflow.Add(v, o)
}

func (v I64) OverflowingSub(o I64) (I64, bool) {
	return overflow.Sub(v, o)
}

func (v I64) OverflowingMul(o I64) (I64, bool) {
	return overflow.Mul(v, o)
}

func (v I64) OverflowingDiv(o I64) (I64, bool) {
	return overflowingDiv(v, o)
}

func (v I64) OverflowingRem(o I64) (I64, bool) {
	return overflowingRem(v, o)
}

func (v I64) OverflowingDivEuclid(o I64) (I64, bool) {
	return overflowingDivEuclid(v, o)
}

func (v I64) OverflowingRemEuclid(o I64) (I64, bool) {
	return overflowingRemEuclid(v, o)
}

func (v I64) OverflowingNeg() (I64, bool) {
	return overflowingNeg(v)
}

func (v I64) OverflowingAbs() (I64, bool) {
	return overflowingAbs(v)
}

func (v I64) OverflowingPow(exp uint32) (I64, bool) {
	return overflow.Pow(v, exp)
}

// Wrapping arithmetic: the two's-complement modular result, silently.
// WrappingDiv and WrappingRem wrap only for I64Min / -1, where they
// return I64Min and 0; a zero divisor still panics.

func (v I64) WrappingAdd(o I64) I64 {
	return wrappingAdd(v, o)
}

func (v I64) WrappingSub(o I64) I64 {
	return wrappingSub(v, o)
}

func (v I64) WrappingMul(o I64) I64 {
	return wrappingMul(v, o)
}

func (v I64) WrappingDiv(o I64) I64 {
	return wrappingDiv(v, o)
}

func (v I64) WrappingRem(o I64) I64 {
	return wrappingRem(v, o)
}

func (v I64) WrappingDivEuclid(o I64) I64 {
	return wrappingDivEuclid(v, o)
}

func (v I64) WrappingRemEuclid(o I64) I64 {
	return wrappingRemEuclid(v, o)
}

func (v I64) WrappingNeg() I64 {
	return wrappingNeg(v)
}

func (v I64) WrappingAbs() I64 {
	return wrappingAbs(v)
}

func (v I64) WrappingPow(exp uint32) I64 {
	return wrappingPow(v, exp)
}

// Saturating arithmetic: clamps to I64Min or I64Max instead of overflowing.
// SaturatingDiv still panics on a zero divisor.

func (v I64) SaturatingAdd(o I64) I64 {
	return saturatingAdd(v, o)
}

func (v I64) SaturatingSub(o I64) I64 {
	return saturatingSub(v, o)
}

func (v I64) SaturatingMul(o I64) I64 {
	return saturatingMul(v, o)
}

func (v I64) SaturatingDiv(o I64) I64 {
	return saturatingDiv(v, o)
}

func (v I64) SaturatingNeg() I64 {
	return saturatingNeg(v)
}

func (v I64) SaturatingAbs() I64 {
	return saturatingAbs(v)
}

func (v I64) SaturatingPow(exp uint32) I64 {
	return saturatingPow(v, exp)
}

// Unchecked arithmetic: the caller guarantees the operation cannot
// overflow, for example because it already range-checked the operands.
// The result is unspecified if the guarantee is violated. Never the
// default spelling.

func (v I64) UncheckedAdd(o I64) I64 {
	return v + o
}

func (v I64) UncheckedSub(o I64) I64 {
	return v - o
}

func (v I64) UncheckedMul(o I64) I64 {
	return v * o
}

func (v I64) UncheckedNeg() I64 {
	return -v
}

// Shifts. A shift amount of I64Bits or more panics in the plain forms,
// reports overflow in the Checked/Overflowing forms, and is masked to
// amount mod I64Bits in the Wrapping forms. Bits shifted out are
// discarded; see RotateLeft and RotateRight to reintroduce them instead.

func (v I64) Shl(amount uint32) I64 {
	return shl(v, amount)
}

func (v I64) Shr(amount uint32) I64 {
	return shr(v, amount)
}

func (v I64) CheckedShl(amount uint32) (I64, bool) {
	return checkedShl(v, amount)
}

func (v I64) CheckedShr(amount uint32) (I64, bool) {
	return checkedShr(v, amount)
}

func (v I64) OverflowingShl(amount uint32) (I64, bool) {
	return overflow.Shl(v, amount)
}

func (v I64) OverflowingShr(amount uint32) (I64, bool) {
	return overflow.Shr(v, amount)
}

func (v I64) WrappingShl(amount uint32) I64 {
	return wrappingShl(v, amount)
}

func (v I64) WrappingShr(amount uint32) I64 {
	return wrappingShr(v, amount)
}

// Bit operations. All of them act on the unsigned bit pattern, so the sign
// bit is an ordinary bit.

func (v I64) CountOnes() uint32 {
	return bitops.OnesCount(v)
}

func (v I64) CountZeros() uint32 {
	return bitops.ZerosCount(v)
}

func (v I64) LeadingZeros() uint32 {
	return bitops.LeadingZeros(v)
}

func (v I64) TrailingZeros() uint32 {
	return bitops.TrailingZeros(v)
}

func (v I64) LeadingOnes() uint32 {
	return bitops.LeadingOnes(v)
}

func (v I64) TrailingOnes() uint32 {
	return bitops.TrailingOnes(v)
}

// RotateLeft rotates by n mod I64Bits places, reintroducing bits shifted
// out at the other end. Not a shift.
func (v I64) RotateLeft(n uint32) I64 {
	return bitops.RotateLeft(v, n)
}

func (v I64) RotateRight(n uint32) I64 {
	return bitops.RotateRight(v, n)
}

func (v I64) ReverseBits() I64 {
	return bitops.Reverse(v)
}

func (v I64) SwapBytes() I64 {
	return bitops.ReverseBytes(v)
}

// Logarithms, rounded down. The plain forms panic for a non-positive
// operand or a base smaller than 2; the Checked forms report false.

func (v I64) Log2() uint32 {
	return log2(v)
}

func (v I64) Log10() uint32 {
	return log10(v)
}

func (v I64) Log(base I64) uint32 {
	return log(v, base)
}

func (v I64) CheckedLog2() (uint32, bool) {
	return checkedLog2(v)
}

func (v I64) CheckedLog10() (uint32, bool) {
	return checkedLog10(v)
}

func (v I64) CheckedLog(base I64) (uint32, bool) {
	return checkedLog(v, base)
}

// Byte serialization. The big- and little-endian forms are bit-exact
// two's-complement encodings; the native-endian form matches the running
// platform's memory order.

func (v I64) ToBeBytes() [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return b
}

func (v I64) ToLeBytes() [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return b
}

func (v I64) ToNeBytes() [8]byte {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], uint64(v))
	return b
}

// I64FromBeBytes is the exact inverse of ToBeBytes.
func I64FromBeBytes(b [8]byte) I64 {
	return I64(binary.BigEndian.Uint64(b[:]))
}

func I64FromLeBytes(b [8]byte) I64 {
	return I64(binary.LittleEndian.Uint64(b[:]))
}

func I64FromNeBytes(b [8]byte) I64 {
	return I64(binary.NativeEndian.Uint64(b[:]))
}
