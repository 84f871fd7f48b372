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

// U8 is an 8-bit unsigned integer. Operators that can overflow panic
// in their default form and come in Checked, Overflowing, Wrapping, and
// Saturating variants; see the package documentation for the contract of
// each form.
type U8 uint8

const (
	U8Min U8 = 0
	U8Max U8 = math.MaxUint8
)

// U8Bits is the width of U8 in bits.
const U8Bits uint32 = 8

func NewU8(v uint8) U8 {
	return U8(v)
}

func (v U8) Prim() uint8 {
	return uint8(v)
}

func (v U8) String() string {
	return format.Uint(uint64(v))
}

// Cmp returns -1 if v < o, 0 if v == o, and 1 if v > o.
func (v U8) Cmp(o U8) int {
	return cmpOrd(v, o)
}

func (v U8) Min(o U8) U8 {
	return minVal(v, o)
}

func (v U8) Max(o U8) U8 {
	return maxVal(v, o)
}

// Clamp returns v limited to the range [low, high].
func (v U8) Clamp(low, high U8) U8 {
	return clampVal(v, low, high)
}

// Default arithmetic. These are the "I asserted this can't happen"
// spellings: any overflow, underflow, or zero divisor panics.

func (v U8) Add(o U8) U8 {
	return add(v, o)
}

// Sub returns v - o, panicking on underflow.
func (v U8) Sub(o U8) U8 {
	return sub(v, o)
}

func (v U8) Mul(o U8) U8 {
	return mul(v, o)
}

// Div returns v / o, panicking if o is zero. Unsigned division cannot
// overflow.
func (v U8) Div(o U8) U8 {
	return div(v, o)
}

func (v U8) Rem(o U8) U8 {
	return rem(v, o)
}

// DivEuclid equals Div for unsigned operands; it is provided so the
// euclidean spelling is available on every type of the family.
func (v U8) DivEuclid(o U8) U8 {
	return divEuclid(v, o)
}

func (v U8) RemEuclid(o U8) U8 {
	return remEuclid(v, o)
}

// AbsDiff returns |v - o|, which is always representable.
func (v U8) AbsDiff(o U8) U8 {
	if v >= o {
		return v - o
	}
	return o - v
}

// Pow raises v to exp by iterated squaring, panicking on overflow.
func (v U8) Pow(exp uint32) U8 {
	return pow(v, exp)
}

// Checked arithmetic: false instead of a panic.

func (v U8) CheckedAdd(o U8) (U8, bool) {
	return checkedAdd(v, o)
}

func (v U8) CheckedSub(o U8) (U8, bool) {
	return checkedSub(v, o)
}

func (v U8) CheckedMul(o U8) (U8, bool) {
	return checkedMul(v, o)
}

func (v U8) CheckedDiv(o U8) (U8, bool) {
	return checkedDiv(v, o)
}

func (v U8) CheckedRem(o U8) (U8, bool) {
	return checkedRem(v, o)
}

func (v U8) CheckedDivEuclid(o U8) (U8, bool) {
	return checkedDivEuclid(v, o)
}

func (v U8) CheckedRemEuclid(o U8) (U8, bool) {
	return checkedRemEuclid(v, o)
}

// CheckedNeg reports a value only for zero, the single unsigned value
// whose negation is representable.
func (v U8) CheckedNeg() (U8, bool) {
	return checkedNeg(v)
}

func (v U8) CheckedPow(exp uint32) (U8, bool) {
	return checkedPow(v, exp)
}

// Overflowing arithmetic: the wrapped value plus a flag. The division
// forms still panic on a zero divisor, which is not an overflow.

func (v U8) OverflowingAdd(o U8) (U8, bool) {
	return overflow.Add(v, o)
}

func (v U8) OverflowingSub(o U8) (U8, bool) {
	return overflow.Sub(v, o)
}

func (v U8) OverflowingMul(o U8) (U8, bool) {
	return overflow.Mul(v, o)
}

func (v U8) OverflowingDiv(o U8) (U8, bool) {
	return overflowingDiv(v, o)
}

func (v U8) OverflowingRem(o U8) (U8, bool) {
	return overflowingRem(v, o)
}

func (v U8) OverflowingDivEuclid(o U8) (U8, bool) {
	return overflowingDivEuclid(v, o)
}

func (v U8) OverflowingRemEuclid(o U8) (U8, bool) {
	return overflowingRemEuclid(v, o)
}

func (v U8) OverflowingNeg() (U8, bool) {
	return overflowingNeg(v)
}

func (v U8) OverflowingPow(exp uint32) (U8, bool) {
	return overflow.Pow(v, exp)
}

// Wrapping arithmetic: the modular result, silently. Unsigned division
// never wraps, so WrappingDiv and WrappingRem only add the zero-divisor
// panic.

func (v U8) WrappingAdd(o U8) U8 {
	return wrappingAdd(v, o)
}

func (v U8) WrappingSub(o U8) U8 {
	return wrappingSub(v, o)
}

func (v U8) WrappingMul(o U8) U8 {
	return wrappingMul(v, o)
}

func (v U8) WrappingDiv(o U8) U8 {
	return wrappingDiv(v, o)
}

func (v U8) WrappingRem(o U8) U8 {
	return wrappingRem(v, o)
}

func (v U8) WrappingDivEuclid(o U8) U8 {
	return wrappingDivEuclid(v, o)
}

func (v U8) WrappingRemEuclid(o U8) U8 {
	return wrappingRemEuclid(v, o)
}

// WrappingNeg returns the two's complement of v, i.e. 0 - v wrapped.
func (v U8) WrappingNeg() U8 {
	return wrappingNeg(v)
}

func (v U8) WrappingPow(exp uint32) U8 {
	return wrappingPow(v, exp)
}

// Saturating arithmetic: clamps to 0 or U8Max instead of overflowing.

func (v U8) SaturatingAdd(o U8) U8 {
	return saturatingAdd(v, o)
}

func (v U8) SaturatingSub(o U8) U8 {
	return saturatingSub(v, o)
}

func (v U8) SaturatingMul(o U8) U8 {
	return saturatingMul(v, o)
}

func (v U8) SaturatingPow(exp uint32) U8 {
	return saturatingPow(v, exp)
}

// Unchecked arithmetic: the caller guarantees the operation cannot
// overflow, for example because it already range-checked the operands.
// The result is unspecified if the guarantee is violated. Never the
// default spelling.

func (v U8) UncheckedAdd(o U8) U8 {
	return v + o
}

func (v U8) UncheckedSub(o U8) U8 {
	return v - o
}

func (v U8) UncheckedMul(o U8) U8 {
	return v * o
}

// Powers of two.

func (v U8) IsPowerOfTwo() bool {
	return v != 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two greater than or equal
// to v, panicking when that power is not representable.
func (v U8) NextPowerOfTwo() U8 {
	return nextPowerOfTwo(v)
}

func (v U8) CheckedNextPowerOfTwo() (U8, bool) {
	return checkedNextPowerOfTwo(v)
}

// WrappingNextPowerOfTwo returns 0 when the next power of two is not
// representable.
func (v U8) WrappingNextPowerOfTwo() U8 {
	return wrappingNextPowerOfTwo(v)
}

// Shifts. A shift amount of U8Bits or more panics in the plain forms,
// reports overflow in the Checked/Overflowing forms, and is masked to
// amount mod U8Bits in the Wrapping forms. Bits shifted out are
// discarded; see RotateLeft and RotateRight to reintroduce them instead.

func (v U8) Shl(amount uint32) U8 {
	return shl(v, amount)
}

func (v U8) Shr(amount uint32) U8 {
	return shr(v, amount)
}

func (v U8) CheckedShl(amount uint32) (U8, bool) {
	return checkedShl(v, amount)
}

func (v U8) CheckedShr(amount uint32) (U8, bool) {
	return checkedShr(v, amount)
}

func (v U8) OverflowingShl(amount uint32) (U8, bool) {
	return overflow.Shl(v, amount)
}

func (v U8) OverflowingShr(amount uint32) (U8, bool) {
	return overflow.Shr(v, amount)
}

func (v U8) WrappingShl(amount uint32) U8 {
	return wrappingShl(v, amount)
}

func (v U8) WrappingShr(amount uint32) U8 {
	return wrappingShr(v, amount)
}

// Bit operations. All of them act on the unsigned bit pattern, so the sign
// bit is an ordinary bit.

func (v U8) CountOnes() uint32 {
	return bitops.OnesCount(v)
}

func (v U8) CountZeros() uint32 {
	return bitops.ZerosCount(v)
}

func (v U8) LeadingZeros() uint32 {
	return bitops.LeadingZeros(v)
}

func (v U8) TrailingZeros() uint32 {
	return bitops.TrailingZeros(v)
}

func (v U8) LeadingOnes() uint32 {
	return bitops.LeadingOnes(v)
}

func (v U8) TrailingOnes() uint32 {
	return bitops.TrailingOnes(v)
}

// RotateLeft rotates by n mod U8Bits places, reintroducing bits shifted
// out at the other end. Not a shift.
func (v U8) RotateLeft(n uint32) U8 {
	return bitops.RotateLeft(v, n)
}

func (v U8) RotateRight(n uint32) U8 {
	return bitops.RotateRight(v, n)
}

func (v U8) ReverseBits() U8 {
	return bitops.Reverse(v)
}

func (v U8) SwapBytes() U8 {
	return bitops.ReverseBytes(v)
}

// Logarithms, rounded down. The plain forms panic for a non-positive
// operand or a base smaller than 2; the Checked forms report false.

func (v U8) Log2() uint32 {
	return log2(v)
}

func (v U8) Log10() uint32 {
	return log10(v)
}

func (v U8) Log(base U8) uint32 {
	return log(v, base)
}

func (v U8) CheckedLog2() (uint32, bool) {
	return checkedLog2(v)
}

func (v U8) CheckedLog10() (uint32, bool) {
	return checkedLog10(v)
}

func (v U8) CheckedLog(base U8) (uint32, bool) {
	return checkedLog(v, base)
}

// Byte serialization. The big- and little-endian forms are bit-exact
// two's-complement encodings; the native-endian form matches the running
// platform's memory order.

func (v U8) ToBeBytes() [1]byte {
	return [1]byte{byte(v)}
}

func (v U8) ToLeBytes() [1]byte {
	return [1]byte{byte(v)}
}

func (v U8) ToNeBytes() [1]byte {
	return [1]byte{byte(v)}
}

// U8FromBeBytes is the exact inverse of ToBeBytes.
func U8FromBeBytes(b [1]byte) U8 {
	return U8(b[0])
}

func U8FromLeBytes(b [1]byte) U8 {
	return U8(b[0])
}

func U8FromNeBytes(b [1]byte) U8 {
	return U8(b[0])
}
