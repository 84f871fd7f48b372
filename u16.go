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

// U16 is a 16-bit unsigned integer. Operators that can overflow panic
// in their default form and come in Checked, Overflowing, Wrapping, and
// Saturating variants; see the package documentation for the contract of
// each form.
type U16 uint16

const (
	U16Min U16 = 0
	U16Max U16 = math.MaxUint16
)

// U16Bits is the width of U16 in bits.
const U16Bits uint32 = 16

func NewU16(v uint16) U16 {
	return U16(v)
}

func (v U16) Prim() uint16 {
	return uint16(v)
}

func (v U16) String() string {
	return format.Uint(uint64(v))
}

// Cmp returns -1 if v < o, 0 if v == o, and 1 if v > o.
func (v U16) Cmp(o U16) int {
	return cmpOrd(v, o)
}

func (v U16) Min(o U16) U16 {
	return minVal(v, o)
}

func (v U16) Max(o U16) U16 {
	return maxVal(v, o)
}

// Clamp returns v limited to the range [low, high].
func (v U16) Clamp(low, high U16) U16 {
	return clampVal(v, low, high)
}

// Default arithmetic. These are the "I asserted this can't happen"
// spellings: any overflow, underflow, or zero divisor panics.

func (v U16) Add(o U16) U16 {
	return add(v, o)
}

// Sub returns v - o, panicking on underflow.
func (v U16) Sub(o U16) U16 {
	return sub(v, o)
}

func (v U16) Mul(o U16) U16 {
	return mul(v, o)
}

// Div returns v / o, panicking if o is zero. Unsigned division cannot
// overflow.
func (v U16) Div(o U16) U16 {
	return div(v, o)
}

func (v U16) Rem(o U16) U16 {
	return rem(v, o)
}

// DivEuclid equals Div for unsigned operands; it is provided so the
// euclidean spelling is available on every type of the family.
func (v U16) DivEuclid(o U16) U16 {
	return divEuclid(v, o)
}

func (v U16) RemEuclid(o U16) U16 {
	return remEuclid(v, o)
}

// AbsDiff returns |v - o|, which is always representable.
func (v U16) AbsDiff(o U16) U16 {
	if v >= o {
		return v - o
	}
	return o - v
}

// Pow raises v to exp by iterated squaring, panicking on overflow.
func (v U16) Pow(exp uint32) U16 {
	return pow(v, exp)
}

// Checked arithmetic: false instead of a panic.

func (v U16) CheckedAdd(o U16) (U16, bool) {
	return checkedAdd(v, o)
}

func (v U16) CheckedSub(o U16) (U16, bool) {
	return checkedSub(v, o)
}

func (v U16) CheckedMul(o U16) (U16, bool) {
	return checkedMul(v, o)
}

func (v U16) CheckedDiv(o U16) (U16, bool) {
	return checkedDiv(v, o)
}

func (v U16) CheckedRem(o U16) (U16, bool) {
	return checkedRem(v, o)
}

func (v U16) CheckedDivEuclid(o U16) (U16, bool) {
	return checkedDivEuclid(v, o)
}

func (v U16) CheckedRemEuclid(o U16) (U16, bool) {
	return checkedRemEuclid(v, o)
}

// CheckedNeg reports a value only for zero, the single unsigned value
// whose negation is representable.
func (v U16) CheckedNeg() (U16, bool) {
	return checkedNeg(v)
}

func (v U16) CheckedPow(exp uint32) (U16, bool) {
	return checkedPow(v, exp)
}

// Overflowing arithmetic: the wrapped value plus a flag. The division
// forms still panic on a zero divisor, which is not an overflow.

func (v U16) OverflowingAdd(o U16) (U16, bool) {
	return overflow.Add(v, o)
}

func (v U16) OverflowingSub(o U16) (U16, bool) {
	return overflow.Sub(v, o)
}

func (v U16) OverflowingMul(o U16) (U16, bool) {
	return overflow.Mul(v, o)
}

func (v U16) OverflowingDiv(o U16) (U16, bool) {
	return overflowingDiv(v, o)
}

func (v U16) OverflowingRem(o U16) (U16, bool) {
	return overflowingRem(v, o)
}

func (v U16) OverflowingDivEuclid(o U16) (U16, bool) {
	return overflowingDivEuclid(v, o)
}

func (v U16) OverflowingRemEuclid(o U16) (U16, bool) {
	return overflowingRemEuclid(v, o)
}

func (v U16) OverflowingNeg() (U16, bool) {
	return overflowingNeg(v)
}

func (v U16) OverflowingPow(exp uint32) (U16, bool) {
	return overflow.Pow(v, exp)
}

// Wrapping arithmetic: the modular result, silently. Unsigned division
// never wraps, so WrappingDiv and WrappingRem only add the zero-divisor
// panic.

func (v U16) WrappingAdd(o U16) U16 {
	return wrappingAdd(v, o)
}

func (v U16) WrappingSub(o U16) U16 {
	return wrappingSub(v, o)
}

func (v U16) WrappingMul(o U16) U16 {
	return wrappingMul(v, o)
}

func (v U16) WrappingDiv(o U16) U16 {
	return wrappingDiv(v, o)
}

func (v U16) WrappingRem(o U16) U16 {
	return wrappingRem(v, o)
}

func (v U16) WrappingDivEuclid(o U16) U16 {
	return wrappingDivEuclid(v, o)
}

func (v U16) WrappingRemEuclid(o U16) U16 {
	return wrappingRemEuclid(v, o)
}

// WrappingNeg returns the two's complement of v, i.e. 0 - v wrapped.
func (v U16) WrappingNeg() U16 {
	return wrappingNeg(v)
}

func (v U16) WrappingPow(exp uint32) U16 {
	return wrappingPow(v, exp)
}

// Saturating arithmetic: clamps to 0 or U16Max instead of overflowing.

func (v U16) SaturatingAdd(o U16) U16 {
	return saturatingAdd(v, o)
}

func (v U16) SaturatingSub(o U16) U16 {
	return saturatingSub(v, o)
}

func (v U16) SaturatingMul(o U16) U16 {
	return saturatingMul(v, o)
}

func (v U16) SaturatingPow(exp uint32) U16 {
	return saturatingPow(v, exp)
}

// Unchecked arithmetic: the caller guarantees the operation cannot
// overflow, for example because it already range-checked the operands.
// The result is unspecified if the guarantee is violated. Never the
// default spelling.

func (v U16) UncheckedAdd(o U16) U16 {
	return v + o
}

func (v U16) UncheckedSub(o U16) U16 {
	return v - o
}

func (v U16) UncheckedMul(o U16) U16 {
	return v * o
}

// Powers of two.

func (v U16) IsPowerOfTwo() bool {
	return v != 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two greater than or equal
// to v, panicking when that power is not representable.
func (v U16) NextPowerOfTwo() U16 {
	return nextPowerOfTwo(v)
}

func (v U16) CheckedNextPowerOfTwo() (U16, bool) {
	return checkedNextPowerOfTwo(v)
}

// WrappingNextPowerOfTwo returns 0 when the next power of two is not
// representable.
func (v U16) WrappingNextPowerOfTwo() U16 {
	return wrappingNextPowerOfTwo(v)
}

// Shifts. A shift amount of U16Bits or more panics in the plain forms,
// reports overflow in the Checked/Overflowing forms, and is masked to
// amount mod U16Bits in the Wrapping forms. Bits shifted out are
// discarded; see RotateLeft and RotateRight to reintroduce them instead.

func (v U16) Shl(amount uint32) U16 {
	return shl(v, amount)
}

func (v U16) Shr(amount uint32) U16 {
	return shr(v, amount)
}

func (v U16) CheckedShl(amount uint32) (U16, bool) {
	return checkedShl(v, amount)
}

func (v U16) CheckedShr(amount uint32) (U16, bool) {
	return checkedShr(v, amount)
}

func (v U16) OverflowingShl(amount uint32) (U16, bool) {
	return overflow.Shl(v, amount)
}

func (v U16) OverflowingShr(amount uint32) (U16, bool) {
	return overflow.Shr(v, amount)
}

func (v U16) WrappingShl(amount uint32) U16 {
	return wrappingShl(v, amount)
}

func (v U16) WrappingShr(amount uint32) U16 {
	return wrappingShr(v, amount)
}

// Bit operations. All of them act on the unsigned bit pattern, so the sign
// bit is an ordinary bit.

func (v U16) CountOnes() uint32 {
	return bitops.OnesCount(v)
}

func (v U16) CountZeros() uint32 {
	return bitops.ZerosCount(v)
}

func (v U16) LeadingZeros() uint32 {
	return bitops.LeadingZeros(v)
}

func (v U16) TrailingZeros() uint32 {
	return bitops.TrailingZeros(v)
}

func (v U16) LeadingOnes() uint32 {
	return bitops.LeadingOnes(v)
}

func (v U16) TrailingOnes() uint32 {
	return bitops.TrailingOnes(v)
}

// RotateLeft rotates by n mod U16Bits places, reintroducing bits shifted
// out at the other end. Not a shift.
func (v U16) RotateLeft(n uint32) U16 {
	return bitops.RotateLeft(v, n)
}

func (v U16) RotateRight(n uint32) U16 {
	return bitops.RotateRight(v, n)
}

func (v U16) ReverseBits() U16 {
	return bitops.Reverse(v)
}

func (v U16) SwapBytes() U16 {
	return bitops.ReverseBytes(v)
}

// Logarithms, rounded down. The plain forms panic for a non-positive
// operand or a base smaller than 2; the Checked forms report false.

func (v U16) Log2() uint32 {
	return log2(v)
}

func (v U16) Log10() uint32 {
	return log10(v)
}

func (v U16) Log(base U16) uint32 {
	return log(v, base)
}

func (v U16) CheckedLog2() (uint32, bool) {
	return checkedLog2(v)
}

func (v U16) CheckedLog10() (uint32, bool) {
	return checkedLog10(v)
}

func (v U16) CheckedLog(base U16) (uint32, bool) {
	return checkedLog(v, base)
}

// Byte serialization. The big- and little-endian forms are bit-exact
// two's-complement encodings; the native-endian form matches the running
// platform's memory order.

func (v U16) ToBeBytes() [2]byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	return b
}

func (v U16) ToLeBytes() [2]byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(v))
	return b
}

func (v U16) ToNeBytes() [2]byte {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], uint16(v))
	return b
}

// U16FromBeBytes is the exact inverse of ToBeBytes.
func U16FromBeBytes(b [2]byte) U16 {
	return U16(binary.BigEndian.Uint16(b[:]))
}

func U16FromLeBytes(b [2]byte) U16 {
	return U16(binary.LittleEndian.Uint16(b[:]))
}

func U16FromNeBytes(b [2]byte) U16 {
	return U16(binary.NativeEndian.Uint16(b[:]))
}
