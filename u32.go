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

// U32 is a 32-bit unsigned integer. Operators that can overflow panic
// in their default form and come in Checked, Overflowing, Wrapping, and
// Saturating variants; see the package documentation for the contract of
// each form.
type U32 uint32

const (
	U32Min U32 = 0
	U32Max U32 = math.MaxUint32
)

// U32Bits is the width of U32 in bits.
const U32Bits uint32 = 32

func NewU32(v uint32) U32 {
	return U32(v)
}

func (v U32) Prim() uint32 {
	return uint32(v)
}

func (v U32) String() string {
	return format.Uint(uint64(v))
}

// Cmp returns -1 if v < o, 0 if v == o, and 1 if v > o.
func (v U32) Cmp(o U32) int {
	return cmpOrd(v, o)
}

func (v U32) Min(o U32) U32 {
	return minVal(v, o)
}

func (v U32) Max(o U32) U32 {
	return maxVal(v, o)
}

// Clamp returns v limited to the range [low, high].
func (v U32) Clamp(low, high U32) U32 {
	return clampVal(v, low, high)
}

// Default arithmetic. These are the "I asserted this can't happen"
// spellings: any overflow, underflow, or zero divisor panics.

func (v U32) Add(o U32) U32 {
	return add(v, o)
}

// Sub returns v - o, panicking on underflow.
func (v U32) Sub(o U32) U32 {
	return sub(v, o)
}

func (v U32) Mul(o U32) U32 {
	return mul(v, o)
}

// Div returns v / o, panicking if o is zero. Unsigned division cannot
// overflow.
func (v U32) Div(o U32) U32 {
	return div(v, o)
}

func (v U32) Rem(o U32) U32 {
	return rem(v, o)
}

// DivEuclid equals Div for unsigned operands; it is provided so the
// euclidean spelling is available on every type of the family.
func (v U32) DivEuclid(o U32) U32 {
	return divEuclid(v, o)
}

func (v U32) RemEuclid(o U32) U32 {
	return remEuclid(v, o)
}

// AbsDiff returns |v - o|, which is always representable.
func (v U32) AbsDiff(o U32) U32 {
	if v >= o {
		return v - o
	}
	return o - v
}

// Pow raises v to exp by iterated squaring, panicking on overflow.
func (v U32) Pow(exp uint32) U32 {
	return pow(v, exp)
}

// Checked arithmetic: false instead of a panic.

func (v U32) CheckedAdd(o U32) (U32, bool) {
	return checkedAdd(v, o)
}

func (v U32) CheckedSub(o U32) (U32, bool) {
	return checkedSub(v, o)
}

func (v U32) CheckedMul(o U32) (U32, bool) {
	return checkedMul(v, o)
}

func (v U32) CheckedDiv(o U32) (U32, bool) {
	return checkedDiv(v, o)
}

func (v U32) CheckedRem(o U32) (U32, bool) {
	return checkedRem(v, o)
}

func (v U32) CheckedDivEuclid(o U32) (U32, bool) {
	return checkedDivEuclid(v, o)
}

func (v U32) CheckedRemEuclid(o U32) (U32, bool) {
	return checkedRemEuclid(v, o)
}

// CheckedNeg reports a value only for zero, the single unsigned value
// whose negation is representable.
func (v U32) CheckedNeg() (U32, bool) {
	return checkedNeg(v)
}

func (v U32) CheckedPow(exp uint32) (U32, bool) {
	return checkedPow(v, exp)
}

// Overflowing arithmetic: the wrapped value plus a flag. The division
// forms still panic on a zero divisor, which is not an overflow.

func (v U32) OverflowingAdd(o U32) (U32, bool) {
	return overflow.Add(v, o)
}

func (v U32) OverflowingSub(o U32) (U32, bool) {
	return overflow.Sub(v, o)
}

func (v U32) OverflowingMul(o U32) (U32, bool) {
	return overflow.Mul(v, o)
}

func (v U32) OverflowingDiv(o U32) (U32, bool) {
	return overflowingDiv(v, o)
}

func (v U32) OverflowingRem(o U32) (U32, bool) {
	return overflowingRem(v, o)
}

func (v U32) OverflowingDivEuclid(o U32) (U32, bool) {
	return overflowingDivEuclid(v, o)
}

func (v U32) OverflowingRemEuclid(o U32) (U32, bool) {
	return overflowingRemEuclid(v, o)
}

func (v U32) OverflowingNeg() (U32, bool) {
	return overflowingNeg(v)
}

func (v U32) OverflowingPow(exp uint32) (U32, bool) {
	return overflow.Pow(v, exp)
}

// Wrapping arithmetic: the modular result, silently. Unsigned division
// never wraps, so WrappingDiv and WrappingRem only add the zero-divisor
// panic.

func (v U32) WrappingAdd(o U32) U32 {
	return wrappingAdd(v, o)
}

func (v U32) WrappingSub(o U32) U32 {
	return wrappingSub(v, o)
}

func (v U32) WrappingMul(o U32) U32 {
	return wrappingMul(v, o)
}

func (v U32) WrappingDiv(o U32) U32 {
	return wrappingDiv(v, o)
}

func (v U32) WrappingRem(o U32) U32 {
	return wrappingRem(v, o)
}

func (v U32) WrappingDivEuclid(o U32) U32 {
	return wrappingDivEuclid(v, o)
}

func (v U32) WrappingRemEuclid(o U32) U32 {
	return wrappingRemEuclid(v, o)
}

// WrappingNeg returns the two's complement of v, i.e. 0 - v wrapped.
func (v U32) WrappingNeg() U32 {
	return wrappingNeg(v)
}

func (v U32) WrappingPow(exp uint32) U32 {
	return wrappingPow(v, exp)
}

// Saturating arithmetic: clamps to 0 or U32Max instead of overflowing.

func (v U32) SaturatingAdd(o U32) U32 {
	return saturatingAdd(v, o)
}

func (v U32) SaturatingSub(o U32) U32 {
	return saturatingSub(v, o)
}

func (v U32) SaturatingMul(o U32) U32 {
	return saturatingMul(v, o)
}

func (v U32) SaturatingPow(exp uint32) U32 {
	return saturatingPow(v, exp)
}

// Unchecked arithmetic: the caller guarantees the operation cannot
// overflow, for example because it already range-checked the operands.
// The result is unspecified if the guarantee is violated. Never the
// default spelling.

func (v U32) UncheckedAdd(o U32) U32 {
	return v + o
}

func (v U32) UncheckedSub(o U32) U32 {
	return v - o
}

func (v U32) UncheckedMul(o U32) U32 {
	return v * o
}

// Powers of two.

func (v U32) IsPowerOfTwo() bool {
	return v != 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two greater than or equal
// to v, panicking when that power is not representable.
func (v U32) NextPowerOfTwo() U32 {
	return nextPowerOfTwo(v)
}

func (v U32) CheckedNextPowerOfTwo() (U32, bool) {
	return checkedNextPowerOfTwo(v)
}

// WrappingNextPowerOfTwo returns 0 when the next power of two is not
// representable.
func (v U32) WrappingNextPowerOfTwo() U32 {
	return wrappingNextPowerOfTwo(v)
}

// Shifts. A shift amount of U32Bits or more panics in the plain forms,
// reports overflow in the Checked/Overflowing forms, and is masked to
// amount mod U32Bits in the Wrapping forms. Bits shifted out are
// discarded; see RotateLeft and RotateRight to reintroduce them instead.

func (v U32) Shl(amount uint32) U32 {
	return shl(v, amount)
}

func (v U32) Shr(amount uint32) U32 {
	return shr(v, amount)
}

func (v U32) CheckedShl(amount uint32) (U32, bool) {
	return checkedShl(v, amount)
}

func (v U32) CheckedShr(amount uint32) (U32, bool) {
	return checkedShr(v, amount)
}

func (v U32) OverflowingShl(amount uint32) (U32, bool) {
	return overflow.Shl(v, amount)
}

func (v U32) OverflowingShr(amount uint32) (U32, bool) {
	return overflow.Shr(v, amount)
}

func (v U32) WrappingShl(amount uint32) U32 {
	return wrappingShl(v, amount)
}

func (v U32) WrappingShr(amount uint32) U32 {
	return wrappingShr(v, amount)
}

// Bit operations. All of them act on the unsigned bit pattern, so the sign
// bit is an ordinary bit.

func (v U32) CountOnes() uint32 {
	return bitops.OnesCount(v)
}

func (v U32) CountZeros() uint32 {
	return bitops.ZerosCount(v)
}

func (v U32) LeadingZeros() uint32 {
	return bitops.LeadingZeros(v)
}

func (v U32) TrailingZeros() uint32 {
	return bitops.TrailingZeros(v)
}

func (v U32) LeadingOnes() uint32 {
	return bitops.LeadingOnes(v)
}

func (v U32) TrailingOnes() uint32 {
	return bitops.TrailingOnes(v)
}

// RotateLeft rotates by n mod U32Bits places, reintroducing bits shifted
// out at the other end. Not a shift.
func (v U32) RotateLeft(n uint32) U32 {
	return bitops.RotateLeft(v, n)
}

func (v U32) RotateRight(n uint32) U32 {
	return bitops.RotateRight(v, n)
}

func (v U32) ReverseBits() U32 {
	return bitops.Reverse(v)
}

func (v U32) SwapBytes() U32 {
	return bitops.ReverseBytes(v)
}

// Logarithms, rounded down. The plain forms panic for a non-positive
// operand or a base smaller than 2; the Checked forms report false.

func (v U32) Log2() uint32 {
	return log2(v)
}

func (v U32) Log10() uint32 {
	return log10(v)
}

func (v U32) Log(base U32) uint32 {
	return log(v, base)
}

func (v U32) CheckedLog2() (uint32, bool) {
	return checkedLog2(v)
}

func (v U32) CheckedLog10() (uint32, bool) {
	return checkedLog10(v)
}

func (v U32) CheckedLog(base U32) (uint32, bool) {
	return checkedLog(v, base)
}

// Byte serialization. The big- and little-endian forms are bit-exact
// two's-complement encodings; the native-endian form matches the running
// platform's memory order.

func (v U32) ToBeBytes() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return b
}

func (v U32) ToLeBytes() [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return b
}

func (v U32) ToNeBytes() [4]byte {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], uint32(v))
	return b
}

// U32FromBeBytes is the exact inverse of ToBeBytes.
func U32FromBeBytes(b [4]byte) U32 {
	return U32(binary.BigEndian.Uint32(b[:]))
}

func U32FromLeBytes(b [4]byte) U32 {
	return U32(binary.LittleEndian.Uint32(b[:]))
}

func U32FromNeBytes(b [4]byte) U32 {
	return U32(binary.NativeEndian.Uint32(b[:]))
}
