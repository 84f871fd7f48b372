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

// U64 is a 64-bit unsigned integer. Operators that can overflow panic
// in their default form and come in Checked, Overflowing, Wrapping, and
// Saturating variants; see the package documentation for the contract of
// each form.
type U64 uint64

const (
	U64Min U64 = 0
	U64Max U64 = math.MaxUint64
)

// U64Bits is the width of U64 in bits.
const U64Bits uint32 = 64

func NewU64(v uint64) U64 {
	return U64(v)
}

func (v U64) Prim() uint64 {
	return uint64(v)
}

func (v U64) String() string {
	return format.Uint(uint64(v))
}

// Cmp returns -1 if v < o, 0 if v == o, and 1 if v > o.
func (v U64) Cmp(o U64) int {
	return cmpOrd(v, o)
}

func (v U64) Min(o U64) U64 {
	return minVal(v, o)
}

func (v U64) Max(o U64) U64 {
	return maxVal(v, o)
}

// Clamp returns v limited to the range [low, high].
func (v U64) Clamp(low, high U64) U64 {
	return clampVal(v, low, high)
}

// Default arithmetic. These are the "I asserted this can't happen"
// spellings: any overflow, underflow, or zero divisor panics.

func (v U64) Add(o U64) U64 {
	return add(v, o)
}

// Sub returns v - o, panicking on underflow.
func (v U64) Sub(o U64) U64 {
	return sub(v, o)
}

func (v U64) Mul(o U64) U64 {
	return mul(v, o)
}

// Div returns v / o, panicking if o is zero. Unsigned division cannot
// overflow.
func (v U64) Div(o U64) U64 {
	return div(v, o)
}

func (v U64) Rem(o U64) U64 {
	return rem(v, o)
}

// DivEuclid equals Div for unsigned operands; it is provided so the
// euclidean spelling is available on every type of the family.
func (v U64) DivEuclid(o U64) U64 {
	return divEuclid(v, o)
}

func (v U64) RemEuclid(o U64) U64 {
	return remEuclid(v, o)
}

// AbsDiff returns |v - o|, which is always representable.
func (v U64) AbsDiff(o U64) U64 {
	if v >= o {
		return v - o
	}
	return o - v
}

// Pow raises v to exp by iterated squaring, panicking on overflow.
func (v U64) Pow(exp uint32) U64 {
	return pow(v, exp)
}

// Checked arithmetic: false instead of a panic.

func (v U64) CheckedAdd(o U64) (U64, bool) {
	return checkedAdd(v, o)
}

func (v U64) CheckedSub(o U64) (U64, bool) {
	return checkedSub(v, o)
}

func (v U64) CheckedMul(o U64) (U64, bool) {
	return checkedMul(v, o)
}

func (v U64) CheckedDiv(o U64) (U64, bool) {
	return checkedDiv(v, o)
}

func (v U64) CheckedRem(o U64) (U64, bool) {
	return checkedRem(v, o)
}

func (v U64) CheckedDivEuclid(o U64) (U64, bool) {
	return checkedDivEuclid(v, o)
}

func (v U64) CheckedRemEuclid(o U64) (U64, bool) {
	return checkedRemEuclid(v, o)
}

// CheckedNeg reports a value only for zero, the single unsigned value
// whose negation is representable.
func (v U64) CheckedNeg() (U64, bool) {
	return checkedNeg(v)
}

func (v U64) CheckedPow(exp uint32) (U64, bool) {
	return checkedPow(v, exp)
}

// Overflowing arithmetic: the wrapped value plus a flag. The division
// forms still panic on a zero divisor, which is not an overflow.

func (v U64) OverflowingAdd(o U64) (U64, bool) {
	return overflow.Add(v, o)
}

func (v U64) OverflowingSub(o U64) (U64, bool) {
	return overflow.Sub(v, o)
}

func (v U64) OverflowingMul(o U64) (U64, bool) {
	return overflow.Mul(v, o)
}

func (v U64) OverflowingDiv(o U64) (U64, bool) {
	return overflowingDiv(v, o)
}

func (v U64) OverflowingRem(o U64) (U64, bool) {
	return overflowingRem(v, o)
}

func (v U64) OverflowingDivEuclid(o U64) (U64, bool) {
	return overflowingDivEuclid(v, o)
}

func (v U64) OverflowingRemEuclid(o U64) (U64, bool) {
	return overflowingRemEuclid(v, o)
}

func (v U64) OverflowingNeg() (U64, bool) {
	return overflowingNeg(v)
}

func (v U64) OverflowingPow(exp uint32) (U64, bool) {
	return overflow.Pow(v, exp)
}

// Wrapping arithmetic: the modular result, silently. Unsigned division
// never wraps, so WrappingDiv and WrappingRem only add the zero-divisor
// panic.

func (v U64) WrappingAdd(o U64) U64 {
	return wrappingAdd(v, o)
}

func (v U64) WrappingSub(o U64) U64 {
	return wrappingSub(v, o)
}

func (v U64) WrappingMul(o U64) U64 {
	return wrappingMul(v, o)
}

func (v U64) WrappingDiv(o U64) U64 {
	return wrappingDiv(v, o)
}

func (v U64) WrappingRem(o U64) U64 {
	return wrappingRem(v, o)
}

func (v U64) WrappingDivEuclid(o U64) U64 {
	return wrappingDivEuclid(v, o)
}

func (v U64) WrappingRemEuclid(o U64) U64 {
	return wrappingRemEuclid(v, o)
}

// WrappingNeg returns the two's complement of v, i.e. 0 - v wrapped.
func (v U64) WrappingNeg() U64 {
	return wrappingNeg(v)
}

func (v U64) WrappingPow(exp uint32) U64 {
	return wrappingPow(v, exp)
}

// Saturating arithmetic: clamps to 0 or U64Max instead of overflowing.

func (v U64) SaturatingAdd(o U64) U64 {
	return saturatingAdd(v, o)
}

func (v U64) SaturatingSub(o U64) U64 {
	return saturatingSub(v, o)
}

func (v U64) SaturatingMul(o U64) U64 {
	return saturatingMul(v, o)
}

func (v U64) SaturatingPow(exp uint32) U64 {
	return saturatingPow(v, exp)
}

// Unchecked arithmetic: the caller guarantees the operation cannot
// overflow, for example because it already range-checked the operands.
// The result is unspecified if the guarantee is violated. Never the
// default spelling.

func (v U64) UncheckedAdd(o U64) U64 {
	return v + o
}

func (v U64) UncheckedSub(o U64) U64 {
	return v - o
}

func (v U64) UncheckedMul(o U64) U64 {
	return v * o
}

// Powers of two.

func (v U64) IsPowerOfTwo() bool {
	return v != 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two greater than or equal
// to v, panicking when that power is not representable.
func (v U64) NextPowerOfTwo() U64 {
	return nextPowerOfTwo(v)
}

func (v U64) CheckedNextPowerOfTwo() (U64, bool) {
	return checkedNextPowerOfTwo(v)
}

// WrappingNextPowerOfTwo returns 0 when the next power of two is not
// representable.
func (v U64) WrappingNextPowerOfTwo() U64 {
	return wrappingNextPowerOfTwo(v)
}

// Shifts. A shift amount of U64Bits or more panics in the plain forms,
// reports overflow in the Checked/Overflowing forms, and is masked to
// amount mod U64Bits in the Wrapping forms. Bits shifted out are
// discarded; see RotateLeft and RotateRight to reintroduce them instead.

func (v U64) Shl(amount uint32) U64 {
	return shl(v, amount)
}

func (v U64) Shr(amount uint32) U64 {
	return shr(v, amount)
}

func (v U64) CheckedShl(amount uint32) (U64, bool) {
	return checkedShl(v, amount)
}

func (v U64) CheckedShr(amount uint32) (U64, bool) {
	return checkedShr(v, amount)
}

func (v U64) OverflowingShl(amount uint32) (U64, bool) {
	return overflow.Shl(v, amount)
}

func (v U64) OverflowingShr(amount uint32) (U64, bool) {
	return overflow.Shr(v, amount)
}

func (v U64) WrappingShl(amount uint32) U64 {
	return wrappingShl(v, amount)
}

func (v U64) WrappingShr(amount uint32) U64 {
	return wrappingShr(v, amount)
}

// Bit operations. All of them act on the unsigned bit pattern, so the sign
// bit is an ordinary bit.

func (v U64) CountOnes() uint32 {
	return bitops.OnesCount(v)
}

func (v U64) CountZeros() uint32 {
	return bitops.ZerosCount(v)
}

func (v U64) LeadingZeros() uint32 {
	return bitops.LeadingZeros(v)
}

func (v U64) TrailingZeros() uint32 {
	return bitops.TrailingZeros(v)
}

func (v U64) LeadingOnes() uint32 {
	return bitops.LeadingOnes(v)
}

func (v U64) TrailingOnes() uint32 {
	return bitops.TrailingOnes(v)
}

// RotateLeft rotates by n mod U64Bits places, reintroducing bits shifted
// out at the other end. Not a shift.
func (v U64) RotateLeft(n uint32) U64 {
	return bitops.RotateLeft(v, n)
}

func (v U64) RotateRight(n uint32) U64 {
	return bitops.RotateRight(v, n)
}

func (v U64) ReverseBits() U64 {
	return bitops.Reverse(v)
}

func (v U64) SwapBytes() U64 {
	return bitops.ReverseBytes(v)
}

// Logarithms, rounded down. The plain forms panic for a non-positive
// operand or a base smaller than 2; the Checked forms report false.

func (v U64) Log2() uint32 {
	return log2(v)
}

func (v U64) Log10() uint32 {
	return log10(v)
}

func (v U64) Log(base U64) uint32 {
	return log(v, base)
}

func (v U64) CheckedLog2() (uint32, bool) {
	return checkedLog2(v)
}

func (v U64) CheckedLog10() (uint32, bool) {
	return checkedLog10(v)
}

func (v U64) CheckedLog(base U64) (uint32, bool) {
	return checkedLog(v, base)
}

// Byte serialization. The big- and little-endian forms are bit-exact
// two's-complement encodings; the native-endian form matches the running
// platform's memory order.

func (v U64) ToBeBytes() [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return b
}

func (v U64) ToLeBytes() [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return b
}

func (v U64) ToNeBytes() [8]byte {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], uint64(v))
	return b
}

// U64FromBeBytes is the exact inverse of ToBeBytes.
func U64FromBeBytes(b [8]byte) U64 {
	return U64(binary.BigEndian.Uint64(b[:]))
}

func U64FromLeBytes(b [8]byte) U64 {
	return U64(binary.LittleEndian.Uint64(b[:]))
}

func U64FromNeBytes(b [8]byte) U64 {
	return U64(binary.NativeEndian.Uint64(b[:]))
}
