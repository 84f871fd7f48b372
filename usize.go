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

// Usize is a pointer-width unsigned integer. Operators that can overflow panic
// in their default form and come in Checked, Overflowing, Wrapping, and
// Saturating variants; see the package documentation for the contract of
// each form.
type Usize uint

const (
	UsizeMin Usize = 0
	UsizeMax Usize = math.MaxUint
)

// UsizeBits is the width of Usize in bits, 32 or 64 depending on platform.
const UsizeBits uint32 = 32 << (^uint(0) >> 63)

func NewUsize(v uint) Usize {
	return Usize(v)
}

func (v Usize) Prim() uint {
	return uint(v)
}

func (v Usize) String() string {
	return format.Uint(uint64(v))
}

// Cmp returns -1 if v < o, 0 if v == o, and 1 if v > o.
func (v Usize) Cmp(o Usize) int {
	return cmpOrd(v, o)
}

func (v Usize) Min(o Usize) Usize {
	return minVal(v, o)
}

func (v Usize) Max(o Usize) Usize {
	return maxVal(v, o)
}

// Clamp returns v limited to the range [low, high].
func (v Usize) Clamp(low, high Usize) Usize {
	return clampVal(v, low, high)
}

// Default arithmetic. These are the "I asserted this can't happen"
// spellings: any overflow, underflow, or zero divisor panics.

func (v Usize) Add(o Usize) Usize {
	return add(v, o)
}

// Sub returns v - o, panicking on underflow.
func (v Usize) Sub(o Usize) Usize {
	return sub(v, o)
}

func (v Usize) Mul(o Usize) Usize {
	return mul(v, o)
}

// Div returns v / o, panicking if o is zero. Unsigned division cannot
// overflow.
func (v Usize) Div(o Usize) Usize {
	return div(v, o)
}

func (v Usize) Rem(o Usize) Usize {
	return rem(v, o)
}

// DivEuclid equals Div for unsigned operands; it is provided so the
// euclidean spelling is available on every type of the family.
func (v Usize) DivEuclid(o Usize) Usize {
	return divEuclid(v, o)
}

func (v Usize) RemEuclid(o Usize) Usize {
	return remEuclid(v, o)
}

// AbsDiff returns |v - o|, which is always representable.
func (v Usize) AbsDiff(o Usize) Usize {
	if v >= o {
		return v - o
	}
	return o - v
}

// Pow raises v to exp by iterated squaring, panicking on overflow.
func (v Usize) Pow(exp uint32) Usize {
	return pow(v, exp)
}

// Checked arithmetic: false instead of a panic.

func (v Usize) CheckedAdd(o Usize) (Usize, bool) {
	return checkedAdd(v, o)
}

func (v Usize) CheckedSub(o Usize) (Usize, bool) {
	return checkedSub(v, o)
}

func (v Usize) CheckedMul(o Usize) (Usize, bool) {
	return checkedMul(v, o)
}

func (v Usize) CheckedDiv(o Usize) (Usize, bool) {
	return checkedDiv(v, o)
}

func (v Usize) CheckedRem(o Usize) (Usize, bool) {
	return checkedRem(v, o)
}

func (v Usize) CheckedDivEuclid(o Usize) (Usize, bool) {
	return checkedDivEuclid(v, o)
}

func (v Usize) CheckedRemEuclid(o Usize) (Usize, bool) {
	return checkedRemEuclid(v, o)
}

// CheckedNeg reports a value only for zero, the single unsigned value
// whose negation is representable.
func (v Usize) CheckedNeg() (Usize, bool) {
	return checkedNeg(v)
}

func (v Usize) CheckedPow(exp uint32) (Usize, bool) {
	return checkedPow(v, exp)
}

// Overflowing arithmetic: the wrapped value plus a flag. The division
// forms still panic on a zero divisor, which is not an overflow.

func (v Usize) OverflowingAdd(o Usize) (Usize, bool) {
	return overflow.Add(v, o)
}

func (v Usize) OverflowingSub(o Usize) (Usize, bool) {
	return overflow.Sub(v, o)
}

func (v Usize) OverflowingMul(o Usize) (Usize, bool) {
	return overflow.Mul(v, o)
}

func (v Usize) OverflowingDiv(o Usize) (Usize, bool) {
	return overflowingDiv(v, o)
}

func (v Usize) OverflowingRem(o Usize) (Usize, bool) {
	return overflowingRem(v, o)
}

func (v Usize) OverflowingDivEuclid(o Usize) (Usize, bool) {
	return overflowingDivEuclid(v, o)
}

func (v Usize) OverflowingRemEuclid(o Usize) (Usize, bool) {
	return overflowingRemEuclid(v, o)
}

func (v Usize) OverflowingNeg() (Usize, bool) {
	return overflowingNeg(v)
}

func (v Usize) OverflowingPow(exp uint32) (Usize, bool) {
	return overflow.Pow(v, exp)
}

// Wrapping arithmetic: the modular result, silently. Unsigned division
// never wraps, so WrappingDiv and WrappingRem only add the zero-divisor
// panic.

func (v Usize) WrappingAdd(o Usize) Usize {
	return wrappingAdd(v, o)
}

func (v Usize) WrappingSub(o Usize) Usize {
	return wrappingSub(v, o)
}

func (v Usize) WrappingMul(o Usize) Usize {
	return wrappingMul(v, o)
}

func (v Usize) WrappingDiv(o Usize) Usize {
	return wrappingDiv(v, o)
}

func (v Usize) WrappingRem(o Usize) Usize {
	return wrappingRem(v, o)
}

func (v Usize) WrappingDivEuclid(o Usize) Usize {
	return wrappingDivEuclid(v, o)
}

func (v Usize) WrappingRemEuclid(o Usize) Usize {
	return wrappingRemEuclid(v, o)
}

// WrappingNeg returns the two's complement of v, i.e. 0 - v wrapped.
func (v Usize) WrappingNeg() Usize {
	return wrappingNeg(v)
}

func (v Usize) WrappingPow(exp uint32) Usize {
	return wrappingPow(v, exp)
}

// Saturating arithmetic: clamps to 0 or UsizeMax instead of overflowing.

func (v Usize) SaturatingAdd(o Usize) Usize {
	return saturatingAdd(v, o)
}

func (v Usize) SaturatingSub(o Usize) Usize {
	return saturatingSub(v, o)
}

func (v Usize) SaturatingMul(o Usize) Usize {
	return saturatingMul(v, o)
}

func (v Usize) SaturatingPow(exp uint32) Usize {
	return saturatingPow(v, exp)
}

// Unchecked arithmetic: the caller guarantees the operation cannot
// overflow, for example because it already range-checked the operands.
// The result is unspecified if the guarantee is violated. Never the
// default spelling.

func (v Usize) UncheckedAdd(o Usize) Usize {
	return v + o
}

func (v Usize) UncheckedSub(o Usize) Usize {
	return v - o
}

func (v Usize) UncheckedMul(o Usize) Usize {
	return v * o
}

// Powers of two.

func (v Usize) IsPowerOfTwo() bool {
	return v != 0 && v&(v-1) == 0
}

// NextPowerOfTwo returns the smallest power of two greater than or equal
// to v, panicking when that power is not representable.
func (v Usize) NextPowerOfTwo() Usize {
	return nextPowerOfTwo(v)
}

func (v Usize) CheckedNextPowerOfTwo() (Usize, bool) {
	return checkedNextPowerOfTwo(v)
}

// WrappingNextPowerOfTwo returns 0 when the next power of two is not
// representable.
func (v Usize) WrappingNextPowerOfTwo() Usize {
	return wrappingNextPowerOfTwo(v)
}

// Shifts. A shift amount of UsizeBits or more panics in the plain forms,
// reports overflow in the Checked/Overflowing forms, and is masked to
// amount mod UsizeBits in the Wrapping forms. Bits shifted out are
// discarded; see RotateLeft and RotateRight to reintroduce them instead.

func (v Usize) Shl(amount uint32) Usize {
	return shl(v, amount)
}

func (v Usize) Shr(amount uint32) Usize {
	return shr(v, amount)
}

func (v Usize) CheckedShl(amount uint32) (Usize, bool) {
	return checkedShl(v, amount)
}

func (v Usize) CheckedShr(amount uint32) (Usize, bool) {
	return checkedShr(v, amount)
}

func (v Usize) OverflowingShl(amount uint32) (Usize, bool) {
	return overflow.Shl(v, amount)
}

func (v Usize) OverflowingShr(amount uint32) (Usize, bool) {
	return overflow.Shr(v, amount)
}

func (v Usize) WrappingShl(amount uint32) Usize {
	return wrappingShl(v, amount)
}

func (v Usize) WrappingShr(amount uint32) Usize {
	return wrappingShr(v, amount)
}

// Bit operations. All of them act on the unsigned bit pattern, so the sign
// bit is an ordinary bit.

func (v Usize) CountOnes() uint32 {
	return bitops.OnesCount(v)
}

func (v Usize) CountZeros() uint32 {
	return bitops.ZerosCount(v)
}

func (v Usize) LeadingZeros() uint32 {
	return bitops.LeadingZeros(v)
}

func (v Usize) TrailingZeros() uint32 {
	return bitops.TrailingZeros(v)
}

func (v Usize) LeadingOnes() uint32 {
	return bitops.LeadingOnes(v)
}

func (v Usize) TrailingOnes() uint32 {
	return bitops.TrailingOnes(v)
}

// RotateLeft rotates by n mod UsizeBits places, reintroducing bits shifted
// out at the other end. Not a shift.
func (v Usize) RotateLeft(n uint32) Usize {
	return bitops.RotateLeft(v, n)
}

func (v Usize) RotateRight(n uint32) Usize {
	return bitops.RotateRight(v, n)
}

func (v Usize) ReverseBits() Usize {
	return bitops.Reverse(v)
}

func (v Usize) SwapBytes() Usize {
	return bitops.ReverseBytes(v)
}

// Logarithms, rounded down. The plain forms panic for a non-positive
// operand or a base smaller than 2; the Checked forms report false.

func (v Usize) Log2() uint32 {
	return log2(v)
}

func (v Usize) Log10() uint32 {
	return log10(v)
}

func (v Usize) Log(base Usize) uint32 {
	return log(v, base)
}

func (v Usize) CheckedLog2() (uint32, bool) {
	return checkedLog2(v)
}

func (v Usize) CheckedLog10() (uint32, bool) {
	return checkedLog10(v)
}

func (v Usize) CheckedLog(base Usize) (uint32, bool) {
	return checkedLog(v, base)
}

// Byte serialization. The byte slices have length UsizeBits / 8; slices
// rather than arrays, since Go array lengths cannot vary by platform.

func (v Usize) ToBeBytes() []byte {
	b := make([]byte, UsizeBits/8)
	if UsizeBits == 64 {
		binary.BigEndian.PutUint64(b, uint64(v))
	} else {
		binary.BigEndian.PutUint32(b, uint32(v))
	}
	return b
}

func (v Usize) ToLeBytes() []byte {
	b := make([]byte, UsizeBits/8)
	if UsizeBits == 64 {
		binary.LittleEndian.PutUint64(b, uint64(v))
	} else {
		binary.LittleEndian.PutUint32(b, uint32(v))
	}
	return b
}

func (v Usize) ToNeBytes() []byte {
	b := make([]byte, UsizeBits/8)
	if UsizeBits == 64 {
		binary.NativeEndian.PutUint64(b, uint64(v))
	} else {
		binary.NativeEndian.PutUint32(b, uint32(v))
	}
	return b
}

// UsizeFromBeBytes is the exact inverse of ToBeBytes. The slice must have
// length UsizeBits / 8.
func UsizeFromBeBytes(b []byte) Usize {
	if UsizeBits == 64 {
		return Usize(binary.BigEndian.Uint64(b))
	}
	return Usize(binary.BigEndian.Uint32(b))
}

func UsizeFromLeBytes(b []byte) Usize {
	if UsizeBits == 64 {
		return Usize(binary.LittleEndian.Uint64(b))
	}
	return Usize(binary.LittleEndian.Uint32(b))
}

func UsizeFromNeBytes(b []byte) Usize {
	if UsizeBits == 64 {
		return Usize(binary.NativeEndian.Uint64(b))
	}
	return Usize(binary.NativeEndian.Uint32(b))
}
