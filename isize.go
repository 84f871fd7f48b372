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

// Isize is a pointer-width signed integer. Operators that can overflow panic in
// their default form and come in Checked, Overflowing, Wrapping, and
// Saturating variants; see the package documentation for the contract of
// each form.
type Isize int

const (
	IsizeMin Isize = math.MinInt
	IsizeMax Isize = math.MaxInt
)

// IsizeBits is the width of Isize in bits, 32 or 64 depending on platform.
const IsizeBits uint32 = 32 << (^uint(0) >> 63)

func NewIsize(v int) Isize {
	return Isize(v)
}

func (v Isize) Prim() int {
	return int(v)
}

func (v Isize) String() string {
	return format.Int(int64(v))
}

// Cmp returns -1 if v < o, 0 if v == o, and 1 if v > o.
func (v Isize) Cmp(o Isize) int {
	return cmpOrd(v, o)
}

func (v Isize) Min(o Isize) Isize {
	return minVal(v, o)
}

func (v Isize) Max(o Isize) Isize {
	return maxVal(v, o)
}

// Clamp returns v limited to the range [low, high].
func (v Isize) Clamp(low, high Isize) Isize {
	return clampVal(v, low, high)
}

func (v Isize) Signum() Isize {
	return signum(v)
}

func (v Isize) IsNegative() bool {
	return v < 0
}

func (v Isize) IsPositive() bool {
	return v > 0
}

// Default arithmetic. These are the "I asserted this can't happen"
// spellings: any overflow, zero divisor, or IsizeMin / -1 quotient panics.

func (v Isize) Add(o Isize) Isize {
	return add(v, o)
}

func (v Isize) Sub(o Isize) Isize {
	return sub(v, o)
}

func (v Isize) Mul(o Isize) Isize {
	return mul(v, o)
}

// Div returns v / o, truncated toward zero.
func (v Isize) Div(o Isize) Isize {
	return div(v, o)
}

// Rem returns v % o, with the sign of v.
func (v Isize) Rem(o Isize) Isize {
	return rem(v, o)
}

// DivEuclid returns the quotient q such that v = q*o + r with 0 <= r < |o|.
func (v Isize) DivEuclid(o Isize) Isize {
	return divEuclid(v, o)
}

// RemEuclid returns the remainder r such that v = q*o + r with 0 <= r < |o|.
func (v Isize) RemEuclid(o Isize) Isize {
	return remEuclid(v, o)
}

// Neg returns -v, panicking if v is IsizeMin.
func (v Isize) Neg() Isize {
	return neg(v)
}

// Abs returns the absolute value of v, panicking if v is IsizeMin.
func (v Isize) Abs() Isize {
	return abs(v)
}

// UnsignedAbs returns the exact magnitude of v as a Usize. It never fails,
// including for IsizeMin.
func (v Isize) UnsignedAbs() Usize {
	if v >= 0 {
		return Usize(v)
	}
	return Usize(wrappingNeg(v))
}

// AbsDiff returns |v - o| as a Usize, which is always representable.
func (v Isize) AbsDiff(o Isize) Usize {
	if v >= o {
		return Usize(v - o)
	}
	return Usize(o - v)
}

// Pow raises v to exp by iterated squaring, panicking on overflow.
func (v Isize) Pow(exp uint32) Isize {
	return pow(v, exp)
}

// Checked arithmetic: false instead of a panic.

func (v Isize) CheckedAdd(o Isize) (Isize, bool) {
	return checkedAdd(v, o)
}

func (v Isize) CheckedSub(o Isize) (Isize, bool) {
	return checkedSub(v, o)
}

func (v Isize) CheckedMul(o Isize) (Isize, bool) {
	return checkedMul(v, o)
}

func (v Isize) CheckedDiv(o Isize) (Isize, bool) {
	return checkedDiv(v, o)
}

func (v Isize) CheckedRem(o Isize) (Isize, bool) {
	return checkedRem(v, o)
}

func (v Isize) CheckedDivEuclid(o Isize) (Isize, bool) {
	return checkedDivEuclid(v, o)
}

func (v Isize) CheckedRemEuclid(o Isize) (Isize, bool) {
	return checkedRemEuclid(v, o)
}

func (v Isize) CheckedNeg() (Isize, bool) {
	return checkedNeg(v)
}

func (v Isize) CheckedAbs() (Isize, bool) {
	return checkedAbs(v)
}

func (v Isize) CheckedPow(exp uint32) (Isize, bool) {
	return checkedPow(v, exp)
}

// Overflowing arithmetic: the wrapped value plus a flag. The division
// forms still panic on a zero divisor, which is not an overflow.

func (v Isize) OverflowingAdd(o Isize) (Isize, bool) {
	return overflow.Add(v, o)
}

func (v Isize) OverflowingSub(o Isize) (Isize, bool) {
	return overflow.Sub(v, o)
}

func (v Isize) OverflowingMul(o Isize) (Isize, bool) {
	return overflow.Mul(v, o)
}

func (v Isize) OverflowingDiv(o Isize) (Isize, bool) {
	return overflowingDiv(v, o)
}

func (v Isize) OverflowingRem(o Isize) (Isize, bool) {
	return overflowingRem(v, o)
}

func (v Isize) OverflowingDivEuclid(o Isize) (Isize, bool) {
	return overflowingDivEuclid(v, o)
}

func (v Isize) OverflowingRemEuclid(o Isize) (Isize, bool) {
	return overflowingRemEuclid(v, o)
}

func (v Isize) OverflowingNeg() (Isize, bool) {
	return overflowingNeg(v)
}

func (v Isize) OverflowingAbs() (Isize, bool) {
	return overflowingAbs(v)
}

func (v Isize) OverflowingPow(exp uint32) (Isize, bool) {
	return overflow.Pow(v, exp)
}

// Wrapping arithmetic: the two's-complement modular result, silently.
// WrappingDiv and WrappingRem wrap only for IsizeMin / -1, where they
// return IsizeMin and 0; a zero divisor still panics.

func (v Isize) WrappingAdd(o Isize) Isize {
	return wrappingAdd(v, o)
}

func (v Isize) WrappingSub(o Isize) Isize {
	return wrappingSub(v, o)
}

func (v Isize) WrappingMul(o Isize) Isize {
	return wrappingMul(v, o)
}

func (v Isize) WrappingDiv(o Isize) Isize {
	return wrappingDiv(v, o)
}

func (v Isize) WrappingRem(o Isize) Isize {
	return wrappingRem(v, o)
}

func (v Isize) WrappingDivEuclid(o Isize) Isize {
	return wrappingDivEuclid(v, o)
}

func (v Isize) WrappingRemEuclid(o Isize) Isize {
	return wrappingRemEuclid(v, o)
}

func (v Isize) WrappingNeg() Isize {
	return wrappingNeg(v)
}

func (v Isize) WrappingAbs() Isize {
	return wrappingAbs(v)
}

func (v Isize) WrappingPow(exp uint32) Isize {
	return wrappingPow(v, exp)
}

// Saturating arithmetic: clamps to IsizeMin or IsizeMax instead of overflowing.
// SaturatingDiv still panics on a zero divisor.

func (v Isize) SaturatingAdd(o Isize) Isize {
	return saturatingAdd(v, o)
}

func (v Isize) SaturatingSub(o Isize) Isize {
	return saturatingSub(v, o)
}

func (v Isize) SaturatingMul(o Isize) Isize {
	return saturatingMul(v, o)
}

func (v Isize) SaturatingDiv(o Isize) Isize {
	return saturatingDiv(v, o)
}

func (v Isize) SaturatingNeg() Isize {
	return saturatingNeg(v)
}

func (v Isize) SaturatingAbs() Isize {
	return saturatingAbs(v)
}

func (v Isize) SaturatingPow(exp uint32) Isize {
	return saturatingPow(v, exp)
}

// Unchecked arithmetic: the caller guarantees the operation cannot
// overflow, for example because it already range-checked the operands.
// The result is unspecified if the guarantee is violated. Never the
// default spelling.

func (v Isize) UncheckedAdd(o Isize) Isize {
	return v + o
}

func (v Isize) UncheckedSub(o Isize) Isize {
	return v - o
}

func (v Isize) UncheckedMul(o Isize) Isize {
	return v * o
}

func (v Isize) UncheckedNeg() Isize {
	return -v
}

// Shifts. A shift amount of IsizeBits or more panics in the plain forms,
// reports overflow in the Checked/Overflowing forms, and is masked to
// amount mod IsizeBits in the Wrapping forms. Bits shifted out are
// discarded; see RotateLeft and RotateRight to reintroduce them instead.

func (v Isize) Shl(amount uint32) Isize {
	return shl(v, amount)
}

func (v Isize) Shr(amount uint32) Isize {
	return shr(v, amount)
}

func (v Isize) CheckedShl(amount uint32) (Isize, bool) {
	return checkedShl(v, amount)
}

func (v Isize) CheckedShr(amount uint32) (Isize, bool) {
	return checkedShr(v, amount)
}

func (v Isize) OverflowingShl(amount uint32) (Isize, bool) {
	return overflow.Shl(v, amount)
}

func (v Isize) OverflowingShr(amount uint32) (Isize, bool) {
	return overflow.Shr(v, amount)
}

func (v Isize) WrappingShl(amount uint32) Isize {
	return wrappingShl(v, amount)
}

func (v Isize) WrappingShr(amount uint32) Isize {
	return wrappingShr(v, amount)
}

// Bit operations. All of them act on the unsigned bit pattern, so the sign
// bit is an ordinary bit.

func (v Isize) CountOnes() uint32 {
	return bitops.OnesCount(v)
}

func (v Isize) CountZeros() uint32 {
	return bitops.ZerosCount(v)
}

func (v Isize) LeadingZeros() uint32 {
	return bitops.LeadingZeros(v)
}

func (v Isize) TrailingZeros() uint32 {
	return bitops.TrailingZeros(v)
}

func (v Isize) LeadingOnes() uint32 {
	return bitops.LeadingOnes(v)
}

func (v Isize) TrailingOnes() uint32 {
	return bitops.TrailingOnes(v)
}

// RotateLeft rotates by n mod IsizeBits places, reintroducing bits shifted
// out at the other end. Not a shift.
func (v Isize) RotateLeft(n uint32) Isize {
	return bitops.RotateLeft(v, n)
}

func (v Isize) RotateRight(n uint32) Isize {
	return bitops.RotateRight(v, n)
}

func (v Isize) ReverseBits() Isize {
	return bitops.Reverse(v)
}

func (v Isize) SwapBytes() Isize {
	return bitops.ReverseBytes(v)
}

// Logarithms, rounded down. The plain forms panic for a non-positive
// operand or a base smaller than 2; the Checked forms report false.

func (v Isize) Log2() uint32 {
	return log2(v)
}

func (v Isize) Log10() uint32 {
	return log10(v)
}

func (v Isize) Log(base Isize) uint32 {
	return log(v, base)
}

func (v Isize) CheckedLog2() (uint32, bool) {
	return checkedLog2(v)
}

func (v Isize) CheckedLog10() (uint32, bool) {
	return checkedLog10(v)
}

func (v Isize) CheckedLog(base Isize) (uint32, bool) {
	return checkedLog(v, base)
}

// Byte serialization. The byte slices have length IsizeBits / 8; slices
// rather than arrays, since Go array lengths cannot vary by platform.

func (v Isize) ToBeBytes() []byte {
	b := make([]byte, IsizeBits/8)
	if IsizeBits == 64 {
		binary.BigEndian.PutUint64(b, uint64(v))
	} else {
		binary.BigEndian.PutUint32(b, uint32(v))
	}
	return b
}

func (v Isize) ToLeBytes() []byte {
	b := make([]byte, IsizeBits/8)
	if IsizeBits == 64 {
		binary.LittleEndian.PutUint64(b, uint64(v))
	} else {
		binary.LittleEndian.PutUint32(b, uint32(v))
	}
	return b
}

func (v Isize) ToNeBytes() []byte {
	b := make([]byte, IsizeBits/8)
	if IsizeBits == 64 {
		binary.NativeEndian.PutUint64(b, uint64(v))
	} else {
		binary.NativeEndian.PutUint32(b, uint32(v))
	}
	return b
}

// IsizeFromBeBytes is the exact inverse of ToBeBytes. The slice must have
// length IsizeBits / 8.
func IsizeFromBeBytes(b []byte) Isize {
	if IsizeBits == 64 {
		return Isize(binary.BigEndian.Uint64(b))
	}
	return Isize(binary.BigEndian.Uint32(b))
}

func IsizeFromLeBytes(b []byte) Isize {
	if IsizeBits == 64 {
		return Isize(binary.LittleEndian.Uint64(b))
	}
	return Isize(binary.LittleEndian.Uint32(b))
}

func IsizeFromNeBytes(b []byte) Isize {
	if IsizeBits == 64 {
		return Isize(binary.NativeEndian.Uint64(b))
	}
	return Isize(binary.NativeEndian.Uint32(b))
}
