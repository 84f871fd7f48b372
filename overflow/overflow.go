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

// Package overflow computes the primitive integer operations together with
// an overflow report, for every fixed-width signed and unsigned type.
//
// Every function returns the two's-complement wrapped result and a flag
// reporting whether the exact mathematical result falls outside the range
// of the operand type. Callers decide how to surface the flag.
package overflow

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

func signed[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

// Bits returns the width of T in bits.
func Bits[T constraints.Integer]() uint32 {
	var zero T
	return uint32(unsafe.Sizeof(zero)) * 8
}

// Min returns the smallest representable value of T.
func Min[T constraints.Integer]() T {
	if !signed[T]() {
		return 0
	}
	var zero T
	return ^zero << (Bits[T]() - 1)
}

// Max returns the largest representable value of T.
func Max[T constraints.Integer]() T {
	var zero T
	if signed[T]() {
		return ^(^zero << (Bits[T]() - 1))
	}
	return ^zero
}

// Add computes a + b.
func Add[T constraints.Integer](a, b T) (T, bool) {
	sum := a + b
	if signed[T]() {
		// Overflow iff both operands have a sign the sum does not share.
		return sum, (a^sum)&(b^sum) < 0
	}
	return sum, sum < a
}

// Sub computes a - b.
func Sub[T constraints.Integer](a, b T) (T, bool) {
	diff := a - b
	if signed[T]() {
		return diff, (a^b)&(a^diff) < 0
	}
	return diff, b > a
}

// Mul computes a * b.
func Mul[T constraints.Integer](a, b T) (T, bool) {
	product := a * b
	if signed[T]() {
		// INT32-C
		max := Max[T]()
		min := Min[T]()
		over := (a > 0 && b > 0 && a > max/b) ||
			(a > 0 && b <= 0 && b < min/a) ||
			(a <= 0 && b > 0 && a < min/b) ||
			(a < 0 && b <= 0 && b < max/a)
		return product, over
	}
	return product, a != 0 && product/a != b
}

// Shl computes a << amount, discarding bits shifted out. An amount greater
// than or equal to the width of T is reported as overflow, and the returned
// value is computed with the amount masked to amount mod width.
func Shl[T constraints.Integer](a T, amount uint32) (T, bool) {
	bits := Bits[T]()
	if amount >= bits {
		return a << (amount & (bits - 1)), true
	}
	return a << amount, false
}

// Shr computes a >> amount on the unsigned bit pattern of a, so the sign of
// a signed operand is shifted out like any other bit. The amount is masked
// like in Shl.
func Shr[T constraints.Integer](a T, amount uint32) (T, bool) {
	bits := Bits[T]()
	over := amount >= bits
	return T(pattern(a) >> (amount & (bits - 1))), over
}

// Pow computes a raised to exp by iterated squaring, reporting overflow
// from every constituent multiplication.
func Pow[T constraints.Integer](a T, exp uint32) (T, bool) {
	if exp == 0 {
		return 1, false
	}

	acc := T(1)
	over := false
	var o bool

	for exp > 1 {
		if exp&1 == 1 {
			acc, o = Mul(acc, a)
			over = over || o
		}
		a, o = Mul(a, a)
		over = over || o
		exp >>= 1
	}

	result, o := Mul(acc, a)
	return result, over || o
}

// pattern returns the zero-extended bit pattern of v.
func pattern[T constraints.Integer](v T) uint64 {
	mask := ^uint64(0) >> (64 - Bits[T]())
	return uint64(v) & mask
}
