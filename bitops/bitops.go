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

// Package bitops provides bit counting, rotation, reversal, and byte-order
// operations for every fixed-width integer type.
//
// All operations act on the zero-extended unsigned bit pattern of the
// operand, so the sign of a signed operand never affects the result.
package bitops

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

func width[T constraints.Integer]() uint32 {
	var zero T
	return uint32(unsafe.Sizeof(zero)) * 8
}

// pattern returns the zero-extended bit pattern of v.
func pattern[T constraints.Integer](v T) uint64 {
	mask := ^uint64(0) >> (64 - width[T]())
	return uint64(v) & mask
}

// OnesCount returns the number of set bits in v.
func OnesCount[T constraints.Integer](v T) uint32 {
	return uint32(bits.OnesCount64(pattern(v)))
}

// ZerosCount returns the number of unset bits in v.
func ZerosCount[T constraints.Integer](v T) uint32 {
	return width[T]() - OnesCount(v)
}

// LeadingZeros returns the number of zero bits above the most significant
// set bit of v.
func LeadingZeros[T constraints.Integer](v T) uint32 {
	return uint32(bits.LeadingZeros64(pattern(v))) - (64 - width[T]())
}

// TrailingZeros returns the number of zero bits below the least significant
// set bit of v.
func TrailingZeros[T constraints.Integer](v T) uint32 {
	if v == 0 {
		return width[T]()
	}
	return uint32(bits.TrailingZeros64(pattern(v)))
}

// LeadingOnes returns the number of one bits above the most significant
// zero bit of v.
func LeadingOnes[T constraints.Integer](v T) uint32 {
	return LeadingZeros(^v)
}

// TrailingOnes returns the number of one bits below the least significant
// zero bit of v.
func TrailingOnes[T constraints.Integer](v T) uint32 {
	return TrailingZeros(^v)
}

// RotateLeft rotates the bit pattern of v left by n mod width places.
// Bits rotated off the top reappear at the bottom, unlike a shift.
func RotateLeft[T constraints.Integer](v T, n uint32) T {
	w := width[T]()
	n %= w
	p := pattern(v)
	mask := ^uint64(0) >> (64 - w)
	return T((p<<n | p>>(w-n)) & mask)
}

// RotateRight rotates the bit pattern of v right by n mod width places.
func RotateRight[T constraints.Integer](v T, n uint32) T {
	w := width[T]()
	return RotateLeft(v, w-n%w)
}

// Reverse reflects the bit pattern of v end to end.
func Reverse[T constraints.Integer](v T) T {
	return T(bits.Reverse64(pattern(v)) >> (64 - width[T]()))
}

// ReverseBytes reflects the byte order of v.
func ReverseBytes[T constraints.Integer](v T) T {
	return T(bits.ReverseBytes64(pattern(v)) >> (64 - width[T]()))
}
