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

// Package fixint provides fixed-width signed and unsigned integer types
// whose every operation has a defined outcome: the default operators panic
// on overflow, division by zero, and out-of-range shifts, and each operation
// additionally comes in Checked, Overflowing, Wrapping, and Saturating
// forms, plus an Unchecked escape hatch for callers that have already
// proven the precondition.
//
// The ten types are I8, I16, I32, I64, Isize, U8, U16, U32, U64, and Usize.
// Values are immutable and trivially copyable; no operation touches shared
// state, so all of them are safe for concurrent use.
package fixint

import (
	"golang.org/x/exp/constraints"

	"github.com/fixint/fixint/overflow"
)

func isSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

func minOf[T constraints.Integer]() T {
	return overflow.Min[T]()
}

func maxOf[T constraints.Integer]() T {
	return overflow.Max[T]()
}

func cmpOrd[T constraints.Integer](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func minVal[T constraints.Integer](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func maxVal[T constraints.Integer](a, b T) T {
	if b > a {
		return b
	}
	return a
}

func clampVal[T constraints.Integer](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func signum[T constraints.Integer](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		// 0 - 1 rather than a -1 literal, so the expression
		// instantiates for unsigned types (where this branch is
		// unreachable).
		return 0 - T(1)
	default:
		return 0
	}
}
