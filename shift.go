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
	"golang.org/x/exp/constraints"

	"github.com/fixint/fixint/errors"
	"github.com/fixint/fixint/overflow"
)

// A shift amount greater than or equal to the operand width is an overflow
// condition, not a rotation: bits shifted out are discarded. The Wrapping
// forms mask the amount to amount mod width first.

// ShiftAmount converts a signed shift amount for use with the shift and
// rotate methods, panicking with NegativeShiftError if it is negative.
func ShiftAmount[T constraints.Signed](amount T) uint32 {
	if amount < 0 {
		panic(&errors.NegativeShiftError{})
	}
	return uint32(amount)
}

func shl[T constraints.Integer](v T, amount uint32) T {
	result, over := overflow.Shl(v, amount)
	if over {
		panic(&errors.OverflowError{})
	}
	return result
}

func checkedShl[T constraints.Integer](v T, amount uint32) (T, bool) {
	result, over := overflow.Shl(v, amount)
	if over {
		return 0, false
	}
	return result, true
}

func wrappingShl[T constraints.Integer](v T, amount uint32) T {
	result, _ := overflow.Shl(v, amount)
	return result
}

func shr[T constraints.Integer](v T, amount uint32) T {
	result, over := overflow.Shr(v, amount)
	if over {
		panic(&errors.OverflowError{})
	}
	return result
}

func checkedShr[T constraints.Integer](v T, amount uint32) (T, bool) {
	result, over := overflow.Shr(v, amount)
	if over {
		return 0, false
	}
	return result, true
}

func wrappingShr[T constraints.Integer](v T, amount uint32) T {
	result, _ := overflow.Shr(v, amount)
	return result
}
