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

	"github.com/fixint/fixint/bitops"
	"github.com/fixint/fixint/errors"
	"github.com/fixint/fixint/overflow"
)

// Next power of two, unsigned types only: the smallest power of two
// greater than or equal to the operand. Values of 0 and 1 both map to 1.

func checkedNextPowerOfTwo[T constraints.Unsigned](v T) (T, bool) {
	if v <= 1 {
		return 1, true
	}
	shift := overflow.Bits[T]() - bitops.LeadingZeros(v-1)
	if shift >= overflow.Bits[T]() {
		return 0, false
	}
	return T(1) << shift, true
}

func nextPowerOfTwo[T constraints.Unsigned](v T) T {
	result, ok := checkedNextPowerOfTwo(v)
	if !ok {
		panic(&errors.OverflowError{})
	}
	return result
}

func wrappingNextPowerOfTwo[T constraints.Unsigned](v T) T {
	result, _ := checkedNextPowerOfTwo(v)
	return result
}
