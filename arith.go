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

// Each operator is implemented exactly once here, generic over the
// underlying primitive; the per-type method suites are thin instantiations.

// Addition

func add[T constraints.Integer](a, b T) T {
	sum, over := overflow.Add(a, b)
	if over {
		if b < 0 {
			panic(&errors.UnderflowError{})
		}
		panic(&errors.OverflowError{})
	}
	return sum
}

func checkedAdd[T constraints.Integer](a, b T) (T, bool) {
	sum, over := overflow.Add(a, b)
	if over {
		return 0, false
	}
	return sum, true
}

func wrappingAdd[T constraints.Integer](a, b T) T {
	return a + b
}

func saturatingAdd[T constraints.Integer](a, b T) T {
	sum, over := overflow.Add(a, b)
	if !over {
		return sum
	}
	if b < 0 {
		return minOf[T]()
	}
	return maxOf[T]()
}

// Subtraction

func sub[T constraints.Integer](a, b T) T {
	diff, over := overflow.Sub(a, b)
	if over {
		if isSigned[T]() && b < 0 {
			panic(&errors.OverflowError{})
		}
		panic(&errors.UnderflowError{})
	}
	return diff
}

func checkedSub[T constraints.Integer](a, b T) (T, bool) {
	diff, over := overflow.Sub(a, b)
	if over {
		return 0, false
	}
	return diff, true
}

func wrappingSub[T constraints.Integer](a, b T) T {
	return a - b
}

func saturatingSub[T constraints.Integer](a, b T) T {
	diff, over := overflow.Sub(a, b)
	if !over {
		return diff
	}
	if isSigned[T]() && b < 0 {
		return maxOf[T]()
	}
	return minOf[T]()
}

// Multiplication

func mul[T constraints.Integer](a, b T) T {
	product, over := overflow.Mul(a, b)
	if over {
		if (a < 0) != (b < 0) {
			panic(&errors.UnderflowError{})
		}
		panic(&errors.OverflowError{})
	}
	return product
}

func checkedMul[T constraints.Integer](a, b T) (T, bool) {
	product, over := overflow.Mul(a, b)
	if over {
		return 0, false
	}
	return product, true
}

func wrappingMul[T constraints.Integer](a, b T) T {
	return a * b
}

func saturatingMul[T constraints.Integer](a, b T) T {
	product, over := overflow.Mul(a, b)
	if !over {
		return product
	}
	if (a < 0) != (b < 0) {
		return minOf[T]()
	}
	return maxOf[T]()
}

// Negation

func neg[T constraints.Integer](v T) T {
	// INT32-C
	if v == minOf[T]() {
		panic(&errors.OverflowError{})
	}
	return -v
}

func checkedNeg[T constraints.Integer](v T) (T, bool) {
	if isSigned[T]() {
		if v == minOf[T]() {
			return 0, false
		}
		return -v, true
	}
	if v == 0 {
		return 0, true
	}
	return 0, false
}

func overflowingNeg[T constraints.Integer](v T) (T, bool) {
	if isSigned[T]() {
		if v == minOf[T]() {
			return v, true
		}
		return -v, false
	}
	return -v, v != 0
}

func wrappingNeg[T constraints.Integer](v T) T {
	return -v
}

func saturatingNeg[T constraints.Integer](v T) T {
	if v == minOf[T]() {
		return maxOf[T]()
	}
	return -v
}

// Absolute value (signed only; the unsigned types do not expose it)

func abs[T constraints.Signed](v T) T {
	if v == minOf[T]() {
		panic(&errors.OverflowError{})
	}
	if v < 0 {
		return -v
	}
	return v
}

func checkedAbs[T constraints.Signed](v T) (T, bool) {
	if v == minOf[T]() {
		return 0, false
	}
	if v < 0 {
		return -v, true
	}
	return v, true
}

func overflowingAbs[T constraints.Signed](v T) (T, bool) {
	if v == minOf[T]() {
		return v, true
	}
	if v < 0 {
		return -v, false
	}
	return v, false
}

func wrappingAbs[T constraints.Signed](v T) T {
	if v == minOf[T]() {
		return v
	}
	if v < 0 {
		return -v
	}
	return v
}

func saturatingAbs[T constraints.Signed](v T) T {
	if v == minOf[T]() {
		return maxOf[T]()
	}
	if v < 0 {
		return -v
	}
	return v
}

// Division and remainder.
//
// divWraps reports the single case where truncated division itself is not
// representable: MIN / -1 on a signed type. The -1 comparison is spelled
// ^T(0) so the expression instantiates for unsigned types, where the
// condition is never taken.
func divWraps[T constraints.Integer](a, b T) bool {
	return isSigned[T]() && a == minOf[T]() && b == ^T(0)
}

func div[T constraints.Integer](a, b T) T {
	// INT33-C
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		panic(&errors.OverflowError{})
	}
	return a / b
}

func checkedDiv[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 || divWraps(a, b) {
		return 0, false
	}
	return a / b, true
}

func overflowingDiv[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		return minOf[T](), true
	}
	return a / b, false
}

func wrappingDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		return minOf[T]()
	}
	return a / b
}

func saturatingDiv[T constraints.Integer](a, b T) T {
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		// MIN / -1 is MAX + 1, saturated to MAX.
		return maxOf[T]()
	}
	return a / b
}

func rem[T constraints.Integer](a, b T) T {
	// INT33-C
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		panic(&errors.OverflowError{})
	}
	return a % b
}

func checkedRem[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 || divWraps(a, b) {
		return 0, false
	}
	return a % b, true
}

func overflowingRem[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		return 0, true
	}
	return a % b, false
}

func wrappingRem[T constraints.Integer](a, b T) T {
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		return 0
	}
	return a % b
}

// Euclidean division: the unique (q, r) with a = q*b + r and 0 <= r < |b|.

func euclidQuot[T constraints.Integer](a, b T) T {
	q := a / b
	if isSigned[T]() && a%b < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

func euclidRem[T constraints.Integer](a, b T) T {
	r := a % b
	if isSigned[T]() && r < 0 {
		if b > 0 {
			r += b
		} else {
			r -= b
		}
	}
	return r
}

func divEuclid[T constraints.Integer](a, b T) T {
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		panic(&errors.OverflowError{})
	}
	return euclidQuot(a, b)
}

func checkedDivEuclid[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 || divWraps(a, b) {
		return 0, false
	}
	return euclidQuot(a, b), true
}

func overflowingDivEuclid[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		return minOf[T](), true
	}
	return euclidQuot(a, b), false
}

func wrappingDivEuclid[T constraints.Integer](a, b T) T {
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		return minOf[T]()
	}
	return euclidQuot(a, b)
}

func remEuclid[T constraints.Integer](a, b T) T {
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		panic(&errors.OverflowError{})
	}
	return euclidRem(a, b)
}

func checkedRemEuclid[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 || divWraps(a, b) {
		return 0, false
	}
	return euclidRem(a, b), true
}

func overflowingRemEuclid[T constraints.Integer](a, b T) (T, bool) {
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		return 0, true
	}
	return euclidRem(a, b), false
}

func wrappingRemEuclid[T constraints.Integer](a, b T) T {
	if b == 0 {
		panic(&errors.DivisionByZeroError{})
	}
	if divWraps(a, b) {
		return 0
	}
	return euclidRem(a, b)
}

// Exponentiation

func pow[T constraints.Integer](a T, exp uint32) T {
	result, over := overflow.Pow(a, exp)
	if over {
		panic(&errors.OverflowError{})
	}
	return result
}

func checkedPow[T constraints.Integer](a T, exp uint32) (T, bool) {
	result, over := overflow.Pow(a, exp)
	if over {
		return 0, false
	}
	return result, true
}

func wrappingPow[T constraints.Integer](a T, exp uint32) T {
	result, _ := overflow.Pow(a, exp)
	return result
}

func saturatingPow[T constraints.Integer](a T, exp uint32) T {
	result, over := overflow.Pow(a, exp)
	if !over {
		return result
	}
	if a < 0 && exp&1 == 1 {
		return minOf[T]()
	}
	return maxOf[T]()
}
