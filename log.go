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

// Floor logarithms. The checked forms report false for a non-positive
// operand, and for a base smaller than 2; the plain forms panic under the
// same conditions.

func checkedLog2[T constraints.Integer](v T) (uint32, bool) {
	if v <= 0 {
		return 0, false
	}
	return overflow.Bits[T]() - 1 - bitops.LeadingZeros(v), true
}

func log2[T constraints.Integer](v T) uint32 {
	result, ok := checkedLog2(v)
	if !ok {
		panic(&errors.LogDomainError{})
	}
	return result
}

func checkedLog10[T constraints.Integer](v T) (uint32, bool) {
	if v <= 0 {
		return 0, false
	}
	var n uint32
	for v >= 10 {
		v /= 10
		n++
	}
	return n, true
}

func log10[T constraints.Integer](v T) uint32 {
	result, ok := checkedLog10(v)
	if !ok {
		panic(&errors.LogDomainError{})
	}
	return result
}

func checkedLog[T constraints.Integer](v, base T) (uint32, bool) {
	if v <= 0 || base <= 1 {
		return 0, false
	}
	var n uint32
	for v >= base {
		v /= base
		n++
	}
	return n, true
}

func log[T constraints.Integer](v, base T) uint32 {
	result, ok := checkedLog(v, base)
	if !ok {
		panic(&errors.LogDomainError{})
	}
	return result
}
