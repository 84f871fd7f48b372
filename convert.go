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
)

// convert performs the range-checked conversion underlying the Convert*
// constructors. Conversion is all-or-nothing: an out-of-range source panics
// with UnderflowError or OverflowError; there is no checked alternative.
func convert[Dst, Src constraints.Integer](v Src) Dst {
	if v < 0 {
		if !isSigned[Dst]() || int64(v) < int64(minOf[Dst]()) {
			panic(&errors.UnderflowError{})
		}
	} else if uint64(v) > uint64(maxOf[Dst]()) {
		panic(&errors.OverflowError{})
	}
	return Dst(v)
}

// ConvertI8 constructs an I8 from any other integer value,
// panicking if the value is outside the I8 range.
func ConvertI8[T constraints.Integer](v T) I8 {
	return I8(convert[int8](v))
}

// ConvertI16 constructs an I16 from any other integer value,
// panicking if the value is outside the I16 range.
func ConvertI16[T constraints.Integer](v T) I16 {
	return I16(convert[int16](v))
}

// ConvertI32 constructs an I32 from any other integer value,
// panicking if the value is outside the I32 range.
func ConvertI32[T constraints.Integer](v T) I32 {
	return I32(convert[int32](v))
}

// ConvertI64 constructs an I64 from any other integer value,
// panicking if the value is outside the I64 range.
func ConvertI64[T constraints.Integer](v T) I64 {
	return I64(convert[int64](v))
}

// ConvertIsize constructs an Isize from any other integer value,
// panicking if the value is outside the Isize range.
func ConvertIsize[T constraints.Integer](v T) Isize {
	return Isize(convert[int](v))
}

// ConvertU8 constructs a U8 from any other integer value,
// panicking if the value is outside the U8 range.
func ConvertU8[T constraints.Integer](v T) U8 {
	return U8(convert[uint8](v))
}

// ConvertU16 constructs a U16 from any other integer value,
// panicking if the value is outside the U16 range.
func ConvertU16[T constraints.Integer](v T) U16 {
	return U16(convert[uint16](v))
}

// ConvertU32 constructs a U32 from any other integer value,
// panicking if the value is outside the U32 range.
func ConvertU32[T constraints.Integer](v T) U32 {
	return U32(convert[uint32](v))
}

// ConvertU64 constructs a U64 from any other integer value,
// panicking if the value is outside the U64 range.
func ConvertU64[T constraints.Integer](v T) U64 {
	return U64(convert[uint64](v))
}

// ConvertUsize constructs a Usize from any other integer value,
// panicking if the value is outside the Usize range.
func ConvertUsize[T constraints.Integer](v T) Usize {
	return Usize(convert[uint](v))
}
