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

package errors

import (
	"runtime/debug"

	"golang.org/x/xerrors"
)

// InternalError is an implementation error, e.g. an unreachable code path
// (UnreachableError). A program should never throw an InternalError in an
// ideal world.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error caused by the operands the caller supplied,
// e.g. adding two values whose sum is not representable.
type UserError interface {
	error
	IsUserError()
}

// UnreachableError is an internal error which should have never occurred
// due to a programming error.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func (e UnreachableError) Error() string {
	return "unreachable\n" + string(e.Stack)
}

func (UnreachableError) IsInternalError() {}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

// OverflowError is raised when the exact result of an operation exceeds
// the maximum representable value of the operand type.
type OverflowError struct{}

var _ UserError = OverflowError{}

func (OverflowError) Error() string {
	return "overflow"
}

func (OverflowError) IsUserError() {}

// UnderflowError is raised when the exact result of an operation falls
// below the minimum representable value of the operand type.
type UnderflowError struct{}

var _ UserError = UnderflowError{}

func (UnderflowError) Error() string {
	return "underflow"
}

func (UnderflowError) IsUserError() {}

// DivisionByZeroError

type DivisionByZeroError struct{}

var _ UserError = DivisionByZeroError{}

func (DivisionByZeroError) Error() string {
	return "division by zero"
}

func (DivisionByZeroError) IsUserError() {}

// NegativeShiftError is raised when a signed shift amount is converted
// for use as a shift distance and is negative.
type NegativeShiftError struct{}

var _ UserError = NegativeShiftError{}

func (NegativeShiftError) Error() string {
	return "negative shift"
}

func (NegativeShiftError) IsUserError() {}

// LogDomainError is raised by the logarithm operations for a non-positive
// operand, or for a base smaller than 2.
type LogDomainError struct{}

var _ UserError = LogDomainError{}

func (LogDomainError) Error() string {
	return "logarithm domain error"
}

func (LogDomainError) IsUserError() {}

// IsInternalError checks whether a given error was caused by an InternalError.
// An error is an internal error if it has at least one InternalError in the
// error chain.
func IsInternalError(err error) bool {
	switch err := err.(type) {
	case InternalError:
		return true
	case xerrors.Wrapper:
		return IsInternalError(err.Unwrap())
	default:
		return false
	}
}

// IsUserError checks whether a given error was caused by a UserError.
// An error is a user error if it has at least one UserError in the
// error chain.
func IsUserError(err error) bool {
	switch err := err.(type) {
	case UserError:
		return true
	case xerrors.Wrapper:
		return IsUserError(err.Unwrap())
	default:
		return false
	}
}
