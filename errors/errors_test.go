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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"
)

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, OverflowError{}, "overflow")
	assert.EqualError(t, UnderflowError{}, "underflow")
	assert.EqualError(t, DivisionByZeroError{}, "division by zero")
	assert.EqualError(t, NegativeShiftError{}, "negative shift")
	assert.EqualError(t, LogDomainError{}, "logarithm domain error")
}

func TestIsUserError(t *testing.T) {
	assert.True(t, IsUserError(OverflowError{}))
	assert.True(t, IsUserError(&DivisionByZeroError{}))
	assert.False(t, IsUserError(NewUnreachableError()))
	assert.False(t, IsUserError(xerrors.New("plain")))

	// Wrapped user errors are still user errors.
	wrapped := xerrors.Errorf("computing balance: %w", OverflowError{})
	assert.True(t, IsUserError(wrapped))
	assert.False(t, IsInternalError(wrapped))
}

func TestIsInternalError(t *testing.T) {
	assert.True(t, IsInternalError(NewUnreachableError()))
	assert.False(t, IsInternalError(OverflowError{}))
	assert.False(t, IsInternalError(xerrors.New("plain")))

	wrapped := xerrors.Errorf("decoding: %w", NewUnreachableError())
	assert.True(t, IsInternalError(wrapped))
	assert.False(t, IsUserError(wrapped))
}

func TestUnreachableErrorCapturesStack(t *testing.T) {
	err := NewUnreachableError()
	assert.True(t, strings.HasPrefix(err.Error(), "unreachable\n"))
	assert.NotEmpty(t, err.Stack)
}
