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

// Package encoding provides deterministic CBOR encoding and decoding for
// every fixint type. Values encode as plain CBOR integers (major types 0
// and 1), so the representation is interoperable with any CBOR peer;
// decoding range-checks against the destination type.
package encoding

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/fixint/fixint"
)

var encMode = func() cbor.EncMode {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return encMode
}()

var decMode = func() cbor.DecMode {
	decMode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	return decMode
}()

func EncodeI8(v fixint.I8) ([]byte, error) {
	return encMode.Marshal(v)
}

func DecodeI8(data []byte) (fixint.I8, error) {
	var v fixint.I8
	err := decMode.Unmarshal(data, &v)
	return v, err
}

func EncodeI16(v fixint.I16) ([]byte, error) {
	return encMode.Marshal(v)
}

func DecodeI16(data []byte) (fixint.I16, error) {
	var v fixint.I16
	err := decMode.Unmarshal(data, &v)
	return v, err
}

func EncodeI32(v fixint.I32) ([]byte, error) {
	return encMode.Marshal(v)
}

func DecodeI32(data []byte) (fixint.I32, error) {
	var v fixint.I32
	err := decMode.Unmarshal(data, &v)
	return v, err
}

func EncodeI64(v fixint.I64) ([]byte, error) {
	return encMode.Marshal(v)
}

func DecodeI64(data []byte) (fixint.I64, error) {
	var v fixint.I64
	err := decMode.Unmarshal(data, &v)
	return v, err
}

func EncodeIsize(v fixint.Isize) ([]byte, error) {
	return encMode.Marshal(v)
}

func DecodeIsize(data []byte) (fixint.Isize, error) {
	var v fixint.Isize
	err := decMode.Unmarshal(data, &v)
	return v, err
}

func EncodeU8(v fixint.U8) ([]byte, error) {
	return encMode.Marshal(v)
}

func DecodeU8(data []byte) (fixint.U8, error) {
	var v fixint.U8
	err := decMode.Unmarshal(data, &v)
	return v, err
}

func EncodeU16(v fixint.U16) ([]byte, error) {
	return encMode.Marshal(v)
}

func DecodeU16(data []byte) (fixint.U16, error) {
	var v fixint.U16
	err := decMode.Unmarshal(data, &v)
	return v, err
}

func EncodeU32(v fixint.U32) ([]byte, error) {
	return encMode.Marshal(v)
}

func DecodeU32(data []byte) (fixint.U32, error) {
	var v fixint.U32
	err := decMode.Unmarshal(data, &v)
	return v, err
}

func EncodeU64(v fixint.U64) ([]byte, error) {
	return encMode.Marshal(v)
}

func DecodeU64(data []byte) (fixint.U64, error) {
	var v fixint.U64
	err := decMode.Unmarshal(data, &v)
	return v, err
}

func EncodeUsize(v fixint.Usize) ([]byte, error) {
	return encMode.Marshal(v)
}

func DecodeUsize(data []byte) (fixint.Usize, error) {
	var v fixint.Usize
	err := decMode.Unmarshal(data, &v)
	return v, err
}
