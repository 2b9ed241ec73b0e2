// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arrowbf16 moves bfloat16 values in and out of Apache Arrow
// arrays.
//
// Arrow has no native bfloat16 type, so raw patterns travel in uint16
// arrays, and fields carrying them are tagged with a metadata key.
// Float32 arrays are supported for exchanging widened values.
package arrowbf16

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/nlpodyssey/bfloat16"
)

// MetadataKey tags arrow fields whose uint16 values are bfloat16 patterns.
const MetadataKey = "ARROW:bfloat16"

// Field returns a uint16 field tagged as holding bfloat16 patterns.
func Field(name string, nullable bool) arrow.Field {
	return arrow.Field{
		Name:     name,
		Type:     arrow.PrimitiveTypes.Uint16,
		Nullable: nullable,
		Metadata: arrow.NewMetadata([]string{MetadataKey}, []string{"true"}),
	}
}

// IsBF16Field reports whether f is a uint16 field tagged by Field.
func IsBF16Field(f arrow.Field) bool {
	if !arrow.TypeEqual(f.Type, arrow.PrimitiveTypes.Uint16) {
		return false
	}
	i := f.Metadata.FindKey(MetadataKey)
	return i >= 0 && f.Metadata.Values()[i] == "true"
}

// NewUint16Array stores the raw bit patterns of values in a new array.
// The caller is responsible for releasing it.
func NewUint16Array(mem memory.Allocator, values []bfloat16.BF16) *array.Uint16 {
	b := array.NewUint16Builder(mem)
	defer b.Release()

	b.AppendValues(bfloat16.BitsSlice(values), nil)
	return b.NewUint16Array()
}

// FromUint16Array interprets every element of arr as a bfloat16 pattern.
// Null slots have no bfloat16 counterpart and are reported as an error.
func FromUint16Array(arr *array.Uint16) ([]bfloat16.BF16, error) {
	if err := checkNoNulls(arr); err != nil {
		return nil, err
	}
	return bfloat16.FromBitsSlice(arr.Uint16Values()), nil
}

// NewFloat32Array widens values into a new float32 array.
// The caller is responsible for releasing it.
func NewFloat32Array(mem memory.Allocator, values []bfloat16.BF16) *array.Float32 {
	b := array.NewFloat32Builder(mem)
	defer b.Release()

	b.AppendValues(bfloat16.Float32s(values), nil)
	return b.NewFloat32Array()
}

// FromFloat32Array narrows every element of arr with the given mode.
// Null slots are reported as an error.
func FromFloat32Array(arr *array.Float32, mode bfloat16.RoundingMode) ([]bfloat16.BF16, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if err := checkNoNulls(arr); err != nil {
		return nil, err
	}
	return bfloat16.FromFloat32s(arr.Float32Values(), mode), nil
}

// NewRecord builds a single-column record named name, holding the raw
// patterns of values. The caller is responsible for releasing it.
func NewRecord(mem memory.Allocator, name string, values []bfloat16.BF16) arrow.Record {
	schema := arrow.NewSchema([]arrow.Field{Field(name, false)}, nil)

	col := NewUint16Array(mem, values)
	defer col.Release()

	return array.NewRecord(schema, []arrow.Array{col}, int64(len(values)))
}

func checkNoNulls(arr arrow.Array) error {
	if arr.NullN() == 0 {
		return nil
	}
	for i := 0; i < arr.Len(); i++ {
		if arr.IsNull(i) {
			return fmt.Errorf("cannot convert %s array to bfloat16: null value at index %d", arr.DataType(), i)
		}
	}
	return nil
}
