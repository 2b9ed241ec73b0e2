// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bfloat16

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// AppendLittleEndian appends the little-endian bytes of every element of
// src to dst and returns the extended buffer.
func AppendLittleEndian(dst []byte, src []BF16) []byte {
	for _, x := range src {
		dst = binary.LittleEndian.AppendUint16(dst, x.bits)
	}
	return dst
}

// DecodeLittleEndian interprets b as a sequence of little-endian
// bfloat16 elements.
func DecodeLittleEndian(b []byte) ([]BF16, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("invalid bfloat16 buffer length %d: must be a multiple of 2", len(b))
	}
	out := make([]BF16, len(b)/2)
	for i := range out {
		out[i] = BF16{bits: binary.LittleEndian.Uint16(b[i*2:])}
	}
	return out, nil
}

// WriteLittleEndian writes the little-endian bytes of every element of src
// to w, returning the number of bytes written.
func WriteLittleEndian(w io.Writer, src []BF16) (int64, error) {
	bw := bufio.NewWriter(w)
	n, err := writeLittleEndian(bw, src)
	if e := bw.Flush(); e != nil && err == nil {
		err = e
	}
	return n, err
}

func writeLittleEndian(w io.Writer, src []BF16) (int64, error) {
	var a [2]byte
	b := a[:]

	written := 0
	for _, x := range src {
		a[0] = byte(x.bits)
		a[1] = byte(x.bits >> 8)

		n, err := w.Write(b)
		written += n
		if err != nil {
			return int64(written), err
		}
	}
	return int64(written), nil
}
