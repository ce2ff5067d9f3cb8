// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, assembling a 16-bit register pair.
package common

// Word combines a high and a low register byte into a big-endian 16-bit
// value.
func Word(high, low byte) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// SignExtend16 decodes v as a 16-bit two's-complement number.
//
// The conversion is done arithmetically: values at or above 0x8000 have
// 0x10000 subtracted.
func SignExtend16(v uint16) int16 {
	if v >= 0x8000 {
		return int16(int32(v) - 0x10000)
	}
	return int16(v)
}
