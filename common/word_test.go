// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestSignExtend16(t *testing.T) {
	var tests = []struct {
		v      uint16
		result int16
	}{
		{v: 0x0000, result: 0},
		{v: 0x0001, result: 1},
		{v: 0x0100, result: 256},
		{v: 0x7fff, result: 32767},
		{v: 0x8000, result: -32768},
		{v: 0x8001, result: -32767},
		{v: 0xbfff, result: -16385},
		{v: 0xffff, result: -1},
	}
	for _, test := range tests {
		res := SignExtend16(test.v)
		if res != test.result {
			t.Errorf("SignExtend16(%#04x)!=%d received %d", test.v, test.result, res)
		}
	}
}

func TestSignExtend16Exhaustive(t *testing.T) {
	for i := 0; i <= 0xffff; i++ {
		want := i
		if i >= 0x8000 {
			want = i - 0x10000
		}
		if got := SignExtend16(uint16(i)); int(got) != want {
			t.Fatalf("SignExtend16(%#04x)=%d expected %d", i, got, want)
		}
	}
}

func TestWord(t *testing.T) {
	var tests = []struct {
		high, low byte
		result    uint16
	}{
		{high: 0x01, low: 0x00, result: 0x0100},
		{high: 0x00, low: 0x01, result: 0x0001},
		{high: 0xff, low: 0xff, result: 0xffff},
		{high: 0x40, low: 0x00, result: 16384},
	}
	for _, test := range tests {
		res := Word(test.high, test.low)
		if res != test.result {
			t.Errorf("Word(%#02x, %#02x)!=%#04x received %#04x", test.high, test.low, test.result, res)
		}
	}
}
