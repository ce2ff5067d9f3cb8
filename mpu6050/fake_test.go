// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mpu6050

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// fakeDevice is a register file answering single byte reads and writes, so
// that writes are visible to later reads.
type fakeDevice struct {
	regs [256]byte
	txs  int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{}
}

func (f *fakeDevice) setWord(reg byte, v int16) {
	f.regs[reg] = byte(uint16(v) >> 8)
	f.regs[reg+1] = byte(v)
}

func (f *fakeDevice) String() string {
	return "fake"
}

func (f *fakeDevice) SetSpeed(physic.Frequency) error {
	return nil
}

func (f *fakeDevice) Tx(addr uint16, w, r []byte) error {
	if addr != DefaultAddress {
		return fmt.Errorf("fake: no device at %#x", addr)
	}
	f.txs++
	switch {
	case len(w) == 2 && len(r) == 0:
		f.regs[w[0]] = w[1]
	case len(w) == 1 && len(r) == 1:
		r[0] = f.regs[w[0]]
	default:
		return fmt.Errorf("fake: unsupported transaction w=%d r=%d", len(w), len(r))
	}
	return nil
}

var _ i2c.Bus = &fakeDevice{}
