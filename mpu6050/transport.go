// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mpu6050

import (
	"github.com/GermanBionicSystems/inertial/common"
	"periph.io/x/conn/v3/i2c"
)

// DebugF the debug function type.
type DebugF func(string, ...interface{})

// transport performs single register accesses on the device.
type transport struct {
	d     *i2c.Dev
	debug DebugF
}

func (t *transport) writeByte(reg, value byte) error {
	t.debug("write register %#02x value %#02x", reg, value)
	if err := t.d.Tx([]byte{reg, value}, nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

func (t *transport) readByte(reg byte) (byte, error) {
	var r [1]byte
	if err := t.d.Tx([]byte{reg}, r[:]); err != nil {
		return 0, &BusError{Op: "read", Reg: reg, Err: err}
	}
	t.debug("read register %#02x value %#02x", reg, r[0])
	return r[0], nil
}

// readWord reads reg as the high byte and reg+1 as the low byte of a signed
// big-endian sample. The two bytes are separate transactions.
func (t *transport) readWord(reg byte) (int16, error) {
	h, err := t.readByte(reg)
	if err != nil {
		return 0, err
	}
	l, err := t.readByte(reg + 1)
	if err != nil {
		return 0, err
	}
	return common.SignExtend16(common.Word(h, l)), nil
}

func noop(string, ...interface{}) {}
