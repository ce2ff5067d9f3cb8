// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mpu6050

import "fmt"

// BusError is returned when the I²C transport fails a register access. The
// cause is available through errors.Unwrap.
type BusError struct {
	Op  string // "read" or "write"
	Reg byte
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("mpu6050: %s register %#02x: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// RangeError reports a range configuration value that matches none of the
// four encodings the device defines.
type RangeError struct {
	Sensor string // "accelerometer" or "gyroscope"
	Value  byte
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("mpu6050: unrecognized %s range %#02x", e.Sensor, e.Value)
}
