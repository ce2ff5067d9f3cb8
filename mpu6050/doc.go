// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mpu6050 controls an InvenSense MPU-6050 accelerometer, gyroscope
// and thermometer over I²C.
//
// NewI2C wakes the device as part of construction; Wake can be called again
// later if something else put it back to sleep. Every measurement re-reads the
// range configuration register, so a range changed behind the driver's back is
// picked up on the next call.
//
// The driver does not serialize access to the bus. Callers sharing one bus
// between goroutines must hold their own lock around driver calls.
//
// Range: ±2g to ±16g, ±250°/s to ±2000°/s
//
// # Datasheet
//
// https://invensense.tdk.com/wp-content/uploads/2015/02/MPU-6000-Register-Map1.pdf
package mpu6050
