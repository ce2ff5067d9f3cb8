// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mpu6050

import "fmt"

// AccelRange is the full scale setting of the accelerometer, as encoded in
// the ACCEL_CONFIG register.
type AccelRange byte

// GyroRange is the full scale setting of the gyroscope, as encoded in the
// GYRO_CONFIG register.
type GyroRange byte

// RangeFormat selects how ReadAccelRange and ReadGyroRange report the range.
type RangeFormat int

const (
	AccelRange2G  AccelRange = 0x00 // ±2g
	AccelRange4G  AccelRange = 0x08 // ±4g
	AccelRange8G  AccelRange = 0x10 // ±8g
	AccelRange16G AccelRange = 0x18 // ±16g

	GyroRange250  GyroRange = 0x00 // ±250°/s
	GyroRange500  GyroRange = 0x08 // ±500°/s
	GyroRange1000 GyroRange = 0x10 // ±1000°/s
	GyroRange2000 GyroRange = 0x18 // ±2000°/s

	// RangeRaw reports the configuration register byte unchanged.
	RangeRaw RangeFormat = 0
	// RangeFullScale reports the range in g or °/s, or -1 when the register
	// holds an unrecognized value.
	RangeFullScale RangeFormat = 1
)

// LSB per g.
const (
	accelScale2G  = 16384.0
	accelScale4G  = 8192.0
	accelScale8G  = 4096.0
	accelScale16G = 2048.0
)

// LSB per °/s.
const (
	gyroScale250  = 131.0
	gyroScale500  = 65.5
	gyroScale1000 = 32.8
	gyroScale2000 = 16.4
)

// FullScale returns the range in g: 2, 4, 8 or 16. It returns -1 when r is
// not one of the defined encodings.
func (r AccelRange) FullScale() int {
	switch r {
	case AccelRange2G:
		return 2
	case AccelRange4G:
		return 4
	case AccelRange8G:
		return 8
	case AccelRange16G:
		return 16
	default:
		return -1
	}
}

func (r AccelRange) scale() (float64, bool) {
	switch r {
	case AccelRange2G:
		return accelScale2G, true
	case AccelRange4G:
		return accelScale4G, true
	case AccelRange8G:
		return accelScale8G, true
	case AccelRange16G:
		return accelScale16G, true
	default:
		return 0, false
	}
}

func (r AccelRange) String() string {
	if fs := r.FullScale(); fs > 0 {
		return fmt.Sprintf("±%dg", fs)
	}
	return fmt.Sprintf("AccelRange(%#02x)", byte(r))
}

// AccelRangeOf returns the range matching a full scale of g, which must be
// 2, 4, 8 or 16.
func AccelRangeOf(g int) (AccelRange, error) {
	for _, r := range []AccelRange{AccelRange2G, AccelRange4G, AccelRange8G, AccelRange16G} {
		if r.FullScale() == g {
			return r, nil
		}
	}
	return 0, fmt.Errorf("mpu6050: no accelerometer range of ±%dg", g)
}

// FullScale returns the range in °/s: 250, 500, 1000 or 2000. It returns -1
// when r is not one of the defined encodings.
func (r GyroRange) FullScale() int {
	switch r {
	case GyroRange250:
		return 250
	case GyroRange500:
		return 500
	case GyroRange1000:
		return 1000
	case GyroRange2000:
		return 2000
	default:
		return -1
	}
}

func (r GyroRange) scale() (float64, bool) {
	switch r {
	case GyroRange250:
		return gyroScale250, true
	case GyroRange500:
		return gyroScale500, true
	case GyroRange1000:
		return gyroScale1000, true
	case GyroRange2000:
		return gyroScale2000, true
	default:
		return 0, false
	}
}

func (r GyroRange) String() string {
	if fs := r.FullScale(); fs > 0 {
		return fmt.Sprintf("±%d°/s", fs)
	}
	return fmt.Sprintf("GyroRange(%#02x)", byte(r))
}

// GyroRangeOf returns the range matching a full scale of dps, which must be
// 250, 500, 1000 or 2000.
func GyroRangeOf(dps int) (GyroRange, error) {
	for _, r := range []GyroRange{GyroRange250, GyroRange500, GyroRange1000, GyroRange2000} {
		if r.FullScale() == dps {
			return r, nil
		}
	}
	return 0, fmt.Errorf("mpu6050: no gyroscope range of ±%d°/s", dps)
}

// SetAccelRange sets the accelerometer full scale range.
//
// The register is cleared before the new value is written.
func (d *Dev) SetAccelRange(r AccelRange) error {
	if _, ok := r.scale(); !ok {
		return &RangeError{Sensor: "accelerometer", Value: byte(r)}
	}
	return d.setRange(regAccelConfig, byte(r))
}

// SetGyroRange sets the gyroscope full scale range.
//
// The register is cleared before the new value is written.
func (d *Dev) SetGyroRange(r GyroRange) error {
	if _, ok := r.scale(); !ok {
		return &RangeError{Sensor: "gyroscope", Value: byte(r)}
	}
	return d.setRange(regGyroConfig, byte(r))
}

func (d *Dev) setRange(reg, value byte) error {
	if err := d.t.writeByte(reg, 0x00); err != nil {
		return err
	}
	return d.t.writeByte(reg, value)
}

// ReadAccelRange reads the accelerometer range currently configured on the
// device.
//
// With RangeFullScale an unrecognized register value is reported as -1, not
// as an error.
func (d *Dev) ReadAccelRange(f RangeFormat) (int, error) {
	if err := f.validate(); err != nil {
		return 0, err
	}
	b, err := d.t.readByte(regAccelConfig)
	if err != nil {
		return 0, err
	}
	if f == RangeRaw {
		return int(b), nil
	}
	return AccelRange(b).FullScale(), nil
}

// ReadGyroRange reads the gyroscope range currently configured on the
// device.
//
// With RangeFullScale an unrecognized register value is reported as -1, not
// as an error.
func (d *Dev) ReadGyroRange(f RangeFormat) (int, error) {
	if err := f.validate(); err != nil {
		return 0, err
	}
	b, err := d.t.readByte(regGyroConfig)
	if err != nil {
		return 0, err
	}
	if f == RangeRaw {
		return int(b), nil
	}
	return GyroRange(b).FullScale(), nil
}

func (f RangeFormat) validate() error {
	switch f {
	case RangeRaw, RangeFullScale:
		return nil
	default:
		return fmt.Errorf("mpu6050: invalid range format %d", f)
	}
}

// accelScale returns the scale modifier for the range latched in the device.
func (d *Dev) accelScale() (float64, error) {
	b, err := d.t.readByte(regAccelConfig)
	if err != nil {
		return 0, err
	}
	if s, ok := AccelRange(b).scale(); ok {
		return s, nil
	}
	if d.strict {
		return 0, &RangeError{Sensor: "accelerometer", Value: b}
	}
	d.warn("mpu6050: unknown accelerometer range %#02x, using %s scale", b, AccelRange2G)
	return accelScale2G, nil
}

// gyroScale returns the scale modifier for the range latched in the device.
func (d *Dev) gyroScale() (float64, error) {
	b, err := d.t.readByte(regGyroConfig)
	if err != nil {
		return 0, err
	}
	if s, ok := GyroRange(b).scale(); ok {
		return s, nil
	}
	if d.strict {
		return 0, &RangeError{Sensor: "gyroscope", Value: b}
	}
	d.warn("mpu6050: unknown gyroscope range %#02x, using %s scale", b, GyroRange250)
	return gyroScale250, nil
}
