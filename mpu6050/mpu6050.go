// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mpu6050

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// AccelUnit selects the unit Acceleration reports in.
type AccelUnit int

const (
	// MetersPerSecondSquared reports acceleration in m/s².
	MetersPerSecondSquared AccelUnit = 0
	// G reports acceleration in multiples of standard gravity.
	G AccelUnit = 1

	// DefaultAccelUnit is the unit used by AllMeasurements.
	DefaultAccelUnit = MetersPerSecondSquared

	// StandardGravity in m/s².
	StandardGravity = 9.80665

	// DefaultAddress is used when AD0 is tied to ground.
	DefaultAddress uint16 = 0x68
	// AlternateAddress is used when AD0 is tied high.
	AlternateAddress uint16 = 0x69

	regGyroConfig  byte = 0x1B
	regAccelConfig byte = 0x1C
	regAccelXOut   byte = 0x3B
	regAccelYOut   byte = 0x3D
	regAccelZOut   byte = 0x3F
	regTempOut     byte = 0x41
	regGyroXOut    byte = 0x43
	regGyroYOut    byte = 0x45
	regGyroZOut    byte = 0x47
	regPwrMgmt1    byte = 0x6B
	regWhoAmI      byte = 0x75

	whoAmIValue byte = 0x68

	// Temperature in °C is raw/340 + 36.53, from the register map section
	// 4.18.
	tempSensitivity = 340.0
	tempOffset      = 36.53
)

// DefaultOpts is used by NewI2C when opts is nil.
var DefaultOpts = Opts{}

// Opts holds the configuration options.
type Opts struct {
	// Warn receives diagnostics, for example when an unrecognized range falls
	// back to the smallest range scale. log.Printf is used when nil.
	Warn DebugF
	// Strict makes measurements fail with a *RangeError when the range
	// register holds an unrecognized value, instead of falling back.
	Strict bool
	// VerifyID checks WHO_AM_I before waking the device.
	VerifyID bool
}

// Vector is a measurement on the three axes.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vector) String() string {
	return fmt.Sprintf("X:%.4f Y:%.4f Z:%.4f", v.X, v.Y, v.Z)
}

// Measurements is the result of AllMeasurements.
type Measurements struct {
	Acceleration Vector  // In DefaultAccelUnit.
	AngularRate  Vector  // In °/s.
	Temperature  float64 // In °C.
}

// Dev is a handle to an MPU-6050 on an I²C bus.
type Dev struct {
	t      transport
	warn   DebugF
	strict bool
}

// NewI2C returns a device on the bus b at the 7-bit address addr.
//
// The device is woken up before NewI2C returns. The bus is not owned by Dev
// and may be shared with other devices.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if addr > 0x7F {
		return nil, fmt.Errorf("mpu6050: invalid 7-bit address %#x", addr)
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{
		t:      transport{d: &i2c.Dev{Bus: b, Addr: addr}, debug: noop},
		warn:   opts.Warn,
		strict: opts.Strict,
	}
	if d.warn == nil {
		d.warn = log.Printf
	}
	if opts.VerifyID {
		id, err := d.WhoAmI()
		if err != nil {
			return nil, err
		}
		if id != whoAmIValue {
			return nil, fmt.Errorf("mpu6050: unexpected device at %#x: WHO_AM_I %#02x, expected %#02x", addr, id, whoAmIValue)
		}
	}
	if err := d.Wake(); err != nil {
		return nil, err
	}
	return d, nil
}

// EnableDebug sets the debugging output for register accesses.
func (d *Dev) EnableDebug(f DebugF) {
	if f == nil {
		f = noop
	}
	d.t.debug = f
}

// Wake clears the sleep bit in PWR_MGMT_1. The device powers up asleep.
func (d *Dev) Wake() error {
	return d.t.writeByte(regPwrMgmt1, 0x00)
}

// WhoAmI returns the content of the WHO_AM_I register, 0x68 on a genuine
// part regardless of the AD0 pin.
func (d *Dev) WhoAmI() (byte, error) {
	return d.t.readByte(regWhoAmI)
}

// Temperature returns the die temperature in °C.
func (d *Dev) Temperature() (float64, error) {
	raw, err := d.t.readWord(regTempOut)
	if err != nil {
		return 0, err
	}
	return float64(raw)/tempSensitivity + tempOffset, nil
}

// Acceleration returns the acceleration on the three axes in unit u.
//
// The scale is resolved once per call from the range currently configured
// on the device.
func (d *Dev) Acceleration(u AccelUnit) (Vector, error) {
	var factor float64
	switch u {
	case G:
		factor = 1
	case MetersPerSecondSquared:
		factor = StandardGravity
	default:
		return Vector{}, fmt.Errorf("mpu6050: invalid acceleration unit %d", u)
	}
	raw, err := d.readAxes(regAccelXOut, regAccelYOut, regAccelZOut)
	if err != nil {
		return Vector{}, err
	}
	scale, err := d.accelScale()
	if err != nil {
		return Vector{}, err
	}
	return Vector{
		X: float64(raw[0]) / scale * factor,
		Y: float64(raw[1]) / scale * factor,
		Z: float64(raw[2]) / scale * factor,
	}, nil
}

// AngularRate returns the angular rate on the three axes in °/s.
func (d *Dev) AngularRate() (Vector, error) {
	raw, err := d.readAxes(regGyroXOut, regGyroYOut, regGyroZOut)
	if err != nil {
		return Vector{}, err
	}
	scale, err := d.gyroScale()
	if err != nil {
		return Vector{}, err
	}
	return Vector{
		X: float64(raw[0]) / scale,
		Y: float64(raw[1]) / scale,
		Z: float64(raw[2]) / scale,
	}, nil
}

// AllMeasurements reads the temperature, the acceleration in
// DefaultAccelUnit and the angular rate, in that order, once each.
func (d *Dev) AllMeasurements() (Measurements, error) {
	t, err := d.Temperature()
	if err != nil {
		return Measurements{}, err
	}
	a, err := d.Acceleration(DefaultAccelUnit)
	if err != nil {
		return Measurements{}, err
	}
	g, err := d.AngularRate()
	if err != nil {
		return Measurements{}, err
	}
	return Measurements{Acceleration: a, AngularRate: g, Temperature: t}, nil
}

// Sense reads the die temperature into env.Temperature. Pressure and
// humidity are left untouched.
func (d *Dev) Sense(env *physic.Env) error {
	c, err := d.Temperature()
	if err != nil {
		return err
	}
	env.Temperature = physic.ZeroCelsius + physic.Temperature(c*float64(physic.Kelvin))
	return nil
}

// Precision returns the step of the temperature sensor, 1/340°C.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = physic.Kelvin / tempSensitivity
	env.Pressure = 0
	env.Humidity = 0
}

func (d *Dev) String() string {
	return fmt.Sprintf("mpu6050: %s", d.t.d.String())
}

// Halt implements conn.Resource.
//
// It does nothing; the device stays awake.
func (d *Dev) Halt() error {
	return nil
}

func (d *Dev) readAxes(x, y, z byte) ([3]int16, error) {
	var raw [3]int16
	for i, reg := range [...]byte{x, y, z} {
		v, err := d.t.readWord(reg)
		if err != nil {
			return raw, err
		}
		raw[i] = v
	}
	return raw, nil
}

var _ conn.Resource = &Dev{}
