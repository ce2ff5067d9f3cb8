// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package app implements the mpu6050 command actions.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/GermanBionicSystems/inertial/internal/config"
	"github.com/GermanBionicSystems/inertial/internal/publish"
	"github.com/GermanBionicSystems/inertial/mpu6050"
	"github.com/GermanBionicSystems/inertial/panel"
	"github.com/GermanBionicSystems/inertial/screen1d"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Sensor takes one complete reading.
type Sensor interface {
	AllMeasurements() (mpu6050.Measurements, error)
}

// RangedSensor also reports its accelerometer range.
type RangedSensor interface {
	Sensor
	ReadAccelRange(f mpu6050.RangeFormat) (int, error)
}

// Device is a sensor together with the bus it was opened on.
type Device struct {
	*mpu6050.Dev
	bus i2c.BusCloser
}

func (d *Device) Close() error {
	return d.bus.Close()
}

// Open initializes the host drivers, opens the configured bus and sets up
// the sensor on it.
func Open(opt config.Opt) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize host")
	}
	bus, err := i2creg.Open(opt.I2C.Bus)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open I²C bus %q", opt.I2C.Bus)
	}
	log.Debugln("using bus", bus)
	dev, err := Setup(bus, opt)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}
	return &Device{Dev: dev, bus: bus}, nil
}

// Setup constructs the driver on b and applies the configured ranges. A zero
// range keeps the device setting.
func Setup(b i2c.Bus, opt config.Opt) (*mpu6050.Dev, error) {
	dev, err := mpu6050.NewI2C(b, opt.I2C.Address, &mpu6050.Opts{
		Warn:     log.Warnf,
		Strict:   opt.Sensor.Strict,
		VerifyID: opt.Sensor.VerifyID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up sensor")
	}
	if opt.Debug {
		dev.EnableDebug(log.Debugf)
	}
	if opt.Sensor.AccelRange != 0 {
		r, err := mpu6050.AccelRangeOf(opt.Sensor.AccelRange)
		if err != nil {
			return nil, err
		}
		if err := dev.SetAccelRange(r); err != nil {
			return nil, errors.Wrap(err, "failed to set accelerometer range")
		}
		log.Debugln("accelerometer range", r)
	}
	if opt.Sensor.GyroRange != 0 {
		r, err := mpu6050.GyroRangeOf(opt.Sensor.GyroRange)
		if err != nil {
			return nil, err
		}
		if err := dev.SetGyroRange(r); err != nil {
			return nil, errors.Wrap(err, "failed to set gyroscope range")
		}
		log.Debugln("gyroscope range", r)
	}
	return dev, nil
}

// Read prints a single reading to w.
func Read(s Sensor, w io.Writer) error {
	m, err := s.AllMeasurements()
	if err != nil {
		return errors.Wrap(err, "failed to read sensor")
	}
	_, err = fmt.Fprintf(w, "Temperature: %.2f °C\nAcceleration: %s m/s²\nAngular rate: %s °/s\n",
		m.Temperature, m.Acceleration, m.AngularRate)
	return err
}

// Loop reads s every interval and hands each reading to fn until ctx is
// done. Read errors are logged and sampling continues; an error from fn
// stops the loop and is returned.
func Loop(ctx context.Context, s Sensor, interval time.Duration, fn func(time.Time, mpu6050.Measurements) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			m, err := s.AllMeasurements()
			if err != nil {
				log.Warnln("read failed:", err)
				continue
			}
			if err := fn(t, m); err != nil {
				return err
			}
		}
	}
}

// Watch draws the acceleration of s on screen until ctx is done. The meters
// span the accelerometer range configured on the device.
func Watch(ctx context.Context, s RangedSensor, interval time.Duration, screen *screen1d.Dev) error {
	g, err := s.ReadAccelRange(mpu6050.RangeFullScale)
	if err != nil {
		return errors.Wrap(err, "failed to read accelerometer range")
	}
	if g < 0 {
		g = 2
	}
	fullScale := float64(g) * mpu6050.StandardGravity
	defer screen.Halt()
	return Loop(ctx, s, interval, func(_ time.Time, m mpu6050.Measurements) error {
		return screen.Show(m.Acceleration, fullScale)
	})
}

// Publisher sends samples somewhere.
type Publisher interface {
	Publish(s publish.Sample) error
}

// Publish sends every reading of s to p until ctx is done.
func Publish(ctx context.Context, s Sensor, interval time.Duration, p Publisher) error {
	return Loop(ctx, s, interval, func(t time.Time, m mpu6050.Measurements) error {
		return p.Publish(publish.NewSample(t, m))
	})
}

// Snapshot renders one reading of s as a PNG file at path.
func Snapshot(s Sensor, path string, opts *panel.Opts) error {
	m, err := s.AllMeasurements()
	if err != nil {
		return errors.Wrap(err, "failed to read sensor")
	}
	img, err := panel.Render(m, opts)
	if err != nil {
		return err
	}
	if err := panel.Save(path, img); err != nil {
		return errors.Wrapf(err, "failed to save %s", path)
	}
	log.Infoln("snapshot saved to", path)
	return nil
}
