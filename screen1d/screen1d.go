// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen1d draws three axis measurements as bars on a terminal
// using ANSI color codes, one line per axis.
//
// Useful to eyeball an accelerometer or gyroscope without plotting anything.
package screen1d

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/GermanBionicSystems/inertial/mpu6050"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for this display.
type Opts struct {
	// Width is the number of cells of each bar, half on each side of zero.
	Width   int
	Palette *ansi256.Palette

	_ struct{}
}

// DefaultOpts is used when opts is nil.
var DefaultOpts = Opts{Width: 40}

// Dev is a three line bar graph that outputs to the console.
type Dev struct {
	w       io.Writer
	half    int
	palette ansi256.Palette

	buf   bytes.Buffer
	drawn bool
}

var (
	background = color.NRGBA{0x20, 0x20, 0x20, 255}
	low        = color.NRGBA{0x00, 0xd0, 0x40, 255}
	high       = color.NRGBA{0xff, 0x20, 0x00, 255}
)

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that writes its frames to w.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	if opts == nil {
		opts = &DefaultOpts
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	half := opts.Width / 2
	if half < 1 {
		half = 1
	}
	return &Dev{w: w, half: half, palette: *p}
}

func (d *Dev) String() string {
	return "Screen1D"
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes and moves below the last frame.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Show draws v, scaled so that ±fullScale fills a bar. Values beyond
// fullScale are clipped. Each call overwrites the previous frame.
func (d *Dev) Show(v mpu6050.Vector, fullScale float64) error {
	if fullScale <= 0 || math.IsNaN(fullScale) {
		return errors.New("screen1d: full scale must be positive")
	}
	d.buf.Reset()
	if d.drawn {
		// Back to the first line of the previous frame.
		_, _ = d.buf.WriteString("\033[3A")
	}
	for _, axis := range []struct {
		name  string
		value float64
	}{{"X", v.X}, {"Y", v.Y}, {"Z", v.Z}} {
		d.line(axis.name, axis.value, fullScale)
	}
	_, err := d.buf.WriteTo(d.w)
	d.drawn = true
	return err
}

// line renders one axis: label, bar centered on zero, numeric value.
func (d *Dev) line(name string, value, fullScale float64) {
	f := clip(value / fullScale)
	n := cells(f, d.half)
	c := blend(low, high, math.Abs(f))
	_, _ = fmt.Fprintf(&d.buf, "\r\033[0m%s ", name)
	for i := -d.half; i < d.half; i++ {
		lit := (f < 0 && i < 0 && i >= -n) || (f > 0 && i >= 0 && i < n)
		if lit {
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		} else {
			_, _ = io.WriteString(&d.buf, d.palette.Block(background))
		}
	}
	_, _ = fmt.Fprintf(&d.buf, "\033[0m %+10.4f\033[K\n", value)
}

func clip(f float64) float64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f > 1:
		return 1
	case f < -1:
		return -1
	}
	return f
}

// cells returns how many of half cells a fraction in [-1, 1] lights up.
func cells(f float64, half int) int {
	return int(math.Round(math.Abs(f) * float64(half)))
}

func blend(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

var _ fmt.Stringer = &Dev{}
