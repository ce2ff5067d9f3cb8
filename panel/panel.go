// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package panel renders a set of MPU-6050 measurements into an image, for
// example to save a snapshot or to push to a small display.
package panel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/GermanBionicSystems/inertial/mpu6050"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var font *truetype.Font

func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// Opts represents the options available for rendering.
type Opts struct {
	Width, Height int
	// FontSize in points. Scaled from Height when zero.
	FontSize   float64
	Foreground color.Color
	Background color.Color
}

// DefaultOpts fits a 128x64 monochrome display.
var DefaultOpts = Opts{
	Width:      128,
	Height:     64,
	Foreground: color.White,
	Background: color.Black,
}

// Render draws m as the lines returned by Lines, evenly spaced.
func Render(m mpu6050.Measurements, opts *Opts) (image.Image, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("panel: invalid size %dx%d", opts.Width, opts.Height)
	}
	fg, bg := opts.Foreground, opts.Background
	if fg == nil {
		fg = color.White
	}
	if bg == nil {
		bg = color.Black
	}
	size := opts.FontSize
	if size <= 0 {
		size = float64(opts.Height) / 6
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(bg)
	dc.Clear()
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: size}))
	dc.SetColor(fg)

	lines := Lines(m)
	step := float64(opts.Height) / float64(len(lines))
	for i, l := range lines {
		dc.DrawStringAnchored(l, 2, step*(float64(i)+0.5), 0, 0.5)
	}
	return dc.Image(), nil
}

// Lines returns the text drawn by Render.
func Lines(m mpu6050.Measurements) []string {
	a, g := m.Acceleration, m.AngularRate
	return []string{
		fmt.Sprintf("T %.2f°C", m.Temperature),
		"     X      Y      Z",
		fmt.Sprintf("A %6.2f %6.2f %6.2f", a.X, a.Y, a.Z),
		fmt.Sprintf("G %6.1f %6.1f %6.1f", g.X, g.Y, g.Z),
	}
}

// Save writes img to path as a PNG file.
func Save(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}
