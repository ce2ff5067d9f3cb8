// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("bus", "", "")
	cmd.Flags().Uint16("address", DefaultAddress, "")
	cmd.Flags().Duration("interval", DefaultSampleInterval, "")
	cmd.Flags().Bool("debug", false, "")
	cmd.Flags().Bool("print", false, "")
	cmd.Flags().Bool("yes", false, "")
	cmd.Flags().String("output", "", "")
	return cmd
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParse_file(t *testing.T) {
	p := writeFile(t, `
i2c:
  bus: "1"
  address: 0x69
sensor:
  accel_range: 8
  gyro_range: 500
  strict: true
sample:
  interval: 20ms
mqtt:
  broker: tcp://broker:1883
  topic: lab/imu
  qos: 1
`)
	cmd := newCmd()
	if err := cmd.Flags().Set("config", p); err != nil {
		t.Fatal(err)
	}
	desc := NewDesc()
	if err := desc.Parse(cmd); err != nil {
		t.Fatal(err)
	}
	want := Opt{
		I2C:    I2COpt{Bus: "1", Address: 0x69},
		Sensor: SensorOpt{AccelRange: 8, GyroRange: 500, Strict: true},
		Sample: SampleOpt{Interval: 20 * time.Millisecond},
		MQTT: MQTTOpt{
			Broker:   "tcp://broker:1883",
			ClientID: DefaultMQTTClientID,
			Topic:    "lab/imu",
			QoS:      1,
		},
	}
	if diff := cmp.Diff(want, desc.Opt); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_precedence(t *testing.T) {
	p := writeFile(t, "i2c:\n  address: 0x69\nsensor:\n  accel_range: 4\n")
	t.Setenv("MPU6050_SENSOR_ACCEL_RANGE", "16")
	cmd := newCmd()
	_ = cmd.Flags().Set("config", p)
	_ = cmd.Flags().Set("address", "104")
	desc := NewDesc()
	if err := desc.Parse(cmd); err != nil {
		t.Fatal(err)
	}
	if desc.Opt.I2C.Address != 0x68 {
		t.Errorf("flag should win over file, got %#x", desc.Opt.I2C.Address)
	}
	if desc.Opt.Sensor.AccelRange != 16 {
		t.Errorf("env should win over file, got %d", desc.Opt.Sensor.AccelRange)
	}
}

func TestParse_missingExplicitFile(t *testing.T) {
	cmd := newCmd()
	_ = cmd.Flags().Set("config", filepath.Join(t.TempDir(), "nope.yaml"))
	desc := NewDesc()
	if err := desc.Parse(cmd); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestParse_invalid(t *testing.T) {
	p := writeFile(t, "sensor:\n  gyro_range: 300\n")
	cmd := newCmd()
	_ = cmd.Flags().Set("config", p)
	desc := NewDesc()
	if err := desc.Parse(cmd); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Opt)
		ok     bool
	}{
		{"default", func(*Opt) {}, true},
		{"address", func(o *Opt) { o.I2C.Address = 0x80 }, false},
		{"accel", func(o *Opt) { o.Sensor.AccelRange = 3 }, false},
		{"accel ok", func(o *Opt) { o.Sensor.AccelRange = 16 }, true},
		{"gyro", func(o *Opt) { o.Sensor.GyroRange = 125 }, false},
		{"interval", func(o *Opt) { o.Sample.Interval = 0 }, false},
		{"qos", func(o *Opt) { o.MQTT.QoS = 3 }, false},
	}
	for _, test := range tests {
		o := NewOpt()
		test.modify(&o)
		if err := o.Validate(); (err == nil) != test.ok {
			t.Errorf("%s: Validate() = %v", test.name, err)
		}
	}
}

func TestWrite(t *testing.T) {
	p := filepath.Join(t.TempDir(), "sub", "config.yaml")
	o := NewOpt()
	o.Sensor.GyroRange = 2000
	if err := o.Write(p, false); err != nil {
		t.Fatal(err)
	}
	if err := o.Write(p, false); err == nil {
		t.Fatal("expected error when the file exists")
	}
	if err := o.Write(p, true); err != nil {
		t.Fatal(err)
	}

	cmd := newCmd()
	_ = cmd.Flags().Set("config", p)
	desc := NewDesc()
	if err := desc.Parse(cmd); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(o, desc.Opt); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestInitCfg_print(t *testing.T) {
	cmd := newCmd()
	_ = cmd.Flags().Set("print", "true")
	var out bytes.Buffer
	cmd.SetOut(&out)
	if err := InitCfg(cmd, nil); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out.Bytes(), []byte("client_id: "+DefaultMQTTClientID)) {
		t.Fatalf("unexpected template:\n%s", out.String())
	}
}
