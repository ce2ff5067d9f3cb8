// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package cmd holds the cobra commands of the mpu6050 tool.
package cmd

import (
	"github.com/GermanBionicSystems/inertial/internal/app"
	"github.com/GermanBionicSystems/inertial/internal/config"
	"github.com/GermanBionicSystems/inertial/internal/publish"
	"github.com/GermanBionicSystems/inertial/screen1d"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:           "mpu6050",
	Short:         "read an MPU-6050 accelerometer and gyroscope over I²C",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func deviceFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "configuration file path")
	cmd.Flags().StringP("bus", "b", "", "I²C bus name or number, empty for the first one")
	cmd.Flags().Uint16P("address", "a", config.DefaultAddress, "7-bit I²C address, 0x68 or 0x69")
	cmd.Flags().Bool("debug", false, "toggle debug logging")
}

func samplingFlags(cmd *cobra.Command) {
	deviceFlags(cmd)
	cmd.Flags().DurationP("interval", "i", config.DefaultSampleInterval, "sampling interval")
}

// load parses the configuration and opens the sensor.
func load(cmd *cobra.Command) (config.Desc, *app.Device, error) {
	desc := config.NewDesc()
	if err := desc.Parse(cmd); err != nil {
		return desc, nil, err
	}
	desc.PostParse()
	dev, err := app.Open(desc.Opt)
	if err != nil {
		return desc, nil, err
	}
	log.Debugln("opened", dev)
	return desc, dev, nil
}

var ReadCmd = &cobra.Command{
	Use:     "read",
	Short:   "read print one measurement",
	Example: `  mpu6050 read --bus 1 --address 0x69`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, dev, err := load(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		return app.Read(dev, cmd.OutOrStdout())
	},
}

var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "watch draw the acceleration in the terminal until interrupted",
	RunE: func(cmd *cobra.Command, _ []string) error {
		desc, dev, err := load(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		return app.Watch(cmd.Context(), dev, desc.Opt.Sample.Interval, screen1d.New(nil))
	},
}

var PublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "publish send measurements to an MQTT broker until interrupted",
	Long: `publish reads the sensor every interval and publishes each reading as JSON
to the topic configured in mqtt.topic. The broker is set by mqtt.broker or
the MPU6050_MQTT_BROKER environment variable.
`,
	Example: `  MPU6050_MQTT_BROKER=tcp://pi.local:1883 mpu6050 publish -i 50ms`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		desc, dev, err := load(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		p, err := publish.Connect(desc.Opt.MQTT)
		if err != nil {
			return err
		}
		defer p.Close()
		return app.Publish(cmd.Context(), dev, desc.Opt.Sample.Interval, p)
	},
}

var SnapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "snapshot save one measurement as a PNG image",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, dev, err := load(cmd)
		if err != nil {
			return err
		}
		defer dev.Close()
		output, _ := cmd.Flags().GetString("output")
		return app.Snapshot(dev, output, nil)
	},
}

var InitCmd = &cobra.Command{
	Use: "init",
	SuggestFor: []string{
		"ini", "in",
	},
	Short: "init create a configuration template",
	Long: `init create a configuration template.
If --print flag is present, the configuration will be printed to stdout.
If --output / -o flag is present, the configuration will be saved to the path specified
Otherwise init will output configuration file to $HOME/.config/mpu6050/config.yaml
If --yes / -y flag is present, an existing file is overwritten
`,
	Example: `  mpu6050 init --print
  mpu6050 init -o /path/to/config.yaml -y`,
	RunE: config.InitCfg,
}

func init() {
	deviceFlags(ReadCmd)
	RootCmd.AddCommand(ReadCmd)

	samplingFlags(WatchCmd)
	RootCmd.AddCommand(WatchCmd)

	samplingFlags(PublishCmd)
	RootCmd.AddCommand(PublishCmd)

	deviceFlags(SnapshotCmd)
	SnapshotCmd.Flags().StringP("output", "o", "mpu6050.png", "image path")
	RootCmd.AddCommand(SnapshotCmd)

	InitCmd.Flags().String("config", "", "configuration file to start from")
	InitCmd.Flags().Bool("print", false, "print config to stdout")
	InitCmd.Flags().BoolP("yes", "y", false, "overwrite")
	InitCmd.Flags().StringP("output", "o", config.DefaultConfig, "output path")
	RootCmd.AddCommand(InitCmd)
}
