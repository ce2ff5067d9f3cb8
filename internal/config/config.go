// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package config loads the configuration of the mpu6050 command.
package config

import (
	"os"
	"path"
	"strings"
	"time"

	"github.com/GermanBionicSystems/inertial/mpu6050"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const DefaultAppName = "mpu6050"
const DefaultConfigName = "config"
const DefaultAddress = mpu6050.DefaultAddress
const DefaultSampleInterval = 100 * time.Millisecond
const DefaultMQTTBroker = "tcp://localhost:1883"
const DefaultMQTTClientID = "mpu6050"
const DefaultMQTTTopic = "sensors/mpu6050"

var userHomeDir, _ = os.UserHomeDir()
var DefaultConfig = path.Join(userHomeDir, ".config", DefaultAppName, DefaultConfigName+".yaml")
var DefaultConfigSearchPath0 = path.Join(userHomeDir, ".config", DefaultAppName)

const DefaultConfigSearchPath1 = "/etc/" + DefaultAppName
const DefaultConfigSearchPath2 = "./"

type I2COpt struct {
	// Bus name as understood by i2creg, empty for the first bus.
	Bus     string `yaml:"bus" mapstructure:"bus"`
	Address uint16 `yaml:"address" mapstructure:"address"`
}

type SensorOpt struct {
	// AccelRange in g (2, 4, 8 or 16); 0 keeps the device setting.
	AccelRange int `yaml:"accel_range" mapstructure:"accel_range"`
	// GyroRange in °/s (250, 500, 1000 or 2000); 0 keeps the device setting.
	GyroRange int  `yaml:"gyro_range" mapstructure:"gyro_range"`
	Strict    bool `yaml:"strict" mapstructure:"strict"`
	VerifyID  bool `yaml:"verify_id" mapstructure:"verify_id"`
}

type SampleOpt struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

type MQTTOpt struct {
	Broker   string `yaml:"broker" mapstructure:"broker"`
	ClientID string `yaml:"client_id" mapstructure:"client_id"`
	Topic    string `yaml:"topic" mapstructure:"topic"`
	QoS      byte   `yaml:"qos" mapstructure:"qos"`
	Retained bool   `yaml:"retained" mapstructure:"retained"`
}

type Opt struct {
	I2C    I2COpt    `yaml:"i2c" mapstructure:"i2c"`
	Sensor SensorOpt `yaml:"sensor" mapstructure:"sensor"`
	Sample SampleOpt `yaml:"sample" mapstructure:"sample"`
	MQTT   MQTTOpt   `yaml:"mqtt" mapstructure:"mqtt"`
	Debug  bool      `yaml:"debug" mapstructure:"debug"`
}

type Desc struct {
	Opt   Opt
	Viper *viper.Viper
}

func NewDesc() Desc {
	return Desc{
		Opt:   NewOpt(),
		Viper: nil,
	}
}

func NewOpt() Opt {
	return Opt{
		I2C: I2COpt{
			Address: DefaultAddress,
		},
		Sample: SampleOpt{
			Interval: DefaultSampleInterval,
		},
		MQTT: MQTTOpt{
			Broker:   DefaultMQTTBroker,
			ClientID: DefaultMQTTClientID,
			Topic:    DefaultMQTTTopic,
		},
	}
}

// Parse loads the configuration from, by order of precedence, command line
// flags, MPU6050_* environment variables, the configuration file and the
// defaults.
func (o *Desc) Parse(cmd *cobra.Command) error {
	vipCfg := viper.New()
	def := NewOpt()
	vipCfg.SetDefault("i2c.bus", def.I2C.Bus)
	vipCfg.SetDefault("i2c.address", def.I2C.Address)
	vipCfg.SetDefault("sensor.accel_range", def.Sensor.AccelRange)
	vipCfg.SetDefault("sensor.gyro_range", def.Sensor.GyroRange)
	vipCfg.SetDefault("sensor.strict", def.Sensor.Strict)
	vipCfg.SetDefault("sensor.verify_id", def.Sensor.VerifyID)
	vipCfg.SetDefault("sample.interval", def.Sample.Interval)
	vipCfg.SetDefault("mqtt.broker", def.MQTT.Broker)
	vipCfg.SetDefault("mqtt.client_id", def.MQTT.ClientID)
	vipCfg.SetDefault("mqtt.topic", def.MQTT.Topic)
	vipCfg.SetDefault("mqtt.qos", def.MQTT.QoS)
	vipCfg.SetDefault("mqtt.retained", def.MQTT.Retained)
	vipCfg.SetDefault("debug", def.Debug)

	explicit := false
	if configFileCmd, err := cmd.Flags().GetString("config"); err == nil && configFileCmd != "" {
		vipCfg.SetConfigFile(configFileCmd)
		explicit = true
	} else if configFileEnv := os.Getenv("MPU6050_CONFIG"); configFileEnv != "" {
		vipCfg.SetConfigFile(configFileEnv)
		explicit = true
	} else {
		vipCfg.SetConfigName(DefaultConfigName)
		vipCfg.SetConfigType("yaml")
		vipCfg.AddConfigPath(DefaultConfigSearchPath0)
		vipCfg.AddConfigPath(DefaultConfigSearchPath1)
		vipCfg.AddConfigPath(DefaultConfigSearchPath2)
	}

	vipCfg.SetEnvPrefix(DefaultAppName)
	vipCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vipCfg.AutomaticEnv()

	_ = vipCfg.BindPFlag("i2c.bus", cmd.Flags().Lookup("bus"))
	_ = vipCfg.BindPFlag("i2c.address", cmd.Flags().Lookup("address"))
	_ = vipCfg.BindPFlag("sample.interval", cmd.Flags().Lookup("interval"))
	_ = vipCfg.BindPFlag("debug", cmd.Flags().Lookup("debug"))

	if err := vipCfg.ReadInConfig(); err == nil {
		log.Debugln("using config file:", vipCfg.ConfigFileUsed())
	} else if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && !explicit {
		log.Debugln("no config file found, using defaults")
	} else {
		return errors.Wrap(err, "failed to read config")
	}

	if err := vipCfg.Unmarshal(&o.Opt); err != nil {
		return errors.Wrap(err, "failed to unmarshal config")
	}
	o.Viper = vipCfg
	return o.Opt.Validate()
}

func (o *Desc) PostParse() {
	if o.Opt.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// Validate reports the first invalid setting.
func (o *Opt) Validate() error {
	if o.I2C.Address > 0x7F {
		return errors.Errorf("i2c.address %#x is not a 7-bit address", o.I2C.Address)
	}
	if o.Sensor.AccelRange != 0 {
		if _, err := mpu6050.AccelRangeOf(o.Sensor.AccelRange); err != nil {
			return errors.Wrap(err, "sensor.accel_range")
		}
	}
	if o.Sensor.GyroRange != 0 {
		if _, err := mpu6050.GyroRangeOf(o.Sensor.GyroRange); err != nil {
			return errors.Wrap(err, "sensor.gyro_range")
		}
	}
	if o.Sample.Interval <= 0 {
		return errors.Errorf("sample.interval must be positive, got %s", o.Sample.Interval)
	}
	if o.MQTT.QoS > 2 {
		return errors.Errorf("mqtt.qos must be 0, 1 or 2, got %d", o.MQTT.QoS)
	}
	return nil
}

// Dump renders o as YAML.
func (o *Opt) Dump() ([]byte, error) {
	return yaml.Marshal(o)
}

// Write saves o as YAML to p, creating the parent directory. An existing
// file is only replaced when overwrite is set.
func (o *Opt) Write(p string, overwrite bool) error {
	if _, err := os.Stat(p); err == nil && !overwrite {
		return errors.Errorf("%s already exists, use --yes to overwrite", p)
	}
	if err := os.MkdirAll(path.Dir(p), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	b, err := o.Dump()
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(p, b, 0o644), "failed to write config")
}

// InitCfg prints or writes a configuration template.
func InitCfg(cmd *cobra.Command, _ []string) error {
	printFlag, _ := cmd.Flags().GetBool("print")
	outputPath, _ := cmd.Flags().GetString("output")
	overwriteFlag, _ := cmd.Flags().GetBool("yes")

	desc := NewDesc()
	if err := desc.Parse(cmd); err != nil {
		log.Errorln(err)
		return err
	}

	if printFlag {
		b, err := desc.Opt.Dump()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	}
	if err := desc.Opt.Write(outputPath, overwriteFlag); err != nil {
		return err
	}
	log.Infoln("config written to", outputPath)
	return nil
}
