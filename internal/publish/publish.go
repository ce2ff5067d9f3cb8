// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package publish sends MPU-6050 measurements to an MQTT broker as JSON.
package publish

import (
	"encoding/json"
	"time"

	"github.com/GermanBionicSystems/inertial/internal/config"
	"github.com/GermanBionicSystems/inertial/mpu6050"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultTimeout bounds how long Publish waits for the broker.
const DefaultTimeout = 5 * time.Second

// Sample is the JSON payload of one published reading.
type Sample struct {
	Time         time.Time      `json:"time"`
	Acceleration mpu6050.Vector `json:"acceleration"`
	AngularRate  mpu6050.Vector `json:"angular_rate"`
	Temperature  float64        `json:"temperature"`
}

func NewSample(t time.Time, m mpu6050.Measurements) Sample {
	return Sample{
		Time:         t,
		Acceleration: m.Acceleration,
		AngularRate:  m.AngularRate,
		Temperature:  m.Temperature,
	}
}

func (s Sample) Payload() ([]byte, error) {
	return json.Marshal(s)
}

type Publisher struct {
	client   mqtt.Client
	topic    string
	qos      byte
	retained bool
	timeout  time.Duration
}

// Connect dials the broker described by opt.
func Connect(opt config.MQTTOpt) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(opt.Broker).
		SetClientID(opt.ClientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.WaitTimeout(DefaultTimeout) && token.Error() != nil {
		return nil, errors.Wrapf(token.Error(), "failed to connect to %s", opt.Broker)
	} else if !client.IsConnected() {
		return nil, errors.Errorf("timed out connecting to %s", opt.Broker)
	}
	log.Infoln("connected to MQTT broker", opt.Broker)
	return New(client, opt), nil
}

// New wraps an already connected client.
func New(client mqtt.Client, opt config.MQTTOpt) *Publisher {
	return &Publisher{
		client:   client,
		topic:    opt.Topic,
		qos:      opt.QoS,
		retained: opt.Retained,
		timeout:  DefaultTimeout,
	}
}

func (p *Publisher) Publish(s Sample) error {
	payload, err := s.Payload()
	if err != nil {
		return errors.Wrap(err, "failed to encode sample")
	}
	token := p.client.Publish(p.topic, p.qos, p.retained, payload)
	if !token.WaitTimeout(p.timeout) {
		return errors.Errorf("timed out publishing to %s", p.topic)
	}
	if err := token.Error(); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", p.topic)
	}
	log.Debugf("published to %s: %s", p.topic, payload)
	return nil
}

func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
