// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/GermanBionicSystems/inertial/internal/config"
	"github.com/GermanBionicSystems/inertial/mpu6050"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/go-cmp/cmp"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func newToken(err error, completed bool) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	if completed {
		close(t.done)
	}
	return t
}

func (t *fakeToken) Wait() bool {
	<-t.done
	return true
}

func (t *fakeToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.done:
		return true
	case <-time.After(d):
		return false
	}
}

func (t *fakeToken) Done() <-chan struct{} {
	return t.done
}

func (t *fakeToken) Error() error {
	return t.err
}

type message struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

// fakeClient implements the subset of mqtt.Client used by Publisher.
type fakeClient struct {
	mqtt.Client
	token        *fakeToken
	published    []message
	disconnected uint
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.published = append(c.published, message{topic, qos, retained, payload.([]byte)})
	return c.token
}

func (c *fakeClient) Disconnect(quiesce uint) {
	c.disconnected = quiesce
}

var measurements = mpu6050.Measurements{
	Acceleration: mpu6050.Vector{X: 0, Y: 0, Z: 9.80665},
	AngularRate:  mpu6050.Vector{X: 1, Y: -2, Z: 0.5},
	Temperature:  36.53,
}

func TestSample_payload(t *testing.T) {
	ts := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	b, err := NewSample(ts, measurements).Payload()
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]interface{}{
		"time":         "2026-10-17T12:00:00Z",
		"acceleration": map[string]interface{}{"x": 0.0, "y": 0.0, "z": 9.80665},
		"angular_rate": map[string]interface{}{"x": 1.0, "y": -2.0, "z": 0.5},
		"temperature":  36.53,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestPublish(t *testing.T) {
	c := &fakeClient{token: newToken(nil, true)}
	p := New(c, config.MQTTOpt{Topic: "lab/imu", QoS: 1, Retained: true})
	s := NewSample(time.Unix(0, 0).UTC(), measurements)
	if err := p.Publish(s); err != nil {
		t.Fatal(err)
	}
	if len(c.published) != 1 {
		t.Fatalf("expected one message, got %d", len(c.published))
	}
	m := c.published[0]
	if m.topic != "lab/imu" || m.qos != 1 || !m.retained {
		t.Fatalf("unexpected message %+v", m)
	}
	var got Sample
	if err := json.Unmarshal(m.payload, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s, got); diff != "" {
		t.Fatalf("sample mismatch (-want +got):\n%s", diff)
	}

	p.Close()
	if c.disconnected != 250 {
		t.Fatalf("Disconnect(%d)", c.disconnected)
	}
}

func TestPublish_error(t *testing.T) {
	sentinel := errors.New("not authorized")
	c := &fakeClient{token: newToken(sentinel, true)}
	p := New(c, config.MQTTOpt{Topic: "t"})
	err := p.Publish(Sample{})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped %v, got %v", sentinel, err)
	}
}

func TestPublish_timeout(t *testing.T) {
	c := &fakeClient{token: newToken(nil, false)}
	p := New(c, config.MQTTOpt{Topic: "t"})
	p.timeout = time.Millisecond
	if err := p.Publish(Sample{}); err == nil {
		t.Fatal("expected timeout")
	}
}
