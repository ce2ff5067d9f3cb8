// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package inertial is a container for the MPU-6050 inertial sensor driver
// and the small set of tools built around it.
//
// The driver itself lives in package mpu6050; cmd/mpu6050 is a demonstration
// command line tool.
package inertial
