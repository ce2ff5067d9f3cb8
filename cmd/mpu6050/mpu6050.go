// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// mpu6050 reads an MPU-6050 over I²C.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/GermanBionicSystems/inertial/internal/cmd"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.RootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
}
