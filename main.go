package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edaniels/golog"
	"github.com/mbalug7/go-lsm6dso/pkg/hal"
	"github.com/mbalug7/go-lsm6dso/pkg/lsm6dso"
)

func main() {
	logger := golog.NewDevelopmentLogger("lsm6dso")

	// open the I2C adapter, bus 1 is the external bus on a RPi 4
	bus, err := hal.NewI2CBus(1, logger)
	if err != nil {
		logger.Fatal(err)
	}

	// probe the chip, reset it to the defaults and read the control block
	// back into the local register images
	module, err := lsm6dso.NewModule(bus, lsm6dso.Config{Reset: true, BlockDataUpdate: true}, logger)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("chip configuration:%s", module.GetModuleConfiguration())

	// stage the sampling setup and write it out in one go, only changed
	// registers are touched
	err = lsm6dso.NewConfigBuilder(module).
		AccelRate(lsm6dso.XL_ODR_104HZ).
		AccelScale(lsm6dso.XL_FS_4G).
		AccelLPF2(true).
		FilterCutoff(lsm6dso.HPCF_ODR_DIV_45).
		GyroRate(lsm6dso.G_ODR_104HZ).
		GyroScale(lsm6dso.G_FS_500DPS).
		WriteConfig()
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("accelerometer low-pass cutoff: %.2f Hz", module.AccelCutoffFrequency())

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	// wait for keyboard signal interrupt
	signalInterruptChan := make(chan os.Signal, 1)
	signal.Notify(signalInterruptChan, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			accel, err := module.ReadAccel()
			if err != nil {
				logger.Errorf("failed to read acceleration: %s", err)
				continue
			}
			gyro, err := module.ReadGyro()
			if err != nil {
				logger.Errorf("failed to read angular rate: %s", err)
				continue
			}
			logger.Infof("accel [g] %.3f %.3f %.3f | gyro [dps] %.2f %.2f %.2f",
				accel.X, accel.Y, accel.Z, gyro.X, gyro.Y, gyro.Z)
		case <-signalInterruptChan:
			if err := module.Close(); err != nil {
				logger.Errorf("failed to power the chip down: %s", err)
			}
			if err := bus.Close(); err != nil {
				logger.Errorf("failed to close the bus: %s", err)
			}
			return
		}
	}
}
