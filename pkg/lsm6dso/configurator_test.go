package lsm6dso

import (
	"errors"
	"testing"

	"github.com/mbalug7/go-lsm6dso/pkg/hal"
	"go.viam.com/test"
)

func TestBuilderStagesWithoutBusTraffic(t *testing.T) {
	chip, _, module := newTestModule(t)
	chip.writes = nil

	NewConfigBuilder(module).
		AccelRate(XL_ODR_104HZ).
		AccelScale(XL_FS_4G).
		FilterCutoff(HPCF_ODR_DIV_45).
		GyroRate(G_ODR_208HZ)

	test.That(t, chip.writes, test.ShouldHaveLength, 0)
	// live images did not move either
	test.That(t, module.AccelRate(), test.ShouldEqual, XL_ODR_OFF)
	test.That(t, module.FilterCutoff(), test.ShouldEqual, HPCF_ODR_DIV_4)
}

func TestBuilderWriteConfig(t *testing.T) {
	chip, _, module := newTestModule(t)
	chip.writes = nil

	err := NewConfigBuilder(module).
		AccelRate(XL_ODR_104HZ).
		AccelScale(XL_FS_4G).
		AccelLPF2(true).
		GyroRate(G_ODR_208HZ).
		FilterCutoff(HPCF_ODR_DIV_45).
		WriteConfig()
	test.That(t, err, test.ShouldBeNil)

	// one write per changed register, untouched registers stay quiet
	test.That(t, chip.writes, test.ShouldResemble, []busWrite{
		{reg: CTRL1_XL, value: 0x4A},
		{reg: CTRL2_G, value: 0x50},
		{reg: CTRL8_XL, value: 0x60},
	})
	test.That(t, module.AccelRate(), test.ShouldEqual, XL_ODR_104HZ)
	test.That(t, module.AccelScale(), test.ShouldEqual, XL_FS_4G)
	test.That(t, module.AccelLPF2(), test.ShouldBeTrue)
	test.That(t, module.GyroRate(), test.ShouldEqual, G_ODR_208HZ)
	test.That(t, module.FilterCutoff(), test.ShouldEqual, HPCF_ODR_DIV_45)
	test.That(t, module.AccelCutoffFrequency(), test.ShouldAlmostEqual, 104.0/45.0, 1e-9)
}

func TestBuilderNoChanges(t *testing.T) {
	_, _, module := newTestModule(t)
	err := NewConfigBuilder(module).WriteConfig()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "ignoring")
}

func TestBuilderReadbackMismatch(t *testing.T) {
	chip, bus, module := newTestModule(t)
	// writes are acknowledged but never land on the chip
	bus.WriteByteDataFunc = func(busAddr uint8, reg hal.RegAddress, value uint8) error {
		chip.writes = append(chip.writes, busWrite{reg: reg, value: value})
		return nil
	}

	err := NewConfigBuilder(module).AccelRate(XL_ODR_104HZ).WriteConfig()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not the same as staged")
	// the image follows the hardware, not the wish
	test.That(t, module.AccelRate(), test.ShouldEqual, XL_ODR_OFF)
}

func TestBuilderPartialFailureResyncs(t *testing.T) {
	busErr := errors.New("remote i/o error")
	chip, bus, module := newTestModule(t)
	writeOK := bus.WriteByteDataFunc
	bus.WriteByteDataFunc = func(busAddr uint8, reg hal.RegAddress, value uint8) error {
		if reg == CTRL2_G {
			return busErr
		}
		return writeOK(busAddr, reg, value)
	}

	err := NewConfigBuilder(module).
		AccelRate(XL_ODR_104HZ).
		GyroRate(G_ODR_208HZ).
		WriteConfig()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, busErr), test.ShouldBeTrue)

	// CTRL1_XL went out before the failure; the resync keeps the images on
	// the hardware truth for both registers
	test.That(t, module.AccelRate(), test.ShouldEqual, XL_ODR_104HZ)
	test.That(t, module.GyroRate(), test.ShouldEqual, G_ODR_OFF)
	test.That(t, chip.regs[CTRL2_G], test.ShouldEqual, 0)
}

func TestBuilderStageAllControlRegisters(t *testing.T) {
	chip, _, module := newTestModule(t)
	chip.writes = nil

	err := NewConfigBuilder(module).
		AccelRate(XL_ODR_52HZ).
		GyroFS125(true).
		BlockDataUpdate(true).
		GyroSleep(true).
		Rounding(ROUNDING_XL_G).
		GyroLPF1Bandwidth(FTYPE_3).
		GyroHPFCutoff(HPM_G_0HZ26).
		LowPassOn6D(true).
		WriteConfig()
	test.That(t, err, test.ShouldBeNil)

	// every control register took exactly one write
	test.That(t, chip.writes, test.ShouldHaveLength, controlBlockLen)
	test.That(t, chip.regs[CTRL1_XL], test.ShouldEqual, 0x30)
	test.That(t, chip.regs[CTRL2_G], test.ShouldEqual, 0x02)
	test.That(t, chip.regs[CTRL3_C], test.ShouldEqual, 0x44)
	test.That(t, chip.regs[CTRL4_C], test.ShouldEqual, 0x40)
	test.That(t, chip.regs[CTRL5_C], test.ShouldEqual, 0x60)
	test.That(t, chip.regs[CTRL6_C], test.ShouldEqual, 0x03)
	test.That(t, chip.regs[CTRL7_G], test.ShouldEqual, 0x20)
	test.That(t, chip.regs[CTRL8_XL], test.ShouldEqual, 0x01)
}
