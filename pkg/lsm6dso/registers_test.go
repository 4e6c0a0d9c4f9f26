package lsm6dso

import (
	"testing"

	"github.com/mbalug7/go-lsm6dso/pkg/hal"
	"github.com/mbalug7/go-lsm6dso/pkg/inject"
	"go.viam.com/test"
)

func newAcceptingBus() *inject.Bus {
	return &inject.Bus{
		WriteByteDataFunc: func(busAddr uint8, reg hal.RegAddress, value uint8) error {
			return nil
		},
	}
}

func TestFilterCutoffWireOrder(t *testing.T) {
	// declaration order is the wire encoding, one pattern per divisor
	cases := []struct {
		cutoff  filterCutoff
		pattern uint8
		divisor float64
	}{
		{HPCF_ODR_DIV_4, 0x00, 4},
		{HPCF_ODR_DIV_10, 0x01, 10},
		{HPCF_ODR_DIV_20, 0x02, 20},
		{HPCF_ODR_DIV_45, 0x03, 45},
		{HPCF_ODR_DIV_100, 0x04, 100},
		{HPCF_ODR_DIV_200, 0x05, 200},
		{HPCF_ODR_DIV_400, 0x06, 400},
		{HPCF_ODR_DIV_800, 0x07, 800},
	}
	bus := newAcceptingBus()
	for _, tc := range cases {
		test.That(t, uint8(tc.cutoff), test.ShouldEqual, tc.pattern)
		test.That(t, tc.cutoff.Divisor(), test.ShouldEqual, tc.divisor)

		// encode-decode through the register image round-trips
		reg := newCtrl8Xl(0x00, ADDR_SA0_LOW)
		test.That(t, reg.SetCutoff(bus, tc.cutoff), test.ShouldBeNil)
		test.That(t, reg.GetValue(), test.ShouldEqual, tc.pattern<<5)
		test.That(t, reg.Cutoff(), test.ShouldEqual, tc.cutoff)
	}
}

func TestCutoffWriteFromPowerOnDefault(t *testing.T) {
	var written []uint8
	bus := &inject.Bus{
		WriteByteDataFunc: func(busAddr uint8, reg hal.RegAddress, value uint8) error {
			written = append(written, value)
			return nil
		},
	}

	reg := newCtrl8Xl(0x00, ADDR_SA0_LOW)
	test.That(t, reg.SetCutoff(bus, HPCF_ODR_DIV_45), test.ShouldBeNil)
	test.That(t, written, test.ShouldResemble, []uint8{0x60})
	test.That(t, reg.Cutoff().Divisor(), test.ShouldEqual, 45.0)
}

func TestLowPassOn6DClearKeepsNeighbors(t *testing.T) {
	bus := newAcceptingBus()
	reg := newCtrl8Xl(0xFF, ADDR_SA0_LOW)
	test.That(t, reg.SetLowPassOn6D(bus, false), test.ShouldBeNil)
	test.That(t, reg.GetValue(), test.ShouldEqual, 0xFE)
	// every other field still reads as set
	test.That(t, reg.FSModeNew(), test.ShouldBeTrue)
	test.That(t, reg.HPSlopeEnabled(), test.ShouldBeTrue)
	test.That(t, reg.FastSettle(), test.ShouldBeTrue)
	test.That(t, reg.HPRefMode(), test.ShouldBeTrue)
	test.That(t, reg.Cutoff(), test.ShouldEqual, HPCF_ODR_DIV_800)
}

func TestCtrl8FieldsReadTheirOwnBit(t *testing.T) {
	fields := []struct {
		name string
		bit  uint8
		get  func(*Ctrl8Xl) bool
	}{
		{"LOW_PASS_ON_6D", ctrl8LowPassOn6D, (*Ctrl8Xl).LowPassOn6D},
		{"XL_FS_MODE", ctrl8FSMode, (*Ctrl8Xl).FSModeNew},
		{"HP_SLOPE_XL_EN", ctrl8HPSlopeXLEn, (*Ctrl8Xl).HPSlopeEnabled},
		{"FASTSETTL_MODE_XL", ctrl8FastSettle, (*Ctrl8Xl).FastSettle},
		{"HP_REF_MODE_XL", ctrl8HPRefMode, (*Ctrl8Xl).HPRefMode},
	}
	for _, set := range fields {
		reg := newCtrl8Xl(1<<set.bit, ADDR_SA0_LOW)
		for _, field := range fields {
			// only the field whose bit is set may read true
			test.That(t, field.get(reg), test.ShouldEqual, field.bit == set.bit)
		}
	}
}

func TestCtrl8WritePreservesOtherFields(t *testing.T) {
	bus := newAcceptingBus()
	for _, initial := range []uint8{0x00, 0xFF, 0x55, 0xAA, 0x0F, 0xF0} {
		reg := newCtrl8Xl(initial, ADDR_SA0_LOW)
		test.That(t, reg.SetCutoff(bus, HPCF_ODR_DIV_100), test.ShouldBeNil)
		test.That(t, reg.GetValue()&0x1F, test.ShouldEqual, initial&0x1F)

		reg = newCtrl8Xl(initial, ADDR_SA0_LOW)
		test.That(t, reg.SetHPRefMode(bus, true), test.ShouldBeNil)
		test.That(t, reg.GetValue()|0x10, test.ShouldEqual, initial|0x10)

		reg = newCtrl8Xl(initial, ADDR_SA0_LOW)
		test.That(t, reg.SetFastSettle(bus, false), test.ShouldBeNil)
		test.That(t, reg.GetValue()&^uint8(0x08), test.ShouldEqual, initial&^uint8(0x08))
	}
}

func TestAccelFullScaleWirePatterns(t *testing.T) {
	// the 2-bit patterns are not ordered by range
	test.That(t, uint8(XL_FS_2G), test.ShouldEqual, 0x00)
	test.That(t, uint8(XL_FS_16G), test.ShouldEqual, 0x01)
	test.That(t, uint8(XL_FS_4G), test.ShouldEqual, 0x02)
	test.That(t, uint8(XL_FS_8G), test.ShouldEqual, 0x03)

	test.That(t, XL_FS_2G.Sensitivity(), test.ShouldAlmostEqual, 0.061)
	test.That(t, XL_FS_16G.Sensitivity(), test.ShouldAlmostEqual, 0.488)
	test.That(t, XL_FS_4G.Sensitivity(), test.ShouldAlmostEqual, 0.122)
	test.That(t, XL_FS_8G.Sensitivity(), test.ShouldAlmostEqual, 0.244)
}

func TestDataRateTables(t *testing.T) {
	test.That(t, XL_ODR_OFF.Hz(), test.ShouldEqual, 0)
	test.That(t, XL_ODR_12HZ5.Hz(), test.ShouldEqual, 12.5)
	test.That(t, XL_ODR_833HZ.Hz(), test.ShouldEqual, 833)
	test.That(t, XL_ODR_6667HZ.Hz(), test.ShouldEqual, 6667)
	// the low-power 1.6 Hz rate sits above the fast rates in the encoding
	test.That(t, uint8(XL_ODR_1HZ6), test.ShouldEqual, 0x0B)
	test.That(t, XL_ODR_1HZ6.Hz(), test.ShouldEqual, 1.6)

	test.That(t, G_ODR_OFF.Hz(), test.ShouldEqual, 0)
	test.That(t, G_ODR_104HZ.Hz(), test.ShouldEqual, 104)
	test.That(t, G_ODR_6667HZ.Hz(), test.ShouldEqual, 6667)
}

func TestGyroHPFCutoffTable(t *testing.T) {
	test.That(t, HPM_G_0HZ016.Hz(), test.ShouldAlmostEqual, 0.016)
	test.That(t, HPM_G_0HZ065.Hz(), test.ShouldAlmostEqual, 0.065)
	test.That(t, HPM_G_0HZ26.Hz(), test.ShouldAlmostEqual, 0.26)
	test.That(t, HPM_G_1HZ04.Hz(), test.ShouldAlmostEqual, 1.04)
}

func TestCtrl1FieldCodec(t *testing.T) {
	bus := newAcceptingBus()
	reg := newCtrl1Xl(0x00, ADDR_SA0_LOW)
	test.That(t, reg.SetDataRate(bus, XL_ODR_104HZ), test.ShouldBeNil)
	test.That(t, reg.SetFullScale(bus, XL_FS_4G), test.ShouldBeNil)
	test.That(t, reg.SetLPF2Enabled(bus, true), test.ShouldBeNil)
	test.That(t, reg.GetValue(), test.ShouldEqual, 0x4A)
	test.That(t, reg.DataRate(), test.ShouldEqual, XL_ODR_104HZ)
	test.That(t, reg.FullScale(), test.ShouldEqual, XL_FS_4G)
	test.That(t, reg.LPF2Enabled(), test.ShouldBeTrue)
}

func TestCtrl2FieldCodec(t *testing.T) {
	bus := newAcceptingBus()
	reg := newCtrl2G(0x00, ADDR_SA0_LOW)
	test.That(t, reg.SetDataRate(bus, G_ODR_208HZ), test.ShouldBeNil)
	test.That(t, reg.SetFullScale(bus, G_FS_2000DPS), test.ShouldBeNil)
	test.That(t, reg.SetFS125(bus, true), test.ShouldBeNil)
	test.That(t, reg.GetValue(), test.ShouldEqual, 0x5E)
	test.That(t, reg.DataRate(), test.ShouldEqual, G_ODR_208HZ)
	test.That(t, reg.FullScale(), test.ShouldEqual, G_FS_2000DPS)
	test.That(t, reg.FS125(), test.ShouldBeTrue)
}

func TestCtrl7FieldCodec(t *testing.T) {
	bus := newAcceptingBus()
	reg := newCtrl7G(0x00, ADDR_SA0_LOW)
	test.That(t, reg.SetHPFEnabled(bus, true), test.ShouldBeNil)
	test.That(t, reg.SetHPFCutoff(bus, HPM_G_1HZ04), test.ShouldBeNil)
	test.That(t, reg.GetValue(), test.ShouldEqual, 0x70)
	test.That(t, reg.HPFEnabled(), test.ShouldBeTrue)
	test.That(t, reg.HPFCutoff(), test.ShouldEqual, HPM_G_1HZ04)
}

func TestGyroSelfTestPatterns(t *testing.T) {
	// the gyroscope negative pattern skips 0b10
	test.That(t, uint8(ST_G_POSITIVE), test.ShouldEqual, 0x01)
	test.That(t, uint8(ST_G_NEGATIVE), test.ShouldEqual, 0x03)
	test.That(t, uint8(ST_XL_NEGATIVE), test.ShouldEqual, 0x02)
}

func TestRegistersCollectionCopyIsDetached(t *testing.T) {
	data := []byte{0x4A, 0x50, 0x44, 0x00, 0x20, 0x00, 0x40, 0x60}
	coll := newRegistersCollection(ADDR_SA0_LOW, data)
	staged := coll.Copy()
	test.That(t, staged.EqualTo(coll), test.ShouldBeTrue)

	staged.at(CTRL8_XL).SetValue(0xE0)
	test.That(t, coll.at(CTRL8_XL).GetValue(), test.ShouldEqual, 0x60)
	test.That(t, staged.EqualTo(coll), test.ShouldBeFalse)
}

func TestRegistersCollectionUpdate(t *testing.T) {
	data := make([]byte, controlBlockLen)
	coll := newRegistersCollection(ADDR_SA0_LOW, data)

	err := coll.Update(CTRL7_G, []byte{0x40, 0x60})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, coll.at(CTRL7_G).GetValue(), test.ShouldEqual, 0x40)
	test.That(t, coll.at(CTRL8_XL).GetValue(), test.ShouldEqual, 0x60)

	// runs past the end of the control block
	err = coll.Update(CTRL8_XL, []byte{0x00, 0x00})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRegisterAddresses(t *testing.T) {
	coll := newRegistersCollection(ADDR_SA0_LOW, make([]byte, controlBlockLen))
	test.That(t, coll.at(CTRL1_XL).GetAddress(), test.ShouldEqual, hal.RegAddress(0x10))
	test.That(t, coll.at(CTRL8_XL).GetAddress(), test.ShouldEqual, hal.RegAddress(0x17))
	for i, reg := range coll.regs {
		test.That(t, reg.GetAddress(), test.ShouldEqual, CTRL1_XL+hal.RegAddress(i))
	}
}
