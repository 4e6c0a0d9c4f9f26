package lsm6dso

import (
	"fmt"

	"github.com/mbalug7/go-lsm6dso/pkg/hal"
)

// Register map, sub-addresses on the chip.
const (
	INT1_CTRL  hal.RegAddress = 0x0D
	WHO_AM_I   hal.RegAddress = 0x0F
	CTRL1_XL   hal.RegAddress = 0x10
	CTRL2_G    hal.RegAddress = 0x11
	CTRL3_C    hal.RegAddress = 0x12
	CTRL4_C    hal.RegAddress = 0x13
	CTRL5_C    hal.RegAddress = 0x14
	CTRL6_C    hal.RegAddress = 0x15
	CTRL7_G    hal.RegAddress = 0x16
	CTRL8_XL   hal.RegAddress = 0x17
	STATUS_REG hal.RegAddress = 0x1E
	OUT_TEMP_L hal.RegAddress = 0x20
	OUTX_L_G   hal.RegAddress = 0x22
	OUTX_L_A   hal.RegAddress = 0x28
)

// chipID is the fixed content of WHO_AM_I.
const chipID uint8 = 0x6C

// Bus addresses selected by the SA0 strap.
const (
	ADDR_SA0_LOW  uint8 = 0x6A
	ADDR_SA0_HIGH uint8 = 0x6B
)

// controlBlockLen is the number of registers in the contiguous CTRL1_XL to
// CTRL8_XL block.
const controlBlockLen = 8

type registersCollection struct {
	busAddr uint8
	regs    [controlBlockLen]hal.Register
}

// newRegistersCollection builds the images of the whole control block from
// the bytes read back from the chip. data holds the hardware values of
// CTRL1_XL..CTRL8_XL in address order.
func newRegistersCollection(busAddr uint8, data []byte) registersCollection {
	return registersCollection{
		busAddr: busAddr,
		// ordered array, Ctrl1Xl sits at CTRL1_XL, Ctrl8Xl at CTRL8_XL
		regs: [controlBlockLen]hal.Register{
			newCtrl1Xl(data[0], busAddr),
			newCtrl2G(data[1], busAddr),
			newCtrl3C(data[2], busAddr),
			newCtrl4C(data[3], busAddr),
			newCtrl5C(data[4], busAddr),
			newCtrl6C(data[5], busAddr),
			newCtrl7G(data[6], busAddr),
			newCtrl8Xl(data[7], busAddr),
		},
	}
}

// at returns the image of the control register with the given sub-address.
func (obj *registersCollection) at(addr hal.RegAddress) hal.Register {
	return obj.regs[addr-CTRL1_XL]
}

// Copy clones the collection so a new setup can be staged without touching
// the live images.
func (obj *registersCollection) Copy() registersCollection {
	data := make([]byte, len(obj.regs))
	for i, reg := range obj.regs {
		data[i] = reg.GetValue()
	}
	return newRegistersCollection(obj.busAddr, data)
}

// Update refreshes the images starting at startAddr with the bytes read
// back from the chip.
func (obj *registersCollection) Update(startAddr hal.RegAddress, params []byte) error {
	for i, value := range params {
		addr := startAddr + hal.RegAddress(i)
		if addr < CTRL1_XL || addr > CTRL8_XL {
			return fmt.Errorf("register 0x%02X is not part of the control block", addr.ToByte())
		}
		obj.at(addr).SetValue(value)
	}
	return nil
}

// EqualTo reports whether both collections hold the same register values.
func (obj *registersCollection) EqualTo(other registersCollection) bool {
	for i, reg := range obj.regs {
		if reg.GetValue() != other.regs[i].GetValue() {
			return false
		}
	}
	return true
}

// CTRL1_XL specification
//
// Accelerometer data rate, full scale and LPF2 path selection.

type accelDataRate uint8

const (
	XL_ODR_OFF accelDataRate = iota
	XL_ODR_12HZ5
	XL_ODR_26HZ
	XL_ODR_52HZ
	XL_ODR_104HZ
	XL_ODR_208HZ
	XL_ODR_417HZ
	XL_ODR_833HZ
	XL_ODR_1667HZ
	XL_ODR_3333HZ
	XL_ODR_6667HZ
	XL_ODR_1HZ6 // available in low-power mode only
)

var accelRateHzMap = map[accelDataRate]float64{
	XL_ODR_12HZ5:  12.5,
	XL_ODR_26HZ:   26,
	XL_ODR_52HZ:   52,
	XL_ODR_104HZ:  104,
	XL_ODR_208HZ:  208,
	XL_ODR_417HZ:  417,
	XL_ODR_833HZ:  833,
	XL_ODR_1667HZ: 1667,
	XL_ODR_3333HZ: 3333,
	XL_ODR_6667HZ: 6667,
	XL_ODR_1HZ6:   1.6,
}

// Hz returns the nominal sample rate, 0 when the accelerometer is powered
// down.
func (r accelDataRate) Hz() float64 {
	return accelRateHzMap[r]
}

// The wire patterns of the full scale field are not ordered by range.
type accelFullScale uint8

const (
	XL_FS_2G  accelFullScale = 0x00
	XL_FS_16G accelFullScale = 0x01
	XL_FS_4G  accelFullScale = 0x02
	XL_FS_8G  accelFullScale = 0x03
)

// accelSensitivityMap holds mg per LSB for each full scale setting.
var accelSensitivityMap = map[accelFullScale]float64{
	XL_FS_2G:  0.061,
	XL_FS_16G: 0.488,
	XL_FS_4G:  0.122,
	XL_FS_8G:  0.244,
}

// Sensitivity returns the output weight in mg per LSB.
func (fs accelFullScale) Sensitivity() float64 {
	return accelSensitivityMap[fs]
}

const (
	ctrl1LPF2XLEn  uint8 = 1
	ctrl1FSOffset  uint8 = 2
	ctrl1FSMask    uint8 = 0x03
	ctrl1ODROffset uint8 = 4
	ctrl1ODRMask   uint8 = 0x0F
)

type Ctrl1Xl struct {
	hal.Mirror
}

func newCtrl1Xl(initial, busAddr uint8) *Ctrl1Xl {
	return &Ctrl1Xl{hal.NewMirror(initial, busAddr, CTRL1_XL)}
}

func (obj *Ctrl1Xl) DataRate() accelDataRate {
	return accelDataRate(obj.Field(ctrl1ODROffset, ctrl1ODRMask))
}

func (obj *Ctrl1Xl) SetDataRate(bus hal.Bus, rate accelDataRate) error {
	return obj.WriteField(bus, ctrl1ODROffset, ctrl1ODRMask, uint8(rate))
}

func (obj *Ctrl1Xl) FullScale() accelFullScale {
	return accelFullScale(obj.Field(ctrl1FSOffset, ctrl1FSMask))
}

func (obj *Ctrl1Xl) SetFullScale(bus hal.Bus, fs accelFullScale) error {
	return obj.WriteField(bus, ctrl1FSOffset, ctrl1FSMask, uint8(fs))
}

// LPF2Enabled reports whether the accelerometer output is routed through
// the second low-pass stage. The cutoff of that stage comes from CTRL8_XL.
func (obj *Ctrl1Xl) LPF2Enabled() bool {
	return obj.Bit(ctrl1LPF2XLEn)
}

func (obj *Ctrl1Xl) SetLPF2Enabled(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl1LPF2XLEn, on)
}

// CTRL2_G specification
//
// Gyroscope data rate and full scale.

type gyroDataRate uint8

const (
	G_ODR_OFF gyroDataRate = iota
	G_ODR_12HZ5
	G_ODR_26HZ
	G_ODR_52HZ
	G_ODR_104HZ
	G_ODR_208HZ
	G_ODR_417HZ
	G_ODR_833HZ
	G_ODR_1667HZ
	G_ODR_3333HZ
	G_ODR_6667HZ
)

var gyroRateHzMap = map[gyroDataRate]float64{
	G_ODR_12HZ5:  12.5,
	G_ODR_26HZ:   26,
	G_ODR_52HZ:   52,
	G_ODR_104HZ:  104,
	G_ODR_208HZ:  208,
	G_ODR_417HZ:  417,
	G_ODR_833HZ:  833,
	G_ODR_1667HZ: 1667,
	G_ODR_3333HZ: 3333,
	G_ODR_6667HZ: 6667,
}

// Hz returns the nominal sample rate, 0 when the gyroscope is powered down.
func (r gyroDataRate) Hz() float64 {
	return gyroRateHzMap[r]
}

type gyroFullScale uint8

const (
	G_FS_250DPS gyroFullScale = iota
	G_FS_500DPS
	G_FS_1000DPS
	G_FS_2000DPS
)

// gyroSensitivityMap holds mdps per LSB for each full scale setting.
var gyroSensitivityMap = map[gyroFullScale]float64{
	G_FS_250DPS:  8.75,
	G_FS_500DPS:  17.5,
	G_FS_1000DPS: 35,
	G_FS_2000DPS: 70,
}

// gyroSensitivity125 is mdps per LSB with the dedicated 125 dps scale.
const gyroSensitivity125 = 4.375

// Sensitivity returns the output weight in mdps per LSB.
func (fs gyroFullScale) Sensitivity() float64 {
	return gyroSensitivityMap[fs]
}

const (
	ctrl2FS125     uint8 = 1
	ctrl2FSOffset  uint8 = 2
	ctrl2FSMask    uint8 = 0x03
	ctrl2ODROffset uint8 = 4
	ctrl2ODRMask   uint8 = 0x0F
)

type Ctrl2G struct {
	hal.Mirror
}

func newCtrl2G(initial, busAddr uint8) *Ctrl2G {
	return &Ctrl2G{hal.NewMirror(initial, busAddr, CTRL2_G)}
}

func (obj *Ctrl2G) DataRate() gyroDataRate {
	return gyroDataRate(obj.Field(ctrl2ODROffset, ctrl2ODRMask))
}

func (obj *Ctrl2G) SetDataRate(bus hal.Bus, rate gyroDataRate) error {
	return obj.WriteField(bus, ctrl2ODROffset, ctrl2ODRMask, uint8(rate))
}

func (obj *Ctrl2G) FullScale() gyroFullScale {
	return gyroFullScale(obj.Field(ctrl2FSOffset, ctrl2FSMask))
}

func (obj *Ctrl2G) SetFullScale(bus hal.Bus, fs gyroFullScale) error {
	return obj.WriteField(bus, ctrl2FSOffset, ctrl2FSMask, uint8(fs))
}

// FS125 reports whether the dedicated 125 dps full scale overrides the
// FullScale setting.
func (obj *Ctrl2G) FS125() bool {
	return obj.Bit(ctrl2FS125)
}

func (obj *Ctrl2G) SetFS125(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl2FS125, on)
}

// CTRL3_C specification
//
// Common control: reboot, reset, bus behavior and interrupt pin polarity.

const (
	ctrl3SWReset  uint8 = 0
	ctrl3IFInc    uint8 = 2
	ctrl3SIM      uint8 = 3
	ctrl3PPOD     uint8 = 4
	ctrl3HLActive uint8 = 5
	ctrl3BDU      uint8 = 6
	ctrl3Boot     uint8 = 7
)

type Ctrl3C struct {
	hal.Mirror
}

func newCtrl3C(initial, busAddr uint8) *Ctrl3C {
	return &Ctrl3C{hal.NewMirror(initial, busAddr, CTRL3_C)}
}

// SWReset reports whether a software reset is still in progress. The bit
// self-clears on the chip, so refresh the image before trusting it.
func (obj *Ctrl3C) SWReset() bool {
	return obj.Bit(ctrl3SWReset)
}

// AutoIncrement reports whether the sub-address advances on its own during
// multi-byte transfers. Block reads of the output registers rely on it.
func (obj *Ctrl3C) AutoIncrement() bool {
	return obj.Bit(ctrl3IFInc)
}

func (obj *Ctrl3C) SetAutoIncrement(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl3IFInc, on)
}

// SPI3Wire reports whether the SPI interface runs in 3-wire mode.
func (obj *Ctrl3C) SPI3Wire() bool {
	return obj.Bit(ctrl3SIM)
}

func (obj *Ctrl3C) SetSPI3Wire(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl3SIM, on)
}

// OpenDrain reports whether the interrupt pads drive open drain instead of
// push-pull.
func (obj *Ctrl3C) OpenDrain() bool {
	return obj.Bit(ctrl3PPOD)
}

func (obj *Ctrl3C) SetOpenDrain(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl3PPOD, on)
}

// ActiveLow reports whether the interrupt pads are active low.
func (obj *Ctrl3C) ActiveLow() bool {
	return obj.Bit(ctrl3HLActive)
}

func (obj *Ctrl3C) SetActiveLow(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl3HLActive, on)
}

// BlockDataUpdate reports whether output registers are frozen between the
// low and high byte reads of one sample.
func (obj *Ctrl3C) BlockDataUpdate() bool {
	return obj.Bit(ctrl3BDU)
}

func (obj *Ctrl3C) SetBlockDataUpdate(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl3BDU, on)
}

// Boot reports whether the trimming parameters are being reloaded.
func (obj *Ctrl3C) Boot() bool {
	return obj.Bit(ctrl3Boot)
}

// CTRL4_C specification

const (
	ctrl4LPF1SelG   uint8 = 1
	ctrl4I2CDisable uint8 = 2
	ctrl4DrdyMask   uint8 = 3
	ctrl4Int2OnInt1 uint8 = 5
	ctrl4SleepG     uint8 = 6
)

type Ctrl4C struct {
	hal.Mirror
}

func newCtrl4C(initial, busAddr uint8) *Ctrl4C {
	return &Ctrl4C{hal.NewMirror(initial, busAddr, CTRL4_C)}
}

// GyroLPF1Enabled reports whether the gyroscope LPF1 stage is in the signal
// path. Its bandwidth comes from CTRL6_C.
func (obj *Ctrl4C) GyroLPF1Enabled() bool {
	return obj.Bit(ctrl4LPF1SelG)
}

func (obj *Ctrl4C) SetGyroLPF1Enabled(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl4LPF1SelG, on)
}

// I2CDisabled reports whether the I2C interface is shut off, leaving SPI
// only.
func (obj *Ctrl4C) I2CDisabled() bool {
	return obj.Bit(ctrl4I2CDisable)
}

func (obj *Ctrl4C) SetI2CDisabled(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl4I2CDisable, on)
}

// DataReadyMasked reports whether data-ready signals are held back until
// the filters have settled.
func (obj *Ctrl4C) DataReadyMasked() bool {
	return obj.Bit(ctrl4DrdyMask)
}

func (obj *Ctrl4C) SetDataReadyMasked(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl4DrdyMask, on)
}

// INT2OnINT1 reports whether INT2 signals are rerouted to the INT1 pad.
func (obj *Ctrl4C) INT2OnINT1() bool {
	return obj.Bit(ctrl4Int2OnInt1)
}

func (obj *Ctrl4C) SetINT2OnINT1(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl4Int2OnInt1, on)
}

// GyroSleep reports whether the gyroscope is in sleep mode.
func (obj *Ctrl4C) GyroSleep() bool {
	return obj.Bit(ctrl4SleepG)
}

func (obj *Ctrl4C) SetGyroSleep(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl4SleepG, on)
}

// CTRL5_C specification

type roundingMode uint8

const (
	ROUNDING_NONE roundingMode = iota
	ROUNDING_XL
	ROUNDING_G
	ROUNDING_XL_G
)

type accelSelfTest uint8

const (
	ST_XL_DISABLED accelSelfTest = 0x00
	ST_XL_POSITIVE accelSelfTest = 0x01
	ST_XL_NEGATIVE accelSelfTest = 0x02
)

type gyroSelfTest uint8

const (
	ST_G_DISABLED gyroSelfTest = 0x00
	ST_G_POSITIVE gyroSelfTest = 0x01
	ST_G_NEGATIVE gyroSelfTest = 0x03
)

const (
	ctrl5STXLOffset     uint8 = 0
	ctrl5STXLMask       uint8 = 0x03
	ctrl5STGOffset      uint8 = 2
	ctrl5STGMask        uint8 = 0x03
	ctrl5RoundingOffset uint8 = 5
	ctrl5RoundingMask   uint8 = 0x03
	ctrl5XLULPEn        uint8 = 7
)

type Ctrl5C struct {
	hal.Mirror
}

func newCtrl5C(initial, busAddr uint8) *Ctrl5C {
	return &Ctrl5C{hal.NewMirror(initial, busAddr, CTRL5_C)}
}

func (obj *Ctrl5C) AccelSelfTest() accelSelfTest {
	return accelSelfTest(obj.Field(ctrl5STXLOffset, ctrl5STXLMask))
}

func (obj *Ctrl5C) SetAccelSelfTest(bus hal.Bus, mode accelSelfTest) error {
	return obj.WriteField(bus, ctrl5STXLOffset, ctrl5STXLMask, uint8(mode))
}

func (obj *Ctrl5C) GyroSelfTest() gyroSelfTest {
	return gyroSelfTest(obj.Field(ctrl5STGOffset, ctrl5STGMask))
}

func (obj *Ctrl5C) SetGyroSelfTest(bus hal.Bus, mode gyroSelfTest) error {
	return obj.WriteField(bus, ctrl5STGOffset, ctrl5STGMask, uint8(mode))
}

// Rounding reports which output register groups wrap around during burst
// reads.
func (obj *Ctrl5C) Rounding() roundingMode {
	return roundingMode(obj.Field(ctrl5RoundingOffset, ctrl5RoundingMask))
}

func (obj *Ctrl5C) SetRounding(bus hal.Bus, mode roundingMode) error {
	return obj.WriteField(bus, ctrl5RoundingOffset, ctrl5RoundingMask, uint8(mode))
}

// UltraLowPower reports whether the accelerometer ultra-low-power mode is
// selected.
func (obj *Ctrl5C) UltraLowPower() bool {
	return obj.Bit(ctrl5XLULPEn)
}

func (obj *Ctrl5C) SetUltraLowPower(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl5XLULPEn, on)
}

// CTRL6_C specification

type gyroLPF1Bandwidth uint8

// Gyroscope LPF1 bandwidth select. The resulting bandwidth in Hz depends on
// the data rate, see the bandwidth table in the datasheet.
const (
	FTYPE_0 gyroLPF1Bandwidth = iota
	FTYPE_1
	FTYPE_2
	FTYPE_3
	FTYPE_4
	FTYPE_5
	FTYPE_6
	FTYPE_7
)

const (
	ctrl6FTypeOffset uint8 = 0
	ctrl6FTypeMask   uint8 = 0x07
	ctrl6USROffW     uint8 = 3
	ctrl6XLHMMode    uint8 = 4
	ctrl6Lvl2En      uint8 = 5
	ctrl6Lvl1En      uint8 = 6
	ctrl6TrigEn      uint8 = 7
)

type Ctrl6C struct {
	hal.Mirror
}

func newCtrl6C(initial, busAddr uint8) *Ctrl6C {
	return &Ctrl6C{hal.NewMirror(initial, busAddr, CTRL6_C)}
}

func (obj *Ctrl6C) GyroLPF1Bandwidth() gyroLPF1Bandwidth {
	return gyroLPF1Bandwidth(obj.Field(ctrl6FTypeOffset, ctrl6FTypeMask))
}

func (obj *Ctrl6C) SetGyroLPF1Bandwidth(bus hal.Bus, bw gyroLPF1Bandwidth) error {
	return obj.WriteField(bus, ctrl6FTypeOffset, ctrl6FTypeMask, uint8(bw))
}

// OffsetWeightHigh reports whether the user offset weight is 2^-6 g/LSB
// instead of 2^-10 g/LSB.
func (obj *Ctrl6C) OffsetWeightHigh() bool {
	return obj.Bit(ctrl6USROffW)
}

func (obj *Ctrl6C) SetOffsetWeightHigh(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl6USROffW, on)
}

// AccelHighPerfDisabled reports whether the accelerometer high-performance
// mode is switched off so the data rate picks the power mode.
func (obj *Ctrl6C) AccelHighPerfDisabled() bool {
	return obj.Bit(ctrl6XLHMMode)
}

func (obj *Ctrl6C) SetAccelHighPerfDisabled(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl6XLHMMode, on)
}

// DEN trigger bits, see the DEN section of the datasheet for the valid
// combinations.

func (obj *Ctrl6C) EdgeTrigger() bool {
	return obj.Bit(ctrl6TrigEn)
}

func (obj *Ctrl6C) SetEdgeTrigger(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl6TrigEn, on)
}

func (obj *Ctrl6C) LevelTrigger() bool {
	return obj.Bit(ctrl6Lvl1En)
}

func (obj *Ctrl6C) SetLevelTrigger(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl6Lvl1En, on)
}

func (obj *Ctrl6C) LevelLatched() bool {
	return obj.Bit(ctrl6Lvl2En)
}

func (obj *Ctrl6C) SetLevelLatched(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl6Lvl2En, on)
}

// CTRL7_G specification
//
// Gyroscope high-pass filter and OIS chain control.

type gyroHPFCutoff uint8

const (
	HPM_G_0HZ016 gyroHPFCutoff = iota
	HPM_G_0HZ065
	HPM_G_0HZ26
	HPM_G_1HZ04
)

// gyroHPFCutoffHzMap holds the absolute cutoff in Hz for each setting.
var gyroHPFCutoffHzMap = map[gyroHPFCutoff]float64{
	HPM_G_0HZ016: 0.016,
	HPM_G_0HZ065: 0.065,
	HPM_G_0HZ26:  0.26,
	HPM_G_1HZ04:  1.04,
}

// Hz returns the cutoff frequency of the gyroscope high-pass filter.
func (c gyroHPFCutoff) Hz() float64 {
	return gyroHPFCutoffHzMap[c]
}

const (
	ctrl7OISOn       uint8 = 0
	ctrl7USROffOnOut uint8 = 1
	ctrl7OISOnEn     uint8 = 2
	ctrl7HPMOffset   uint8 = 4
	ctrl7HPMMask     uint8 = 0x03
	ctrl7HPEnG       uint8 = 6
	ctrl7GHMMode     uint8 = 7
)

type Ctrl7G struct {
	hal.Mirror
}

func newCtrl7G(initial, busAddr uint8) *Ctrl7G {
	return &Ctrl7G{hal.NewMirror(initial, busAddr, CTRL7_G)}
}

// OISEnabled reports whether the OIS chain is on while controlled from the
// primary interface.
func (obj *Ctrl7G) OISEnabled() bool {
	return obj.Bit(ctrl7OISOn)
}

func (obj *Ctrl7G) SetOISEnabled(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl7OISOn, on)
}

// OffsetOnOutput reports whether the user accelerometer offset is applied
// to the output registers.
func (obj *Ctrl7G) OffsetOnOutput() bool {
	return obj.Bit(ctrl7USROffOnOut)
}

func (obj *Ctrl7G) SetOffsetOnOutput(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl7USROffOnOut, on)
}

// OISPrimaryControl reports whether the OIS chain is controlled from the
// primary interface instead of the auxiliary one.
func (obj *Ctrl7G) OISPrimaryControl() bool {
	return obj.Bit(ctrl7OISOnEn)
}

func (obj *Ctrl7G) SetOISPrimaryControl(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl7OISOnEn, on)
}

func (obj *Ctrl7G) HPFCutoff() gyroHPFCutoff {
	return gyroHPFCutoff(obj.Field(ctrl7HPMOffset, ctrl7HPMMask))
}

func (obj *Ctrl7G) SetHPFCutoff(bus hal.Bus, cutoff gyroHPFCutoff) error {
	return obj.WriteField(bus, ctrl7HPMOffset, ctrl7HPMMask, uint8(cutoff))
}

// HPFEnabled reports whether the gyroscope digital high-pass filter is in
// the signal path. The filter runs only with high-performance mode on.
func (obj *Ctrl7G) HPFEnabled() bool {
	return obj.Bit(ctrl7HPEnG)
}

func (obj *Ctrl7G) SetHPFEnabled(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl7HPEnG, on)
}

// GyroHighPerfDisabled reports whether the gyroscope high-performance mode
// is switched off.
func (obj *Ctrl7G) GyroHighPerfDisabled() bool {
	return obj.Bit(ctrl7GHMMode)
}

func (obj *Ctrl7G) SetGyroHighPerfDisabled(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl7GHMMode, on)
}

// CTRL8_XL specification
//
// Accelerometer filter configuration: the composite filter chain behind the
// LPF2/HP path, its cutoff and the 6D low-pass selection.

type filterCutoff uint8

// Accelerometer LPF2 and high-pass cutoff select. The constants are
// declared in wire order, their values are the 3-bit patterns the chip
// expects. In slope/high-pass mode HPCF_ODR_DIV_4 selects the slope filter,
// every other value the high-pass filter.
const (
	HPCF_ODR_DIV_4 filterCutoff = iota
	HPCF_ODR_DIV_10
	HPCF_ODR_DIV_20
	HPCF_ODR_DIV_45
	HPCF_ODR_DIV_100
	HPCF_ODR_DIV_200
	HPCF_ODR_DIV_400
	HPCF_ODR_DIV_800
)

// filterCutoffDivisors maps every 3-bit pattern to its data rate divisor,
// indexed by the masked field value so the lookup is total.
var filterCutoffDivisors = [8]float64{4, 10, 20, 45, 100, 200, 400, 800}

// Divisor returns the data rate divisor the setting stands for: the filter
// cutoff frequency is ODR / Divisor().
func (c filterCutoff) Divisor() float64 {
	return filterCutoffDivisors[uint8(c)&ctrl8HPCFMask]
}

const (
	ctrl8LowPassOn6D uint8 = 0
	ctrl8FSMode      uint8 = 1
	ctrl8HPSlopeXLEn uint8 = 2
	ctrl8FastSettle  uint8 = 3
	ctrl8HPRefMode   uint8 = 4
	ctrl8HPCFOffset  uint8 = 5
	ctrl8HPCFMask    uint8 = 0x07
)

type Ctrl8Xl struct {
	hal.Mirror
}

func newCtrl8Xl(initial, busAddr uint8) *Ctrl8Xl {
	return &Ctrl8Xl{hal.NewMirror(initial, busAddr, CTRL8_XL)}
}

// Cutoff returns the configured LPF2/high-pass cutoff select.
func (obj *Ctrl8Xl) Cutoff() filterCutoff {
	return filterCutoff(obj.Field(ctrl8HPCFOffset, ctrl8HPCFMask))
}

func (obj *Ctrl8Xl) SetCutoff(bus hal.Bus, cutoff filterCutoff) error {
	return obj.WriteField(bus, ctrl8HPCFOffset, ctrl8HPCFMask, uint8(cutoff))
}

// HPRefMode reports whether the high-pass filter runs in reference mode.
// Reference mode needs the high-pass path and LPF2 both enabled.
func (obj *Ctrl8Xl) HPRefMode() bool {
	return obj.Bit(ctrl8HPRefMode)
}

func (obj *Ctrl8Xl) SetHPRefMode(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl8HPRefMode, on)
}

// FastSettle reports whether the LPF2 settling phase is shortened after a
// configuration change.
func (obj *Ctrl8Xl) FastSettle() bool {
	return obj.Bit(ctrl8FastSettle)
}

func (obj *Ctrl8Xl) SetFastSettle(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl8FastSettle, on)
}

// HPSlopeEnabled reports whether the accelerometer output takes the
// slope/high-pass path instead of the low-pass path.
func (obj *Ctrl8Xl) HPSlopeEnabled() bool {
	return obj.Bit(ctrl8HPSlopeXLEn)
}

func (obj *Ctrl8Xl) SetHPSlopeEnabled(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl8HPSlopeXLEn, on)
}

// FSModeNew reports whether the new full-scale mode is selected, splitting
// full-scale control between the UI and OIS chains.
func (obj *Ctrl8Xl) FSModeNew() bool {
	return obj.Bit(ctrl8FSMode)
}

func (obj *Ctrl8Xl) SetFSModeNew(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl8FSMode, on)
}

// LowPassOn6D reports whether the 6D orientation function reads LPF2
// filtered data instead of the raw ODR/2 path.
func (obj *Ctrl8Xl) LowPassOn6D() bool {
	return obj.Bit(ctrl8LowPassOn6D)
}

func (obj *Ctrl8Xl) SetLowPassOn6D(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, ctrl8LowPassOn6D, on)
}

// INT1_CTRL specification
//
// Routing of data-ready and FIFO signals to the INT1 pad. Not part of the
// CTRL1..CTRL8 block, kept as its own image.

const (
	int1DrdyXL   uint8 = 0
	int1DrdyG    uint8 = 1
	int1Boot     uint8 = 2
	int1FIFOTh   uint8 = 3
	int1FIFOOvr  uint8 = 4
	int1FIFOFull uint8 = 5
	int1CntBdr   uint8 = 6
)

type Int1Ctrl struct {
	hal.Mirror
}

func newInt1Ctrl(initial, busAddr uint8) *Int1Ctrl {
	return &Int1Ctrl{hal.NewMirror(initial, busAddr, INT1_CTRL)}
}

func (obj *Int1Ctrl) AccelDataReady() bool {
	return obj.Bit(int1DrdyXL)
}

func (obj *Int1Ctrl) SetAccelDataReady(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, int1DrdyXL, on)
}

func (obj *Int1Ctrl) GyroDataReady() bool {
	return obj.Bit(int1DrdyG)
}

func (obj *Int1Ctrl) SetGyroDataReady(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, int1DrdyG, on)
}

func (obj *Int1Ctrl) BootStatus() bool {
	return obj.Bit(int1Boot)
}

func (obj *Int1Ctrl) SetBootStatus(bus hal.Bus, on bool) error {
	return obj.WriteBit(bus, int1Boot, on)
}
