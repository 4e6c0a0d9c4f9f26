package lsm6dso

import "github.com/mbalug7/go-lsm6dso/pkg/hal"

// ConfigBuilder object that is used to stage a new chip setup and commit it
// in one go. Setters never touch the bus, they mutate a private copy of the
// register images; WriteConfig sends only the registers that changed.
type ConfigBuilder struct {
	chip            *Module
	stagedRegisters registersCollection
}

// NewConfigBuilder constructs ConfigBuilder
func NewConfigBuilder(chip *Module) *ConfigBuilder {
	return &ConfigBuilder{
		chip:            chip,
		stagedRegisters: chip.registers.Copy(), // copy current values
	}
}

func (obj *ConfigBuilder) stageField(addr hal.RegAddress, offset, mask, encoded uint8) {
	reg := obj.stagedRegisters.at(addr)
	reg.SetValue(hal.SetBits(reg.GetValue(), offset, mask, encoded))
}

func (obj *ConfigBuilder) stageBit(addr hal.RegAddress, offset uint8, on bool) {
	reg := obj.stagedRegisters.at(addr)
	reg.SetValue(hal.SetBit(reg.GetValue(), offset, on))
}

// CTRL1_XL params

// AccelRate set accelerometer output data rate
func (obj *ConfigBuilder) AccelRate(rate accelDataRate) *ConfigBuilder {
	obj.stageField(CTRL1_XL, ctrl1ODROffset, ctrl1ODRMask, uint8(rate))
	return obj
}

// AccelScale set accelerometer full scale
func (obj *ConfigBuilder) AccelScale(fs accelFullScale) *ConfigBuilder {
	obj.stageField(CTRL1_XL, ctrl1FSOffset, ctrl1FSMask, uint8(fs))
	return obj
}

// AccelLPF2 route the accelerometer output through the LPF2 stage
func (obj *ConfigBuilder) AccelLPF2(on bool) *ConfigBuilder {
	obj.stageBit(CTRL1_XL, ctrl1LPF2XLEn, on)
	return obj
}

// CTRL2_G params

// GyroRate set gyroscope output data rate
func (obj *ConfigBuilder) GyroRate(rate gyroDataRate) *ConfigBuilder {
	obj.stageField(CTRL2_G, ctrl2ODROffset, ctrl2ODRMask, uint8(rate))
	return obj
}

// GyroScale set gyroscope full scale
func (obj *ConfigBuilder) GyroScale(fs gyroFullScale) *ConfigBuilder {
	obj.stageField(CTRL2_G, ctrl2FSOffset, ctrl2FSMask, uint8(fs))
	return obj
}

// GyroFS125 select the dedicated 125 dps full scale
func (obj *ConfigBuilder) GyroFS125(on bool) *ConfigBuilder {
	obj.stageBit(CTRL2_G, ctrl2FS125, on)
	return obj
}

// CTRL3_C params

// BlockDataUpdate freeze output register pairs between low and high byte reads
func (obj *ConfigBuilder) BlockDataUpdate(on bool) *ConfigBuilder {
	obj.stageBit(CTRL3_C, ctrl3BDU, on)
	return obj
}

// InterruptActiveLow set the interrupt pads active low
func (obj *ConfigBuilder) InterruptActiveLow(on bool) *ConfigBuilder {
	obj.stageBit(CTRL3_C, ctrl3HLActive, on)
	return obj
}

// InterruptOpenDrain drive the interrupt pads open drain
func (obj *ConfigBuilder) InterruptOpenDrain(on bool) *ConfigBuilder {
	obj.stageBit(CTRL3_C, ctrl3PPOD, on)
	return obj
}

// SPI3Wire switch the SPI interface to 3-wire mode
func (obj *ConfigBuilder) SPI3Wire(on bool) *ConfigBuilder {
	obj.stageBit(CTRL3_C, ctrl3SIM, on)
	return obj
}

// AutoIncrement advance the sub-address during multi-byte transfers
func (obj *ConfigBuilder) AutoIncrement(on bool) *ConfigBuilder {
	obj.stageBit(CTRL3_C, ctrl3IFInc, on)
	return obj
}

// CTRL4_C params

// GyroSleep put the gyroscope in sleep mode
func (obj *ConfigBuilder) GyroSleep(on bool) *ConfigBuilder {
	obj.stageBit(CTRL4_C, ctrl4SleepG, on)
	return obj
}

// INT2OnINT1 reroute INT2 signals to the INT1 pad
func (obj *ConfigBuilder) INT2OnINT1(on bool) *ConfigBuilder {
	obj.stageBit(CTRL4_C, ctrl4Int2OnInt1, on)
	return obj
}

// DataReadyMask hold data-ready back until the filters settle
func (obj *ConfigBuilder) DataReadyMask(on bool) *ConfigBuilder {
	obj.stageBit(CTRL4_C, ctrl4DrdyMask, on)
	return obj
}

// I2CDisable shut the I2C interface off, SPI only
func (obj *ConfigBuilder) I2CDisable(on bool) *ConfigBuilder {
	obj.stageBit(CTRL4_C, ctrl4I2CDisable, on)
	return obj
}

// GyroLPF1 put the gyroscope LPF1 stage in the signal path
func (obj *ConfigBuilder) GyroLPF1(on bool) *ConfigBuilder {
	obj.stageBit(CTRL4_C, ctrl4LPF1SelG, on)
	return obj
}

// CTRL5_C params

// AccelSelfTest set the accelerometer self-test mode
func (obj *ConfigBuilder) AccelSelfTest(mode accelSelfTest) *ConfigBuilder {
	obj.stageField(CTRL5_C, ctrl5STXLOffset, ctrl5STXLMask, uint8(mode))
	return obj
}

// GyroSelfTest set the gyroscope self-test mode
func (obj *ConfigBuilder) GyroSelfTest(mode gyroSelfTest) *ConfigBuilder {
	obj.stageField(CTRL5_C, ctrl5STGOffset, ctrl5STGMask, uint8(mode))
	return obj
}

// Rounding select which output register groups wrap around during burst reads
func (obj *ConfigBuilder) Rounding(mode roundingMode) *ConfigBuilder {
	obj.stageField(CTRL5_C, ctrl5RoundingOffset, ctrl5RoundingMask, uint8(mode))
	return obj
}

// AccelUltraLowPower select the accelerometer ultra-low-power mode
func (obj *ConfigBuilder) AccelUltraLowPower(on bool) *ConfigBuilder {
	obj.stageBit(CTRL5_C, ctrl5XLULPEn, on)
	return obj
}

// CTRL6_C params

// GyroLPF1Bandwidth set the gyroscope LPF1 bandwidth
func (obj *ConfigBuilder) GyroLPF1Bandwidth(bw gyroLPF1Bandwidth) *ConfigBuilder {
	obj.stageField(CTRL6_C, ctrl6FTypeOffset, ctrl6FTypeMask, uint8(bw))
	return obj
}

// AccelOffsetWeightHigh select the 2^-6 g/LSB user offset weight
func (obj *ConfigBuilder) AccelOffsetWeightHigh(on bool) *ConfigBuilder {
	obj.stageBit(CTRL6_C, ctrl6USROffW, on)
	return obj
}

// AccelHighPerfDisabled switch the accelerometer high-performance mode off
func (obj *ConfigBuilder) AccelHighPerfDisabled(on bool) *ConfigBuilder {
	obj.stageBit(CTRL6_C, ctrl6XLHMMode, on)
	return obj
}

// CTRL7_G params

// GyroHighPerfDisabled switch the gyroscope high-performance mode off
func (obj *ConfigBuilder) GyroHighPerfDisabled(on bool) *ConfigBuilder {
	obj.stageBit(CTRL7_G, ctrl7GHMMode, on)
	return obj
}

// GyroHPF put the gyroscope digital high-pass filter in the signal path
func (obj *ConfigBuilder) GyroHPF(on bool) *ConfigBuilder {
	obj.stageBit(CTRL7_G, ctrl7HPEnG, on)
	return obj
}

// GyroHPFCutoff set the gyroscope high-pass cutoff
func (obj *ConfigBuilder) GyroHPFCutoff(cutoff gyroHPFCutoff) *ConfigBuilder {
	obj.stageField(CTRL7_G, ctrl7HPMOffset, ctrl7HPMMask, uint8(cutoff))
	return obj
}

// AccelOffsetOnOutput apply the user accelerometer offset to the outputs
func (obj *ConfigBuilder) AccelOffsetOnOutput(on bool) *ConfigBuilder {
	obj.stageBit(CTRL7_G, ctrl7USROffOnOut, on)
	return obj
}

// CTRL8_XL params

// FilterCutoff set the accelerometer LPF2/high-pass cutoff select
func (obj *ConfigBuilder) FilterCutoff(cutoff filterCutoff) *ConfigBuilder {
	obj.stageField(CTRL8_XL, ctrl8HPCFOffset, ctrl8HPCFMask, uint8(cutoff))
	return obj
}

// HPRefMode run the accelerometer high-pass filter in reference mode
func (obj *ConfigBuilder) HPRefMode(on bool) *ConfigBuilder {
	obj.stageBit(CTRL8_XL, ctrl8HPRefMode, on)
	return obj
}

// FastSettle shorten the LPF2 settling phase after configuration changes
func (obj *ConfigBuilder) FastSettle(on bool) *ConfigBuilder {
	obj.stageBit(CTRL8_XL, ctrl8FastSettle, on)
	return obj
}

// HPSlope send the accelerometer output through the slope/high-pass path
func (obj *ConfigBuilder) HPSlope(on bool) *ConfigBuilder {
	obj.stageBit(CTRL8_XL, ctrl8HPSlopeXLEn, on)
	return obj
}

// FSModeNew select the new full-scale mode
func (obj *ConfigBuilder) FSModeNew(on bool) *ConfigBuilder {
	obj.stageBit(CTRL8_XL, ctrl8FSMode, on)
	return obj
}

// LowPassOn6D feed the 6D function with LPF2 filtered data
func (obj *ConfigBuilder) LowPassOn6D(on bool) *ConfigBuilder {
	obj.stageBit(CTRL8_XL, ctrl8LowPassOn6D, on)
	return obj
}

// WriteConfig writes the staged setup to the chip
func (obj *ConfigBuilder) WriteConfig() error {
	return obj.chip.WriteConfigToChip(obj.stagedRegisters)
}
