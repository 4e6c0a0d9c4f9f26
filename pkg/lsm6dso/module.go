package lsm6dso

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/mbalug7/go-lsm6dso/pkg/hal"
	"go.uber.org/multierr"
)

// resetTimeout bounds the SW_RESET poll loop. The chip reloads its defaults
// well under this, the datasheet quotes tens of microseconds.
const resetTimeout = 100 * time.Millisecond

// Config describes how to reach and prepare the chip.
type Config struct {
	// Address is the bus address, ADDR_SA0_LOW or ADDR_SA0_HIGH depending
	// on the SA0 strap. Zero selects ADDR_SA0_LOW. SPI buses ignore it, the
	// chip select addresses the device there.
	Address uint8
	// Reset runs a software reset during setup so the chip starts from its
	// default configuration instead of whatever a previous user left in it.
	Reset bool
	// BlockDataUpdate freezes output register pairs between the low and
	// high byte reads of one sample.
	BlockDataUpdate bool
}

// Validate checks that the config describes a reachable device.
func (cfg Config) Validate() error {
	if cfg.Address != 0 && cfg.Address != ADDR_SA0_LOW && cfg.Address != ADDR_SA0_HIGH {
		return fmt.Errorf("bus address 0x%02X is not one of 0x%02X or 0x%02X", cfg.Address, ADDR_SA0_LOW, ADDR_SA0_HIGH)
	}
	return nil
}

func (cfg Config) busAddress() uint8 {
	if cfg.Address == 0 {
		return ADDR_SA0_LOW
	}
	return cfg.Address
}

// Status reports which output groups hold a fresh sample.
type Status struct {
	AccelReady bool
	GyroReady  bool
	TempReady  bool
}

const (
	statusXLDA uint8 = 1 << 0
	statusGDA  uint8 = 1 << 1
	statusTDA  uint8 = 1 << 2
)

// Module drives one LSM6DSO chip. It keeps an image of every control
// register so configuration reads never touch the bus, and commits every
// change as a single whole-byte write.
//
// A Module is not safe for concurrent use.
type Module struct {
	bus       hal.Bus
	busAddr   uint8
	logger    golog.Logger
	registers registersCollection
	int1      *Int1Ctrl
}

// NewModule probes the chip, optionally resets it and reads the whole
// control block back so every register image starts from live hardware
// state.
func NewModule(bus hal.Bus, cfg Config, logger golog.Logger) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	obj := &Module{
		bus:     bus,
		busAddr: cfg.busAddress(),
		logger:  logger,
	}
	id, err := bus.ReadByteData(obj.busAddr, WHO_AM_I)
	if err != nil {
		return nil, fmt.Errorf("failed to probe chip at 0x%02X: %w", obj.busAddr, err)
	}
	if id != chipID {
		return nil, fmt.Errorf("unexpected WHO_AM_I value 0x%02X, want 0x%02X: is this an LSM6DSO?", id, chipID)
	}
	if cfg.Reset {
		if err := obj.reset(); err != nil {
			return nil, err
		}
	}
	if err := obj.syncRegisters(); err != nil {
		return nil, err
	}
	if cfg.BlockDataUpdate {
		if err := obj.ctrl3C().SetBlockDataUpdate(bus, true); err != nil {
			return nil, fmt.Errorf("failed to enable block data update: %w", err)
		}
	}
	obj.logger.Debugf("chip at 0x%02X ready, configuration:%s", obj.busAddr, obj.GetModuleConfiguration())
	return obj, nil
}

// reset triggers SW_RESET and polls until the chip reloads its defaults.
// The bit self-clears on the hardware, so the poll reads the bus instead of
// the image; the trigger write keeps IF_INC set so block reads keep working
// across the reset.
func (obj *Module) reset() error {
	value := uint8(1<<ctrl3SWReset | 1<<ctrl3IFInc)
	if err := obj.bus.WriteByteData(obj.busAddr, CTRL3_C, value); err != nil {
		return fmt.Errorf("failed to trigger software reset: %w", err)
	}
	deadline := time.Now().Add(resetTimeout)
	for {
		v, err := obj.bus.ReadByteData(obj.busAddr, CTRL3_C)
		if err != nil {
			return fmt.Errorf("failed to poll software reset: %w", err)
		}
		if v&(1<<ctrl3SWReset) == 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("failed to reset the chip, timeout ocurred")
		}
		time.Sleep(time.Millisecond)
	}
}

// syncRegisters reads the control block and the interrupt routing register
// and rebuilds every image from the returned hardware values.
func (obj *Module) syncRegisters() error {
	data, err := obj.bus.ReadBlockData(obj.busAddr, CTRL1_XL, controlBlockLen)
	if err != nil {
		return fmt.Errorf("failed to read control block: %w", err)
	}
	if len(data) != controlBlockLen {
		return fmt.Errorf("short control block read, got %d bytes", len(data))
	}
	obj.registers = newRegistersCollection(obj.busAddr, data)
	value, err := obj.bus.ReadByteData(obj.busAddr, INT1_CTRL)
	if err != nil {
		return fmt.Errorf("failed to read interrupt routing register: %w", err)
	}
	obj.int1 = newInt1Ctrl(value, obj.busAddr)
	return nil
}

// Resync refreshes every register image from the chip. Call it when a
// failed write may have left the image and the hardware out of step.
func (obj *Module) Resync() error {
	return obj.syncRegisters()
}

func (obj *Module) ctrl1Xl() *Ctrl1Xl {
	return obj.registers.at(CTRL1_XL).(*Ctrl1Xl)
}

func (obj *Module) ctrl2G() *Ctrl2G {
	return obj.registers.at(CTRL2_G).(*Ctrl2G)
}

func (obj *Module) ctrl3C() *Ctrl3C {
	return obj.registers.at(CTRL3_C).(*Ctrl3C)
}

func (obj *Module) ctrl4C() *Ctrl4C {
	return obj.registers.at(CTRL4_C).(*Ctrl4C)
}

func (obj *Module) ctrl6C() *Ctrl6C {
	return obj.registers.at(CTRL6_C).(*Ctrl6C)
}

func (obj *Module) ctrl7G() *Ctrl7G {
	return obj.registers.at(CTRL7_G).(*Ctrl7G)
}

func (obj *Module) ctrl8Xl() *Ctrl8Xl {
	return obj.registers.at(CTRL8_XL).(*Ctrl8Xl)
}

// Accelerometer configuration.

func (obj *Module) AccelRate() accelDataRate {
	return obj.ctrl1Xl().DataRate()
}

func (obj *Module) SetAccelRate(rate accelDataRate) error {
	return obj.ctrl1Xl().SetDataRate(obj.bus, rate)
}

func (obj *Module) AccelScale() accelFullScale {
	return obj.ctrl1Xl().FullScale()
}

func (obj *Module) SetAccelScale(fs accelFullScale) error {
	return obj.ctrl1Xl().SetFullScale(obj.bus, fs)
}

func (obj *Module) AccelLPF2() bool {
	return obj.ctrl1Xl().LPF2Enabled()
}

func (obj *Module) SetAccelLPF2(on bool) error {
	return obj.ctrl1Xl().SetLPF2Enabled(obj.bus, on)
}

// Gyroscope configuration.

func (obj *Module) GyroRate() gyroDataRate {
	return obj.ctrl2G().DataRate()
}

func (obj *Module) SetGyroRate(rate gyroDataRate) error {
	return obj.ctrl2G().SetDataRate(obj.bus, rate)
}

func (obj *Module) GyroScale() gyroFullScale {
	return obj.ctrl2G().FullScale()
}

func (obj *Module) SetGyroScale(fs gyroFullScale) error {
	return obj.ctrl2G().SetFullScale(obj.bus, fs)
}

func (obj *Module) GyroFS125() bool {
	return obj.ctrl2G().FS125()
}

func (obj *Module) SetGyroFS125(on bool) error {
	return obj.ctrl2G().SetFS125(obj.bus, on)
}

func (obj *Module) GyroLPF1() bool {
	return obj.ctrl4C().GyroLPF1Enabled()
}

func (obj *Module) SetGyroLPF1(on bool) error {
	return obj.ctrl4C().SetGyroLPF1Enabled(obj.bus, on)
}

func (obj *Module) SetGyroLPF1Bandwidth(bw gyroLPF1Bandwidth) error {
	return obj.ctrl6C().SetGyroLPF1Bandwidth(obj.bus, bw)
}

func (obj *Module) GyroHPF() bool {
	return obj.ctrl7G().HPFEnabled()
}

func (obj *Module) SetGyroHPF(on bool, cutoff gyroHPFCutoff) error {
	if err := obj.ctrl7G().SetHPFCutoff(obj.bus, cutoff); err != nil {
		return fmt.Errorf("failed to set gyroscope high-pass cutoff: %w", err)
	}
	return obj.ctrl7G().SetHPFEnabled(obj.bus, on)
}

// Accelerometer filter configuration, CTRL8_XL.

// FilterCutoff returns the configured LPF2/high-pass cutoff select. The
// setting is a divisor of the data rate, see Divisor.
func (obj *Module) FilterCutoff() filterCutoff {
	return obj.ctrl8Xl().Cutoff()
}

func (obj *Module) SetFilterCutoff(cutoff filterCutoff) error {
	return obj.ctrl8Xl().SetCutoff(obj.bus, cutoff)
}

// AccelCutoffFrequency returns the absolute cutoff of the configured
// filter in Hz, derived from the current data rate. Zero when the
// accelerometer is powered down.
func (obj *Module) AccelCutoffFrequency() float64 {
	return obj.AccelRate().Hz() / obj.FilterCutoff().Divisor()
}

func (obj *Module) HPRefMode() bool {
	return obj.ctrl8Xl().HPRefMode()
}

func (obj *Module) SetHPRefMode(on bool) error {
	return obj.ctrl8Xl().SetHPRefMode(obj.bus, on)
}

func (obj *Module) FastSettle() bool {
	return obj.ctrl8Xl().FastSettle()
}

func (obj *Module) SetFastSettle(on bool) error {
	return obj.ctrl8Xl().SetFastSettle(obj.bus, on)
}

func (obj *Module) HPSlopeEnabled() bool {
	return obj.ctrl8Xl().HPSlopeEnabled()
}

func (obj *Module) SetHPSlopeEnabled(on bool) error {
	return obj.ctrl8Xl().SetHPSlopeEnabled(obj.bus, on)
}

func (obj *Module) LowPassOn6D() bool {
	return obj.ctrl8Xl().LowPassOn6D()
}

func (obj *Module) SetLowPassOn6D(on bool) error {
	return obj.ctrl8Xl().SetLowPassOn6D(obj.bus, on)
}

// EnableDataReadyOnINT1 routes the accelerometer and gyroscope data-ready
// signals to the INT1 pad so an interrupt handler can wait on them.
func (obj *Module) EnableDataReadyOnINT1(accel bool, gyro bool) error {
	if err := obj.int1.SetAccelDataReady(obj.bus, accel); err != nil {
		return fmt.Errorf("failed to route accelerometer data ready: %w", err)
	}
	if err := obj.int1.SetGyroDataReady(obj.bus, gyro); err != nil {
		return fmt.Errorf("failed to route gyroscope data ready: %w", err)
	}
	return nil
}

// WriteConfigToChip commits a staged register setup. Only registers whose
// value differs from the live image are written, each as one whole-byte
// transaction, and the new setup is read back and verified before the live
// images move.
func (obj *Module) WriteConfigToChip(stagedRegisters registersCollection) error {
	if stagedRegisters.EqualTo(obj.registers) {
		return fmt.Errorf("new register setup is the same as the setup on the chip, ignoring")
	}
	for i, staged := range stagedRegisters.regs {
		if staged.GetValue() == obj.registers.regs[i].GetValue() {
			continue
		}
		err := obj.bus.WriteByteData(obj.busAddr, staged.GetAddress(), staged.GetValue())
		if err != nil {
			err = fmt.Errorf("failed to write register 0x%02X: %w", staged.GetAddress().ToByte(), err)
			// a half-written setup leaves chip and images out of step,
			// pull the hardware truth back in before surfacing the error
			if syncErr := obj.syncRegisters(); syncErr != nil {
				return multierr.Combine(err, syncErr)
			}
			return err
		}
	}
	if err := obj.syncRegisters(); err != nil {
		return fmt.Errorf("failed to read back new setup: %w", err)
	}
	if !stagedRegisters.EqualTo(obj.registers) {
		return fmt.Errorf("current chip configuration is not the same as staged")
	}
	return nil
}

// sampleToVector converts one little-endian three-axis sample block using
// the given per-LSB weight.
func sampleToVector(data []byte, weight float64) r3.Vector {
	return r3.Vector{
		X: float64(int16(binary.LittleEndian.Uint16(data[0:2]))) * weight,
		Y: float64(int16(binary.LittleEndian.Uint16(data[2:4]))) * weight,
		Z: float64(int16(binary.LittleEndian.Uint16(data[4:6]))) * weight,
	}
}

// ReadAccel returns the latest acceleration sample in g.
func (obj *Module) ReadAccel() (r3.Vector, error) {
	data, err := obj.bus.ReadBlockData(obj.busAddr, OUTX_L_A, 6)
	if err != nil {
		return r3.Vector{}, fmt.Errorf("failed to read accelerometer output: %w", err)
	}
	return sampleToVector(data, obj.AccelScale().Sensitivity()/1000), nil
}

// ReadGyro returns the latest angular rate sample in degrees per second.
func (obj *Module) ReadGyro() (r3.Vector, error) {
	data, err := obj.bus.ReadBlockData(obj.busAddr, OUTX_L_G, 6)
	if err != nil {
		return r3.Vector{}, fmt.Errorf("failed to read gyroscope output: %w", err)
	}
	weight := obj.GyroScale().Sensitivity()
	if obj.GyroFS125() {
		weight = gyroSensitivity125
	}
	return sampleToVector(data, weight/1000), nil
}

// ReadTemperature returns the chip temperature in °C. The sensor counts 256
// LSB per degree with zero at 25 °C.
func (obj *Module) ReadTemperature() (float64, error) {
	data, err := obj.bus.ReadBlockData(obj.busAddr, OUT_TEMP_L, 2)
	if err != nil {
		return 0, fmt.Errorf("failed to read temperature output: %w", err)
	}
	raw := int16(binary.LittleEndian.Uint16(data))
	return 25.0 + float64(raw)/256.0, nil
}

// Status reads which output groups hold a fresh sample.
func (obj *Module) Status() (Status, error) {
	value, err := obj.bus.ReadByteData(obj.busAddr, STATUS_REG)
	if err != nil {
		return Status{}, fmt.Errorf("failed to read status register: %w", err)
	}
	return Status{
		AccelReady: value&statusXLDA != 0,
		GyroReady:  value&statusGDA != 0,
		TempReady:  value&statusTDA != 0,
	}, nil
}

// GetModuleConfiguration renders every register image for logging.
func (obj *Module) GetModuleConfiguration() string {
	var conf string
	for _, reg := range obj.registers.regs {
		conf = conf + fmt.Sprintf("\nREG %v", reg)
	}
	conf = conf + fmt.Sprintf("\nREG %v", obj.int1)
	return conf
}

// Close powers the accelerometer and the gyroscope down. The bus handle
// stays open, it belongs to the caller.
func (obj *Module) Close() error {
	if err := obj.SetAccelRate(XL_ODR_OFF); err != nil {
		return fmt.Errorf("failed to power down accelerometer: %w", err)
	}
	if err := obj.SetGyroRate(G_ODR_OFF); err != nil {
		return fmt.Errorf("failed to power down gyroscope: %w", err)
	}
	return nil
}
