package hal

import (
	"fmt"
	"sync"

	i2c "github.com/d2r2/go-i2c"
	d2rlog "github.com/d2r2/go-logger"
	"github.com/edaniels/golog"
	"go.uber.org/multierr"
)

// I2CBus drives register-addressable devices behind a Linux I2C adapter
// (/dev/i2c-N). One handle is opened per device address on first use and
// kept for the life of the bus; a mutex serializes transactions so the
// handle can be shared by every register image of a device.
type I2CBus struct {
	number  int
	logger  golog.Logger
	mu      sync.Mutex
	devices map[uint8]*i2c.I2C
}

// NewI2CBus opens the adapter with the given bus number, the N in
// /dev/i2c-N.
func NewI2CBus(number int, logger golog.Logger) (*I2CBus, error) {
	// go-i2c logs every transaction at debug level through its own logger,
	// keep that quiet unless someone turns it up explicitly
	if err := d2rlog.ChangePackageLogLevel("i2c", d2rlog.InfoLevel); err != nil {
		return nil, fmt.Errorf("failed to set i2c package log level: %w", err)
	}
	return &I2CBus{
		number:  number,
		logger:  logger,
		devices: map[uint8]*i2c.I2C{},
	}, nil
}

// handle returns the open device handle for busAddr, opening it on first
// use. Callers must hold obj.mu.
func (obj *I2CBus) handle(busAddr uint8) (*i2c.I2C, error) {
	if dev, ok := obj.devices[busAddr]; ok {
		return dev, nil
	}
	dev, err := i2c.NewI2C(busAddr, obj.number)
	if err != nil {
		return nil, fmt.Errorf("failed to open device 0x%02X on I2C bus %d: %w", busAddr, obj.number, err)
	}
	obj.logger.Debugf("opened device 0x%02X on I2C bus %d", busAddr, obj.number)
	obj.devices[busAddr] = dev
	return dev, nil
}

func (obj *I2CBus) WriteByteData(busAddr uint8, reg RegAddress, value uint8) error {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	dev, err := obj.handle(busAddr)
	if err != nil {
		return err
	}
	return dev.WriteRegU8(reg.ToByte(), value)
}

func (obj *I2CBus) ReadByteData(busAddr uint8, reg RegAddress) (uint8, error) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	dev, err := obj.handle(busAddr)
	if err != nil {
		return 0, err
	}
	return dev.ReadRegU8(reg.ToByte())
}

func (obj *I2CBus) ReadBlockData(busAddr uint8, reg RegAddress, length uint8) ([]byte, error) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	dev, err := obj.handle(busAddr)
	if err != nil {
		return nil, err
	}
	data, got, err := dev.ReadRegBytes(reg.ToByte(), int(length))
	if err != nil {
		return nil, err
	}
	if got != int(length) {
		return nil, fmt.Errorf("failed to read register block 0x%02X: want %d bytes, got %d", reg.ToByte(), length, got)
	}
	return data, nil
}

// Close releases every device handle the bus has opened.
func (obj *I2CBus) Close() error {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	var err error
	for addr, dev := range obj.devices {
		err = multierr.Combine(err, dev.Close())
		delete(obj.devices, addr)
	}
	return err
}
