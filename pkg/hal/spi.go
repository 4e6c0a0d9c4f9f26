package hal

import (
	"fmt"
	"sync"

	"github.com/edaniels/golog"
	"go.uber.org/multierr"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// spiReadFlag is OR-ed into the sub-address byte of read transfers. The
// device treats the MSB of the first clocked byte as the read/write select.
const spiReadFlag = 0x80

// SPIBus drives a register-addressable device wired to a 4-wire SPI port.
// The chip select addresses the device, so the bus address argument of the
// transaction methods is ignored here; it exists for the shared Bus
// contract with I2C.
type SPIBus struct {
	name   string
	logger golog.Logger
	mu     sync.Mutex
	port   spi.PortCloser
	conn   spi.Conn
}

// NewSPIBus opens portName (e.g. "SPI0.0" or "/dev/spidev0.0") and
// configures it for the given clock and SPI mode with 8-bit words.
func NewSPIBus(portName string, maxSpeed physic.Frequency, mode spi.Mode, logger golog.Logger) (*SPIBus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize host drivers: %w", err)
	}
	port, err := spireg.Open(portName)
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI port %s: %w", portName, err)
	}
	conn, err := port.Connect(maxSpeed, mode, 8)
	if err != nil {
		err = fmt.Errorf("failed to configure SPI port %s: %w", portName, err)
		return nil, multierr.Combine(err, port.Close())
	}
	logger.Debugf("opened SPI port %s at %s", portName, maxSpeed)
	return &SPIBus{name: portName, logger: logger, port: port, conn: conn}, nil
}

func (obj *SPIBus) WriteByteData(_ uint8, reg RegAddress, value uint8) error {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	tx := []byte{reg.ToByte(), value}
	rx := make([]byte, len(tx))
	if err := obj.conn.Tx(tx, rx); err != nil {
		return fmt.Errorf("failed to write register 0x%02X over SPI: %w", reg.ToByte(), err)
	}
	return nil
}

func (obj *SPIBus) ReadByteData(_ uint8, reg RegAddress) (uint8, error) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	tx := []byte{reg.ToByte() | spiReadFlag, 0x00}
	rx := make([]byte, len(tx))
	if err := obj.conn.Tx(tx, rx); err != nil {
		return 0, fmt.Errorf("failed to read register 0x%02X over SPI: %w", reg.ToByte(), err)
	}
	return rx[1], nil
}

func (obj *SPIBus) ReadBlockData(_ uint8, reg RegAddress, length uint8) ([]byte, error) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	tx := make([]byte, int(length)+1)
	tx[0] = reg.ToByte() | spiReadFlag
	rx := make([]byte, len(tx))
	if err := obj.conn.Tx(tx, rx); err != nil {
		return nil, fmt.Errorf("failed to read register block 0x%02X over SPI: %w", reg.ToByte(), err)
	}
	return rx[1:], nil
}

func (obj *SPIBus) Close() error {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return obj.port.Close()
}
