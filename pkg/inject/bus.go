// Package inject provides dependency injected bus structures for mocking
// the hardware in tests.
package inject

import "github.com/mbalug7/go-lsm6dso/pkg/hal"

// Bus is an injected hal.Bus.
type Bus struct {
	hal.Bus
	WriteByteDataFunc func(busAddr uint8, reg hal.RegAddress, value uint8) error
	ReadByteDataFunc  func(busAddr uint8, reg hal.RegAddress) (uint8, error)
	ReadBlockDataFunc func(busAddr uint8, reg hal.RegAddress, length uint8) ([]byte, error)
	CloseFunc         func() error
}

// WriteByteData calls the injected WriteByteDataFunc or the real version.
func (obj *Bus) WriteByteData(busAddr uint8, reg hal.RegAddress, value uint8) error {
	if obj.WriteByteDataFunc == nil {
		return obj.Bus.WriteByteData(busAddr, reg, value)
	}
	return obj.WriteByteDataFunc(busAddr, reg, value)
}

// ReadByteData calls the injected ReadByteDataFunc or the real version.
func (obj *Bus) ReadByteData(busAddr uint8, reg hal.RegAddress) (uint8, error) {
	if obj.ReadByteDataFunc == nil {
		return obj.Bus.ReadByteData(busAddr, reg)
	}
	return obj.ReadByteDataFunc(busAddr, reg)
}

// ReadBlockData calls the injected ReadBlockDataFunc or the real version.
func (obj *Bus) ReadBlockData(busAddr uint8, reg hal.RegAddress, length uint8) ([]byte, error) {
	if obj.ReadBlockDataFunc == nil {
		return obj.Bus.ReadBlockData(busAddr, reg, length)
	}
	return obj.ReadBlockDataFunc(busAddr, reg, length)
}

// Close calls the injected CloseFunc or the real version.
func (obj *Bus) Close() error {
	if obj.CloseFunc == nil {
		return obj.Bus.Close()
	}
	return obj.CloseFunc()
}
