package hal

// Bus moves single bytes and byte blocks between the host and the registers
// of a device sitting on a serial control bus. Every register access
// transfers whole bytes; implementations serialize transactions internally
// so one handle can back every register image of a device.
type Bus interface {
	// WriteByteData replaces the full content of the register at reg on the
	// device at busAddr with value, in one bus transaction.
	WriteByteData(busAddr uint8, reg RegAddress, value uint8) error
	// ReadByteData returns the current content of the register at reg.
	ReadByteData(busAddr uint8, reg RegAddress) (uint8, error)
	// ReadBlockData reads length consecutive registers starting at reg,
	// relying on the device auto-incrementing the sub-address.
	ReadBlockData(busAddr uint8, reg RegAddress, length uint8) ([]byte, error)
	Close() error
}
