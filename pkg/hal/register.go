package hal

// RegAddress is the sub-address of a register inside a device's register
// map.
type RegAddress uint8

func (a RegAddress) ToByte() byte {
	return byte(a)
}

// Register is the in-memory image of one byte-wide device register.
type Register interface {
	GetAddress() RegAddress
	GetValue() uint8
	SetValue(value uint8)
}
