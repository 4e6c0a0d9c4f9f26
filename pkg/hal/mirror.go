package hal

import "fmt"

// SetBits returns value with the field selected by mask at offset replaced
// by encoded. Bits outside the field are passed through untouched; encoded
// is clipped to the mask so an oversized input can never leak into
// neighboring fields.
func SetBits(value, offset, mask, encoded uint8) uint8 {
	return (value &^ (mask << offset)) | ((encoded & mask) << offset)
}

// SetBit returns value with the single bit at offset forced to on.
func SetBit(value, offset uint8, on bool) uint8 {
	if on {
		return SetBits(value, offset, 0x01, 1)
	}
	return SetBits(value, offset, 0x01, 0)
}

// Mirror is the last value of one byte-wide hardware register known to be
// on the chip, together with the addressing needed to change it. Reads
// decode the cached byte without touching the bus; writes rebuild the whole
// byte around the changed field and commit it in a single bus transaction.
//
// A Mirror is not safe for concurrent use. Share a device between
// goroutines above this layer, or keep it on one goroutine.
type Mirror struct {
	busAddr uint8
	regAddr RegAddress
	value   uint8
}

// NewMirror builds the image of the register at regAddr on the device at
// busAddr. initial must be the value the register currently holds on the
// hardware, normally taken from a read-back during device setup.
func NewMirror(initial, busAddr uint8, regAddr RegAddress) Mirror {
	return Mirror{busAddr: busAddr, regAddr: regAddr, value: initial}
}

func (obj *Mirror) GetAddress() RegAddress {
	return obj.regAddr
}

func (obj *Mirror) GetValue() uint8 {
	return obj.value
}

// SetValue replaces the cached byte without touching the bus. It is meant
// for refreshing the image from a hardware read-back, not for staging
// writes.
func (obj *Mirror) SetValue(value uint8) {
	obj.value = value
}

// BusAddress returns the bus address of the device this register belongs
// to.
func (obj *Mirror) BusAddress() uint8 {
	return obj.busAddr
}

// Bit reports whether the single-bit field at offset is set in the cached
// byte.
func (obj *Mirror) Bit(offset uint8) bool {
	return obj.value&(1<<offset) != 0
}

// Field extracts the field selected by mask at offset from the cached byte.
func (obj *Mirror) Field(offset, mask uint8) uint8 {
	return (obj.value >> offset) & mask
}

// WriteBit updates the single-bit field at offset through bus.
func (obj *Mirror) WriteBit(bus Bus, offset uint8, on bool) error {
	if on {
		return obj.WriteField(bus, offset, 0x01, 1)
	}
	return obj.WriteField(bus, offset, 0x01, 0)
}

// WriteField updates one field while preserving every other bit of the
// register. The staged byte goes out in one whole-byte transaction; the
// cache advances only after the bus reports success, so on error the image
// still holds the last byte known to be on the hardware and the bus error
// is returned to the caller as is.
func (obj *Mirror) WriteField(bus Bus, offset, mask, encoded uint8) error {
	staged := SetBits(obj.value, offset, mask, encoded)
	if err := bus.WriteByteData(obj.busAddr, obj.regAddr, staged); err != nil {
		return err
	}
	obj.value = staged
	return nil
}

// String renders the image as sub-address and binary content.
func (obj Mirror) String() string {
	return fmt.Sprintf("0x%02X=0b%08b", uint8(obj.regAddr), obj.value)
}
