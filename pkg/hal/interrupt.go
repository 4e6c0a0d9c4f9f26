package hal

import (
	"fmt"
	"sync"
	"time"

	"github.com/mazen160/go-random"
	"github.com/warthog618/gpiod"
)

// OnDataReadyCb is invoked from the GPIO event goroutine on every rising
// edge of the interrupt line.
type OnDataReadyCb func()

// InterruptHandler watches one of the device interrupt pins (INT1/INT2)
// through the GPIO character device and lets callers block until the line
// signals that new data is ready.
type InterruptHandler struct {
	intLine        *gpiod.Line
	muReadyWgMap   sync.Mutex            // map protection mutex
	readyWaitGroup map[string]chan error // holds channels that wait for the rising interrupt edge
	onReadyCb      OnDataReadyCb
}

// NewInterruptHandler requests intPin on gpioChip and arms it for rising
// edge events. The pin must be wired to an interrupt output of the device
// configured as push-pull, active high.
func NewInterruptHandler(intPin int, gpioChip string) (*InterruptHandler, error) {
	hnd := &InterruptHandler{
		readyWaitGroup: make(map[string]chan error),
	}
	c, err := gpiod.NewChip(gpioChip, gpiod.WithConsumer("golsm6dso"))
	if err != nil {
		return nil, fmt.Errorf("failed to create GPIO chip: %w", err)
	}

	hnd.intLine, err = c.RequestLine(intPin, gpiod.WithEventHandler(hnd.onIntPinRiseEvent), gpiod.WithRisingEdge)
	if err != nil {
		return nil, fmt.Errorf("failed to request interrupt GPIO line: %w", err)
	}
	return hnd, nil
}

func (obj *InterruptHandler) Close() error {
	err := obj.intLine.Close()
	if err != nil {
		return fmt.Errorf("failed to close interrupt line: %w", err)
	}
	return nil
}

// RegisterOnDataReadyCb installs the callback invoked on every rising edge.
func (obj *InterruptHandler) RegisterOnDataReadyCb(cb OnDataReadyCb) error {
	if obj.onReadyCb != nil {
		return fmt.Errorf("on data ready callback already registered")
	}
	obj.onReadyCb = cb
	return nil
}

func (obj *InterruptHandler) onIntPinRiseEvent(evt gpiod.LineEvent) {
	// the device raises the line when a fresh sample lands in the output
	// registers; wake everything that waits for it before running the callback
	obj.readyNotifyReceivers()
	if obj.onReadyCb != nil {
		obj.onReadyCb()
	}
}

func (obj *InterruptHandler) readyNotifyReceivers() {
	obj.muReadyWgMap.Lock()
	defer obj.muReadyWgMap.Unlock()
	for id, ch := range obj.readyWaitGroup {
		ch <- nil
		close(ch)
		delete(obj.readyWaitGroup, id)
	}
}

// WaitDataReady blocks until the interrupt line rises or timeout expires. A
// line that is already high counts as ready immediately: the device keeps
// data ready asserted until the output registers are read out.
func (obj *InterruptHandler) WaitDataReady(timeout time.Duration) error {
	val, err := obj.intLine.Value()
	if err != nil {
		return fmt.Errorf("failed to check interrupt pin input state: %w", err)
	}
	if val == 1 {
		return nil
	}

	// buffered, the notifier must never block on a waiter that already
	// timed out
	ch := make(chan error, 1)
	id, err := random.String(16)
	if err != nil {
		return fmt.Errorf("failed to generate random id: %w", err)
	}
	obj.muReadyWgMap.Lock()
	obj.readyWaitGroup[id] = ch
	obj.muReadyWgMap.Unlock()
	select {
	case <-time.After(timeout):
		// drop the channel so a later edge does not block on it
		obj.muReadyWgMap.Lock()
		delete(obj.readyWaitGroup, id)
		obj.muReadyWgMap.Unlock()
		return fmt.Errorf("failed to wait for data ready, timeout ocurred")
	case <-ch:
		return nil
	}
}
