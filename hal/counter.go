package hal

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	logger "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpioutil"
)

// EdgeCounter counts falling edges on a GPIO pin. It is the software
// equivalent of the hardware timer the meters would normally clock.
type EdgeCounter struct {
	pin    gpio.PinIO
	mu     sync.Mutex
	count  uint32
	halted atomic.Bool
}

// NewEdgeCounter wraps an already configured pin. The pin must be set up
// for falling edge detection before Start is called.
func NewEdgeCounter(pin gpio.PinIO) (*EdgeCounter, error) {
	if pin == nil {
		return nil, fmt.Errorf("hal: no pin for edge counter")
	}
	return &EdgeCounter{pin: pin}, nil
}

// OpenPulsePin looks up a pin by name and configures it for pulse counting.
func OpenPulsePin(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("hal: failed to find pin %v", name)
	}
	logger.Infof("%s: %s", p, p.Function())
	if err := p.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, err
	}
	return p, nil
}

// OpenDebouncedPulsePin is OpenPulsePin behind a glitch filter, for reed
// switches that bounce (the tipping bucket).
func OpenDebouncedPulsePin(name string, denoise, debounce time.Duration) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("hal: failed to find pin %v", name)
	}
	logger.Infof("%s: %s", p, p.Function())
	return gpioutil.Debounce(p, denoise, debounce, gpio.FallingEdge)
}

func (c *EdgeCounter) Start() error {
	go c.watch()
	return nil
}

func (c *EdgeCounter) watch() {
	for {
		if !c.pin.WaitForEdge(-1) {
			if c.halted.Load() {
				return
			}
			continue
		}
		c.mu.Lock()
		c.count++
		c.mu.Unlock()
	}
}

func (c *EdgeCounter) Read() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func (c *EdgeCounter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
}

// Halt stops the watch goroutine after the next edge or timeout.
func (c *EdgeCounter) Halt() error {
	c.halted.Store(true)
	return c.pin.Halt()
}
