package led

import (
	"sync"
	"time"

	"github.com/gr-butler/weathermeter/env"
	logger "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

type LED struct {
	Name string
	mu   sync.Mutex
	on   bool
	pin  gpio.PinIO
}

func NewLED(name string, gpioPin string) *LED {
	logger.Infof("Creating LED [%v] on pin [%v]", name, gpioPin)
	l := &LED{Name: name}
	l.pin = gpioreg.ByName(gpioPin)
	if l.pin == nil {
		// a missing status LED is not worth failing startup for
		logger.Errorf("Failed to find %v pin", gpioPin)
		return l
	}
	_ = l.pin.Out(gpio.Low)
	return l
}

func (l *LED) On() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	if l.pin != nil {
		_ = l.pin.Out(gpio.High)
	}
}

func (l *LED) Off() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	if l.pin != nil {
		_ = l.pin.Out(gpio.Low)
	}
}

// Flash pulses the LED once. A flash already in progress makes this a
// no-op rather than queueing flashes behind the mutex.
func (l *LED) Flash() {
	if l.pin == nil {
		return
	}
	if !l.mu.TryLock() {
		return
	}
	defer l.mu.Unlock()
	if l.on {
		_ = l.pin.Out(gpio.Low)
		time.Sleep(env.LEDFlashDuration)
		_ = l.pin.Out(gpio.High)
		return
	}
	_ = l.pin.Out(gpio.High)
	time.Sleep(env.LEDFlashDuration)
	_ = l.pin.Out(gpio.Low)
}

func (l *LED) IsOn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
