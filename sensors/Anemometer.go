package sensors

import (
	"sync/atomic"

	"github.com/gr-butler/weathermeter/env"
	"github.com/gr-butler/weathermeter/hal"
	logger "github.com/sirupsen/logrus"
)

// Anemometer converts pulse counts from the spinning cups into MPH.
type Anemometer struct {
	counter hal.PulseCounter
	raw     atomic.Uint32
}

// NewAnemometer binds to a pulse counter capability and starts it.
func NewAnemometer(counter hal.PulseCounter) (*Anemometer, error) {
	if counter == nil {
		return nil, ErrInvalidHandle
	}
	if err := counter.Start(); err != nil {
		return nil, err
	}
	logger.Info("Anemometer started")
	return &Anemometer{counter: counter}, nil
}

// Process snapshots the counter and zeroes it, so the next reading only
// covers pulses from this sampling interval. Call it at a steady cadence -
// the MPH conversion is calibrated for env.WindProcessInterval.
func (a *Anemometer) Process() {
	n := a.counter.Read()
	a.counter.Reset()
	a.raw.Store(n)
}

// Count returns the most recent snapshot, unconverted.
func (a *Anemometer) Count() uint32 {
	return a.raw.Load()
}

// SpeedMPH converts the snapshot to miles per hour.
func (a *Anemometer) SpeedMPH() float64 {
	return float64(a.raw.Load()) * env.MphPerPulse
}
