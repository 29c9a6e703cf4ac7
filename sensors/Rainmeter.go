package sensors

import (
	"sync/atomic"
	"time"

	"github.com/gr-butler/weathermeter/env"
	"github.com/gr-butler/weathermeter/hal"
	logger "github.com/sirupsen/logrus"
)

// Rainmeter converts tipping bucket pulse counts into a rainfall rate.
type Rainmeter struct {
	counter hal.PulseCounter
	raw     atomic.Uint32
}

// NewRainmeter binds to a pulse counter capability and starts it.
func NewRainmeter(counter hal.PulseCounter) (*Rainmeter, error) {
	if counter == nil {
		return nil, ErrInvalidHandle
	}
	if err := counter.Start(); err != nil {
		return nil, err
	}
	logger.Info("Rain meter started")
	return &Rainmeter{counter: counter}, nil
}

// Process snapshots the counter and zeroes it. Call it once a minute;
// RatePerHour bakes that cadence into its scale-up.
func (r *Rainmeter) Process() {
	n := r.counter.Read()
	r.counter.Reset()
	r.raw.Store(n)
}

// Count returns the most recent snapshot, unconverted.
func (r *Rainmeter) Count() uint32 {
	return r.raw.Load()
}

// RatePerHour converts the snapshot to inches per hour. The x60 assumes
// Process runs once a minute; any other cadence silently mis-scales the
// rate, which is why RateOver exists.
func (r *Rainmeter) RatePerHour() float64 {
	return float64(r.raw.Load()) * env.InchPerTip * 60
}

// RateOver converts the snapshot to inches per hour given the actual
// interval Process is being called at.
func (r *Rainmeter) RateOver(interval time.Duration) float64 {
	if interval <= 0 {
		return 0
	}
	return float64(r.raw.Load()) * env.InchPerTip * (float64(time.Hour) / float64(interval))
}
