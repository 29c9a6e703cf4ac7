package sensors

import (
	"sync/atomic"

	"github.com/gr-butler/weathermeter/env"
	"github.com/gr-butler/weathermeter/hal"
	logger "github.com/sirupsen/logrus"
)

// WindVane derives a compass direction from the vane's voltage divider.
// The ADC keeps the sample buffer refreshed on its own; Process averages
// whatever is in the buffer and Direction matches the average against the
// calibration table.
type WindVane struct {
	adc     hal.ADC
	samples []uint32
	table   [16]uint32
	average atomic.Uint32
}

// NewWindVane binds the vane to an ADC capability and starts continuous
// sampling. The calibration table is installation specific - pass
// env.VaneCalibration unless you have measured your own.
func NewWindVane(adc hal.ADC, calibration [16]uint32) (*WindVane, error) {
	if adc == nil {
		return nil, ErrInvalidHandle
	}
	v := &WindVane{
		adc:     adc,
		samples: make([]uint32, env.VaneBufferSize),
		table:   calibration,
	}
	if err := adc.StartContinuous(v.samples); err != nil {
		return nil, err
	}
	logger.Info("Wind vane started")
	return v, nil
}

// Process recomputes the running average of the sample buffer. Call it once
// per buffer-full event. It allocates nothing and never blocks, so it is
// safe from a tight tick or interrupt style callback.
func (v *WindVane) Process() {
	var sum uint64
	for _, s := range v.samples {
		sum += uint64(s)
	}
	v.average.Store(uint32(sum / uint64(len(v.samples))))
}

// Average returns the raw running average of the sample buffer.
func (v *WindVane) Average() uint32 {
	return v.average.Load()
}

// Direction scans the calibration table in compass order and returns the
// first entry within env.VaneCodeBand of the running average. Lowest index
// wins if bands overlap. DirectionUnknown means no entry matched.
func (v *WindVane) Direction() Direction {
	avg := int64(v.average.Load())
	for i, mid := range v.table {
		diff := avg - int64(mid)
		if diff >= -env.VaneCodeBand && diff <= env.VaneCodeBand {
			return Direction(i)
		}
	}
	return DirectionUnknown
}
