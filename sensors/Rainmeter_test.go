package sensors

import (
	"testing"
	"time"

	"github.com/gr-butler/weathermeter/hal"
	"github.com/stretchr/testify/require"
)

func Test_Rainmeter_NilHandle(t *testing.T) {
	_, err := NewRainmeter(nil)
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func Test_Rainmeter_RateConversion(t *testing.T) {
	ctr := &hal.MemCounter{}
	r, err := NewRainmeter(ctr)
	require.NoError(t, err)

	ctr.Pulse(5)
	r.Process()

	require.Equal(t, uint32(5), r.Count())
	require.InDelta(t, 3.3, r.RatePerHour(), 1e-9)
}

func Test_Rainmeter_ProcessResetsCounter(t *testing.T) {
	ctr := &hal.MemCounter{}
	r, err := NewRainmeter(ctr)
	require.NoError(t, err)

	ctr.Pulse(3)
	r.Process()
	require.Equal(t, uint32(3), r.Count())

	r.Process()
	require.Equal(t, uint32(0), r.Count())
	require.Equal(t, 0.0, r.RatePerHour())
}

func Test_Rainmeter_RateOver(t *testing.T) {
	ctr := &hal.MemCounter{}
	r, err := NewRainmeter(ctr)
	require.NoError(t, err)

	ctr.Pulse(5)
	r.Process()

	// at the reference one minute cadence both formulas agree
	require.InDelta(t, r.RatePerHour(), r.RateOver(time.Minute), 1e-9)
	// half the interval, double the rate
	require.InDelta(t, 6.6, r.RateOver(30*time.Second), 1e-9)
	require.Equal(t, 0.0, r.RateOver(0))
}
