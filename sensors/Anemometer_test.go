package sensors

import (
	"testing"

	"github.com/gr-butler/weathermeter/hal"
	"github.com/stretchr/testify/require"
)

func Test_Anemometer_NilHandle(t *testing.T) {
	_, err := NewAnemometer(nil)
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func Test_Anemometer_StartsCounter(t *testing.T) {
	ctr := &hal.MemCounter{}
	_, err := NewAnemometer(ctr)
	require.NoError(t, err)
	require.True(t, ctr.Started())
}

func Test_Anemometer_SpeedConversion(t *testing.T) {
	ctr := &hal.MemCounter{}
	a, err := NewAnemometer(ctr)
	require.NoError(t, err)

	ctr.Pulse(10)
	a.Process()

	require.Equal(t, uint32(10), a.Count())
	require.InDelta(t, 14.92, a.SpeedMPH(), 1e-9)

	// linear: double the pulses, double the speed
	ctr.Pulse(20)
	a.Process()
	require.InDelta(t, 29.84, a.SpeedMPH(), 1e-9)
}

func Test_Anemometer_ProcessResetsCounter(t *testing.T) {
	ctr := &hal.MemCounter{}
	a, err := NewAnemometer(ctr)
	require.NoError(t, err)

	ctr.Pulse(7)
	a.Process()
	require.Equal(t, uint32(7), a.Count())

	// no pulses since the last snapshot
	a.Process()
	require.Equal(t, uint32(0), a.Count())
	require.Equal(t, 0.0, a.SpeedMPH())
}
