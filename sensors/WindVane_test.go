package sensors

import (
	"math"
	"testing"

	"github.com/gr-butler/weathermeter/env"
	"github.com/gr-butler/weathermeter/hal"
	"github.com/stretchr/testify/require"
)

func newTestVane(t *testing.T) (*WindVane, *hal.MemADC) {
	t.Helper()
	adc := &hal.MemADC{}
	v, err := NewWindVane(adc, env.VaneCalibration)
	require.NoError(t, err)
	return v, adc
}

func Test_WindVane_NilHandle(t *testing.T) {
	_, err := NewWindVane(nil, env.VaneCalibration)
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func Test_WindVane_AverageTruncates(t *testing.T) {
	v, adc := newTestVane(t)

	samples := make([]uint32, env.VaneBufferSize)
	sum := uint64(0)
	for i := range samples {
		samples[i] = uint32(i)
		sum += uint64(i)
	}
	adc.Write(samples...)

	v.Process()
	// 0..63 sums to 2016, 2016/64 = 31.5, integer truncation
	require.Equal(t, uint32(sum/env.VaneBufferSize), v.Average())
	require.Equal(t, uint32(31), v.Average())
}

func Test_WindVane_ExactMidpoints(t *testing.T) {
	v, adc := newTestVane(t)

	for i, mid := range env.VaneCalibration {
		adc.Fill(mid)
		v.Process()
		require.Equal(t, Direction(i), v.Direction(), "calibration entry %d", i)
	}
}

func Test_WindVane_BetweenBands(t *testing.T) {
	v, adc := newTestVane(t)

	// 2100 sits between S (2042) and NNE (2476), outside both bands
	for _, avg := range []uint32{500, 2100, 4000} {
		adc.Fill(avg)
		v.Process()
		require.Equal(t, DirectionUnknown, v.Direction(), "average %d", avg)
	}
}

func Test_WindVane_EdgeOfBand(t *testing.T) {
	v, adc := newTestVane(t)

	adc.Fill(env.VaneCalibration[N] + env.VaneCodeBand)
	v.Process()
	require.Equal(t, N, v.Direction())

	adc.Fill(env.VaneCalibration[N] + env.VaneCodeBand + 1)
	v.Process()
	require.Equal(t, DirectionUnknown, v.Direction())
}

func Test_WindVane_NorthEndToEnd(t *testing.T) {
	v, adc := newTestVane(t)

	adc.Fill(3541)
	v.Process()

	require.Equal(t, uint32(3541), v.Average())
	require.Equal(t, N, v.Direction())
	require.Equal(t, "N", v.Direction().String())
}

func Test_Direction_Strings(t *testing.T) {
	want := []string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
	for d := N; d < DirectionUnknown; d++ {
		s := d.String()
		require.Equal(t, want[d], s)
		require.NotEmpty(t, s)
		require.LessOrEqual(t, len(s), 3)
	}

	require.Equal(t, "ERR", DirectionUnknown.String())
	require.Equal(t, "ERR", Direction(42).String())
	require.Equal(t, "ERR", Direction(-1).String())
}

func Test_Direction_Degrees(t *testing.T) {
	require.Equal(t, 0.0, N.Degrees())
	require.Equal(t, 90.0, E.Degrees())
	require.Equal(t, 180.0, S.Degrees())
	require.Equal(t, 270.0, W.Degrees())
	require.Equal(t, 337.5, NNW.Degrees())
	require.True(t, math.IsNaN(DirectionUnknown.Degrees()))
}
