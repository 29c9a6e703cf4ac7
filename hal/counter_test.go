package hal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestEdgeCounterCounts(t *testing.T) {
	pin := &gpiotest.Pin{N: "wind", EdgesChan: make(chan gpio.Level)}

	c, err := NewEdgeCounter(pin)
	require.NoError(t, err)
	require.NoError(t, c.Start())

	for i := 0; i < 5; i++ {
		pin.EdgesChan <- gpio.Low
	}

	require.Eventually(t, func() bool {
		return c.Read() == 5
	}, time.Second, time.Millisecond)

	c.Reset()
	require.Equal(t, uint32(0), c.Read())
}

func TestEdgeCounterNilPin(t *testing.T) {
	_, err := NewEdgeCounter(nil)
	require.Error(t, err)
}

func TestMemADCWrapsBuffer(t *testing.T) {
	m := &MemADC{}
	buf := make([]uint32, 4)
	require.NoError(t, m.StartContinuous(buf))

	m.Write(1, 2, 3, 4, 5)
	require.Equal(t, []uint32{5, 2, 3, 4}, buf)

	m.Fill(7)
	require.Equal(t, []uint32{7, 7, 7, 7}, buf)
}
