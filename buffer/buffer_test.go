package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddItemPrimesBuffer(t *testing.T) {
	buf := NewBuffer(10)

	// the first reading fills the whole buffer
	buf.AddItem(1)

	a, mn, mx, s := buf.GetAverageMinMaxSum()
	assert.Equal(t, Average(1), a)
	assert.Equal(t, Minimum(1), mn)
	assert.Equal(t, Maximum(1), mx)
	assert.Equal(t, Sum(10), s)

	buf.AddItem(10)
	a, mn, mx, s = buf.GetAverageMinMaxSum()
	assert.Equal(t, Average(1.9), a)
	assert.Equal(t, Minimum(1), mn)
	assert.Equal(t, Maximum(10), mx)
	assert.Equal(t, Sum(19), s)
}

func TestSumMinMaxLast(t *testing.T) {
	buf := NewBuffer(5)
	for _, v := range []float64{1, 2, 3, 4, 5, 6, 7} {
		buf.AddItem(v)
	}

	s, mn, mx := buf.SumMinMaxLast(2)
	assert.Equal(t, Sum(13), s)
	assert.Equal(t, Minimum(6), mn)
	assert.Equal(t, Maximum(7), mx)

	// wraps across the start of the backing array
	s, mn, mx = buf.SumMinMaxLast(4)
	assert.Equal(t, Sum(22), s)
	assert.Equal(t, Minimum(4), mn)
	assert.Equal(t, Maximum(7), mx)
}

func TestAverageLast(t *testing.T) {
	buf := NewBuffer(10)
	for _, v := range []float64{4, 4, 4, 4, 4, 2, 2, 2, 2, 2} {
		buf.AddItem(v)
	}

	assert.Equal(t, Average(2), buf.AverageLast(2))
	assert.Equal(t, Average(2.5), buf.AverageLast(8))
}

func TestGetLast(t *testing.T) {
	buf := NewBuffer(3)
	buf.AddItem(5)
	buf.AddItem(9)
	assert.Equal(t, 9.0, buf.GetLast())
	assert.Equal(t, 3, buf.GetSize())
}
