package buffer

import (
	"math"
	"sync"
)

type Average float64
type Minimum float64
type Maximum float64
type Sum float64

// SampleBuffer is a fixed size circular buffer of readings with rolling
// statistics. Safe for one writer and any number of readers.
type SampleBuffer struct {
	mu       sync.Mutex
	data     []float64
	position int
	primed   bool
}

func NewBuffer(size int) *SampleBuffer {
	return &SampleBuffer{data: make([]float64, size)}
}

func (b *SampleBuffer) AddItem(val float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.primed {
		// seed the whole buffer with the first reading so the rolling
		// stats don't spend a full cycle dragged down by zeroes
		for i := range b.data {
			b.data[i] = val
		}
		b.primed = true
	}
	b.data[b.position] = val
	b.position++
	if b.position == len(b.data) {
		b.position = 0
	}
}

func (b *SampleBuffer) GetAverageMinMaxSum() (Average, Minimum, Maximum, Sum) {
	b.mu.Lock()
	defer b.mu.Unlock()
	mn, mx, sum := math.MaxFloat64, -math.MaxFloat64, 0.0
	for _, x := range b.data {
		if x < mn {
			mn = x
		}
		if x > mx {
			mx = x
		}
		sum += x
	}
	return Average(sum / float64(len(b.data))), Minimum(mn), Maximum(mx), Sum(sum)
}

// SumMinMaxLast reports over the n most recent readings only.
func (b *SampleBuffer) SumMinMaxLast(n int) (Sum, Minimum, Maximum) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n > len(b.data) {
		n = len(b.data)
	}
	i := b.position - n
	if i < 0 {
		i += len(b.data)
	}
	mn, mx, sum := math.MaxFloat64, -math.MaxFloat64, 0.0
	for ; n > 0; n-- {
		x := b.data[i]
		sum += x
		if x < mn {
			mn = x
		}
		if x > mx {
			mx = x
		}
		i++
		if i == len(b.data) {
			i = 0
		}
	}
	return Sum(sum), Minimum(mn), Maximum(mx)
}

func (b *SampleBuffer) AverageLast(n int) Average {
	sum, _, _ := b.SumMinMaxLast(n)
	if n > len(b.data) {
		n = len(b.data)
	}
	return Average(float64(sum) / float64(n))
}

func (b *SampleBuffer) GetLast() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.position - 1
	if i < 0 {
		i += len(b.data)
	}
	return b.data[i]
}

func (b *SampleBuffer) GetSize() int {
	return len(b.data)
}
