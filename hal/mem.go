package hal

import "sync"

// MemADC is an in-memory ADC for tests and bench rigs. Samples written
// with Fill or Write land in the buffer handed to StartContinuous.
type MemADC struct {
	mu  sync.Mutex
	buf []uint32
}

func (m *MemADC) StartContinuous(buf []uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buf = buf
	return nil
}

// Fill sets every sample in the buffer to v.
func (m *MemADC) Fill(v uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.buf {
		m.buf[i] = v
	}
}

// Write copies samples into the buffer from position 0, wrapping like the
// hardware would.
func (m *MemADC) Write(samples ...uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range samples {
		m.buf[i%len(m.buf)] = s
	}
}

// MemCounter is an in-memory pulse counter for tests.
type MemCounter struct {
	mu      sync.Mutex
	count   uint32
	started bool
}

func (m *MemCounter) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
	return nil
}

// Pulse registers n hardware pulses.
func (m *MemCounter) Pulse(n uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count += n
}

func (m *MemCounter) Read() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

func (m *MemCounter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count = 0
}

// Started reports whether Start has been called.
func (m *MemCounter) Started() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.started
}
