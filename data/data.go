package data

import (
	"sync"

	"github.com/gr-butler/weathermeter/buffer"
)

// StationData is the registry of named sample buffers the station records
// its readings into.
type StationData struct {
	mu      sync.RWMutex
	buffers map[string]*buffer.SampleBuffer
}

func NewStationData() *StationData {
	return &StationData{buffers: make(map[string]*buffer.SampleBuffer)}
}

func (d *StationData) AddBuffer(name string, b *buffer.SampleBuffer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buffers[name] = b
}

func (d *StationData) GetBuffer(name string) *buffer.SampleBuffer {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.buffers[name]
}
