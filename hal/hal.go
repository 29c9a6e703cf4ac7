package hal

/*
 * hal wraps the hardware the weather meters hang off. The sensors package
 * only sees these two capabilities; production code plugs in the periph.io
 * backed adaptors below and tests plug in the Mem fakes.
 */

// ADC continuously refreshes a caller-supplied buffer with raw samples,
// the way a DMA driven ADC would. The buffer may be read at any time.
type ADC interface {
	// StartContinuous begins sampling into buf. Sampling wraps around and
	// keeps running until the adaptor is halted.
	StartContinuous(buf []uint32) error
}

// PulseCounter is a free-running hardware pulse counter.
type PulseCounter interface {
	Start() error
	// Read returns the pulses accumulated since the last Reset.
	Read() uint32
	Reset()
}
