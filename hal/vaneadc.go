package hal

import (
	"errors"

	logger "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
)

// VaneADC reads the wind vane voltage divider through an ADS1115 and keeps
// a circular buffer of raw readings topped up, standing in for the DMA
// transfer a bare-metal ADC would do.
type VaneADC struct {
	pin  ads1x15.PinADC
	full chan struct{}
	halt chan struct{}
}

// NewVaneADC opens channel 0 of the ADS1115 on the given bus.
func NewVaneADC(bus i2c.Bus) (*VaneADC, error) {
	adc, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		return nil, err
	}

	// the vane settles slowly so we don't need speed, just steady samples
	pin, err := adc.PinForChannel(ads1x15.Channel0, 5*physic.Volt, 10*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		return nil, err
	}

	return &VaneADC{
		pin:  pin,
		full: make(chan struct{}, 1),
		halt: make(chan struct{}),
	}, nil
}

func (a *VaneADC) StartContinuous(buf []uint32) error {
	if len(buf) == 0 {
		return errors.New("hal: vane sample buffer is empty")
	}
	logger.Infof("Starting vane ADC, buffer size [%v]", len(buf))
	samples := a.pin.ReadContinuous()
	go func() {
		i := 0
		for {
			select {
			case <-a.halt:
				return
			case s, ok := <-samples:
				if !ok {
					return
				}
				raw := s.Raw
				if raw < 0 {
					raw = 0
				}
				buf[i] = uint32(raw)
				i++
				if i == len(buf) {
					i = 0
					select {
					case a.full <- struct{}{}:
					default:
					}
				}
			}
		}
	}()
	return nil
}

// BufferFull signals each time the sample buffer has wrapped, the moment a
// bare-metal driver would get its transfer-complete interrupt.
func (a *VaneADC) BufferFull() <-chan struct{} {
	return a.full
}

func (a *VaneADC) Halt() error {
	close(a.halt)
	if r, ok := a.pin.(conn.Resource); ok {
		return r.Halt()
	}
	return nil
}
