package env

import "time"

const (
	GPIO01 = "GPIO01"
	GPIO02 = "GPIO02" // SDA
	GPIO03 = "GPIO03" // SDC
	GPIO04 = "GPIO04"
	GPIO05 = "GPIO05"
	GPIO06 = "GPIO06"
	GPIO07 = "GPIO07"
	GPIO08 = "GPIO08"
	GPIO09 = "GPIO09"
	GPIO10 = "GPIO10"
	GPIO11 = "GPIO11"
	GPIO12 = "GPIO12" // rain pin
	GPIO13 = "GPIO13"
	GPIO14 = "GPIO14"
	GPIO15 = "GPIO15"
	GPIO16 = "GPIO16"
	GPIO17 = "GPIO17"
	GPIO18 = "GPIO18"
	GPIO19 = "GPIO19" // rain tip LED
	GPIO20 = "GPIO20" // heartbeat LED
	GPIO21 = "GPIO21"
	GPIO22 = "GPIO22"
	GPIO23 = "GPIO23"
	GPIO24 = "GPIO24"
	GPIO25 = "GPIO25"
	GPIO26 = "GPIO26"
	GPIO27 = "GPIO27" // wind pin
	GPIO28 = "GPIO28"
	GPIO29 = "GPIO29"

	RainSensorIn = GPIO12
	WindSensorIn = GPIO27

	HeartbeatLed = GPIO20
	RainTipLed   = GPIO19

	// Sparkfun weather meter datasheet: one anemometer pulse per second
	// equals 1.492 MPH. The constant only holds if the counter is read
	// at the cadence it was calibrated for (WindProcessInterval).
	MphPerPulse = 1.492

	// One bucket tip is 0.011 inches of rain.
	InchPerTip = 0.011

	WindProcessInterval = 2400 * time.Millisecond
	RainProcessInterval = time.Minute

	ReportFreqMin = 15

	LEDFlashDuration = time.Millisecond * 50

	// VaneBufferSize is the number of raw samples the ADC keeps in its
	// circular buffer before a buffer-full event is signalled.
	VaneBufferSize = 64

	// VaneCodeBand is the +/- window applied when matching the averaged
	// ADC reading against the calibration table. Widen it to compensate
	// for noise in the divider circuit.
	VaneCodeBand = 20
)

// VaneCalibration holds the raw ADC midpoint for each of the 16 compass
// points, in compass order starting at north. Measured for my setup -
// every installation needs its own set of readings.
var VaneCalibration = [16]uint32{
	3541, // N
	2476, // NNE
	2660, // NE
	1123, // ENE
	1171, // E
	1029, // ESE
	1606, // SE
	1334, // SSE
	2042, // S
	1869, // SSW
	3159, // SW
	3073, // WSW
	3881, // W
	3635, // WNW
	3762, // NW
	3341, // NNW
}
