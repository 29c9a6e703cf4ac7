package sensors

import (
	"errors"
	"math"
)

/*
 * sensors converts the raw output of the Sparkfun weather meters (wind vane,
 * anemometer, tipping bucket) into engineering units. Each sensor owns its
 * own state and hardware capability so several independent meter sets can
 * run side by side.
 */

// ErrInvalidHandle is returned by every constructor handed a missing
// hardware capability.
var ErrInvalidHandle = errors.New("sensors: invalid hardware handle")

// Direction is one of the 16 compass points the vane can resolve, in
// calibration table order starting at north.
type Direction int

const (
	N Direction = iota
	NNE
	NE
	ENE
	E
	ESE
	SE
	SSE
	S
	SSW
	SW
	WSW
	W
	WNW
	NW
	NNW
	// DirectionUnknown doubles as the count of valid directions and the
	// "no calibration entry matched" sentinel.
	DirectionUnknown
)

var directionLabels = [DirectionUnknown]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// String returns the compass abbreviation, or "ERR" for the sentinel and
// anything else outside the valid range.
func (d Direction) String() string {
	if !d.Valid() {
		return "ERR"
	}
	return directionLabels[d]
}

func (d Direction) Valid() bool {
	return d >= N && d < DirectionUnknown
}

// Degrees returns the compass heading, 22.5 degrees per point. NaN for the
// sentinel.
func (d Direction) Degrees() float64 {
	if !d.Valid() {
		return math.NaN()
	}
	return float64(d) * 22.5
}
