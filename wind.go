package main

import (
	"time"

	"github.com/gr-butler/weathermeter/buffer"
	"github.com/gr-butler/weathermeter/env"
	logger "github.com/sirupsen/logrus"
)

/*
Wind speed comes off the anemometer as a pulse count. The counter is
snapshot and zeroed every env.WindProcessInterval, which is the cadence
the MPH conversion factor is calibrated for, and each snapshot's speed
goes into a rolling buffer covering the last ten minutes. The reported
speed is the one minute rolling average; the gust is the largest single
interval reading in the ten minute window, which is close enough to the
met office "maximum short duration speed" definition for our purposes.

The vane is averaged by the ADC buffer-full events, the software stand-in
for the DMA transfer-complete interrupt the original hardware used.
*/

const (
	// ten minutes worth of wind snapshots
	windBufferLen = int((10 * time.Minute) / env.WindProcessInterval)
	// one minute worth, for the rolling average
	windAvgLen = int(time.Minute / env.WindProcessInterval)
)

func (w *weatherstation) StartWindMonitor() {
	w.data.AddBuffer("windSpeed", buffer.NewBuffer(windBufferLen))
	w.data.AddBuffer("windDirection", buffer.NewBuffer(windAvgLen))

	go w.processVane()
	w.processWindSpeed()
}

// processVane recomputes the vane average each time the ADC signals a full
// buffer, then looks up the direction.
func (w *weatherstation) processVane() {
	if w.vaneADC == nil {
		return
	}
	for range w.vaneADC.BufferFull() {
		w.vane.Process()
		dir := w.vane.Direction()

		Prom_vaneAverage.Set(float64(w.vane.Average()))
		if dir.Valid() {
			w.data.GetBuffer("windDirection").AddItem(dir.Degrees())
			Prom_windDirection.Set(dir.Degrees())
		}
		if *w.args.Diron {
			logger.Infof("Vane avg [%v], direction [%v]", w.vane.Average(), dir)
		}
	}
}

func (w *weatherstation) processWindSpeed() {
	ticker := w.clock.NewTicker(env.WindProcessInterval)
	defer ticker.Stop()
	for range ticker.Chan() {
		w.anem.Process()
		speed := w.anem.SpeedMPH()
		w.data.GetBuffer("windSpeed").AddItem(speed)

		avg, gust := w.windSpeedAndGust()
		Prom_windspeed.Set(avg)
		Prom_windgust.Set(gust)

		if *w.args.Speedon {
			logger.Infof("Wind count [%v], mph [%.2f], avg [%.2f], gust [%.2f]",
				w.anem.Count(), speed, avg, gust)
		}
	}
}

// windSpeedAndGust returns the one minute rolling average and the largest
// single reading in the ten minute window.
func (w *weatherstation) windSpeedAndGust() (float64, float64) {
	buf := w.data.GetBuffer("windSpeed")
	if buf == nil {
		return 0, 0
	}
	avg := buf.AverageLast(windAvgLen)
	_, _, max, _ := buf.GetAverageMinMaxSum()
	return float64(avg), float64(max)
}
