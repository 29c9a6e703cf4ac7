package main

import (
	"github.com/gr-butler/weathermeter/buffer"
	"github.com/gr-butler/weathermeter/env"
	logger "github.com/sirupsen/logrus"
)

// rainDayBoundaryHour follows the met office observing convention: the
// rainfall "day" runs 9.01am to 9am.
const rainDayBoundaryHour = 9

func (w *weatherstation) StartRainMonitor() {
	// an hour of once-a-minute rate readings
	w.data.AddBuffer("rainRate", buffer.NewBuffer(60))
	w.processRain()
}

func (w *weatherstation) processRain() {
	ticker := w.clock.NewTicker(env.RainProcessInterval)
	defer ticker.Stop()
	for t := range ticker.Chan() {
		w.rain.Process()
		tips := w.rain.Count()
		rate := w.rain.RatePerHour()
		w.data.GetBuffer("rainRate").AddItem(rate)

		w.rainMu.Lock()
		if t.Hour() == rainDayBoundaryHour && t.Minute() == 0 {
			w.rainDayIn = 0
		}
		inches := float64(tips) * env.InchPerTip
		w.rainDayIn += inches
		w.rainSinceReport += inches
		day := w.rainDayIn
		w.rainMu.Unlock()

		Prom_rainRatePerHour.Set(rate)
		Prom_rainDayTotal.Set(day)

		if tips > 0 {
			logger.Infof("Bucket tips [%v], rate [%.2f] in/hr", tips, rate)
			go w.tipLed.Flash()
		}
		if *w.args.Rainon {
			logger.Infof("Rain rate [%.2f] in/hr, day total [%.3f] in", rate, day)
		}
	}
}

func (w *weatherstation) rainRateAndDay() (float64, float64) {
	rate := w.rain.RatePerHour()
	w.rainMu.Lock()
	defer w.rainMu.Unlock()
	return rate, w.rainDayIn
}

// takeReportedRain returns the inches accumulated since the last report
// and starts a fresh accumulation.
func (w *weatherstation) takeReportedRain() float64 {
	w.rainMu.Lock()
	defer w.rainMu.Unlock()
	r := w.rainSinceReport
	w.rainSinceReport = 0
	return r
}
