package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/gr-butler/weathermeter/db/postgres"
	"github.com/gr-butler/weathermeter/env"

	logger "github.com/sirupsen/logrus"
)

/*

https://wow.metoffice.gov.uk/support/dataformats

WOW expects an HTTP GET to wow.metoffice.gov.uk/automaticreading? with a set
of key/value pairs. Mandatory: siteid, siteAuthenticationKey, dateutc (in
YYYY-mm-DD HH:mm:ss, UTC), softwaretype - plus at least one piece of weather
data. The keys we can supply from the meters:

	rainin       Accumulated rainfall since the previous observation   Inches
	dailyrainin  Accumulated rainfall so far today                     Inches
	winddir      Instantaneous Wind Direction                          Degrees (0-360)
	windspeedmph Instantaneous Wind Speed                              Miles per Hour
	windgustmph  Current Wind Gust                                     Miles per Hour

*/

const baseUrl = "http://wow.metoffice.gov.uk/automaticreading?"

type weatherData struct {
	SiteId       string  `url:"siteid,omitempty"`
	AuthKey      string  `url:"siteAuthenticationKey,omitempty"`
	DateString   string  `url:"dateutc,omitempty"`
	SoftwareType string  `url:"softwaretype,omitempty"`
	RainIn       float64 `url:"rainin,omitempty"`
	DailyRainIn  float64 `url:"dailyrainin,omitempty"`
	WindDir      float64 `url:"winddir,omitempty"`
	WindSpeedMph float64 `url:"windspeedmph,omitempty"`
	WindGustMph  float64 `url:"windgustmph,omitempty"`
}

// Reporting runs as a goroutine:
// * send data to the wow url every env.ReportFreqMin mins
// * write a db record on the same cadence
func (w *weatherstation) Reporting() {
	ticker := w.clock.NewTicker(time.Minute)
	defer ticker.Stop()
	for t := range ticker.Chan() {
		if t.Minute()%env.ReportFreqMin != 0 {
			continue
		}
		logger.Info("Recording data")
		data := w.prepData()

		wowsiteid, idok := os.LookupEnv("WOWSITEID")
		wowpin, pinok := os.LookupEnv("WOWPIN")
		if !(idok && pinok) {
			logger.Error("SiteId and or pin not set! WOWSITEID and WOWPIN must be set.")
		}
		data.SiteId = wowsiteid
		data.AuthKey = wowpin

		vals, _ := query.Values(data)
		logger.Debugf("Data: [%v]", vals)

		if *w.args.Test {
			continue
		}

		if w.db != nil {
			logger.Info("Saving record to db")
			err := w.db.WriteRecord(context.Background(), postgres.WriteRecordParams{
				WindSpeed:     data.WindSpeedMph,
				WindGust:      data.WindGustMph,
				WindDirection: data.WindDir,
				RainRate:      w.rain.RatePerHour(),
				RainDay:       data.DailyRainIn,
			})
			if err != nil {
				logger.Errorf("Failed to write to db [%v]", err)
			}
		}

		logger.Info("Sending data to met office")
		client := http.Client{Timeout: time.Second * 30}
		resp, err := client.Get(baseUrl + vals.Encode())
		if err != nil {
			logger.Errorf("Failed to send data [%v]", err)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			logger.Errorf("Failed to send data HTTP [%v]", resp.Status)
		}
		_ = resp.Body.Close()
	}
}

// prepData builds a WOW observation from the current readings.
func (w *weatherstation) prepData() *weatherData {
	wd := weatherData{}

	// "The date must be in the following format: YYYY-mm-DD HH:mm:ss"
	// go magic date is Mon Jan 2 15:04:05 MST 2006
	wd.DateString = time.Now().UTC().Format("2006-01-02+15:04:05")
	wd.SoftwareType = version

	speed, gust := w.windSpeedAndGust()
	wd.WindSpeedMph = speed
	wd.WindGustMph = gust

	if dir := w.vane.Direction(); dir.Valid() {
		wd.WindDir = dir.Degrees()
	}

	wd.RainIn = w.takeReportedRain()
	w.rainMu.Lock()
	wd.DailyRainIn = w.rainDayIn
	w.rainMu.Unlock()

	return &wd
}
