package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gr-butler/weathermeter/data"
	"github.com/gr-butler/weathermeter/db/postgres"
	"github.com/gr-butler/weathermeter/env"
	"github.com/gr-butler/weathermeter/hal"
	"github.com/gr-butler/weathermeter/led"
	"github.com/gr-butler/weathermeter/sensors"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	logger "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

const version = "GRB-WxMeter-1.0.1"

type weatherstation struct {
	vane    *sensors.WindVane
	anem    *sensors.Anemometer
	rain    *sensors.Rainmeter
	vaneADC *hal.VaneADC

	data  *data.StationData
	clock clockwork.Clock
	db    *postgres.DB

	tipLed   *led.LED
	heartLed *led.LED
	args     env.Args

	rainMu          sync.Mutex
	rainDayIn       float64 // inches since the 9am day boundary
	rainSinceReport float64 // inches since the last WOW upload
}

type webdata struct {
	TimeNow      string  `json:"time"`
	WindDir      string  `json:"wind_dir"`
	WindDeg      float64 `json:"wind_deg"`
	WindSpeed    float64 `json:"wind_speed_mph"`
	WindGust     float64 `json:"wind_gust_mph"`
	RainRate     float64 `json:"rain_rate_in_hr"`
	RainDayTotal float64 `json:"rain_day_in"`
}

var Prom_windspeed = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "windspeed",
		Help: "Average wind speed mph",
	},
)

var Prom_windgust = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "windgust",
		Help: "Wind gust mph",
	},
)

var Prom_windDirection = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "winddirection",
		Help: "Wind direction deg",
	},
)

var Prom_vaneAverage = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "vane_adc_average",
		Help: "Raw averaged wind vane ADC reading",
	},
)

var Prom_rainRatePerHour = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "rain_hour_rate",
		Help: "Rain rate in inches per hour",
	},
)

var Prom_rainDayTotal = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "rain_day",
		Help: "Rain total today in inches (9.01am - 9am)",
	},
)

func init() {
	logger.Infof("%v: Initialize prometheus...", time.Now().Format(time.RFC822))
	prometheus.MustRegister(
		Prom_windspeed,
		Prom_windgust,
		Prom_windDirection,
		Prom_vaneAverage,
		Prom_rainRatePerHour,
		Prom_rainDayTotal)
}

func main() {
	logger.Infof("Starting weather meter station [%v]", version)

	w := &weatherstation{}
	w.args = env.Args{
		Test:     flag.Bool("test", false, "test mode, does not send reports"),
		NoReport: flag.Bool("noreport", false, "disable met office and db reporting"),
		Verbose:  flag.Bool("verbose", false, "debug logging"),
		Speedon:  flag.Bool("speedon", false, "log each wind speed reading"),
		Diron:    flag.Bool("diron", false, "log each wind direction reading"),
		Rainon:   flag.Bool("rainon", false, "log each rain reading"),
	}
	broker := flag.String("broker", "", "mqtt broker url, e.g. tcp://mosquitto:1883")
	flag.Parse()

	if *w.args.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}
	if *w.args.Test {
		logger.Info("TEST MODE")
	}

	w.clock = clockwork.NewRealClock()
	w.data = data.NewStationData()

	if err := w.initSensors(); err != nil {
		logger.Errorf("Failed to initialise sensors!! [%v]", err)
		logger.Exit(1)
	}

	if dsn, ok := os.LookupEnv("WEATHERDB"); ok && !*w.args.Test {
		db, err := postgres.Open(dsn)
		if err != nil {
			logger.Errorf("Failed to open weather db [%v]", err)
		} else {
			w.db = db
			defer w.db.Close()
		}
	}

	go w.StartWindMonitor()
	go w.StartRainMonitor()

	if !*w.args.NoReport {
		go w.Reporting()
	}
	if *broker != "" {
		go w.StartTelemetry(*broker)
	}
	go w.heartbeat()

	http.HandleFunc("/", w.handler)
	http.Handle("/metrics", promhttp.Handler())
	logger.Info("Starting webservice...")
	logger.Fatal(http.ListenAndServe(":80", nil))
}

// initSensors brings up the hardware and binds the three meters to it.
func (w *weatherstation) initSensors() error {
	if _, err := host.Init(); err != nil {
		logger.Errorf("Failed to init periph host [%v]", err)
		return err
	}

	bus, err := i2creg.Open("")
	if err != nil {
		logger.Errorf("Failed to open I2C: %v", err)
		return err
	}

	logger.Info("Starting wind vane ADC")
	adc, err := hal.NewVaneADC(bus)
	if err != nil {
		return err
	}
	w.vaneADC = adc

	w.vane, err = sensors.NewWindVane(adc, env.VaneCalibration)
	if err != nil {
		return err
	}

	windPin, err := hal.OpenPulsePin(env.WindSensorIn)
	if err != nil {
		return err
	}
	windCounter, err := hal.NewEdgeCounter(windPin)
	if err != nil {
		return err
	}
	w.anem, err = sensors.NewAnemometer(windCounter)
	if err != nil {
		return err
	}

	// ignore glitches under 100ms and repeated tips within 500ms
	rainPin, err := hal.OpenDebouncedPulsePin(env.RainSensorIn, 100*time.Millisecond, 500*time.Millisecond)
	if err != nil {
		return err
	}
	rainCounter, err := hal.NewEdgeCounter(rainPin)
	if err != nil {
		return err
	}
	w.rain, err = sensors.NewRainmeter(rainCounter)
	if err != nil {
		return err
	}

	w.tipLed = led.NewLED("Rain Tip", env.RainTipLed)
	w.heartLed = led.NewLED("Heartbeat", env.HeartbeatLed)

	logger.Info("Sensors initialized.")
	return nil
}

func (w *weatherstation) heartbeat() {
	logger.Info("Heartbeat started")
	for {
		w.heartLed.Flash()
		w.clock.Sleep(time.Second * 30)
	}
}

func (w *weatherstation) handler(rw http.ResponseWriter, r *http.Request) {
	rw.Header().Set("Content-Type", "application/json")

	dir := w.vane.Direction()
	speed, gust := w.windSpeedAndGust()
	rate, day := w.rainRateAndDay()

	deg := dir.Degrees()
	if !dir.Valid() {
		deg = -1 // NaN is not valid JSON
	}

	wd := webdata{
		TimeNow:      time.Now().Format(time.RFC822),
		WindDir:      dir.String(),
		WindDeg:      deg,
		WindSpeed:    speed,
		WindGust:     gust,
		RainRate:     rate,
		RainDayTotal: day,
	}

	js, err := json.Marshal(wd)
	if err != nil {
		logger.Errorf("JSON error [%v]", err)
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = rw.Write(js) // not much we can do if this fails
}
