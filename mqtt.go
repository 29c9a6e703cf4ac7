package main

import (
	"encoding/json"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	logger "github.com/sirupsen/logrus"
)

const telemetryTopic = "weather/meters"

type telemetryReading struct {
	Time         string  `json:"time"`
	WindDir      string  `json:"wind_dir"`
	WindSpeedMph float64 `json:"wind_speed_mph"`
	WindGustMph  float64 `json:"wind_gust_mph"`
	RainRateInHr float64 `json:"rain_rate_in_hr"`
	RainDayIn    float64 `json:"rain_day_in"`
}

// StartTelemetry publishes a reading to the broker once a minute.
func (w *weatherstation) StartTelemetry(broker string) {
	opts := pahomqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("weathermeter").
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	client := pahomqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		logger.Errorf("Failed to connect to mqtt broker [%v]", token.Error())
		return
	}
	logger.Infof("Publishing telemetry to [%v] on [%v]", broker, telemetryTopic)

	ticker := w.clock.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.Chan() {
		speed, gust := w.windSpeedAndGust()
		rate, day := w.rainRateAndDay()
		reading := telemetryReading{
			Time:         time.Now().UTC().Format(time.RFC3339),
			WindDir:      w.vane.Direction().String(),
			WindSpeedMph: speed,
			WindGustMph:  gust,
			RainRateInHr: rate,
			RainDayIn:    day,
		}
		js, err := json.Marshal(reading)
		if err != nil {
			logger.Errorf("JSON error [%v]", err)
			continue
		}
		if token := client.Publish(telemetryTopic, 0, false, js); token.Wait() && token.Error() != nil {
			logger.Errorf("Failed to publish reading [%v]", token.Error())
		}
	}
}
