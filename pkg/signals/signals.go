// Package signals derives the price and battery signals the decision rules are
// written against. Every function degrades to a safe default rather than
// failing.
package signals

import (
	"math"
	"time"

	"github.com/gridpolicy/gridpolicy/pkg/history"
	"github.com/gridpolicy/gridpolicy/pkg/reason"
	"github.com/gridpolicy/gridpolicy/pkg/sanitize"
	"github.com/gridpolicy/gridpolicy/pkg/types"
	"github.com/gridpolicy/gridpolicy/pkg/windows"
)

// Signals holds everything computed from one interval's inputs.
type Signals struct {
	Windows windows.Windows
	Period  windows.Period

	Historical      history.Stats
	HistoricalKnown bool
	ZScore          float64

	MovingAverage   float64
	ForecastAverage float64
	Spiking         bool

	ReservePercent float64
	Surplus        bool
}

// MovingAverage returns the mean of the last n entries of history. It returns
// 0 when there are fewer than n entries.
func MovingAverage(history []float64, n int) float64 {
	if n <= 0 || len(history) < n {
		return 0
	}
	return mean(history[len(history)-n:])
}

// ForecastAverage returns the mean of the first n forecast entries. With fewer
// than n entries it returns rrp/10 ($/MWh to c/kWh) when rrp is available and
// 0 when it isn't.
func ForecastAverage(forecast []float64, n int, rrp float64, rrpOK bool) float64 {
	if n > 0 && len(forecast) >= n {
		return mean(forecast[:n])
	}
	if rrpOK {
		return rrp / 10
	}
	return 0
}

// IsSpiking returns true when sell is above both the moving average and the
// forecast average scaled by ratio.
func IsSpiking(sell, movingAverage, forecastAverage, ratio float64) bool {
	return sell > movingAverage*ratio && sell > forecastAverage*ratio
}

// ReservePercent returns the battery SOC to keep for the hour. Cyclone mode
// replaces the hourly curve with the flat emergency reserve and an hour without
// a configured reserve keeps the whole battery.
func ReservePercent(hour int, settings types.Settings) float64 {
	if settings.CycloneMode {
		return clampPercent(settings.CycloneReserveSOC)
	}
	if hour < 0 || hour >= len(settings.ReserveSOC) || hour >= windows.HoursPerDay {
		return 100
	}
	return clampPercent(settings.ReserveSOC[hour])
}

// HasSurplus returns true when soc is strictly above reserve. An unknown (NaN)
// soc never has a surplus.
func HasSurplus(soc, reserve float64) bool {
	return soc > reserve
}

// Calculate computes all signals for the inputs and appends a note for each to
// log.
func Calculate(in sanitize.Inputs, settings types.Settings, table history.Table, log reason.Log) (Signals, reason.Log) {
	var s Signals

	w, err := windows.Partition(windows.NewHourSet(settings.PeakHours...), in.SunriseHour, settings.MorningPaddingHours)
	if err != nil {
		log = log.Addf("Time windows are inconsistent (%v).", err)
	}
	s.Windows = w
	s.Period = w.Period(in.Hour)
	log = log.Addf("Night: %s. Day: %s. Peak: %s. Hour %d is %s.", w.Night, w.Day, w.Peak, in.Hour, s.Period)

	s.Historical, s.HistoricalKnown = table.Lookup(in.Month, in.Hour)
	if s.HistoricalKnown && in.RRPAvailable() {
		s.ZScore = history.ZScore(in.RRP, s.Historical)
		log = log.Addf(
			"Historical RRP: $%.2f/MWh, SD %.2f. Z-Score: %.2f.",
			s.Historical.Mean,
			s.Historical.StdDev,
			s.ZScore,
		)
	} else {
		log = log.Add("No historical RRP for this interval. Z-Score: 0.")
	}
	if in.Month == int(time.January) {
		log = log.Add("January is time to update historical prices with new data.")
	}

	s.MovingAverage = MovingAverage(in.PriceHistory, settings.MovingAverageSamples)
	if len(in.PriceHistory) < settings.MovingAverageSamples {
		log = log.Addf(
			"Price history has %d of %d entries, moving average is 0.",
			len(in.PriceHistory),
			settings.MovingAverageSamples,
		)
	} else {
		log = log.Addf("Moving average: %.2fc/kWh.", s.MovingAverage)
	}

	s.ForecastAverage = ForecastAverage(in.BuyForecast, settings.ForecastLookahead, in.RRP, in.RRPAvailable())
	switch {
	case len(in.BuyForecast) >= settings.ForecastLookahead:
		log = log.Addf("Forecast average: %.2fc/kWh.", s.ForecastAverage)
	case in.RRPAvailable():
		log = log.Addf(
			"Forecast has %d of %d entries, using RRP/10: %.2fc/kWh.",
			len(in.BuyForecast),
			settings.ForecastLookahead,
			s.ForecastAverage,
		)
	default:
		log = log.Addf(
			"Forecast has %d of %d entries and no RRP, forecast average is 0.",
			len(in.BuyForecast),
			settings.ForecastLookahead,
		)
	}

	s.Spiking = IsSpiking(in.SellPrice, s.MovingAverage, s.ForecastAverage, settings.SpikeRatio)
	if s.Spiking {
		log = log.Add("Price is spiking.")
	} else {
		log = log.Add("Not spiking.")
	}

	s.ReservePercent = ReservePercent(in.Hour, settings)
	s.Surplus = HasSurplus(in.BatterySOC, s.ReservePercent)
	switch {
	case settings.CycloneMode:
		log = log.Addf("Cyclone mode reserve: %.0f%%.", s.ReservePercent)
	default:
		log = log.Addf("Reserve SOC: %.0f%%.", s.ReservePercent)
	}
	if s.Surplus {
		log = log.Add("SOC above reserve, surplus available.")
	} else {
		log = log.Add("SOC below reserve, no surplus.")
	}

	return s, log
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 0
	}
	return m
}

func clampPercent(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return 100
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
