package signals

import (
	"math"
	"testing"

	"github.com/gridpolicy/gridpolicy/pkg/history"
	"github.com/gridpolicy/gridpolicy/pkg/reason"
	"github.com/gridpolicy/gridpolicy/pkg/sanitize"
	"github.com/gridpolicy/gridpolicy/pkg/types"
	"github.com/gridpolicy/gridpolicy/pkg/windows"
	"github.com/stretchr/testify/assert"
)

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestMovingAverage(t *testing.T) {
	t.Run("Fewer Than N", func(t *testing.T) {
		for n := 0; n < 12; n++ {
			assert.Equal(t, 0.0, MovingAverage(repeat(9, n), 12))
		}
		assert.Equal(t, 0.0, MovingAverage(nil, 12))
	})

	t.Run("Uses Most Recent", func(t *testing.T) {
		h := append(repeat(100, 5), repeat(8, 12)...)
		assert.InDelta(t, 8.0, MovingAverage(h, 12), 1e-9)
		assert.InDelta(t, 13.0, MovingAverage([]float64{1, 2, 3, 13}, 1), 1e-9)
	})

	t.Run("Non Positive Window", func(t *testing.T) {
		assert.Equal(t, 0.0, MovingAverage(repeat(5, 20), 0))
		assert.Equal(t, 0.0, MovingAverage(repeat(5, 20), -3))
	})
}

func TestForecastAverage(t *testing.T) {
	assert.InDelta(t, 2.5, ForecastAverage([]float64{1, 2, 3, 4, 100}, 4, 500, true), 1e-9)
	assert.InDelta(t, 50.0, ForecastAverage([]float64{1, 2}, 4, 500, true), 1e-9)
	assert.InDelta(t, 4.2, ForecastAverage(nil, 4, 42, true), 1e-9)
	assert.Equal(t, 0.0, ForecastAverage(nil, 4, 42, false))
}

func TestIsSpiking(t *testing.T) {
	assert.True(t, IsSpiking(30, 10, 20, 1))
	assert.False(t, IsSpiking(20, 10, 20, 1))
	assert.False(t, IsSpiking(30, 40, 20, 1))
	assert.False(t, IsSpiking(30, 10, 20, 1.5))
	assert.False(t, IsSpiking(math.Inf(-1), 0, 0, 1))
	assert.False(t, IsSpiking(math.NaN(), 0, 0, 1))
}

func TestReservePercent(t *testing.T) {
	settings := types.DefaultSettings()

	t.Run("Hourly Curve", func(t *testing.T) {
		assert.Equal(t, 10.0, ReservePercent(4, settings))
		assert.Equal(t, 90.0, ReservePercent(15, settings))
		assert.Equal(t, 80.0, ReservePercent(16, settings))
		assert.Equal(t, 10.0, ReservePercent(23, settings))
	})

	t.Run("Unknown Hour Keeps Everything", func(t *testing.T) {
		assert.Equal(t, 100.0, ReservePercent(25, settings))
		assert.Equal(t, 100.0, ReservePercent(-1, settings))
	})

	t.Run("Cyclone Mode", func(t *testing.T) {
		s := settings
		s.CycloneMode = true
		for h := 0; h < 24; h++ {
			assert.Equal(t, 70.0, ReservePercent(h, s))
		}
		assert.Equal(t, 70.0, ReservePercent(25, s))
	})

	t.Run("Clamped", func(t *testing.T) {
		s := settings
		s.ReserveSOC = repeat(150, 24)
		assert.Equal(t, 100.0, ReservePercent(3, s))
		s.ReserveSOC = repeat(-5, 24)
		assert.Equal(t, 0.0, ReservePercent(3, s))
	})
}

func TestHasSurplus(t *testing.T) {
	assert.True(t, HasSurplus(85, 80))
	assert.False(t, HasSurplus(80, 80))
	assert.False(t, HasSurplus(30, 80))
	assert.False(t, HasSurplus(math.NaN(), 0))
}

func TestCalculate(t *testing.T) {
	settings := types.DefaultSettings()
	table := history.QLD2023()

	t.Run("Full Inputs", func(t *testing.T) {
		in := sanitize.Inputs{
			Month:        1,
			Hour:         16,
			SunriseHour:  5,
			RRP:          1500,
			RRPSource:    sanitize.RRPSourceLive,
			SellPrice:    80.2,
			BuyPrice:     55.5,
			BuyForecast:  repeat(60, 16),
			PriceHistory: repeat(60, 24),
			BatterySOC:   85,
		}
		s, log := Calculate(in, settings, table, reason.Log{})
		assert.Equal(t, windows.PeriodPeak, s.Period)
		assert.True(t, s.HistoricalKnown)
		assert.Equal(t, history.Stats{Mean: 103.07, StdDev: 89.2}, s.Historical)
		assert.InDelta(t, (1500-103.07)/89.2, s.ZScore, 1e-9)
		assert.InDelta(t, 60.0, s.MovingAverage, 1e-9)
		assert.InDelta(t, 60.0, s.ForecastAverage, 1e-9)
		assert.True(t, s.Spiking)
		assert.Equal(t, 80.0, s.ReservePercent)
		assert.True(t, s.Surplus)
		assert.Contains(t, log.String(), "Hour 16 is peak.")
		assert.Contains(t, log.String(), "January is time to update historical prices with new data.")
		assert.Contains(t, log.String(), "Price is spiking.")
		assert.Contains(t, log.String(), "SOC above reserve, surplus available.")
	})

	t.Run("Degraded Inputs", func(t *testing.T) {
		in := sanitize.Inputs{
			Month:        sanitize.UnknownMonth,
			Hour:         sanitize.UnknownHour,
			SunriseHour:  6,
			RRPSource:    sanitize.RRPSourceUnavailable,
			BuyPrice:     math.NaN(),
			SellPrice:    math.NaN(),
			BuyForecast:  []float64{},
			PriceHistory: []float64{},
			BatterySOC:   math.NaN(),
		}
		s, log := Calculate(in, settings, table, reason.Log{})
		assert.Equal(t, windows.PeriodNone, s.Period)
		assert.False(t, s.HistoricalKnown)
		assert.Equal(t, 0.0, s.ZScore)
		assert.Equal(t, 0.0, s.MovingAverage)
		assert.Equal(t, 0.0, s.ForecastAverage)
		assert.False(t, s.Spiking)
		assert.Equal(t, 100.0, s.ReservePercent)
		assert.False(t, s.Surplus)
		assert.Contains(t, log.String(), "moving average is 0")
		assert.NotContains(t, log.String(), "January")
		assert.Contains(t, log.String(), "no RRP, forecast average is 0")
		assert.Contains(t, log.String(), "SOC below reserve, no surplus.")
	})

	t.Run("Inconsistent Windows Logged", func(t *testing.T) {
		s2 := settings
		s2.PeakHours = []int{16, 18}
		in := sanitize.Inputs{Month: 1, Hour: 17, SunriseHour: 6, RRPSource: sanitize.RRPSourceUnavailable}
		s, log := Calculate(in, s2, table, reason.Log{})
		assert.Equal(t, windows.PeriodDay, s.Period)
		assert.True(t, s.Windows.Complete())
		assert.Contains(t, log.String(), "Time windows are inconsistent")
	})
}
