// Package sanitize turns the untrusted variables supplied by the host into
// typed inputs. It never fails: anything unusable is replaced by a documented
// default and noted in the reason log.
package sanitize

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gridpolicy/gridpolicy/pkg/history"
	"github.com/gridpolicy/gridpolicy/pkg/reason"
	"github.com/gridpolicy/gridpolicy/pkg/types"
)

// Variable names the host supplies.
const (
	KeyReason          = "reason"
	KeyGridPower       = "grid_power"
	KeyHousePower      = "house_power"
	KeySuggestedAction = "suggested_action"
	KeySuggestedSolar  = "suggested_solar"
	KeyIntervalTime    = "interval_time"
	KeySunrise         = "sunrise"
	KeySunset          = "sunset"
	KeyRRP             = "rrp"
	KeyBuyForecast     = "buy_forecast"
	KeyBuyPrice        = "buy_price"
	KeySellPrice       = "sell_price"
	KeyPriceHistory    = "history_buy_prices"
	KeyBatterySOC      = "battery_soc"
	KeyBatteryCapacity = "battery_capacity"

	thresholdPrefix = "threshold_"
)

const (
	// UnknownMonth is used when the interval time can't be read.
	UnknownMonth = 0
	// UnknownHour is used when the interval time can't be read. It is outside
	// 0-23 so it lands in no time window.
	UnknownHour = 25
)

// RRPSource describes where Inputs.RRP came from.
type RRPSource string

const (
	RRPSourceLive        RRPSource = "live"
	RRPSourceHistorical  RRPSource = "historical"
	RRPSourceUnavailable RRPSource = "unavailable"
)

// Threshold is an extra threshold_N variable that the rules don't use.
type Threshold struct {
	Name  string
	Value float64
}

// Inputs is the typed view of one interval's variables.
type Inputs struct {
	Upstream   string
	GridPower  float64
	HousePower float64

	SuggestedAction types.Action
	SuggestedSolar  types.SolarMode

	Month       int
	Hour        int
	SunriseHour int
	SunsetHour  int

	// RRP is the spot price in $/MWh.
	RRP       float64
	RRPSource RRPSource

	LowRRPThreshold       float64
	SecondaryRRPThreshold float64
	ExtraThresholds       []Threshold

	// BuyForecast is ordered nearest interval first.
	BuyForecast []float64
	// BuyPrice and SellPrice are in c/kWh. They are NaN when the variable was
	// unusable so every comparison against them is false.
	BuyPrice  float64
	SellPrice float64
	// PriceHistory is ordered oldest first.
	PriceHistory []float64

	// BatterySOC is NaN when the variable was unusable.
	BatterySOC      float64
	BatteryCapacity float64

	// Degraded lists the variables that were replaced by defaults, in the
	// order they were processed.
	Degraded []string
}

// RRPAvailable returns true if RRP holds a live or historical price.
func (in Inputs) RRPAvailable() bool {
	return in.RRPSource != RRPSourceUnavailable
}

type sanitizer struct {
	vars     types.Variables
	settings types.Settings
	table    history.Table
	log      reason.Log
	in       Inputs
}

// Sanitize converts vars into Inputs and returns log with a note appended for
// every variable in a fixed order.
func Sanitize(vars types.Variables, settings types.Settings, table history.Table, log reason.Log) (Inputs, reason.Log) {
	s := &sanitizer{
		vars:     vars,
		settings: settings,
		table:    table,
		log:      log,
	}
	s.upstream()
	s.power()
	s.suggested()
	s.intervalTime()
	s.sun()
	s.rrp()
	s.thresholds()
	s.forecast()
	s.prices()
	s.priceHistory()
	s.battery()
	return s.in, s.log
}

func (s *sanitizer) degrade(key string, err error, fallback string) {
	s.in.Degraded = append(s.in.Degraded, key)
	var le *listError
	switch {
	case errors.Is(err, errMissing):
		s.log = s.log.Addf("%s is missing, defaulting to %s.", key, fallback)
	case errors.As(err, &le) && le.empty:
		s.log = s.log.Addf("%s is empty, defaulting to %s.", key, fallback)
	case errors.As(err, &le):
		s.log = s.log.Addf("%s is invalid: %s, defaulting to %s.", key, le.reason, fallback)
	default:
		s.log = s.log.Addf("%s is invalid (%v), defaulting to %s.", key, err, fallback)
	}
}

func (s *sanitizer) upstream() {
	str, err := toString(s.vars[KeyReason])
	str = strings.TrimSpace(str)
	if err != nil || str == "" {
		s.log = s.log.Add("Upstream provided no reason string.")
		return
	}
	s.in.Upstream = str
	s.log = s.log.Addf("Upstream said: %s.", strings.TrimRight(str, "."))
}

func (s *sanitizer) power() {
	grid, gerr := toFloat(s.vars[KeyGridPower])
	house, herr := toFloat(s.vars[KeyHousePower])
	if gerr != nil {
		s.degrade(KeyGridPower, gerr, "0")
		grid = 0
	}
	if herr != nil {
		s.degrade(KeyHousePower, herr, "0")
		house = 0
	}
	s.in.GridPower = grid
	s.in.HousePower = house
	s.log = s.log.Addf("Grid: %sW. House power: %sW.", formatNumber(grid), formatNumber(house))
}

func (s *sanitizer) suggested() {
	s.in.SuggestedAction = types.ActionAuto
	if str, err := toString(s.vars[KeySuggestedAction]); err != nil {
		s.degrade(KeySuggestedAction, err, string(types.ActionAuto))
	} else if a := types.Action(strings.ToLower(strings.TrimSpace(str))); !a.Valid() {
		s.degrade(KeySuggestedAction, fmt.Errorf("unknown action %q", str), string(types.ActionAuto))
	} else {
		s.in.SuggestedAction = a
	}

	s.in.SuggestedSolar = types.SolarModeMaximize
	if str, err := toString(s.vars[KeySuggestedSolar]); err != nil {
		s.degrade(KeySuggestedSolar, err, string(types.SolarModeMaximize))
	} else if m := types.SolarMode(strings.ToLower(strings.TrimSpace(str))); !m.Valid() {
		s.degrade(KeySuggestedSolar, fmt.Errorf("unknown solar mode %q", str), string(types.SolarModeMaximize))
	} else {
		s.in.SuggestedSolar = m
	}
	s.log = s.log.Addf("Suggested action: %s. Suggested solar: %s.", s.in.SuggestedAction, s.in.SuggestedSolar)
}

func (s *sanitizer) intervalTime() {
	t, err := toTime(s.vars[KeyIntervalTime])
	if err != nil {
		s.in.Month = UnknownMonth
		s.in.Hour = UnknownHour
		s.degrade(KeyIntervalTime, err, "unknown month and hour")
	} else {
		s.in.Month = int(t.Month())
		s.in.Hour = t.Hour()
	}
	s.log = s.log.Addf("Month: %d, Hour: %d.", s.in.Month, s.in.Hour)
}

func (s *sanitizer) sun() {
	s.in.SunriseHour = s.settings.DefaultSunriseHour
	if t, err := toTime(s.vars[KeySunrise]); err != nil {
		s.degrade(KeySunrise, err, "hour "+strconv.Itoa(s.settings.DefaultSunriseHour))
	} else {
		s.in.SunriseHour = t.Hour()
	}
	s.in.SunsetHour = s.settings.DefaultSunsetHour
	if t, err := toTime(s.vars[KeySunset]); err != nil {
		s.degrade(KeySunset, err, "hour "+strconv.Itoa(s.settings.DefaultSunsetHour))
	} else {
		s.in.SunsetHour = t.Hour()
	}
	s.log = s.log.Addf("Sunrise hour: %d. Sunset hour: %d.", s.in.SunriseHour, s.in.SunsetHour)
}

func (s *sanitizer) rrp() {
	rrp, err := toFloat(s.vars[KeyRRP])
	if err == nil {
		s.in.RRP = rrp
		s.in.RRPSource = RRPSourceLive
		s.log = s.log.Addf("RRP: $%s/MWh.", formatNumber(rrp))
		return
	}
	if stats, ok := s.table.Lookup(s.in.Month, s.in.Hour); ok {
		s.in.RRP = stats.Mean
		s.in.RRPSource = RRPSourceHistorical
		s.degrade(KeyRRP, err, "historical mean $"+formatNumber(stats.Mean)+"/MWh")
		return
	}
	s.in.RRP = 0
	s.in.RRPSource = RRPSourceUnavailable
	s.degrade(KeyRRP, err, "0 as no historical price is known for this hour")
}

func (s *sanitizer) thresholds() {
	s.in.LowRRPThreshold = s.settings.LowRRPThreshold
	s.in.SecondaryRRPThreshold = s.settings.SecondaryRRPThreshold

	type numbered struct {
		key string
		n   int
	}
	var keys []numbered
	for k := range s.vars {
		suffix, ok := strings.CutPrefix(k, thresholdPrefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		keys = append(keys, numbered{key: k, n: n})
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].n != keys[j].n {
			return keys[i].n < keys[j].n
		}
		return keys[i].key < keys[j].key
	})

	for _, k := range keys {
		v, err := toFloat(s.vars[k.key])
		switch k.n {
		case 1:
			if err != nil {
				s.degrade(k.key, err, formatNumber(s.settings.LowRRPThreshold))
				continue
			}
			s.in.LowRRPThreshold = v
		case 2:
			if err != nil {
				s.degrade(k.key, err, formatNumber(s.settings.SecondaryRRPThreshold))
				continue
			}
			s.in.SecondaryRRPThreshold = v
		default:
			if err != nil {
				s.degrade(k.key, err, "ignoring it")
				continue
			}
			s.in.ExtraThresholds = append(s.in.ExtraThresholds, Threshold{Name: k.key, Value: v})
		}
	}

	s.log = s.log.Addf(
		"Threshold 1: %s. Threshold 2: %s.",
		formatNumber(s.in.LowRRPThreshold),
		formatNumber(s.in.SecondaryRRPThreshold),
	)
	for _, t := range s.in.ExtraThresholds {
		s.log = s.log.Addf("%s: %s.", t.Name, formatNumber(t.Value))
	}
}

func (s *sanitizer) forecast() {
	fc, err := toFloats(s.vars[KeyBuyForecast])
	if err != nil {
		s.in.BuyForecast = []float64{}
		s.degrade(KeyBuyForecast, err, "an empty forecast")
		return
	}
	s.in.BuyForecast = fc
	s.log = s.log.Addf("Buy forecast: %d entries, next %sc/kWh.", len(fc), formatNumber(fc[0]))
}

func (s *sanitizer) prices() {
	if buy, err := toFloat(s.vars[KeyBuyPrice]); err != nil {
		s.in.BuyPrice = math.NaN()
		s.degrade(KeyBuyPrice, err, "NaN so no price rule applies")
	} else {
		s.in.BuyPrice = buy
		s.log = s.log.Addf("Buy price: %sc/kWh.", formatNumber(buy))
	}
	if sell, err := toFloat(s.vars[KeySellPrice]); err != nil {
		s.in.SellPrice = math.NaN()
		s.degrade(KeySellPrice, err, "NaN so no price rule applies")
	} else {
		s.in.SellPrice = sell
		s.log = s.log.Addf("Sell price: %sc/kWh.", formatNumber(sell))
	}
}

func (s *sanitizer) priceHistory() {
	h, err := toFloats(s.vars[KeyPriceHistory])
	if err != nil {
		s.in.PriceHistory = []float64{}
		s.degrade(KeyPriceHistory, err, "an empty history")
		return
	}
	s.in.PriceHistory = h
	s.log = s.log.Addf("Price history: %d entries.", len(h))
}

func (s *sanitizer) battery() {
	soc, err := toFloat(s.vars[KeyBatterySOC])
	if err == nil && (soc < 0 || soc > 100) {
		err = fmt.Errorf("%s is out of range 0-100", formatNumber(soc))
	}
	if err != nil {
		s.in.BatterySOC = math.NaN()
		s.degrade(KeyBatterySOC, err, "NaN so the battery is treated as full with no surplus")
	} else {
		s.in.BatterySOC = soc
		s.log = s.log.Addf("Battery SOC: %s%%.", formatNumber(soc))
	}

	capacity, err := toFloat(s.vars[KeyBatteryCapacity])
	if err == nil && capacity < 0 {
		err = fmt.Errorf("%s is negative", formatNumber(capacity))
	}
	if err != nil {
		s.in.BatteryCapacity = 0
		s.degrade(KeyBatteryCapacity, err, "0")
		return
	}
	s.in.BatteryCapacity = capacity
	s.log = s.log.Addf("Battery capacity: %sWh.", formatNumber(capacity))
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
