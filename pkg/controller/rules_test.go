package controller

import (
	"math"
	"testing"

	"github.com/gridpolicy/gridpolicy/pkg/sanitize"
	"github.com/gridpolicy/gridpolicy/pkg/signals"
	"github.com/gridpolicy/gridpolicy/pkg/types"
	"github.com/gridpolicy/gridpolicy/pkg/windows"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseState matches only the default rule.
func baseState() State {
	return State{
		Inputs: sanitize.Inputs{
			Month:                 1,
			Hour:                  4,
			RRP:                   50,
			RRPSource:             sanitize.RRPSourceLive,
			LowRRPThreshold:       -25.7,
			SecondaryRRPThreshold: -4.7,
			BuyPrice:              20,
			SellPrice:             10,
			BatterySOC:            50,
		},
		Signals: signals.Signals{
			Period:         windows.PeriodNight,
			ReservePercent: 10,
			Surplus:        true,
		},
		Settings: types.DefaultSettings(),
	}
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	t.Run("Order", func(t *testing.T) {
		var got []types.ActionReason
		for _, r := range rules {
			got = append(got, r.Reason)
			assert.Equal(t, types.SolarModeMaximize, r.Solar, r.Reason)
		}
		assert.Equal(t, []types.ActionReason{
			types.ActionReasonCheapSunnyImport,
			types.ActionReasonOpportunisticBuy,
			types.ActionReasonAlwaysSell,
			types.ActionReasonSpikeSell,
			types.ActionReasonSecondaryThresholdImport,
			types.ActionReasonDaytimeCharge,
			types.ActionReasonPrepareForPeak,
			types.ActionReasonPeakSell,
			types.ActionReasonNighttimeCharge,
			types.ActionReasonDefault,
		}, got)
	})

	t.Run("Base State Is Default", func(t *testing.T) {
		r := Evaluate(rules, baseState())
		assert.Equal(t, types.ActionReasonDefault, r.Reason)
		assert.Equal(t, types.ActionAuto, r.Action)
	})

	tests := []struct {
		name   string
		modify func(*State)
		reason types.ActionReason
		action types.Action
	}{
		{
			name: "Cheap Sunny Import",
			modify: func(s *State) {
				s.Inputs.Hour = 11
				s.Signals.Period = windows.PeriodDay
				s.Inputs.RRP = -30
			},
			reason: types.ActionReasonCheapSunnyImport,
			action: types.ActionImport,
		},
		{
			name: "Cheap RRP Outside Sunny Hours",
			modify: func(s *State) {
				s.Inputs.RRP = -30
			},
			reason: types.ActionReasonDefault,
			action: types.ActionAuto,
		},
		{
			name: "Snapshot Threshold Overrides Settings",
			modify: func(s *State) {
				s.Inputs.Hour = 11
				s.Signals.Period = windows.PeriodDay
				s.Inputs.RRP = 10
				s.Inputs.LowRRPThreshold = 20
			},
			reason: types.ActionReasonCheapSunnyImport,
			action: types.ActionImport,
		},
		{
			name: "Opportunistic Buy",
			modify: func(s *State) {
				s.Inputs.BuyPrice = 4.99
			},
			reason: types.ActionReasonOpportunisticBuy,
			action: types.ActionImport,
		},
		{
			name: "Opportunistic Buy Needs Room",
			modify: func(s *State) {
				s.Inputs.BuyPrice = 4.99
				s.Inputs.BatterySOC = 100
			},
			reason: types.ActionReasonNighttimeCharge,
			action: types.ActionCharge,
		},
		{
			name: "Always Sell",
			modify: func(s *State) {
				s.Inputs.RRP = 1000.01
			},
			reason: types.ActionReasonAlwaysSell,
			action: types.ActionExport,
		},
		{
			name: "Always Sell Needs Surplus",
			modify: func(s *State) {
				s.Inputs.RRP = 5000
				s.Signals.Surplus = false
			},
			reason: types.ActionReasonDefault,
			action: types.ActionAuto,
		},
		{
			name: "Spike Sell",
			modify: func(s *State) {
				s.Signals.Spiking = true
				s.Inputs.BuyPrice = 35
			},
			reason: types.ActionReasonSpikeSell,
			action: types.ActionExport,
		},
		{
			name: "Spike Without High Buy Price",
			modify: func(s *State) {
				s.Signals.Spiking = true
				s.Inputs.BuyPrice = 30
			},
			reason: types.ActionReasonDefault,
			action: types.ActionAuto,
		},
		{
			name: "Secondary Threshold Import",
			modify: func(s *State) {
				s.Inputs.Hour = 11
				s.Signals.Period = windows.PeriodDay
				s.Inputs.RRP = -10
				s.Inputs.BuyPrice = 10
			},
			reason: types.ActionReasonSecondaryThresholdImport,
			action: types.ActionImport,
		},
		{
			name: "Daytime Charge",
			modify: func(s *State) {
				s.Inputs.Hour = 9
				s.Signals.Period = windows.PeriodDay
				s.Inputs.BuyPrice = 14.99
			},
			reason: types.ActionReasonDaytimeCharge,
			action: types.ActionCharge,
		},
		{
			name: "Prepare For Peak",
			modify: func(s *State) {
				s.Inputs.Hour = 13
				s.Signals.Period = windows.PeriodDay
				s.Signals.Surplus = false
			},
			reason: types.ActionReasonPrepareForPeak,
			action: types.ActionImport,
		},
		{
			name: "Prepare For Peak Skipped With Surplus",
			modify: func(s *State) {
				s.Inputs.Hour = 13
				s.Signals.Period = windows.PeriodDay
			},
			reason: types.ActionReasonDefault,
			action: types.ActionAuto,
		},
		{
			name: "Peak Sell",
			modify: func(s *State) {
				s.Inputs.Hour = 17
				s.Signals.Period = windows.PeriodPeak
				s.Inputs.SellPrice = 30.01
			},
			reason: types.ActionReasonPeakSell,
			action: types.ActionExport,
		},
		{
			name: "Peak Sell Below Floor",
			modify: func(s *State) {
				s.Inputs.Hour = 17
				s.Signals.Period = windows.PeriodPeak
				s.Inputs.SellPrice = 30
			},
			reason: types.ActionReasonDefault,
			action: types.ActionAuto,
		},
		{
			name: "Nighttime Charge",
			modify: func(s *State) {
				s.Inputs.BuyPrice = 10
			},
			reason: types.ActionReasonNighttimeCharge,
			action: types.ActionCharge,
		},
		{
			name: "Unknown Hour Is In No Window",
			modify: func(s *State) {
				s.Inputs.Hour = sanitize.UnknownHour
				s.Signals.Period = windows.PeriodNone
				s.Inputs.BuyPrice = 10
			},
			reason: types.ActionReasonDefault,
			action: types.ActionAuto,
		},
		{
			name: "Unknown SOC Skips Prepare For Peak",
			modify: func(s *State) {
				s.Inputs.Hour = 13
				s.Signals.Period = windows.PeriodDay
				s.Inputs.BatterySOC = math.NaN()
				s.Signals.Surplus = false
			},
			reason: types.ActionReasonDefault,
			action: types.ActionAuto,
		},
		{
			name: "Unknown SOC Blocks Cheap Sunny Import",
			modify: func(s *State) {
				s.Inputs.Hour = 11
				s.Signals.Period = windows.PeriodDay
				s.Inputs.RRP = -30
				s.Inputs.BuyPrice = 20
				s.Inputs.BatterySOC = math.NaN()
				s.Signals.Surplus = false
			},
			reason: types.ActionReasonDefault,
			action: types.ActionAuto,
		},
		{
			name: "Unknown Prices Match Nothing",
			modify: func(s *State) {
				s.Signals.Spiking = true
				s.Inputs.BuyPrice = math.NaN()
				s.Inputs.SellPrice = math.NaN()
			},
			reason: types.ActionReasonDefault,
			action: types.ActionAuto,
		},
		{
			name: "Always Sell Beats Peak Sell",
			modify: func(s *State) {
				s.Inputs.Hour = 17
				s.Signals.Period = windows.PeriodPeak
				s.Inputs.SellPrice = 90
				s.Inputs.RRP = 2000
			},
			reason: types.ActionReasonAlwaysSell,
			action: types.ActionExport,
		},
		{
			name: "Secondary Import Beats Daytime Charge",
			modify: func(s *State) {
				s.Inputs.Hour = 12
				s.Signals.Period = windows.PeriodDay
				s.Inputs.RRP = -5
				s.Inputs.BuyPrice = 6
			},
			reason: types.ActionReasonSecondaryThresholdImport,
			action: types.ActionImport,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := baseState()
			tc.modify(&s)
			r := Evaluate(rules, s)
			assert.Equal(t, tc.reason, r.Reason)
			assert.Equal(t, tc.action, r.Action)
			assert.NotEmpty(t, r.explain(s))
		})
	}
}

// Peak hours are carved out before night, so hour 20 belongs to peak only and
// the nighttime charge rule never fires there even when power is cheap.
func TestHour20IsPeakNotNight(t *testing.T) {
	settings := types.DefaultSettings()
	w, err := windows.Partition(windows.NewHourSet(settings.PeakHours...), 6, settings.MorningPaddingHours)
	require.NoError(t, err)
	require.Equal(t, windows.PeriodPeak, w.Period(20))
	assert.False(t, w.Night.Contains(20))
	assert.True(t, w.Night.Contains(21))

	s := baseState()
	s.Inputs.Hour = 20
	s.Inputs.BuyPrice = 10
	s.Signals.Period = w.Period(20)
	s.Signals.Surplus = false
	assert.Equal(t, types.ActionReasonDefault, Evaluate(DefaultRules(), s).Reason)

	s.Inputs.Hour = 21
	s.Signals.Period = w.Period(21)
	assert.Equal(t, types.ActionReasonNighttimeCharge, Evaluate(DefaultRules(), s).Reason)
}

func TestEvaluate(t *testing.T) {
	t.Run("Empty Table", func(t *testing.T) {
		r := Evaluate(nil, baseState())
		assert.Equal(t, types.ActionReasonDefault, r.Reason)
	})

	t.Run("Skips Malformed Rules", func(t *testing.T) {
		r := Evaluate([]Rule{
			{Reason: "noMatch", Action: types.ActionExport, Solar: types.SolarModeMaximize},
			{Reason: "badAction", Action: "sell", Solar: types.SolarModeMaximize, Match: func(State) bool { return true }},
		}, baseState())
		assert.Equal(t, types.ActionReasonDefault, r.Reason)
	})

	t.Run("First Match Wins", func(t *testing.T) {
		always := func(State) bool { return true }
		r := Evaluate([]Rule{
			{Reason: "first", Action: types.ActionStopped, Solar: types.SolarModeCurtail, Match: always},
			{Reason: "second", Action: types.ActionExport, Solar: types.SolarModeMaximize, Match: always},
		}, baseState())
		assert.Equal(t, types.ActionReason("first"), r.Reason)
		assert.Equal(t, types.SolarModeCurtail, r.Solar)
		assert.Equal(t, "Rule first matched.", r.explain(baseState()))
	})

	t.Run("Default Rule", func(t *testing.T) {
		r := DefaultRule()
		require.NotNil(t, r.Match)
		assert.True(t, r.Match(State{}))
		assert.Equal(t, "Default behavior.", r.explain(State{}))
	})
}
