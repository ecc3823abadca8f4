package controller

import (
	"fmt"
	"math"
	"slices"

	"github.com/gridpolicy/gridpolicy/pkg/sanitize"
	"github.com/gridpolicy/gridpolicy/pkg/signals"
	"github.com/gridpolicy/gridpolicy/pkg/types"
	"github.com/gridpolicy/gridpolicy/pkg/windows"
)

// State is the read-only view of one interval that rules are evaluated against.
type State struct {
	Inputs   sanitize.Inputs
	Signals  signals.Signals
	Settings types.Settings
}

// batteryFull is also true for an unknown SOC so nothing imports blind.
func (s State) batteryFull() bool {
	return !(s.Inputs.BatterySOC < 100)
}

func (s State) socKnown() bool {
	return !math.IsNaN(s.Inputs.BatterySOC)
}

func (s State) inSunniest() bool {
	return slices.Contains(s.Settings.SunniestHours, s.Inputs.Hour)
}

func (s State) inPrepareForPeak() bool {
	return slices.Contains(s.Settings.PrepareForPeakHours, s.Inputs.Hour)
}

// Rule is one guarded entry in the decision table.
type Rule struct {
	Reason types.ActionReason
	Action types.Action
	Solar  types.SolarMode
	// Match reports whether the rule applies.
	Match func(State) bool
	// Explain returns the note added to the reason log when the rule matches.
	Explain func(State) string
}

func (r Rule) explain(s State) string {
	if r.Explain == nil {
		return fmt.Sprintf("Rule %s matched.", r.Reason)
	}
	return r.Explain(s)
}

// DefaultRule always matches and hands control back to the inverter.
func DefaultRule() Rule {
	return Rule{
		Reason: types.ActionReasonDefault,
		Action: types.ActionAuto,
		Solar:  types.SolarModeMaximize,
		Match:  func(State) bool { return true },
		Explain: func(State) string {
			return "Default behavior."
		},
	}
}

// DefaultRules returns the decision table in precedence order. Cheap charging
// comes first, then high price exports, then scheduled charging.
func DefaultRules() []Rule {
	return []Rule{
		// Rule 1: wholesale price is very low during the sunniest hours
		{
			Reason: types.ActionReasonCheapSunnyImport,
			Action: types.ActionImport,
			Solar:  types.SolarModeMaximize,
			Match: func(s State) bool {
				return s.Inputs.RRP < s.Inputs.LowRRPThreshold && !s.batteryFull() && s.inSunniest()
			},
			Explain: func(s State) string {
				return fmt.Sprintf(
					"RRP $%.2f/MWh below threshold 1 ($%.2f/MWh) in sunny hour.",
					s.Inputs.RRP,
					s.Inputs.LowRRPThreshold,
				)
			},
		},
		// Rule 2: buy price is below the opportunistic threshold
		{
			Reason: types.ActionReasonOpportunisticBuy,
			Action: types.ActionImport,
			Solar:  types.SolarModeMaximize,
			Match: func(s State) bool {
				return s.Inputs.BuyPrice < s.Settings.OpportunisticBuyCents && !s.batteryFull()
			},
			Explain: func(s State) string {
				return fmt.Sprintf("Buy price below %gc.", s.Settings.OpportunisticBuyCents)
			},
		},
		// Rule 3: wholesale price is extreme and there is energy to spare
		{
			Reason: types.ActionReasonAlwaysSell,
			Action: types.ActionExport,
			Solar:  types.SolarModeMaximize,
			Match: func(s State) bool {
				return s.Inputs.RRP > s.Settings.AlwaysSellRRP && s.Signals.Surplus
			},
			Explain: func(s State) string {
				return fmt.Sprintf("RRP > $%g/MWh. Opportunistic sell.", s.Settings.AlwaysSellRRP)
			},
		},
		// Rule 4: price is running hotter than history and forecast
		{
			Reason: types.ActionReasonSpikeSell,
			Action: types.ActionExport,
			Solar:  types.SolarModeMaximize,
			Match: func(s State) bool {
				return s.Signals.Spiking && s.Inputs.BuyPrice > s.Settings.SellMinHardCents && s.Signals.Surplus
			},
			Explain: func(State) string {
				return "Price spike and surplus."
			},
		},
		// Rule 5: wholesale price is low during the sunniest hours and retail is
		// under the soft cap
		{
			Reason: types.ActionReasonSecondaryThresholdImport,
			Action: types.ActionImport,
			Solar:  types.SolarModeMaximize,
			Match: func(s State) bool {
				return s.Inputs.RRP < s.Inputs.SecondaryRRPThreshold &&
					s.inSunniest() &&
					!s.batteryFull() &&
					s.Inputs.BuyPrice < s.Settings.BuyMaxSoftCents
			},
			Explain: func(s State) string {
				return fmt.Sprintf(
					"RRP below threshold 2 ($%.2f/MWh) and buy price below %gc. Import.",
					s.Inputs.SecondaryRRPThreshold,
					s.Settings.BuyMaxSoftCents,
				)
			},
		},
		// Rule 6
		{
			Reason: types.ActionReasonDaytimeCharge,
			Action: types.ActionCharge,
			Solar:  types.SolarModeMaximize,
			Match: func(s State) bool {
				return s.Signals.Period == windows.PeriodDay && s.Inputs.BuyPrice < s.Settings.BuyMaxSoftCents
			},
			Explain: func(State) string {
				return "Daytime charge below soft max buy price."
			},
		},
		// Rule 7: top up ahead of the peak regardless of price
		{
			Reason: types.ActionReasonPrepareForPeak,
			Action: types.ActionImport,
			Solar:  types.SolarModeMaximize,
			Match: func(s State) bool {
				return s.inPrepareForPeak() && s.socKnown() && !s.Signals.Surplus
			},
			Explain: func(State) string {
				return "Afternoon charge before peak regardless of price."
			},
		},
		// Rule 8
		{
			Reason: types.ActionReasonPeakSell,
			Action: types.ActionExport,
			Solar:  types.SolarModeMaximize,
			Match: func(s State) bool {
				return s.Signals.Period == windows.PeriodPeak &&
					s.Signals.Surplus &&
					s.Inputs.SellPrice > s.Settings.SellMinHardCents
			},
			Explain: func(State) string {
				return "Peak sell price above sell threshold and surplus."
			},
		},
		// Rule 9
		{
			Reason: types.ActionReasonNighttimeCharge,
			Action: types.ActionCharge,
			Solar:  types.SolarModeMaximize,
			Match: func(s State) bool {
				return s.Signals.Period == windows.PeriodNight && s.Inputs.BuyPrice < s.Settings.BuyMaxSoftCents
			},
			Explain: func(State) string {
				return "Nighttime low price. Use grid."
			},
		},
		DefaultRule(),
	}
}

// Evaluate returns the first rule that matches. Rules without a predicate or
// with an unknown action are skipped, and DefaultRule is returned when nothing
// matches.
func Evaluate(rules []Rule, s State) Rule {
	for _, r := range rules {
		if r.Match == nil || !r.Action.Valid() || !r.Solar.Valid() {
			continue
		}
		if r.Match(s) {
			return r
		}
	}
	return DefaultRule()
}
