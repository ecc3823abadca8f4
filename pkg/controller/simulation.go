package controller

import (
	"context"
	"log/slog"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/gridpolicy/gridpolicy/pkg/log"
	"github.com/gridpolicy/gridpolicy/pkg/reason"
	"github.com/gridpolicy/gridpolicy/pkg/sanitize"
	"github.com/gridpolicy/gridpolicy/pkg/types"
)

// SimHour represents one hour of a simulated day.
type SimHour struct {
	TS         time.Time          `json:"ts"`
	Hour       int                `json:"hour"`
	RRP        float64            `json:"rrp"`
	BuyPrice   float64            `json:"buyPrice"`
	SellPrice  float64            `json:"sellPrice"`
	BatterySOC float64            `json:"batterySOC"`
	Action     types.Action       `json:"action"`
	Solar      types.SolarMode    `json:"solar"`
	Rule       types.ActionReason `json:"rule"`
}

// SimulateDay replays the policy for the 24 hours starting at start using the
// historical mean spot price for each hour. Retail prices come from base when
// it has usable ones and otherwise follow the spot price (RRP/10 c/kWh). The battery
// moves stepPercent SOC per hour when the policy imports, charges, exports or
// discharges.
func (c *Controller) SimulateDay(ctx context.Context, base types.Variables, start time.Time, stepPercent float64) []SimHour {
	in, _ := sanitize.Sanitize(base, c.settings, c.table, reason.Log{})
	// an unusable SOC starts the day full
	soc := in.BatterySOC
	if slices.Contains(in.Degraded, sanitize.KeyBatterySOC) {
		soc = 100
	}
	fixedBuy := !slices.Contains(in.Degraded, sanitize.KeyBuyPrice)
	fixedSell := !slices.Contains(in.Degraded, sanitize.KeySellPrice)

	simData := make([]SimHour, 0, 24)
	simTime := start.Truncate(time.Hour)
	for i := 0; i < 24; i++ {
		vars := maps.Clone(base)
		if vars == nil {
			vars = types.Variables{}
		}
		vars[sanitize.KeyIntervalTime] = simTime
		vars[sanitize.KeyBatterySOC] = soc

		stats, ok := c.table.Lookup(int(simTime.Month()), simTime.Hour())
		if ok {
			vars[sanitize.KeyRRP] = stats.Mean
			if !fixedBuy {
				vars[sanitize.KeyBuyPrice] = stats.Mean / 10
			}
			if !fixedSell {
				vars[sanitize.KeySellPrice] = stats.Mean / 10
			}
		}

		d := c.Decide(ctx, vars)
		hourIn, _ := sanitize.Sanitize(vars, c.settings, c.table, reason.Log{})
		simData = append(simData, SimHour{
			TS:         simTime,
			Hour:       simTime.Hour(),
			RRP:        hourIn.RRP,
			BuyPrice:   hourIn.BuyPrice,
			SellPrice:  hourIn.SellPrice,
			BatterySOC: soc,
			Action:     d.Action,
			Solar:      d.Solar,
			Rule:       d.Rule,
		})

		soc = nextSOC(soc, d.Action, stepPercent)
		simTime = simTime.Add(time.Hour)
	}

	log.Ctx(ctx).DebugContext(
		ctx,
		"simulated day",
		slog.Time("start", start),
		slog.Float64("startSOC", in.BatterySOC),
		slog.Float64("endSOC", soc),
	)
	return simData
}

func nextSOC(soc float64, action types.Action, step float64) float64 {
	switch action {
	case types.ActionImport, types.ActionCharge:
		soc += step
	case types.ActionExport, types.ActionDischarge:
		soc -= step
	}
	return math.Max(0, math.Min(100, soc))
}
