package controller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gridpolicy/gridpolicy/pkg/history"
	"github.com/gridpolicy/gridpolicy/pkg/log"
	"github.com/gridpolicy/gridpolicy/pkg/reason"
	"github.com/gridpolicy/gridpolicy/pkg/sanitize"
	"github.com/gridpolicy/gridpolicy/pkg/signals"
	"github.com/gridpolicy/gridpolicy/pkg/types"
)

// Controller handles the decision-making logic for one site. It holds no
// mutable state so Decide can be called concurrently.
type Controller struct {
	settings types.Settings
	table    history.Table
	rules    []Rule
}

// NewController creates a Controller with the default settings and the
// built-in historical price table.
func NewController() *Controller {
	return &Controller{
		settings: types.DefaultSettings(),
		table:    history.QLD2023(),
		rules:    DefaultRules(),
	}
}

// New creates a Controller with the given settings and historical price table.
func New(settings types.Settings, table history.Table) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		settings: settings,
		table:    table,
		rules:    DefaultRules(),
	}, nil
}

// Settings returns the settings the controller decides with.
func (c *Controller) Settings() types.Settings {
	return c.settings
}

// Decide determines the action for one interval. It never fails: malformed
// variables are replaced by defaults and every substitution is noted in the
// returned reason.
func (c *Controller) Decide(ctx context.Context, vars types.Variables) (decision types.Decision) {
	notes := reason.Log{}
	defer func() {
		// a panicking rule or signal must still leave the host with a decision
		if r := recover(); r != nil {
			log.Ctx(ctx).ErrorContext(ctx, "decision panicked", slog.Any("panic", r))
			notes = notes.Addf("Decision failed (%v). Default to auto.", r)
			decision = finalize(notes, DefaultRule(), decision.Degraded)
		}
	}()

	in, notes := sanitize.Sanitize(vars, c.settings, c.table, notes)
	decision.Degraded = in.Degraded
	if len(in.Degraded) > 0 {
		log.Ctx(ctx).DebugContext(ctx, "inputs degraded", slog.Any("fields", in.Degraded))
	}

	sig, notes := signals.Calculate(in, c.settings, c.table, notes)
	log.Ctx(ctx).DebugContext(
		ctx,
		"signals calculated",
		slog.Int("month", in.Month),
		slog.Int("hour", in.Hour),
		slog.String("period", string(sig.Period)),
		slog.Float64("rrp", in.RRP),
		slog.String("rrpSource", string(in.RRPSource)),
		slog.Float64("buyPrice", in.BuyPrice),
		slog.Float64("sellPrice", in.SellPrice),
		slog.Float64("soc", in.BatterySOC),
		slog.Float64("zScore", sig.ZScore),
		slog.Float64("movingAverage", sig.MovingAverage),
		slog.Float64("forecastAverage", sig.ForecastAverage),
		slog.Bool("spiking", sig.Spiking),
		slog.Float64("reserve", sig.ReservePercent),
		slog.Bool("surplus", sig.Surplus),
	)

	state := State{Inputs: in, Signals: sig, Settings: c.settings}
	rule := Evaluate(c.rules, state)
	notes = notes.Add(rule.explain(state))
	log.Ctx(ctx).DebugContext(
		ctx,
		"rule matched",
		slog.String("rule", string(rule.Reason)),
		slog.String("action", string(rule.Action)),
		slog.String("solar", string(rule.Solar)),
	)

	return finalize(notes, rule, in.Degraded)
}

func finalize(notes reason.Log, rule Rule, degraded []string) types.Decision {
	notes = notes.Add(fmt.Sprintf("Final action: %s. Final solar: %s.", rule.Action, rule.Solar))
	return types.Decision{
		Action:   rule.Action,
		Solar:    rule.Solar,
		Reason:   notes.String(),
		Rule:     rule.Reason,
		Degraded: degraded,
	}
}
