// Command decide evaluates a single interval snapshot and prints the decision.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gridpolicy/gridpolicy/pkg/controller"
	"github.com/gridpolicy/gridpolicy/pkg/log"
	"github.com/gridpolicy/gridpolicy/pkg/types"

	"github.com/levenlabs/go-lflag"
)

func main() {
	c := controller.Configured()
	snapshot := lflag.String("snapshot", "-", "JSON file of interval variables, or - for stdin")
	simulateDay := lflag.Bool("simulate-day", false, "Replay the snapshot over the next 24 hours at historical prices")
	simulateStep := lflag.String("simulate-step", "10", "SOC percent moved per hour of charging or exporting when simulating")

	lflag.Configure()

	level, err := log.LLogLevel()
	if err != nil {
		panic(err)
	}
	log.SetDefaultLogLevel(level)

	ctx := context.Background()
	vars, err := readSnapshot(*snapshot)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to read snapshot", slog.Any("error", err))
		os.Exit(1)
	}

	var out any
	if *simulateDay {
		step, err := strconv.ParseFloat(*simulateStep, 64)
		if err != nil || step < 0 {
			log.Ctx(ctx).ErrorContext(ctx, "invalid simulate-step", slog.String("step", *simulateStep))
			os.Exit(1)
		}
		out = c.SimulateDay(ctx, vars, simulationStart(vars), step)
	} else {
		out = c.Decide(ctx, vars)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to write decision", slog.Any("error", err))
		os.Exit(1)
	}
}

// simulationStart uses the snapshot's interval time when it has one.
func simulationStart(vars types.Variables) time.Time {
	if s, ok := vars["interval_time"].(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
	}
	return time.Now()
}

func readSnapshot(path string) (types.Variables, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot: %w", err)
		}
		defer f.Close()
		r = f
	}
	return decodeSnapshot(r)
}

func decodeSnapshot(r io.Reader) (types.Variables, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var body any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	obj, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("snapshot must be a JSON object, got %T", body)
	}
	return types.Variables(obj), nil
}
