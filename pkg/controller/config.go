package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gridpolicy/gridpolicy/pkg/history"
	"github.com/gridpolicy/gridpolicy/pkg/types"
	"github.com/levenlabs/go-lflag"
	"gopkg.in/yaml.v3"
)

// Configured sets up the Controller based on flags.
func Configured() *Controller {
	settingsPath := lflag.String("policy-settings", "", "YAML file overriding the default policy settings")
	pricesPath := lflag.String("historical-prices", "", "CSV file (Month,Hour,Average_RRP,SD_RRP) replacing the built-in Queensland price table")
	cycloneMode := lflag.Bool("cyclone-mode", false, "Hold the flat cyclone reserve SOC for every hour")

	c := &Controller{}
	lflag.Do(func() {
		settings := types.DefaultSettings()
		if *settingsPath != "" {
			var err error
			settings, err = LoadSettingsFile(*settingsPath)
			if err != nil {
				panic(fmt.Sprintf("policy settings failed to load: %v", err))
			}
		}
		if *cycloneMode {
			settings.CycloneMode = true
		}

		table := history.QLD2023()
		if *pricesPath != "" {
			var err error
			table, err = LoadTableFile(*pricesPath)
			if err != nil {
				panic(fmt.Sprintf("historical prices failed to load: %v", err))
			}
		}

		nc, err := New(settings, table)
		if err != nil {
			panic(fmt.Sprintf("policy settings validation failed: %v", err))
		}
		*c = *nc
	})

	return c
}

// LoadSettings reads YAML settings on top of DefaultSettings. Keys that don't
// match a setting are rejected so typos don't silently fall back to defaults.
func LoadSettings(r io.Reader) (types.Settings, error) {
	settings := types.DefaultSettings()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return types.Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return types.Settings{}, err
	}
	return settings, nil
}

// LoadSettingsFile reads YAML settings from path.
func LoadSettingsFile(path string) (types.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	return LoadSettings(bytes.NewReader(data))
}

// LoadTableFile reads a historical price table CSV from path.
func LoadTableFile(path string) (history.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return history.Table{}, fmt.Errorf("failed to open historical prices: %w", err)
	}
	defer f.Close()
	t, err := history.LoadCSV(f)
	if err != nil {
		return history.Table{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return t, nil
}
