package types

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Settings is the configuration surface a deployment operator tunes. Prices
// named Cents are retail c/kWh, prices named RRP are wholesale $/MWh.
type Settings struct {
	// Hour windows (0-23)
	SunniestHours       []int `json:"sunniestHours" yaml:"sunniestHours" validate:"dive,gte=0,lte=23"`
	PeakHours           []int `json:"peakHours" yaml:"peakHours" validate:"required,min=1,dive,gte=0,lte=23"`
	PrepareForPeakHours []int `json:"prepareForPeakHours" yaml:"prepareForPeakHours" validate:"dive,gte=0,lte=23"`
	// Hours after sunrise that still count as night.
	MorningPaddingHours int `json:"morningPaddingHours" yaml:"morningPaddingHours" validate:"gte=0,lte=23"`

	// Price Settings
	// Always import when the buy price is under this amount.
	OpportunisticBuyCents float64 `json:"opportunisticBuyCents" yaml:"opportunisticBuyCents"`
	// Prefer to buy under this amount.
	BuyMaxSoftCents float64 `json:"buyMaxSoftCents" yaml:"buyMaxSoftCents"`
	// Never sell below this amount.
	SellMinHardCents float64 `json:"sellMinHardCents" yaml:"sellMinHardCents"`
	// Export whenever the spot price is above this amount and there is surplus.
	AlwaysSellRRP float64 `json:"alwaysSellRRP" yaml:"alwaysSellRRP"`
	// Used when the host doesn't supply threshold_1 / threshold_2.
	LowRRPThreshold       float64 `json:"lowRRPThreshold" yaml:"lowRRPThreshold"`
	SecondaryRRPThreshold float64 `json:"secondaryRRPThreshold" yaml:"secondaryRRPThreshold"`

	// Reserve Settings
	// Battery SOC (%) kept for self use for each hour of the day. Nothing is
	// exported below this level.
	ReserveSOC []float64 `json:"reserveSOC" yaml:"reserveSOC" validate:"len=24,dive,gte=0,lte=100"`
	// CycloneMode replaces ReserveSOC with the flat CycloneReserveSOC.
	CycloneMode       bool    `json:"cycloneMode" yaml:"cycloneMode"`
	CycloneReserveSOC float64 `json:"cycloneReserveSOC" yaml:"cycloneReserveSOC" validate:"gte=0,lte=100"`

	// Signal Settings
	// Sell price must exceed both reference prices multiplied by this ratio to
	// count as a spike.
	SpikeRatio float64 `json:"spikeRatio" yaml:"spikeRatio" validate:"gt=0"`
	// Number of history samples (5 minute resolution) in the moving average.
	MovingAverageSamples int `json:"movingAverageSamples" yaml:"movingAverageSamples" validate:"gte=1"`
	// Number of forecast samples averaged for the near-term price.
	ForecastLookahead int `json:"forecastLookahead" yaml:"forecastLookahead" validate:"gte=1"`

	// Used when the host doesn't supply sunrise / sunset.
	DefaultSunriseHour int `json:"defaultSunriseHour" yaml:"defaultSunriseHour" validate:"gte=0,lte=23"`
	DefaultSunsetHour  int `json:"defaultSunsetHour" yaml:"defaultSunsetHour" validate:"gte=0,lte=23"`
}

// DefaultSettings returns the settings tuned for a Queensland household on a
// wholesale-linked retail plan.
func DefaultSettings() Settings {
	return Settings{
		SunniestHours:         []int{10, 11, 12, 13, 14},
		PeakHours:             []int{16, 17, 18, 19, 20},
		PrepareForPeakHours:   []int{12, 13, 14, 15},
		MorningPaddingHours:   1,
		OpportunisticBuyCents: 5.0,
		BuyMaxSoftCents:       15.0,
		SellMinHardCents:      30.0,
		AlwaysSellRRP:         1000.0,
		LowRRPThreshold:       -25.7,
		SecondaryRRPThreshold: -4.7,
		ReserveSOC: []float64{
			10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, // 00-11
			60, 70, 80, 90, // 12-15 protect SOC ahead of the peak
			80, 60, 40, 40, 30, // 16-20 peak
			10, 10, 10, // 21-23
		},
		CycloneMode:          false,
		CycloneReserveSOC:    70,
		SpikeRatio:           1.0,
		MovingAverageSamples: 12,
		ForecastLookahead:    4,
		DefaultSunriseHour:   6,
		DefaultSunsetHour:    18,
	}
}

var settingsValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate ensures the settings are usable by the decision policy.
func (s Settings) Validate() error {
	if err := settingsValidator.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid settings: %w", err)
	}

	// the peak window must be contiguous otherwise the hours in between would
	// fall outside of night, day and peak
	peak := slices.Clone(s.PeakHours)
	slices.Sort(peak)
	peak = slices.Compact(peak)
	if len(peak) != peak[len(peak)-1]-peak[0]+1 {
		return fmt.Errorf("invalid settings: peakHours must be contiguous: %v", s.PeakHours)
	}
	return nil
}
