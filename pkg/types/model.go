package types

// Variables is the flat set of named values the host platform supplies for one
// dispatch interval. Every value is untrusted: any key may be missing, hold the
// wrong type or carry NaN.
type Variables map[string]any

// Action represents the battery control action requested from the inverter.
type Action string

const (
	ActionStopped   Action = "stopped"
	ActionAuto      Action = "auto"
	ActionExport    Action = "export"
	ActionImport    Action = "import"
	ActionCharge    Action = "charge"
	ActionDischarge Action = "discharge"
)

// Actions lists every valid Action in the order the host documents them.
var Actions = []Action{
	ActionStopped,
	ActionAuto,
	ActionExport,
	ActionImport,
	ActionCharge,
	ActionDischarge,
}

// Valid returns true if the action is one the host understands.
func (a Action) Valid() bool {
	for _, v := range Actions {
		if a == v {
			return true
		}
	}
	return false
}

// SolarMode represents how the inverter should treat solar generation.
type SolarMode string

const (
	SolarModeMaximize SolarMode = "maximize"
	SolarModeCurtail  SolarMode = "curtail"
)

// SolarModes lists every valid SolarMode.
var SolarModes = []SolarMode{
	SolarModeMaximize,
	SolarModeCurtail,
}

// Valid returns true if the solar mode is one the host understands.
func (s SolarMode) Valid() bool {
	for _, v := range SolarModes {
		if s == v {
			return true
		}
	}
	return false
}

// ActionReason identifies the rule that produced a decision.
type ActionReason string

const (
	ActionReasonCheapSunnyImport         ActionReason = "cheapSunnyImport"
	ActionReasonOpportunisticBuy         ActionReason = "opportunisticBuy"
	ActionReasonAlwaysSell               ActionReason = "alwaysSell"
	ActionReasonSpikeSell                ActionReason = "spikeSell"
	ActionReasonSecondaryThresholdImport ActionReason = "secondaryThresholdImport"
	ActionReasonDaytimeCharge            ActionReason = "daytimeCharge"
	ActionReasonPrepareForPeak           ActionReason = "prepareForPeak"
	ActionReasonPeakSell                 ActionReason = "peakSell"
	ActionReasonNighttimeCharge          ActionReason = "nighttimeCharge"
	ActionReasonDefault                  ActionReason = "default"
)

// Decision is the result handed back to the host for one interval.
type Decision struct {
	Action Action    `json:"action"`
	Solar  SolarMode `json:"solar"`
	Reason string    `json:"reason"`

	// Rule is the rule that matched. It is not part of the host contract.
	Rule ActionReason `json:"-"`
	// Degraded lists the input fields that were replaced by defaults.
	Degraded []string `json:"-"`
}
