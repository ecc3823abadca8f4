// Package windows splits the 24 hours of the day into the night, day and peak
// periods the decision rules key off.
package windows

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// HoursPerDay is the number of hours in a local day.
const HoursPerDay = 24

// HourSet is a set of hours of the day (0-23).
type HourSet uint32

const allHours HourSet = 1<<HoursPerDay - 1

// All returns the set of every hour of the day.
func All() HourSet {
	return allHours
}

// NewHourSet returns a set holding the given hours. Hours outside 0-23 are
// ignored.
func NewHourSet(hours ...int) HourSet {
	var s HourSet
	for _, h := range hours {
		s = s.Add(h)
	}
	return s
}

// Add returns the set with h added. Hours outside 0-23 are ignored.
func (s HourSet) Add(h int) HourSet {
	if h < 0 || h >= HoursPerDay {
		return s
	}
	return s | 1<<uint(h)
}

// Contains returns true if h is in the set. It is always false for hours
// outside 0-23 so the unknown hour sentinel never lands in a window.
func (s HourSet) Contains(h int) bool {
	if h < 0 || h >= HoursPerDay {
		return false
	}
	return s&(1<<uint(h)) != 0
}

// Union returns the hours in either set.
func (s HourSet) Union(o HourSet) HourSet {
	return s | o
}

// Intersect returns the hours in both sets.
func (s HourSet) Intersect(o HourSet) HourSet {
	return s & o
}

// Without returns the hours in s that are not in o.
func (s HourSet) Without(o HourSet) HourSet {
	return s &^ o
}

// Len returns the number of hours in the set.
func (s HourSet) Len() int {
	return bits.OnesCount32(uint32(s & allHours))
}

// Empty returns true if the set has no hours.
func (s HourSet) Empty() bool {
	return s&allHours == 0
}

// Min returns the earliest hour in the set and false if the set is empty.
func (s HourSet) Min() (int, bool) {
	if s.Empty() {
		return 0, false
	}
	return bits.TrailingZeros32(uint32(s & allHours)), true
}

// Max returns the latest hour in the set and false if the set is empty.
func (s HourSet) Max() (int, bool) {
	if s.Empty() {
		return 0, false
	}
	return 31 - bits.LeadingZeros32(uint32(s&allHours)), true
}

// Hours returns the hours in ascending order.
func (s HourSet) Hours() []int {
	hours := make([]int, 0, s.Len())
	for h := 0; h < HoursPerDay; h++ {
		if s.Contains(h) {
			hours = append(hours, h)
		}
	}
	return hours
}

func (s HourSet) String() string {
	hours := s.Hours()
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = strconv.Itoa(h)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Period names the window an hour falls in.
type Period string

const (
	PeriodNight Period = "night"
	PeriodDay   Period = "day"
	PeriodPeak  Period = "peak"
	// PeriodNone is returned for hours outside 0-23.
	PeriodNone Period = "none"
)

// Windows is a partition of the day into night, day and peak.
type Windows struct {
	Night HourSet
	Day   HourSet
	Peak  HourSet
}

// Period returns the window that contains hour.
func (w Windows) Period(hour int) Period {
	switch {
	case w.Peak.Contains(hour):
		return PeriodPeak
	case w.Night.Contains(hour):
		return PeriodNight
	case w.Day.Contains(hour):
		return PeriodDay
	default:
		return PeriodNone
	}
}

// Complete returns true if every hour belongs to exactly one window.
func (w Windows) Complete() bool {
	if w.Night.Intersect(w.Day) != 0 || w.Night.Intersect(w.Peak) != 0 || w.Day.Intersect(w.Peak) != 0 {
		return false
	}
	return w.Night.Union(w.Day).Union(w.Peak) == allHours
}

// PartitionError is returned when the configured windows left hours uncovered.
// The returned Windows is still a complete partition with the Repaired hours
// moved into Day.
type PartitionError struct {
	Repaired HourSet
	Reason   string
}

func (e *PartitionError) Error() string {
	if e.Repaired.Empty() {
		return "partition inconsistency: " + e.Reason
	}
	return fmt.Sprintf("partition inconsistency: %s: hours %s assigned to day", e.Reason, e.Repaired)
}

// Partition builds the night, day and peak windows.
//
// Peak is the configured peak set and wins every overlap, so the last peak hour
// is peak even though night starts at max(peak). Night is every hour at or
// after the last peak hour or at or before sunrise+morningPadding. Day is every
// hour before the first peak hour that is not night.
//
// Hours that would otherwise fall through (a peak window with holes, or no peak
// at all) are assigned to day and reported with a *PartitionError.
func Partition(peak HourSet, sunriseHour, morningPadding int) (Windows, error) {
	peak = peak.Intersect(allHours)
	dawn := sunriseHour + morningPadding

	var w Windows
	var reason string
	lo, hasPeak := peak.Min()
	hi, _ := peak.Max()
	for h := 0; h < HoursPerDay; h++ {
		switch {
		case peak.Contains(h):
		case h <= dawn || (hasPeak && h >= hi):
			w.Night = w.Night.Add(h)
		case hasPeak && h < lo:
			w.Day = w.Day.Add(h)
		}
	}
	w.Peak = peak
	if !hasPeak {
		reason = "no peak hours configured"
	} else {
		reason = fmt.Sprintf("peak hours %s are not contiguous", peak)
	}

	missing := allHours.Without(w.Night.Union(w.Day).Union(w.Peak))
	if !missing.Empty() || !hasPeak {
		w.Day = w.Day.Union(missing)
		return w, &PartitionError{Repaired: missing, Reason: reason}
	}
	return w, nil
}
