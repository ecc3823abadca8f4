// Package history holds the per month, per hour wholesale price statistics used
// to fill in a missing spot price and to judge how unusual the current one is.
package history

import "math"

// Stats is the mean and standard deviation of the spot price in $/MWh.
type Stats struct {
	Mean   float64
	StdDev float64
}

// Table is indexed by [month-1][hour]. It is never mutated after it is built
// so it can be shared between goroutines.
type Table [12][24]Stats

// QLD2023 returns the built-in Queensland 2023-2024 table.
func QLD2023() Table {
	return qld2023
}

// Lookup returns the statistics for the month (1-12) and hour (0-23). It
// returns false for anything outside those ranges, including the unknown month
// and hour sentinels.
func (t Table) Lookup(month, hour int) (Stats, bool) {
	if month < 1 || month > 12 || hour < 0 || hour > 23 {
		return Stats{}, false
	}
	return t[month-1][hour], true
}

// ZScore returns how many standard deviations rrp is from the mean. It returns
// 0 if the standard deviation is zero or the result isn't finite.
func ZScore(rrp float64, s Stats) float64 {
	if s.StdDev == 0 {
		return 0
	}
	z := (rrp - s.Mean) / s.StdDev
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return 0
	}
	return z
}
