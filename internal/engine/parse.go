// Package engine implements the foot-traffic aggregation and benchmarking
// core: hourly record building, daily and period rollups, weekday-average
// baselines and comparison diffs. Every function is a pure computation over
// already-loaded, immutable collections.
package engine

import (
	"fmt"
	"math"
	"time"
)

// feedTimeLayout is the timestamp format of the sensor export: DD/MM/YYYY HH:MM.
const feedTimeLayout = "02/01/2006 15:04"

// ParseTimestamp parses a sensor feed timestamp. It returns an error for
// non-numeric components or impossible dates (e.g. day 32); callers drop the
// row rather than aborting the load.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(feedTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid feed timestamp %q: %w", s, err)
	}
	return t, nil
}

// ReconcileGender adjusts raw per-direction gender counts so they sum exactly
// to the verified direction total. The aggregate in/out channel is
// authoritative; the gender channel contributes only its proportion. When the
// raw split is empty there is no ratio to infer from and both results are 0,
// regardless of the total.
func ReconcileGender(rawMen, rawWomen, total int) (men, women int) {
	sum := rawMen + rawWomen
	if sum == 0 {
		return 0, 0
	}
	ratio := float64(rawMen) / float64(sum)
	men = int(math.Round(ratio * float64(total)))
	// Subtracting from the total avoids rounding drift.
	women = total - men
	return men, women
}

// round2 rounds to two decimal places, matching the feed's display precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// safeRate returns num/den*100 rounded to two decimals, or 0 when the
// denominator is zero. Every derived-metric formula in this package goes
// through this guard so rates never become NaN or Inf.
func safeRate(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return round2(num / den * 100)
}
