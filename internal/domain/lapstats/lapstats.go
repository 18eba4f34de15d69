// Package lapstats computes summary statistics over lap durations.
package lapstats

import (
	"math"
	"sort"

	"github.com/alecappe-boss/OpenF1/internal/domain/model"
)

// Summary holds descriptive statistics of the timed laps in a stint.
// Laps without a duration (in/out laps, red flags) are not counted.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}

// Describe summarises the timed laps. Returns ok=false when no lap carries
// a duration, which callers present as a "no data" state.
func Describe(laps []model.Lap) (Summary, bool) {
	durations := make([]float64, 0, len(laps))
	for _, lap := range laps {
		if lap.LapDuration != nil {
			durations = append(durations, *lap.LapDuration)
		}
	}
	if len(durations) == 0 {
		return Summary{}, false
	}

	sort.Float64s(durations)

	var sum float64
	for _, d := range durations {
		sum += d
	}
	mean := sum / float64(len(durations))

	// Sample standard deviation; zero for a single lap.
	var std float64
	if len(durations) > 1 {
		var sq float64
		for _, d := range durations {
			sq += (d - mean) * (d - mean)
		}
		std = math.Sqrt(sq / float64(len(durations)-1))
	}

	return Summary{
		Count:  len(durations),
		Mean:   mean,
		Std:    std,
		Min:    durations[0],
		P25:    quantile(durations, 0.25),
		Median: quantile(durations, 0.5),
		P75:    quantile(durations, 0.75),
		Max:    durations[len(durations)-1],
	}, true
}

// quantile interpolates linearly between the closest ranks of a sorted
// sample, matching the usual statistics-package definition.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
