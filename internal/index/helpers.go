package index

import (
	"math"
	"strings"
)

// average returns the mean of the values, skipping NaN/Inf entries.
// An empty or all-invalid window averages to 0; callers treat that as
// "no baseline" rather than dividing by it.
func average(values []float64) float64 {
	sum := 0.0
	n := 0
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// deviationPercent compares current against a baseline as a percentage.
// A zero baseline yields 0, never a division fault.
func deviationPercent(current, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return clampFinite((current - baseline) / baseline * 100)
}

// percentOf expresses value as a percentage of a baseline, guarding the
// zero baseline the same way deviationPercent does.
func percentOf(value, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return clampFinite(value / baseline * 100)
}

// clampFinite maps NaN/Inf to 0 so no upstream garbage can reach a score.
func clampFinite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// clampScore bounds a raw point sum to the category ceiling.
func clampScore(score, max int) int {
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}

// countOccurrences counts every case-insensitive occurrence of each
// keyword in text. Occurrences are global, not capped per keyword.
func countOccurrences(text string, keywords []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, keyword := range keywords {
		keyword = strings.ToLower(keyword)
		if keyword == "" {
			continue
		}
		count += strings.Count(lower, keyword)
	}
	return count
}
