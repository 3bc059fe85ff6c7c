package engine

import (
	"github.com/mkravets/adoptlens/internal/model"
)

// CountBy groups a view by a categorical field and counts rows per group.
// Counts carry no ordering; render-time sorting is a presentation concern.
func CountBy(view model.View, key model.Field) map[string]int {
	counts := make(map[string]int)
	for _, rec := range view {
		counts[rec.Key(key)]++
	}
	return counts
}

// MeanBy groups a view by a categorical field and computes the unweighted
// arithmetic mean of a metric per group. No rounding is applied.
func MeanBy(view model.View, key model.Field, metric model.Metric) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range view {
		k := rec.Key(key)
		sums[k] += rec.Value(metric)
		counts[k]++
	}

	means := make(map[string]float64, len(sums))
	for k, sum := range sums {
		means[k] = sum / float64(counts[k])
	}
	return means
}

// Mean computes the unweighted arithmetic mean of a metric over a view.
// Returns ErrEmptyGroup for an empty view.
func Mean(view model.View, metric model.Metric) (float64, error) {
	if len(view) == 0 {
		return 0, ErrEmptyGroup
	}
	var sum float64
	for _, rec := range view {
		sum += rec.Value(metric)
	}
	return sum / float64(len(view)), nil
}

// MetricRange returns the smallest and largest value of a metric in a view.
// Both are zero for an empty view.
func MetricRange(view model.View, metric model.Metric) (min, max float64) {
	if len(view) == 0 {
		return 0, 0
	}
	min = view[0].Value(metric)
	max = min
	for _, rec := range view[1:] {
		v := rec.Value(metric)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// DistinctCount returns the number of distinct values of a categorical field.
func DistinctCount(view model.View, key model.Field) int {
	seen := make(map[string]bool)
	for _, rec := range view {
		seen[rec.Key(key)] = true
	}
	return len(seen)
}

// GroupKeys returns group keys in first-seen order. Aggregation maps are
// unordered; rankers and renderers use this to keep deterministic order.
func GroupKeys(view model.View, key model.Field) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, rec := range view {
		k := rec.Key(key)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}
