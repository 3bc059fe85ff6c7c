// Package recommend composes the filter and aggregation primitives into the
// "which tool performs best, and what should I expect at my planned training
// investment" heuristic.
package recommend

import (
	"errors"
	"sort"

	"github.com/mkravets/adoptlens/internal/engine"
	"github.com/mkravets/adoptlens/internal/model"
)

// ErrNilView signals a nil view reference. This is a programming error,
// distinct from an empty-but-valid view which yields a normal no-data result.
var ErrNilView = errors.New("recommend: nil view")

// windowFloor and windowFraction define the training-hours tolerance band:
// window = max(windowFloor, windowFraction * (max hours - min hours)).
const (
	windowFloor    = 50.0
	windowFraction = 0.1
)

// Recommender ranks tools by mean metric value and estimates the metric at a
// planned training-hour investment.
type Recommender struct{}

// NewRecommender creates a new recommender.
func NewRecommender() *Recommender {
	return &Recommender{}
}

// Recommend ranks tools in view by mean metric descending and estimates the
// metric at plannedHours using rows whose training hours fall inside the
// tolerance window. If no rows fall inside the window, the estimate falls
// back to the mean over the entire view and is flagged as such.
//
// Tools with numerically equal means keep first-seen order (stable sort), so
// identical input always produces identical output.
func (r *Recommender) Recommend(view model.View, metric model.Metric, plannedHours float64) (*model.Recommendation, error) {
	if view == nil {
		return nil, ErrNilView
	}
	if len(view) == 0 {
		return &model.Recommendation{NoData: true, PlannedHours: plannedHours}, nil
	}

	best := rankTools(view, metric)
	counts := engine.CountBy(view, model.FieldTool)

	rec := &model.Recommendation{
		BestTool:      best.tool,
		BestToolMean:  best.mean,
		BestToolCount: counts[best.tool],
		PlannedHours:  plannedHours,
	}

	minHours, maxHours := engine.MetricRange(view, model.MetricTrainingHours)
	window := windowFraction * (maxHours - minHours)
	if window < windowFloor {
		window = windowFloor
	}
	rec.WindowSize = window

	windowed := selectWindow(view, plannedHours-window, plannedHours+window)
	if len(windowed) == 0 {
		// Mean over the full non-empty view cannot fail.
		fallback, _ := engine.Mean(view, metric)
		rec.EstimateValue = fallback
		rec.EstimateKind = model.EstimateFallback
		return rec, nil
	}

	estimate, _ := engine.Mean(windowed, metric)
	rec.EstimateValue = estimate
	rec.EstimateKind = model.EstimateWindowed
	return rec, nil
}

type ranked struct {
	tool string
	mean float64
}

// rankTools returns the top tool by mean metric value.
func rankTools(view model.View, metric model.Metric) ranked {
	means := engine.MeanBy(view, model.FieldTool, metric)

	order := engine.GroupKeys(view, model.FieldTool)
	groups := make([]ranked, 0, len(order))
	for _, tool := range order {
		groups = append(groups, ranked{tool: tool, mean: means[tool]})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].mean > groups[j].mean
	})
	return groups[0]
}

// selectWindow returns the sub-view with training hours in [lo, hi] inclusive.
func selectWindow(view model.View, lo, hi float64) model.View {
	var sub model.View
	for _, rec := range view {
		if rec.TrainingHours >= lo && rec.TrainingHours <= hi {
			sub = append(sub, rec)
		}
	}
	return sub
}
