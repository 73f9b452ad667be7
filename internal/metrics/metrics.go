// Package metrics defines the OpenCensus measures recorded while loading
// training data and answering predictions.
package metrics

import (
	"context"
	"fmt"
	"time"

	"contrib.go.opencensus.io/exporter/prometheus"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

const Namespace = "knn"

const (
	OutcomeOK         = "ok"
	OutcomeInvalid    = "invalid"
	OutcomeOutOfRange = "out_of_range"
	OutcomeError      = "error"
)

var (
	KeyOutcome = tag.MustNewKey("outcome")

	LoadedRecords  = stats.Int64("knn/load/loaded", "training lines appended to the store", stats.UnitDimensionless)
	SkippedRecords = stats.Int64("knn/load/skipped", "training lines skipped on a parse warning", stats.UnitDimensionless)
	StoreSize      = stats.Int64("knn/store/size", "observations held by the store", stats.UnitDimensionless)
	Predictions    = stats.Int64("knn/predict/count", "answered prediction requests", stats.UnitDimensionless)
	PredictLatency = stats.Float64("knn/predict/latency", "prediction latency", stats.UnitMilliseconds)
)

var Views = []*view.View{
	{
		Name:        "knn/load/loaded",
		Measure:     LoadedRecords,
		Description: "Total training lines appended to the store",
		Aggregation: view.Sum(),
	},
	{
		Name:        "knn/load/skipped",
		Measure:     SkippedRecords,
		Description: "Total training lines skipped on a parse warning",
		Aggregation: view.Sum(),
	},
	{
		Name:        "knn/store/size",
		Measure:     StoreSize,
		Description: "Observations held by the store",
		Aggregation: view.LastValue(),
	},
	{
		Name:        "knn/predict/count",
		Measure:     Predictions,
		Description: "Prediction requests by outcome",
		TagKeys:     []tag.Key{KeyOutcome},
		Aggregation: view.Count(),
	},
	{
		Name:        "knn/predict/latency",
		Measure:     PredictLatency,
		Description: "Prediction latency distribution",
		TagKeys:     []tag.Key{KeyOutcome},
		Aggregation: view.Distribution(0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100),
	},
}

// RecordLoad records the outcome of a training load.
func RecordLoad(ctx context.Context, loaded, skipped, size int) {
	stats.Record(ctx,
		LoadedRecords.M(int64(loaded)),
		SkippedRecords.M(int64(skipped)),
		StoreSize.M(int64(size)),
	)
}

// RecordPrediction records one prediction tagged with its outcome.
func RecordPrediction(ctx context.Context, outcome string, took time.Duration) {
	_ = stats.RecordWithTags(ctx,
		[]tag.Mutator{tag.Upsert(KeyOutcome, outcome)},
		Predictions.M(1),
		PredictLatency.M(float64(took)/float64(time.Millisecond)),
	)
}

// NewExporter registers Views and returns a Prometheus exporter that serves
// them over HTTP.
func NewExporter() (*prometheus.Exporter, error) {
	if err := view.Register(Views...); err != nil {
		return nil, fmt.Errorf("view.Register: %w", err)
	}
	pe, err := prometheus.NewExporter(prometheus.Options{Namespace: Namespace})
	if err != nil {
		return nil, fmt.Errorf("prometheus.NewExporter: %w", err)
	}
	view.RegisterExporter(pe)
	return pe, nil
}
