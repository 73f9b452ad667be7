package metrics

import (
	"context"
	"testing"
	"time"

	"go.opencensus.io/stats/view"
)

func TestRecordPrediction(t *testing.T) {
	if err := view.Register(Views...); err != nil {
		t.Fatalf("unable to register views: %v", err)
	}
	defer view.Unregister(Views...)

	RecordPrediction(context.Background(), OutcomeOK, time.Millisecond)
	RecordPrediction(context.Background(), OutcomeOK, time.Millisecond)
	RecordPrediction(context.Background(), OutcomeInvalid, time.Millisecond)

	rows, err := view.RetrieveData("knn/predict/count")
	if err != nil {
		t.Fatalf("unable to retrieve data: %v", err)
	}
	counts := map[string]int64{}
	for _, row := range rows {
		for _, tg := range row.Tags {
			if tg.Key == KeyOutcome {
				counts[tg.Value] = row.Data.(*view.CountData).Value
			}
		}
	}
	if counts[OutcomeOK] != 2 || counts[OutcomeInvalid] != 1 {
		t.Errorf("the prediction counts got: %v", counts)
	}
}

func TestRecordLoad(t *testing.T) {
	if err := view.Register(Views...); err != nil {
		t.Fatalf("unable to register views: %v", err)
	}
	defer view.Unregister(Views...)

	RecordLoad(context.Background(), 3, 1, 3)

	rows, err := view.RetrieveData("knn/store/size")
	if err != nil {
		t.Fatalf("unable to retrieve data: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("the rows got: %d, expected: 1", len(rows))
	}
	if got := rows[0].Data.(*view.LastValueData).Value; got != 3 {
		t.Errorf("the store size got: %v, expected: 3", got)
	}
}
