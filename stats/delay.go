// Package stats summarises train delays for a route query result.
package stats

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"github.com/theoremus-urban-solutions/local-train-tracker/dataset"
)

// DelayStats summarises the delay column of a set of records
type DelayStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean_minutes"`
	Median float64 `json:"median_minutes"`
	Min    float64 `json:"min_minutes"`
	Max    float64 `json:"max_minutes"`
}

type delayRow struct {
	Train string  `dataframe:"train"`
	Delay float64 `dataframe:"delay"`
}

// RouteDelay computes delay statistics over records. No records yields a zero DelayStats.
func RouteDelay(records []dataset.Record) (DelayStats, error) {
	if len(records) == 0 {
		return DelayStats{}, nil
	}
	rows := make([]delayRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, delayRow{Train: r.TrainName, Delay: r.DelayMinutes})
	}
	df := dataframe.LoadStructs(rows)
	if df.Err != nil {
		return DelayStats{}, fmt.Errorf("delay frame: %w", df.Err)
	}
	delay := df.Col("delay")
	if err := delay.Error(); err != nil {
		return DelayStats{}, fmt.Errorf("delay column: %w", err)
	}
	return DelayStats{
		Count:  df.Nrow(),
		Mean:   delay.Mean(),
		Median: delay.Median(),
		Min:    delay.Min(),
		Max:    delay.Max(),
	}, nil
}
