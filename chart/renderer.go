package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/local-train-tracker/dataset"
)

// ErrNoBars is returned when there is nothing to draw
var ErrNoBars = errors.New("chart: no bars to render")

// Bar is one labelled value on the chart
type Bar struct {
	Label string
	Value float64
}

// Renderer draws a titled bar chart to w
type Renderer interface {
	Render(w io.Writer, title string, bars []Bar) error
	ContentType() string
}

// DelayTitle is the chart title for a route between two stations
func DelayTitle(from, to string) string {
	return fmt.Sprintf("Delay per Train: %s to %s", from, to)
}

// DelayBars maps each record to a bar of its delay in minutes, in record order
func DelayBars(records []dataset.Record) []Bar {
	bars := make([]Bar, 0, len(records))
	for _, r := range records {
		label := r.TrainName
		if label == "" {
			label = r.TrainNumber
		}
		bars = append(bars, Bar{Label: label, Value: r.DelayMinutes})
	}
	return bars
}
