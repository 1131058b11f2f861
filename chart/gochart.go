package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Output formats supported by BarRenderer
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var barColor = drawing.ColorFromHex("64ffda")

// BarRenderer renders bar charts with go-chart
type BarRenderer struct {
	Width  int
	Height int
	Format string
}

// NewBarRenderer returns a renderer; zero sizes fall back to 700x400 and an unknown format to PNG
func NewBarRenderer(width, height int, format string) *BarRenderer {
	if width <= 0 {
		width = 700
	}
	if height <= 0 {
		height = 400
	}
	if format != FormatSVG {
		format = FormatPNG
	}
	return &BarRenderer{Width: width, Height: height, Format: format}
}

// ContentType is the MIME type of the rendered image
func (r *BarRenderer) ContentType() string {
	if r.Format == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Render draws bars to w
func (r *BarRenderer) Render(w io.Writer, title string, bars []Bar) error {
	if len(bars) == 0 {
		return ErrNoBars
	}

	values := make([]gochart.Value, 0, len(bars))
	lo, hi := 0.0, 0.0
	for _, b := range bars {
		values = append(values, gochart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: gochart.Style{FillColor: barColor, StrokeColor: barColor},
		})
		lo = min(lo, b.Value)
		hi = max(hi, b.Value)
	}
	// go-chart refuses a zero-height range
	if hi == lo {
		hi = lo + 1
	}

	bc := gochart.BarChart{
		Title:    title,
		Width:    r.Width,
		Height:   r.Height,
		BarWidth: barWidth(r.Width, len(bars)),
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Bottom: 20},
		},
		XAxis: gochart.Style{TextRotationDegrees: 45},
		YAxis: gochart.YAxis{
			Name:  "Delay (Minutes)",
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: values,
	}

	provider := gochart.PNG
	if r.Format == FormatSVG {
		provider = gochart.SVG
	}
	if err := bc.Render(provider, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

func barWidth(width, n int) int {
	w := width / (2 * n)
	if w < 4 {
		return 4
	}
	if w > 60 {
		return 60
	}
	return w
}
