// Package traintracker serves train status queries over HTTP.
//
// App holds the loaded dataset together with the chart renderer, the rendered
// chart cache and the configuration. Handlers and the CLI both go through App's
// query methods so that every presentation returns the same data.
package traintracker

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bluele/gcache"

	"github.com/theoremus-urban-solutions/local-train-tracker/chart"
	"github.com/theoremus-urban-solutions/local-train-tracker/config"
	"github.com/theoremus-urban-solutions/local-train-tracker/dataset"
	"github.com/theoremus-urban-solutions/local-train-tracker/formatter"
	"github.com/theoremus-urban-solutions/local-train-tracker/gtfsrt"
	"github.com/theoremus-urban-solutions/local-train-tracker/stats"
	"github.com/theoremus-urban-solutions/local-train-tracker/utils"
)

// App is the application state shared by the HTTP handlers and the CLI
type App struct {
	Dataset  *dataset.Dataset
	Renderer chart.Renderer
	Config   config.AppConfig

	charts gcache.Cache
}

// NewApp loads the dataset named by cfg and builds the renderer and chart cache
func NewApp(cfg config.AppConfig) (*App, error) {
	opts := dataset.LoadOptions{}
	if cfg.Dataset.Comma != "" {
		opts.Comma = rune(cfg.Dataset.Comma[0])
	}
	ds, err := dataset.LoadFileCached(cfg.Dataset.Path, cfg.Dataset.CachePath, opts)
	if err != nil {
		return nil, err
	}
	return NewAppWithDataset(ds, cfg), nil
}

// NewAppWithDataset wires an already loaded dataset
func NewAppWithDataset(ds *dataset.Dataset, cfg config.AppConfig) *App {
	size := cfg.Chart.CacheSize
	if size <= 0 {
		size = 1
	}
	builder := gcache.New(size).LRU()
	if cfg.Chart.CacheTTLSeconds > 0 {
		builder = builder.Expiration(time.Duration(cfg.Chart.CacheTTLSeconds) * time.Second)
	}
	return &App{
		Dataset:  ds,
		Renderer: chart.NewBarRenderer(cfg.Chart.Width, cfg.Chart.Height, cfg.Chart.Format),
		Config:   cfg,
		charts:   builder.Build(),
	}
}

// Train returns the detail payload for a train number or a NotFound error
func (a *App) Train(number any) (*formatter.TrainResponse, error) {
	legs, err := a.Dataset.LookupByTrainNumber(number)
	if err != nil {
		return nil, err
	}
	return formatter.WrapTrainResponse(legs), nil
}

// Route returns the trains running from -> to along with their delay statistics
func (a *App) Route(from, to string) (*formatter.RouteResponse, error) {
	records := a.Dataset.LookupBetween(from, to)
	delay, err := stats.RouteDelay(records)
	if err != nil {
		return nil, err
	}
	return formatter.WrapRouteResponse(from, to, records, delay), nil
}

// RouteTripUpdates encodes the trains running from -> to as a GTFS-RT TripUpdates feed
func (a *App) RouteTripUpdates(from, to string, now time.Time) ([]byte, error) {
	feed := gtfsrt.BuildTripUpdates(a.Dataset.LookupBetween(from, to), now)
	log.Printf("trip updates %s -> %s: %d entities at %s", from, to, len(feed.GetEntity()),
		utils.Iso8601FromUnixSeconds(int64(feed.GetHeader().GetTimestamp())))
	return gtfsrt.Marshal(feed)
}

// RouteChart renders the delay chart for from -> to. An empty route returns chart.ErrNoBars.
// Images are cached per matching segment and title, so each spelling keeps its own title.
func (a *App) RouteChart(from, to string) ([]byte, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	title := chart.DelayTitle(from, to)
	key := dataset.NormalizeStation(from) + "\x00" + dataset.NormalizeStation(to) + "\x00" + title
	if v, err := a.charts.Get(key); err == nil {
		if img, ok := v.([]byte); ok {
			return img, nil
		}
	}

	records := a.Dataset.LookupBetween(from, to)
	var buf bytes.Buffer
	if err := a.Renderer.Render(&buf, title, chart.DelayBars(records)); err != nil {
		return nil, err
	}
	img := buf.Bytes()
	if err := a.charts.Set(key, img); err != nil {
		log.Printf("chart cache: %v", err)
	}
	return img, nil
}

// Summary is a one-line description of the loaded data
func (a *App) Summary() string {
	return fmt.Sprintf("%d records, %d stations", a.Dataset.Len(), len(a.Dataset.Stations()))
}
