package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	lib "github.com/theoremus-urban-solutions/local-train-tracker"
	"github.com/theoremus-urban-solutions/local-train-tracker/chart"
	"github.com/theoremus-urban-solutions/local-train-tracker/config"
	"github.com/theoremus-urban-solutions/local-train-tracker/dataset"
	"github.com/theoremus-urban-solutions/local-train-tracker/formatter"
)

type query struct {
	train    string
	from     string
	to       string
	format   string
	chart    string
	stations bool
}

func main() {
	configPath := flag.String("config", "", "config.yml path (default: probe config.yml, ./config/config.yml)")
	datasetPath := flag.String("dataset", "", "dataset CSV path or http(s) URL (overrides config)")
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	train := flag.String("train", "", "train number to look up")
	from := flag.String("from", "", "route start station")
	to := flag.String("to", "", "route end station")
	format := flag.String("format", "text", "text|json|xml|pb")
	chartPath := flag.String("chart", "", "write the route delay chart to this file")
	stations := flag.Bool("stations", false, "list station names")
	flag.Parse()

	lib.InitLogging()
	cfg, err := config.LoadAppConfig(*configPath, *datasetPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	app, err := newApp(cfg)
	if err != nil {
		log.Fatalf("dataset: %v", err)
	}

	switch *mode {
	case "serve":
		s := app.StartServer()
		lib.HandleGracefulShutdown(s)
	case "oneshot":
		q := query{
			train:    *train,
			from:     *from,
			to:       *to,
			format:   strings.ToLower(*format),
			chart:    *chartPath,
			stations: *stations,
		}
		os.Exit(runOneshot(app, q, os.Stdout, os.Stderr))
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func newApp(cfg config.AppConfig) (*lib.App, error) {
	if !isRemote(cfg.Dataset.Path) {
		return lib.NewApp(cfg)
	}
	data, err := newFetcher().fetch(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}
	opts := dataset.LoadOptions{}
	if cfg.Dataset.Comma != "" {
		opts.Comma = rune(cfg.Dataset.Comma[0])
	}
	ds, err := dataset.LoadWithOptions(bytes.NewReader(data), opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.Dataset.Path, err)
	}
	return lib.NewAppWithDataset(ds, cfg), nil
}

// runOneshot answers a single query and returns the process exit code
func runOneshot(app *lib.App, q query, stdout, stderr io.Writer) int {
	switch {
	case q.stations:
		for _, s := range app.Dataset.Stations() {
			fmt.Fprintln(stdout, s)
		}
		return 0
	case strings.TrimSpace(q.train) != "":
		return runTrain(app, q, stdout, stderr)
	case q.from != "" || q.to != "":
		return runRoute(app, q, stdout, stderr)
	default:
		fmt.Fprintln(stderr, "nothing to do: use -train, -from/-to or -stations")
		return 2
	}
}

func runTrain(app *lib.App, q query, stdout, stderr io.Writer) int {
	res, err := app.Train(strings.TrimSpace(q.train))
	if err != nil {
		if errors.Is(err, dataset.ErrTrainNotFound) {
			fmt.Fprintln(stdout, err.Error())
			return 1
		}
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	rb := formatter.NewResponseBuilder()
	switch q.format {
	case lib.FormatText:
		fmt.Fprintln(stdout, formatter.TrainSummary(res.Train))
	case lib.FormatJSON:
		buf, err := rb.BuildJSON(res)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		fmt.Fprintln(stdout, string(buf))
	case lib.FormatXML:
		fmt.Fprintln(stdout, string(rb.BuildTrainXML(res)))
	default:
		fmt.Fprintf(stderr, "unsupported format for a train query: %s\n", q.format)
		return 2
	}
	return 0
}

func runRoute(app *lib.App, q query, stdout, stderr io.Writer) int {
	from, to := strings.TrimSpace(q.from), strings.TrimSpace(q.to)
	if from == "" || to == "" {
		fmt.Fprintln(stderr, "Please select both From and To stations.")
		return 2
	}

	if q.format == lib.FormatPB {
		buf, err := app.RouteTripUpdates(from, to, time.Now())
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		_, _ = stdout.Write(buf)
		return writeChart(app, q.chart, from, to, stderr)
	}

	res, err := app.Route(from, to)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	rb := formatter.NewResponseBuilder()
	switch q.format {
	case lib.FormatText:
		if res.Count == 0 {
			fmt.Fprintln(stdout, formatter.NoTrainsMessage(from, to))
		} else {
			fmt.Fprint(stdout, formatter.RouteSummary(res.Trains))
		}
	case lib.FormatJSON:
		buf, err := rb.BuildJSON(res)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		fmt.Fprintln(stdout, string(buf))
	case lib.FormatXML:
		fmt.Fprintln(stdout, string(rb.BuildRouteXML(res)))
	default:
		fmt.Fprintf(stderr, "unsupported format: %s\n", q.format)
		return 2
	}
	return writeChart(app, q.chart, from, to, stderr)
}

// writeChart saves the delay chart when path is set; an empty route writes nothing
func writeChart(app *lib.App, path, from, to string, stderr io.Writer) int {
	if path == "" {
		return 0
	}
	img, err := app.RouteChart(from, to)
	if errors.Is(err, chart.ErrNoBars) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	if err := os.WriteFile(path, img, 0o644); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	log.Printf("chart written to %s", path)
	return 0
}
