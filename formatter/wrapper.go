package formatter

import (
	"github.com/theoremus-urban-solutions/local-train-tracker/dataset"
	"github.com/theoremus-urban-solutions/local-train-tracker/stats"
	"github.com/theoremus-urban-solutions/local-train-tracker/utils"
)

// TrainResponse is the detail payload of a train number query
type TrainResponse struct {
	ResponseTimestamp string           `json:"response_timestamp"`
	Train             dataset.Train    `json:"train"`
	Legs              []dataset.Record `json:"legs"`
}

// RouteResponse is the payload of a station pair query
type RouteResponse struct {
	ResponseTimestamp string           `json:"response_timestamp"`
	From              string           `json:"from"`
	To                string           `json:"to"`
	Count             int              `json:"count"`
	Trains            []dataset.Record `json:"trains"`
	Delay             stats.DelayStats `json:"delay"`
}

// StationsResponse lists the station names a route query can use
type StationsResponse struct {
	Count    int      `json:"count"`
	Stations []string `json:"stations"`
}

// ErrorResponse carries a user visible error message
type ErrorResponse struct {
	Error string `json:"error"`
}

// WrapTrainResponse builds the train payload from LookupByTrainNumber's records
func WrapTrainResponse(legs []dataset.Record) *TrainResponse {
	return &TrainResponse{
		ResponseTimestamp: utils.Iso8601Now(),
		Train:             dataset.ProjectFirst(legs),
		Legs:              legs,
	}
}

// WrapRouteResponse builds the route payload; Trains is never null
func WrapRouteResponse(from, to string, records []dataset.Record, delay stats.DelayStats) *RouteResponse {
	if records == nil {
		records = []dataset.Record{}
	}
	return &RouteResponse{
		ResponseTimestamp: utils.Iso8601Now(),
		From:              from,
		To:                to,
		Count:             len(records),
		Trains:            records,
		Delay:             delay,
	}
}

// WrapStationsResponse builds the station list payload
func WrapStationsResponse(stations []string) *StationsResponse {
	if stations == nil {
		stations = []string{}
	}
	return &StationsResponse{Count: len(stations), Stations: stations}
}
