package traintracker

import (
	"strings"
)

// Response formats accepted by the format query parameter
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatXML  = "xml"
	FormatPB   = "pb"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// normalizeFormat lower-cases s and checks it against allowed; empty means json
func normalizeFormat(s string, allowed ...string) (string, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return FormatJSON, nil
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", &QueryError{Msg: "Unsupported format: " + s}
}

// ensureStations checks that both ends of a route query are present
func ensureStations(from, to string) (string, string, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" || to == "" {
		return "", "", &QueryError{Msg: "Please select both From and To stations."}
	}
	return from, to, nil
}

// ensureTrainNumber rejects a blank train number
func ensureTrainNumber(number string) (string, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return "", &QueryError{Msg: "Please enter a train number."}
	}
	return number, nil
}
