package formatter

import (
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/local-train-tracker/dataset"
	"github.com/theoremus-urban-solutions/local-train-tracker/utils"
)

// TrainSummary lists every field of a train, one " Label: value" line each
func TrainSummary(t dataset.Train) string {
	lines := []string{
		" Train Number: " + t.Number,
		" Train Name: " + t.Name,
		" Current Station: " + t.CurrentStation,
		" Next Station: " + t.NextStation,
		" Distance to Next: " + utils.PresentableDistance(t.DistanceKM),
		" Time to Reach Next: " + utils.PresentableMinutes(t.TimeToNextMin),
		" Delay: " + utils.PresentableMinutes(t.DelayMinutes),
		" Expected Arrival (CSMT): " + t.ExpectedArrival,
		" Status: " + t.Status,
		" Crowd Level: " + t.CrowdLevel,
		" Train Type: " + t.TrainType,
		" Last Updated: " + t.LastUpdated,
	}
	return strings.Join(lines, "\n")
}

// RouteSummary writes one block per record, each followed by a blank line
func RouteSummary(records []dataset.Record) string {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "%s (%s)\n", r.TrainName, r.TrainNumber)
		fmt.Fprintf(&b, "Type: %s | Crowd: %s | Delay: %s\n", r.TrainType, r.CrowdLevel, utils.PresentableMinutes(r.DelayMinutes))
		fmt.Fprintf(&b, "From: %s ➜ To: %s\n", r.CurrentStation, r.NextStation)
		fmt.Fprintf(&b, "Status: %s | Updated: %s\n\n", r.Status, r.LastUpdated)
	}
	return b.String()
}

// NoTrainsMessage is shown instead of RouteSummary when a segment has no trains
func NoTrainsMessage(from, to string) string {
	return fmt.Sprintf("No trains found between %s and %s.", from, to)
}
