package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/local-train-tracker/dataset"
	"github.com/theoremus-urban-solutions/local-train-tracker/utils"
)

// BuildTrainXML serializes a train response to XML
func (rb *responseBuilder) BuildTrainXML(res *TrainResponse) []byte {
	var b strings.Builder
	b.WriteString("<TrainResponse>")
	writeElement(&b, "ResponseTimestamp", res.ResponseTimestamp)
	t := res.Train
	b.WriteString("<Train>")
	writeElement(&b, "Number", t.Number)
	writeElement(&b, "Name", t.Name)
	writeElement(&b, "CurrentStation", t.CurrentStation)
	writeElement(&b, "NextStation", t.NextStation)
	writeElement(&b, "DistanceKM", utils.FormatNumber(t.DistanceKM))
	writeElement(&b, "TimeToNextMin", utils.FormatNumber(t.TimeToNextMin))
	writeElement(&b, "DelayMinutes", utils.FormatNumber(t.DelayMinutes))
	writeElement(&b, "ExpectedArrival", t.ExpectedArrival)
	writeElement(&b, "Status", t.Status)
	writeElement(&b, "LastUpdated", t.LastUpdated)
	writeElement(&b, "CrowdLevel", t.CrowdLevel)
	writeElement(&b, "TrainType", t.TrainType)
	b.WriteString("</Train>")
	b.WriteString("<Legs>")
	for _, r := range res.Legs {
		writeRecordXML(&b, r)
	}
	b.WriteString("</Legs>")
	b.WriteString("</TrainResponse>")
	return []byte(b.String())
}

// BuildRouteXML serializes a route response to XML
func (rb *responseBuilder) BuildRouteXML(res *RouteResponse) []byte {
	var b strings.Builder
	b.WriteString("<RouteResponse>")
	writeElement(&b, "ResponseTimestamp", res.ResponseTimestamp)
	writeElement(&b, "From", res.From)
	writeElement(&b, "To", res.To)
	writeElement(&b, "Count", strconv.Itoa(res.Count))
	b.WriteString("<Delay>")
	writeElement(&b, "Count", strconv.Itoa(res.Delay.Count))
	if res.Delay.Count > 0 {
		writeElement(&b, "MeanMinutes", utils.FormatNumber(res.Delay.Mean))
		writeElement(&b, "MedianMinutes", utils.FormatNumber(res.Delay.Median))
		writeElement(&b, "MinMinutes", utils.FormatNumber(res.Delay.Min))
		writeElement(&b, "MaxMinutes", utils.FormatNumber(res.Delay.Max))
	}
	b.WriteString("</Delay>")
	b.WriteString("<Trains>")
	for _, r := range res.Trains {
		writeRecordXML(&b, r)
	}
	b.WriteString("</Trains>")
	b.WriteString("</RouteResponse>")
	return []byte(b.String())
}

func writeRecordXML(b *strings.Builder, r dataset.Record) {
	b.WriteString("<Record>")
	writeElement(b, "TrainNumber", r.TrainNumber)
	writeElement(b, "TrainName", r.TrainName)
	writeElement(b, "CurrentStation", r.CurrentStation)
	writeElement(b, "NextStation", r.NextStation)
	writeElement(b, "DistanceKM", utils.FormatNumber(r.DistanceKM))
	writeElement(b, "TimeToNextMin", utils.FormatNumber(r.TimeToNextMin))
	writeElement(b, "DelayMinutes", utils.FormatNumber(r.DelayMinutes))
	writeElement(b, "ExpectedArrival", r.ExpectedArrival)
	writeElement(b, "Status", r.Status)
	writeElement(b, "LastUpdated", r.LastUpdated)
	writeElement(b, "CrowdLevel", r.CrowdLevel)
	writeElement(b, "TrainType", r.TrainType)
	b.WriteString("</Record>")
}

// writeElement skips empty values
func writeElement(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}

// EscapeXML escapes s for use as XML character data
func EscapeXML(s string) string { return xmlEscape(s) }
