// Package chart renders per-train delay bar charts for a route query.
//
// DelayBars turns route records into bars, one per record, labelled with the
// train name. A Renderer writes the bars to an image; BarRenderer is the
// go-chart backed implementation used by the HTTP server and the CLI.
package chart
