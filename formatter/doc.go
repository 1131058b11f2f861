// Package formatter turns query results into the text, JSON and XML shown to users.
//
// This package is organized into:
// - text.go: the train detail listing and route summary blocks
// - wrapper.go: response payloads (train, route, stations, error)
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
package formatter
