package dataset

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Warning type constants
const (
	WarningBlankRow        = "blank_row"
	WarningShortRow        = "short_row"
	WarningEmptyNumber     = "empty_number"
	WarningNoStation       = "no_station"
	WarningBadLastUpdated  = "bad_last_updated"
	WarningDuplicateHeader = "duplicate_header"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects data quality warnings while loading and logs consolidated summaries
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example location
func (w *WarningAggregator) Add(warningType, example string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	if len(info.examples) < 3 {
		info.examples = append(info.examples, example)
	}
}

// Count returns how many times warningType was recorded
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// Len returns the number of distinct warning types recorded
func (w *WarningAggregator) Len() int { return len(w.warnings) }

// LogAll outputs all collected warnings for source, one line per type
func (w *WarningAggregator) LogAll(source string) {
	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		log.Printf("%s", w.formatWarningMessage(t, source, w.warnings[t]))
	}
}

func (w *WarningAggregator) formatWarningMessage(warningType, source string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningBlankRow:
		description = "blank rows"
		action = "Skipping them"
	case WarningShortRow:
		description = "rows with fewer cells than the header"
		action = "Treating missing cells as empty"
	case WarningEmptyNumber:
		description = "empty numeric cells"
		action = "Using 0"
	case WarningNoStation:
		description = "records with an empty station name"
		action = "Keeping them out of the station list"
	case WarningBadLastUpdated:
		description = "Last_Updated values in an unknown layout"
		action = "Keeping the raw text"
	case WarningDuplicateHeader:
		description = "duplicate header columns"
		action = "Using the first occurrence"
	default:
		description = "unknown issue"
		action = "Keeping the record"
	}

	return fmt.Sprintf("Dataset %s has %s (%d occurrences). %s. Examples: %s",
		source, description, info.count, action, strings.Join(info.examples, ", "))
}
