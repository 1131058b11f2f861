package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Dataset stores train status records in load order for fast lookups
type Dataset struct {
	records   []Record
	byNumber  map[string][]int  // train number -> row positions
	bySegment map[segment][]int // normalized (current, next) -> row positions
	stations  []string          // distinct station names, sorted
}

type segment struct {
	from, to string
}

// New builds an immutable Dataset over a copy of records
func New(records []Record) *Dataset {
	d := &Dataset{
		records:   make([]Record, len(records)),
		byNumber:  map[string][]int{},
		bySegment: map[segment][]int{},
	}
	copy(d.records, records)
	seen := map[string]struct{}{}
	for i, r := range d.records {
		d.byNumber[r.TrainNumber] = append(d.byNumber[r.TrainNumber], i)
		key := segment{from: NormalizeStation(r.CurrentStation), to: NormalizeStation(r.NextStation)}
		d.bySegment[key] = append(d.bySegment[key], i)
		for _, s := range []string{r.CurrentStation, r.NextStation} {
			if s == "" {
				continue
			}
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				d.stations = append(d.stations, s)
			}
		}
	}
	sort.Strings(d.stations)
	return d
}

// NormalizeStation trims surrounding whitespace and lowercases a station name
func NormalizeStation(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TrainNumberText converts a train number of any scalar type to its text form.
// The text is compared as is; callers trim user input.
func TrainNumberText(number any) string {
	s, err := cast.ToStringE(number)
	if err != nil {
		return fmt.Sprintf("%v", number)
	}
	return s
}

// LookupByTrainNumber returns every record of a train in load order.
// number may be any value convertible to text. It fails with a *NotFoundError
// when the dataset has no record for that train.
func (d *Dataset) LookupByTrainNumber(number any) ([]Record, error) {
	key := TrainNumberText(number)
	rows := d.byNumber[key]
	if key == "" || len(rows) == 0 {
		return nil, &NotFoundError{TrainNumber: key}
	}
	return d.pick(rows), nil
}

// LookupBetween returns the records whose current and next stations match
// from and to, ignoring case and surrounding whitespace. An empty result
// means no train runs on that segment and is not an error.
func (d *Dataset) LookupBetween(from, to string) []Record {
	rows := d.bySegment[segment{from: NormalizeStation(from), to: NormalizeStation(to)}]
	return d.pick(rows)
}

// Stations returns every distinct current or next station name, sorted
func (d *Dataset) Stations() []string {
	out := make([]string, len(d.stations))
	copy(out, d.stations)
	return out
}

// Records returns a copy of all records in load order
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

func (d *Dataset) Len() int { return len(d.records) }

func (d *Dataset) pick(rows []int) []Record {
	out := make([]Record, 0, len(rows))
	for _, i := range rows {
		out = append(out, d.records[i])
	}
	return out
}
