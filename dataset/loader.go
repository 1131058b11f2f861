package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/local-train-tracker/utils"
)

// LoadOptions tunes CSV parsing
type LoadOptions struct {
	// Comma is the field delimiter; zero means ','
	Comma rune
	// Warnings receives data quality warnings; nil logs them once loading finishes
	Warnings *WarningAggregator
}

// LoadFile opens a CSV file and builds a Dataset from it
func LoadFile(path string) (*Dataset, error) {
	return LoadFileWithOptions(path, LoadOptions{})
}

// LoadFileWithOptions opens a CSV file and builds a Dataset using opts
func LoadFileWithOptions(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()
	warnings := opts.Warnings
	if warnings == nil {
		warnings = NewWarningAggregator()
		opts.Warnings = warnings
		defer warnings.LogAll(path)
	}
	ds, err := LoadWithOptions(f, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	log.Printf("dataset: loaded %d records, %d stations from %s", ds.Len(), len(ds.Stations()), path)
	return ds, nil
}

// Load builds a Dataset from CSV data with a header row
func Load(r io.Reader) (*Dataset, error) {
	return LoadWithOptions(r, LoadOptions{})
}

// LoadWithOptions builds a Dataset from CSV data with a header row using opts
func LoadWithOptions(r io.Reader, opts LoadOptions) (*Dataset, error) {
	csvr := csv.NewReader(r)
	if opts.Comma != 0 {
		csvr.Comma = opts.Comma
	}
	csvr.FieldsPerRecord = -1
	csvr.TrimLeadingSpace = true

	head, err := csvr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &SchemaError{Column: ColTrainNumber}
	}
	if err != nil {
		return nil, err
	}
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	warnings := opts.Warnings
	if warnings == nil {
		warnings = NewWarningAggregator()
		defer warnings.LogAll("input")
	}
	idx := func(col string) int {
		found := -1
		for i, h := range head {
			if !strings.EqualFold(strings.TrimSpace(h), col) {
				continue
			}
			if found >= 0 {
				warnings.Add(WarningDuplicateHeader, col)
				continue
			}
			found = i
		}
		return found
	}
	cols := make(map[string]int, len(Columns))
	for _, c := range Columns {
		i := idx(c)
		if i < 0 {
			return nil, &SchemaError{Column: c}
		}
		cols[c] = i
	}

	v := validator.New()
	var records []Record
	for {
		row, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := csvr.FieldPos(0)
		if isBlank(row) {
			warnings.Add(WarningBlankRow, lineRef(line))
			continue
		}
		if len(row) < len(head) {
			warnings.Add(WarningShortRow, lineRef(line))
		}
		rec, err := parseRecord(row, cols, line, warnings)
		if err != nil {
			return nil, err
		}
		if err := v.Struct(rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if rec.CurrentStation == "" || rec.NextStation == "" {
			warnings.Add(WarningNoStation, lineRef(line))
		}
		if rec.LastUpdated != "" {
			if _, ok := utils.ParseTimestamp(rec.LastUpdated, nil); !ok {
				warnings.Add(WarningBadLastUpdated, rec.LastUpdated)
			}
		}
		records = append(records, rec)
	}
	return New(records), nil
}

func lineRef(line int) string { return fmt.Sprintf("line %d", line) }

func parseRecord(row []string, cols map[string]int, line int, warnings *WarningAggregator) (Record, error) {
	cell := func(col string) string {
		i := cols[col]
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	num := func(col string) (float64, error) {
		s := cell(col)
		if s == "" {
			warnings.Add(WarningEmptyNumber, fmt.Sprintf("line %d %s", line, col))
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, &ParseError{Line: line, Column: col, Value: s, Err: err}
		}
		return f, nil
	}

	rec := Record{
		TrainNumber:     cell(ColTrainNumber),
		TrainName:       cell(ColTrainName),
		CurrentStation:  cell(ColCurrentStation),
		NextStation:     cell(ColNextStation),
		ExpectedArrival: cell(ColExpectedArrival),
		Status:          cell(ColStatus),
		LastUpdated:     cell(ColLastUpdated),
		CrowdLevel:      cell(ColCrowdLevel),
		TrainType:       cell(ColTrainType),
	}
	var err error
	if rec.DistanceKM, err = num(ColDistanceKM); err != nil {
		return Record{}, err
	}
	if rec.TimeToNextMin, err = num(ColTimeToNextMin); err != nil {
		return Record{}, err
	}
	if rec.DelayMinutes, err = num(ColDelayMinutes); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
