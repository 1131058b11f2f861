package dataset

import (
	"errors"
	"reflect"
	"testing"
)

func scenario() *Dataset {
	return New([]Record{
		{TrainNumber: "12345", TrainName: "Virar Fast", CurrentStation: "A", NextStation: "B", DelayMinutes: 0},
		{TrainNumber: "12345", TrainName: "Virar Fast", CurrentStation: "B", NextStation: "C", DelayMinutes: 2},
		{TrainNumber: "99999", TrainName: "Churchgate Slow", CurrentStation: "X", NextStation: "Y", DelayMinutes: 15},
	})
}

func TestDataset_ExampleScenario(t *testing.T) {
	ds := scenario()

	legs, err := ds.LookupByTrainNumber("12345")
	if err != nil {
		t.Fatalf("lookup 12345: %v", err)
	}
	if len(legs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(legs))
	}
	if legs[0].NextStation != "B" || legs[1].NextStation != "C" {
		t.Errorf("records out of load order: %+v", legs)
	}
	if got := ProjectFirst(legs).CurrentStation; got != "A" {
		t.Errorf("ProjectFirst current station = %q, want A", got)
	}

	between := ds.LookupBetween("B", "C")
	if len(between) != 1 || between[0] != legs[1] {
		t.Errorf("LookupBetween(B, C) = %+v, want the second 12345 record", between)
	}

	if _, err := ds.LookupByTrainNumber("00000"); !errors.Is(err, ErrTrainNotFound) {
		t.Errorf("expected ErrTrainNotFound for 00000, got %v", err)
	}
}

func TestDataset_LookupByTrainNumber_Coercion(t *testing.T) {
	ds := scenario()

	tests := []struct {
		name   string
		number any
	}{
		{"string", "12345"},
		{"int", 12345},
		{"int64", int64(12345)},
		{"uint32", uint32(12345)},
		{"float", 12345.0},
		{"bytes", []byte("12345")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legs, err := ds.LookupByTrainNumber(tt.number)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(legs) != 2 {
				t.Errorf("expected 2 records, got %d", len(legs))
			}
		})
	}
}

func TestDataset_LookupByTrainNumber_NotFound(t *testing.T) {
	ds := scenario()

	tests := []struct {
		name   string
		number any
		want   string
	}{
		{"unknown", "00000", "Train number 00000 not found in dataset!"},
		{"empty", "", "Train number  not found in dataset!"},
		{"nil", nil, "Train number  not found in dataset!"},
		{"leading zero is a different identifier", "012345", "Train number 012345 not found in dataset!"},
		{"padding is kept", " 12345 ", "Train number  12345  not found in dataset!"},
		{"struct", struct{ N int }{1}, "Train number {1} not found in dataset!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legs, err := ds.LookupByTrainNumber(tt.number)
			if legs != nil {
				t.Errorf("expected no records, got %+v", legs)
			}
			var nf *NotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("expected *NotFoundError, got %T %v", err, err)
			}
			if err.Error() != tt.want {
				t.Errorf("message = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestDataset_ProjectFirst_CopiesEveryField(t *testing.T) {
	rec := Record{
		TrainNumber:     "90210",
		TrainName:       "Andheri Local",
		CurrentStation:  "Andheri",
		NextStation:     "Bandra",
		DistanceKM:      7.8,
		TimeToNextMin:   11,
		DelayMinutes:    5,
		ExpectedArrival: "10:58",
		Status:          "Running Late",
		LastUpdated:     "2025-10-01 10:33:00",
		CrowdLevel:      "Low",
		TrainType:       "Slow",
	}
	got := ProjectFirst([]Record{rec, {TrainNumber: "90210"}})
	want := Train{
		Number:          "90210",
		Name:            "Andheri Local",
		CurrentStation:  "Andheri",
		NextStation:     "Bandra",
		DistanceKM:      7.8,
		TimeToNextMin:   11,
		DelayMinutes:    5,
		ExpectedArrival: "10:58",
		Status:          "Running Late",
		LastUpdated:     "2025-10-01 10:33:00",
		CrowdLevel:      "Low",
		TrainType:       "Slow",
	}
	if got != want {
		t.Errorf("ProjectFirst = %+v, want %+v", got, want)
	}
}

func TestDataset_ProjectFirst_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty records")
		}
	}()
	ProjectFirst(nil)
}

func TestDataset_LookupBetween_Normalization(t *testing.T) {
	ds := New([]Record{
		{TrainNumber: "1", CurrentStation: " Andheri ", NextStation: "Bandra"},
		{TrainNumber: "2", CurrentStation: "Bandra", NextStation: "Andheri"},
		{TrainNumber: "3", CurrentStation: "ANDHERI", NextStation: "bandra"},
	})

	canonical := ds.LookupBetween("andheri", "bandra")
	if len(canonical) != 2 || canonical[0].TrainNumber != "1" || canonical[1].TrainNumber != "3" {
		t.Fatalf("unexpected canonical result: %+v", canonical)
	}

	variants := [][2]string{
		{" Andheri ", "BANDRA"},
		{"ANDHERI", "  bandra"},
		{"\tandheri\n", "Bandra"},
	}
	for _, v := range variants {
		got := ds.LookupBetween(v[0], v[1])
		if !reflect.DeepEqual(got, canonical) {
			t.Errorf("LookupBetween(%q, %q) = %+v, want %+v", v[0], v[1], got, canonical)
		}
	}
}

func TestDataset_LookupBetween_EmptyIsNotError(t *testing.T) {
	ds := scenario()

	tests := []struct {
		name     string
		from, to string
	}{
		{"reversed segment", "B", "A"},
		{"unknown stations", "Nowhere", "Elsewhere"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ds.LookupBetween(tt.from, tt.to)
			if got == nil {
				t.Fatal("expected empty non-nil slice")
			}
			if len(got) != 0 {
				t.Errorf("expected no records, got %+v", got)
			}
		})
	}
}

func TestDataset_QueriesAreIdempotent(t *testing.T) {
	ds := scenario()

	first, _ := ds.LookupByTrainNumber("12345")
	for i := 0; i < 5; i++ {
		again, err := ds.LookupByTrainNumber("12345")
		if err != nil || !reflect.DeepEqual(first, again) {
			t.Fatalf("iteration %d: results differ: %+v vs %+v (%v)", i, first, again, err)
		}
	}

	seg := ds.LookupBetween("x", "y")
	for i := 0; i < 5; i++ {
		if again := ds.LookupBetween("X", "Y"); !reflect.DeepEqual(seg, again) {
			t.Fatalf("iteration %d: segment results differ", i)
		}
	}
}

func TestDataset_ResultsDoNotAliasStorage(t *testing.T) {
	ds := scenario()

	legs, _ := ds.LookupByTrainNumber("12345")
	legs[0].CurrentStation = "mutated"

	again, _ := ds.LookupByTrainNumber("12345")
	if again[0].CurrentStation != "A" {
		t.Errorf("dataset was mutated through a query result")
	}

	all := ds.Records()
	all[2].TrainNumber = "mutated"
	if _, err := ds.LookupByTrainNumber("99999"); err != nil {
		t.Errorf("dataset was mutated through Records(): %v", err)
	}
}

func TestDataset_Stations(t *testing.T) {
	ds := New([]Record{
		{TrainNumber: "1", CurrentStation: "Dadar", NextStation: "Bandra"},
		{TrainNumber: "2", CurrentStation: "Bandra", NextStation: "Andheri"},
		{TrainNumber: "3", CurrentStation: "", NextStation: "Dadar"},
	})

	want := []string{"Andheri", "Bandra", "Dadar"}
	if got := ds.Stations(); !reflect.DeepEqual(got, want) {
		t.Errorf("Stations() = %v, want %v", got, want)
	}
	if ds.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ds.Len())
	}
}
