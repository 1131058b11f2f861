/*
Package dataset provides train status loading and querying.

The package reads a CSV file with one row per train leg (a train's status
between its current and next station) and keeps the rows in memory, in file
order, for the lifetime of the process. Nothing mutates a Dataset after it is
built, so it is safe for concurrent readers.

# Basic Usage

	ds, err := dataset.LoadFile("local_train_live_status.csv")
	if err != nil {
	    log.Fatal(err)
	}

	legs, err := ds.LookupByTrainNumber("12345")
	if errors.Is(err, dataset.ErrTrainNotFound) {
	    // unknown train number
	}
	train := dataset.ProjectFirst(legs)

	segment := ds.LookupBetween(" Andheri ", "BANDRA") // may be empty

# Columns

All twelve columns are required; header matching ignores case:

	Train_Number, Train_Name, Current_Station, Next_Station,
	Distance_Between_Stations_km, Time_To_Reach_Next_min, Delay_Minutes,
	Expected_Arrival_CSMT, Status, Last_Updated, Crowd_Level, Train_Type

# Train Numbers

Train numbers are opaque text. Queries accept any value that converts to text
(12345, int64(12345), "12345") and compare the text form.

# Snapshot Cache

Parse the CSV once and keep the Dataset. LoadFileCached additionally stores a
gob snapshot next to the source so later starts skip parsing.
*/
package dataset
