package dataset

// Column headers expected in the source file
const (
	ColTrainNumber     = "Train_Number"
	ColTrainName       = "Train_Name"
	ColCurrentStation  = "Current_Station"
	ColNextStation     = "Next_Station"
	ColDistanceKM      = "Distance_Between_Stations_km"
	ColTimeToNextMin   = "Time_To_Reach_Next_min"
	ColDelayMinutes    = "Delay_Minutes"
	ColExpectedArrival = "Expected_Arrival_CSMT"
	ColStatus          = "Status"
	ColLastUpdated     = "Last_Updated"
	ColCrowdLevel      = "Crowd_Level"
	ColTrainType       = "Train_Type"
)

// Columns lists every required header in file order
var Columns = []string{
	ColTrainNumber,
	ColTrainName,
	ColCurrentStation,
	ColNextStation,
	ColDistanceKM,
	ColTimeToNextMin,
	ColDelayMinutes,
	ColExpectedArrival,
	ColStatus,
	ColLastUpdated,
	ColCrowdLevel,
	ColTrainType,
}

// Record is one row of the dataset: a train's status on one station leg
type Record struct {
	TrainNumber     string  `json:"train_number" validate:"required"`
	TrainName       string  `json:"train_name"`
	CurrentStation  string  `json:"current_station"`
	NextStation     string  `json:"next_station"`
	DistanceKM      float64 `json:"distance_km" validate:"gte=0"`
	TimeToNextMin   float64 `json:"time_to_next_min" validate:"gte=0"`
	DelayMinutes    float64 `json:"delay_minutes"`
	ExpectedArrival string  `json:"expected_arrival"`
	Status          string  `json:"status"`
	LastUpdated     string  `json:"last_updated"`
	CrowdLevel      string  `json:"crowd_level"`
	TrainType       string  `json:"train_type"`
}

// Train is the detail view of a train: the fields of its first record
type Train struct {
	Number          string  `json:"number"`
	Name            string  `json:"name"`
	CurrentStation  string  `json:"current_station"`
	NextStation     string  `json:"next_station"`
	DistanceKM      float64 `json:"distance_km"`
	TimeToNextMin   float64 `json:"time_to_next_min"`
	DelayMinutes    float64 `json:"delay_minutes"`
	ExpectedArrival string  `json:"expected_arrival"`
	Status          string  `json:"status"`
	LastUpdated     string  `json:"last_updated"`
	CrowdLevel      string  `json:"crowd_level"`
	TrainType       string  `json:"train_type"`
}

// ProjectFirst returns the Train view of the first record.
// records must be non-empty; check the error from LookupByTrainNumber first.
func ProjectFirst(records []Record) Train {
	if len(records) == 0 {
		panic("dataset: ProjectFirst called with no records")
	}
	r := records[0]
	return Train{
		Number:          r.TrainNumber,
		Name:            r.TrainName,
		CurrentStation:  r.CurrentStation,
		NextStation:     r.NextStation,
		DistanceKM:      r.DistanceKM,
		TimeToNextMin:   r.TimeToNextMin,
		DelayMinutes:    r.DelayMinutes,
		ExpectedArrival: r.ExpectedArrival,
		Status:          r.Status,
		LastUpdated:     r.LastUpdated,
		CrowdLevel:      r.CrowdLevel,
		TrainType:       r.TrainType,
	}
}
