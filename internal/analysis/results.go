package analysis

// Result is the output of an analysis function. The concrete types below are
// the complete set; the formatter switches over them.
type Result interface {
	result()
}

// HourSummary is one row of the per-hour traffic table. AverageDelayMinutes is
// nil when no flight in the hour has a recorded delay.
type HourSummary struct {
	HourOfDay           int      `json:"Hour_of_Day"`
	FlightCount         int      `json:"Flight_Count"`
	AverageDelayMinutes *float64 `json:"Average_Delay_Minutes"`
}

type TrafficResult struct {
	Airport      string        `json:"airport"`
	BusiestHours []HourSummary `json:"busiest_hours_by_flight_count"`
	BestHours    []HourSummary `json:"best_hours_by_lowest_delay"`
}

type PredictionResult struct {
	Hour                int     `json:"hour"`
	AverageDelayMinutes float64 `json:"average_delay_minutes"`
	Message             string  `json:"message"`
}

type RunwayResult struct {
	Airport       string   `json:"airport"`
	RunwayCount   int      `json:"runway_count"`
	RunwayNames   []string `json:"runway_names"`
	BusiestRunway string   `json:"busiest_runway_by_traffic"`
}

// DelayReasonResult describes a single delay reason. DelayReason is spelled
// as in the dataset, not as requested.
type DelayReasonResult struct {
	DelayReason         string `json:"delay_reason"`
	AverageDelayMinutes int    `json:"average_delay_minutes"`
	OccurrenceCount     int    `json:"occurrence_count"`
}

type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// DelayReasonSummary lists the most common reasons, most frequent first.
type DelayReasonSummary struct {
	Summary    string        `json:"summary"`
	TopReasons []ReasonCount `json:"top_delay_reasons"`
}

type FlightDelay struct {
	FlightID            string  `json:"Flight_ID"`
	ArrivalDelayMinutes float64 `json:"Arrival_Delay_Minutes"`
}

type HighImpactResult struct {
	Airport           string        `json:"airport"`
	HighImpactFlights []FlightDelay `json:"high_impact_flights"`
}

// ErrorResult is returned for missing data files and empty selections.
type ErrorResult struct {
	Error string `json:"error"`
}

func (TrafficResult) result()      {}
func (PredictionResult) result()   {}
func (RunwayResult) result()       {}
func (DelayReasonResult) result()  {}
func (DelayReasonSummary) result() {}
func (HighImpactResult) result()   {}
func (ErrorResult) result()        {}
