// Package analysis implements the read-only flight-delay queries that commands
// can invoke. Every query loads its dataset from disk on each call.
package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/datapaths"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/dataset"
)

const (
	topHours      = 5
	topReasons    = 5
	topHighImpact = 10
)

// Analyzer runs the analysis functions against the datasets under paths.
type Analyzer struct {
	paths datapaths.Paths
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(paths datapaths.Paths) *Analyzer {
	return &Analyzer{paths: paths}
}

// Run decodes params for fn and executes it. Data problems the caller should
// see as a result (missing file, nothing matched) come back as ErrorResult;
// the returned error is reserved for bad params and unreadable data.
func (a *Analyzer) Run(fn Function, params json.RawMessage) (Result, error) {
	switch fn {
	case TrafficAnalysis:
		var p AirportParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return a.Traffic(p.airport())
	case PredictDelay:
		var p PredictParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		hour, ok := p.hour()
		if !ok {
			return ErrorResult{Error: "No historical data found: an hour of day (0-23) is required."}, nil
		}
		return a.Predict(hour)
	case RunwayAnalysis:
		var p AirportParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return a.Runways(p.airport())
	case DelayReasonAnalysis:
		var p DelayReasonParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return a.DelayReasons(p.DelayReason)
	case HighImpactFlights:
		var p AirportParams
		if err := decodeParams(params, &p); err != nil {
			return nil, err
		}
		return a.HighImpact(p.airport())
	default:
		return nil, fmt.Errorf("unsupported function %v", fn)
	}
}

func (a *Analyzer) loadFlights(columns ...string) (*dataset.FlightTable, *ErrorResult, error) {
	path := a.paths.PrimaryFile()
	table, err := dataset.LoadFlights(path)
	if errors.Is(err, dataset.ErrFileNotFound) {
		return nil, &ErrorResult{Error: fmt.Sprintf("Data file not found: %s", path)}, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if err := table.Require(columns...); err != nil {
		return nil, nil, err
	}
	return table, nil, nil
}

// Traffic returns the five busiest hours by flight count and the five hours
// with the lowest average delay. Ties keep ascending hour order.
func (a *Analyzer) Traffic(airport string) (Result, error) {
	table, errRes, err := a.loadFlights(dataset.ColFlightID, dataset.ColHourOfDay, dataset.ColArrivalDelay)
	if errRes != nil || err != nil {
		return resultOrNil(errRes), err
	}

	type agg struct {
		count    int
		delaySum float64
		delayN   int
	}
	byHour := make(map[int]*agg)
	for _, r := range table.Records {
		if !r.HasHour {
			continue
		}
		g, ok := byHour[r.Hour]
		if !ok {
			g = &agg{}
			byHour[r.Hour] = g
		}
		if r.FlightID != "" {
			g.count++
		}
		if r.HasDelay {
			g.delaySum += r.ArrivalDelayMinutes
			g.delayN++
		}
	}

	summary := make([]HourSummary, 0, len(byHour))
	for hour, g := range byHour {
		row := HourSummary{HourOfDay: hour, FlightCount: g.count}
		if g.delayN > 0 {
			mean := g.delaySum / float64(g.delayN)
			row.AverageDelayMinutes = &mean
		}
		summary = append(summary, row)
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].HourOfDay < summary[j].HourOfDay })

	busiest := make([]HourSummary, len(summary))
	copy(busiest, summary)
	sort.SliceStable(busiest, func(i, j int) bool { return busiest[i].FlightCount > busiest[j].FlightCount })

	best := make([]HourSummary, 0, len(summary))
	for _, row := range summary {
		if row.AverageDelayMinutes != nil {
			best = append(best, row)
		}
	}
	sort.SliceStable(best, func(i, j int) bool { return *best[i].AverageDelayMinutes < *best[j].AverageDelayMinutes })

	return TrafficResult{
		Airport:      airport,
		BusiestHours: head(busiest, topHours),
		BestHours:    head(best, topHours),
	}, nil
}

// Predict reports the historical mean arrival delay for an hour of day.
func (a *Analyzer) Predict(hour int) (Result, error) {
	table, errRes, err := a.loadFlights(dataset.ColHourOfDay, dataset.ColArrivalDelay)
	if errRes != nil || err != nil {
		return resultOrNil(errRes), err
	}

	matched, sum, n := 0, 0.0, 0
	for _, r := range table.Records {
		if !r.HasHour || r.Hour != hour {
			continue
		}
		matched++
		if r.HasDelay {
			sum += r.ArrivalDelayMinutes
			n++
		}
	}
	if matched == 0 {
		return ErrorResult{Error: fmt.Sprintf("No historical data found for hour %d.", hour)}, nil
	}
	if n == 0 {
		return ErrorResult{Error: fmt.Sprintf("No delay data recorded for hour %d.", hour)}, nil
	}

	mean := sum / float64(n)
	return PredictionResult{
		Hour:                hour,
		AverageDelayMinutes: mean,
		Message: fmt.Sprintf("Based on historical data, the predicted average delay for the %s (%d:00) hour is %d minutes.",
			FormatHour(hour), hour, roundHalfEven(mean)),
	}, nil
}

// Runways lists distinct runways in first-appearance order and the most used
// one. Equal counts resolve to the smallest runway, see runwayLess.
func (a *Analyzer) Runways(airport string) (Result, error) {
	table, errRes, err := a.loadFlights(dataset.ColRunway)
	if errRes != nil || err != nil {
		return resultOrNil(errRes), err
	}

	counts := make(map[string]int)
	var names []string
	for _, r := range table.Records {
		if r.Runway == "" {
			continue
		}
		if _, seen := counts[r.Runway]; !seen {
			names = append(names, r.Runway)
		}
		counts[r.Runway]++
	}
	if len(names) == 0 {
		return ErrorResult{Error: "No runway data found."}, nil
	}

	busiest := ""
	for _, name := range names {
		c := counts[name]
		if busiest == "" || c > counts[busiest] || (c == counts[busiest] && runwayLess(name, busiest)) {
			busiest = name
		}
	}

	return RunwayResult{
		Airport:       airport,
		RunwayCount:   len(names),
		RunwayNames:   names,
		BusiestRunway: busiest,
	}, nil
}

// DelayReasons looks up one reason case-insensitively, or summarises the most
// common reasons when reason is empty. A whitespace-only reason is looked up
// like any other and matches nothing.
func (a *Analyzer) DelayReasons(reason string) (Result, error) {
	if reason == "" {
		return a.topDelayReasons()
	}

	table, errRes, err := a.loadFlights(dataset.ColDelayReason, dataset.ColArrivalDelay)
	if errRes != nil || err != nil {
		return resultOrNil(errRes), err
	}

	canonical, matched, sum, n := "", 0, 0.0, 0
	for _, r := range table.Records {
		if r.DelayReason == "" || strings.ToLower(r.DelayReason) != strings.ToLower(reason) {
			continue
		}
		if matched == 0 {
			canonical = r.DelayReason
		}
		matched++
		if r.HasDelay {
			sum += r.ArrivalDelayMinutes
			n++
		}
	}
	if matched == 0 {
		return ErrorResult{Error: fmt.Sprintf("No data found for delay reason: '%s'", reason)}, nil
	}
	if n == 0 {
		return ErrorResult{Error: fmt.Sprintf("No delay data recorded for delay reason: '%s'", canonical)}, nil
	}

	return DelayReasonResult{
		DelayReason:         canonical,
		AverageDelayMinutes: roundHalfEven(sum / float64(n)),
		OccurrenceCount:     matched,
	}, nil
}

func (a *Analyzer) topDelayReasons() (Result, error) {
	table, errRes, err := a.loadFlights(dataset.ColDelayReason)
	if errRes != nil || err != nil {
		return resultOrNil(errRes), err
	}

	order := []ReasonCount{}
	index := make(map[string]int)
	for _, r := range table.Records {
		if r.DelayReason == "" {
			continue
		}
		i, ok := index[r.DelayReason]
		if !ok {
			i = len(order)
			index[r.DelayReason] = i
			order = append(order, ReasonCount{Reason: r.DelayReason})
		}
		order[i].Count++
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].Count > order[j].Count })

	return DelayReasonSummary{
		Summary:    fmt.Sprintf("Top %d most common delay reasons", topReasons),
		TopReasons: head(order, topReasons),
	}, nil
}

// HighImpact returns the cascade-causing flights with the largest delays.
// Equal delays keep row order.
func (a *Analyzer) HighImpact(airport string) (Result, error) {
	table, err := dataset.LoadCascades(a.paths.CascadingDelaysFile())
	if errors.Is(err, dataset.ErrFileNotFound) {
		return ErrorResult{Error: "Cascading delays file not found."}, nil
	}
	if err != nil {
		return nil, err
	}
	if err := table.Require(dataset.ColFlightID, dataset.ColArrivalDelay, dataset.ColCausesCascade); err != nil {
		return nil, err
	}

	flights := make([]FlightDelay, 0)
	for _, r := range table.Records {
		if r.CausesCascade && r.HasDelay {
			flights = append(flights, FlightDelay{FlightID: r.FlightID, ArrivalDelayMinutes: r.ArrivalDelayMinutes})
		}
	}
	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].ArrivalDelayMinutes > flights[j].ArrivalDelayMinutes
	})

	return HighImpactResult{
		Airport:           airport,
		HighImpactFlights: head(flights, topHighImpact),
	}, nil
}

// runwayLess orders runway ids numerically when both parse as numbers and as
// strings otherwise, so "9" sorts before "27".
func runwayLess(a, b string) bool {
	x, errA := strconv.ParseFloat(a, 64)
	y, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil && x != y {
		return x < y
	}
	return a < b
}

func resultOrNil(r *ErrorResult) Result {
	if r == nil {
		return nil
	}
	return *r
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// roundHalfEven rounds halves to the nearest even integer (2.5 -> 2).
func roundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}
