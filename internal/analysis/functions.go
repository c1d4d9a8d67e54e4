package analysis

import "sort"

// Function identifies one of the analysis operations a command can invoke.
type Function int

const (
	FunctionUnknown Function = iota
	TrafficAnalysis
	PredictDelay
	RunwayAnalysis
	DelayReasonAnalysis
	HighImpactFlights
)

var functionNames = map[Function]string{
	TrafficAnalysis:     "get_airport_traffic_analysis",
	PredictDelay:        "predict_delay",
	RunwayAnalysis:      "get_runway_analysis",
	DelayReasonAnalysis: "get_delay_reason_analysis",
	HighImpactFlights:   "find_high_impact_flights",
}

// String returns the wire name of the function.
func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return "unknown"
}

// Functions lists every invokable function in declaration order.
func Functions() []Function {
	return []Function{TrafficAnalysis, PredictDelay, RunwayAnalysis, DelayReasonAnalysis, HighImpactFlights}
}

// Registry maps command names to functions. It has no mutators; build it once
// with NewRegistry and share it.
type Registry struct {
	byName map[string]Function
}

// NewRegistry returns the fixed registry of the five analysis functions. The
// runway analysis is also reachable as "get_airport_runway_analysis", the name
// the assistant model was prompted with.
func NewRegistry() Registry {
	r := Registry{byName: make(map[string]Function, len(functionNames)+1)}
	for fn, name := range functionNames {
		r.byName[name] = fn
	}
	r.byName["get_airport_runway_analysis"] = RunwayAnalysis
	return r
}

// Lookup resolves a command name. Matching is exact.
func (r Registry) Lookup(name string) (Function, bool) {
	fn, ok := r.byName[name]
	return fn, ok
}

// Names returns every accepted name, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
