package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const defaultAirport = "default"

// AirportParams is accepted by the traffic, runway and high-impact functions.
type AirportParams struct {
	AirportCode string `json:"airport_code"`
}

func (p AirportParams) airport() string {
	if p.AirportCode == "" {
		return defaultAirport
	}
	return p.AirportCode
}

// PredictParams carries the requested hour either directly or nested under
// flight_details.
type PredictParams struct {
	Hour          *Hour `json:"hour"`
	FlightDetails *struct {
		Hour *Hour `json:"hour"`
	} `json:"flight_details"`
}

func (p PredictParams) hour() (int, bool) {
	if p.Hour != nil {
		return int(*p.Hour), true
	}
	if p.FlightDetails != nil && p.FlightDetails.Hour != nil {
		return int(*p.FlightDetails.Hour), true
	}
	return 0, false
}

type DelayReasonParams struct {
	DelayReason string `json:"delay_reason"`
}

// Hour decodes an integral JSON number or a numeric string such as "14".
type Hour int

func (h *Hour) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != float64(int(v)) {
		return fmt.Errorf("invalid hour %s: expected a whole number", string(b))
	}
	*h = Hour(int(v))
	return nil
}

// decodeParams strictly decodes raw into dst. Unknown keys are an error, in
// the same way an unexpected keyword argument would be.
func decodeParams(raw json.RawMessage, dst interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}
