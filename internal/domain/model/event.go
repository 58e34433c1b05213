// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"fmt"
)

// Athlete holds the athlete identity as it appears in a source document.
// Source documents are inconsistent: the field may be a full name, the
// integer 1/2, or the string "1"/"2". Numeric JSON values are captured as
// their decimal string form, so "1" and 1 decode to the same value.
type Athlete string

// UnmarshalJSON accepts both string and numeric JSON values.
func (a *Athlete) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Athlete(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("athlete: unsupported JSON value %s", data)
	}
	*a = Athlete(n.String())
	return nil
}

// Event is a single observation of a scoring change within a match.
// All fields are optional in the source documents; pointer fields keep the
// present/absent distinction that field accuracy scoring depends on
// (an explicit 0 is compared, a missing value is skipped).
type Event struct {
	TimestampSeconds  *int    `json:"timestamp_seconds,omitempty"`
	MatchClock        string  `json:"match_clock,omitempty"`
	Athlete           Athlete `json:"athlete,omitempty"`
	PointsChange      *int    `json:"points_change,omitempty"`
	AdvantagesChange  *int    `json:"advantages_change,omitempty"`
	PenaltiesChange   *int    `json:"penalties_change,omitempty"`
	Action            string  `json:"action,omitempty"`
	IBJJFRule         string  `json:"ibjjf_rule,omitempty"`
	RunningScore      string  `json:"running_score,omitempty"`
	RunningAdvantages string  `json:"running_advantages,omitempty"`
	RunningPenalties  string  `json:"running_penalties,omitempty"`
}

// Timestamp returns timestamp_seconds, treating an absent value as 0.
// This mirrors the fallback used when events carry no parseable clock.
func (e *Event) Timestamp() int {
	if e.TimestampSeconds == nil {
		return 0
	}
	return *e.TimestampSeconds
}

// Int is a convenience for building optional integer fields in literals.
func Int(v int) *int { return &v }
