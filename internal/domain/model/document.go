package model

import "encoding/json"

// GroundTruth is the human-authored reference document for one match.
// Missing fields decode to their zero values; an absent events list is an
// empty sequence.
type GroundTruth struct {
	Athlete1Name string  `json:"athlete_1_name"`
	Athlete2Name string  `json:"athlete_2_name"`
	FinalScore   string  `json:"final_score"`
	Winner       string  `json:"winner"`
	Events       []Event `json:"events"`
}

// Analysis is the structured match analysis produced by a model run.
type Analysis struct {
	Athlete1Name string  `json:"athlete_1_name"`
	Athlete2Name string  `json:"athlete_2_name"`
	FinalScore   string  `json:"final_score"`
	Winner       string  `json:"winner"`
	Events       []Event `json:"events"`
}

// Result is a model-produced prediction document under evaluation.
type Result struct {
	Model           string   `json:"model"`
	MediaResolution string   `json:"media_resolution"`
	Analysis        Analysis `json:"analysis"`
}

// UnmarshalJSON decodes a result document, tolerating analysis fields
// hoisted to the top level: when no "analysis" key is present the whole
// document is decoded as the analysis.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw struct {
		Model           string          `json:"model"`
		MediaResolution string          `json:"media_resolution"`
		Analysis        json.RawMessage `json:"analysis"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Model = raw.Model
	r.MediaResolution = raw.MediaResolution
	if len(raw.Analysis) > 0 && string(raw.Analysis) != "null" {
		return json.Unmarshal(raw.Analysis, &r.Analysis)
	}
	return json.Unmarshal(data, &r.Analysis)
}
