package store

import "errors"

// Sentinel kinds for match store errors.
var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrNoGroundTruth     = errors.New("ground truth file not found")
	ErrResultNotFound    = errors.New("result file not found")
	ErrMalformedDocument = errors.New("malformed document")
)
