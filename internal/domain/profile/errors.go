package profile

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownPosition   = errors.New("unknown position")
	ErrDegenerateProfile = errors.New("degenerate profile: all weights zero")
	ErrInvalidWeight     = errors.New("invalid weight")
	ErrWeightSum         = errors.New("weight sum exceeds tolerance")
	ErrCurveNotMonotonic = errors.New("age curve not monotonically non-decreasing")
	ErrInvalidParams     = errors.New("invalid retirement parameters")
	ErrDuplicateProfile  = errors.New("duplicate position profile")
	ErrLoadProfiles      = errors.New("load profiles failed")
)
