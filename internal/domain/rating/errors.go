package rating

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrOutOfRange = errors.New("attribute out of range")
)
