package matching

import "fmt"

// WeightsError represents an invalid weight configuration
type WeightsError struct {
	Message string
}

func (e *WeightsError) Error() string {
	return fmt.Sprintf("invalid weights: %s", e.Message)
}

// CareerValidationError represents a catalog entry missing required fields
type CareerValidationError struct {
	CareerID string
	Cause    error
}

func (e *CareerValidationError) Error() string {
	id := e.CareerID
	if id == "" {
		id = "(no id)"
	}
	return fmt.Sprintf("malformed career %s: %v", id, e.Cause)
}

func (e *CareerValidationError) Unwrap() error {
	return e.Cause
}

// EntryError records a catalog entry skipped during a batch match. Reason
// carries the error text into serialized results.
type EntryError struct {
	Index    int    `json:"index"`
	CareerID string `json:"career_id,omitempty"`
	Reason   string `json:"reason"`
	Err      error  `json:"-"`
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("catalog entry %d skipped: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
