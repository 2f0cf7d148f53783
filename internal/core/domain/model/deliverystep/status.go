package deliverystep

import (
	"errors"
	"fmt"

	"gigdelivery/internal/pkg/errs"
)

// ErrInvalidStatus is the cause of every rejected status value or status string.
var ErrInvalidStatus = errors.New("invalid delivery step status")

// Status is the lifecycle state of a delivery step.
//
//	NotStarted ──arrive──> InProgress ──depart──> Complete
//	     ^                                           │
//	     └──────────────────reset────────────────────┘
//
// Reset is allowed from every state. Unknown is the zero value and is never a
// valid state; it only shows up on steps that bypassed NewDeliveryStep.
type Status int

const (
	// Unknown is the invalid zero value.
	Unknown Status = iota

	// NotStarted is the initial state: the courier has not reached the stop yet.
	NotStarted

	// InProgress means the arrival has been recorded.
	InProgress

	// Complete means the departure has been recorded.
	Complete
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		NotStarted: "Not Started",
		InProgress: "In Progress",
		Complete:   "Complete",
	}
}

// ParseStatus maps a display string ("Not Started", "In Progress", "Complete")
// back to its Status. Any other string yields an error matching ErrInvalidStatus.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery step status",
		fmt.Errorf("%w: %q", ErrInvalidStatus, s),
	)
}

// Validate returns an error matching ErrInvalidStatus unless s is one of
// NotStarted, InProgress or Complete.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery step status",
			fmt.Errorf("%w: %d", ErrInvalidStatus, int(s)),
		)
	}
	return nil
}

// String returns the display name, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Arrive returns InProgress. Any valid state may arrive again; the step
// discards the previous arrival and departure when it does.
func (s Status) Arrive() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return InProgress, nil
}

// Depart returns Complete from any valid state.
func (s Status) Depart() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Complete, nil
}

// Reset returns NotStarted from any state, including Unknown.
func (s Status) Reset() Status {
	return NotStarted
}
