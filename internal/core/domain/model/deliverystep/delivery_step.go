package deliverystep

import (
	"errors"
	"fmt"
	"time"

	"gigdelivery/internal/core/domain/model/kernel"
	"gigdelivery/internal/core/domain/model/location"
	"gigdelivery/internal/pkg/errs"
)

var (
	// ErrInvalidOdometerReading is the cause when a current reading would fall below the previous one.
	ErrInvalidOdometerReading = errors.New("invalid odometer reading")

	// ErrDepartureBeforeArrival is the cause when the clock reports a departure earlier than the arrival.
	ErrDepartureBeforeArrival = errors.New("departure cannot be before arrival")

	// ErrDeliveryStepIsNotConstructed is returned when a DeliveryStep was not created through NewDeliveryStep.
	ErrDeliveryStepIsNotConstructed = errors.New("DeliveryStep must be created via NewDeliveryStep constructor")
)

const clockLayout = "15:04"

// DeliveryStep is one stop of a delivery route. It links a Location to the
// odometer readings, order count and arrival/departure times recorded there.
//
// Invariants:
//   - CurrentOdometerReading() >= PreviousOdometerReading() at all times
//   - NumberOfMiles() == CurrentOdometerReading() - PreviousOdometerReading()
//   - Duration() is set only when both timestamps are set, and equals departure - arrival
//   - OrderCount() never goes below zero
//
// The shift and delivery ids are foreign identifiers; the step does not check
// them against any registry.
type DeliveryStep struct {
	id         kernel.UUID
	shiftID    kernel.UUID
	deliveryID kernel.UUID
	location   *location.Location

	// previousOdometerReading is fixed at construction
	previousOdometerReading int
	currentOdometerReading  int
	numberOfMiles           int
	orderCount              int

	createdAt  time.Time
	arrivedAt  *time.Time
	departedAt *time.Time
	duration   *time.Duration
	status     Status

	clock         kernel.Clock
	isConstructed bool
}

// NewDeliveryStep creates a step in NotStarted status with no timestamps recorded.
//
// Parameters:
//   - shiftID, deliveryID: must be valid (non-zero) identifiers
//   - loc: the visited location, must be constructed
//   - previousOdometerReading: reading when the previous stop was left, must not be negative
//   - currentOdometerReading: must not be below previousOdometerReading
//   - orderCount: orders handled at this stop, must not be negative
//
// Every validation failure is reported in the returned error; an odometer
// failure matches ErrInvalidOdometerReading.
//
//	step, err := deliverystep.NewDeliveryStep(shiftID, deliveryID, loc, 12000, 12007, 2)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(step.NumberOfMiles()) // 7
func NewDeliveryStep(
	shiftID kernel.UUID,
	deliveryID kernel.UUID,
	loc *location.Location,
	previousOdometerReading int,
	currentOdometerReading int,
	orderCount int,
	opts ...Option,
) (*DeliveryStep, error) {
	o := newOptions(opts)

	step := &DeliveryStep{
		id:            kernel.NewUUID(),
		status:        NotStarted,
		clock:         o.clock,
		isConstructed: true,
	}

	if err := errors.Join(
		step.setShiftID(shiftID),
		step.setDeliveryID(deliveryID),
		step.setLocation(loc),
		step.setOdometerReadings(previousOdometerReading, currentOdometerReading),
		step.setOrderCount(orderCount),
	); err != nil {
		return nil, err
	}

	step.createdAt = step.clock.Now()
	return step, nil
}

// Validate returns ErrDeliveryStepIsNotConstructed for nil or zero-value steps.
func (s *DeliveryStep) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrDeliveryStepIsNotConstructed
	}
	return nil
}

// IsEqual reports whether other belongs to the same delivery.
// Two different stops of one delivery are therefore equal; use IsSameStep
// to tell individual steps apart.
func (s *DeliveryStep) IsEqual(other *DeliveryStep) bool {
	return other != nil && s.deliveryID.IsEqual(other.deliveryID)
}

// IsSameStep reports whether other is this very step, by step id.
func (s *DeliveryStep) IsSameStep(other *DeliveryStep) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the step's own identifier.
func (s *DeliveryStep) ID() kernel.UUID {
	return s.id
}

// ShiftID returns the shift the step belongs to.
func (s *DeliveryStep) ShiftID() kernel.UUID {
	return s.shiftID
}

// DeliveryID returns the delivery the step belongs to.
func (s *DeliveryStep) DeliveryID() kernel.UUID {
	return s.deliveryID
}

// Location returns the visited location.
func (s *DeliveryStep) Location() *location.Location {
	return s.location
}

// PreviousOdometerReading returns the reading fixed at construction.
func (s *DeliveryStep) PreviousOdometerReading() int {
	return s.previousOdometerReading
}

// CurrentOdometerReading returns the latest reading.
func (s *DeliveryStep) CurrentOdometerReading() int {
	return s.currentOdometerReading
}

// NumberOfMiles returns current minus previous reading.
func (s *DeliveryStep) NumberOfMiles() int {
	return s.numberOfMiles
}

// OrderCount returns the number of orders handled at this stop.
func (s *DeliveryStep) OrderCount() int {
	return s.orderCount
}

// CreatedAt returns when the step was created.
func (s *DeliveryStep) CreatedAt() time.Time {
	return s.createdAt
}

// ArrivalTimestamp returns the recorded arrival, or nil.
func (s *DeliveryStep) ArrivalTimestamp() *time.Time {
	return copyPtr(s.arrivedAt)
}

// DepartureTimestamp returns the recorded departure, or nil.
func (s *DeliveryStep) DepartureTimestamp() *time.Time {
	return copyPtr(s.departedAt)
}

// Duration returns departure minus arrival, or nil unless both are recorded.
func (s *DeliveryStep) Duration() *time.Duration {
	return copyPtr(s.duration)
}

// Status returns the current lifecycle state.
func (s *DeliveryStep) Status() Status {
	return s.status
}

// AdjustCurrentOdometerReading replaces the current reading and recomputes the mileage.
// A reading below the previous one is rejected with an error matching
// ErrInvalidOdometerReading, leaving the reading and mileage unchanged.
func (s *DeliveryStep) AdjustCurrentOdometerReading(newReading int) error {
	if newReading < s.previousOdometerReading {
		return errs.NewValueIsInvalidErrorWithCause(
			"current odometer reading",
			fmt.Errorf("%w: %d is less than the previous odometer reading %d",
				ErrInvalidOdometerReading, newReading, s.previousOdometerReading),
		)
	}

	s.currentOdometerReading = newReading
	s.numberOfMiles = s.calculateMileage()
	return nil
}

// SetCurrentOdometerReading is the direct-assignment form of AdjustCurrentOdometerReading.
func (s *DeliveryStep) SetCurrentOdometerReading(newReading int) error {
	return s.AdjustCurrentOdometerReading(newReading)
}

// IncreaseOrderCount adds one order.
func (s *DeliveryStep) IncreaseOrderCount() {
	s.orderCount++
}

// DecreaseOrderCount removes one order; it does nothing at zero.
func (s *DeliveryStep) DecreaseOrderCount() {
	if s.orderCount >= 1 {
		s.orderCount--
	}
}

// SetArrivalTimestamp records the current time as the arrival and moves the step
// to InProgress. A departure and duration left over from an earlier visit are cleared.
func (s *DeliveryStep) SetArrivalTimestamp() error {
	next, err := s.status.Arrive()
	if err != nil {
		return err
	}

	now := s.clock.Now()
	s.arrivedAt = &now
	s.departedAt = nil
	s.duration = nil
	return s.setStatus(next)
}

// SetDepartureTimestamp records the current time as the departure, recomputes the
// duration when an arrival is recorded, and moves the step to Complete.
//
// If the clock reports a time before the recorded arrival the call fails with an
// error matching ErrDepartureBeforeArrival and nothing changes.
func (s *DeliveryStep) SetDepartureTimestamp() error {
	next, err := s.status.Depart()
	if err != nil {
		return err
	}

	now := s.clock.Now()
	if s.arrivedAt != nil && now.Before(*s.arrivedAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"departure timestamp",
			fmt.Errorf("%w: departed %s, arrived %s",
				ErrDepartureBeforeArrival, now.Format(time.RFC3339), s.arrivedAt.Format(time.RFC3339)),
		)
	}

	s.departedAt = &now
	s.calculateDuration()
	return s.setStatus(next)
}

// ResetTimestamps clears arrival, departure and duration and returns the step to NotStarted.
func (s *DeliveryStep) ResetTimestamps() {
	s.arrivedAt = nil
	s.departedAt = nil
	s.duration = nil
	s.status = s.status.Reset()
}

// String renders the location label on the first line and the progress on the second:
//
//	Safeway (5100 Broadway)
//	Arrived: 09:05 Departed: 09:20
func (s *DeliveryStep) String() string {
	label := ""
	if s.location != nil {
		label = s.location.FormatLabel()
	}

	switch s.status {
	case InProgress:
		return fmt.Sprintf("%s\nArrived: %s", label, formatClock(s.arrivedAt))
	case Complete:
		return fmt.Sprintf("%s\nArrived: %s Departed: %s",
			label, formatClock(s.arrivedAt), formatClock(s.departedAt))
	default:
		return fmt.Sprintf("%s\nStatus: %s", label, s.status)
	}
}

// setStatus is the single place the status field is assigned after construction.
func (s *DeliveryStep) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *DeliveryStep) setShiftID(shiftID kernel.UUID) error {
	if err := shiftID.Validate(); err != nil {
		return errs.NewIDIsInvalidErrorWithCause("shiftID", shiftID.String(), err)
	}
	s.shiftID = shiftID
	return nil
}

func (s *DeliveryStep) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewIDIsInvalidErrorWithCause("deliveryID", deliveryID.String(), err)
	}
	s.deliveryID = deliveryID
	return nil
}

func (s *DeliveryStep) setLocation(loc *location.Location) error {
	if err := loc.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location", err)
	}
	s.location = loc
	return nil
}

func (s *DeliveryStep) setOdometerReadings(previous, current int) error {
	if previous < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"previous odometer reading",
			fmt.Errorf("%w: %d is negative", ErrInvalidOdometerReading, previous),
		)
	}

	s.previousOdometerReading = previous
	return s.AdjustCurrentOdometerReading(current)
}

func (s *DeliveryStep) setOrderCount(orderCount int) error {
	if orderCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order count",
			fmt.Errorf("%d is negative", orderCount),
		)
	}
	s.orderCount = orderCount
	return nil
}

func (s *DeliveryStep) calculateMileage() int {
	return s.currentOdometerReading - s.previousOdometerReading
}

func (s *DeliveryStep) calculateDuration() {
	if s.arrivedAt == nil || s.departedAt == nil {
		return
	}
	d := s.departedAt.Sub(*s.arrivedAt)
	s.duration = &d
}

func formatClock(t *time.Time) string {
	if t == nil {
		return "--:--"
	}
	return t.Format(clockLayout)
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
