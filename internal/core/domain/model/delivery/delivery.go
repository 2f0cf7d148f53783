package delivery

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"gigdelivery/internal/core/domain/model/deliverystep"
	"gigdelivery/internal/core/domain/model/kernel"
	"gigdelivery/internal/pkg/errs"
	"gigdelivery/internal/pkg/guard"
)

var (
	// ErrStepBelongsToAnotherDelivery is the cause when a step carries a different delivery id.
	ErrStepBelongsToAnotherDelivery = errors.New("step belongs to another delivery")

	// ErrStepBelongsToAnotherShift is the cause when a step carries a different shift id.
	ErrStepBelongsToAnotherShift = errors.New("step belongs to another shift")

	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created through NewDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery groups the steps of one delivery run within a shift, in route order.
//
// Business rules:
//   - Every step carries this delivery's id and shift id
//   - A step is added at most once
//   - Status is derived from the steps, never stored
type Delivery struct {
	id        kernel.UUID
	shiftID   kernel.UUID
	createdAt time.Time

	// steps are kept in the order they were added
	steps []*deliverystep.DeliveryStep

	guard guard.ConstructorGuard
}

// NewDelivery creates an empty delivery for shiftID with a fresh id.
//
//	d, err := delivery.NewDelivery(shiftID)
//	if err != nil {
//	    return err
//	}
//	step, err := deliverystep.NewDeliveryStep(shiftID, d.ID(), loc, 12000, 12007, 2)
func NewDelivery(shiftID kernel.UUID, opts ...Option) (*Delivery, error) {
	if err := shiftID.Validate(); err != nil {
		return nil, errs.NewIDIsInvalidErrorWithCause("shiftID", shiftID.String(), err)
	}

	o := newOptions(opts)
	return &Delivery{
		id:        kernel.NewUUID(),
		shiftID:   shiftID,
		createdAt: o.clock.Now(),
		steps:     make([]*deliverystep.DeliveryStep, 0),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrDeliveryIsNotConstructed for nil or zero-value deliveries.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares deliveries by id.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery id.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// ShiftID returns the shift the delivery belongs to.
func (d *Delivery) ShiftID() kernel.UUID {
	return d.shiftID
}

// CreatedAt returns when the delivery was created.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// Steps returns the steps in route order. The slice is a copy; the steps are shared.
func (d *Delivery) Steps() []*deliverystep.DeliveryStep {
	return slices.Clone(d.steps)
}

// StepCount returns the number of steps.
func (d *Delivery) StepCount() int {
	return len(d.steps)
}

// HasStep reports whether a step with stepID belongs to the delivery.
func (d *Delivery) HasStep(stepID kernel.UUID) bool {
	return d.indexOf(stepID) >= 0
}

// UsesLocation reports whether any step visits locationID.
func (d *Delivery) UsesLocation(locationID kernel.UUID) bool {
	return slices.ContainsFunc(d.steps, func(s *deliverystep.DeliveryStep) bool {
		return s.Location().ID().IsEqual(locationID)
	})
}

// AddStep appends step to the route.
//
// Returns:
//   - an error matching errs.ErrValueIsRequired if step is nil or not constructed
//   - an error matching ErrStepBelongsToAnotherDelivery or ErrStepBelongsToAnotherShift
//     if the step's ids do not match the delivery
//   - an error matching errs.ErrIDAlreadyExists if the step was already added
func (d *Delivery) AddStep(step *deliverystep.DeliveryStep) error {
	if err := step.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("step", err)
	}

	if !step.DeliveryID().IsEqual(d.id) {
		return errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%w: step delivery %s, delivery %s",
			ErrStepBelongsToAnotherDelivery, step.DeliveryID(), d.id))
	}

	if !step.ShiftID().IsEqual(d.shiftID) {
		return errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%w: step shift %s, delivery shift %s",
			ErrStepBelongsToAnotherShift, step.ShiftID(), d.shiftID))
	}

	if d.HasStep(step.ID()) {
		return errs.NewIDAlreadyExistsError("stepID", step.ID().String())
	}

	d.steps = append(d.steps, step)
	return nil
}

// RemoveStep drops the step with stepID and returns it.
func (d *Delivery) RemoveStep(stepID kernel.UUID) (*deliverystep.DeliveryStep, error) {
	if err := stepID.Validate(); err != nil {
		return nil, errs.NewIDIsInvalidErrorWithCause("stepID", stepID.String(), err)
	}

	i := d.indexOf(stepID)
	if i < 0 {
		return nil, errs.NewIDNotFoundError("stepID", stepID.String())
	}

	step := d.steps[i]
	d.steps = slices.Delete(d.steps, i, i+1)
	return step, nil
}

// TotalMiles sums the mileage of every step.
func (d *Delivery) TotalMiles() int {
	total := 0
	for _, s := range d.steps {
		total += s.NumberOfMiles()
	}
	return total
}

// TotalOrders sums the order counts of every step.
func (d *Delivery) TotalOrders() int {
	total := 0
	for _, s := range d.steps {
		total += s.OrderCount()
	}
	return total
}

// TotalDuration sums the durations of the steps that have one.
func (d *Delivery) TotalDuration() time.Duration {
	var total time.Duration
	for _, s := range d.steps {
		if dur := s.Duration(); dur != nil {
			total += *dur
		}
	}
	return total
}

// Status is NotStarted when no step has started (including when there are no steps),
// Complete when every step is Complete, and InProgress otherwise.
func (d *Delivery) Status() deliverystep.Status {
	started, complete := 0, 0
	for _, s := range d.steps {
		switch s.Status() {
		case deliverystep.InProgress:
			started++
		case deliverystep.Complete:
			started++
			complete++
		}
	}

	switch {
	case started == 0:
		return deliverystep.NotStarted
	case complete == len(d.steps):
		return deliverystep.Complete
	default:
		return deliverystep.InProgress
	}
}

func (d *Delivery) indexOf(stepID kernel.UUID) int {
	return slices.IndexFunc(d.steps, func(s *deliverystep.DeliveryStep) bool {
		return s.ID().IsEqual(stepID)
	})
}
