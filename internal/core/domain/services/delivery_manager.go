package services

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"gigdelivery/internal/core/domain/model/delivery"
	"gigdelivery/internal/core/domain/model/deliverystep"
	"gigdelivery/internal/core/domain/model/kernel"
	"gigdelivery/internal/core/domain/model/location"
	"gigdelivery/internal/pkg/errs"
)

var (
	// ErrLocationInUse is returned when removing a location that still has deliveries recorded.
	ErrLocationInUse = errors.New("location has deliveries recorded")

	// ErrDeliveryHasSteps is returned when a delivery entering or leaving the registry has steps attached.
	ErrDeliveryHasSteps = errors.New("delivery has steps")
)

// DeliveryManager is the in-memory registry that owns every Location, Delivery and
// DeliveryStep of a session and keeps the links between them consistent.
//
// Business rules:
//   - An id is registered in at most one collection
//   - A step can only be registered once its delivery and location are
//   - Registering a step attaches it to its delivery and records the delivery at the location
//   - Removing a step undoes both; the location link goes only when no other step of
//     the delivery visits that location
//   - Locations and deliveries cannot be removed while something still refers to them
//
// All methods are safe for concurrent use. Entities handed out are shared, not copied;
// callers mutating them concurrently must coordinate themselves.
//
// Example usage:
//
//	m := services.NewDeliveryManager(logger)
//	_ = m.AddLocation(store)
//	_ = m.AddDelivery(d)
//	step, _ := deliverystep.NewDeliveryStep(d.ShiftID(), d.ID(), store, 12000, 12007, 2)
//	if err := m.AddDeliveryStep(step); err != nil {
//	    return err
//	}
type DeliveryManager struct {
	mu         sync.RWMutex
	locations  map[kernel.UUID]*location.Location
	deliveries map[kernel.UUID]*delivery.Delivery
	steps      map[kernel.UUID]*deliverystep.DeliveryStep
	logger     *slog.Logger
}

// NewDeliveryManager creates an empty registry. A nil logger discards output.
func NewDeliveryManager(logger *slog.Logger) *DeliveryManager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &DeliveryManager{
		locations:  make(map[kernel.UUID]*location.Location),
		deliveries: make(map[kernel.UUID]*delivery.Delivery),
		steps:      make(map[kernel.UUID]*deliverystep.DeliveryStep),
		logger:     logger.With("component", "delivery_manager"),
	}
}

// AddLocation registers loc.
//
// Returns:
//   - an error matching errs.ErrValueIsRequired if loc is nil or not constructed
//   - an error matching errs.ErrIDAlreadyExists if its id is already registered
func (m *DeliveryManager) AddLocation(loc *location.Location) error {
	if err := loc.Validate(); err != nil {
		return m.reject("add location", errs.NewValueIsRequiredErrorWithCause("location", err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isRegistered(loc.ID()) {
		return m.reject("add location", errs.NewIDAlreadyExistsError("locationID", loc.ID().String()))
	}

	m.locations[loc.ID()] = loc
	m.logger.Debug("location registered", "location_id", loc.ID().String(), "name", loc.Name())
	return nil
}

// Location returns the registered location with id.
func (m *DeliveryManager) Location(id kernel.UUID) (*location.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lookup(m.locations, "locationID", id)
}

// RemoveLocation unregisters the location with id. It fails with an error matching
// ErrLocationInUse while any delivery is recorded there.
func (m *DeliveryManager) RemoveLocation(id kernel.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	loc, err := lookup(m.locations, "locationID", id)
	if err != nil {
		return m.reject("remove location", err)
	}

	if n := len(loc.DeliveriesAtLocation()); n > 0 {
		return m.reject("remove location", fmt.Errorf("%w: %d recorded at %s", ErrLocationInUse, n, id))
	}

	delete(m.locations, id)
	m.logger.Debug("location removed", "location_id", id.String())
	return nil
}

// Locations returns every registered location, oldest first.
func (m *DeliveryManager) Locations() []*location.Location {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return byCreation(m.locations)
}

// AddDelivery registers an empty delivery. Steps are attached afterwards through
// AddDeliveryStep; a delivery that already has steps fails with ErrDeliveryHasSteps.
func (m *DeliveryManager) AddDelivery(d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return m.reject("add delivery", errs.NewValueIsRequiredErrorWithCause("delivery", err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isRegistered(d.ID()) {
		return m.reject("add delivery", errs.NewIDAlreadyExistsError("deliveryID", d.ID().String()))
	}

	if n := d.StepCount(); n > 0 {
		return m.reject("add delivery", fmt.Errorf("%w: %d attached to %s", ErrDeliveryHasSteps, n, d.ID()))
	}

	m.deliveries[d.ID()] = d
	m.logger.Debug("delivery registered", "delivery_id", d.ID().String(), "shift_id", d.ShiftID().String())
	return nil
}

// Delivery returns the registered delivery with id.
func (m *DeliveryManager) Delivery(id kernel.UUID) (*delivery.Delivery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lookup(m.deliveries, "deliveryID", id)
}

// RemoveDelivery unregisters the delivery with id. It fails with an error matching
// ErrDeliveryHasSteps until all of its steps have been removed.
func (m *DeliveryManager) RemoveDelivery(id kernel.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, err := lookup(m.deliveries, "deliveryID", id)
	if err != nil {
		return m.reject("remove delivery", err)
	}

	if n := d.StepCount(); n > 0 {
		return m.reject("remove delivery", fmt.Errorf("%w: %d attached to %s", ErrDeliveryHasSteps, n, id))
	}

	delete(m.deliveries, id)
	m.logger.Debug("delivery removed", "delivery_id", id.String())
	return nil
}

// Deliveries returns every registered delivery, oldest first.
func (m *DeliveryManager) Deliveries() []*delivery.Delivery {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return byCreation(m.deliveries)
}

// AddDeliveryStep registers step, appends it to its delivery and records the
// delivery at the step's location.
//
// Returns:
//   - an error matching errs.ErrValueIsRequired if step is nil or not constructed
//   - an error matching errs.ErrIDAlreadyExists if its id is already registered
//   - an error matching errs.ErrIDNotFound if its delivery or location is not registered
//   - the delivery's error if the step does not belong to it
//
// Nothing changes when an error is returned.
func (m *DeliveryManager) AddDeliveryStep(step *deliverystep.DeliveryStep) error {
	if err := step.Validate(); err != nil {
		return m.reject("add delivery step", errs.NewValueIsRequiredErrorWithCause("step", err))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isRegistered(step.ID()) {
		return m.reject("add delivery step", errs.NewIDAlreadyExistsError("stepID", step.ID().String()))
	}

	d, err := lookup(m.deliveries, "deliveryID", step.DeliveryID())
	if err != nil {
		return m.reject("add delivery step", err)
	}

	loc, err := lookup(m.locations, "locationID", step.Location().ID())
	if err != nil {
		return m.reject("add delivery step", err)
	}

	if err = d.AddStep(step); err != nil {
		return m.reject("add delivery step", err)
	}

	if !loc.HasDelivery(d.ID()) {
		if err = loc.AddDeliveryToLocation(d.ID()); err != nil {
			_, _ = d.RemoveStep(step.ID())
			return m.reject("add delivery step", err)
		}
	}

	m.steps[step.ID()] = step
	m.logger.Debug("delivery step registered",
		"step_id", step.ID().String(),
		"delivery_id", d.ID().String(),
		"location_id", loc.ID().String(),
	)
	return nil
}

// DeliveryStep returns the registered step with id.
func (m *DeliveryManager) DeliveryStep(id kernel.UUID) (*deliverystep.DeliveryStep, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lookup(m.steps, "stepID", id)
}

// RemoveDeliveryStep unregisters the step with id and detaches it from its delivery.
// The delivery stays recorded at the step's location while another of its steps
// still visits that location.
func (m *DeliveryManager) RemoveDeliveryStep(id kernel.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	step, err := lookup(m.steps, "stepID", id)
	if err != nil {
		return m.reject("remove delivery step", err)
	}

	// d and loc are only missing if their links were edited outside the registry
	d, hasDelivery := m.deliveries[step.DeliveryID()]
	if hasDelivery && d.HasStep(id) {
		if _, err = d.RemoveStep(id); err != nil {
			return m.reject("remove delivery step", err)
		}
	}

	loc, hasLocation := m.locations[step.Location().ID()]
	if hasDelivery && hasLocation && !d.UsesLocation(loc.ID()) && loc.HasDelivery(d.ID()) {
		if err = loc.RemoveDeliveryFromLocation(d.ID()); err != nil {
			return m.reject("remove delivery step", err)
		}
	}

	delete(m.steps, id)
	m.logger.Debug("delivery step removed", "step_id", id.String(), "delivery_id", step.DeliveryID().String())
	return nil
}

// DeliverySteps returns every registered step, oldest first.
func (m *DeliveryManager) DeliverySteps() []*deliverystep.DeliveryStep {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return byCreation(m.steps)
}

// isRegistered must be called with mu held.
func (m *DeliveryManager) isRegistered(id kernel.UUID) bool {
	_, isLocation := m.locations[id]
	_, isDelivery := m.deliveries[id]
	_, isStep := m.steps[id]
	return isLocation || isDelivery || isStep
}

func (m *DeliveryManager) reject(op string, err error) error {
	m.logger.Warn("operation rejected", "operation", op, "error", err)
	return err
}

func lookup[T any](entities map[kernel.UUID]T, paramName string, id kernel.UUID) (T, error) {
	var zero T
	if err := id.Validate(); err != nil {
		return zero, errs.NewIDIsInvalidErrorWithCause(paramName, id.String(), err)
	}

	entity, ok := entities[id]
	if !ok {
		return zero, errs.NewIDNotFoundError(paramName, id.String())
	}
	return entity, nil
}

type registered interface {
	ID() kernel.UUID
	CreatedAt() time.Time
}

// byCreation orders by creation time, then by id so equal timestamps stay deterministic.
func byCreation[T registered](entities map[kernel.UUID]T) []T {
	list := slices.Collect(maps.Values(entities))
	slices.SortFunc(list, func(a, b T) int {
		return cmp.Or(
			a.CreatedAt().Compare(b.CreatedAt()),
			strings.Compare(a.ID().String(), b.ID().String()),
		)
	})
	return list
}
