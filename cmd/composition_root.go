package cmd

import (
	"io"
	"log/slog"

	"gigdelivery/internal/config"
	"gigdelivery/internal/core/domain/model/delivery"
	"gigdelivery/internal/core/domain/model/deliverystep"
	"gigdelivery/internal/core/domain/model/kernel"
	"gigdelivery/internal/core/domain/model/location"
	"gigdelivery/internal/core/domain/model/reference"
	"gigdelivery/internal/core/domain/services"
)

// CompositionRoot wires configuration into the domain: one logger, one clock, the
// configured location types and a single DeliveryManager. Entities created through
// it share that clock and reference data.
type CompositionRoot struct {
	logger  *slog.Logger
	clock   kernel.Clock
	types   reference.LocationTypes
	manager *services.DeliveryManager
}

// NewCompositionRoot builds the root from cfg, logging to logOutput. A nil clock
// means kernel.SystemClock.
func NewCompositionRoot(cfg config.Config, logOutput io.Writer, clock kernel.Clock) (*CompositionRoot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	types, err := cfg.LocationTypes()
	if err != nil {
		return nil, err
	}

	if clock == nil {
		clock = kernel.SystemClock{}
	}

	logger := cfg.NewLogger(logOutput)
	return &CompositionRoot{
		logger:  logger,
		clock:   clock,
		types:   types,
		manager: services.NewDeliveryManager(logger),
	}, nil
}

// Logger returns the shared logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// DeliveryManager returns the shared registry.
func (c *CompositionRoot) DeliveryManager() *services.DeliveryManager {
	return c.manager
}

// LocationTypes returns the configured reference set.
func (c *CompositionRoot) LocationTypes() reference.LocationTypes {
	return c.types
}

// NewLocation creates a location validated against the configured types.
func (c *CompositionRoot) NewLocation(name, locationType, streetAddress, city, state string) (*location.Location, error) {
	return location.NewLocation(name, locationType, streetAddress, city, state,
		location.WithClock(c.clock),
		location.WithLocationTypes(c.types),
	)
}

// NewDelivery creates an empty delivery for shiftID.
func (c *CompositionRoot) NewDelivery(shiftID kernel.UUID) (*delivery.Delivery, error) {
	return delivery.NewDelivery(shiftID, delivery.WithClock(c.clock))
}

// NewDeliveryStep creates a step of d at loc.
func (c *CompositionRoot) NewDeliveryStep(
	d *delivery.Delivery,
	loc *location.Location,
	previousOdometerReading int,
	currentOdometerReading int,
	orderCount int,
) (*deliverystep.DeliveryStep, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return deliverystep.NewDeliveryStep(d.ShiftID(), d.ID(), loc,
		previousOdometerReading, currentOdometerReading, orderCount,
		deliverystep.WithClock(c.clock),
	)
}
