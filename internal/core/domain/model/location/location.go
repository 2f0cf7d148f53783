package location

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"

	"gigdelivery/internal/core/domain/model/kernel"
	"gigdelivery/internal/core/domain/model/reference"
	"gigdelivery/internal/pkg/errs"
)

var (
	// ErrInvalidName is the cause of every rejected location name.
	ErrInvalidName = errors.New("invalid location name")

	// ErrInvalidType is the cause of every rejected location type.
	ErrInvalidType = errors.New("invalid location type")

	// ErrLocationIsNotConstructed is returned when a Location was not created through NewLocation.
	ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")
)

// namePattern is anchored at both ends so trailing characters are checked too.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9&'., -]+$`)

// IsValidName reports whether name is non-empty and consists only of letters,
// digits, spaces and the characters & ' . , -
func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Location is a unique physical address that deliveries visit.
//
// Only one Location should exist per real address; identity is the generated id,
// so two Locations with identical fields are still different locations.
//
// Location keeps the ids of the deliveries recorded there, in insertion order,
// together with a delivery count. AddDeliveryToLocation and RemoveDeliveryFromLocation
// keep the two in step. IncreaseDeliveryCount and DecreaseDeliveryCount adjust the
// count alone, so a caller that uses them directly can make DeliveryCount differ from
// len(DeliveriesAtLocation()).
//
// Location is not safe for concurrent mutation; the owning registry serialises access.
type Location struct {
	id            kernel.UUID
	name          string
	locationType  string
	streetAddress string
	city          string
	state         string
	createdAt     time.Time

	// deliveries holds delivery ids in the order they were recorded
	deliveries    []kernel.UUID
	deliveryCount int

	// types is the reference set SetType validates against
	types reference.LocationTypes

	isConstructed bool
}

// NewLocation creates a Location with a fresh id and creation timestamp, no deliveries
// and a zero delivery count.
//
// The name must satisfy IsValidName and the type must belong to the allowed location
// types (reference.DefaultLocationTypes unless WithLocationTypes is given). All
// failures are reported together.
//
//	loc, err := location.NewLocation("Safeway", "Grocery Store", "5100 Broadway", "Oakland", "CA")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(loc.FormatLabel()) // Safeway (5100 Broadway)
func NewLocation(name, locationType, streetAddress, city, state string, opts ...Option) (*Location, error) {
	o := newOptions(opts)
	if err := o.types.Validate(); err != nil {
		return nil, err
	}

	loc := &Location{
		id:            kernel.NewUUID(),
		streetAddress: streetAddress,
		city:          city,
		state:         state,
		createdAt:     o.clock.Now(),
		deliveries:    make([]kernel.UUID, 0),
		types:         o.types,
		isConstructed: true,
	}

	if err := errors.Join(
		loc.SetName(name),
		loc.SetType(locationType),
	); err != nil {
		return nil, err
	}

	return loc, nil
}

// Validate returns ErrLocationIsNotConstructed for nil or zero-value locations.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// IsEqual reports whether other is the same location, by id only.
func (l *Location) IsEqual(other *Location) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// Name returns the location name.
func (l *Location) Name() string {
	return l.name
}

// Type returns the location type.
func (l *Location) Type() string {
	return l.locationType
}

// StreetAddress returns the street address.
func (l *Location) StreetAddress() string {
	return l.streetAddress
}

// City returns the city.
func (l *Location) City() string {
	return l.city
}

// State returns the state.
func (l *Location) State() string {
	return l.state
}

// CreatedAt returns when the location was created. It never changes.
func (l *Location) CreatedAt() time.Time {
	return l.createdAt
}

// DeliveriesAtLocation returns a copy of the recorded delivery ids in insertion order.
func (l *Location) DeliveriesAtLocation() []kernel.UUID {
	return slices.Clone(l.deliveries)
}

// DeliveryCount returns the delivery count. It is never negative.
func (l *Location) DeliveryCount() int {
	return l.deliveryCount
}

// HasDelivery reports whether deliveryID is recorded at this location.
func (l *Location) HasDelivery(deliveryID kernel.UUID) bool {
	return slices.Contains(l.deliveries, deliveryID)
}

// SetName replaces the name. Names that fail IsValidName are rejected with an error
// matching ErrInvalidName and the current name is kept.
func (l *Location) SetName(name string) error {
	if !IsValidName(name) {
		return errs.NewValueIsInvalidErrorWithCause(
			"location name",
			fmt.Errorf("%w: %q", ErrInvalidName, name),
		)
	}

	l.name = name
	return nil
}

// SetType replaces the type. Types outside the allowed reference set are rejected
// with an error matching ErrInvalidType and the current type is kept.
func (l *Location) SetType(locationType string) error {
	if !l.types.Contains(locationType) {
		return errs.NewValueIsInvalidErrorWithCause(
			"location type",
			fmt.Errorf("%w: %q is not one of %q", ErrInvalidType, locationType, l.types.Names()),
		)
	}

	l.locationType = locationType
	return nil
}

// AddDeliveryToLocation records a delivery at this location and increments the count.
//
// Returns:
//   - an error matching errs.ErrIDIsInvalid if deliveryID is the zero UUID
//   - an error matching errs.ErrIDAlreadyExists if it is already recorded
//
// Nothing changes when an error is returned.
func (l *Location) AddDeliveryToLocation(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewIDIsInvalidErrorWithCause("deliveryID", deliveryID.String(), err)
	}

	if l.HasDelivery(deliveryID) {
		return errs.NewIDAlreadyExistsError("deliveryID", deliveryID.String())
	}

	l.deliveries = append(l.deliveries, deliveryID)
	l.IncreaseDeliveryCount()
	return nil
}

// RemoveDeliveryFromLocation drops a recorded delivery (for example a cancelled one)
// and decrements the count.
//
// Returns:
//   - an error matching errs.ErrIDIsInvalid if deliveryID is the zero UUID
//   - an error matching errs.ErrIDNotFound if it is not recorded here
//
// Nothing changes when an error is returned.
func (l *Location) RemoveDeliveryFromLocation(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return errs.NewIDIsInvalidErrorWithCause("deliveryID", deliveryID.String(), err)
	}

	i := slices.Index(l.deliveries, deliveryID)
	if i < 0 {
		return errs.NewIDNotFoundError("deliveryID", deliveryID.String())
	}

	l.deliveries = slices.Delete(l.deliveries, i, i+1)
	l.DecreaseDeliveryCount()
	return nil
}

// IncreaseDeliveryCount adds one to the count without touching the delivery list.
func (l *Location) IncreaseDeliveryCount() {
	l.deliveryCount++
}

// DecreaseDeliveryCount subtracts one from the count without touching the delivery
// list. It does nothing when the count is already zero.
func (l *Location) DecreaseDeliveryCount() {
	if l.deliveryCount > 0 {
		l.deliveryCount--
	}
}

// FormatLabel returns "name (street address)".
func (l *Location) FormatLabel() string {
	return fmt.Sprintf("%s (%s)", l.name, l.streetAddress)
}

// Describe returns the short form "name [street address] - type".
func (l *Location) Describe() string {
	return fmt.Sprintf("%s [%s] - %s", l.name, l.streetAddress, l.locationType)
}

// String returns the full address line "name, street address, city state".
func (l *Location) String() string {
	return fmt.Sprintf("%s, %s, %s %s", l.name, l.streetAddress, l.city, l.state)
}
