package location_test

import (
	"testing"
	"time"

	"gigdelivery/internal/core/domain/model/kernel"
	"gigdelivery/internal/core/domain/model/location"
	"gigdelivery/internal/core/domain/model/reference"
	"gigdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, time.May, 4, 8, 15, 0, 0, time.UTC)

func newSampleLocation(t *testing.T) *location.Location {
	t.Helper()

	loc, err := location.NewLocation(
		"Safeway", "Grocery Store", "5100 Broadway", "Oakland", "CA",
		location.WithClock(kernel.ClockFunc(func() time.Time { return createdAt })),
	)
	require.NoError(t, err)
	return loc
}

func TestNewLocation(t *testing.T) {
	t.Run("should create location with all fields", func(t *testing.T) {
		loc := newSampleLocation(t)

		require.NoError(t, loc.Validate())
		require.NoError(t, loc.ID().Validate())
		assert.Equal(t, "Safeway", loc.Name())
		assert.Equal(t, "Grocery Store", loc.Type())
		assert.Equal(t, "5100 Broadway", loc.StreetAddress())
		assert.Equal(t, "Oakland", loc.City())
		assert.Equal(t, "CA", loc.State())
		assert.Equal(t, createdAt, loc.CreatedAt())
		assert.Empty(t, loc.DeliveriesAtLocation())
		assert.Zero(t, loc.DeliveryCount())
	})

	t.Run("should fail with invalid name", func(t *testing.T) {
		loc, err := location.NewLocation("#@%", "Customer", "1 Main St", "Oakland", "CA")

		require.ErrorIs(t, err, location.ErrInvalidName)
		assert.Nil(t, loc)
	})

	t.Run("should fail with invalid type", func(t *testing.T) {
		loc, err := location.NewLocation("Joe's Diner", "Spaceport", "1 Main St", "Oakland", "CA")

		require.ErrorIs(t, err, location.ErrInvalidType)
		assert.Nil(t, loc)
	})

	t.Run("should report every validation error", func(t *testing.T) {
		_, err := location.NewLocation("", "Spaceport", "1 Main St", "Oakland", "CA")

		require.ErrorIs(t, err, location.ErrInvalidName)
		require.ErrorIs(t, err, location.ErrInvalidType)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept custom location types", func(t *testing.T) {
		types, err := reference.NewLocationTypes("Depot")
		require.NoError(t, err)

		loc, err := location.NewLocation("North Depot", "Depot", "9 Yard Rd", "Fresno", "CA",
			location.WithLocationTypes(types))

		require.NoError(t, err)
		assert.Equal(t, "Depot", loc.Type())
		require.ErrorIs(t, loc.SetType("Customer"), location.ErrInvalidType)
	})

	t.Run("should fail with unconstructed location types", func(t *testing.T) {
		_, err := location.NewLocation("Safeway", "Grocery Store", "5100 Broadway", "Oakland", "CA",
			location.WithLocationTypes(reference.LocationTypes{}))

		assert.Equal(t, reference.ErrLocationTypesIsNotConstructed, err)
	})

	t.Run("should generate distinct ids", func(t *testing.T) {
		loc1 := newSampleLocation(t)
		loc2 := newSampleLocation(t)

		assert.False(t, loc1.ID().IsEqual(loc2.ID()))
	})
}

func TestLocation_Validate(t *testing.T) {
	t.Run("nil location", func(t *testing.T) {
		var loc *location.Location

		assert.Equal(t, location.ErrLocationIsNotConstructed, loc.Validate())
	})

	t.Run("zero value location", func(t *testing.T) {
		var loc location.Location

		assert.Equal(t, location.ErrLocationIsNotConstructed, loc.Validate())
	})
}

func TestLocation_AddDeliveryToLocation(t *testing.T) {
	t.Run("should append delivery and increment count", func(t *testing.T) {
		loc := newSampleLocation(t)
		a, b := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, loc.AddDeliveryToLocation(a))
		require.NoError(t, loc.AddDeliveryToLocation(b))

		assert.Equal(t, []kernel.UUID{a, b}, loc.DeliveriesAtLocation())
		assert.Equal(t, 2, loc.DeliveryCount())
		assert.True(t, loc.HasDelivery(a))
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		loc := newSampleLocation(t)

		err := loc.AddDeliveryToLocation(kernel.UUID{})

		require.ErrorIs(t, err, errs.ErrIDIsInvalid)
		assert.Empty(t, loc.DeliveriesAtLocation())
		assert.Zero(t, loc.DeliveryCount())
	})

	t.Run("should reject duplicate id without mutating", func(t *testing.T) {
		loc := newSampleLocation(t)
		id := kernel.NewUUID()
		require.NoError(t, loc.AddDeliveryToLocation(id))

		err := loc.AddDeliveryToLocation(id)

		require.ErrorIs(t, err, errs.ErrIDAlreadyExists)
		assert.Equal(t, []kernel.UUID{id}, loc.DeliveriesAtLocation())
		assert.Equal(t, 1, loc.DeliveryCount())
	})

	t.Run("returned list is a copy", func(t *testing.T) {
		loc := newSampleLocation(t)
		id := kernel.NewUUID()
		require.NoError(t, loc.AddDeliveryToLocation(id))

		list := loc.DeliveriesAtLocation()
		list[0] = kernel.NewUUID()

		assert.Equal(t, []kernel.UUID{id}, loc.DeliveriesAtLocation())
	})
}

func TestLocation_RemoveDeliveryFromLocation(t *testing.T) {
	t.Run("should remove delivery and decrement count", func(t *testing.T) {
		loc := newSampleLocation(t)
		a, b := kernel.NewUUID(), kernel.NewUUID()
		require.NoError(t, loc.AddDeliveryToLocation(a))
		require.NoError(t, loc.AddDeliveryToLocation(b))

		require.NoError(t, loc.RemoveDeliveryFromLocation(a))

		assert.Equal(t, []kernel.UUID{b}, loc.DeliveriesAtLocation())
		assert.Equal(t, 1, loc.DeliveryCount())
		assert.False(t, loc.HasDelivery(a))
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		loc := newSampleLocation(t)

		err := loc.RemoveDeliveryFromLocation(kernel.UUID{})

		require.ErrorIs(t, err, errs.ErrIDIsInvalid)
	})

	t.Run("should reject unknown id without mutating", func(t *testing.T) {
		loc := newSampleLocation(t)
		present := kernel.NewUUID()
		require.NoError(t, loc.AddDeliveryToLocation(present))

		err := loc.RemoveDeliveryFromLocation(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrIDNotFound)
		assert.Equal(t, []kernel.UUID{present}, loc.DeliveriesAtLocation())
		assert.Equal(t, 1, loc.DeliveryCount())
	})

	t.Run("should keep count non-negative after manual decrease", func(t *testing.T) {
		loc := newSampleLocation(t)
		id := kernel.NewUUID()
		require.NoError(t, loc.AddDeliveryToLocation(id))
		loc.DecreaseDeliveryCount()

		require.NoError(t, loc.RemoveDeliveryFromLocation(id))

		assert.Zero(t, loc.DeliveryCount())
		assert.Empty(t, loc.DeliveriesAtLocation())
	})
}

func TestLocation_DeliveryCount(t *testing.T) {
	t.Run("increase and decrease", func(t *testing.T) {
		loc := newSampleLocation(t)

		loc.IncreaseDeliveryCount()
		assert.Equal(t, 1, loc.DeliveryCount())

		loc.DecreaseDeliveryCount()
		assert.Zero(t, loc.DeliveryCount())
	})

	t.Run("decrease saturates at zero", func(t *testing.T) {
		loc := newSampleLocation(t)

		for range 3 {
			loc.DecreaseDeliveryCount()
		}

		assert.Zero(t, loc.DeliveryCount())
	})

	t.Run("direct adjustment does not touch the list", func(t *testing.T) {
		loc := newSampleLocation(t)

		loc.IncreaseDeliveryCount()

		assert.Equal(t, 1, loc.DeliveryCount())
		assert.Empty(t, loc.DeliveriesAtLocation())
	})
}

func TestLocation_SetName(t *testing.T) {
	validNames := []string{"Successful Name", "Joe's Diner", "A&W", "St. Mary's, North-East", "7-Eleven"}
	for _, name := range validNames {
		t.Run("accepts "+name, func(t *testing.T) {
			loc := newSampleLocation(t)

			require.NoError(t, loc.SetName(name))
			assert.Equal(t, name, loc.Name())
		})
	}

	invalidNames := []string{"", "#@%", "Safeway#", "Café", "Tab\tName", "Line\nBreak"}
	for _, name := range invalidNames {
		t.Run("rejects "+name, func(t *testing.T) {
			loc := newSampleLocation(t)

			err := loc.SetName(name)

			require.ErrorIs(t, err, location.ErrInvalidName)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, "Safeway", loc.Name())
		})
	}
}

func TestLocation_SetType(t *testing.T) {
	t.Run("accepts allowed type", func(t *testing.T) {
		loc := newSampleLocation(t)

		require.NoError(t, loc.SetType("Customer"))
		assert.Equal(t, "Customer", loc.Type())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		loc := newSampleLocation(t)

		err := loc.SetType("asdfasdf")

		require.ErrorIs(t, err, location.ErrInvalidType)
		assert.Equal(t, "Grocery Store", loc.Type())
	})
}

func TestLocation_IsEqual(t *testing.T) {
	t.Run("identical fields but different ids are not equal", func(t *testing.T) {
		loc1 := newSampleLocation(t)
		loc2 := newSampleLocation(t)

		assert.False(t, loc1.IsEqual(loc2))
	})

	t.Run("same instance is equal after renaming", func(t *testing.T) {
		loc := newSampleLocation(t)
		same := loc
		require.NoError(t, loc.SetName("Safeway Express"))

		assert.True(t, loc.IsEqual(same))
	})

	t.Run("nil is never equal", func(t *testing.T) {
		assert.False(t, newSampleLocation(t).IsEqual(nil))
	})
}

func TestLocation_Renderings(t *testing.T) {
	loc := newSampleLocation(t)

	assert.Equal(t, "Safeway (5100 Broadway)", loc.FormatLabel())
	assert.Equal(t, "Safeway [5100 Broadway] - Grocery Store", loc.Describe())
	assert.Equal(t, "Safeway, 5100 Broadway, Oakland CA", loc.String())
}

func TestIsValidName(t *testing.T) {
	assert.True(t, location.IsValidName("Joe's Diner"))
	assert.False(t, location.IsValidName("#@%"))
	assert.False(t, location.IsValidName("Joe's Diner!"))
	assert.False(t, location.IsValidName(""))
}
