package cmd_test

import (
	"bytes"
	"testing"
	"time"

	"gigdelivery/cmd"
	"gigdelivery/internal/config"
	"gigdelivery/internal/core/domain/model/delivery"
	"gigdelivery/internal/core/domain/model/kernel"
	"gigdelivery/internal/core/domain/model/location"
	"gigdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompositionRoot(t *testing.T) {
	t.Run("wires configured types, clock and logger", func(t *testing.T) {
		now := time.Date(2024, time.May, 4, 9, 0, 0, 0, time.UTC)
		cfg := config.Default()
		cfg.LocationTypeNames = []string{"Depot", "Customer"}
		cfg.LogLevel = "debug"
		var logs bytes.Buffer

		root, err := cmd.NewCompositionRoot(cfg, &logs, kernel.ClockFunc(func() time.Time { return now }))
		require.NoError(t, err)

		depot, err := root.NewLocation("North Depot", "Depot", "9 Yard Rd", "Fresno", "CA")
		require.NoError(t, err)
		assert.Equal(t, now, depot.CreatedAt())

		_, err = root.NewLocation("Safeway", "Grocery Store", "5100 Broadway", "Oakland", "CA")
		require.ErrorIs(t, err, location.ErrInvalidType)

		d, err := root.NewDelivery(kernel.NewUUID())
		require.NoError(t, err)
		step, err := root.NewDeliveryStep(d, depot, 10, 14, 1)
		require.NoError(t, err)
		assert.Equal(t, now, step.CreatedAt())

		m := root.DeliveryManager()
		require.NoError(t, m.AddLocation(depot))
		require.NoError(t, m.AddDelivery(d))
		require.NoError(t, m.AddDeliveryStep(step))

		assert.Equal(t, 4, d.TotalMiles())
		assert.Contains(t, logs.String(), "delivery step registered")
		assert.Equal(t, 2, root.LocationTypes().Len())
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		cfg := config.Default()
		cfg.LogFormat = "xml"

		root, err := cmd.NewCompositionRoot(cfg, &bytes.Buffer{}, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, root)
	})

	t.Run("step needs a constructed delivery", func(t *testing.T) {
		root, err := cmd.NewCompositionRoot(config.Default(), &bytes.Buffer{}, nil)
		require.NoError(t, err)
		loc, err := root.NewLocation("Safeway", "Grocery Store", "5100 Broadway", "Oakland", "CA")
		require.NoError(t, err)

		_, err = root.NewDeliveryStep(&delivery.Delivery{}, loc, 0, 1, 1)

		require.ErrorIs(t, err, delivery.ErrDeliveryIsNotConstructed)
	})
}
