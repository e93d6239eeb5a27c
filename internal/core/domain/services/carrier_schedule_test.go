package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestNewPullSchedule(t *testing.T) {
	t.Run("fixes the pull window hours in UTC on the ship date", func(t *testing.T) {
		shipDate := time.Date(2017, time.August, 28, 0, 0, 0, 0, time.UTC)

		schedule := services.NewPullSchedule(shipDate)

		assert.Equal(t, time.Date(2017, time.August, 28, 20, 0, 0, 0, time.UTC), schedule.ReadyForPickup)
		assert.Equal(t, time.Date(2017, time.August, 28, 21, 0, 0, 0, time.UTC), schedule.CriticalPull)
		assert.Equal(t, time.Date(2017, time.August, 28, 22, 0, 0, 0, time.UTC), schedule.Departure)
	})

	t.Run("ignores the time of day of the ship date", func(t *testing.T) {
		shipDate := time.Date(2017, time.August, 28, 13, 45, 12, 0, time.UTC)

		schedule := services.NewPullSchedule(shipDate)

		assert.Equal(t, time.Date(2017, time.August, 28, 21, 0, 0, 0, time.UTC), schedule.CriticalPull)
	})
}
