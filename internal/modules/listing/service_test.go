package listing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homelet/internal/database"
	"homelet/internal/domain"
	"homelet/internal/repository"
)

type serviceEnv struct {
	svc    *Service
	store  *repository.Store
	houses *repository.HouseRepository
}

func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store := repository.NewStore(db)
	houses := repository.NewHouseRepository(db)
	return &serviceEnv{
		svc:    NewService(houses, NewProjector(), store),
		store:  store,
		houses: houses,
	}
}

func windowDay(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func (e *serviceEnv) seedWindowedHouse(t *testing.T, start, end int) *domain.House {
	t.Helper()
	s, en := windowDay(start), windowDay(end)
	h := &domain.House{
		OwnerEmail:       "owner@example.com",
		Title:            "Hillside Flat",
		Address:          "7 Ridge Lane",
		PricePerDay:      80,
		StartDate:        &s,
		EndDate:          &en,
		ModerationStatus: domain.HouseValid,
		Availability:     domain.HouseAvailable,
	}
	require.NoError(t, e.houses.Create(context.Background(), h))
	return h
}

func TestUpdateHouse_ShrunkWindowRecomputesAvailability(t *testing.T) {
	env := newServiceEnv(t)
	h := env.seedWindowedHouse(t, 1, 31)
	ctx := context.Background()

	// A booking covering days 1..5 does not fill the month-long window.
	b := &domain.Booking{
		HouseID:     h.ID,
		TenantEmail: "tenant@example.com",
		StartDate:   windowDay(1),
		EndDate:     windowDay(5),
		TotalPrice:  400,
	}
	require.NoError(t, env.store.CreateBooking(ctx, b))

	// Shrinking the window down to exactly the booked span must flip the
	// house to rented in the same call.
	newEnd := windowDay(5)
	updated, err := env.svc.UpdateHouse(ctx, h.ID, "owner@example.com", UpdateHouseRequest{
		EndDate: &newEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.HouseRented, updated.Availability)

	fresh, err := env.store.GetHouse(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.HouseRented, fresh.Availability)
}

func TestUpdateHouse_NonWindowEditLeavesAvailabilityAlone(t *testing.T) {
	env := newServiceEnv(t)
	h := env.seedWindowedHouse(t, 1, 31)
	ctx := context.Background()

	updated, err := env.svc.UpdateHouse(ctx, h.ID, "owner@example.com", UpdateHouseRequest{
		Title: "Renamed Flat",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Flat", updated.Title)
	assert.Equal(t, domain.HouseAvailable, updated.Availability)
}

func TestUpdateHouse_WidenedWindowRestoresAvailability(t *testing.T) {
	env := newServiceEnv(t)
	h := env.seedWindowedHouse(t, 1, 5)
	ctx := context.Background()

	b := &domain.Booking{
		HouseID:     h.ID,
		TenantEmail: "tenant@example.com",
		StartDate:   windowDay(1),
		EndDate:     windowDay(5),
		TotalPrice:  400,
	}
	require.NoError(t, env.store.CreateBooking(ctx, b))
	require.NoError(t, env.store.UpdateHouseAvailability(ctx, h.ID, domain.HouseRented))

	newEnd := windowDay(31)
	updated, err := env.svc.UpdateHouse(ctx, h.ID, "owner@example.com", UpdateHouseRequest{
		EndDate: &newEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.HouseAvailable, updated.Availability)
}
