package favorite

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

func newTestService(t *testing.T) (*Service, *repository.HouseRepository) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	houses := repository.NewHouseRepository(db)
	return NewService(repository.NewFavoriteRepository(db), houses), houses
}

func seedHouse(t *testing.T, houses *repository.HouseRepository, title string) *domain.House {
	t.Helper()
	s := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	e := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	h := &domain.House{
		OwnerEmail:       "owner@example.com",
		Title:            title,
		Address:          "5 Elm Road",
		PricePerDay:      70,
		StartDate:        &s,
		EndDate:          &e,
		ModerationStatus: domain.HouseValid,
		Availability:     domain.HouseAvailable,
	}
	require.NoError(t, houses.Create(context.Background(), h))
	return h
}

func TestAddListRemove(t *testing.T) {
	svc, houses := newTestService(t)
	ctx := context.Background()
	h := seedHouse(t, houses, "Lake Cabin")

	f, err := svc.Add(ctx, "tenant@example.com", h.ID)
	require.NoError(t, err)
	require.NotNil(t, f.House)
	assert.Equal(t, "Lake Cabin", f.House.Title)

	got, total, err := svc.List(ctx, "tenant@example.com", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)

	require.NoError(t, svc.Remove(ctx, "tenant@example.com", h.ID))

	_, total, err = svc.List(ctx, "tenant@example.com", 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestAdd_Duplicate(t *testing.T) {
	svc, houses := newTestService(t)
	ctx := context.Background()
	h := seedHouse(t, houses, "Lake Cabin")

	_, err := svc.Add(ctx, "tenant@example.com", h.ID)
	require.NoError(t, err)

	_, err = svc.Add(ctx, "tenant@example.com", h.ID)
	assert.ErrorIs(t, err, ErrAlreadySaved)
}

func TestAdd_HouseNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Add(context.Background(), "tenant@example.com", 9999)
	assert.ErrorIs(t, err, ErrHouseNotFound)
}

func TestRemove_NotSaved(t *testing.T) {
	svc, houses := newTestService(t)
	h := seedHouse(t, houses, "Lake Cabin")

	err := svc.Remove(context.Background(), "tenant@example.com", h.ID)
	assert.ErrorIs(t, err, ErrNotSaved)
}
