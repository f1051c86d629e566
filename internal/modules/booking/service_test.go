package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homelet/internal/database"
	"homelet/internal/domain"
	"homelet/internal/modules/listing"
	"homelet/internal/repository"
)

type testEnv struct {
	svc    *Service
	store  *repository.Store
	houses *repository.HouseRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store := repository.NewStore(db)
	return &testEnv{
		svc:    NewService(store, listing.NewProjector(), nil),
		store:  store,
		houses: repository.NewHouseRepository(db),
	}
}

func (e *testEnv) seedHouse(t *testing.T, h *domain.House) *domain.House {
	t.Helper()
	require.NoError(t, e.houses.Create(context.Background(), h))
	return h
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func windowedHouse(price float64, start, end int) *domain.House {
	s, e := day(start), day(end)
	return &domain.House{
		OwnerEmail:       "owner@example.com",
		Title:            "Seaside Cottage",
		Address:          "1 Shore Road",
		PricePerDay:      price,
		StartDate:        &s,
		EndDate:          &e,
		ModerationStatus: domain.HouseValid,
		Availability:     domain.HouseAvailable,
	}
}

func TestCreateBooking_TotalPriceIsInclusive(t *testing.T) {
	env := newTestEnv(t)
	h := env.seedHouse(t, windowedHouse(100, 1, 31))

	b, err := env.svc.CreateBooking(context.Background(), "tenant@example.com", CreateBookingRequest{
		HouseID:   h.ID,
		StartDate: day(1),
		EndDate:   day(3),
	})

	require.NoError(t, err)
	// 3 inclusive days at 100 per day
	assert.Equal(t, 300.0, b.TotalPrice)
	require.NotNil(t, b.Payment)
	assert.Equal(t, domain.PaymentPending, b.Payment.Status)
	assert.Equal(t, 300.0, b.Payment.Amount)
	assert.NotEmpty(t, b.Payment.Reference)
}

func TestCreateBooking_InvalidRange(t *testing.T) {
	env := newTestEnv(t)
	h := env.seedHouse(t, windowedHouse(100, 1, 31))

	_, err := env.svc.CreateBooking(context.Background(), "tenant@example.com", CreateBookingRequest{
		HouseID:   h.ID,
		StartDate: day(10),
		EndDate:   day(5),
	})

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCreateBooking_HouseNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateBooking(context.Background(), "tenant@example.com", CreateBookingRequest{
		HouseID:   12345,
		StartDate: day(1),
		EndDate:   day(2),
	})

	assert.ErrorIs(t, err, ErrHouseNotFound)
}

func TestCreateBooking_DateConflict(t *testing.T) {
	env := newTestEnv(t)
	h := env.seedHouse(t, windowedHouse(100, 1, 31))

	_, err := env.svc.CreateBooking(context.Background(), "first@example.com", CreateBookingRequest{
		HouseID:   h.ID,
		StartDate: day(5),
		EndDate:   day(10),
	})
	require.NoError(t, err)

	// Inclusive bounds: a range ending on day 5 still collides.
	_, err = env.svc.CreateBooking(context.Background(), "second@example.com", CreateBookingRequest{
		HouseID:   h.ID,
		StartDate: day(1),
		EndDate:   day(5),
	})
	assert.ErrorIs(t, err, ErrDateConflict)

	_, err = env.svc.CreateBooking(context.Background(), "second@example.com", CreateBookingRequest{
		HouseID:   h.ID,
		StartDate: day(11),
		EndDate:   day(12),
	})
	assert.NoError(t, err)
}

func TestCreateBooking_ConcurrentSameRange(t *testing.T) {
	env := newTestEnv(t)
	h := env.seedHouse(t, windowedHouse(100, 1, 31))
	ctx := context.Background()

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.svc.CreateBooking(ctx, fmt.Sprintf("tenant%d@example.com", i), CreateBookingRequest{
				HouseID:   h.ID,
				StartDate: day(5),
				EndDate:   day(10),
			})
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrDateConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)

	rows, err := env.store.BookingsForHouse(ctx, h.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestIsOverlapViolation(t *testing.T) {
	exclusion := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fkey := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})

	assert.True(t, isOverlapViolation(exclusion))
	assert.True(t, isOverlapViolation(unique))
	assert.False(t, isOverlapViolation(fkey))
	assert.False(t, isOverlapViolation(errors.New("not a pg error")))
}

func TestCreateBooking_FullWindowFlipsRented(t *testing.T) {
	env := newTestEnv(t)
	h := env.seedHouse(t, windowedHouse(50, 1, 5))

	_, err := env.svc.CreateBooking(context.Background(), "tenant@example.com", CreateBookingRequest{
		HouseID:   h.ID,
		StartDate: day(1),
		EndDate:   day(5),
	})
	require.NoError(t, err)

	fresh, err := env.store.GetHouse(context.Background(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.HouseRented, fresh.Availability)
}

func TestCancelBooking_RestoresStatusAndRemovesPayment(t *testing.T) {
	env := newTestEnv(t)
	h := env.seedHouse(t, windowedHouse(50, 1, 5))
	ctx := context.Background()

	b, err := env.svc.CreateBooking(ctx, "tenant@example.com", CreateBookingRequest{
		HouseID:   h.ID,
		StartDate: day(1),
		EndDate:   day(5),
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.CancelBooking(ctx, b.ID, "tenant@example.com"))

	fresh, err := env.store.GetHouse(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.HouseAvailable, fresh.Availability)

	_, err = env.store.GetBooking(ctx, b.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = env.store.GetPaymentByBookingID(ctx, b.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCancelBooking_NotFound(t *testing.T) {
	env := newTestEnv(t)
	err := env.svc.CancelBooking(context.Background(), 9999, "tenant@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking_Forbidden(t *testing.T) {
	env := newTestEnv(t)
	h := env.seedHouse(t, windowedHouse(50, 1, 31))
	ctx := context.Background()

	b, err := env.svc.CreateBooking(ctx, "tenant@example.com", CreateBookingRequest{
		HouseID:   h.ID,
		StartDate: day(1),
		EndDate:   day(2),
	})
	require.NoError(t, err)

	err = env.svc.CancelBooking(ctx, b.ID, "stranger@example.com")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCancelBooking_OwnerMayCancel(t *testing.T) {
	env := newTestEnv(t)
	h := env.seedHouse(t, windowedHouse(50, 1, 31))
	ctx := context.Background()

	b, err := env.svc.CreateBooking(ctx, "tenant@example.com", CreateBookingRequest{
		HouseID:   h.ID,
		StartDate: day(1),
		EndDate:   day(2),
	})
	require.NoError(t, err)

	assert.NoError(t, env.svc.CancelBooking(ctx, b.ID, "owner@example.com"))
}

func TestListTenantBookings_OrderAndPaging(t *testing.T) {
	env := newTestEnv(t)
	h := env.seedHouse(t, windowedHouse(10, 1, 31))
	ctx := context.Background()

	for _, start := range []int{3, 9, 6} {
		_, err := env.svc.CreateBooking(ctx, "tenant@example.com", CreateBookingRequest{
			HouseID:   h.ID,
			StartDate: day(start),
			EndDate:   day(start + 1),
		})
		require.NoError(t, err)
	}

	got, total, err := env.svc.ListTenantBookings(ctx, "tenant@example.com", ListQuery{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, got, 2)
	assert.True(t, got[0].StartDate.Equal(day(9)))
	assert.True(t, got[1].StartDate.Equal(day(6)))

	got, _, err = env.svc.ListTenantBookings(ctx, "tenant@example.com", ListQuery{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].StartDate.Equal(day(3)))
}

func TestListOwnerBookings(t *testing.T) {
	env := newTestEnv(t)
	h := env.seedHouse(t, windowedHouse(10, 1, 31))
	other := windowedHouse(10, 1, 31)
	other.OwnerEmail = "someone-else@example.com"
	env.seedHouse(t, other)
	ctx := context.Background()

	_, err := env.svc.CreateBooking(ctx, "tenant@example.com", CreateBookingRequest{
		HouseID: h.ID, StartDate: day(1), EndDate: day(2),
	})
	require.NoError(t, err)
	_, err = env.svc.CreateBooking(ctx, "tenant@example.com", CreateBookingRequest{
		HouseID: other.ID, StartDate: day(1), EndDate: day(2),
	})
	require.NoError(t, err)

	got, total, err := env.svc.ListOwnerBookings(ctx, "owner@example.com", ListQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, h.ID, got[0].HouseID)
}
