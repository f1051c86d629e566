package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"homelet/internal/domain"
)

func d(day int) time.Time {
	return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
}

func booking(start, end int) domain.Booking {
	return domain.Booking{StartDate: d(start), EndDate: d(end)}
}

func houseWithWindow(start, end int) *domain.House {
	s, e := d(start), d(end)
	return &domain.House{ID: 1, StartDate: &s, EndDate: &e}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd int
		want                           bool
	}{
		{"disjoint before", 1, 3, 4, 6, false},
		{"disjoint after", 7, 9, 4, 6, false},
		{"identical", 4, 6, 4, 6, true},
		{"contained", 4, 6, 1, 9, true},
		{"partial left", 1, 4, 4, 6, true},
		{"partial right", 6, 9, 4, 6, true},
		{"shared single endpoint day", 1, 4, 4, 4, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(d(tc.aStart), d(tc.aEnd), d(tc.bStart), d(tc.bEnd))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, 3, InclusiveDays(d(1), d(3)))
	assert.Equal(t, 1, InclusiveDays(d(5), d(5)))
	assert.Equal(t, 31, InclusiveDays(d(1), d(31)))
}

func TestInclusiveDays_NormalizesTimes(t *testing.T) {
	start := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 3, InclusiveDays(start, end))
}

func TestRangeFree(t *testing.T) {
	existing := []domain.Booking{booking(5, 10), booking(20, 25)}

	assert.True(t, RangeFree(existing, d(1), d(4)))
	assert.True(t, RangeFree(existing, d(11), d(19)))
	assert.False(t, RangeFree(existing, d(4), d(5)), "touching an existing end day conflicts")
	assert.False(t, RangeFree(existing, d(10), d(12)))
	assert.False(t, RangeFree(existing, d(1), d(31)))
	assert.True(t, RangeFree(nil, d(1), d(31)))
}

func TestFullyBooked_NoWindow(t *testing.T) {
	h := &domain.House{ID: 1}
	assert.False(t, FullyBooked(h, []domain.Booking{booking(1, 31)}))
}

func TestFullyBooked_NoBookings(t *testing.T) {
	assert.False(t, FullyBooked(houseWithWindow(1, 5), nil))
}

func TestFullyBooked_SingleCoveringBooking(t *testing.T) {
	h := houseWithWindow(1, 5)
	assert.True(t, FullyBooked(h, []domain.Booking{booking(1, 5)}))
}

func TestFullyBooked_PartialCoverage(t *testing.T) {
	h := houseWithWindow(1, 5)
	assert.False(t, FullyBooked(h, []domain.Booking{booking(1, 3)}))
}

func TestFullyBooked_AdjacentRangesCover(t *testing.T) {
	h := houseWithWindow(1, 10)
	bookings := []domain.Booking{booking(1, 4), booking(5, 10)}
	assert.True(t, FullyBooked(h, bookings))
}

func TestFullyBooked_GapBetweenRanges(t *testing.T) {
	h := houseWithWindow(1, 10)
	bookings := []domain.Booking{booking(1, 4), booking(6, 10)}
	assert.False(t, FullyBooked(h, bookings), "day 5 is uncovered")
}

func TestFullyBooked_OverlappingRangesCover(t *testing.T) {
	h := houseWithWindow(1, 10)
	bookings := []domain.Booking{booking(1, 6), booking(4, 10)}
	assert.True(t, FullyBooked(h, bookings))
}

func TestFullyBooked_CoverageBeyondWindow(t *testing.T) {
	h := houseWithWindow(5, 8)
	bookings := []domain.Booking{booking(1, 20)}
	assert.True(t, FullyBooked(h, bookings))
}

func TestFullyBooked_UnorderedBookings(t *testing.T) {
	h := houseWithWindow(1, 9)
	bookings := []domain.Booking{booking(7, 9), booking(1, 3), booking(4, 6)}
	assert.True(t, FullyBooked(h, bookings))
}

type mockRanges struct {
	mock.Mock
}

func (m *mockRanges) BookingsForHouse(ctx context.Context, houseID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func TestCalculator_IsRangeFree(t *testing.T) {
	ranges := new(mockRanges)
	ranges.On("BookingsForHouse", mock.Anything, int64(7)).
		Return([]domain.Booking{booking(5, 10)}, nil)

	calc := NewCalculator(ranges)

	free, err := calc.IsRangeFree(context.Background(), 7, d(1), d(4))
	assert.NoError(t, err)
	assert.True(t, free)

	free, err = calc.IsRangeFree(context.Background(), 7, d(8), d(12))
	assert.NoError(t, err)
	assert.False(t, free)
}

func TestCalculator_IsFullyBooked(t *testing.T) {
	h := houseWithWindow(1, 5)

	ranges := new(mockRanges)
	ranges.On("BookingsForHouse", mock.Anything, h.ID).
		Return([]domain.Booking{booking(1, 5)}, nil)

	calc := NewCalculator(ranges)

	full, err := calc.IsFullyBooked(context.Background(), h)
	assert.NoError(t, err)
	assert.True(t, full)
}
