package availability

import (
	"context"
	"sort"
	"time"

	"homelet/internal/domain"
)

// BookingRanges reads the live bookings of one house. Cancelled bookings
// are deleted rows, so everything returned counts against availability.
type BookingRanges interface {
	BookingsForHouse(ctx context.Context, houseID int64) ([]domain.Booking, error)
}

// Calculator answers date-range questions for a house. It never writes.
type Calculator struct {
	bookings BookingRanges
}

func NewCalculator(bookings BookingRanges) *Calculator {
	return &Calculator{bookings: bookings}
}

// Day normalizes a timestamp to its UTC calendar day. Bookings are
// date-granular; all range math happens on normalized days.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether two inclusive day ranges intersect:
// aStart <= bEnd && aEnd >= bStart.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !Day(aStart).After(Day(bEnd)) && !Day(aEnd).Before(Day(bStart))
}

// InclusiveDays counts the days in [start, end] with both endpoints
// included: Jan 1 to Jan 3 is 3 days.
func InclusiveDays(start, end time.Time) int {
	return int(Day(end).Sub(Day(start)).Hours()/24) + 1
}

// RangeFree reports whether [start, end] collides with none of the given
// bookings.
func RangeFree(bookings []domain.Booking, start, end time.Time) bool {
	for _, b := range bookings {
		if Overlaps(start, end, b.StartDate, b.EndDate) {
			return false
		}
	}
	return true
}

// FullyBooked reports whether the union of booking ranges covers every day
// of the house's declared rental window with no gaps. A house without a
// window has no windowed commitment to exhaust and is never fully booked;
// likewise a house with no bookings.
func FullyBooked(h *domain.House, bookings []domain.Booking) bool {
	if h.StartDate == nil || h.EndDate == nil {
		return false
	}
	if len(bookings) == 0 {
		return false
	}

	windowStart := Day(*h.StartDate)
	windowEnd := Day(*h.EndDate)
	if windowEnd.Before(windowStart) {
		return false
	}

	merged := mergeRanges(bookings)

	// Walk the merged ranges across the window. Any uncovered day is a gap.
	cursor := windowStart
	for _, r := range merged {
		if r.start.After(cursor) {
			return false
		}
		if r.end.After(cursor) || r.end.Equal(cursor) {
			cursor = r.end.AddDate(0, 0, 1)
		}
		if cursor.After(windowEnd) {
			return true
		}
	}
	return cursor.After(windowEnd)
}

type dayRange struct {
	start, end time.Time
}

// mergeRanges sorts booking ranges by start and coalesces ranges that
// overlap or touch on adjacent days.
func mergeRanges(bookings []domain.Booking) []dayRange {
	ranges := make([]dayRange, 0, len(bookings))
	for _, b := range bookings {
		ranges = append(ranges, dayRange{start: Day(b.StartDate), end: Day(b.EndDate)})
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].start.Before(ranges[j].start) })

	merged := make([]dayRange, 0, len(ranges))
	for _, r := range ranges {
		if len(merged) == 0 {
			merged = append(merged, r)
			continue
		}
		last := &merged[len(merged)-1]
		if !r.start.After(last.end.AddDate(0, 0, 1)) {
			if r.end.After(last.end) {
				last.end = r.end
			}
		} else {
			merged = append(merged, r)
		}
	}
	return merged
}

// IsRangeFree reports whether [start, end] is free of conflicts for the
// house. Pure query, no side effects.
func (c *Calculator) IsRangeFree(ctx context.Context, houseID int64, start, end time.Time) (bool, error) {
	bookings, err := c.bookings.BookingsForHouse(ctx, houseID)
	if err != nil {
		return false, err
	}
	return RangeFree(bookings, start, end), nil
}

// IsFullyBooked reports whether the house's rental window is completely
// covered by live bookings.
func (c *Calculator) IsFullyBooked(ctx context.Context, h *domain.House) (bool, error) {
	bookings, err := c.bookings.BookingsForHouse(ctx, h.ID)
	if err != nil {
		return false, err
	}
	return FullyBooked(h, bookings), nil
}
