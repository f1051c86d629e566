package listing

import (
	"context"

	"homelet/internal/domain"
	"homelet/internal/modules/availability"
)

// Projector derives a house's visible availability from its live bookings:
// rented when the rental window is fully booked, available otherwise.
//
// It writes only the availability column. Moderation status is a separate
// field owned by administrators and always outranks booking-derived state,
// so a restricted house never gets "unrestricted" by a recompute.
type Projector struct{}

func NewProjector() *Projector {
	return &Projector{}
}

func (Projector) Recompute(ctx context.Context, st StatusStore, houseID int64) error {
	h, err := st.GetHouse(ctx, houseID)
	if err != nil {
		return err
	}

	bookings, err := st.BookingsForHouse(ctx, houseID)
	if err != nil {
		return err
	}

	target := domain.HouseAvailable
	if availability.FullyBooked(h, bookings) {
		target = domain.HouseRented
	}

	if h.Availability == target {
		return nil
	}
	return st.UpdateHouseAvailability(ctx, houseID, target)
}
