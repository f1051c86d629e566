package listing

import (
	"context"

	"homelet/internal/domain"
	"homelet/internal/repository"
)

// HouseRepository defines the persistence operations the listing service needs
type HouseRepository interface {
	Create(ctx context.Context, h *domain.House) error
	GetByID(ctx context.Context, id int64) (*domain.House, error)
	Browse(ctx context.Context, f repository.HouseFilter, limit, offset int) ([]domain.House, int64, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]domain.House, error)
	Update(ctx context.Context, h *domain.House) error
	Delete(ctx context.Context, id int64) error
	AddImage(ctx context.Context, img *domain.HouseImage) error
}

// StatusStore is the slice of a store the projector reads and writes.
// Both the plain store and a transaction-bound store satisfy it, so a
// recompute can run inside the transaction that triggered it.
type StatusStore interface {
	GetHouse(ctx context.Context, id int64) (*domain.House, error)
	BookingsForHouse(ctx context.Context, houseID int64) ([]domain.Booking, error)
	UpdateHouseAvailability(ctx context.Context, houseID int64, a domain.HouseAvailability) error
}
