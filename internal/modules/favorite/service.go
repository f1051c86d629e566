package favorite

import (
	"context"
	"errors"

	"homelet/internal/domain"
	"homelet/internal/repository"
)

var (
	ErrHouseNotFound = errors.New("house not found")
	ErrAlreadySaved  = errors.New("house is already in favorites")
	ErrNotSaved      = errors.New("house is not in favorites")
)

type Service struct {
	favorites *repository.FavoriteRepository
	houses    *repository.HouseRepository
}

func NewService(favorites *repository.FavoriteRepository, houses *repository.HouseRepository) *Service {
	return &Service{favorites: favorites, houses: houses}
}

func (s *Service) Add(ctx context.Context, userEmail string, houseID int64) (*domain.Favorite, error) {
	if _, err := s.houses.GetByID(ctx, houseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}

	f, err := s.favorites.Add(ctx, userEmail, houseID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadySaved
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) Remove(ctx context.Context, userEmail string, houseID int64) error {
	if err := s.favorites.Remove(ctx, userEmail, houseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotSaved
		}
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context, userEmail string, limit, offset int) ([]domain.Favorite, int64, error) {
	return s.favorites.ListByUser(ctx, userEmail, limit, offset)
}
