package admin

import (
	"context"
	"errors"
	"strings"

	"homelet/internal/domain"
	"homelet/internal/repository"
)

// Service is the moderation surface. It acts on accounts, listings and
// reports through the same repositories the public modules use, but is
// only reachable behind the admin role.
type Service struct {
	users   *repository.UserRepository
	houses  *repository.HouseRepository
	reports *repository.ReportRepository
}

func NewService(users *repository.UserRepository, houses *repository.HouseRepository, reports *repository.ReportRepository) *Service {
	return &Service{users: users, houses: houses, reports: reports}
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	return s.users.List(ctx, limit, offset)
}

func (s *Service) GetUser(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) UpdateUser(ctx context.Context, email string, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Birthday != nil {
		u.Birthday = req.Birthday
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUserPhoto clears a profile photo. Only roles that carry a photo
// field accept this; asking it of an admin account is a caller mistake,
// not a no-op.
func (s *Service) DeleteUserPhoto(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}

	if !u.CanHavePhoto() {
		return nil, ErrNoPhotoField
	}

	u.PhotoURL = ""
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, adminEmail, email string) error {
	if sameEmail(adminEmail, email) {
		return ErrSelfTarget
	}
	if err := s.users.Delete(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *Service) SetUserStatus(ctx context.Context, adminEmail, email string, status domain.UserStatus) error {
	if sameEmail(adminEmail, email) {
		return ErrSelfTarget
	}
	if err := s.users.UpdateStatus(ctx, email, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListHouses(ctx context.Context, limit, offset int) ([]domain.House, int64, error) {
	return s.houses.ListAll(ctx, limit, offset)
}

func (s *Service) GetHouse(ctx context.Context, id int64) (*domain.House, error) {
	h, err := s.houses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) UpdateHouse(ctx context.Context, id int64, req UpdateHouseRequest) (*domain.House, error) {
	h, err := s.GetHouse(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		h.Title = req.Title
	}
	if req.Description != "" {
		h.Description = req.Description
	}
	if req.Address != "" {
		h.Address = req.Address
	}
	if req.PricePerDay != nil {
		h.PricePerDay = *req.PricePerDay
	}
	if req.StartDate != nil {
		h.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		h.EndDate = req.EndDate
	}

	if err := s.houses.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// SetModerationStatus restricts or clears a listing. It touches only the
// moderation column; availability stays whatever the bookings dictate.
func (s *Service) SetModerationStatus(ctx context.Context, id int64, status domain.ModerationStatus) error {
	if err := s.houses.UpdateModerationStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrHouseNotFound
		}
		return err
	}
	return nil
}

func (s *Service) DeleteHouse(ctx context.Context, id int64) error {
	if err := s.houses.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrHouseNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListReports(ctx context.Context, status domain.ReportStatus, limit, offset int) ([]domain.Report, int64, error) {
	return s.reports.List(ctx, status, limit, offset)
}

func (s *Service) SetReportStatus(ctx context.Context, id int64, status domain.ReportStatus) error {
	if err := s.reports.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReportNotFound
		}
		return err
	}
	return nil
}

func sameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
