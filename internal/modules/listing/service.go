package listing

import (
	"context"

	"homelet/internal/domain"
	"homelet/internal/repository"
)

type Service struct {
	houses    HouseRepository
	projector *Projector
	status    StatusStore
}

func NewService(houses HouseRepository, projector *Projector, status StatusStore) *Service {
	return &Service{houses: houses, projector: projector, status: status}
}

func (s *Service) CreateHouse(ctx context.Context, ownerEmail string, req CreateHouseRequest) (*domain.House, error) {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, ErrValidation
	}

	h := &domain.House{
		OwnerEmail:       ownerEmail,
		Title:            req.Title,
		Description:      req.Description,
		Address:          req.Address,
		RoomType:         req.RoomType,
		Rooms:            req.Rooms,
		Bathrooms:        req.Bathrooms,
		Furnishing:       req.Furnishing,
		Sqft:             req.Sqft,
		PricePerDay:      req.PricePerDay,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		ModerationStatus: domain.HouseValid,
		Availability:     domain.HouseAvailable,
	}

	if err := s.houses.Create(ctx, h); err != nil {
		return nil, err
	}

	for _, u := range req.ImageURLs {
		img := &domain.HouseImage{HouseID: h.ID, ImageURL: u}
		if err := s.houses.AddImage(ctx, img); err != nil {
			return nil, err
		}
		h.Images = append(h.Images, *img)
	}

	return h, nil
}

func (s *Service) GetHouse(ctx context.Context, id int64) (*domain.House, error) {
	h, err := s.houses.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) Browse(ctx context.Context, q BrowseQuery) ([]domain.House, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 12
	}

	f := repository.HouseFilter{
		RoomType:     q.RoomType,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		Availability: domain.HouseAvailability(q.Availability),
	}
	return s.houses.Browse(ctx, f, q.PageSize, (q.Page-1)*q.PageSize)
}

func (s *Service) MyHouses(ctx context.Context, ownerEmail string) ([]domain.House, error) {
	return s.houses.ListByOwner(ctx, ownerEmail)
}

func (s *Service) UpdateHouse(ctx context.Context, id int64, ownerEmail string, req UpdateHouseRequest) (*domain.House, error) {
	h, err := s.houses.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if h.OwnerEmail != ownerEmail {
		return nil, ErrForbidden
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
	if req.RoomType != "" {
		h.RoomType = req.RoomType
	}
	if req.Rooms > 0 {
		h.Rooms = req.Rooms
	}
	if req.Bathrooms > 0 {
		h.Bathrooms = req.Bathrooms
	}
	if req.Furnishing != "" {
		h.Furnishing = req.Furnishing
	}
	if req.Sqft > 0 {
		h.Sqft = req.Sqft
	}
	if req.PricePerDay > 0 {
		h.PricePerDay = req.PricePerDay
	}
	windowChanged := false
	if req.StartDate != nil {
		h.StartDate = req.StartDate
		windowChanged = true
	}
	if req.EndDate != nil {
		h.EndDate = req.EndDate
		windowChanged = true
	}
	if h.StartDate != nil && h.EndDate != nil && h.EndDate.Before(*h.StartDate) {
		return nil, ErrValidation
	}

	if err := s.houses.Update(ctx, h); err != nil {
		return nil, err
	}

	// A narrower window can be fully covered by bookings that already
	// exist, so the derived availability has to be refreshed here rather
	// than waiting for the next booking event.
	if windowChanged && s.projector != nil && s.status != nil {
		if err := s.projector.Recompute(ctx, s.status, h.ID); err != nil {
			return nil, err
		}
		return s.houses.GetByID(ctx, h.ID)
	}
	return h, nil
}

// DeleteHouse removes a listing with everything that depends on it.
func (s *Service) DeleteHouse(ctx context.Context, id int64, ownerEmail string) error {
	h, err := s.houses.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return ErrNotFound
		}
		return err
	}
	if h.OwnerEmail != ownerEmail {
		return ErrForbidden
	}
	return s.houses.Delete(ctx, id)
}
