package review

import (
	"context"
	"errors"

	"homelet/internal/domain"
	"homelet/internal/repository"
)

// Service is the feedback surface: house reviews from tenants and
// reports filed against a listing or an account. Admins pick reports up
// from their own module.
type Service struct {
	reviews *repository.ReviewRepository
	reports *repository.ReportRepository
	houses  *repository.HouseRepository
	users   *repository.UserRepository
}

func NewService(
	reviews *repository.ReviewRepository,
	reports *repository.ReportRepository,
	houses *repository.HouseRepository,
	users *repository.UserRepository,
) *Service {
	return &Service{reviews: reviews, reports: reports, houses: houses, users: users}
}

func (s *Service) CreateReview(ctx context.Context, userEmail string, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.houses.GetByID(ctx, req.HouseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHouseNotFound
		}
		return nil, err
	}

	rev := &domain.Review{
		HouseID:   req.HouseID,
		UserEmail: userEmail,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *Service) ListReviews(ctx context.Context, houseID int64, limit, offset int) ([]domain.Review, int64, error) {
	return s.reviews.ListByHouse(ctx, houseID, limit, offset)
}

// CreateReport files a complaint. Exactly the target that exists is
// checked; a report against nothing is rejected.
func (s *Service) CreateReport(ctx context.Context, reporterEmail string, req CreateReportRequest) (*domain.Report, error) {
	if req.TargetHouseID == nil && req.TargetEmail == nil {
		return nil, ErrInvalidTarget
	}

	if req.TargetHouseID != nil {
		if _, err := s.houses.GetByID(ctx, *req.TargetHouseID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrTargetNotFound
			}
			return nil, err
		}
	}
	if req.TargetEmail != nil {
		if _, err := s.users.GetByEmail(ctx, *req.TargetEmail); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrTargetNotFound
			}
			return nil, err
		}
	}

	rep := &domain.Report{
		ReporterEmail: reporterEmail,
		TargetHouseID: req.TargetHouseID,
		TargetEmail:   req.TargetEmail,
		ReportType:    req.ReportType,
		Details:       req.Details,
		Status:        domain.ReportPending,
	}
	if err := s.reports.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}
