package listing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"homelet/internal/domain"
)

type MockStatusStore struct {
	mock.Mock
}

func (m *MockStatusStore) GetHouse(ctx context.Context, id int64) (*domain.House, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.House), args.Error(1)
}

func (m *MockStatusStore) BookingsForHouse(ctx context.Context, houseID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockStatusStore) UpdateHouseAvailability(ctx context.Context, houseID int64, a domain.HouseAvailability) error {
	args := m.Called(ctx, houseID, a)
	return args.Error(0)
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func windowedHouse(start, end int, avail domain.HouseAvailability) *domain.House {
	s, e := day(start), day(end)
	return &domain.House{
		ID:               1,
		StartDate:        &s,
		EndDate:          &e,
		ModerationStatus: domain.HouseValid,
		Availability:     avail,
	}
}

func TestProjector_FullyBookedBecomesRented(t *testing.T) {
	st := new(MockStatusStore)
	st.On("GetHouse", mock.Anything, int64(1)).
		Return(windowedHouse(1, 5, domain.HouseAvailable), nil)
	st.On("BookingsForHouse", mock.Anything, int64(1)).
		Return([]domain.Booking{{StartDate: day(1), EndDate: day(5)}}, nil)
	st.On("UpdateHouseAvailability", mock.Anything, int64(1), domain.HouseRented).
		Return(nil)

	err := NewProjector().Recompute(context.Background(), st, 1)

	assert.NoError(t, err)
	st.AssertExpectations(t)
}

func TestProjector_GapBecomesAvailable(t *testing.T) {
	st := new(MockStatusStore)
	st.On("GetHouse", mock.Anything, int64(1)).
		Return(windowedHouse(1, 10, domain.HouseRented), nil)
	st.On("BookingsForHouse", mock.Anything, int64(1)).
		Return([]domain.Booking{{StartDate: day(1), EndDate: day(3)}}, nil)
	st.On("UpdateHouseAvailability", mock.Anything, int64(1), domain.HouseAvailable).
		Return(nil)

	err := NewProjector().Recompute(context.Background(), st, 1)

	assert.NoError(t, err)
	st.AssertExpectations(t)
}

func TestProjector_NoWriteWhenUnchanged(t *testing.T) {
	st := new(MockStatusStore)
	st.On("GetHouse", mock.Anything, int64(1)).
		Return(windowedHouse(1, 10, domain.HouseAvailable), nil)
	st.On("BookingsForHouse", mock.Anything, int64(1)).
		Return([]domain.Booking{}, nil)

	err := NewProjector().Recompute(context.Background(), st, 1)

	assert.NoError(t, err)
	st.AssertNotCalled(t, "UpdateHouseAvailability", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjector_RestrictedHouseKeepsModerationStatus(t *testing.T) {
	h := windowedHouse(1, 5, domain.HouseAvailable)
	h.ModerationStatus = domain.HouseRestricted

	st := new(MockStatusStore)
	st.On("GetHouse", mock.Anything, int64(1)).Return(h, nil)
	st.On("BookingsForHouse", mock.Anything, int64(1)).
		Return([]domain.Booking{{StartDate: day(1), EndDate: day(5)}}, nil)
	st.On("UpdateHouseAvailability", mock.Anything, int64(1), domain.HouseRented).
		Return(nil)

	err := NewProjector().Recompute(context.Background(), st, 1)

	// The availability column changes, the moderation column is untouched:
	// the projector has no way to write it.
	assert.NoError(t, err)
	assert.Equal(t, domain.HouseRestricted, h.ModerationStatus)
	st.AssertExpectations(t)
}
