package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"stayelo/internal/domain"
	"stayelo/internal/repository"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) ConfirmWithOverlapGuard(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) MonthlyTrends(ctx context.Context) ([]repository.TrendPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TrendPoint), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func day(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func TestService_CreateBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	checkIn := day(2025, 3, 10)
	checkOut := day(2025, 3, 12)

	mockRooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Price: 1500, Capacity: 2}, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(1), checkIn, checkOut).Return(true, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockRooms)

	b, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   1,
		UserID:   42,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   2,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 3000.0, b.TotalPrice)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentPending, b.Payment.Status)
	mockBookings.AssertExpectations(t)
}

func TestService_CreateBooking_MissingField(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomRepository))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID: 1,
		UserID: 42,
		Guests: 2,
	})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestService_CreateBooking_InvalidRange(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomRepository))

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   1,
		UserID:   42,
		CheckIn:  day(2025, 3, 12),
		CheckOut: day(2025, 3, 10),
		Guests:   2,
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   1,
		UserID:   42,
		CheckIn:  day(2025, 3, 10),
		CheckOut: day(2025, 3, 10),
		Guests:   2,
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestService_CreateBooking_RoomNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockBookings, mockRooms)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   7,
		UserID:   42,
		CheckIn:  day(2025, 3, 10),
		CheckOut: day(2025, 3, 12),
		Guests:   2,
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_CreateBooking_CapacityExceeded(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Price: 1500, Capacity: 2}, nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   1,
		UserID:   42,
		CheckIn:  day(2025, 3, 10),
		CheckOut: day(2025, 3, 12),
		Guests:   3,
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestService_CreateBooking_RoomUnavailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Price: 1500, Capacity: 2}, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(false, nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   1,
		UserID:   42,
		CheckIn:  day(2025, 3, 10),
		CheckOut: day(2025, 3, 12),
		Guests:   2,
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestService_CreateBooking_ConflictOnInsert(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1, Price: 1500, Capacity: 2}, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(true, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(repository.ErrConflict)

	service := NewService(mockBookings, mockRooms)

	_, err := service.CreateBooking(context.Background(), CreateBookingRequest{
		RoomID:   1,
		UserID:   42,
		CheckIn:  day(2025, 3, 10),
		CheckOut: day(2025, 3, 12),
		Guests:   2,
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestService_UpdateStatus_ConfirmGoesThroughGuard(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, RoomID: 1, Status: domain.BookingPending,
	}, nil)
	mockBookings.On("ConfirmWithOverlapGuard", mock.Anything, mock.Anything).Return(repository.ErrConflict)

	service := NewService(mockBookings, mockRooms)

	_, err := service.UpdateStatus(context.Background(), 5, domain.BookingConfirmed)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	mockBookings.AssertExpectations(t)
}

func TestService_UpdateStatus_InvalidTransition(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, Status: domain.BookingCheckedOut,
	}, nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.UpdateStatus(context.Background(), 5, domain.BookingCheckedIn)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestService_CancelBooking_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, UserID: 42, Status: domain.BookingConfirmed,
	}, nil)
	mockBookings.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockBookings, mockRooms)

	b, err := service.CancelBooking(context.Background(), 5, 42, string(domain.RoleCustomer))
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
}

func TestService_CancelBooking_AlreadyCancelled(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, UserID: 42, Status: domain.BookingCancelled,
	}, nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.CancelBooking(context.Background(), 5, 42, string(domain.RoleCustomer))
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestService_CancelBooking_Forbidden(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)

	mockBookings.On("GetByID", mock.Anything, int64(5)).Return(&domain.Booking{
		ID: 5, UserID: 42, Status: domain.BookingConfirmed,
	}, nil)

	service := NewService(mockBookings, mockRooms)

	_, err := service.CancelBooking(context.Background(), 5, 43, string(domain.RoleCustomer))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_GetUserBookings_ForbiddenForOtherCustomer(t *testing.T) {
	service := NewService(new(MockBookingRepository), new(MockRoomRepository))

	_, err := service.GetUserBookings(context.Background(), 42, 43, string(domain.RoleCustomer))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_GetUserBookings_AdminSeesAnyUser(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByUserID", mock.Anything, int64(42)).Return([]domain.Booking{{ID: 1, UserID: 42}}, nil)

	service := NewService(mockBookings, new(MockRoomRepository))

	list, err := service.GetUserBookings(context.Background(), 42, 1, string(domain.RoleAdmin))
	assert.NoError(t, err)
	assert.Len(t, list, 1)
}
