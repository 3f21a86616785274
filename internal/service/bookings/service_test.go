package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/KaraBox-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/KaraBox-BookingService/internal/service/bookings/models"
)

type fakeRepo struct {
	booking   *domain.Booking
	getErr    error
	updateErr error
	deleteErr error

	updatedFrom domain.BookingStatus
	updatedTo   domain.BookingStatus
	deleted     bool

	confirmed  *domain.Booking
	confirmErr error
}

func (f *fakeRepo) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.booking == nil {
		return nil, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeRepo) UpdateStatusGuarded(_ context.Context, _ string, from, to domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedFrom = from
	f.updatedTo = to
	return nil
}

func (f *fakeRepo) SoftDelete(_ context.Context, _ string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

func (f *fakeRepo) ConfirmByPaymentSession(_ context.Context, _ string) (*domain.Booking, error) {
	return f.confirmed, f.confirmErr
}

type fakeMailer struct {
	statusChanged int
	confirmations int
	err           error
}

func (f *fakeMailer) SendBookingConfirmation(_ *domain.Booking) error {
	f.confirmations++
	return f.err
}

func (f *fakeMailer) SendStatusChanged(_ *domain.Booking) error {
	f.statusChanged++
	return f.err
}

type fakeCache struct {
	invalidated int
}

func (f *fakeCache) InvalidateDate(_ context.Context, _ time.Time) error {
	f.invalidated++
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            "bk-1",
		UserEmail:     "guest@example.com",
		UserName:      "Guest",
		Date:          time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		TimeSlot:      "14:00",
		DurationHours: 2,
		GroupSize:     4,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentAwaiting,
	}
}

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking()}
	mailer := &fakeMailer{}
	cache := &fakeCache{}
	svc := NewService(repo, mailer, cache, noopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID: "bk-1",
		Status:    "confirmed",
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusPending, repo.updatedFrom)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedTo)
	assert.Equal(t, 1, mailer.statusChanged)
	assert.Equal(t, 1, cache.invalidated)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusCancelled
	svc := NewService(&fakeRepo{booking: booking}, &fakeMailer{}, nil, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID: "bk-1",
		Status:    "confirmed",
	})

	assert.ErrorIs(t, err, ErrTransitionNotAllowed)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc := NewService(&fakeRepo{booking: pendingBooking()}, &fakeMailer{}, nil, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID: "bk-1",
		Status:    "archived",
	})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_ConcurrentConflict(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking(), updateErr: bookingRepo.ErrStatusConflict}
	svc := NewService(repo, &fakeMailer{}, nil, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID: "bk-1",
		Status:    "confirmed",
	})

	assert.ErrorIs(t, err, ErrStatusConflict)
}

func TestUpdateStatus_EmailFailureDoesNotFailOperation(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking()}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewService(repo, mailer, nil, noopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID: "bk-1",
		Status:    "confirmed",
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestUpdateStatus_DeletedBookingNotFound(t *testing.T) {
	booking := pendingBooking()
	deletedAt := time.Now()
	booking.DeletedAt = &deletedAt
	svc := NewService(&fakeRepo{booking: booking}, &fakeMailer{}, nil, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		BookingID: "bk-1",
		Status:    "cancelled",
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSoftDelete(t *testing.T) {
	repo := &fakeRepo{booking: pendingBooking()}
	cache := &fakeCache{}
	svc := NewService(repo, &fakeMailer{}, cache, noopLogger{})

	err := svc.SoftDelete(context.Background(), "bk-1")

	require.NoError(t, err)
	assert.True(t, repo.deleted)
	assert.Equal(t, 1, cache.invalidated)
}

func TestSoftDelete_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{getErr: bookingRepo.ErrBookingNotFound}, &fakeMailer{}, nil, noopLogger{})

	err := svc.SoftDelete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirmPayment(t *testing.T) {
	confirmed := pendingBooking()
	confirmed.Status = domain.StatusConfirmed
	confirmed.PaymentStatus = domain.PaymentPaid

	repo := &fakeRepo{confirmed: confirmed}
	mailer := &fakeMailer{}
	cache := &fakeCache{}
	svc := NewService(repo, mailer, cache, noopLogger{})

	resp, err := svc.ConfirmPayment(context.Background(), "cs_1")

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Equal(t, 1, mailer.confirmations)
	assert.Equal(t, 1, cache.invalidated)
}

func TestConfirmPayment_ReplayedEvent(t *testing.T) {
	repo := &fakeRepo{confirmErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, &fakeMailer{}, nil, noopLogger{})

	_, err := svc.ConfirmPayment(context.Background(), "cs_replayed")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeMailer{}, nil, noopLogger{})

	bad := "archived"
	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: &bad})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID(t *testing.T) {
	svc := NewService(&fakeRepo{booking: pendingBooking()}, &fakeMailer{}, nil, noopLogger{})

	resp, err := svc.GetByID(context.Background(), "bk-1")

	require.NoError(t, err)
	assert.Equal(t, "bk-1", resp.ID)
	assert.Equal(t, "2026-09-04", resp.Date)
	assert.Equal(t, "14:00", resp.TimeSlot)
}
