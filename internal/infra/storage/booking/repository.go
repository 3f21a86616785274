package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	"github.com/m04kA/KaraBox-BookingService/pkg/dbmetrics"
	"github.com/m04kA/KaraBox-BookingService/pkg/psqlbuilder"
)

// bookingColumns полный список колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"user_id",
	"user_email",
	"user_name",
	"user_phone",
	"date",
	"time_slot",
	"duration_hours",
	"group_size",
	"price",
	"status",
	"payment_status",
	"payment_session_id",
	"promo_code",
	"message",
	"is_test_booking",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// ID генерируется на стороне приложения (uuid v4)
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_id",
			"user_email",
			"user_name",
			"user_phone",
			"date",
			"time_slot",
			"duration_hours",
			"group_size",
			"price",
			"status",
			"payment_status",
			"payment_session_id",
			"promo_code",
			"message",
			"is_test_booking",
		).
		Values(
			booking.ID,
			booking.UserID,
			booking.UserEmail,
			booking.UserName,
			booking.UserPhone,
			booking.Date,
			booking.TimeSlot,
			booking.DurationHours,
			booking.GroupSize,
			booking.Price,
			booking.Status,
			booking.PaymentStatus,
			booking.PaymentSessionID,
			booking.PromoCode,
			booking.Message,
			booking.IsTestBooking,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID (включая soft-deleted)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetActiveByDate получает активные бронирования на указанную дату
// Активные = не отмененные и не удаленные; именно они занимают слоты.
// Внутри транзакции строки блокируются через FOR UPDATE - это авторитетная
// проверка пересечений при создании бронирования
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where("deleted_at IS NULL").
		OrderBy("time_slot ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListWithFilter получает бронирования с гибкой фильтрацией (админка)
// По умолчанию скрывает soft-deleted и тестовые записи
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.UserEmail != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_email": *filter.UserEmail})
	}
	if !filter.IncludeDeleted {
		selectBuilder = selectBuilder.Where("deleted_at IS NULL")
	}
	if !filter.IncludeTest {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_test_booking": false})
	}

	selectBuilder = selectBuilder.OrderBy("date DESC, time_slot DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatusGuarded выполняет условное обновление статуса
// Обновление проходит только если текущий статус записи равен from -
// это защита от lost update при конкурентных изменениях из админки
func (r *Repository) UpdateStatusGuarded(ctx context.Context, id string, from, to domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatusGuarded - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusGuarded - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusGuarded - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Разделяем "не найдено" и "статус уже изменился"
		if _, err := r.GetByID(ctx, id); err != nil {
			return ErrBookingNotFound
		}
		return ErrStatusConflict
	}

	return nil
}

// SetPaymentSession привязывает ID checkout-сессии к бронированию
func (r *Repository) SetPaymentSession(ctx context.Context, id string, sessionID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_session_id", sessionID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPaymentSession - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetPaymentSession - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetPaymentSession - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ConfirmByPaymentSession подтверждает оплаченное бронирование по ID сессии
// Обновляются только записи в статусе pending, поэтому повторная доставка
// webhook-события безопасна: второй вызов не найдет строку и вернет ErrBookingNotFound
func (r *Repository) ConfirmByPaymentSession(ctx context.Context, sessionID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusConfirmed).
		Set("payment_status", domain.PaymentPaid).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"payment_session_id": sessionID,
			"status":             domain.StatusPending,
		}).
		Where("deleted_at IS NULL").
		Suffix("RETURNING " + joinColumns(bookingColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ConfirmByPaymentSession - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: ConfirmByPaymentSession - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// SoftDelete помечает бронирование удаленным (deleted_at = NOW())
// Физическое удаление не выполняется никогда - история сохраняется
func (r *Repository) SoftDelete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в domain.Booking
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var deletedAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.UserEmail,
		&booking.UserName,
		&booking.UserPhone,
		&booking.Date,
		&booking.TimeSlot,
		&booking.DurationHours,
		&booking.GroupSize,
		&booking.Price,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentSessionID,
		&booking.PromoCode,
		&booking.Message,
		&booking.IsTestBooking,
		&deletedAt,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	if deletedAt.Valid {
		booking.DeletedAt = &deletedAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func joinColumns(columns []string) string {
	out := ""
	for i, c := range columns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
