package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	"github.com/m04kA/KaraBox-BookingService/pkg/dbmetrics"
	"github.com/m04kA/KaraBox-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками key -> JSONB
// Под одним ключом хранится один JSON документ (настройки бронирования, тарифы)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBookingSettings получает настройки бронирования
func (r *Repository) GetBookingSettings(ctx context.Context) (*domain.BookingSettings, error) {
	var settings domain.BookingSettings
	if err := r.getValue(ctx, domain.KeyBookingSettings, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpsertBookingSettings сохраняет настройки бронирования
func (r *Repository) UpsertBookingSettings(ctx context.Context, settings *domain.BookingSettings) error {
	return r.upsertValue(ctx, domain.KeyBookingSettings, settings)
}

// GetBaseRates получает базовые тарифы
func (r *Repository) GetBaseRates(ctx context.Context) (*domain.BaseRates, error) {
	var rates domain.BaseRates
	if err := r.getValue(ctx, domain.KeyBasePrice, &rates); err != nil {
		return nil, err
	}
	return &rates, nil
}

// UpsertBaseRates сохраняет базовые тарифы
func (r *Repository) UpsertBaseRates(ctx context.Context, rates *domain.BaseRates) error {
	return r.upsertValue(ctx, domain.KeyBasePrice, rates)
}

// getValue читает JSON значение по ключу и декодирует его в dest
func (r *Repository) getValue(ctx context.Context, key string, dest interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("booking_settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: getValue - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSettingsNotFound
		}
		return fmt.Errorf("%w: getValue - execute query: %v", ErrExecQuery, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: getValue - key %s: %v", ErrDecodeValue, key, err)
	}

	return nil
}

// upsertValue кодирует значение в JSON и сохраняет под ключом
func (r *Repository) upsertValue(ctx context.Context, key string, value interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: upsertValue - key %s: %v", ErrEncodeValue, key, err)
	}

	query, args, err := psqlbuilder.Insert("booking_settings").
		Columns("key", "value").
		Values(key, raw).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: upsertValue - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsertValue - execute query: %v", ErrExecQuery, err)
	}

	return nil
}
