package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
	"github.com/m04kA/KaraBox-BookingService/pkg/dbmetrics"
	"github.com/m04kA/KaraBox-BookingService/pkg/psqlbuilder"
)

var accountColumns = []string{
	"id",
	"email",
	"name",
	"phone",
	"role",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с аккаунтами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аккаунтов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает аккаунт по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.getByField(ctx, "id", id)
}

// GetByEmail получает аккаунт по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getByField(ctx, "email", email)
}

// EnsureExists создает аккаунт с ролью client, если его еще нет
// Вызывается при первом бронировании пользователя
func (r *Repository) EnsureExists(ctx context.Context, id, email, name, phone string) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if id == "" {
		id = uuid.NewString()
	}

	// Пустой телефон в новом бронировании не затирает сохраненный
	query, args, err := psqlbuilder.Insert("accounts").
		Columns("id", "email", "name", "phone", "role").
		Values(id, email, name, phone, domain.RoleClient).
		Suffix("ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, " +
			"phone = COALESCE(NULLIF(EXCLUDED.phone, ''), accounts.phone), updated_at = NOW()").
		Suffix("RETURNING id, email, name, phone, role, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: EnsureExists - build insert query: %v", ErrBuildQuery, err)
	}

	account, err := r.scanAccount(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: EnsureExists - execute insert: %v", ErrExecQuery, err)
	}

	return account, nil
}

// List возвращает все аккаунты, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(accountColumns...).
		From("accounts").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := r.scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan account: %v", ErrExecQuery, err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return accounts, nil
}

func (r *Repository) getByField(ctx context.Context, field, value string) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{field: value}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getByField - build select query: %v", ErrBuildQuery, err)
	}

	account, err := r.scanAccount(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("%w: getByField - scan account: %v", ErrExecQuery, err)
	}

	return account, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAccount(row rowScanner) (*domain.Account, error) {
	var account domain.Account
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.Name,
		&account.Phone,
		&account.Role,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}
