package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

type fakeAccountRepo struct {
	accounts []*domain.Account
	err      error
}

func (f *fakeAccountRepo) List(_ context.Context) ([]*domain.Account, error) {
	return f.accounts, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestList(t *testing.T) {
	created := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	repo := &fakeAccountRepo{
		accounts: []*domain.Account{
			{
				ID:        "acc-1",
				Email:     "maria@example.com",
				Name:      "Maria",
				Phone:     "+33612345678",
				Role:      domain.RoleClient,
				CreatedAt: created,
			},
			{
				ID:    "acc-2",
				Email: "admin@example.com",
				Role:  domain.RoleAdmin,
			},
		},
	}

	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "maria@example.com", resp.Accounts[0].Email)
	assert.Equal(t, "+33612345678", resp.Accounts[0].Phone)
	assert.Equal(t, "client", resp.Accounts[0].Role)
	assert.Equal(t, created.Format(time.RFC3339), resp.Accounts[0].CreatedAt)
}

func TestList_EmptyRepository(t *testing.T) {
	svc := NewService(&fakeAccountRepo{}, noopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.NotNil(t, resp.Accounts)
}

func TestList_RepositoryError(t *testing.T) {
	svc := NewService(&fakeAccountRepo{err: errors.New("connection refused")}, noopLogger{})

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}
