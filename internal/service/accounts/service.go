package accounts

import (
	"context"
	"fmt"

	"github.com/m04kA/KaraBox-BookingService/internal/service/accounts/models"
)

// Service сервис аккаунтов клиентов (админка)
type Service struct {
	accountRepo AccountRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса аккаунтов
func NewService(accountRepo AccountRepository, logger Logger) *Service {
	return &Service{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// List возвращает все аккаунты клиентов, новые первыми
func (s *Service) List(ctx context.Context) (*models.AccountListResponse, error) {
	s.logger.Info("List: fetching accounts")

	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: %d accounts fetched", len(accounts))
	return models.FromDomainAccounts(accounts), nil
}
