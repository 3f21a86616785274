package models

import (
	"time"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

// AccountResponse ответ с данными аккаунта клиента
type AccountResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// AccountListResponse список аккаунтов
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// FromDomainAccount конвертирует domain модель в response
func FromDomainAccount(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Phone:     account.Phone,
		Role:      string(account.Role),
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainAccounts конвертирует список domain моделей в response
func FromDomainAccounts(accounts []*domain.Account) *AccountListResponse {
	items := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, FromDomainAccount(account))
	}
	return &AccountListResponse{
		Accounts: items,
		Total:    len(items),
	}
}
