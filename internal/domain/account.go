package domain

import "time"

// UserRole роль пользователя в системе
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleClient UserRole = "client"
)

// Account аккаунт пользователя
// Создается при первом бронировании, роль выдается администратором вручную
type Account struct {
	ID        string
	Email     string
	Name      string
	Phone     string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin проверяет, имеет ли аккаунт права администратора
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
