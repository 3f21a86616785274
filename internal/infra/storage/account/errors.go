package account

import "errors"

var (
	// ErrAccountNotFound аккаунт не найден
	ErrAccountNotFound = errors.New("account.repository: account not found")
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("account.repository: failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("account.repository: failed to execute query")
)
