package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/KaraBox-BookingService/internal/domain"
)

const roleKey contextKey = "userRole"

// AccountResolver интерфейс для получения аккаунта пользователя
type AccountResolver interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminOnly пускает дальше только пользователей с ролью admin
// Роль резолвится один раз на запрос и кладется в контекст
func AdminOnly(accounts AccountResolver, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account := resolveAccount(r.Context(), accounts)
			if account == nil {
				log.Warn("AdminOnly: account not resolved for %s %s", r.Method, r.URL.Path)
				forbidden(w)
				return
			}

			if !account.IsAdmin() {
				log.Warn("AdminOnly: access denied for account id=%s, role=%s", account.ID, account.Role)
				forbidden(w)
				return
			}

			ctx := context.WithValue(r.Context(), roleKey, account.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRole возвращает роль пользователя из контекста
func GetRole(ctx context.Context) (domain.UserRole, bool) {
	role, ok := ctx.Value(roleKey).(domain.UserRole)
	return role, ok
}

func resolveAccount(ctx context.Context, accounts AccountResolver) *domain.Account {
	if userID, ok := GetUserID(ctx); ok {
		if account, err := accounts.GetByID(ctx, userID); err == nil {
			return account
		}
	}
	if email, ok := GetUserEmail(ctx); ok {
		if account, err := accounts.GetByEmail(ctx, email); err == nil {
			return account
		}
	}
	return nil
}

func forbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"error":"доступ запрещен"}`))
}
