package middleware

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	userEmailKey contextKey = "userEmail"
)

// Заголовки аутентификации, проставляются внешним шлюзом
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserEmail = "X-User-Email"
)

// Auth проверяет наличие идентификатора пользователя в заголовках
// и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		userEmail := strings.TrimSpace(r.Header.Get(HeaderUserEmail))

		if userID == "" && userEmail == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"отсутствует идентификатор пользователя"}`))
			return
		}

		ctx := r.Context()
		if userID != "" {
			ctx = context.WithValue(ctx, userIDKey, userID)
		}
		if userEmail != "" {
			ctx = context.WithValue(ctx, userEmailKey, userEmail)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// GetUserEmail возвращает email пользователя из контекста
func GetUserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok
}
