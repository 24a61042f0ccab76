package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/Pickleball-BookingService/internal/api/handlers"
)

// userIDHeader заголовок с ID аутентифицированного пользователя
// Заполняется вышестоящим gateway после проверки сессии
const userIDHeader = "X-User-ID"

type userIDContextKey struct{}

// Auth middleware аутентификации
// Запросы без заголовка X-User-ID отклоняются с 401 без обращения к хранилищу
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(userIDHeader)
		if userID == "" {
			handlers.RespondUnauthorized(w, "требуется аутентификация")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(string)
	return userID, ok
}
