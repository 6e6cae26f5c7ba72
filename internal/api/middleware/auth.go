package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// Заголовки аутентификации, проставляются API gateway после проверки токена
const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"
)

// Auth извлекает идентификацию пользователя из заголовков и кладёт
// её в контекст запроса. Запросы без X-User-ID отклоняются
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			respondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			respondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)

		if role := r.Header.Get(headerUserRole); role != "" {
			ctx = context.WithValue(ctx, userRoleKey, role)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetUserRole возвращает роль пользователя из контекста
func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKey).(string)
	return role, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
