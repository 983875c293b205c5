package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ciphersage74/elegancecoiffure/internal/api/handlers"
)

// Заголовки, которые проставляет шлюз аутентификации перед сервисом
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Роли пользователей
const (
	RoleClient = "client"
	RoleStaff  = "staff"
	RoleAdmin  = "admin"
)

type ctxKey int

const (
	ctxKeyUserID ctxKey = iota
	ctxKeyUserRole
	ctxKeyRequestID
)

// Auth требует X-User-ID и кладет пользователя и роль в контекст.
// Роль по умолчанию - client.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "en-tête "+HeaderUserID+" manquant")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "en-tête "+HeaderUserID+" invalide")
			return
		}

		role := r.Header.Get(HeaderUserRole)
		switch role {
		case "":
			role = RoleClient
		case RoleClient, RoleStaff, RoleAdmin:
		default:
			handlers.RespondUnauthorized(w, "en-tête "+HeaderUserRole+" invalide")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
		ctx = context.WithValue(ctx, ctxKeyUserRole, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole пропускает только перечисленные роли. Ставится после Auth.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRole(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, "authentification requise")
				return
			}
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			handlers.RespondForbidden(w, "access denied")
		})
	}
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKeyUserID).(int64)
	return id, ok
}

// GetUserRole возвращает роль пользователя из контекста
func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(ctxKeyUserRole).(string)
	return role, ok
}

// IsAdmin true для роли admin
func IsAdmin(ctx context.Context) bool {
	role, _ := GetUserRole(ctx)
	return role == RoleAdmin
}
