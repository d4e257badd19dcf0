// Package middlewarectx содержит HTTP middleware аутентификации и авторизации.
//
// AuthMiddleware проверяет наличие и валидность токена в заголовке Authorization
// и в случае успеха добавляет личность запрашивающего в контекст запроса.
// RequireRoles пропускает запрос дальше только если роль входит в разрешённый
// набор операции. Оба шлюза чистые: хранилище не трогают и выполняются до
// любой логики обработчика.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/backoffice/internal/http/response"
	"github.com/magabrotheeeer/backoffice/internal/lib/sl"
	"github.com/magabrotheeeer/backoffice/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// IdentityKey — ключ, под которым в контексте лежит *models.Identity.
const IdentityKey Key = "identity"

// Verifier описывает интерфейс проверки токена доступа.
type Verifier interface {
	Verify(token string) (*models.Identity, error)
}

// IdentityFromContext достает личность запрашивающего из контекста.
func IdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*models.Identity)
	return identity, ok && identity != nil
}

// AuthMiddleware возвращает HTTP middleware, который проверяет bearer-токен
// в заголовке Authorization.
//
// Если токен валиден, кладет личность в контекст запроса, иначе возвращает
// 401 Unauthorized: отдельно для отсутствующего заголовка и отдельно для
// неподписанного, искажённого или истёкшего токена.
func AuthMiddleware(verifier Verifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			identity, err := verifier.Verify(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles возвращает middleware, который пропускает запрос только если
// роль запрашивающего входит в allowedRoles. Каждая защищённая операция
// объявляет свой набор ролей на маршруте, наследования прав нет.
func RequireRoles(log *slog.Logger, allowedRoles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireRoles"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				log.Error("identity not found in context")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}
			if _, ok := allowed[identity.Role]; !ok {
				log.Error("insufficient role",
					slog.String("role", identity.Role),
					slog.String("username", identity.Username))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
