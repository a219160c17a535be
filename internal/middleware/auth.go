package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"go_5_path_gen/internal/config"
	"go_5_path_gen/internal/model"
	"go_5_path_gen/internal/webutil"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// ユーザーIDをコンテキストに格納するミドルウェアです。
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Authorization header is missing")
				webutil.RespondWithJSON(w, http.StatusUnauthorized, model.APIErrorResponse{
					Error: model.ErrorDetail{Code: "UNAUTHORIZED", Message: "認証情報が必要です。"},
				}, logger)
				return
			}

			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found {
				logger.Warn("Authorization header format is invalid")
				webutil.RespondWithJSON(w, http.StatusUnauthorized, model.APIErrorResponse{
					Error: model.ErrorDetail{Code: "UNAUTHORIZED", Message: "認証情報の形式が不正です。"},
				}, logger)
				return
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("Token validation failed", "error", err)
				webutil.RespondWithJSON(w, http.StatusUnauthorized, model.APIErrorResponse{
					Error: model.ErrorDetail{Code: "UNAUTHORIZED", Message: "トークンが無効か、有効期限が切れています。"},
				}, logger)
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("Token subject is not a valid UUID", "subject", claims.Subject)
				webutil.RespondWithJSON(w, http.StatusUnauthorized, model.APIErrorResponse{
					Error: model.ErrorDetail{Code: "UNAUTHORIZED", Message: "トークンが無効です。"},
				}, logger)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext はコンテキストから認証済みユーザーIDを取得します。
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	return userID, ok
}
