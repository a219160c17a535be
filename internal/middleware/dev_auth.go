package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"go_5_path_gen/internal/model"
)

// DevUserContextMiddleware は X-User-ID ヘッダーのUUIDをそのままユーザーIDとして
// コンテキストに格納します。ローカル開発およびハンドラテスト専用であり、
// 本番環境では JWTAuthMiddleware を使用してください。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headerValue := r.Header.Get("X-User-ID")
		if headerValue == "" {
			http.Error(w, "X-User-ID header is required", http.StatusUnauthorized)
			return
		}

		userID, err := uuid.Parse(headerValue)
		if err != nil {
			http.Error(w, "X-User-ID header must be a valid UUID", http.StatusBadRequest)
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
