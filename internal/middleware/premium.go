package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"go_5_path_gen/internal/model"
	"go_5_path_gen/internal/webutil"
)

// EntitlementChecker はユーザーのプレミアム資格を判定するインターフェースです。
type EntitlementChecker interface {
	IsEntitled(ctx context.Context, userID uuid.UUID) (bool, error)
}

// PremiumRequiredMiddleware はプレミアム資格を持つユーザーのみ後続ハンドラに通します。
// 資格は有効期限を含めてリクエストごとに再評価します。
func PremiumRequiredMiddleware(checker EntitlementChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			userID, ok := GetUserIDFromContext(r.Context())
			if !ok {
				logger.Error("User ID not found in context for premium check")
				webutil.HandleError(w, logger, model.ErrInternalServer)
				return
			}

			entitled, err := checker.IsEntitled(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to check premium entitlement", "error", err, "user_id", userID)
				webutil.HandleError(w, logger, err)
				return
			}
			if !entitled {
				logger.Info("Premium entitlement denied", "user_id", userID)
				webutil.HandleError(w, logger, model.NewAppError("PREMIUM_REQUIRED", "この機能の利用にはプレミアムプランへの加入が必要です。", "", model.ErrPremiumRequired))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
