package handlers

import (
	"errors"
	"io"
	"net/http"

	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"
	"go_5_path_gen/internal/service"
	"go_5_path_gen/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

// CreateOrder はプレミアム購入用のRazorpay注文を作成します
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	var req model.CreateOrderRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for order creation", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for order creation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.CreateOrder(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Order creation failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Order created successfully", "razorpay_order_id", resp.OrderID)
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// VerifyPayment はチェックアウト後の署名を検証し、プレミアムを有効化します
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		logger.Error("User ID not found in context")
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	var req model.VerifyPaymentRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for payment verification", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for payment verification", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	user, err := h.service.VerifyPayment(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Payment verification failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Payment verified successfully", "user_id", user.UserID)
	webutil.RespondWithJSON(w, http.StatusOK, user, logger)
}

// HandleWebhook はRazorpayからの非同期通知を受け付けます。
// 署名検証のため、ボディはデコード前の生バイト列のままサービスへ渡します。
func (h *PaymentHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	signature := r.Header.Get("X-Razorpay-Signature")
	if signature == "" {
		logger.Warn("Webhook request without signature header")
		appErr := model.NewAppError("PAYMENT_INVALID", "署名ヘッダーがありません。", "", model.ErrPaymentInvalid)
		webutil.HandleError(w, logger, appErr)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("Failed to read webhook body", "error", err)
		webutil.HandleError(w, logger, model.ErrInternalServer)
		return
	}

	if err := h.service.HandleWebhook(r.Context(), body, signature); err != nil {
		logger.Error("Webhook handling failed in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}
