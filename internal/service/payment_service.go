//go:generate mockery --name PaymentService --output ./mocks --outpkg mocks --case=underscore
//go:generate mockery --name OrderCreator --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"go_5_path_gen/internal/config"
	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"
	"go_5_path_gen/internal/repository"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"gorm.io/gorm"
)

// OrderCreator はRazorpayの注文作成APIを抽象化したインターフェースです。
type OrderCreator interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error)
}

type razorpayOrderCreator struct {
	client *razorpay.Client
}

func NewRazorpayOrderCreator(cfg *config.Config) OrderCreator {
	return &razorpayOrderCreator{
		client: razorpay.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret),
	}
}

func (c *razorpayOrderCreator) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := c.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpayOrderCreator.CreateOrder: %w", err)
	}
	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpayOrderCreator.CreateOrder: response has no order id")
	}
	return orderID, nil
}

// PaymentService はプレミアム購入の決済フローを扱うサービスです。
type PaymentService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, userID uuid.UUID, req *model.VerifyPaymentRequest) (*model.UserResponse, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}

type paymentService struct {
	db          *gorm.DB
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	orders      OrderCreator
	mailer      Mailer
	cfg         *config.Config
}

func NewPaymentService(db *gorm.DB, paymentRepo repository.PaymentRepository, userRepo repository.UserRepository, orders OrderCreator, mailer Mailer, cfg *config.Config) PaymentService {
	return &paymentService{
		db:          db,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		orders:      orders,
		mailer:      mailer,
		cfg:         cfg,
	}
}

// CreateOrder はRazorpayの注文を作成し、pending状態の決済レコードを保存します。
// リクエストの金額はルピー単位、保存と応答はpaise単位で統一します。
func (s *paymentService) CreateOrder(ctx context.Context, userID uuid.UUID, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error) {
	logger := middleware.GetLogger(ctx)

	if req.Amount <= 0 {
		return nil, model.NewAppError("INVALID_AMOUNT", "金額の指定が不正です。", "amount", model.ErrInvalidInput)
	}
	amountPaise := int64(math.Round(req.Amount * 100))

	paymentID := uuid.New()
	orderID, err := s.orders.CreateOrder(ctx, amountPaise, "INR", paymentID.String())
	if err != nil {
		logger.Error("Failed to create Razorpay order", "error", err, "user_id", userID.String())
		return nil, model.NewAppError("PROVIDER_FAILED", "決済の開始に失敗しました。時間をおいて再度お試しください。", "", model.ErrProviderFailed)
	}

	payment := &model.Payment{
		PaymentID:       paymentID,
		UserID:          userID,
		Amount:          amountPaise,
		Currency:        "INR",
		RazorpayOrderID: orderID,
		Status:          model.PaymentStatusPending,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.paymentRepo.Create(ctx, tx, payment)
	})
	if err != nil {
		logger.Error("Failed to persist payment", "error", err, "razorpay_order_id", orderID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "決済情報の保存に失敗しました。", "", err)
	}

	logger.Info("Razorpay order created", "payment_id", paymentID, "razorpay_order_id", orderID, "amount_paise", amountPaise)
	return &model.CreateOrderResponse{
		OrderID:   orderID,
		Amount:    amountPaise,
		Currency:  "INR",
		PaymentID: paymentID,
	}, nil
}

// VerifyPayment はチェックアウト完了時の署名を検証し、決済を確定して
// ユーザーをプレミアムに昇格させます。
func (s *paymentService) VerifyPayment(ctx context.Context, userID uuid.UUID, req *model.VerifyPaymentRequest) (*model.UserResponse, error) {
	logger := middleware.GetLogger(ctx)

	payload := req.RazorpayOrderID + "|" + req.RazorpayPaymentID
	if !verifySignature([]byte(payload), req.RazorpaySignature, s.cfg.Razorpay.KeySecret) {
		logger.Warn("Razorpay signature mismatch", "razorpay_order_id", req.RazorpayOrderID, "user_id", userID.String())
		return nil, model.NewAppError("PAYMENT_INVALID", "決済の検証に失敗しました。", "", model.ErrPaymentInvalid)
	}

	var upgraded *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payment, err := s.paymentRepo.FindByOrderID(ctx, tx, req.RazorpayOrderID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("PAYMENT_NOT_FOUND", "対象の決済が見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "決済情報の取得に失敗しました。", "", err)
		}
		if payment.UserID != userID {
			return model.NewAppError("FORBIDDEN", "この決済を操作する権限がありません。", "", model.ErrForbidden)
		}

		if err := s.paymentRepo.MarkSuccessful(ctx, tx, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "決済状態の更新に失敗しました。", "", err)
		}

		expiresAt := time.Now().AddDate(0, 0, s.cfg.App.PremiumDays)
		if err := s.userRepo.SetPremium(ctx, tx, userID, expiresAt); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "プレミアムの付与に失敗しました。", "", err)
		}

		user, err := s.userRepo.FindByID(ctx, tx, userID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザー情報の取得に失敗しました。", "", err)
		}
		upgraded = user
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for VerifyPayment", "error", err, "razorpay_order_id", req.RazorpayOrderID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	// 領収メールはベストエフォート
	subject := fmt.Sprintf("%s プレミアムのご購入ありがとうございます", s.cfg.App.Name)
	body := fmt.Sprintf("%s さん\n\nプレミアムプランが有効になりました。有効期限: %s", upgraded.Name, upgraded.PremiumExpiresAt.Format("2006-01-02"))
	if err := s.mailer.Send(ctx, upgraded.Email, subject, body); err != nil {
		logger.Warn("Failed to send receipt email", "error", err, "user_id", upgraded.UserID)
	}

	logger.Info("Payment verified and premium granted", "user_id", userID, "razorpay_order_id", req.RazorpayOrderID)
	return upgraded.ToResponse(), nil
}

// webhookEvent はRazorpayのWebhookペイロードのうち必要な部分だけを表します
type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleWebhook はRazorpayからの非同期通知を処理します。
// 署名はWebhook専用シークレットでボディ全体に対して検証します。
// 既に確定済みの決済に対する再通知は成功として無視します (リトライ対策)。
func (s *paymentService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	logger := middleware.GetLogger(ctx)

	if !verifySignature(body, signature, s.cfg.Razorpay.WebhookSecret) {
		logger.Warn("Webhook signature mismatch")
		return model.NewAppError("PAYMENT_INVALID", "Webhookの検証に失敗しました。", "", model.ErrPaymentInvalid)
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Warn("Failed to parse webhook payload", "error", err)
		return model.NewAppError("INVALID_INPUT", "Webhookペイロードが不正です。", "", model.ErrInvalidInput)
	}

	switch event.Event {
	case "payment.captured", "payment.authorized":
		// 下で処理
	default:
		logger.Debug("Ignoring webhook event", "event", event.Event)
		return nil
	}

	orderID := event.Payload.Payment.Entity.OrderID
	razorpayPaymentID := event.Payload.Payment.Entity.ID
	if orderID == "" {
		logger.Warn("Webhook payload has no order id", "event", event.Event)
		return model.NewAppError("INVALID_INPUT", "Webhookペイロードが不正です。", "", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payment, err := s.paymentRepo.FindByOrderID(ctx, tx, orderID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("PAYMENT_NOT_FOUND", "対象の決済が見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "決済情報の取得に失敗しました。", "", err)
		}
		if payment.Status == model.PaymentStatusSuccessful {
			logger.Debug("Payment already confirmed, ignoring webhook", "razorpay_order_id", orderID)
			return nil
		}

		if err := s.paymentRepo.MarkSuccessful(ctx, tx, orderID, razorpayPaymentID, signature); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "決済状態の更新に失敗しました。", "", err)
		}

		expiresAt := time.Now().AddDate(0, 0, s.cfg.App.PremiumDays)
		if err := s.userRepo.SetPremium(ctx, tx, payment.UserID, expiresAt); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "プレミアムの付与に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return err
		}
		logger.Error("Transaction failed for HandleWebhook", "error", err, "razorpay_order_id", orderID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部エラー", "", err)
	}

	logger.Info("Webhook processed", "event", event.Event, "razorpay_order_id", orderID)
	return nil
}

// verifySignature はHMAC-SHA256署名を定数時間比較で検証します
func verifySignature(payload []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
