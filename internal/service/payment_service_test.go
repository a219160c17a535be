package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"go_5_path_gen/internal/config"
	"go_5_path_gen/internal/model"
	repomocks "go_5_path_gen/internal/repository/mocks"
	"go_5_path_gen/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testKeySecret     = "test-key-secret"
	testWebhookSecret = "test-webhook-secret"
)

func paymentTestConfig() *config.Config {
	cfg := testConfig()
	cfg.Razorpay.KeyID = "rzp_test_key"
	cfg.Razorpay.KeySecret = testKeySecret
	cfg.Razorpay.WebhookSecret = testWebhookSecret
	return cfg
}

// signPayload は実装と同じ方式 (HMAC-SHA256 hex) で署名を作ります
func signPayload(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func Test_paymentService_CreateOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("正常系: ルピーがpaiseに換算されてpendingで保存される", func(t *testing.T) {
		paymentRepo := new(repomocks.PaymentRepository)
		orders := new(mocks.OrderCreator)

		orders.On("CreateOrder", ctx, int64(49900), "INR", mock.AnythingOfType("string")).
			Return("order_MkXYZ123", nil).Once()
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Payment")).
			Run(func(args mock.Arguments) {
				p := args.Get(2).(*model.Payment)
				assert.Equal(t, userID, p.UserID)
				assert.Equal(t, int64(49900), p.Amount)
				assert.Equal(t, "INR", p.Currency)
				assert.Equal(t, "order_MkXYZ123", p.RazorpayOrderID)
				assert.Equal(t, model.PaymentStatusPending, p.Status)
			}).
			Return(nil).Once()

		svc := NewPaymentService(setupTestDB(), paymentRepo, new(repomocks.UserRepository), orders, new(mocks.Mailer), paymentTestConfig())

		resp, err := svc.CreateOrder(ctx, userID, &model.CreateOrderRequest{Amount: 499.0})

		require.NoError(t, err)
		assert.Equal(t, "order_MkXYZ123", resp.OrderID)
		assert.Equal(t, int64(49900), resp.Amount)
		assert.Equal(t, "INR", resp.Currency)
		assert.NotEqual(t, uuid.Nil, resp.PaymentID)
		orders.AssertExpectations(t)
		paymentRepo.AssertExpectations(t)
	})

	t.Run("異常系: 金額が0以下", func(t *testing.T) {
		orders := new(mocks.OrderCreator)

		svc := NewPaymentService(setupTestDB(), new(repomocks.PaymentRepository), new(repomocks.UserRepository), orders, new(mocks.Mailer), paymentTestConfig())

		resp, err := svc.CreateOrder(ctx, userID, &model.CreateOrderRequest{Amount: 0})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, resp)
		orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: Razorpay側の注文作成が失敗", func(t *testing.T) {
		paymentRepo := new(repomocks.PaymentRepository)
		orders := new(mocks.OrderCreator)

		orders.On("CreateOrder", ctx, int64(49900), "INR", mock.AnythingOfType("string")).
			Return("", assert.AnError).Once()

		svc := NewPaymentService(setupTestDB(), paymentRepo, new(repomocks.UserRepository), orders, new(mocks.Mailer), paymentTestConfig())

		resp, err := svc.CreateOrder(ctx, userID, &model.CreateOrderRequest{Amount: 499.0})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrProviderFailed)
		assert.Nil(t, resp)
		paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_paymentService_VerifyPayment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	orderID := "order_MkXYZ123"
	razorpayPaymentID := "pay_ABCdef456"

	validReq := func() *model.VerifyPaymentRequest {
		return &model.VerifyPaymentRequest{
			RazorpayOrderID:   orderID,
			RazorpayPaymentID: razorpayPaymentID,
			RazorpaySignature: signPayload([]byte(orderID+"|"+razorpayPaymentID), testKeySecret),
		}
	}

	t.Run("正常系: 署名検証後に決済確定とプレミアム付与", func(t *testing.T) {
		paymentRepo := new(repomocks.PaymentRepository)
		userRepo := new(repomocks.UserRepository)
		mailer := new(mocks.Mailer)

		payment := &model.Payment{PaymentID: uuid.New(), UserID: userID, RazorpayOrderID: orderID, Status: model.PaymentStatusPending}
		paymentRepo.On("FindByOrderID", ctx, mock.AnythingOfType("*gorm.DB"), orderID).
			Return(payment, nil).Once()
		paymentRepo.On("MarkSuccessful", ctx, mock.AnythingOfType("*gorm.DB"), orderID, razorpayPaymentID, mock.AnythingOfType("string")).
			Return(nil).Once()
		userRepo.On("SetPremium", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) {
				expiresAt := args.Get(3).(time.Time)
				assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), expiresAt, time.Minute)
			}).
			Return(nil).Once()
		exp := time.Now().AddDate(0, 0, 30)
		upgraded := &model.User{UserID: userID, Name: "testuser", Email: "test@example.com", IsPremium: true, PremiumExpiresAt: &exp}
		userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(upgraded, nil).Once()
		mailer.On("Send", ctx, upgraded.Email, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return(nil).Once()

		svc := NewPaymentService(setupTestDB(), paymentRepo, userRepo, new(mocks.OrderCreator), mailer, paymentTestConfig())

		resp, err := svc.VerifyPayment(ctx, userID, validReq())

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.True(t, resp.IsPremium)
		paymentRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
		mailer.AssertExpectations(t)
	})

	t.Run("異常系: 署名が不正ならDBに触らない", func(t *testing.T) {
		paymentRepo := new(repomocks.PaymentRepository)
		userRepo := new(repomocks.UserRepository)

		req := validReq()
		req.RazorpaySignature = "deadbeef"

		svc := NewPaymentService(setupTestDB(), paymentRepo, userRepo, new(mocks.OrderCreator), new(mocks.Mailer), paymentTestConfig())

		resp, err := svc.VerifyPayment(ctx, userID, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrPaymentInvalid)
		assert.Nil(t, resp)
		paymentRepo.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "SetPremium", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 他人の決済は確定できない", func(t *testing.T) {
		paymentRepo := new(repomocks.PaymentRepository)
		userRepo := new(repomocks.UserRepository)

		other := &model.Payment{PaymentID: uuid.New(), UserID: uuid.New(), RazorpayOrderID: orderID, Status: model.PaymentStatusPending}
		paymentRepo.On("FindByOrderID", ctx, mock.AnythingOfType("*gorm.DB"), orderID).
			Return(other, nil).Once()

		svc := NewPaymentService(setupTestDB(), paymentRepo, userRepo, new(mocks.OrderCreator), new(mocks.Mailer), paymentTestConfig())

		resp, err := svc.VerifyPayment(ctx, userID, validReq())

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, resp)
		paymentRepo.AssertNotCalled(t, "MarkSuccessful", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 決済レコードが存在しない", func(t *testing.T) {
		paymentRepo := new(repomocks.PaymentRepository)

		paymentRepo.On("FindByOrderID", ctx, mock.AnythingOfType("*gorm.DB"), orderID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewPaymentService(setupTestDB(), paymentRepo, new(repomocks.UserRepository), new(mocks.OrderCreator), new(mocks.Mailer), paymentTestConfig())

		resp, err := svc.VerifyPayment(ctx, userID, validReq())

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, resp)
	})
}

func Test_paymentService_HandleWebhook(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	orderID := "order_MkXYZ123"
	razorpayPaymentID := "pay_ABCdef456"

	capturedBody := func(event string) []byte {
		return []byte(fmt.Sprintf(`{"event":%q,"payload":{"payment":{"entity":{"id":%q,"order_id":%q}}}}`, event, razorpayPaymentID, orderID))
	}

	t.Run("正常系: payment.capturedで決済確定とプレミアム付与", func(t *testing.T) {
		paymentRepo := new(repomocks.PaymentRepository)
		userRepo := new(repomocks.UserRepository)

		body := capturedBody("payment.captured")
		signature := signPayload(body, testWebhookSecret)

		payment := &model.Payment{PaymentID: uuid.New(), UserID: userID, RazorpayOrderID: orderID, Status: model.PaymentStatusPending}
		paymentRepo.On("FindByOrderID", ctx, mock.AnythingOfType("*gorm.DB"), orderID).
			Return(payment, nil).Once()
		paymentRepo.On("MarkSuccessful", ctx, mock.AnythingOfType("*gorm.DB"), orderID, razorpayPaymentID, signature).
			Return(nil).Once()
		userRepo.On("SetPremium", ctx, mock.AnythingOfType("*gorm.DB"), userID, mock.AnythingOfType("time.Time")).
			Return(nil).Once()

		svc := NewPaymentService(setupTestDB(), paymentRepo, userRepo, new(mocks.OrderCreator), new(mocks.Mailer), paymentTestConfig())

		err := svc.HandleWebhook(ctx, body, signature)

		require.NoError(t, err)
		paymentRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("正常系: 確定済み決済への再通知は無視する", func(t *testing.T) {
		paymentRepo := new(repomocks.PaymentRepository)
		userRepo := new(repomocks.UserRepository)

		body := capturedBody("payment.captured")
		signature := signPayload(body, testWebhookSecret)

		payment := &model.Payment{PaymentID: uuid.New(), UserID: userID, RazorpayOrderID: orderID, Status: model.PaymentStatusSuccessful}
		paymentRepo.On("FindByOrderID", ctx, mock.AnythingOfType("*gorm.DB"), orderID).
			Return(payment, nil).Once()

		svc := NewPaymentService(setupTestDB(), paymentRepo, userRepo, new(mocks.OrderCreator), new(mocks.Mailer), paymentTestConfig())

		err := svc.HandleWebhook(ctx, body, signature)

		require.NoError(t, err)
		paymentRepo.AssertNotCalled(t, "MarkSuccessful", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "SetPremium", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: 対象外のイベントは何もしない", func(t *testing.T) {
		paymentRepo := new(repomocks.PaymentRepository)

		body := capturedBody("payment.failed")
		signature := signPayload(body, testWebhookSecret)

		svc := NewPaymentService(setupTestDB(), paymentRepo, new(repomocks.UserRepository), new(mocks.OrderCreator), new(mocks.Mailer), paymentTestConfig())

		err := svc.HandleWebhook(ctx, body, signature)

		require.NoError(t, err)
		paymentRepo.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 署名が不正", func(t *testing.T) {
		paymentRepo := new(repomocks.PaymentRepository)

		body := capturedBody("payment.captured")

		svc := NewPaymentService(setupTestDB(), paymentRepo, new(repomocks.UserRepository), new(mocks.OrderCreator), new(mocks.Mailer), paymentTestConfig())

		err := svc.HandleWebhook(ctx, body, "deadbeef")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrPaymentInvalid)
		paymentRepo.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: order_idのないペイロード", func(t *testing.T) {
		body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_x"}}}}`)
		signature := signPayload(body, testWebhookSecret)

		svc := NewPaymentService(setupTestDB(), new(repomocks.PaymentRepository), new(repomocks.UserRepository), new(mocks.OrderCreator), new(mocks.Mailer), paymentTestConfig())

		err := svc.HandleWebhook(ctx, body, signature)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}
