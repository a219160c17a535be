//go:generate mockery --name PaymentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_path_gen/internal/middleware"
	"go_5_path_gen/internal/model"

	"gorm.io/gorm"
)

// PaymentRepository は決済レコードの永続化インターフェースです。
type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *model.Payment) error
	FindByOrderID(ctx context.Context, db *gorm.DB, razorpayOrderID string) (*model.Payment, error)
	MarkSuccessful(ctx context.Context, tx *gorm.DB, razorpayOrderID, razorpayPaymentID, signature string) error
}

type gormPaymentRepository struct{}

func NewGormPaymentRepository() PaymentRepository {
	return &gormPaymentRepository{}
}

func (r *gormPaymentRepository) Create(ctx context.Context, tx *gorm.DB, payment *model.Payment) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(payment)
	if result.Error != nil {
		logger.Error("Error creating payment in DB",
			"error", result.Error,
			"user_id", payment.UserID.String(),
			"razorpay_order_id", payment.RazorpayOrderID,
		)
		return fmt.Errorf("gormPaymentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormPaymentRepository) FindByOrderID(ctx context.Context, db *gorm.DB, razorpayOrderID string) (*model.Payment, error) {
	logger := middleware.GetLogger(ctx)
	var payment model.Payment
	result := db.WithContext(ctx).Where("razorpay_order_id = ?", razorpayOrderID).First(&payment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding payment by order ID in DB",
			"error", result.Error,
			"razorpay_order_id", razorpayOrderID,
		)
		return nil, fmt.Errorf("gormPaymentRepository.FindByOrderID: %w", result.Error)
	}
	return &payment, nil
}

func (r *gormPaymentRepository) MarkSuccessful(ctx context.Context, tx *gorm.DB, razorpayOrderID, razorpayPaymentID, signature string) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Payment{}).
		Where("razorpay_order_id = ?", razorpayOrderID).
		Updates(map[string]interface{}{
			"status":              model.PaymentStatusSuccessful,
			"razorpay_payment_id": razorpayPaymentID,
			"razorpay_signature":  signature,
		})
	if result.Error != nil {
		logger.Error("Error marking payment successful in DB",
			"error", result.Error,
			"razorpay_order_id", razorpayOrderID,
		)
		return fmt.Errorf("gormPaymentRepository.MarkSuccessful: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
