// internal/model/payment.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus は決済の状態を表します
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusSuccessful PaymentStatus = "successful"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// Payment はRazorpay経由のプレミアム購入決済を表します
type Payment struct {
	PaymentID         uuid.UUID     `gorm:"type:uuid;primaryKey" json:"payment_id"`
	UserID            uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount            int64         `gorm:"not null" json:"amount"` // paise単位
	Currency          string        `gorm:"type:varchar(10);not null;default:'INR'" json:"currency"`
	RazorpayOrderID   string        `gorm:"uniqueIndex;not null" json:"razorpay_order_id"`
	RazorpayPaymentID string        `json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string        `json:"-"`
	Status            PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

// CreateOrderRequest は注文作成APIのリクエストDTO。金額はルピー単位。
type CreateOrderRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CreateOrderResponse は注文作成APIのレスポンスDTO
type CreateOrderResponse struct {
	OrderID   string    `json:"order_id"`
	Amount    int64     `json:"amount"` // paise単位
	Currency  string    `json:"currency"`
	PaymentID uuid.UUID `json:"payment_id"`
}

// VerifyPaymentRequest は決済検証APIのリクエストDTO
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}
