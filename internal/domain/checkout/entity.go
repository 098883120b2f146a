package checkout

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPaid   OrderStatus = "paid"
	OrderStatusFailed OrderStatus = "failed"
)

// Order is the record of a checkout attempt that reached the gateway.
type Order struct {
	ID           string      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID       int64       `gorm:"column:user_id;index;not null" json:"user_id"`
	OfferID      string      `gorm:"column:offer_id;not null" json:"offer_id"`
	OfferType    string      `gorm:"column:offer_type;not null" json:"offer_type"`
	BillingCycle string      `gorm:"column:billing_cycle" json:"billing_cycle,omitempty"`
	Amount       float64     `gorm:"column:amount;not null" json:"amount"`
	Credits      int         `gorm:"column:credits" json:"credits,omitempty"`
	PromoCode    string      `gorm:"column:promo_code" json:"promo_code,omitempty"`
	Status       OrderStatus `gorm:"column:status;not null" json:"status"`
	ReceiptID    string      `gorm:"column:receipt_id" json:"receipt_id,omitempty"`
	CreatedAt    time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}
