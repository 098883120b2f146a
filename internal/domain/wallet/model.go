package wallet

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionTypeAdd    = "ADD"
	TransactionTypeSpend  = "SPEND"
	TransactionTypeRefund = "REFUND"
)

// CreditWallet stores a user's itinerary-credit balance. Credits arrive from
// pack purchases and monthly plan allowances; actions on the itinerary
// spend them per the credit scale.
type CreditWallet struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID  int64     `json:"user_id" gorm:"not null;uniqueIndex"`
	Balance int64     `json:"balance" gorm:"not null;default:0"`
}

func (CreditWallet) TableName() string {
	return "credit_wallets"
}

func (w *CreditWallet) BeforeCreate(_ *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// CreditTransaction records balance operations.
type CreditTransaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	WalletID  uuid.UUID `json:"wallet_id" gorm:"type:uuid;not null;index"`
	Amount    int64     `json:"amount" gorm:"not null"`
	Type      string    `json:"type" gorm:"type:varchar(16);not null;index;check:type IN ('ADD','SPEND','REFUND')"`
	Reason    string    `json:"reason,omitempty" gorm:"type:varchar(128)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (CreditTransaction) TableName() string {
	return "credit_transactions"
}

func (t *CreditTransaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
