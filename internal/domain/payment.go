package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue, PaymentStatusCancelled:
		return true
	}
	return false
}

type PaymentCategory string

const (
	PaymentCategoryBills        PaymentCategory = "bills"
	PaymentCategorySubscription PaymentCategory = "subscription"
	PaymentCategoryLoan         PaymentCategory = "loan"
	PaymentCategoryTax          PaymentCategory = "tax"
	PaymentCategoryOther        PaymentCategory = "other"
)

func (c PaymentCategory) IsValid() bool {
	switch c {
	case PaymentCategoryBills, PaymentCategorySubscription, PaymentCategoryLoan, PaymentCategoryTax, PaymentCategoryOther:
		return true
	}
	return false
}

type Payment struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	UserID      uuid.UUID       `db:"user_id" json:"user_id"`
	PaymentName string          `db:"payment_name" json:"payment_name"`
	Description string          `db:"description" json:"description"`
	Amount      float64         `db:"amount" json:"amount"`
	Category    PaymentCategory `db:"category" json:"category"`
	Deadline    time.Time       `db:"deadline" json:"deadline"`
	Status      PaymentStatus   `db:"status" json:"status"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
