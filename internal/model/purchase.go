package model

import (
	"fmt"
	"time"
)

// PaymentMethod is how a checkout was settled. The set is closed; parse
// input through ParsePaymentMethod rather than casting.
type PaymentMethod string

const (
	PaymentCard       PaymentMethod = "card"
	PaymentCash       PaymentMethod = "cash"
	PaymentThirdParty PaymentMethod = "thirdparty"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCard, PaymentCash, PaymentThirdParty:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// PurchaseRecord is an immutable archive of one checkout: the cart lines
// as they were at commit time and the total in base currency. History is
// append-only in commit order.
type PurchaseRecord struct {
	ID            string        `json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	Lines         []CartLine    `json:"lines"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	UserID        string        `json:"user_id,omitempty"`
}
