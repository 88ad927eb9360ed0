package dto

import (
	"time"

	"sanhaja/internal/core/types"
	"sanhaja/internal/domain/payment"
)

// CreatePaymentRequest for POST /payments.
type CreatePaymentRequest struct {
	InvoiceID   string      `json:"invoiceId" binding:"required"`
	Method      string      `json:"method" binding:"required"`
	Amount      types.Money `json:"amount"`
	PaymentDate string      `json:"paymentDate" binding:"required"`
}

// PaymentResponse contains payment fields.
type PaymentResponse struct {
	ID          string      `json:"id"`
	PaymentNo   string      `json:"paymentNo"`
	InvoiceID   string      `json:"invoiceId"`
	Method      string      `json:"method"`
	Amount      types.Money `json:"amount"`
	PaymentDate string      `json:"paymentDate"`
	AgencyID    string      `json:"agencyId"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// FromPayment creates PaymentResponse from payment.Payment.
func FromPayment(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID.String(),
		PaymentNo:   p.PaymentNo,
		InvoiceID:   p.InvoiceID.String(),
		Method:      string(p.Method),
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate.Format(DateLayout),
		AgencyID:    p.AgencyID.String(),
		CreatedAt:   p.CreatedAt,
	}
}

// FromPayments maps a payment list.
func FromPayments(list []*payment.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}
