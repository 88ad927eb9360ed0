package dto

import (
	"time"

	"sanhaja/internal/core/types"
	"sanhaja/internal/domain/invoice"
)

// CreateInvoiceRequest for POST /invoices.
type CreateInvoiceRequest struct {
	ClientID string       `json:"clientId" binding:"required"`
	AmountHT types.Money  `json:"amountHt"`
	TVARate  *types.Money `json:"tvaRate"`
	DueDate  string       `json:"dueDate" binding:"required"`
	AgencyID *string      `json:"agencyId"`
}

// InvoiceResponse contains invoice fields plus the derived amount_ttc.
type InvoiceResponse struct {
	ID        string      `json:"id"`
	InvoiceNo string      `json:"invoiceNo"`
	ClientID  string      `json:"clientId"`
	AgencyID  string      `json:"agencyId"`
	AmountHT  types.Money `json:"amountHt"`
	TVARate   types.Money `json:"tvaRate"`
	AmountTTC types.Money `json:"amountTtc"`
	Status    string      `json:"status"`
	DueDate   string      `json:"dueDate"`
	CreatedAt time.Time   `json:"createdAt"`
}

// FromInvoice creates InvoiceResponse from invoice.Invoice.
func FromInvoice(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        inv.ID.String(),
		InvoiceNo: inv.InvoiceNo,
		ClientID:  inv.ClientID.String(),
		AgencyID:  inv.AgencyID.String(),
		AmountHT:  inv.AmountHT,
		TVARate:   inv.TVARate,
		AmountTTC: inv.AmountTTC(),
		Status:    string(inv.Status),
		DueDate:   inv.DueDate.Format(DateLayout),
		CreatedAt: inv.CreatedAt,
	}
}

// FromInvoices maps an invoice list.
func FromInvoices(list []*invoice.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, FromInvoice(inv))
	}
	return out
}
