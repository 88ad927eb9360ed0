package dto

import (
	"time"

	"sanhaja/internal/domain/agency"
)

// CreateAgencyRequest for POST /agencies.
type CreateAgencyRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// AgencyResponse contains agency fields.
type AgencyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromAgency creates AgencyResponse from agency.Agency.
func FromAgency(a *agency.Agency) AgencyResponse {
	return AgencyResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		City:      a.City,
		Address:   a.Address,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
	}
}

// FromAgencies maps an agency list.
func FromAgencies(list []*agency.Agency) []AgencyResponse {
	out := make([]AgencyResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAgency(a))
	}
	return out
}
