package dto

import (
	"time"

	"provider-connection-checker/internal/core/domain"
)

// ProviderConnectionResponse is the last recorded connection state of a provider.
type ProviderConnectionResponse struct {
	ID                      string     `json:"id"`
	Provider                string     `json:"provider"`
	UID                     string     `json:"uid"`
	Alias                   string     `json:"alias,omitempty"`
	Connected               bool       `json:"connected"`
	ConnectionLastCheckedAt *time.Time `json:"connection_last_checked_at"`
	ConnectionError         *string    `json:"connection_error"`
}

// NewProviderConnectionResponse renders a never-checked provider as
// disconnected with null check fields.
func NewProviderConnectionResponse(p *domain.Provider) ProviderConnectionResponse {
	resp := ProviderConnectionResponse{
		ID:       p.ID.String(),
		Provider: p.Provider.String(),
		UID:      p.UID,
		Alias:    p.Alias,
	}
	if p.NeverChecked() {
		return resp
	}

	status := p.ConnectionStatus()
	checkedAt := status.LastCheckedAt
	resp.Connected = status.Connected
	resp.ConnectionLastCheckedAt = &checkedAt
	resp.ConnectionError = status.Error
	return resp
}

// ProviderTypesResponse lists provider types with a registered connection tester.
type ProviderTypesResponse struct {
	Supported []string `json:"supported"`
}

func NewProviderTypesResponse(types []domain.ProviderType) ProviderTypesResponse {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.String())
	}
	return ProviderTypesResponse{Supported: out}
}
