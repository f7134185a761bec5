package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies the cloud vendor behind a Provider.
type ProviderType string

const (
	ProviderTypeAWS        ProviderType = "aws"
	ProviderTypeAzure      ProviderType = "azure"
	ProviderTypeGCP        ProviderType = "gcp"
	ProviderTypeKubernetes ProviderType = "kubernetes"
)

// ProviderTypes lists every provider type the registry knows about.
// Whether a type can be checked depends on the testers registered at startup.
var ProviderTypes = []ProviderType{
	ProviderTypeAWS,
	ProviderTypeAzure,
	ProviderTypeGCP,
	ProviderTypeKubernetes,
}

// IsValid reports whether t is one of the known provider types.
func (t ProviderType) IsValid() bool {
	for _, known := range ProviderTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseProviderType reports whether s names a known type, ignoring case and
// surrounding space. Unknown values come back trimmed but otherwise untouched.
func ParseProviderType(s string) (ProviderType, bool) {
	trimmed := strings.TrimSpace(s)
	if t := ProviderType(strings.ToLower(trimmed)); t.IsValid() {
		return t, true
	}
	return ProviderType(trimmed), false
}

func (t ProviderType) String() string {
	return string(t)
}

// Provider is a stored cloud credential entry for one account, subscription,
// project or cluster.
type Provider struct {
	ID       uuid.UUID    `json:"id"`
	TenantID uuid.UUID    `json:"tenant_id"`
	Provider ProviderType `json:"provider"`
	UID      string       `json:"uid"` // Vendor account/subscription/project id or kube context
	Alias    string       `json:"alias"`

	Connected               bool       `json:"connected"`
	ConnectionLastCheckedAt *time.Time `json:"connection_last_checked_at"`
	ConnectionError         *string    `json:"connection_error"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ConnectionStatus returns the provider's current connection fields.
func (p *Provider) ConnectionStatus() ConnectionStatus {
	s := ConnectionStatus{
		Connected: p.Connected,
		Error:     p.ConnectionError,
	}
	if p.ConnectionLastCheckedAt != nil {
		s.LastCheckedAt = *p.ConnectionLastCheckedAt
	}
	return s
}

// WithConnectionStatus returns a copy of p carrying the given connection
// status. p itself is left untouched.
func (p Provider) WithConnectionStatus(s ConnectionStatus) *Provider {
	checkedAt := s.LastCheckedAt
	p.Connected = s.Connected
	p.ConnectionLastCheckedAt = &checkedAt
	p.ConnectionError = nil
	if s.Error != nil {
		msg := *s.Error
		p.ConnectionError = &msg
	}
	return &p
}

// NeverChecked reports whether no connection check has completed yet.
func (p *Provider) NeverChecked() bool {
	return p.ConnectionLastCheckedAt == nil
}
