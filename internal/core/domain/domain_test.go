package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderType_IsValid(t *testing.T) {
	tests := []struct {
		name string
		typ  ProviderType
		want bool
	}{
		{"aws", ProviderTypeAWS, true},
		{"azure", ProviderTypeAzure, true},
		{"gcp", ProviderTypeGCP, true},
		{"kubernetes", ProviderTypeKubernetes, true},
		{"unknown", ProviderType("UNSUPPORTED_PROVIDER"), false},
		{"empty", ProviderType(""), false},
		{"case sensitive", ProviderType("AWS"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.IsValid())
		})
	}
}

func TestParseProviderType(t *testing.T) {
	tests := []struct {
		in    string
		want  ProviderType
		known bool
	}{
		{"aws", ProviderTypeAWS, true},
		{" AWS ", ProviderTypeAWS, true},
		{"Kubernetes", ProviderTypeKubernetes, true},
		{" UNSUPPORTED_PROVIDER", ProviderType("UNSUPPORTED_PROVIDER"), false},
		{"", ProviderType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseProviderType(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestNewConnectionStatus(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	checkedAt := time.Date(2026, 3, 1, 17, 0, 0, 0, loc)

	t.Run("connected", func(t *testing.T) {
		s := NewConnectionStatus(Connected(), checkedAt)
		assert.True(t, s.Connected)
		assert.Nil(t, s.Error)
		assert.Equal(t, time.UTC, s.LastCheckedAt.Location())
		assert.True(t, s.LastCheckedAt.Equal(checkedAt))
	})

	t.Run("disconnected with detail", func(t *testing.T) {
		s := NewConnectionStatus(Disconnected(errors.New("invalid token")), checkedAt)
		assert.False(t, s.Connected)
		require.NotNil(t, s.Error)
		assert.Equal(t, "invalid token", *s.Error)
	})

	t.Run("disconnected without detail", func(t *testing.T) {
		s := NewConnectionStatus(ConnectivityResult{}, checkedAt)
		assert.False(t, s.Connected)
		assert.Nil(t, s.Error)
	})

	t.Run("connected result drops stray error", func(t *testing.T) {
		s := NewConnectionStatus(ConnectivityResult{IsConnected: true, Error: errors.New("ignored")}, checkedAt)
		assert.True(t, s.Connected)
		assert.Nil(t, s.Error)
	})
}

func TestProvider_WithConnectionStatus_DoesNotMutateOriginal(t *testing.T) {
	prevErr := "old failure"
	prevCheck := time.Now().Add(-time.Hour).UTC()
	original := &Provider{
		ID:                      uuid.New(),
		Provider:                ProviderTypeAWS,
		UID:                     "123456789012",
		Connected:               false,
		ConnectionLastCheckedAt: &prevCheck,
		ConnectionError:         &prevErr,
	}

	now := time.Now().UTC()
	updated := original.WithConnectionStatus(NewConnectionStatus(Connected(), now))

	assert.True(t, updated.Connected)
	assert.Nil(t, updated.ConnectionError)
	require.NotNil(t, updated.ConnectionLastCheckedAt)
	assert.True(t, updated.ConnectionLastCheckedAt.Equal(now))
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.UID, updated.UID)

	assert.False(t, original.Connected)
	assert.Equal(t, "old failure", *original.ConnectionError)
	assert.True(t, original.ConnectionLastCheckedAt.Equal(prevCheck))
}

func TestProvider_WithConnectionStatus_CopiesErrorString(t *testing.T) {
	msg := "denied"
	status := ConnectionStatus{Connected: false, LastCheckedAt: time.Now().UTC(), Error: &msg}

	updated := (&Provider{}).WithConnectionStatus(status)
	msg = "changed"

	require.NotNil(t, updated.ConnectionError)
	assert.Equal(t, "denied", *updated.ConnectionError)
}

func TestProvider_ConnectionStatus(t *testing.T) {
	p := &Provider{}
	assert.True(t, p.NeverChecked())
	assert.True(t, p.ConnectionStatus().LastCheckedAt.IsZero())

	now := time.Now().UTC()
	p = p.WithConnectionStatus(ConnectionStatus{Connected: true, LastCheckedAt: now})
	assert.False(t, p.NeverChecked())
	assert.Equal(t, ConnectionStatus{Connected: true, LastCheckedAt: now}, p.ConnectionStatus())
}

func TestCheckResult_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		result CheckResult
		want   string
	}{
		{"connected", CheckResult{Connected: true}, `{"connected":true,"error":null}`},
		{"failed", CheckResult{Connected: false, Error: errors.New("expired credentials")}, `{"connected":false,"error":"expired credentials"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.result)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}
