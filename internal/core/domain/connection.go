package domain

import (
	"encoding/json"
	"time"
)

// ConnectivityResult is what a connection tester reports for one probe.
// Ordinary authentication failures are carried in Error, never returned as Go errors.
type ConnectivityResult struct {
	IsConnected bool
	Error       error
}

// Connected returns a successful result.
func Connected() ConnectivityResult {
	return ConnectivityResult{IsConnected: true}
}

// Disconnected returns a failed result carrying the failure detail.
func Disconnected(err error) ConnectivityResult {
	return ConnectivityResult{IsConnected: false, Error: err}
}

// ConnectionStatus is the patch applied to a Provider after a check.
type ConnectionStatus struct {
	Connected     bool
	LastCheckedAt time.Time
	Error         *string
}

// NewConnectionStatus builds the patch for a tester result observed at checkedAt.
// Error detail is only kept for failed results.
func NewConnectionStatus(result ConnectivityResult, checkedAt time.Time) ConnectionStatus {
	s := ConnectionStatus{
		Connected:     result.IsConnected,
		LastCheckedAt: checkedAt.UTC(),
	}
	if !result.IsConnected && result.Error != nil {
		msg := result.Error.Error()
		s.Error = &msg
	}
	return s
}

// CheckResult is the summary returned to whoever invoked a connection check.
type CheckResult struct {
	Connected bool
	Error     error
}

type checkResultJSON struct {
	Connected bool    `json:"connected"`
	Error     *string `json:"error"`
}

// MarshalJSON renders the error as its message, or null.
func (r CheckResult) MarshalJSON() ([]byte, error) {
	out := checkResultJSON{Connected: r.Connected}
	if r.Error != nil {
		msg := r.Error.Error()
		out.Error = &msg
	}
	return json.Marshal(out)
}
