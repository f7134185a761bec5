package service

import (
	"sort"

	"provider-connection-checker/internal/core/domain"
	"provider-connection-checker/internal/core/ports"
)

// TesterTable maps each supported provider type to its connection tester.
// It is built once at startup and only read afterwards.
type TesterTable struct {
	testers map[domain.ProviderType]ports.ConnectionTester
}

// NewTesterTable copies entries into a new table. Nil testers are skipped so a
// vendor can be switched off in wiring without touching the checker.
func NewTesterTable(entries map[domain.ProviderType]ports.ConnectionTester) *TesterTable {
	testers := make(map[domain.ProviderType]ports.ConnectionTester, len(entries))
	for typ, tester := range entries {
		if tester == nil {
			continue
		}
		testers[typ] = tester
	}
	return &TesterTable{testers: testers}
}

// Lookup returns the tester registered for typ.
func (t *TesterTable) Lookup(typ domain.ProviderType) (ports.ConnectionTester, bool) {
	tester, ok := t.testers[typ]
	return tester, ok
}

// Supported returns the registered provider types in sorted order.
func (t *TesterTable) Supported() []domain.ProviderType {
	types := make([]domain.ProviderType, 0, len(t.testers))
	for typ := range t.testers {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
