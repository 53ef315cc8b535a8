// Package mocks provides test doubles for the database package.
package mocks

import (
	"context"
	"testing"
)

// MockTxManager is a TxManager test double that runs the callback without a
// real transaction. Use FailWith to simulate a transaction begin failure.
type MockTxManager struct {
	t        *testing.T
	beginErr error
}

// NewMockTxManager creates a MockTxManager bound to the given test.
func NewMockTxManager(t *testing.T) *MockTxManager {
	t.Helper()
	return &MockTxManager{t: t}
}

// FailWith makes subsequent WithTx calls fail immediately with err.
func (m *MockTxManager) FailWith(err error) *MockTxManager {
	m.beginErr = err
	return m
}

// WithTx runs fn with the caller's context, propagating its error.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	return fn(ctx)
}
