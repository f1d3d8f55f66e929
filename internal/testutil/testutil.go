package testutil

import "go.uber.org/zap"

// NewTestLogger returns a logger safe for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}
