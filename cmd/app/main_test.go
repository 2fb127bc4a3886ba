package main

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type syncCountingCore struct {
	zapcore.Core
	syncs int
}

func (c *syncCountingCore) Sync() error {
	c.syncs++
	return c.Core.Sync()
}

func TestExitCodeFlushesLogger(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantLogs int
	}{
		{name: "clean stop", wantCode: 0},
		{name: "failure", err: errors.New("listen tcp: address in use"), wantCode: 1, wantLogs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, logs := observer.New(zapcore.InfoLevel)
			core := &syncCountingCore{Core: obs}

			if got := exitCode(zap.New(core), tt.err); got != tt.wantCode {
				t.Fatalf("exitCode = %d, want %d", got, tt.wantCode)
			}
			if core.syncs != 1 {
				t.Fatalf("logger synced %d times, want 1", core.syncs)
			}
			if logs.Len() != tt.wantLogs {
				t.Fatalf("logged %d entries, want %d", logs.Len(), tt.wantLogs)
			}
			if tt.wantLogs > 0 && logs.All()[0].Level != zapcore.ErrorLevel {
				t.Fatalf("level = %v, want error", logs.All()[0].Level)
			}
		})
	}
}
