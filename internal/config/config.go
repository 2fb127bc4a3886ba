package config

import (
	"go.uber.org/zap"
)

// NewLogger builds a development logger in debug mode and a production logger otherwise.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
