package contract

import "go.uber.org/zap"

// NewLogger builds the structured logger of the long-running commands.
// The production environment gets JSON output, everything else the
// human-friendly development encoder.
func NewLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
