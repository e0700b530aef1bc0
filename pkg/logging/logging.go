// Package logging configures the application's zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Setup builds the application logger. Debug mode switches to the
// development config with human-readable output; otherwise the
// production JSON config is used. The logger is also installed as the
// zap global.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
