// Package logging configures the global zap logger for the gitfeed CLI.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance, set by Setup.
var Logger *zap.Logger

// Setup builds the logger. Debug mode uses the human-readable development
// config; otherwise JSON production output with the app identity attached.
func Setup(debug bool, appName, appVersion string) error {
	var err error
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.InitialFields = map[string]interface{}{
			"appName":    appName,
			"appVersion": appVersion,
		}
	}

	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}
