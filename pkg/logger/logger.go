package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process logger. APP_ENV=production switches to the JSON
// production config, anything else uses the development console encoder.
func New() *zap.Logger {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stdout"}

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(log)
	return log
}
