package logging

import "go.uber.org/zap"

// New returns a console logger in development and a JSON production
// logger everywhere else.
func New(env string) *zap.Logger {
	if env == "development" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}
		return logger
	}
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
