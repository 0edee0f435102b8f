package log

import "go.uber.org/zap"

var Logger *zap.Logger

// EnsureLogger installs a development logger unless one is already set.
func EnsureLogger() {
	if Logger != nil {
		return
	}

	Logger, _ = zap.NewDevelopment()
}

// Setup replaces the global logger.
func Setup(development bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	Logger = l
	return nil
}

func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
