package logger

import "go.uber.org/zap"

// Log is the global logger. It is no-op until Initialize is called.
var Log = zap.NewNop()

// Initialize builds production logger with given level and replaces Log.
func Initialize(level string) error {
	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	zl, err := loggerCfg.Build()
	if err != nil {
		return err
	}

	Log = zl
	return nil
}
