package commands

import (
	"go.uber.org/zap"
)

// ZapLogger adapts a zap logger to the client's Logger interface.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger returns a development logger writing to stderr when verbose
// is set, and a no-op logger otherwise.
func NewZapLogger(verbose bool) *ZapLogger {
	if !verbose {
		return &ZapLogger{logger: zap.NewNop()}
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}

	return &ZapLogger{logger: logger}
}

// Debug implements Logger.Debug.
func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, zapFields(fields)...)
}

// Info implements Logger.Info.
func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, zapFields(fields)...)
}

// Warn implements Logger.Warn.
func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, zapFields(fields)...)
}

// Error implements Logger.Error.
func (l *ZapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, zapFields(fields)...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() {
	_ = l.logger.Sync()
}

func zapFields(fields map[string]interface{}) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, key := range sortedKeys(fields) {
		result = append(result, zap.Any(key, fields[key]))
	}

	return result
}
