package logger

import (
	"go.uber.org/zap"
)

type LoggerAdapter struct {
	logger *zap.Logger
}

func NewLoggerAdapter(env string) *LoggerAdapter {
	var zapLogger *zap.Logger
	var err error
	if env == "production" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		zapLogger = zap.NewNop()
	}
	return &LoggerAdapter{logger: zapLogger}
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, toZapFields(fields)...)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, toZapFields(fields)...)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, toZapFields(fields)...)
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zapFields
}
