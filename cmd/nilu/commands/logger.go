package commands

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/luftdata/go-nilu/pkg/nilu"
)

// zapLogger adapts a zap.SugaredLogger to the nilu.Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newZapLogger() (nilu.Logger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	return &zapLogger{sugar: logger.Sugar()}, nil
}

func fieldsToArgs(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}

func (l *zapLogger) Debug(msg string, fields map[string]interface{}) {
	l.sugar.Debugw(msg, fieldsToArgs(fields)...)
}

func (l *zapLogger) Info(msg string, fields map[string]interface{}) {
	l.sugar.Infow(msg, fieldsToArgs(fields)...)
}

func (l *zapLogger) Warn(msg string, fields map[string]interface{}) {
	l.sugar.Warnw(msg, fieldsToArgs(fields)...)
}

func (l *zapLogger) Error(msg string, fields map[string]interface{}) {
	l.sugar.Errorw(msg, fieldsToArgs(fields)...)
}
