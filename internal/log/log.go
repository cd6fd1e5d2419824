package log

import (
	"go.uber.org/zap"
)

var logger *Logger

// Logger is a general application logger.
type Logger struct {
	sugar *zap.SugaredLogger
}

// With returns a logger with custom fields added to every log entry. The
// arguments are treated as key value pairs by the underlying sugared zap
// logger.
func With(args ...interface{}) *Logger {
	return &Logger{sugar: active().sugar.With(args...)}
}

// WithFields returns a logger with custom structured fields added to the
// 'fields' key in the log entries. The arguments are passed to the underlying
// sugared zap logger. See the zap documentation for details. If an argument is
// a zap.Field it is logged accordingly, otherwise the arguments are treated as
// key value pairs.
//
// For example,
//
//	log.WithFields(
//	  "bucket", "invoices",
//	  zap.String("key", "reports/q1.txt"),
//	).Info("msg")
//
// logs the following fields (some fields omitted)
//
//	{ "message": "msg", "fields": { "bucket": "invoices", "key": "reports/q1.txt" }}
func WithFields(args ...interface{}) *Logger {
	args = append([]interface{}{zap.Namespace("fields")}, args...)
	return &Logger{sugar: active().sugar.With(args...)}
}

// active returns the global logger, initializing it with defaults if Init has
// not been called yet. This keeps package level helpers safe in tests.
func active() *Logger {
	if logger == nil {
		Init(&Configuration{})
	}
	return logger
}

// Error logs a message.
// This is a convinience function for logger.Error().
func Error(args ...interface{}) {
	active().Error(args...)
}

// Errorf logs a templated message.
// This is a convinience function for logger.Errorf().
func Errorf(template string, args ...interface{}) {
	active().Errorf(template, args...)
}

// Info logs a message.
// This is a convinience function for logger.Info().
func Info(args ...interface{}) {
	active().Info(args...)
}

// Infof logs a templated message.
// This is a convinience function for logger.Infof().
func Infof(template string, args ...interface{}) {
	active().Infof(template, args...)
}

// Debug logs a message.
// This is a convinience function for logger.Debug().
func Debug(args ...interface{}) {
	active().Debug(args...)
}

// Debugf logs a templated message.
// This is a convinience function for logger.Debugf().
func Debugf(template string, args ...interface{}) {
	active().Debugf(template, args...)
}

// Error logs a message.
func (l *Logger) Error(args ...interface{}) {
	l.sugar.Error(args...)
}

// Errorf logs a templated message.
func (l *Logger) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}

// Info logs a message.
func (l *Logger) Info(args ...interface{}) {
	l.sugar.Info(args...)
}

// Infof logs a templated message.
func (l *Logger) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

// Debug logs a message.
func (l *Logger) Debug(args ...interface{}) {
	l.sugar.Debug(args...)
}

// Debugf logs a templated message.
func (l *Logger) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}

// WithFields returns a logger with custom structured fields added to the
// 'fields' key in the log entries.
func (l *Logger) WithFields(args ...interface{}) *Logger {
	args = append([]interface{}{zap.Namespace("fields")}, args...)
	return &Logger{sugar: l.sugar.With(args...)}
}
