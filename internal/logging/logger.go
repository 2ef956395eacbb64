package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFile = "ecom-mailer.log"

// NewLogger logs human-readable lines to stdout (below error) and stderr
// (error and above). A non-empty logDir also gets a rotated JSON file.
func NewLogger(logDir string) (*zap.Logger, error) {
	return newLogger(logDir, zapcore.Lock(os.Stdout), zapcore.Lock(os.Stderr))
}

func newLogger(logDir string, stdout, stderr zapcore.WriteSyncer) (*zap.Logger, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	console := zapcore.NewConsoleEncoder(cfg)
	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.InfoLevel && l < zapcore.ErrorLevel
	})
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.ErrorLevel
	})
	cores := []zapcore.Core{
		zapcore.NewCore(console, stdout, low),
		zapcore.NewCore(console, stderr, high),
	}

	if logDir != "" {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, err
		}
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(logDir, logFile),
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, zap.InfoLevel))
	}
	return zap.New(zapcore.NewTee(cores...)), nil
}
