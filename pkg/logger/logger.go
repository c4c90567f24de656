package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

func init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(levelFromEnv())
	var err error
	L, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
}

// levelFromEnv 讀 LOG_LEVEL（debug/info/warn/error），無效值落回 info
func levelFromEnv() zapcore.Level {
	var level zapcore.Level
	if err := level.Set(os.Getenv("LOG_LEVEL")); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// WithComponent 回傳帶有 component 欄位的 logger，供 MQ、handler、service、worker 使用
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}
