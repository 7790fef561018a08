package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Option for NewZap
type Option struct {
	Develop  bool
	Level    string // debug, info, warn, error
	Filename string // rotate into this file when not empty

	MaxSize    int // megabytes
	MaxBackups int
}

// NewZap builds the process logger. Console output always goes to stderr,
// a rotated copy goes to Filename when set.
func NewZap(opt Option) (*zap.Logger, error) {
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opt.Develop {
		lvl.SetLevel(zapcore.DebugLevel)
	}
	if opt.Level != "" {
		if err := lvl.UnmarshalText([]byte(opt.Level)); err != nil {
			return nil, err
		}
	}

	var encCfg zapcore.EncoderConfig
	var enc zapcore.Encoder
	if opt.Develop {
		encCfg = zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stderr), lvl),
	}
	if opt.Filename != "" {
		maxSize := opt.MaxSize
		if maxSize <= 0 {
			maxSize = 64
		}
		w := &lumberjack.Logger{
			Filename:   opt.Filename,
			MaxSize:    maxSize,
			MaxBackups: opt.MaxBackups,
			Compress:   true,
		}
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(w), lvl))
	}

	zopts := []zap.Option{zap.AddCaller()}
	if opt.Develop {
		zopts = append(zopts, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), zopts...), nil
}
