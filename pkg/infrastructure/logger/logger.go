package logger

import (
	"os"

	"todo-api-backend/config"
	"todo-api-backend/pkg/util/environment"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options of logger
type Options struct {
	Level    string
	Encoding string
	AppEnv   string
}

// OptionsFromConfig reads logger options from the loaded config.
func OptionsFromConfig() Options {
	return Options{
		Level:    config.C.Log.Level,
		Encoding: config.C.Log.Encoding,
		AppEnv:   config.C.AppEnv,
	}
}

// New builds the application logger. Deployed environments log JSON unless
// an encoding is configured, everything else logs to a coloured console.
func New(opts Options) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if l, err := zapcore.ParseLevel(opts.Level); err == nil {
			level = l
		}
	}

	encoding := opts.Encoding
	if encoding == "" {
		encoding = "console"
		if environment.IsProduction(opts.AppEnv) {
			encoding = "json"
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	var encoder zapcore.Encoder
	if encoding == "json" {
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(os.Stdout),
		level,
	)

	return zap.New(core, zap.AddCaller()).Sugar()
}
