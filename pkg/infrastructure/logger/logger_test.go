package logger_test

import (
	"testing"
	"todo-api-backend/config"
	"todo-api-backend/pkg/infrastructure/logger"
	"todo-api-backend/testutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() logger.Options
		assert  func(t *testing.T, core zapcore.Core)
	}{
		{
			name: "It should use the level of the test config",
			arrange: func() logger.Options {
				testutil.ReadConfig()
				return logger.OptionsFromConfig()
			},
			assert: func(t *testing.T, core zapcore.Core) {
				assert.Equal(t, "test", config.C.AppEnv)
				assert.False(t, core.Enabled(zapcore.InfoLevel))
				assert.True(t, core.Enabled(zapcore.WarnLevel))
			},
		},
		{
			name: "It should default to info on an unknown level",
			arrange: func() logger.Options {
				return logger.Options{Level: "loud", AppEnv: "production"}
			},
			assert: func(t *testing.T, core zapcore.Core) {
				assert.False(t, core.Enabled(zapcore.DebugLevel))
				assert.True(t, core.Enabled(zapcore.InfoLevel))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := logger.New(tt.arrange())
			tt.assert(t, log.Desugar().Core())
		})
	}
}
