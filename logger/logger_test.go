package logger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestFields(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{name: "string", field: String("path", "/openapi.json"), key: "path", value: "/openapi.json"},
		{name: "int", field: Int("count", 3), key: "count", value: 3},
		{name: "bool", field: Bool("ok", true), key: "ok", value: true},
		{name: "duration", field: Duration("elapsed", time.Second), key: "elapsed", value: time.Second},
		{name: "any", field: Any("payload", []int{1, 2}), key: "payload", value: []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.field.Key())
			assert.Equal(t, tt.value, tt.field.Value())
			assert.Equal(t, tt.key, tt.field.ZapField().Key)
		})
	}
}

func TestErrorField(t *testing.T) {
	err := errors.New("render failed")
	f := Error(err)

	assert.Equal(t, "error", f.Key())
	assert.Equal(t, err, f.Value())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARNING"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestNoopLoggerIsSafe(t *testing.T) {
	log := NewNoop()

	assert.NotPanics(t, func() {
		log.Debug("debug", String("k", "v"))
		log.Info("info")
		log.Warn("warn", Int("n", 1))
		log.Error("error", Error(errors.New("boom")))
		log.With(Bool("flag", true)).Named("sub").Info("chained")
	})
	assert.NoError(t, log.Sync())
}

func TestNewSelectsEncoder(t *testing.T) {
	assert.NotNil(t, New(Config{Level: "debug", Format: "json"}))
	assert.NotNil(t, New(Config{Level: "warn"}))
	assert.NotNil(t, NewDevelopment())
}
