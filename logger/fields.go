package logger

import (
	"time"

	"go.uber.org/zap"
)

// field implements Field over a prebuilt zap.Field.
type field struct {
	key   string
	value any
	zf    zap.Field
}

func (f field) Key() string         { return f.key }
func (f field) Value() any          { return f.value }
func (f field) ZapField() zap.Field { return f.zf }

// String creates a string field.
func String(key, value string) Field {
	return field{key: key, value: value, zf: zap.String(key, value)}
}

// Strings creates a string-slice field.
func Strings(key string, values []string) Field {
	return field{key: key, value: values, zf: zap.Strings(key, values)}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return field{key: key, value: value, zf: zap.Int(key, value)}
}

// Int64 creates a 64-bit integer field.
func Int64(key string, value int64) Field {
	return field{key: key, value: value, zf: zap.Int64(key, value)}
}

// Float64 creates a float field.
func Float64(key string, value float64) Field {
	return field{key: key, value: value, zf: zap.Float64(key, value)}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return field{key: key, value: value, zf: zap.Bool(key, value)}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return field{key: key, value: value, zf: zap.Duration(key, value)}
}

// Time creates a time field.
func Time(key string, value time.Time) Field {
	return field{key: key, value: value, zf: zap.Time(key, value)}
}

// Error creates an error field under the standard "error" key.
func Error(err error) Field {
	return field{key: "error", value: err, zf: zap.Error(err)}
}

// Any creates a field with reflection-based encoding.
func Any(key string, value any) Field {
	return field{key: key, value: value, zf: zap.Any(key, value)}
}
