package contracts

import "time"

// LogLevel is the minimum severity a logger will emit.
type LogLevel int

const (
	DebugLevel LogLevel = iota - 1
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// Field builds a single structured log field. Every method returns a new
// Field so calls can be chained off Logger.Field().
type Field interface {
	Bool(key string, val bool) Field
	Int(key string, val int) Field
	Int64(key string, val int64) Field
	Uint64(key string, val uint64) Field
	Uint8(key string, val uint8) Field
	Float64(key string, val float64) Field
	String(key string, val string) Field
	Time(key string, val time.Time) Field
	Error(key string, val error) Field
}

// Logger is the structured logger used across the module.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	Field() Field

	SetLevel(level LogLevel)
}
