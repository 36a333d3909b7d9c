package logger

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel đọc level từ chuỗi cấu hình, mặc định InfoLevel
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface sử dụng log package
type DefaultLogger struct {
	level Level
}

// NewDefaultLogger tạo một instance mới của DefaultLogger
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
	}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		log.Printf("[INFO] "+format, v...)
	}
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		log.Printf("[ERROR] "+format, v...)
	}
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		log.Printf("[DEBUG] "+format, v...)
	}
}

// ZapLogger implement Logger bằng zap sugared logger
type ZapLogger struct {
	l *zap.SugaredLogger
}

// NewZapLogger tạo logger zap. format "console" dùng cấu hình development,
// các giá trị khác dùng JSON production ghi ra stdout.
func NewZapLogger(level Level, format, serviceName string) (*ZapLogger, error) {
	zapLevel := zapcore.InfoLevel
	switch level {
	case DebugLevel:
		zapLevel = zapcore.DebugLevel
	case ErrorLevel:
		zapLevel = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	if serviceName != "" {
		base = base.With(zap.String("service_name", serviceName))
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		base = base.With(zap.String("hostname", hostname))
	}
	return &ZapLogger{l: base.Sugar()}, nil
}

// NewZapFromLogger bọc một *zap.Logger có sẵn, ví dụ zap.NewNop() trong test
func NewZapFromLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{l: l.Sugar()}
}

func (z *ZapLogger) Info(format string, v ...interface{}) {
	z.l.Infof(format, v...)
}

func (z *ZapLogger) Error(format string, v ...interface{}) {
	z.l.Errorf(format, v...)
}

func (z *ZapLogger) Debug(format string, v ...interface{}) {
	z.l.Debugf(format, v...)
}

// Sync đẩy log còn trong buffer
func (z *ZapLogger) Sync() error {
	return z.l.Sync()
}

// New chọn implementation theo LOG_FORMAT: "plain" dùng log chuẩn, còn lại dùng zap
func New(level, format, serviceName string) Logger {
	lvl := ParseLevel(level)
	if format == "plain" {
		return NewDefaultLogger(lvl)
	}
	z, err := NewZapLogger(lvl, format, serviceName)
	if err != nil {
		log.Printf("Warning: không khởi tạo được zap logger, dùng log chuẩn: %v", err)
		return NewDefaultLogger(lvl)
	}
	return z
}

// Nop trả về logger bỏ qua mọi thứ
func Nop() Logger {
	return NewZapFromLogger(zap.NewNop())
}
