package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "chatroom.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	logFile      *os.File
	logger       *zap.Logger
)

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	l := loggerLocked()
	if l == nil {
		return
	}
	l.Error(err.Error(), zap.Error(err))
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are currently written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled {
		return
	}
	l := loggerLocked()
	if l == nil {
		return
	}
	if payload == nil {
		l.Debug(event)
		return
	}
	l.Debug(event, zap.Any("payload", payload))
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing. Any previously
// opened log file is flushed and closed.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Close flushes buffered entries and releases the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

// loggerLocked opens the log file on first use so runs that never log leave
// no file behind. Callers must hold mu.
func loggerLocked() *zap.Logger {
	if logger != nil {
		return logger
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return nil
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.MessageKey = "event"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	logFile = f
	logger = zap.New(core)
	return logger
}

func closeLocked() {
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
