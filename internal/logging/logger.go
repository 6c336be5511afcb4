// Package logging writes a leveled, size-rotated log file under
// .testforge/logs. The CLI keeps stdout for user-facing output and sends
// diagnostics here.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	DEBUG = iota
	INFO
	WARN
	ERROR
)

var (
	globalLogger *Logger
	once         sync.Once

	defaultLogDir  = ".testforge/logs"
	defaultLogFile = "testforge.log"
	maxLogSize     = int64(10 * 1024 * 1024)
	maxLogAge      = 7 * 24 * time.Hour
)

// Logger is a mutex-guarded file logger with size-based rotation.
type Logger struct {
	mu          sync.Mutex
	file        *os.File
	logger      *log.Logger
	level       int
	logPath     string
	maxSize     int64
	currentSize int64
}

// Initialize sets up the global logger rooted at projectDir. Repeated
// calls are no-ops.
func Initialize(projectDir string) error {
	var initErr error
	once.Do(func() {
		globalLogger = &Logger{level: INFO, maxSize: maxLogSize}
		initErr = globalLogger.open(filepath.Join(projectDir, defaultLogDir))
	})
	return initErr
}

// GetLogger returns the global logger, initializing it against the
// current directory when needed.
func GetLogger() *Logger {
	if globalLogger == nil {
		Initialize(".")
	}
	return globalLogger
}

// ParseLevel maps a config level string to a logger level. Unknown
// strings fall back to INFO.
func ParseLevel(s string) int {
	switch s {
	case "debug":
		return DEBUG
	case "warn":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

func (l *Logger) open(logDir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	l.logPath = filepath.Join(logDir, defaultLogFile)
	return l.openLogFile()
}

func (l *Logger) openLogFile() error {
	file, err := os.OpenFile(l.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if info, err := file.Stat(); err == nil {
		l.currentSize = info.Size()
	}

	l.file = file
	l.logger = log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	return nil
}

func (l *Logger) rotateIfNeeded() error {
	if l.currentSize < l.maxSize {
		return nil
	}

	if l.file != nil {
		l.file.Close()
	}

	timestamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(filepath.Dir(l.logPath), fmt.Sprintf("testforge-%s.log", timestamp))
	if err := os.Rename(l.logPath, rotated); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if err := l.openLogFile(); err != nil {
		return err
	}

	go l.cleanOldLogs()
	return nil
}

func (l *Logger) cleanOldLogs() {
	logDir := filepath.Dir(l.logPath)
	files, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-maxLogAge)
	for _, file := range files {
		if file.IsDir() || file.Name() == defaultLogFile || filepath.Ext(file.Name()) != ".log" {
			continue
		}
		info, err := file.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(logDir, file.Name()))
		}
	}
}

func (l *Logger) write(level int, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logger == nil {
		return
	}

	l.rotateIfNeeded()

	msg := fmt.Sprintf("[%s] %s", levelString(level), fmt.Sprintf(format, v...))
	l.logger.Output(2, msg)
	l.currentSize += int64(len(msg)) + 1
}

func levelString(level int) string {
	switch level {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l *Logger) Debug(format string, v ...interface{}) { l.write(DEBUG, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.write(INFO, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.write(WARN, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.write(ERROR, format, v...) }

// SetLevel sets the minimum level that gets written.
func (l *Logger) SetLevel(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Close closes the underlying file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// GetLogPath returns the current log file path.
func (l *Logger) GetLogPath() string {
	return l.logPath
}

// Package-level convenience functions on the global logger.

func Debug(format string, v ...interface{}) { GetLogger().Debug(format, v...) }
func Info(format string, v ...interface{})  { GetLogger().Info(format, v...) }
func Warn(format string, v ...interface{})  { GetLogger().Warn(format, v...) }
func Error(format string, v ...interface{}) { GetLogger().Error(format, v...) }
