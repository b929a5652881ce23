package utilities

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"serenity-backend/internal/config"
)

var (
	infoLog    = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	warnLog    = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime)
	errorLog   = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
	debugLog   = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime)
	logMutex   sync.Mutex
	logClosers []io.Closer
)

// SetupLogging sends each level to its own rotating file under cfg.Dir,
// mirrored to stdout (stderr for errors).
func SetupLogging(cfg config.LoggingConfig) error {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	logMutex.Lock()
	defer logMutex.Unlock()

	infoFile := rotatingFile(cfg, "info.log")
	warnFile := rotatingFile(cfg, "warn.log")
	errorFile := rotatingFile(cfg, "error.log")
	logClosers = append(logClosers, infoFile, warnFile, errorFile)

	infoWriter := io.MultiWriter(os.Stdout, infoFile)
	warnWriter := io.MultiWriter(os.Stdout, warnFile)
	errorWriter := io.MultiWriter(os.Stderr, errorFile)

	infoLog = log.New(infoWriter, "INFO: ", log.Ldate|log.Ltime)
	warnLog = log.New(warnWriter, "WARNING: ", log.Ldate|log.Ltime)
	errorLog = log.New(errorWriter, "ERROR: ", log.Ldate|log.Ltime)
	if cfg.Debug {
		debugFile := rotatingFile(cfg, "debug.log")
		logClosers = append(logClosers, debugFile)
		debugLog = log.New(io.MultiWriter(os.Stdout, debugFile), "DEBUG: ", log.Ldate|log.Ltime)
	}

	// Override Go's default log
	log.SetOutput(infoWriter)
	return nil
}

// SetOutput points every level at w. Used by tests.
func SetOutput(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	infoLog = log.New(w, "INFO: ", 0)
	warnLog = log.New(w, "WARNING: ", 0)
	errorLog = log.New(w, "ERROR: ", 0)
	debugLog = log.New(w, "DEBUG: ", 0)
}

// CloseLogs flushes and closes the rotating files.
func CloseLogs() {
	logMutex.Lock()
	defer logMutex.Unlock()
	for _, c := range logClosers {
		_ = c.Close()
	}
	logClosers = nil
}

func rotatingFile(cfg config.LoggingConfig, name string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, name),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
}

func getCallerInfo() string {
	pc, _, _, ok := runtime.Caller(3)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

func Log(level string, format string, v ...interface{}) {
	logMutex.Lock()
	defer logMutex.Unlock()

	message := fmt.Sprintf(format, v...)
	logEntry := fmt.Sprintf("[%s] %s", getCallerInfo(), message)

	switch level {
	case "INFO":
		infoLog.Println(logEntry)
	case "WARNING":
		warnLog.Println(logEntry)
	case "ERROR":
		errorLog.Println(logEntry)
	case "DEBUG":
		debugLog.Println(logEntry)
	default:
		infoLog.Println(logEntry)
	}
}

func Info(format string, v ...interface{}) {
	Log("INFO", format, v...)
}
func Warn(format string, v ...interface{}) {
	Log("WARNING", format, v...)
}
func Error(format string, v ...interface{}) {
	Log("ERROR", format, v...)
}
func Debug(format string, v ...interface{}) {
	Log("DEBUG", format, v...)
}
