package logger

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

const maxBufferSize = 1000

const (
	levelInfo    = "[INFO]"
	levelError   = "[ERROR]"
	levelHTTP    = "[HTTP]"
	levelSession = "[SESSION]"
	levelFile    = "[FILE]"
)

var (
	instance *Logger
	once     sync.Once
	initMu   sync.Mutex
)

type LogEntry struct {
	Timestamp time.Time
	Message   string
}

type Logger struct {
	file   *os.File
	logger *log.Logger
	mu     sync.Mutex
	buffer []LogEntry
}

// Init opens logPath for appending. An empty path keeps entries in memory
// only, which is what the logs view reads from anyway.
func Init(logPath string) error {
	var initErr error
	once.Do(func() {
		l := newBufferOnly()
		if logPath != "" {
			file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
			if err != nil {
				initErr = fmt.Errorf("failed to open log file: %w", err)
			} else {
				l.file = file
				l.logger = log.New(file, "", log.LstdFlags)
			}
		}
		initMu.Lock()
		instance = l
		initMu.Unlock()
	})
	return initErr
}

func newBufferOnly() *Logger {
	return &Logger{buffer: make([]LogEntry, 0, maxBufferSize)}
}

func get() *Logger {
	initMu.Lock()
	defer initMu.Unlock()
	if instance == nil {
		instance = newBufferOnly()
	}
	return instance
}

func Close() error {
	l := get()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.logger = nil
	return err
}

func (l *Logger) write(level, message string) {
	line := level + " " + message

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.buffer) >= maxBufferSize {
		l.buffer = l.buffer[1:]
	}
	l.buffer = append(l.buffer, LogEntry{Timestamp: time.Now(), Message: line})

	if l.logger != nil {
		l.logger.Println(line)
	}
}

// GetLogs returns a copy of the buffered entries, oldest first.
func GetLogs() []LogEntry {
	l := get()
	l.mu.Lock()
	defer l.mu.Unlock()

	logs := make([]LogEntry, len(l.buffer))
	copy(logs, l.buffer)
	return logs
}

func Log(message string, args ...interface{}) {
	get().write(levelInfo, fmt.Sprintf(message, args...))
}

func LogError(operation, subject string, err error) {
	get().write(levelError, fmt.Sprintf("%s: %s - %v", operation, subject, err))
}

func LogHTTP(message string, args ...interface{}) {
	get().write(levelHTTP, fmt.Sprintf(message, args...))
}

func LogSession(message string, args ...interface{}) {
	get().write(levelSession, fmt.Sprintf(message, args...))
}

func LogFileOpen(path string) {
	get().write(levelFile, "open "+path)
}

func LogFileWrite(path string) {
	get().write(levelFile, "write "+path)
}
