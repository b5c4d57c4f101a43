package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	writer io.Writer

	Name  string
	Level LogLevel

	TimeFormat string
	NoColor    bool
	JSON       bool
}

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Logger    string `json:"logger,omitempty"`
	Message   string `json:"message"`
}

func NewLogger(name string, level LogLevel) *Logger {
	return &Logger{
		writer: os.Stderr,

		Name:  name,
		Level: level,

		TimeFormat: "2006-01-02 15:04:05",
	}
}

// WithFile mirrors log output into a rotated file next to the terminal
// stream.
func (l *Logger) WithFile(file string) *Logger {
	rotated := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    128,
		MaxBackups: 5,
		MaxAge:     16,
	}

	l.writer = io.MultiWriter(os.Stderr, rotated)
	return l
}

// Named returns a child logger sharing the writer under a derived name.
func (l *Logger) Named(name string) *Logger {
	child := *l
	child.Name = fmt.Sprintf("%s/%s", l.Name, name)

	return &child
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if level < l.Level {
		return
	}

	timestamp := time.Now().Format(l.TimeFormat)
	formatted := fmt.Sprintf(msg, args...)

	if l.JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Logger:    l.Name,
			Message:   formatted,
		}

		encoded, _ := json.Marshal(entry)
		fmt.Fprintf(l.writer, "%s\n", encoded)
	} else {
		prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
		if l.Name != "" {
			prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
		}

		if l.NoColor {
			fmt.Fprintf(l.writer, "%s %s\n", prefix, formatted)
		} else {
			fmt.Fprintf(l.writer, "%s%s %s%s\n", color(level), prefix, formatted, colorReset)
		}
	}

	if level == Fatal {
		os.Exit(1)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

func (l *Logger) Fatal(msg string, args ...any) {
	l.log(Fatal, msg, args...)
}
