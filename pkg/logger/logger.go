package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var (
	levelNames = map[Level]string{
		DEBUG: "DEBUG",
		INFO:  "INFO",
		WARN:  "WARN",
		ERROR: "ERROR",
	}
	levelColors = map[Level]string{
		DEBUG: "\033[36m",
		INFO:  "\033[32m",
		WARN:  "\033[33m",
		ERROR: "\033[31m",
	}
	reset = "\033[0m"
)

type Logger struct {
	mu       sync.Mutex
	level    Level
	out      io.Writer
	useColor bool
}

var (
	std     *Logger
	stdOnce sync.Once
)

func Init(level string, useColor bool) {
	stdOnce.Do(func() {
		std = &Logger{
			level:    parseLevel(level),
			out:      os.Stderr,
			useColor: useColor,
		}
	})
}

// InitWithFile 日志写入文件时关闭颜色，文件打不开则退回 stderr
func InitWithFile(level string, logFile string) {
	stdOnce.Do(func() {
		var out io.Writer = os.Stderr
		useColor := true
		if logFile != "" {
			if file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666); err == nil {
				out = file
				useColor = false
			}
		}
		std = &Logger{
			level:    parseLevel(level),
			out:      out,
			useColor: useColor,
		}
	})
}

func Get() *Logger {
	if std == nil {
		Init("INFO", true)
	}
	return std
}

func SetLevel(level string) {
	l := Get()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = parseLevel(level)
}

func parseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

func Debug(format string, v ...interface{}) {
	Get().log(DEBUG, format, v...)
}

func Info(format string, v ...interface{}) {
	Get().log(INFO, format, v...)
}

func Warn(format string, v ...interface{}) {
	Get().log(WARN, format, v...)
}

func Error(format string, v ...interface{}) {
	Get().log(ERROR, format, v...)
}

func Fatal(format string, v ...interface{}) {
	Get().log(ERROR, format, v...)
	os.Exit(1)
}

func (l *Logger) log(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, v...)
	ts := time.Now().Format("2006/01/02 15:04:05")

	if l.useColor {
		fmt.Fprintf(l.out, "%s %s[%s]%s %s\n", ts, levelColors[level], levelNames[level], reset, msg)
	} else {
		fmt.Fprintf(l.out, "%s [%s] %s\n", ts, levelNames[level], msg)
	}
}
