package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.New(os.Stderr)

// logFile 当前打开的日志文件，重新初始化或 Close 时关闭
var logFile *os.File

// InitLog 初始化全局日志，path 为空时输出到 stderr，stdout 留给命令结果
func InitLog(appName string, logLevel string, path string) error {
	var w io.Writer = os.Stderr
	var f *os.File
	if path != "" {
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		w = f
	}
	if err := Close(); err != nil {
		logger.Warn("关闭旧日志文件失败", "err", err)
	}
	logFile = f

	logger = log.New(w)
	logger.SetPrefix(appName)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	// 显示文件名和行号
	logger.SetReportCaller(true)
	logger.SetCallerOffset(1)
	logger.SetLevel(ParseLevel(logLevel))
	return nil
}

// Close 关闭日志文件，之后输出回到 stderr
func Close() error {
	if logFile == nil {
		return nil
	}
	f := logFile
	logFile = nil
	logger.SetOutput(os.Stderr)
	return f.Close()
}

// ParseLevel 默认为 info 级别
func ParseLevel(logLevel string) log.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// SetLevel 配置热更新时调整级别
func SetLevel(logLevel string) {
	logger.SetLevel(ParseLevel(logLevel))
}

func Fatal(format string, args ...any) {
	if len(args) == 0 {
		logger.Fatal(format)
	} else {
		logger.Fatalf(format, args...)
	}
}

func Info(format string, args ...any) {
	if len(args) == 0 {
		logger.Info(format)
	} else {
		logger.Infof(format, args...)
	}
}

func Warn(format string, args ...any) {
	if len(args) == 0 {
		logger.Warn(format)
	} else {
		logger.Warnf(format, args...)
	}
}

func Error(format string, args ...any) {
	if len(args) == 0 {
		logger.Error(format)
	} else {
		logger.Errorf(format, args...)
	}
}

func Debug(format string, args ...any) {
	if len(args) == 0 {
		logger.Debug(format)
	} else {
		logger.Debugf(format, args...)
	}
}
