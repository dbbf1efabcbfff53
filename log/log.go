package log

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/astaxie/beego/logs"

	"github.com/Litecoindark/LTCD/conf"
	"github.com/Litecoindark/LTCD/errcode"
)

var (
	mapModule = make(map[string]struct{})
	moduleMu  sync.RWMutex
)

type logConfig struct {
	FileName string `json:"filename"`
	Level    int    `json:"level"`
	Daily    bool   `json:"daily"`
	MaxDays  int64  `json:"maxdays,omitempty"`
}

func init() {
	logs.EnableFuncCallDepth(true)
	logs.SetLogFuncCallDepth(4)
}

// Init installs the file adapter with a raw beego json configuration.
func Init(configuration string) {
	if err := logs.SetLogger(logs.AdapterFile, configuration); err != nil {
		fmt.Fprintf(os.Stderr, "init file logger failed: %v\n", err)
	}
}

// InitFromConf configures logging from the node configuration: a daily
// rotated file under <datadir>/logs, or the console when Log.Console is set.
func InitFromConf(cfg *conf.Configuration) error {
	if !IsValidLevel(cfg.Log.Level) {
		return errcode.New(errcode.ErrConfLogLevel)
	}
	level := GetLevel(cfg.Log.Level)
	SetModules(cfg.Log.Module)

	if cfg.Log.Console {
		logs.Reset()
		logs.SetLevel(level)
		return logs.SetLogger(logs.AdapterConsole)
	}

	dir := filepath.Join(cfg.DataDir, "logs")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}
	configuration, err := json.Marshal(logConfig{
		FileName: filepath.Join(dir, cfg.Log.FileName),
		Level:    level,
		Daily:    true,
		MaxDays:  7,
	})
	if err != nil {
		return err
	}
	logs.Reset()
	logs.SetLevel(level)
	return logs.SetLogger(logs.AdapterFile, string(configuration))
}

// SetModules replaces the set of modules Print lets through.
func SetModules(modules []string) {
	moduleMu.Lock()
	defer moduleMu.Unlock()
	mapModule = make(map[string]struct{}, len(modules))
	for _, module := range modules {
		mapModule[module] = struct{}{}
	}
}

func IsIncludeModule(module string) bool {
	moduleMu.RLock()
	defer moduleMu.RUnlock()
	_, ok := mapModule[module]
	return ok
}

// Print writes the message only when module is enabled in the configuration.
func Print(module string, level string, format string, reason ...interface{}) {
	if !IsIncludeModule(module) {
		return
	}

	switch strings.ToLower(level) {
	case "emergency":
		logs.Emergency(format, reason...)
	case "alert":
		logs.Alert(format, reason...)
	case "critical":
		logs.Critical(format, reason...)
	case "error":
		logs.Error(format, reason...)
	case "warn", "warning":
		logs.Warn(format, reason...)
	case "notice":
		logs.Notice(format, reason...)
	case "info", "informational":
		logs.Info(format, reason...)
	case "trace":
		logs.Trace(format, reason...)
	default:
		logs.Debug(format, reason...)
	}
}

func Emergency(format string, reason ...interface{}) {
	logs.Emergency(format, reason...)
}

func Alert(format string, reason ...interface{}) {
	logs.Alert(format, reason...)
}

func Critical(format string, reason ...interface{}) {
	logs.Critical(format, reason...)
}

func Error(format string, reason ...interface{}) {
	logs.Error(format, reason...)
}

func Warn(format string, reason ...interface{}) {
	logs.Warn(format, reason...)
}

func Notice(format string, reason ...interface{}) {
	logs.Notice(format, reason...)
}

func Info(format string, reason ...interface{}) {
	logs.Info(format, reason...)
}

func Debug(format string, reason ...interface{}) {
	logs.Debug(format, reason...)
}

func Trace(format string, reason ...interface{}) {
	logs.Trace(format, reason...)
}
