package log

import (
	"strings"

	"github.com/astaxie/beego/logs"
)

const defaultLogLevel = logs.LevelDebug

var levelMap = map[string]int{
	"emergency":     logs.LevelEmergency,
	"alert":         logs.LevelAlert,
	"critical":      logs.LevelCritical,
	"error":         logs.LevelError,
	"warning":       logs.LevelWarning,
	"warn":          logs.LevelWarn,
	"notice":        logs.LevelNotice,
	"informational": logs.LevelInformational,
	"info":          logs.LevelInfo,
	"debug":         logs.LevelDebug,
	"trace":         logs.LevelTrace,
}

// GetLevel maps a level name to its beego value, falling back to debug for
// unknown names.
func GetLevel(level string) int {
	ele, ok := levelMap[strings.ToLower(level)]
	if !ok {
		return defaultLogLevel
	}
	return ele
}

func IsValidLevel(level string) bool {
	_, ok := levelMap[strings.ToLower(level)]
	return ok
}
