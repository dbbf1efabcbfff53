package log

import (
	"testing"

	"github.com/astaxie/beego/logs"
)

var level = []string{"emergency", "Alert", "critical", "error", "warn", "info", "debug", "Notice", "trace"}

func TestGetLevel(t *testing.T) {
	for _, levelStr := range level {
		num := GetLevel(levelStr)
		if num < 0 || num > 7 {
			t.Fatalf("get log level failed: %d\n", num)
		}
		if !IsValidLevel(levelStr) {
			t.Errorf("%s should be a valid level", levelStr)
		}
	}

	if num := GetLevel("default"); num != defaultLogLevel {
		t.Errorf("defaultLogLevel set failed: %d\n", num)
	}
	if IsValidLevel("default") {
		t.Errorf("default is not a level name")
	}
	if GetLevel("WARN") != logs.LevelWarning {
		t.Errorf("level names are case insensitive")
	}
}
