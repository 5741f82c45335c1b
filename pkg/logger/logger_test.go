package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "debug", Format: "json", Output: &buf})

	Log.WithField("tile", "A").Debug("probe")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "probe" || entry["tile"] != "A" {
		t.Errorf("Unexpected entry: %v", entry)
	}
}

func TestConfigure_BadLevelFallsBackToInfo(t *testing.T) {
	Configure(Options{Level: "loud", Output: &bytes.Buffer{}})

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Level = %s, want info", Log.GetLevel())
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")

	opts := OptionsFromEnv()
	if opts.Level != "warn" || opts.Format != "json" {
		t.Errorf("OptionsFromEnv() = %+v", opts)
	}
}
