package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Notice)
	logger.Infof("hidden %d", 1)
	logger.Noticef("shown %d", 2)

	output := buf.String()
	if strings.Contains(output, "hidden 1") {
		t.Errorf("Info message should be filtered at notice level, got %q", output)
	}
	if !strings.Contains(output, "shown 2") || !strings.Contains(output, "[test]") {
		t.Errorf("Expected notice message tagged with module name, got %q", output)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("scanlines remaining: %d", 3)
	if !strings.Contains(buf.String(), "scanlines remaining: 3") {
		t.Errorf("Expected debug message at debug level, got %q", buf.String())
	}
	if !IsEnabled(Debug) {
		t.Error("Debug should be enabled after SetLevel(Debug)")
	}
}

func TestSetSinkPreservesLevel(t *testing.T) {
	var buf bytes.Buffer
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	SetLevel(Warning)
	SetSink(&buf)

	New("test").Notice("dropped")
	if buf.Len() != 0 {
		t.Errorf("Expected notice to be dropped at warning level, got %q", buf.String())
	}
	if IsEnabled(Info) {
		t.Error("Info should be disabled at warning level")
	}
}
