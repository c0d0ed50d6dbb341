package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	}()

	logger := New("test")

	SetLevel(Notice)
	logger.Info("suppressed line")
	logger.Noticef("notice %s", "line")

	out := buf.String()
	if strings.Contains(out, "suppressed line") {
		t.Error("Expected info output to be filtered at notice level")
	}
	if !strings.Contains(out, "notice line") {
		t.Errorf("Expected notice output, got %q", out)
	}

	// Raising verbosity lets info through
	SetLevel(Info)
	logger.Info("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("Expected info output at info level, got %q", buf.String())
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	var first, second bytes.Buffer
	SetSink(&first)
	defer func() {
		SetSink(os.Stderr)
		SetLevel(Notice)
	}()

	SetLevel(Error)
	SetSink(&second)

	logger := New("test")
	logger.Warning("should stay filtered")

	if strings.Contains(second.String(), "should stay filtered") {
		t.Error("Expected verbosity to survive a sink change")
	}
}
