package logger

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}

	var entry struct {
		Level     string `json:"level"`
		Message   string `json:"message"`
		Component string `json:"component"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry.Level != "warn" || entry.Message != "warn 3" || entry.Component != "fhirmeta" {
		t.Errorf("unexpected entry %+v", entry)
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at error level: %s", buf.String())
	}

	l.SetLevel(LevelDebug)
	if l.Level() != LevelDebug {
		t.Errorf("Level() = %v, want DEBUG", l.Level())
	}
	l.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug message missing after SetLevel: %s", buf.String())
	}

	buf.Reset()
	l.SetLevel(LevelNone)
	l.Error("silenced")
	if buf.Len() != 0 {
		t.Errorf("LevelNone should silence everything: %s", buf.String())
	}
}

func TestSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	l := NewConsole(&first, LevelInfo)
	l.Info("one")
	l.SetOutput(&second)
	l.Info("two")

	if !strings.Contains(first.String(), "one") || strings.Contains(first.String(), "two") {
		t.Errorf("first output = %q", first.String())
	}
	if !strings.Contains(second.String(), "two") {
		t.Errorf("second output = %q", second.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"off", LevelNone, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultLogger(t *testing.T) {
	saved := Default()
	defer SetDefault(saved)

	var buf bytes.Buffer
	SetDefault(New(&buf, LevelInfo))
	Info("hello %s", "world")
	Disable()
	Error("gone")

	if !strings.Contains(buf.String(), "hello world") {
		t.Errorf("default logger output = %q", buf.String())
	}
	if strings.Contains(buf.String(), "gone") {
		t.Error("Disable() should silence the default logger")
	}
}

func TestSetDefaultConcurrent(t *testing.T) {
	saved := Default()
	defer SetDefault(saved)

	SetDefault(nil)
	if Default() != saved {
		t.Fatal("SetDefault(nil) should keep the current logger")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetDefault(New(io.Discard, LevelDebug))
		}()
		go func() {
			defer wg.Done()
			Debug("tick %d", 1)
		}()
	}
	wg.Wait()

	if Default() == saved {
		t.Error("SetDefault() should have replaced the default logger")
	}
}
