package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func lastEntry(t *testing.T) string {
	t.Helper()
	logs := GetLogs()
	if len(logs) == 0 {
		t.Fatal("expected at least one log entry")
	}
	return logs[len(logs)-1].Message
}

func TestLevelPrefixes(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"info", func() { Log("refreshed %d", 3) }, "[INFO] refreshed 3"},
		{"error", func() { LogError("VERIFY", "credential", errors.New("boom")) }, "[ERROR] VERIFY: credential - boom"},
		{"http", func() { LogHTTP("GET %s", "/api/tokens") }, "[HTTP] GET /api/tokens"},
		{"session", func() { LogSession("logout") }, "[SESSION] logout"},
		{"file", func() { LogFileWrite("/tmp/x") }, "[FILE] write /tmp/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.log()
			if got := lastEntry(t); got != tt.want {
				t.Errorf("entry = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRingBufferBounded(t *testing.T) {
	for i := 0; i < maxBufferSize+50; i++ {
		Log("entry %d", i)
	}

	logs := GetLogs()
	if len(logs) != maxBufferSize {
		t.Fatalf("buffer size = %d, want %d", len(logs), maxBufferSize)
	}
	if want := "[INFO] entry 1049"; logs[len(logs)-1].Message != want {
		t.Errorf("newest entry = %q, want %q", logs[len(logs)-1].Message, want)
	}
}

func TestGetLogsReturnsCopy(t *testing.T) {
	Log("original")
	logs := GetLogs()
	logs[len(logs)-1].Message = "mutated"

	if got := lastEntry(t); got != "[INFO] original" {
		t.Errorf("buffer changed through copy: %q", got)
	}
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokendash.log")

	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Close() })

	LogSession("written to file")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "[SESSION] written to file") {
		t.Errorf("log file = %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("log file mode = %v, want 0600", info.Mode().Perm())
	}
}
