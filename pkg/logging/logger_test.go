package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestDir points the log directory at a temp dir and resets global state
func setupTestDir(t *testing.T) (cleanup func()) {
	t.Helper()

	tempDir := t.TempDir()

	origLogDir := logDir
	origInitErr := initErr
	origSessionID := sessionID

	logDir = tempDir
	initErr = nil
	initOnce = sync.Once{}
	sessionID = ""
	sessionIDOnce = sync.Once{}

	return func() {
		logDir = origLogDir
		initErr = origInitErr
		initOnce = sync.Once{}
		sessionID = origSessionID
		sessionIDOnce = sync.Once{}
	}
}

func TestNewLogger(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	logger, err := NewLogger("test-component")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.component != "test-component" {
		t.Errorf("Expected component 'test-component', got %q", logger.component)
	}

	if logger.SessionID() == "" {
		t.Error("Expected non-empty session ID")
	}

	if _, err := os.Stat(logger.LogPath()); os.IsNotExist(err) {
		t.Errorf("Log file does not exist at %s", logger.LogPath())
	}
}

func TestLoggerFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("ao3", &buf)

	logger.Debugf("Debug message")
	logger.Infof("Navigating to '%s'", "https://archiveofourown.org/")
	logger.Warnf("Warning message")
	logger.Errorf("Error message")

	expectedPatterns := []string{
		"[ao3] [DEBUG] Debug message",
		"[ao3] [INFO] Navigating to 'https://archiveofourown.org/'",
		"[ao3] [WARN] Warning message",
		"[ao3] [ERROR] Error message",
	}

	for _, pattern := range expectedPatterns {
		if !strings.Contains(buf.String(), pattern) {
			t.Errorf("Log content missing expected pattern: %q\nContent:\n%s", pattern, buf.String())
		}
	}
}

func TestFileLoggerWritesEntries(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	logger, err := NewLogger("scraper")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Infof("Loading work data for '%s'", "123")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "[scraper] [INFO] Loading work data for '123'") {
		t.Errorf("Unexpected log content:\n%s", content)
	}
}

func TestWithSharesOutput(t *testing.T) {
	var buf bytes.Buffer
	root := NewWriterLogger("root", &buf)
	child := root.With("filler")

	root.Infof("one")
	child.Infof("two")

	if root.SessionID() != child.SessionID() {
		t.Errorf("Expected same session ID, got %q and %q", root.SessionID(), child.SessionID())
	}
	if !strings.Contains(buf.String(), "[root] [INFO] one") || !strings.Contains(buf.String(), "[filler] [INFO] two") {
		t.Errorf("Expected both components in output, got:\n%s", buf.String())
	}
}

func TestGetSessionID(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	id1 := GetSessionID()
	id2 := GetSessionID()

	if id1 != id2 {
		t.Errorf("Expected consistent session ID, got %q and %q", id1, id2)
	}
	if id1 == "" {
		t.Error("Expected non-empty session ID")
	}
}

func TestGetLogDirectory(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	dir, err := GetLogDirectory()
	if err != nil {
		t.Fatalf("Failed to get log directory: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("Log directory does not exist or is not a directory: %s", dir)
	}
}

func TestLoggerClose(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}

func TestLogPathFormat(t *testing.T) {
	cleanup := setupTestDir(t)
	defer cleanup()

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	fileName := filepath.Base(logger.LogPath())
	if !strings.HasSuffix(fileName, "-podfickle.log") {
		t.Errorf("Expected log file to end with '-podfickle.log', got %q", fileName)
	}

	sessionPart := strings.TrimSuffix(fileName, "-podfickle.log")
	if !strings.Contains(sessionPart, "-") {
		t.Errorf("Expected session ID part to contain dashes (UUID format), got %q", sessionPart)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Infof("nothing to see")
	if logger.LogPath() != "" {
		t.Errorf("Expected no log path for discard logger, got %q", logger.LogPath())
	}
}
