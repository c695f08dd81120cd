package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_WritesAfterInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Close() })

	Log("measure %s -> %dx%d", "root", 10, 20)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "measure root -> 10x20") {
		t.Errorf("log contents = %q, want measure line", data)
	}
}

func TestClose_Idempotent(t *testing.T) {
	if err := Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
