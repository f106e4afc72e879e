package logging_test

import (
	"testing"

	"github.com/lathkin/octopath/internal/logging"
)

func TestNew_WithoutFileConfig(t *testing.T) {
	log := logging.New("info", logging.FileConfig{})
	if log == nil {
		t.Fatal("New returned nil logger")
	}
	log.Info("hello")
	if err := log.Sync(); err != nil {
		t.Logf("Sync: %v (non-fatal, common for stderr-backed cores)", err)
	}
}

func TestNew_WithFileConfig(t *testing.T) {
	dir := t.TempDir()
	log := logging.New("debug", logging.DefaultFileConfig(dir+"/octopath.log"))
	if log == nil {
		t.Fatal("New returned nil logger")
	}
	log.Debug("debug message")
}
