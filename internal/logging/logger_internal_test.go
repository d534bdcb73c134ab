package logging

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLevelEnvVar(t *testing.T) {
	// Not parallel because it modifies the environment.

	t.Setenv(levelEnvVar, "warn")
	if got := parseLevel(os.Getenv(levelEnvVar)); got != log.WarnLevel {
		t.Errorf("expected warn level from %s, got %v", levelEnvVar, got)
	}

	t.Setenv(levelEnvVar, "")
	if got := parseLevel(os.Getenv(levelEnvVar)); got != log.InfoLevel {
		t.Errorf("expected info level for unset %s, got %v", levelEnvVar, got)
	}
}
