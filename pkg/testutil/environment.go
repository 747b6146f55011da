package testutil

import (
	"os"
	"strings"
	"testing"
)

// EnvPrefix is the prefix of the environment variables atomdoc reads.
const EnvPrefix = "ATOMDOC_"

// Isolate clears every ATOMDOC_* variable and points XDG_STATE_HOME at a
// temporary directory for the duration of the test. It returns that
// directory. Tests calling Isolate cannot run in parallel.
func Isolate(t *testing.T) string {
	t.Helper()

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		// Setenv registers the restore, Unsetenv removes it for the test
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("Failed to unset %s: %v", name, err)
		}
	}

	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)
	return state
}
