package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/tabdeck/internal/logging"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	assert.NilError(t, err)

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		assert.NilError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNew_WritesToFileWithSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tabdeck.log")

	logger, err := logging.New(logging.Options{Path: path})
	assert.NilError(t, err)

	logger.Info("started")
	logger.Debug("hidden")
	_ = logger.Sync()

	entries := readEntries(t, path)
	assert.Assert(t, is.Len(entries, 1))
	assert.Check(t, is.Equal(entries[0]["msg"], "started"))

	session, ok := entries[0]["session"].(string)
	assert.Assert(t, ok)
	_, err = uuid.Parse(session)
	assert.Check(t, err)
}

func TestNew_VerboseLogsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabdeck.log")

	logger, err := logging.New(logging.Options{Path: path, Verbose: true})
	assert.NilError(t, err)

	logger.Debug("detail")
	_ = logger.Sync()

	entries := readEntries(t, path)
	assert.Assert(t, is.Len(entries, 1))
	assert.Check(t, is.Equal(entries[0]["level"], "debug"))
}
