package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

const testProgram = "11111111111111111111111111111112"

// resetFlags restores global flags and points the CLI at a fresh store.
func resetFlags(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	verbose = false
	quiet = false
	jsonOut = false
	configPath = ""
	programArg = testProgram
	storeArg = dir
	createAuthority = ""
	createAdmin = ""
	inspectRaw = false
	return dir
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// decodeJSON unmarshals captured output into v
func decodeJSON(t *testing.T, output string, v interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(output), v); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, output)
	}
}
