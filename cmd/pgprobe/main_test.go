package main

import (
	"bytes"
	"os"
	"testing"
)

// isolate keeps the pipeline from reading a developer's real config file or
// log directory.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

// TestRun_ParseErrorsAbortBeforeConnecting verifies malformed arguments are
// reported on stderr with a failure exit code and produce no stdout output.
func TestRun_ParseErrorsAbortBeforeConnecting(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"dangling short option", []string{"-d"}, "Error: missing database argument\n"},
		{"flag-like value", []string{"-U", "-d"}, "Error: missing username argument\n"},
		{"empty long value", []string{"--port="}, "Error: missing port argument\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			if code != -1 {
				t.Errorf("exit code = %d, want -1", code)
			}
			if stderr.String() != tt.want {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.want)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
		})
	}
}

// TestRun_InvalidConfigReported verifies configuration errors take the same
// stderr path as parse errors.
func TestRun_InvalidConfigReported(t *testing.T) {
	isolate(t)
	t.Setenv("PGPROBE_CONNECTION_TIMEOUT", "soon")

	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)

	if code != -1 {
		t.Errorf("exit code = %d, want -1", code)
	}
	if stderr.Len() == 0 {
		t.Error("stderr is empty, want a configuration error")
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}
