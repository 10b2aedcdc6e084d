package cli

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gmtgo/gmt/engine"
)

// fakeBinary writes an executable shell script standing in for the gmt
// executable and returns its path.
func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "gmt")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("writing fake binary: %v", err)
	}
	return path
}

func TestRegisteredAsDefault(t *testing.T) {
	if !engine.IsRegistered(engine.EngineCLI) {
		t.Fatal("cli engine not registered under engine.EngineCLI")
	}
	e := engine.Get(engine.EngineCLI)
	if e == nil {
		t.Fatal("engine.Get(cli) returned nil")
	}
	if e.Name() != engine.EngineCLI {
		t.Errorf("Name() = %q, want %q", e.Name(), engine.EngineCLI)
	}
}

func TestSessionNamesAreUnique(t *testing.T) {
	a, b := New(), New()
	if a.Session() == "" {
		t.Fatal("Session() is empty")
	}
	if a.Session() == b.Session() {
		t.Errorf("two engines share the session %q", a.Session())
	}
	if !strings.HasPrefix(a.Session(), "gmtgo-") {
		t.Errorf("Session() = %q, want gmtgo- prefix", a.Session())
	}
}

func TestCallModuleBeforeInit(t *testing.T) {
	e := New()
	if err := e.CallModule("figure", "name -"); !errors.Is(err, engine.ErrNotInitialized) {
		t.Errorf("CallModule() error = %v, want ErrNotInitialized", err)
	}
}

func TestInitMissingBinary(t *testing.T) {
	// Empty PATH: the executable cannot be resolved.
	t.Setenv("PATH", t.TempDir())

	e := New()
	if err := e.Init(); !errors.Is(err, engine.ErrNotAvailable) {
		t.Errorf("Init() error = %v, want ErrNotAvailable", err)
	}
}

func TestCallModulePassesArgsAndSession(t *testing.T) {
	out := filepath.Join(t.TempDir(), "call.txt")
	e := New()
	e.path = fakeBinary(t,
		`printf '%s\n' "$@" > `+out+`
printf '%s\n' "$GMT_SESSION_NAME" >> `+out+"\n")

	if err := e.CallModule("psconvert", "-A -P -Tg -Fmap"); err != nil {
		t.Fatalf("CallModule() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading fake binary output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	want := []string{"psconvert", "-A", "-P", "-Tg", "-Fmap", e.Session()}
	if len(lines) != len(want) {
		t.Fatalf("fake binary saw %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCallModuleEmptyArgs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "call.txt")
	e := New()
	e.path = fakeBinary(t, `printf '%d\n' "$#" > `+out+"\n")

	if err := e.CallModule("begin", ""); err != nil {
		t.Fatalf("CallModule() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading fake binary output: %v", err)
	}
	// Just the module name, no empty trailing arguments.
	if got := strings.TrimSpace(string(data)); got != "1" {
		t.Errorf("fake binary saw %s args, want 1", got)
	}
}

func TestCallModuleFailure(t *testing.T) {
	e := New()
	e.path = fakeBinary(t, "echo 'psconvert [ERROR]: no figure to convert' >&2\nexit 1\n")

	err := e.CallModule("psconvert", "-A")
	if err == nil {
		t.Fatal("CallModule() succeeded, want engine failure")
	}

	var callErr *engine.CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("CallModule() error = %T, want *engine.CallError", err)
	}
	if callErr.Module != "psconvert" {
		t.Errorf("CallError.Module = %q, want psconvert", callErr.Module)
	}
	if !strings.Contains(callErr.Stderr, "no figure to convert") {
		t.Errorf("CallError.Stderr = %q, want engine diagnostics captured", callErr.Stderr)
	}
	if callErr.Unwrap() == nil {
		t.Error("CallError.Unwrap() = nil, want the process error")
	}
}

func TestCloseWithoutInit(t *testing.T) {
	e := New()
	// Must not panic or spawn anything.
	e.Close()
}

func TestCloseEndsSession(t *testing.T) {
	out := filepath.Join(t.TempDir(), "call.txt")
	e := New()
	e.path = fakeBinary(t, `printf '%s\n' "$1" > `+out+"\n")

	e.Close()

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading fake binary output: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "end" {
		t.Errorf("Close() invoked module %q, want end", got)
	}
	if e.path != "" {
		t.Error("Close() did not mark the engine unusable")
	}
}
