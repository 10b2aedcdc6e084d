package gmt

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/pkg/browser"
)

// launchViewer opens path in an external viewer without blocking:
// xdg-open on Linux, open on macOS, and the default web browser (via a
// file:// URL) on anything else. The child's output streams are
// discarded and its exit status is not observed.
func launchViewer(path string) error {
	return launchViewerOn(runtime.GOOS, path)
}

// viewerCommand returns the platform's file-opener command. ok is
// false when the platform has none and the default browser should be
// used instead.
func viewerCommand(goos string) (name string, ok bool) {
	switch goos {
	case "linux":
		return "xdg-open", true
	case "darwin":
		return "open", true
	}
	return "", false
}

func launchViewerOn(goos, path string) error {
	name, ok := viewerCommand(goos)
	if !ok {
		return browser.OpenFile(path)
	}

	// Leaving Stdout/Stderr nil routes the child's output to the null
	// device.
	cmd := exec.Command(name, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("gmt: launching %s: %w", name, err)
	}
	Logger().Debug("launched external viewer", "viewer", name, "path", path)

	// Reap the child once it exits.
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
