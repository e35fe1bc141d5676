// Package browser opens URLs in the system browser and copies them.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Navigator opens a URL.
type Navigator interface {
	Open(url string) error
}

// Clipboard receives copied text.
type Clipboard interface {
	WriteAll(text string) error
}

// System opens URLs with the platform's default handler.
type System struct{}

// Open launches the default browser without waiting for it to exit.
func (System) Open(url string) error {
	cmd := Command(runtime.GOOS, url)
	if cmd == nil {
		return fmt.Errorf("open %s: unsupported platform %s", url, runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}

// Command returns the launcher command for goos, or nil if unsupported.
func Command(goos, url string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	return nil
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// WriteAll implements Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Recorder is a Navigator and Clipboard that remembers what it was given.
type Recorder struct {
	Opened []string
	Copied []string
	Err    error
}

// Open implements Navigator.
func (r *Recorder) Open(url string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Opened = append(r.Opened, url)
	return nil
}

// WriteAll implements Clipboard.
func (r *Recorder) WriteAll(text string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Copied = append(r.Copied, text)
	return nil
}
