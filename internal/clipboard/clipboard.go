// Package clipboard reads a file's contents and places them on the
// clipboard, reporting which method succeeded. OSC52 is written first since
// it works over SSH and tmux without any host clipboard integration; a
// native clipboard write for local terminals is always attempted after
// it, and is the method reported whenever it succeeds.
package clipboard

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Method names the clipboard mechanism that actually succeeded.
type Method string

const (
	MethodOSC52  Method = "osc52"
	MethodNative Method = "native"
)

// MaxContentSize bounds how large a file this package will read into
// memory for a clipboard copy, guarding against accidentally copying a
// multi-hundred-megabyte recording.
const MaxContentSize = 5 * 1024 * 1024

// FileTooLargeError reports that path exceeds MaxContentSize.
type FileTooLargeError struct {
	Path string
	Size int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("clipboard: %s is %d bytes, exceeds %d byte limit", e.Path, e.Size, MaxContentSize)
}

// CopyFile reads path and places its contents on the clipboard, trying
// OSC52 first and a native clipboard write second. It reports which
// method succeeded; OSC52 "succeeding" only means the escape sequence was
// written, since there is no ack channel for it, so a native clipboard
// success is preferred in the reported Method when both work.
func CopyFile(path string) (Method, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > MaxContentSize {
		return "", &FileTooLargeError{Path: path, Size: info.Size()}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return CopyText(string(content))
}

// CopyText places text on the clipboard via OSC52, then via the native
// clipboard. Returns the method actually used to satisfy the caller;
// native clipboard success wins when both succeed, since it is
// independently verifiable (OSC52 has no acknowledgment).
func CopyText(text string) (Method, error) {
	oscErr := writeOSC52(text)
	nativeErr := clipboard.WriteAll(text)
	if nativeErr == nil {
		return MethodNative, nil
	}
	if oscErr == nil {
		return MethodOSC52, nil
	}
	return "", fmt.Errorf("clipboard: both OSC52 and native copy failed: %w", nativeErr)
}

func writeOSC52(text string) error {
	_, err := osc52.New(text).WriteTo(os.Stderr)
	return err
}
