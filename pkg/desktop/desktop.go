// Package desktop provides the operating-system collaborators used by
// viewers: saving rendered artifacts to disk and opening them with the
// platform's default application.
//
// Open dispatches on the runtime platform:
//
//	darwin   open <path>
//	windows  cmd /c start <path>
//	linux    xdg-open <path>
//
// Unrecognized platforms fail with UNSUPPORTED_PLATFORM. Save accepts text
// or bytes and fails with UNSUPPORTED_DATA for any other shape.
package desktop

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// Open launches the platform's default application for the file at path.
// The viewer process is started detached; Open does not wait for it.
func Open(ctx context.Context, path string) error {
	return openOn(ctx, runtime.GOOS, path)
}

// openOn is the platform-dispatched core of Open, split out for tests.
func openOn(ctx context.Context, goos, path string) error {
	var cmd *exec.Cmd
	switch goos {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", path)
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", path)
	case "linux":
		cmd = exec.CommandContext(ctx, "xdg-open", path)
	default:
		return errors.New(errors.ErrCodeUnsupportedPlatform, "cannot open files on platform %q", goos)
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrap(errors.ErrCodeExternalProcess, err, "launch viewer for %s", path)
	}
	// Reap the launcher in the background so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Save writes data to target and returns the created file's path. Data must
// be a string or a byte slice; any other shape fails with UNSUPPORTED_DATA.
// The file is created with 0644 permissions.
func Save(data any, target string) (string, error) {
	var raw []byte
	switch v := data.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return "", errors.New(errors.ErrCodeUnsupportedData, "cannot save %T, want string or []byte", data)
	}

	if err := os.WriteFile(target, raw, 0644); err != nil {
		return "", fmt.Errorf("save %s: %w", target, err)
	}
	return target, nil
}

// TempPath returns a unique path in the system temp directory with the given
// extension. The file is not created.
func TempPath(ext string) string {
	name := "dotkit-" + uuid.NewString()
	if ext != "" {
		name += "." + strings.TrimPrefix(ext, ".")
	}
	return filepath.Join(os.TempDir(), name)
}

// WithTempFile writes data to a fresh temporary file, invokes fn with its
// path, and removes the file before returning. Cleanup happens on every exit
// path, including when fn fails.
func WithTempFile(data any, ext string, fn func(path string) error) error {
	path, err := Save(data, TempPath(ext))
	if err != nil {
		return err
	}
	defer os.Remove(path)
	return fn(path)
}
