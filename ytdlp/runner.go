// Package ytdlp runs the external yt-dlp binary and maps its exit status,
// stdout and stderr onto typed results. The tool is an opaque collaborator:
// its flags and output markers are a versioned contract, pinned in the
// integration tests.
package ytdlp

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// DefaultTool is the binary name resolved when no explicit path is configured.
const DefaultTool = "yt-dlp"

// afterMovePrint asks yt-dlp for the final file path after any move/rename
// step (extension correction, dedup suffix). That path, not the caller's
// template, is authoritative.
const afterMovePrint = "after_move:filepath"

// SpawnError means the tool could not be started at all.
type SpawnError struct {
	Tool string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s could not be started: %v. Place %s next to the host executable or on PATH",
		e.Tool, e.Err, e.Tool)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExecError means the tool ran but exited nonzero.
type ExecError struct {
	ExitCode int
	Stderr   string
}

func (e *ExecError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("yt-dlp failed with exit code %d", e.ExitCode)
	}
	return fmt.Sprintf("yt-dlp failed with exit code %d: %s", e.ExitCode, stderr)
}

// ErrNoFilePath means the tool exited cleanly but printed no final path.
var ErrNoFilePath = errors.New("yt-dlp did not report a file path")

// Runner invokes yt-dlp as a child process.
type Runner struct {
	// Tool is the binary name or path. A bare name is resolved next to the
	// host executable first, then on PATH.
	Tool string
	// ExtraArgs are appended to every invocation (config-supplied).
	ExtraArgs []string
}

// NewRunner creates a runner for the given tool. Empty means DefaultTool.
func NewRunner(tool string, extraArgs []string) *Runner {
	if tool == "" {
		tool = DefaultTool
	}
	return &Runner{Tool: tool, ExtraArgs: extraArgs}
}

// Download runs the tool in captured mode and returns the final file path the
// tool itself reports. Used for native-messaging invocations: quiet, no
// window, single item only.
//
// Failure modes:
//   - *SpawnError: tool missing or not executable
//   - *ExecError: nonzero exit, carrying captured stderr
//   - ErrNoFilePath: exit zero but empty reported path
func (r *Runner) Download(ctx context.Context, url, outputPath string) (string, error) {
	tool, err := r.resolve()
	if err != nil {
		return "", &SpawnError{Tool: r.Tool, Err: err}
	}

	args := []string{url, "-o", outputPath, "--no-playlist", "--quiet", "--print", afterMovePrint}
	args = append(args, r.ExtraArgs...)

	cmd := exec.CommandContext(ctx, tool, args...)
	suppressWindow(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExecError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return "", &SpawnError{Tool: r.Tool, Err: err}
	}

	filePath := strings.TrimSpace(stdout.String())
	if filePath == "" {
		return "", ErrNoFilePath
	}
	return filePath, nil
}

// Stream runs the tool in progress mode, delivering every stdout and stderr
// line to onLine as it is produced. Used by interactive callers that want a
// live download display. On success the caller-supplied outputPath stands;
// no path is parsed from the output.
//
// Both pipes are drained fully before the child is reaped, so a child
// blocked on a full pipe buffer cannot deadlock against the wait.
func (r *Runner) Stream(ctx context.Context, url, outputPath string, onLine func(string)) error {
	tool, err := r.resolve()
	if err != nil {
		return &SpawnError{Tool: r.Tool, Err: err}
	}

	args := []string{url, "-o", outputPath, "--no-playlist", "--progress"}
	args = append(args, r.ExtraArgs...)

	cmd := exec.CommandContext(ctx, tool, args...)
	suppressWindow(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return &SpawnError{Tool: r.Tool, Err: err}
	}

	var mu sync.Mutex
	emit := func(line string) {
		mu.Lock()
		defer mu.Unlock()
		onLine(line)
	}

	var wg sync.WaitGroup
	for _, pipe := range []io.Reader{stdout, stderr} {
		wg.Add(1)
		go func(pipe io.Reader) {
			defer wg.Done()
			scanner := bufio.NewScanner(pipe)
			for scanner.Scan() {
				emit(scanner.Text())
			}
		}(pipe)
	}
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExecError{ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to wait for %s: %w", r.Tool, err)
	}
	return nil
}

// Resolve reports the absolute tool path the runner would execute.
func (r *Runner) Resolve() (string, error) {
	return r.resolve()
}

// resolve finds the tool binary: explicit paths are taken as-is, bare names
// are checked next to the host executable before falling back to PATH.
func (r *Runner) resolve() (string, error) {
	if strings.ContainsAny(r.Tool, `/\`) {
		if _, err := os.Stat(r.Tool); err != nil {
			return "", err
		}
		return r.Tool, nil
	}

	if exePath, err := os.Executable(); err == nil {
		sibling := filepath.Join(filepath.Dir(exePath), r.Tool+exeSuffix())
		if info, err := os.Stat(sibling); err == nil && !info.IsDir() {
			return sibling, nil
		}
	}

	return exec.LookPath(r.Tool)
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
