package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/clipforge/clipforge/internal/config"
)

// ExecError is a failed ffmpeg run. Stderr carries the engine's diagnostic
// output verbatim so the caller can surface it without re-running.
type ExecError struct {
	Err    error
	Stderr string
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("ffmpeg: %v", e.Err)
	if tail := lastLine(e.Stderr); tail != "" {
		msg += ": " + tail
	}
	return msg
}

func (e *ExecError) Unwrap() error { return e.Err }

// lastLine returns the final non-empty stderr line, usually the actual error.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}

// Execute renders and runs the graph's ffmpeg command. One external call,
// no retries; cancellation terminates the process via the context. In
// verbose mode stderr is tee'd to os.Stderr in real time; otherwise it is
// captured silently and attached to the returned *ExecError on failure.
func Execute(ctx context.Context, cfg *config.Config, g *Graph) error {
	args := Build(cfg, g)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if cfg.Verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		return &ExecError{Err: err, Stderr: stderrBuf.String()}
	}
	return nil
}
