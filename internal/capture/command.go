package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Command runs an external recognizer (any program that listens and prints
// the recognized phrase on stdout). The first line of output is the result.
type Command struct {
	Argv    []string
	Timeout time.Duration
}

func (c Command) Recognize(ctx context.Context) (string, error) {
	if len(c.Argv) == 0 {
		return "", errors.New("capture command not configured")
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Argv[0], c.Argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %w: %s", c.Argv[0], err, msg)
		}
		return "", fmt.Errorf("%s: %w", c.Argv[0], err)
	}
	line, _, _ := strings.Cut(stdout.String(), "\n")
	return line, nil
}
