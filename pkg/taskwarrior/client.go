package taskwarrior

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"

	"github.com/harrisonrobin/taskbar/pkg/errors"
)

// DefaultBinary is the Taskwarrior executable looked up on PATH.
const DefaultBinary = "task"

// exportArgs asks for pending tasks only, with hooks disabled so that running
// the export from inside a hook cannot recurse.
var exportArgs = []string{"rc.hooks:off", "status:pending", "export"}

// Exporter produces one export snapshot.
type Exporter interface {
	Export(ctx context.Context) ([]Task, error)
}

type Client struct {
	binary string
}

// NewClient returns a Client running binary, or DefaultBinary when empty.
func NewClient(binary string) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{binary: binary}
}

// Export runs `task rc.hooks:off status:pending export` and decodes its output.
func (c *Client) Export(ctx context.Context) ([]Task, error) {
	cmd := exec.CommandContext(ctx, c.binary, exportArgs...)

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, &errors.ExportError{
				Stage:  errors.StageRun,
				Stderr: string(exitErr.Stderr),
				Err:    fmt.Errorf("%s exited with code %d: %w", c.binary, exitErr.ExitCode(), err),
			}
		}
		return nil, &errors.ExportError{Stage: errors.StageRun, Err: err}
	}

	return DecodeExport(bytes.NewReader(output))
}

// DecodeExport decodes a JSON array of tasks as written by `task export`.
func DecodeExport(r io.Reader) ([]Task, error) {
	var tasks []Task
	if err := json.NewDecoder(r).Decode(&tasks); err != nil {
		return nil, &errors.ExportError{
			Stage: errors.StageDecode,
			Err:   fmt.Errorf("failed to unmarshal taskwarrior output: %w", err),
		}
	}
	return tasks, nil
}
