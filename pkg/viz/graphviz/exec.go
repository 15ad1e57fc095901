package graphviz

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// request describes a single layout-engine invocation. The constructed
// argument list is always
//
//	<engine> -T<format> [-o<outputPath>] [<inputPath>]
//
// When InputPath is empty the Input bytes are streamed through the
// process's standard input; when OutputPath is empty the output is captured
// from standard output and returned.
type request struct {
	Engine     string // engine binary, e.g. "dot" or "neato"
	Format     string // -T argument
	Input      []byte // DOT text (or raw bytes), used when InputPath is empty
	InputPath  string // existing file to pass as the input argument
	OutputPath string // file target for -o; empty captures to memory
}

// run invokes the layout engine and returns its captured output.
//
// The success condition is deliberately strict: the process must exit zero
// AND write nothing to its error stream. An engine that exits zero while
// emitting warnings is reported as failed; see the package documentation
// for why this contract is kept.
func run(ctx context.Context, req request) ([]byte, error) {
	args := []string{"-T" + req.Format}
	if req.OutputPath != "" {
		args = append(args, "-o"+req.OutputPath)
	}
	if req.InputPath != "" {
		args = append(args, req.InputPath)
	}

	if _, err := exec.LookPath(req.Engine); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExternalProcess, err,
			"layout engine %q not found; install Graphviz (macOS: brew install graphviz, Linux: apt install graphviz)", req.Engine)
	}

	cmd := exec.CommandContext(ctx, req.Engine, args...)
	if req.InputPath == "" {
		cmd.Stdin = bytes.NewReader(req.Input)
	}

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	runErr := cmd.Run()
	stderr := strings.TrimSpace(errBuf.String())

	if runErr != nil || stderr != "" {
		exitCode := -1
		if cmd.ProcessState != nil {
			exitCode = cmd.ProcessState.ExitCode()
		}
		procErr := &errors.ProcessError{
			Args:     append([]string{req.Engine}, args...),
			Stderr:   stderr,
			ExitCode: exitCode,
		}
		return nil, errors.Wrap(errors.ErrCodeExternalProcess, procErr, "layout engine failed")
	}

	return out.Bytes(), nil
}
