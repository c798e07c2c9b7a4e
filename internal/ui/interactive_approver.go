package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It asks the user to answer "y" or "yes" before an
// existing file is replaced.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover reading stdin and writing stderr.
func NewInteractiveApprover(verbose bool) slscmigrate.Approver {
	return &InteractiveApprover{verbose: verbose, input: os.Stdin, output: os.Stderr}
}

// RequestApproval prompts the user to confirm replacing path.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	fmt.Fprintf(a.output, "\n%s\n", Warning(fmt.Sprintf("WARNING: %s already exists and will be replaced.", path)))
	fmt.Fprint(a.output, "Overwrite? [y/N]: ")

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil && !(err == io.EOF && input != "") {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			fmt.Fprintln(a.output, Success("Confirmed. Overwriting "+path))
			return true, nil
		default:
			fmt.Fprintln(a.output, Failure("Not confirmed. "+path+" was left unchanged."))
			return false, nil
		}
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ slscmigrate.Approver = (*InteractiveApprover)(nil)
