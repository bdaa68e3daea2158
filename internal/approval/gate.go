// Package approval provides the confirmation gate that guards every
// mutation. Unattended runs auto-approve; interactive runs prompt on the
// terminal.
package approval

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// AutoApprove approves every transition. It is the default gate for
// unattended and batch use.
type AutoApprove struct{}

// Confirm always returns true.
func (AutoApprove) Confirm(string) bool { return true }

// Prompt asks the user to approve each transition with a y/N question.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

// NewPrompt creates a gate reading from stdin and writing to stderr.
func NewPrompt() *Prompt {
	return &Prompt{In: os.Stdin, Out: os.Stderr}
}

// Confirm prints the intended transition and waits for an answer. Anything
// other than an explicit yes is a rejection; so is a read failure.
func (p *Prompt) Confirm(description string) bool {
	fmt.Fprintf(p.Out, "%s — proceed? [y/N]: ", description)

	reader := bufio.NewReader(p.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// Interactive reports whether stdin is attached to a terminal, i.e. whether
// prompting is possible at all.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
