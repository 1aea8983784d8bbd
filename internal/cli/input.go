package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/cmkproject/cmk/internal/picker"
)

// Collector provides interactive input collection.
type Collector interface {
	// Select presents a prompt with options and returns the selected entry.
	Select(prompt string, options []string) (string, error)
	// Line reads a single line of input after the prompt. An empty line
	// yields def.
	Line(prompt, def string) (string, error)
	// Confirm asks a yes/no question. Only an explicit "y"/"yes" answer
	// confirms.
	Confirm(question string) (bool, error)
}

// TerminalCollector implements Collector using fzf when available, a
// bubbletea list on a TTY, and numbered stdin selection otherwise.
type TerminalCollector struct {
	stdin  io.Reader // for testing, nil uses os.Stdin
	stdout io.Writer // for testing, nil uses os.Stdout
}

// NewTerminalCollector creates a TerminalCollector with default stdin/stdout.
func NewTerminalCollector() *TerminalCollector {
	return &TerminalCollector{}
}

// NewTerminalCollectorWithIO creates a TerminalCollector with custom I/O
// (for testing).
func NewTerminalCollectorWithIO(stdin io.Reader, stdout io.Writer) *TerminalCollector {
	return &TerminalCollector{stdin: stdin, stdout: stdout}
}

// Select presents options using fzf if available, a list picker on a TTY,
// or numbered selection as the last fallback.
func (c *TerminalCollector) Select(prompt string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("no options provided")
	}
	if len(options) == 1 {
		return options[0], nil
	}

	if hasFzf() {
		return c.selectWithFzf(prompt, options)
	}
	if c.stdin == nil && stdoutIsTTY() {
		return picker.Choose(prompt, options)
	}
	return c.selectWithNumbers(prompt, options)
}

// hasFzf checks if fzf is available in PATH.
func hasFzf() bool {
	_, err := exec.LookPath("fzf")
	return err == nil
}

// selectWithFzf uses fzf for interactive selection.
func (c *TerminalCollector) selectWithFzf(prompt string, options []string) (string, error) {
	input := strings.Join(options, "\n")

	cmd := exec.Command("fzf", "--prompt", prompt+": ", "--height", "10", "--layout=reverse") //nolint:gosec // fzf is a trusted external tool
	cmd.Stdin = strings.NewReader(input)
	cmd.Stderr = os.Stderr

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 130 {
			return "", errors.New("selection canceled")
		}
		return "", fmt.Errorf("fzf selection failed: %w", err)
	}

	selected := strings.TrimSpace(string(output))
	if selected == "" {
		return "", errors.New("no selection made")
	}
	return selected, nil
}

// selectWithNumbers presents numbered options for selection via stdin.
func (c *TerminalCollector) selectWithNumbers(prompt string, options []string) (string, error) {
	stdout := c.out()

	_, _ = fmt.Fprintln(stdout)
	_, _ = fmt.Fprintln(stdout, prompt)
	for i, opt := range options {
		_, _ = fmt.Fprintf(stdout, "  %d) %s\n", i+1, opt)
	}
	_, _ = fmt.Fprintf(stdout, "Enter number (1-%d): ", len(options))

	line, err := c.readLine()
	if err != nil {
		return "", err
	}

	num, err := strconv.Atoi(line)
	if err != nil {
		return "", fmt.Errorf("invalid number: %s", line)
	}
	if num < 1 || num > len(options) {
		return "", fmt.Errorf("selection out of range: %d (must be 1-%d)", num, len(options))
	}
	return options[num-1], nil
}

// Line reads one line after the prompt; an empty answer yields def.
func (c *TerminalCollector) Line(prompt, def string) (string, error) {
	stdout := c.out()
	if def != "" {
		_, _ = fmt.Fprintf(stdout, "%s [%s]: ", prompt, def)
	} else {
		_, _ = fmt.Fprintf(stdout, "%s: ", prompt)
	}

	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Confirm asks a yes/no question; only "y" or "yes" confirms.
func (c *TerminalCollector) Confirm(question string) (bool, error) {
	_, _ = fmt.Fprintf(c.out(), "%s [y/N]: ", question)

	line, err := c.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (c *TerminalCollector) out() io.Writer {
	if c.stdout != nil {
		return c.stdout
	}
	return os.Stdout
}

func (c *TerminalCollector) readLine() (string, error) {
	stdin := c.stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	reader := bufio.NewReader(stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
