// Package shell delivers command lines to an interactive shell session.
//
// The preferred backend is a per-project tmux session: run targets keep
// their terminal, environment, and history between invocations. Without
// tmux the line is executed directly in the foreground.
package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Session is an interactive shell that accepts literal command lines.
type Session interface {
	SendLine(line string) error
}

// New returns a Session for the given project: a tmux-backed one when tmux
// is available, otherwise direct foreground execution in workDir.
func New(projectName, workDir string) Session {
	if Available() {
		return &TmuxSession{Name: SessionName(projectName), WorkDir: workDir}
	}
	return &DirectSession{WorkDir: workDir}
}

// Available checks if tmux is available in PATH.
func Available() bool {
	_, err := exec.LookPath("tmux")
	return err == nil
}

// SessionName derives the tmux session name for a project.
func SessionName(projectName string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, projectName)
	return "cmk-" + slug
}

// TmuxSession drives a tmux session named after the project.
type TmuxSession struct {
	Name    string
	WorkDir string
}

// Exists checks if the tmux session exists.
func (s *TmuxSession) Exists() bool {
	cmd := exec.Command("tmux", "has-session", "-t", s.Name)
	return cmd.Run() == nil
}

// ensure creates the session detached if it does not exist yet.
func (s *TmuxSession) ensure() error {
	if s.Exists() {
		return nil
	}
	cmd := exec.Command("tmux", "new-session", "-d", "-s", s.Name, "-c", s.WorkDir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("create tmux session %s: %w", s.Name, err)
	}
	return nil
}

// SendLine sends a literal command line to the session. Any pending input
// is cleared first so the line lands on a fresh prompt even when the pane
// was left mid-edit or empty.
func (s *TmuxSession) SendLine(line string) error {
	if err := s.ensure(); err != nil {
		return err
	}
	if err := exec.Command("tmux", "send-keys", "-t", s.Name, "C-u").Run(); err != nil {
		return fmt.Errorf("clear prompt in %s: %w", s.Name, err)
	}
	if err := exec.Command("tmux", "send-keys", "-t", s.Name, line, "Enter").Run(); err != nil {
		return fmt.Errorf("send to tmux session %s: %w", s.Name, err)
	}
	return nil
}

// Attach attaches to the session in the foreground and returns when the
// user detaches or the session ends.
func (s *TmuxSession) Attach() error {
	cmd := exec.Command("tmux", "attach-session", "-t", s.Name)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if !s.Exists() {
		return nil
	}
	return err
}

// DirectSession executes lines in the foreground via the shell. Fallback
// for hosts without tmux.
type DirectSession struct {
	WorkDir string
	Stdout  io.Writer // defaults to os.Stdout
	Stderr  io.Writer // defaults to os.Stderr
}

// SendLine runs the line and blocks until it finishes.
func (d *DirectSession) SendLine(line string) error {
	cmd := exec.Command("sh", "-c", line) //nolint:gosec // line is assembled from user selections
	cmd.Dir = d.WorkDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = d.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = d.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %q: %w", line, err)
	}
	return nil
}
