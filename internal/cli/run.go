package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/cmkproject/cmk/internal/cmake"
	"github.com/cmkproject/cmk/internal/debug"
	"github.com/cmkproject/cmk/internal/project"
	"github.com/cmkproject/cmk/internal/shell"
)

var (
	runArgs   string
	runCopy   bool
	runAttach bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Pick an executable and run it in the project shell",
	Long: `Pick an executable from the binary directory (or the CMake File API
target list when available) and send "<path> <args>" as a command line to
the project's interactive shell session.

With tmux installed the session persists between runs; attach to it with
--attach or "tmux attach -t cmk-<project>".`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runArgs, "args", "", "Argument string appended to the executable")
	runCmd.Flags().BoolVar(&runCopy, "copy", false, "Copy the command line to the clipboard instead of running it")
	runCmd.Flags().BoolVar(&runAttach, "attach", false, "Attach to the tmux session after sending the command")
}

func runRun(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := requireProject(cfg)
	if err != nil {
		return err
	}

	exe, err := chooseExecutable(p)
	if err != nil {
		return err
	}

	args := runArgs
	if args == "" && stdinIsTTY() {
		args, err = NewTerminalCollector().Line("Arguments", "")
		if err != nil {
			return err
		}
	}

	line := executableLine(exe, args)

	if runCopy {
		if err := clipboard.WriteAll(line); err != nil {
			return fmt.Errorf("copy command: %w", err)
		}
		fmt.Printf("Copied to clipboard: %s\n", line)
		return nil
	}

	sess := shell.New(p.Name(), p.Root)
	if err := sess.SendLine(line); err != nil {
		return err
	}
	recordHistory(p, "run")

	if tmuxSess, ok := sess.(*shell.TmuxSession); ok {
		if runAttach {
			return tmuxSess.Attach()
		}
		fmt.Printf("Sent to tmux session %s (attach with: tmux attach -t %s)\n", tmuxSess.Name, tmuxSess.Name)
	}
	return nil
}

// chooseExecutable selects a run/debug target. File API executable targets
// are preferred when a configure reply exists; otherwise the binary
// directory is scanned, falling back to the ambient directory when the
// binary directory is missing.
func chooseExecutable(p *project.Project) (string, error) {
	byLabel := make(map[string]string)
	var labels []string

	targets, err := cmake.ExecutableTargets(p.BuildDir())
	if err != nil {
		debug.Logf("file api reply: %v", err)
	}
	for _, t := range targets {
		if t.Artifact == "" {
			continue
		}
		abs := filepath.Join(p.BuildDir(), t.Artifact)
		if _, err := os.Stat(abs); err != nil {
			continue
		}
		if _, seen := byLabel[t.Artifact]; !seen {
			byLabel[t.Artifact] = abs
			labels = append(labels, t.Artifact)
		}
	}

	searchDir := p.BinDir()
	if len(labels) == 0 {
		if _, err := os.Stat(searchDir); os.IsNotExist(err) {
			wd, err := resolveWorkingDir(workingDir)
			if err != nil {
				return "", err
			}
			searchDir = wd
		}
		rels, err := executablesUnder(searchDir)
		if err != nil {
			return "", err
		}
		for _, rel := range rels {
			if _, seen := byLabel[rel]; !seen {
				byLabel[rel] = filepath.Join(searchDir, rel)
				labels = append(labels, rel)
			}
		}
	}

	if len(labels) == 0 {
		return "", fmt.Errorf("no executables found under %s (build first?)", searchDir)
	}

	sel, err := NewTerminalCollector().Select("Executable", labels)
	if err != nil {
		return "", err
	}
	path, ok := byLabel[sel]
	if !ok {
		return "", fmt.Errorf("unknown selection %q", sel)
	}
	return path, nil
}

// executableLine assembles the literal shell line for a target and its
// argument string.
func executableLine(exe, args string) string {
	if strings.TrimSpace(args) == "" {
		return exe
	}
	return exe + " " + strings.TrimSpace(args)
}
