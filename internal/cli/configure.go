package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cmkproject/cmk/internal/cmake"
	"github.com/cmkproject/cmk/internal/debug"
)

var (
	configureCopy bool
	buildCopy     bool
)

var configureCmd = &cobra.Command{
	Use:     "configure",
	Aliases: []string{"generate"},
	Short:   "Run the cmake configure step at the project root",
	Long: `Format and run the configure command at the project root:

  cmake -B<build-dir> -H.

On a terminal the command line can be edited before it runs.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCMakeStep("configure", cmake.ConfigureCommand, configureCopy)
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the cmake build step at the project root",
	Long: `Format and run the build command at the project root:

  cmake --build <build-dir>

On a terminal the command line can be edited before it runs.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCMakeStep("build", cmake.BuildCommand, buildCopy)
	},
}

func init() {
	configureCmd.Flags().BoolVar(&configureCopy, "copy", false, "Copy the command to the clipboard instead of running it")
	buildCmd.Flags().BoolVar(&buildCopy, "copy", false, "Copy the command to the clipboard instead of running it")
}

// runCMakeStep formats a cmake invocation for the located project and
// hands it to the runner. The runner's output is streamed through; cmk
// does not interpret it.
func runCMakeStep(action string, format func(cmakeCmd, buildDir string) string, copyOnly bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := requireProject(cfg)
	if err != nil {
		return err
	}

	command := format(cfg.CMakeCommand, p.BuildDirRel())

	if copyOnly {
		if err := clipboard.WriteAll(command); err != nil {
			return fmt.Errorf("copy command: %w", err)
		}
		fmt.Printf("Copied to clipboard: %s\n", command)
		return nil
	}

	if stdinIsTTY() {
		edited, err := NewTerminalCollector().Line("Command", command)
		if err != nil {
			return err
		}
		command = edited
	}

	if action == "configure" {
		// Register the File API query so the next configure run leaves a
		// codemodel reply for `cmk targets` and the run picker.
		if err := cmake.WriteQuery(p.BuildDir()); err != nil {
			debug.Logf("file api query: %v", err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner := &cmake.ExecRunner{}
	if err := runner.Run(ctx, command, p.Root); err != nil {
		return err
	}

	recordHistory(p, action)
	return nil
}

// stdinIsTTY reports whether stdin is attached to a terminal.
func stdinIsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
