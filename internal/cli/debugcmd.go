package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var debugCopy bool

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Pick an executable and print its path for a debugger",
	Long: `Pick an executable with the same selection flow as "cmk run" and print
its path. Starting the debugger itself is left to the caller, e.g.:

  gdb "$(cmk debug)"`,
	Args: cobra.NoArgs,
	RunE: runDebug,
}

func init() {
	debugCmd.Flags().BoolVar(&debugCopy, "copy", false, "Copy the path to the clipboard as well")
}

func runDebug(_ *cobra.Command, _ []string) error {
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

	fmt.Println(exe)

	if debugCopy {
		if err := clipboard.WriteAll(exe); err != nil {
			return fmt.Errorf("copy path: %w", err)
		}
	}
	return nil
}
