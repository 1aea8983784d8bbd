package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cleanYes bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the build directory",
	Long: `Delete the project's build directory recursively.

Asks for confirmation first; there is no dry-run and no undo.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runClean(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := requireProject(cfg)
	if err != nil {
		return err
	}

	if _, err := os.Stat(p.BuildDir()); os.IsNotExist(err) {
		fmt.Printf("Nothing to clean: %s does not exist\n", p.BuildDir())
		return nil
	}

	if !cleanYes {
		ok, err := NewTerminalCollector().Confirm(fmt.Sprintf("Delete %s", p.BuildDir()))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.RemoveAll(p.BuildDir()); err != nil {
		return fmt.Errorf("delete build dir: %w", err)
	}
	fmt.Printf("Deleted %s\n", p.BuildDir())

	recordHistory(p, "clean")
	return nil
}
