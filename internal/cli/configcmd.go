package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration and where it came from",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Fold in the project file when a root is found; without one the
	// global view is shown.
	if p, _, ok, err := locateProject(cfg); err == nil && ok {
		fmt.Printf("# project: %s\n", p.Root)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Print(string(out))

	fmt.Println("\n# sources (lowest to highest precedence):")
	for _, s := range cfg.Sources() {
		fmt.Printf("#   %s\n", s)
	}
	return nil
}
