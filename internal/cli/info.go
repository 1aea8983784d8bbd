package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/cmkproject/cmk/internal/cmake"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show cmake version and generator information",
	Long:  `Query "cmake -E capabilities" and show the version, the available generators, and File API support.`,
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Dump the full capabilities report as formatted JSON")
}

func runInfo(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, ok := cmake.LookPath(cfg.CMakeCommand); !ok {
		return fmt.Errorf("%s not found in PATH", cfg.CMakeCommand)
	}

	raw, err := cmake.Capabilities(context.Background(), cfg.CMakeCommand)
	if err != nil {
		return err
	}

	if infoJSON {
		fmt.Print(string(pretty.Pretty(raw)))
		return nil
	}

	fmt.Printf("cmake version: %s\n", cmake.Version(raw))
	fmt.Printf("file api:      %v\n", cmake.SupportsFileAPI(raw))
	if gens := cmake.GeneratorNames(raw); len(gens) > 0 {
		fmt.Printf("generators:    %s\n", strings.Join(gens, ", "))
	}
	return nil
}
