package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cmkproject/cmk/internal/cmake"
)

var (
	targetNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("117"))
	targetPathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List executable targets from the CMake File API",
	Long: `List the executable targets the last configure run reported through the
CMake File API. Run "cmk configure" first to produce a reply.`,
	Args: cobra.NoArgs,
	RunE: runTargets,
}

func runTargets(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := requireProject(cfg)
	if err != nil {
		return err
	}

	targets, err := cmake.ExecutableTargets(p.BuildDir())
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		fmt.Println("No executable targets found. Run \"cmk configure\" to produce a File API reply.")
		return nil
	}

	for _, t := range targets {
		fmt.Printf("%s  %s\n", targetNameStyle.Render(t.Name), targetPathStyle.Render(t.Artifact))
	}
	return nil
}
