package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cmkproject/cmk/internal/dirs"
	"github.com/cmkproject/cmk/internal/history"
)

var projectsForget string

var (
	projectNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	projectMetaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List known project roots",
	Long:  `List the project roots cmk has worked in, most recently used first.`,
	Args:  cobra.NoArgs,
	RunE:  runProjects,
}

func init() {
	projectsCmd.Flags().StringVar(&projectsForget, "forget", "", "Remove a project root from the history")
}

func runProjects(_ *cobra.Command, _ []string) error {
	st, err := history.Open(dirs.StateDir())
	if err != nil {
		return err
	}
	defer st.Close()

	if projectsForget != "" {
		if err := st.Forget(projectsForget); err != nil {
			return err
		}
		fmt.Printf("Forgot %s\n", projectsForget)
		return nil
	}

	entries, err := st.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No known projects yet.")
		return nil
	}

	for _, e := range entries {
		meta := fmt.Sprintf("%s  last %s %s", e.Root, e.LastAction, e.LastActionAt.Local().Format("2006-01-02 15:04"))
		fmt.Printf("%s  %s\n", projectNameStyle.Render(e.Name), projectMetaStyle.Render(meta))
	}
	return nil
}
