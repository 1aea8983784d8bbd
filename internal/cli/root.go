// Package cli implements the command-line interface for cmk.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

// Flags shared by all commands.
var (
	workingDir   string
	buildDirFlag string
	binDirFlag   string
	cmakeFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "cmk",
	Short: "Project helper around the cmake command-line tool",
	Long: `cmk locates the project root by walking up from the current directory,
scaffolds new CMake projects, and wraps the usual configure/build/clean
cycle. Run targets are delivered into an interactive shell session.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workingDir, "dir", "d", "", "Working directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&buildDirFlag, "build-dir", "", "Build directory relative to the project root (overrides config)")
	rootCmd.PersistentFlags().StringVar(&binDirFlag, "bin-dir", "", "Binary directory relative to the build directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&cmakeFlag, "cmake", "", "CMake executable to invoke (overrides config)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(configCmd)
}
