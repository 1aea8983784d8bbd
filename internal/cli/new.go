package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"
	"github.com/spf13/cobra"

	"github.com/cmkproject/cmk/internal/project"
)

var (
	newForce  bool
	newNoEdit bool
)

var newCmd = &cobra.Command{
	Use:   "new <directory>",
	Short: "Create a new CMake project",
	Long: `Create a new CMake project at the given directory.

The directory and the build directory are created, a CMakeLists.txt is
generated from the configured template, and the post-creation hooks run.
Creation is all-or-nothing: on any failure the partial project is removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().BoolVar(&newForce, "force", false, "Overwrite an existing CMakeLists.txt (a diff is shown first)")
	newCmd.Flags().BoolVar(&newNoEdit, "no-edit", false, "Do not open the generated CMakeLists.txt in the editor")
}

func runNew(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve %q: %w", args[0], err)
	}

	opts := project.OptionsFromConfig(cfg)
	staged := project.New(dir, opts)

	if existing, err := os.ReadFile(staged.CMakeListsPath()); err == nil {
		if !newForce {
			return fmt.Errorf("%s already has a CMakeLists.txt (use --force to overwrite)", dir)
		}
		diff := udiff.Unified("CMakeLists.txt (existing)", "CMakeLists.txt (generated)",
			string(existing), staged.Template())
		if diff != "" {
			fmt.Print(diff)
		}
	}

	loc := project.NewLocator(cfg.Markers, cfg.StopBoundaries)
	creator := project.NewCreator(loc, opts)
	for _, hook := range cfg.PostCreate {
		creator.AddHook(shellHook(hook))
	}
	creator.AddHook(func(p *project.Project) error {
		recordHistory(p, "new")
		return nil
	})

	p, err := creator.Create(dir)
	if err != nil {
		return err
	}

	printNextSteps(p)

	if !newNoEdit {
		if err := openEditor(p.CMakeListsPath()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return nil
}

// shellHook wraps a configured post-create command as a project hook run
// at the new root.
func shellHook(command string) project.Hook {
	return func(p *project.Project) error {
		cmd := exec.Command("sh", "-c", command) //nolint:gosec // hook commands come from the user's config
		cmd.Dir = p.Root
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("post-create hook %q: %w", command, err)
		}
		return nil
	}
}

// openEditor opens path in $VISUAL or $EDITOR. Without either, the file is
// left for the user to open.
func openEditor(path string) error {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return nil
	}

	cmd := exec.Command(editor, path) //nolint:gosec // editor comes from the user's environment
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("open editor %s: %w", editor, err)
	}
	return nil
}

func printNextSteps(p *project.Project) {
	md := fmt.Sprintf(`# %s

Project created at %s.

Next steps:

- `+"`cmk configure`"+` — generate the build system in `+"`%s`"+`
- `+"`cmk build`"+` — compile
- `+"`cmk run`"+` — pick an executable and run it
`, p.Name(), p.Root, p.BuildDirRel())

	fmt.Print(renderMarkdown(md))
}
