package project

import (
	"os"

	git "github.com/go-git/go-git/v5"
)

// IsRepoRoot checks if the given directory is a git repository root.
// It does not walk parent directories.
func IsRepoRoot(dir string) bool {
	_, err := git.PlainOpen(dir)
	return err == nil
}

// RepoTop returns the root of the git repository containing dir, walking
// up parent directories, or "" when dir is not inside a repository.
func RepoTop(dir string) string {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return ""
	}
	wt, err := r.Worktree()
	if err != nil {
		return ""
	}
	return wt.Filesystem.Root()
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
