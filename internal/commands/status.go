package commands

import (
	"fmt"

	"github.com/tobyv/scenesweep/internal/backup"
	"github.com/tobyv/scenesweep/internal/git"
	"github.com/tobyv/scenesweep/internal/project"
	"github.com/tobyv/scenesweep/internal/resolver"
	"github.com/tobyv/scenesweep/internal/scanner"
)

// HandleStatus prints a project overview: resource counts, orphan count,
// backups, and version-control state.
func HandleStatus(env *Env) error {
	proj, err := project.Load(env.ProjectPath)
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s\n", env.ProjectPath)
	for _, category := range project.Categories {
		table := proj.Table(category)
		if table.Len() == 0 {
			continue
		}
		fmt.Printf("  %-10s %d\n", category, table.Len())
	}
	fmt.Printf("  %-10s %d\n", "objects", len(proj.ObjectKeys()))

	s := scanner.New(proj, resolver.New(env.Root))
	fmt.Printf("Orphaned:  %d\n", s.Scan().Total())

	ids, err := backup.List(env.Root)
	if err != nil {
		return err
	}
	fmt.Printf("Backups:   %d\n", len(ids))

	if git.IsRepo(env.Root) {
		state := "clean"
		if git.IsDirty(env.Root, env.projectRel()) {
			state = "dirty"
		}
		fmt.Printf("Git:       %s\n", state)
	}

	return nil
}
