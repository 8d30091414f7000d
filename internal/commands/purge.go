package commands

import (
	"fmt"

	"github.com/tobyv/scenesweep/internal/backup"
	"github.com/tobyv/scenesweep/internal/git"
	"github.com/tobyv/scenesweep/internal/project"
	"github.com/tobyv/scenesweep/internal/resolver"
	"github.com/tobyv/scenesweep/internal/scanner"
	"github.com/tobyv/scenesweep/internal/ui"
)

// HandlePurge scans for orphaned resources and deletes them from the project
func HandlePurge(env *Env, dryRun, yes bool) error {
	proj, err := project.Load(env.ProjectPath)
	if err != nil {
		return err
	}

	s := scanner.New(proj, resolver.New(env.Root))
	result := s.Scan()

	printResult(env, proj, result, project.Categories)
	total := result.Total()
	if total == 0 || dryRun {
		return nil
	}

	if git.IsRepo(env.Root) && git.IsDirty(env.Root, env.projectRel()) {
		ui.Warnf("%s has uncommitted changes", env.projectRel())
	}

	if !yes && !ui.Confirm(fmt.Sprintf("Delete %d orphaned resource(s)?", total)) {
		fmt.Println("Aborted")
		return nil
	}

	if env.Cfg.Backups {
		if _, err := backup.Create(env.Root, env.ProjectPath); err != nil {
			return fmt.Errorf("failed to back up project: %w", err)
		}
	}

	s.DeleteOrphans(result)
	if err := proj.Save(); err != nil {
		return err
	}

	debugf("post-delete scan: %d orphaned", s.Last().Total())
	fmt.Printf("Removed %d resource(s)\n", total)
	return nil
}
