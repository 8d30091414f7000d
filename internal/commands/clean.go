package commands

import (
	"fmt"

	"github.com/tobyv/scenesweep/internal/backup"
	"github.com/tobyv/scenesweep/internal/git"
	"github.com/tobyv/scenesweep/internal/normalize"
	"github.com/tobyv/scenesweep/internal/project"
	"github.com/tobyv/scenesweep/internal/resolver"
	"github.com/tobyv/scenesweep/internal/scanner"
	"github.com/tobyv/scenesweep/internal/ui"
)

// HandleClean runs the full pass: purge orphaned resources, normalize the
// scene, save once.
func HandleClean(env *Env, dryRun, yes bool) error {
	proj, err := project.Load(env.ProjectPath)
	if err != nil {
		return err
	}

	s := scanner.New(proj, resolver.New(env.Root))
	result := s.Scan()
	printResult(env, proj, result, project.Categories)

	n := normalize.New(proj)
	n.Normalize()
	printStats(n.Stats())

	if dryRun {
		return nil
	}
	if result.Total() == 0 && n.Stats().Total() == 0 {
		return nil
	}

	if git.IsRepo(env.Root) && git.IsDirty(env.Root, env.projectRel()) {
		ui.Warnf("%s has uncommitted changes", env.projectRel())
	}
	if result.Total() > 0 && !yes && !ui.Confirm(fmt.Sprintf("Delete %d orphaned resource(s)?", result.Total())) {
		fmt.Println("Aborted")
		return nil
	}

	if env.Cfg.Backups {
		if _, err := backup.Create(env.Root, env.ProjectPath); err != nil {
			return fmt.Errorf("failed to back up project: %w", err)
		}
	}

	s.DeleteOrphans(result)
	return proj.Save()
}
