package commands

import (
	"fmt"

	"github.com/tobyv/scenesweep/internal/backup"
	"github.com/tobyv/scenesweep/internal/normalize"
	"github.com/tobyv/scenesweep/internal/project"
)

// HandleTidy simplifies object transforms and component lists and saves the
// project. This is the save-lifecycle pass: it runs before every persist and
// never blocks one.
func HandleTidy(env *Env, dryRun bool) error {
	proj, err := project.Load(env.ProjectPath)
	if err != nil {
		return err
	}

	n := normalize.New(proj)
	if !n.Normalize() {
		return nil
	}

	stats := n.Stats()
	if stats.Total() == 0 {
		fmt.Println("Nothing to simplify")
		return nil
	}

	printStats(stats)
	if dryRun {
		return nil
	}

	if env.Cfg.Backups {
		if _, err := backup.Create(env.Root, env.ProjectPath); err != nil {
			return fmt.Errorf("failed to back up project: %w", err)
		}
	}

	return proj.Save()
}

func printStats(stats normalize.Stats) {
	fmt.Printf("Simplified %d transform(s), removed %d flag(s), %d hole(s), %d empty list(s)\n",
		stats.Transforms, stats.Flags, stats.Holes, stats.EmptiedLists)
}
