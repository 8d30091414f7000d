package commands

import (
	"fmt"

	"github.com/tobyv/scenesweep/internal/backup"
)

// HandleUndo restores the newest backup over the project file
func HandleUndo(env *Env) error {
	info, err := backup.Restore(env.Root)
	if err != nil {
		return fmt.Errorf("cannot undo: %w", err)
	}

	fmt.Printf("+ restored %s (backed up %s)\n", info.Path, info.Created.Format("2006-01-02 15:04:05"))
	return nil
}
