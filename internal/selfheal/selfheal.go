package selfheal

import "github.com/tobyv/scenesweep/internal/backup"

// Run performs silent health checks and cleanup once per invocation
func Run(root string, keep int) {
	// Drop backups beyond the retention count
	_ = backup.PruneOld(root, keep)

	// Drop sidecar info files whose backup payload is gone
	_ = backup.RemoveStrayInfos(root)
}
