package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/blake2b"
)

const (
	// Directory layout under the project root
	sweepDirName   = ".scenesweep"
	backupsDirName = "backups"

	// Backup file naming
	infoExt = ".info"

	// Permissions
	dirPermissions    = 0755 // rwxr-xr-x
	backupPermissions = 0644 // rw-r--r--

	// DefaultKeep is the backup retention count used when config says nothing
	DefaultKeep = 10
)

// Info is the sidecar metadata written next to each backup payload
type Info struct {
	Path    string    `toml:"path"` // project file the payload came from
	Created time.Time `toml:"created"`
	Digest  string    `toml:"digest"` // blake2b hash of the payload
}

// Dir returns the backup directory for a project root
func Dir(root string) string {
	return filepath.Join(root, sweepDirName, backupsDirName)
}

func payloadPath(root, id string) string {
	return filepath.Join(Dir(root), id)
}

func infoPath(root, id string) string {
	return filepath.Join(Dir(root), id+infoExt)
}

func hashContent(data []byte) string {
	sum := blake2b.Sum256(data)
	return fmt.Sprintf("blake2b:%x", sum)
}

// List returns backup IDs oldest first. ULIDs sort lexicographically by
// creation time, so a plain string sort is a time sort.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(Dir(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasSuffix(name, infoExt) {
			continue
		}
		ids = append(ids, name)
	}
	sort.Strings(ids)
	return ids, nil
}

// Create snapshots the current content of projectPath into the backup
// directory and returns the new backup ID. When the content is identical to
// the newest existing backup nothing is written and the existing ID is
// returned.
func Create(root, projectPath string) (string, error) {
	data, err := os.ReadFile(projectPath)
	if err != nil {
		return "", fmt.Errorf("failed to read project file: %w", err)
	}
	digest := hashContent(data)

	ids, err := List(root)
	if err != nil {
		return "", err
	}
	if len(ids) > 0 {
		newest := ids[len(ids)-1]
		if info, err := readInfo(root, newest); err == nil && info.Digest == digest {
			return newest, nil
		}
	}

	if err := os.MkdirAll(Dir(root), dirPermissions); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	id := ulid.Make().String()
	if err := os.WriteFile(payloadPath(root, id), data, backupPermissions); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	info := Info{
		Path:    projectPath,
		Created: time.Now(),
		Digest:  digest,
	}
	if err := writeInfo(root, id, info); err != nil {
		// Keep the directory consistent if the sidecar fails
		os.Remove(payloadPath(root, id))
		return "", err
	}

	return id, nil
}

// Restore copies the newest backup back over the project file it came from
// and removes it from the backup directory.
func Restore(root string) (Info, error) {
	ids, err := List(root)
	if err != nil {
		return Info{}, err
	}
	if len(ids) == 0 {
		return Info{}, fmt.Errorf("no backups found")
	}

	id := ids[len(ids)-1]
	info, err := readInfo(root, id)
	if err != nil {
		return Info{}, fmt.Errorf("backup '%s' has no readable info: %w", id, err)
	}

	data, err := os.ReadFile(payloadPath(root, id))
	if err != nil {
		return Info{}, fmt.Errorf("failed to read backup: %w", err)
	}

	if err := os.WriteFile(info.Path, data, backupPermissions); err != nil {
		return Info{}, fmt.Errorf("failed to restore project file: %w", err)
	}

	os.Remove(payloadPath(root, id))
	os.Remove(infoPath(root, id))

	return info, nil
}

// PruneOld removes the oldest backups beyond the retention count
func PruneOld(root string, keep int) error {
	if keep < 0 {
		keep = 0
	}

	ids, err := List(root)
	if err != nil {
		return err
	}
	if len(ids) <= keep {
		return nil
	}

	for _, id := range ids[:len(ids)-keep] {
		if err := os.Remove(payloadPath(root, id)); err != nil {
			return fmt.Errorf("failed to remove backup '%s': %w", id, err)
		}
		os.Remove(infoPath(root, id))
	}
	return nil
}

// RemoveStrayInfos deletes sidecar info files whose payload is gone
func RemoveStrayInfos(root string) error {
	entries, err := os.ReadDir(Dir(root))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read backup directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, infoExt) {
			continue
		}
		id := strings.TrimSuffix(name, infoExt)
		if _, err := os.Stat(payloadPath(root, id)); os.IsNotExist(err) {
			os.Remove(infoPath(root, id))
		}
	}
	return nil
}

func readInfo(root, id string) (Info, error) {
	var info Info
	if _, err := toml.DecodeFile(infoPath(root, id), &info); err != nil {
		return Info{}, err
	}
	return info, nil
}

func writeInfo(root, id string, info Info) error {
	f, err := os.OpenFile(infoPath(root, id), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, backupPermissions)
	if err != nil {
		return fmt.Errorf("failed to create backup info: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(info); err != nil {
		return fmt.Errorf("failed to encode backup info: %w", err)
	}
	return nil
}
