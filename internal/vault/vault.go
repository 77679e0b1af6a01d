// Package vault provides access to the note vault: a user-chosen folder
// containing the templates, workouts, and journals subfolders. All paths
// are vault-relative; callers never touch the filesystem directly.
package vault

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/repvault/internal/errors"
)

// Store is the narrow contract the core depends on.
type Store interface {
	// ReadFile returns the UTF-8 content of a file inside the vault.
	ReadFile(relPath string) (string, error)
	// WriteFile replaces a file's content atomically, creating
	// intermediate directories as needed.
	WriteFile(relPath, content string) error
	// Exists reports whether a file exists inside the vault.
	Exists(relPath string) bool
	// ListFiles returns the sorted file names in a folder that satisfy
	// the predicate.
	ListFiles(folder string, pred func(name string) bool) ([]string, error)
	// Resolve returns an absolute location for a vault-relative path,
	// for handing to external players/viewers.
	Resolve(relPath string) string
}

// OSVault is a Store rooted at a local directory.
//
// A single mutex serializes every save against the vault: the daily note
// and the last-weights cache are shared files with read-modify-write
// cycles, and two concurrent saves would otherwise lose one side's update.
type OSVault struct {
	root string
	mu   sync.Mutex
}

// Open returns an OSVault rooted at dir. An empty dir means no vault has
// been granted yet.
func Open(dir string) (*OSVault, error) {
	if dir == "" {
		return nil, errors.NewNoVault()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.NewInvalidRequest("invalid vault path: " + err.Error())
	}
	return &OSVault{root: abs}, nil
}

// Root returns the vault's absolute root directory.
func (v *OSVault) Root() string {
	return v.root
}

// Lock acquires the vault's save lock. Every session save wraps its whole
// write sequence (document, daily note, cache) in Lock/Unlock.
func (v *OSVault) Lock() { v.mu.Lock() }

// Unlock releases the vault's save lock.
func (v *OSVault) Unlock() { v.mu.Unlock() }

// ReadFile returns the content of a file inside the vault.
func (v *OSVault) ReadFile(relPath string) (string, error) {
	data, err := os.ReadFile(filepath.Join(v.root, filepath.FromSlash(relPath)))
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewNotFound(relPath)
		}
		return "", errors.NewReadFailed(relPath, err)
	}
	return string(data), nil
}

// WriteFile writes content through a temp file in the same directory and
// renames it into place, so a failed write never leaves a partial file.
func (v *OSVault) WriteFile(relPath, content string) error {
	target := filepath.Join(v.root, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.NewWriteFailed(relPath, err)
	}

	tempPath := target + "." + ulid.Make().String() + ".tmp"
	if err := os.WriteFile(tempPath, []byte(content), 0o644); err != nil {
		os.Remove(tempPath)
		return errors.NewWriteFailed(relPath, err)
	}
	if err := os.Rename(tempPath, target); err != nil {
		os.Remove(tempPath)
		return errors.NewWriteFailed(relPath, err)
	}
	return nil
}

// Exists reports whether a file exists inside the vault.
func (v *OSVault) Exists(relPath string) bool {
	_, err := os.Stat(filepath.Join(v.root, filepath.FromSlash(relPath)))
	return err == nil
}

// ListFiles returns the sorted names of regular files in a vault folder
// that satisfy the predicate.
func (v *OSVault) ListFiles(folder string, pred func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(v.root, filepath.FromSlash(folder)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound(folder)
		}
		return nil, errors.NewReadFailed(folder, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if pred == nil || pred(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Resolve returns the absolute path for a vault-relative path.
func (v *OSVault) Resolve(relPath string) string {
	return filepath.Join(v.root, filepath.FromSlash(relPath))
}
