package patches

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/reusee/imefix/imeconfigs"
)

const backupInfix = ".backup."

func backupName(path string, layout imeconfigs.BackupLayout, t time.Time) string {
	return filepath.Base(path) + backupInfix + t.Format(string(layout))
}

// backupPrefixes are the file name prefixes of backups of path, current
// naming first. Older releases named backups after the stem.
func backupPrefixes(path string) []string {
	name := filepath.Base(path)
	prefixes := []string{name + backupInfix}
	if stem := strings.TrimSuffix(name, filepath.Ext(name)); stem != name && stem != "" {
		prefixes = append(prefixes, stem+backupInfix)
	}
	return prefixes
}

// Backups lists backups of a file, newest first within each naming scheme,
// current scheme first.
type Backups func(path string) ([]string, error)

func (Module) Backups() Backups {
	return listBackups
}

func listBackups(path string) (ret []string, err error) {
	dir := filepath.Dir(path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, wrap(err)
	}
	for _, prefix := range backupPrefixes(path) {
		var names []string
		for _, entry := range entries {
			if !entry.Type().IsRegular() {
				continue
			}
			if strings.HasPrefix(entry.Name(), prefix) {
				names = append(names, entry.Name())
			}
		}
		slices.Sort(names)
		slices.Reverse(names)
		for _, name := range names {
			ret = append(ret, filepath.Join(dir, name))
		}
	}
	return
}

// writeBackup stores content next to path under name, with path's mode.
func writeBackup(path string, name string, content []byte) (_ string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", wrap(err)
	}

	dir := filepath.Dir(path)
	root, err := os.OpenRoot(dir)
	if err != nil {
		return "", wrap(err)
	}
	defer root.Close()

	f, err := root.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", wrap(err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = root.Remove(name)
		}
	}()
	if _, err := f.Write(content); err != nil {
		return "", wrap(err)
	}
	if err := f.Sync(); err != nil {
		return "", wrap(err)
	}
	if err := f.Close(); err != nil {
		return "", wrap(err)
	}

	return filepath.Join(dir, name), nil
}

func readBackup(backup string) ([]byte, fs.FileMode, error) {
	root, err := os.OpenRoot(filepath.Dir(backup))
	if err != nil {
		return nil, 0, wrap(err)
	}
	defer root.Close()
	info, err := root.Stat(filepath.Base(backup))
	if err != nil {
		return nil, 0, wrap(err)
	}
	content, err := root.ReadFile(filepath.Base(backup))
	if err != nil {
		return nil, 0, wrap(err)
	}
	return content, info.Mode().Perm(), nil
}
