package patches

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/imefix/logs"
)

// Restore copies the newest backup over path and returns the backup used.
type Restore func(ctx context.Context, path string) (backup string, err error)

func (Module) Restore(
	logger logs.Logger,
	newSpan logs.NewSpan,
	backups Backups,
) Restore {
	return func(ctx context.Context, path string) (backup string, err error) {
		ctx, _ = newSpan(ctx, "restore", "path", path)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		list, err := backups(path)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoBackup, err)
		}
		if len(list) == 0 {
			return "", fmt.Errorf("%w: %s", ErrNoBackup, path)
		}
		backup = list[0]

		content, perm, err := readBackup(backup)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoBackup, err)
		}
		if info, err := os.Stat(path); err == nil {
			perm = info.Mode().Perm()
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrWriteFailed, wrap(err))
		}

		if err := writeAtomic(path, content, perm); err != nil {
			return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		logger.InfoContext(ctx, "restored",
			"backup", backup,
		)

		return backup, nil
	}
}
