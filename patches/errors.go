package patches

import (
	"errors"

	"github.com/reusee/imefix/blocks"
	"github.com/reusee/imefix/roles"
)

var (
	ErrInputNotFound   = errors.New("input not found")
	ErrInputNotText    = errors.New("input is not text")
	ErrPatternNotFound = roles.ErrPatternNotFound
	ErrNotFound        = blocks.ErrNotFound
	ErrBlockNotFound   = blocks.ErrBlockNotFound
	ErrPointNotFound   = blocks.ErrPointNotFound
	ErrVerifyFailed    = errors.New("verification failed")
	ErrBackupFailed    = errors.New("backup failed")
	ErrWriteFailed     = errors.New("write failed")
	ErrNoBackup        = errors.New("no backup")
	ErrUnknownStrategy = errors.New("unknown strategy")
)
