package patches

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/imefix/blocks"
	"github.com/reusee/imefix/imeconfigs"
	"github.com/reusee/imefix/logs"
	"github.com/reusee/imefix/modes"
	"github.com/reusee/imefix/roles"
)

type Report struct {
	State    RunState
	Version  string
	Backup   string
	Bindings roles.Bindings
	Target   blocks.Target
	Strategy imeconfigs.StrategyName
}

type Patch func(ctx context.Context, path string) (*Report, error)

func (Module) Patch(
	logger logs.Logger,
	newSpan logs.NewSpan,
	plan Plan,
	verifyOn imeconfigs.Verify,
	layout imeconfigs.BackupLayout,
	now modes.Now,
) Patch {
	return func(ctx context.Context, path string) (report *Report, err error) {
		ctx, _ = newSpan(ctx, "patch", "path", path)
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		report = &Report{
			State: StateUnchecked,
		}

		p, err := plan(ctx, path)
		if err != nil {
			switch {
			case errors.Is(err, ErrPatternNotFound):
				report.State = StateResolutionFailed
			case errors.Is(err, ErrNotFound):
				report.State = StateLocationFailed
			}
			return report, err
		}
		report.Version = p.Version
		report.Strategy = p.Strategy.Name()

		if p.Patched {
			report.State = StateAlreadyPatched
			logger.InfoContext(ctx, "already patched",
				"version", p.Version,
			)
			return report, nil
		}
		report.Bindings = p.Bindings
		report.Target = p.Target

		// a patched file must be recognized as such, or the next run patches it again
		patched := p.Apply()
		if !AlreadyPatched(patched) {
			report.State = StateVerifyFailed
			return report, fmt.Errorf("%w: result is not recognizable as patched", ErrVerifyFailed)
		}

		if verifyOn {
			report.State = StateVerifying
			if err := verify(ctx, p); err != nil {
				report.State = StateVerifyFailed
				return report, err
			}
			logger.DebugContext(ctx, "verified",
				"scenarios", len(p.Strategy.Scenarios()),
			)
		}

		info, err := os.Stat(path)
		if err != nil {
			return report, fmt.Errorf("%w: %w", ErrInputNotFound, wrap(err))
		}

		report.Backup, err = writeBackup(path, backupName(path, layout, now()), []byte(p.Content))
		if err != nil {
			return report, fmt.Errorf("%w: %w", ErrBackupFailed, err)
		}
		report.State = StateBackedUp
		logger.InfoContext(ctx, "backed up",
			"backup", report.Backup,
		)

		if err := writeAtomic(path, []byte(patched), info.Mode().Perm()); err != nil {
			report.State = StateWriteFailed
			return report, fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
		report.State = StateApplied
		logger.InfoContext(ctx, "patched",
			"version", p.Version,
			"strategy", report.Strategy,
			"span", p.Target.Span.String(),
		)

		return report, nil
	}
}
