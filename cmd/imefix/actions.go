package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/imefix/patches"
)

func patchAction(path string) action {
	return func(ctx context.Context, scope dscope.Scope) (code int) {
		scope.Call(func(
			patch patches.Patch,
		) {
			report, err := patch(ctx, path)
			if err != nil {
				code = fail(err)
				return
			}
			switch report.State {
			case patches.StateAlreadyPatched:
				fmt.Printf("%s (version %s) is already patched\n", path, report.Version)
			default:
				fmt.Printf("patched %s (version %s, %s)\n", path, report.Version, report.Strategy)
				fmt.Printf("backup: %s\n", report.Backup)
			}
		})
		return
	}
}

func restoreAction(path string) action {
	return func(ctx context.Context, scope dscope.Scope) (code int) {
		scope.Call(func(
			restore patches.Restore,
		) {
			backup, err := restore(ctx, path)
			if err != nil {
				code = fail(err)
				return
			}
			fmt.Printf("restored %s from %s\n", path, backup)
		})
		return
	}
}

func statusAction(path string) action {
	return func(ctx context.Context, scope dscope.Scope) (code int) {
		scope.Call(func(
			status patches.Status,
			backups patches.Backups,
		) {
			report, err := status(ctx, path)
			if err != nil {
				code = fail(err)
				return
			}
			state := "not patched"
			if report.Patched {
				state = "patched"
			} else {
				code = exitFailure
			}
			fmt.Printf("%s: version %s, %s\n", path, report.Version, state)
			if list, err := backups(path); err == nil && len(list) > 0 {
				fmt.Printf("latest backup: %s\n", list[0])
			}
		})
		return
	}
}

func inspectAction(path string) action {
	return func(ctx context.Context, scope dscope.Scope) (code int) {
		scope.Call(func(
			plan patches.Plan,
			tap PlanTap,
		) {
			p, err := plan(ctx, path)
			if err != nil {
				code = fail(err)
				return
			}
			if err := writeInspect(os.Stdout, p, isTerminal(os.Stdout)); err != nil {
				code = fail(err)
				return
			}
			if err := tap(ctx, p); err != nil {
				code = fail(err)
				return
			}
		})
		return
	}
}
