package imeconfigs

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/dscope"
	"github.com/reusee/imefix/blocks"
	"github.com/reusee/imefix/configs"
	"github.com/reusee/imefix/logs"
	"github.com/reusee/imefix/modes"
	"github.com/reusee/imefix/roles"
)

func newScope(t *testing.T, paths ...string) dscope.Scope {
	return dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() logs.Writer {
			return io.Discard
		},
		func() ConfigPaths {
			return paths
		},
	)
}

func TestDefaults(t *testing.T) {
	newScope(t).Call(func(
		name StrategyName,
		verify Verify,
		resolver roles.Resolver,
		locator blocks.Locator,
		layout BackupLayout,
	) {
		if name != DefaultStrategy {
			t.Fatalf("got %s", name)
		}
		if !verify {
			t.Fatal("verify should default to on")
		}
		if diff := cmp.Diff(roles.NewResolver(), resolver); diff != "" {
			t.Fatal(diff)
		}
		if diff := cmp.Diff(blocks.NewLocator(), locator); diff != "" {
			t.Fatal(diff)
		}
		if layout != DefaultBackupLayout {
			t.Fatalf("got %s", layout)
		}
	})
}

func TestFirstFileWins(t *testing.T) {
	newScope(t, "testdata/a.cue", "testdata/b.cue").Call(func(
		name StrategyName,
		verify Verify,
		resolver roles.Resolver,
		locator blocks.Locator,
		layout BackupLayout,
	) {
		if name != "augment" {
			t.Fatalf("got %s", name)
		}
		// only b.cue sets verify
		if verify {
			t.Fatal("verify should be off")
		}
		if diff := cmp.Diff(roles.Resolver{
			Lookbehind: roles.DefaultLookbehind,
			Lookahead:  1200,
		}, resolver); diff != "" {
			t.Fatal(diff)
		}
		if diff := cmp.Diff(blocks.Locator{
			RetreatMethods: []string{"backspace", "cursorLeft", "deleteBackward"},
			Before:         100,
			After:          blocks.DefaultNeighborAfter,
		}, locator); diff != "" {
			t.Fatal(diff)
		}
		if layout != "2006-01-02T150405" {
			t.Fatalf("got %s", layout)
		}
	})
}

func TestSchemaRejectsUnknownStrategy(t *testing.T) {
	newScope(t, "testdata/bad.cue").Call(func(
		loader configs.Loader,
	) {
		if err := loader.Err(); err == nil {
			t.Fatal("expected schema error")
		}
	})
}
