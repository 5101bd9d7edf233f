package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/imefix/cmds"
	"github.com/reusee/imefix/configs"
	"github.com/reusee/imefix/modes"
)

const (
	exitOK = iota
	exitFailure
)

// action runs after all arguments are parsed, so flags after the command
// still apply.
type action func(ctx context.Context, scope dscope.Scope) int

var run action

func setAction(fn func(path string) action) func(string) {
	return func(path string) {
		run = fn(path)
	}
}

func init() {
	cmds.Define("patch", cmds.Func(setAction(patchAction)).
		Desc("fix batched delete marker handling in PATH, keeping a backup").
		Alias("fix", "apply"))
	cmds.Define("restore", cmds.Func(setAction(restoreAction)).
		Desc("restore PATH from its newest backup").
		Alias("unpatch", "remove"))
	cmds.Define("status", cmds.Func(setAction(statusAction)).
		Desc("report version and patch state of PATH, exit 1 when unpatched").
		Alias("check"))
	cmds.Define("inspect", cmds.Func(setAction(inspectAction)).
		Desc("show what patch would change in PATH without writing").
		Alias("plan"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if run == nil {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(exitFailure)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		loader configs.Loader,
	) {
		err = loader.Err()
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(exitFailure)
	}

	os.Exit(run(context.Background(), scope))
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	return exitFailure
}
