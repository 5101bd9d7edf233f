package main

import (
	"context"
	"fmt"

	"github.com/reusee/imefix/cmds"
	"github.com/reusee/imefix/debugs"
	"github.com/reusee/imefix/patches"
)

var (
	doTap    = cmds.Switch("-tap")
	evalExpr = cmds.Var[string]("-eval")
)

// PlanTap exposes a plan to starlark, as `plan`, when -tap or -eval is given.
type PlanTap func(ctx context.Context, p *patches.PlanResult) error

func (Module) PlanTap(
	tap debugs.Tap,
	eval debugs.Eval,
) PlanTap {
	return func(ctx context.Context, p *patches.PlanResult) error {
		globals := map[string]any{
			"plan": p,
		}
		if *evalExpr != "" {
			value, err := eval(ctx, *evalExpr, globals)
			if err != nil {
				return err
			}
			fmt.Println(value)
		}
		if *doTap {
			tap(ctx, "inspect "+p.Path, globals)
		}
		return nil
	}
}
