package imeconfigs

import (
	"github.com/reusee/imefix/cmds"
	"github.com/reusee/imefix/configs"
	"github.com/reusee/imefix/vars"
)

// StrategyName selects how a bundle is patched. Names are checked by the
// patches package.
type StrategyName string

const DefaultStrategy StrategyName = "replace"

var strategyFlag = cmds.Var[string]("-strategy")

func (Module) StrategyName(
	loader configs.Loader,
) StrategyName {
	return StrategyName(vars.FirstNonZero(
		*strategyFlag,
		configs.First[string](loader, "strategy"),
		string(DefaultStrategy),
	))
}

// Verify reports whether synthesized code is executed against sample batches
// before anything is written.
type Verify bool

var noVerifyFlag = cmds.Switch("-no-verify")

func (Module) Verify(
	loader configs.Loader,
) Verify {
	if *noVerifyFlag {
		return false
	}
	if v := configs.First[*bool](loader, "verify"); v != nil {
		return Verify(*v)
	}
	return true
}
