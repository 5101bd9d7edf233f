package patches

import (
	"context"
	"fmt"

	"github.com/reusee/imefix/blocks"
	"github.com/reusee/imefix/imeconfigs"
	"github.com/reusee/imefix/roles"
	"github.com/reusee/imefix/sims"
	"github.com/reusee/imefix/synths"
)

// Strategy decides where a fix goes and what it looks like.
type Strategy interface {
	Name() imeconfigs.StrategyName
	Locate(text string, b roles.Bindings) (blocks.Target, error)
	Synthesize(b roles.Bindings, target blocks.Target) string
	// Scenarios are the batches the synthesized code must reconcile correctly.
	Scenarios() []sims.Scenario
	Simulate(ctx context.Context, artifact string, b roles.Bindings, sc sims.Scenario) (sims.Result, error)
}

func NewStrategy(name imeconfigs.StrategyName, locator blocks.Locator) (Strategy, error) {
	switch name {
	case "replace", "":
		return ReplaceStrategy{Locator: locator}, nil
	case "augment":
		return AugmentStrategy{Locator: locator}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ReplaceStrategy swaps the whole marker block for the pending-insert stack
// version.
type ReplaceStrategy struct {
	Locator blocks.Locator
}

var _ Strategy = ReplaceStrategy{}

func (ReplaceStrategy) Name() imeconfigs.StrategyName {
	return "replace"
}

func (r ReplaceStrategy) Locate(text string, b roles.Bindings) (blocks.Target, error) {
	return r.Locator.LocateBlock(text, b)
}

func (ReplaceStrategy) Synthesize(b roles.Bindings, target blocks.Target) string {
	return synths.Replacement(b, target.Prefix)
}

func (ReplaceStrategy) Scenarios() []sims.Scenario {
	return []sims.Scenario{
		sims.Interleaved,
		sims.SingleGroup,
		sims.DeleteOnly,
		sims.MidText,
	}
}

func (ReplaceStrategy) Simulate(ctx context.Context, artifact string, b roles.Bindings, sc sims.Scenario) (sims.Result, error) {
	return sims.RunBlock(ctx, artifact, b, sc)
}

// AugmentStrategy leaves the upstream block alone and inserts the text after
// the last marker once upstream has retreated. It only handles batches with
// one delete/insert group.
type AugmentStrategy struct {
	Locator blocks.Locator
}

var _ Strategy = AugmentStrategy{}

func (AugmentStrategy) Name() imeconfigs.StrategyName {
	return "augment"
}

func (a AugmentStrategy) Locate(text string, b roles.Bindings) (blocks.Target, error) {
	return a.Locator.LocateInsertionPoint(text, b)
}

func (AugmentStrategy) Synthesize(b roles.Bindings, _ blocks.Target) string {
	return synths.Augmentation(b)
}

func (AugmentStrategy) Scenarios() []sims.Scenario {
	return []sims.Scenario{
		sims.SingleGroup,
		sims.DeleteOnly,
	}
}

func (AugmentStrategy) Simulate(ctx context.Context, artifact string, b roles.Bindings, sc sims.Scenario) (sims.Result, error) {
	return sims.RunAugmentation(ctx, artifact, b, sc)
}
