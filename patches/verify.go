package patches

import (
	"context"
	"fmt"

	"github.com/reusee/imefix/blocks"
	"github.com/reusee/imefix/sims"
)

// verify runs the plan's artifact against the strategy's scenarios. The guard
// prefix refers to bundle variables that do not exist in the VM, so the
// artifact is rendered again without it.
func verify(ctx context.Context, plan *PlanResult) error {
	strategy := plan.Strategy
	probe := strategy.Synthesize(plan.Bindings, blocks.Target{
		Span: plan.Target.Span,
	})
	for _, sc := range strategy.Scenarios() {
		res, err := strategy.Simulate(ctx, probe, plan.Bindings, sc)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrVerifyFailed, err)
		}
		text, offset := sims.Expect(sc)
		if res.Text != text || res.Offset != offset {
			return fmt.Errorf("%w: %s: got %q at %d, want %q at %d",
				ErrVerifyFailed, sc.Name, res.Text, res.Offset, text, offset)
		}
	}
	return nil
}
