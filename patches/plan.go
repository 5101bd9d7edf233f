package patches

import (
	"context"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/imefix/blocks"
	"github.com/reusee/imefix/imeconfigs"
	"github.com/reusee/imefix/logs"
	"github.com/reusee/imefix/roles"
)

// PlanResult is everything a patch run would do, computed without touching
// the file. Bindings, Target, Original and Artifact are empty when Patched.
type PlanResult struct {
	Path     string
	Version  string
	Content  string
	Patched  bool
	Bindings roles.Bindings
	Target   blocks.Target
	// Original is the text the artifact replaces, empty for insertion points
	Original string
	Artifact string
	Strategy Strategy
}

// Apply returns the content with the artifact spliced in.
func (p *PlanResult) Apply() string {
	span := p.Target.Span
	return p.Content[:span.Start] + p.Artifact + p.Content[span.End:]
}

type Plan func(ctx context.Context, path string) (*PlanResult, error)

func (Module) Plan(
	logger logs.Logger,
	resolver roles.Resolver,
	locator blocks.Locator,
	strategyName imeconfigs.StrategyName,
) Plan {
	return func(ctx context.Context, path string) (*PlanResult, error) {
		strategy, err := NewStrategy(strategyName, locator)
		if err != nil {
			return nil, err
		}

		text, err := readText(path)
		if err != nil {
			return nil, err
		}

		ret := &PlanResult{
			Path:     path,
			Version:  Version(text),
			Content:  text,
			Strategy: strategy,
		}
		logger.DebugContext(ctx, "read",
			"path", path,
			"bytes", len(text),
			"version", ret.Version,
		)

		if AlreadyPatched(text) {
			ret.Patched = true
			return ret, nil
		}

		ret.Bindings, err = resolver.Resolve(text)
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "resolved",
			"input", ret.Bindings.Input,
			"state", ret.Bindings.State,
			"cur", ret.Bindings.CurState,
			"text fn", ret.Bindings.TextFn,
			"offset fn", ret.Bindings.OffsetFn,
			"count", ret.Bindings.Count,
			"anchor", ret.Bindings.Anchor.String(),
		)

		ret.Target, err = strategy.Locate(text, ret.Bindings)
		if err != nil {
			return nil, err
		}
		if !ret.Target.Span.Valid(len(text)) {
			return nil, fmt.Errorf("%w: span %s out of range", ErrBlockNotFound, ret.Target.Span)
		}
		logger.DebugContext(ctx, "located",
			"strategy", strategy.Name(),
			"span", ret.Target.Span.String(),
			"prefix", ret.Target.Prefix,
		)

		ret.Original = text[ret.Target.Span.Start:ret.Target.Span.End]
		ret.Artifact = strategy.Synthesize(ret.Bindings, ret.Target)

		return ret, nil
	}
}

func readText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputNotFound, wrap(err))
	}
	if !isText(content) {
		return "", fmt.Errorf("%w: %s is %s", ErrInputNotText, path, mimetype.Detect(content))
	}
	return string(content), nil
}

func isText(content []byte) bool {
	for t := mimetype.Detect(content); t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}
	return false
}
