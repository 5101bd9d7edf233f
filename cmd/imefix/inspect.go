package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/imefix/patches"
	"github.com/reusee/imefix/scans"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

type inspectReport struct {
	Path     string          `yaml:"path"`
	Version  string          `yaml:"version"`
	Patched  bool            `yaml:"patched"`
	Strategy string          `yaml:"strategy"`
	Bindings *bindingsReport `yaml:"bindings,omitempty"`
	Target   *targetReport   `yaml:"target,omitempty"`
}

type bindingsReport struct {
	Input    string `yaml:"input"`
	State    string `yaml:"state"`
	CurState string `yaml:"cur_state"`
	TextFn   string `yaml:"text_fn"`
	OffsetFn string `yaml:"offset_fn"`
	Count    string `yaml:"count"`
	Anchor   string `yaml:"anchor"`
	Marker   string `yaml:"marker"`
}

type targetReport struct {
	Start  int    `yaml:"start"`
	End    int    `yaml:"end"`
	Prefix string `yaml:"prefix,omitempty"`
}

func newInspectReport(p *patches.PlanResult) inspectReport {
	ret := inspectReport{
		Path:     p.Path,
		Version:  p.Version,
		Patched:  p.Patched,
		Strategy: string(p.Strategy.Name()),
	}
	if p.Patched {
		return ret
	}
	b := p.Bindings
	ret.Bindings = &bindingsReport{
		Input:    b.Input,
		State:    b.State,
		CurState: b.CurState,
		TextFn:   b.TextFn,
		OffsetFn: b.OffsetFn,
		Count:    b.Count,
		Anchor:   b.Anchor.String(),
		Marker:   visible(string(b.Form)),
	}
	ret.Target = &targetReport{
		Start:  p.Target.Span.Start,
		End:    p.Target.Span.End,
		Prefix: p.Target.Prefix,
	}
	return ret
}

// writeInspect prints the plan as YAML followed by a diff of the replaced
// text against the synthesized code.
func writeInspect(w io.Writer, p *patches.PlanResult, color bool) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newInspectReport(p)); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	if p.Patched {
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(visible(p.Original), visible(p.Artifact), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	var out string
	if color {
		out = dmp.DiffPrettyText(diffs)
	} else {
		out = plainDiff(diffs)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

func plainDiff(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + diff.Text + "+}")
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + diff.Text + "-]")
		case diffmatchpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}

// visible spells out raw markers, which terminals do not show
func visible(s string) string {
	return strings.ReplaceAll(s, scans.Marker, `\x7f`)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
