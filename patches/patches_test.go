package patches

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/imefix/imeconfigs"
	"github.com/reusee/imefix/logs"
	"github.com/reusee/imefix/modes"
	"github.com/reusee/imefix/scans"
)

// ⌫ is replaced with a raw marker
const bundleTemplate = `#!/usr/bin/env node
var Fz="Version: 2.1.12";function ct1(){}function lt1(){}` +
	`function Hk(l,QA,S,Q,T){if(QA.ctrl)return;` +
	`if(!QA.backspace&&!QA.delete&&l.includes("⌫")){let $A=(l.match(/\x7f/g)||[]).length,CA=S;` +
	`for(let _A=0;_A<$A;_A++)CA=CA.backspace();if(!S.equals(CA)){if(S.text!==CA.text)Q(CA.text);T(CA.offset)}ct1(),lt1();return}` +
	`let z=S.insert(l);if(!S.equals(z)){if(S.text!==z.text)Q(z.text);T(z.offset)}}`

var bundle = strings.ReplaceAll(bundleTemplate, "⌫", scans.Marker)

func newScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(new(Module), modes.ForTest(t)).Fork(
		append([]any{
			func() logs.Writer {
				return io.Discard
			},
			func() imeconfigs.ConfigPaths {
				return nil
			},
		}, defs...)...,
	)
}

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0640); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}
