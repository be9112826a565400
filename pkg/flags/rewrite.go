// pkg/flags/rewrite.go
package flags

import (
	"regexp"
	"strings"

	"github.com/arc-language/teaconf/pkg/core"
)

// GenDir is the generated-sources directory inside a V8 compile directory
const GenDir = "gen"

var (
	bundleRe = regexp.MustCompile(`(\.\./)+Applications/`)
	genRe    = regexp.MustCompile(`-I` + GenDir)
)

// Rewriter anchors paths from a ninja descriptor, which are relative to the
// compile directory, to absolute locations
type Rewriter struct {
	BaseDir    string // V8 checkout
	CompileDir string // V8 out/<arch>.release
}

// NewRewriter builds a Rewriter from V8_BASEDIR and V8_COMPILEDIR
func NewRewriter(params *core.Params) Rewriter {
	return Rewriter{
		BaseDir:    params.Value(core.KeyV8BaseDir),
		CompileDir: params.Value(core.KeyV8CompileDir),
	}
}

// Rewrite applies, in order:
//   - ../../../Applications/ (any depth) -> /Applications/
//   - ../.. -> BaseDir
//   - -Igen -> -I<CompileDir>/gen
//
// The bundle rule must run first or ../.. would eat its prefix.
func (r Rewriter) Rewrite(s string) string {
	s = bundleRe.ReplaceAllLiteralString(s, "/Applications/")
	s = strings.ReplaceAll(s, "../..", r.BaseDir)
	s = genRe.ReplaceAllLiteralString(s, "-I"+r.CompileDir+"/"+GenDir)
	return s
}
