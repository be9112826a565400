// pkg/ninja/scraper.go
package ninja

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/arc-language/teaconf/pkg/core"
	"github.com/arc-language/teaconf/pkg/flags"
)

// ErrTargetNotFound indicates the descriptor has no link rule for the target
var ErrTargetNotFound = errors.New("link target not found")

// Keys written for the target of interest, after the prefix
const (
	SuffixObjects  = "OBJECTS"
	SuffixArchives = "ARCHIVES"
	SuffixLibPaths = "LIBPATHS"
)

// maxLineSize bounds a single descriptor line; d8's link line alone runs to
// hundreds of kilobytes
const maxLineSize = 64 * 1024 * 1024

// Shim lists link inputs the final link needs but the descriptor does not
// name. Paths are relative to the compile directory.
type Shim struct {
	Objects  []string
	Archives []string
}

// V8Shim is what d8 from the V8 release TeaJS currently pins additionally
// needs when linked outside of V8's own build. Other releases may not.
var V8Shim = Shim{
	Objects: []string{
		"obj/v8_libbase/stack_trace.o",
		"obj/v8_libbase/stack_trace_posix.o",
	},
	Archives: []string{
		"obj/libwee8.a",
	},
}

// LinkTarget holds the link inputs recovered for one target
type LinkTarget struct {
	Name     string
	Objects  []string // absolute object paths
	Archives []string // -l<name> flags, plus shim archive paths
	LibPaths []string // -L<dir> flags
}

// Scraper extracts variables and link inputs for one target
type Scraper struct {
	Target        string // e.g. "./d8"
	Prefix        string // key namespace, e.g. "D8"
	PrivateMarker string // inputs containing this belong to the target's own glue objects
	Shim          Shim
	Logger        logrus.FieldLogger
}

// NewScraper creates a scraper for target with the prefix and private
// object directory derived from the target's base name
func NewScraper(target string) *Scraper {
	base := path.Base(target)
	return &Scraper{
		Target:        target,
		Prefix:        strings.ToUpper(base),
		PrivateMarker: "/" + base + "/",
		Shim:          V8Shim,
		Logger:        logrus.StandardLogger(),
	}
}

// Key returns the namespaced param key for a descriptor variable or list
func (s *Scraper) Key(name string) string {
	return s.Prefix + "_" + strings.ToUpper(name)
}

// ScrapeFile opens a descriptor file (see Open) and scrapes it
func (s *Scraper) ScrapeFile(name string, params *core.Params) (*LinkTarget, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return s.Scrape(f, params)
}

// Scrape reads a descriptor and stores the kept variables and the target's
// link inputs in params. Variables are path-rewritten and sanitized before
// they are stored.
func (s *Scraper) Scrape(r io.Reader, params *core.Params) (*LinkTarget, error) {
	rw := flags.NewRewriter(params)
	compileDir := params.Value(core.KeyV8CompileDir)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		current string
		target  *LinkTarget
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++

		switch st := ParseLine(scanner.Text()).(type) {
		case Assignment:
			if st.Depth != 0 && (st.Depth != ScopedDepth || current != s.Target) {
				continue
			}
			value := flags.Sanitize(rw.Rewrite(st.Value))
			if err := params.Set(s.Key(st.Key), value); err != nil {
				return nil, err
			}

		case LinkRule:
			current = st.Target
			if current != s.Target {
				continue
			}
			if target == nil {
				target = &LinkTarget{Name: s.Target}
			}
			if err := s.collect(target, st.Inputs, compileDir); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}

	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, s.Target)
	}

	s.finish(target, compileDir)

	if err := params.Set(s.Key(SuffixObjects), strings.Join(target.Objects, " ")); err != nil {
		return nil, err
	}
	if err := params.Set(s.Key(SuffixArchives), strings.Join(target.Archives, " ")); err != nil {
		return nil, err
	}
	if err := params.Set(s.Key(SuffixLibPaths), strings.Join(target.LibPaths, " ")); err != nil {
		return nil, err
	}

	return target, nil
}

func (s *Scraper) collect(t *LinkTarget, inputs []string, compileDir string) error {
	for _, in := range inputs {
		if s.PrivateMarker != "" && strings.Contains(in, s.PrivateMarker) {
			s.Logger.Debugf("skipping private input %s", in)
			continue
		}

		switch v := ClassifyInput(in).(type) {
		case Object:
			t.Objects = append(t.Objects, compileDir+"/"+v.Path)
		case Archive:
			t.LibPaths = append(t.LibPaths, "-L"+compileDir+"/"+v.Dir)
			t.Archives = append(t.Archives, "-l"+v.Name)
		case Unrecognized:
			return v.Err
		}
	}
	return nil
}

func (s *Scraper) finish(t *LinkTarget, compileDir string) {
	for _, obj := range s.Shim.Objects {
		t.Objects = append(t.Objects, compileDir+"/"+obj)
	}
	for _, ar := range s.Shim.Archives {
		t.Archives = append(t.Archives, compileDir+"/"+ar)
	}

	t.Objects = core.Unique(t.Objects)
	t.Archives = core.Unique(t.Archives)
	t.LibPaths = core.Unique(t.LibPaths)

	s.Logger.WithFields(logrus.Fields{
		"target":   t.Name,
		"objects":  len(t.Objects),
		"archives": len(t.Archives),
		"libpaths": len(t.LibPaths),
	}).Debug("scraped link inputs")
}
