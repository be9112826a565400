// pkg/core/bootstrap.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
)

// Well-known param keys
const (
	KeyJobs         = "JOBS"
	KeyCDir         = "CDIR"
	KeyPDir         = "PDIR"
	KeyV8BaseDir    = "V8_BASEDIR"
	KeyV8CompileDir = "V8_COMPILEDIR"
	KeyV8Cpp        = "V8_CPP"
	KeyTeaJSBaseDir = "TEAJS_BASEDIR"
	KeyTeaJSLibPath = "TEAJS_LIBPATH"
	KeyTeaJSVersion = "TEAJS_VERSION"
	KeyInstallRoot  = "INSTALL_ROOT"
	KeyRemote       = "REMOTE"
)

// Bootstrap builds the base params every later step reads: checkout and V8
// locations, version and make options. Overrides from cfg.Set win over
// derived values.
func Bootstrap(cfg *Config) (*Params, error) {
	cdir, err := filepath.Abs(cfg.TeaJSDir)
	if err != nil {
		return nil, fmt.Errorf("resolving teajs dir: %w", err)
	}

	p := NewParams()
	p.Set(KeyJobs, strconv.Itoa(cfg.Jobs))
	p.Set(KeyCDir, cdir)
	p.Set(KeyPDir, filepath.Dir(cdir))

	set := make(map[string]string, len(cfg.Set))
	overrides := make([]string, 0, len(cfg.Set))
	for k, v := range cfg.Set {
		k = strings.ToUpper(k)
		if _, dup := set[k]; !dup {
			overrides = append(overrides, k)
		}
		set[k] = v
	}
	sort.Strings(overrides)

	// V8_COMPILEDIR and V8_CPP follow an overridden V8_BASEDIR unless set themselves
	v8dir, ok := set[KeyV8BaseDir]
	if ok {
		v8dir = strings.TrimSuffix(v8dir, "/")
		set[KeyV8BaseDir] = v8dir
	} else if v8dir = cfg.V8Dir; v8dir == "" {
		v8dir = filepath.Join(filepath.Dir(cdir), "v8_things", "v8")
	} else if v8dir, err = filepath.Abs(v8dir); err != nil {
		return nil, fmt.Errorf("resolving v8 dir: %w", err)
	}
	p.Set(KeyV8BaseDir, v8dir)
	p.Set(KeyV8CompileDir, v8dir+"/out/"+V8Arch(runtime.GOARCH)+".release")

	p.Set(KeyTeaJSBaseDir, cdir)
	p.Set(KeyTeaJSLibPath, cdir+"/lib")

	version, err := readVersion(filepath.Join(cdir, "VERSION"))
	if err != nil {
		return nil, err
	}
	p.Set(KeyTeaJSVersion, version)
	p.Set(KeyV8Cpp, v8dir+"/third_party/llvm-build/Release+Asserts/bin/clang++")

	if cfg.InstallRoot != "" {
		p.Set(KeyInstallRoot, cfg.InstallRoot)
	}
	if cfg.Remote != "" {
		p.Set(KeyRemote, cfg.Remote)
	}

	for _, k := range overrides {
		p.Set(k, set[k])
	}
	p.SetDefault(KeyInstallRoot, "/")

	return p, nil
}

// V8Arch maps a GOARCH to the architecture name V8 uses for its out/ directories
func V8Arch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x64"
	case "386":
		return "ia32"
	default:
		return goarch
	}
}

func readVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading version: %w", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line), nil
}
