// pkg/resolver/stage.go
package resolver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrHeaderNotFound indicates a header to stage exists under none of the system roots
	ErrHeaderNotFound = errors.New("header not found")

	// ErrUnsafePath indicates a header path that is absolute or leaves the staging directory
	ErrUnsafePath = errors.New("header path escapes staging directory")
)

// Stager copies system headers into a local directory the build can include
type Stager struct {
	Roots []string // searched in order
	Dir   string   // staging directory
}

// target returns where rel is staged. rel must stay inside the staging directory.
func (s *Stager) target(rel string) (string, error) {
	clean := filepath.Clean(rel)
	if filepath.IsAbs(clean) || clean == "." || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, rel)
	}
	return filepath.Join(s.Dir, clean), nil
}

// find returns the first root containing rel
func (s *Stager) find(rel string) (string, error) {
	for _, root := range s.Roots {
		src := filepath.Join(root, rel)
		if _, err := os.Stat(src); err == nil {
			return src, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %v", ErrHeaderNotFound, rel, s.Roots)
}

// StageFile copies one header, creating parent directories as needed
func (s *Stager) StageFile(rel string) (string, error) {
	dst, err := s.target(rel)
	if err != nil {
		return "", err
	}
	src, err := s.find(rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	if err := copyFile(src, dst); err != nil {
		return "", fmt.Errorf("staging %s: %w", rel, err)
	}
	return dst, nil
}

// StageDir copies a header tree, replacing whatever was staged there before
func (s *Stager) StageDir(rel string) (string, error) {
	dst, err := s.target(rel)
	if err != nil {
		return "", err
	}
	src, err := s.find(rel)
	if err != nil {
		return "", err
	}
	if err := os.RemoveAll(dst); err != nil {
		return "", fmt.Errorf("removing %s: %w", dst, err)
	}
	if err := copyDir(src, dst); err != nil {
		return "", fmt.Errorf("staging %s: %w", rel, err)
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copyDir(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.Type()&os.ModeSymlink != 0:
			target, err := os.Readlink(srcPath)
			if err != nil {
				return err
			}
			if err := os.Symlink(target, dstPath); err != nil {
				return err
			}
		case entry.IsDir():
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		default:
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}
