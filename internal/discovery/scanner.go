package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner finds test source files under the configured include paths.
type Scanner struct {
	extensions map[string]bool
	warnf      func(format string, a ...any)
}

// NewScanner creates a Scanner recognizing the given file extensions.
// warnf receives one message per skipped file and may be nil.
func NewScanner(extensions []string, warnf func(format string, a ...any)) *Scanner {
	extMap := make(map[string]bool)
	for _, ext := range extensions {
		extMap[ext] = true
	}
	return &Scanner{extensions: extMap, warnf: warnf}
}

// Scan walks each include path (a file or a directory, scanned
// recursively) and returns the recognized test files in discovery order.
// Hidden directories are skipped; files with unrecognized extensions are
// skipped with a warning. A missing include path is an error.
func (s *Scanner) Scan(includes []string) ([]string, error) {
	var files []string

	for _, root := range includes {
		root = filepath.Clean(root)
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("include path %s: %w", root, err)
		}

		if !info.IsDir() {
			if !s.extensions[filepath.Ext(root)] {
				s.warn("skipping %s: unrecognized extension", root)
				continue
			}
			files = append(files, filepath.ToSlash(root))
			continue
		}

		err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				name := d.Name()
				if strings.HasPrefix(name, ".") && name != "." && name != ".." {
					return filepath.SkipDir
				}
				return nil
			}

			if !s.extensions[filepath.Ext(path)] {
				s.warn("skipping %s: unrecognized extension", path)
				return nil
			}

			files = append(files, filepath.ToSlash(path))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func (s *Scanner) warn(format string, a ...any) {
	if s.warnf != nil {
		s.warnf(format, a...)
	}
}
