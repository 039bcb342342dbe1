package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// InterchangeExt is the suffix of parser output files next to their .60
// source: ui/main.60 is parsed into ui/main.60.mp.
const InterchangeExt = ".60.mp"

// ListDocuments expands path into the interchange files to resolve. A
// file is taken as is; a directory is walked for *.60.mp files.
func ListDocuments(path string) ([]string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !st.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, InterchangeExt) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, err)
	}
	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// sourcePath is where the .60 source of an interchange file lives. The
// document sits next to its interchange file; an absolute declared path
// wins.
func sourcePath(interchange, declared string) string {
	switch {
	case declared != "" && filepath.IsAbs(declared):
		return declared
	case declared != "":
		return filepath.Join(filepath.Dir(interchange), filepath.Base(declared))
	}
	return strings.TrimSuffix(interchange, ".mp")
}
