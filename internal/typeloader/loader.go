// Package typeloader locates resources referenced from a document.
package typeloader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Be-ing/sixtyfps/internal/syntax"
)

// Loader resolves relative resource paths for one document: first next
// to the document, then in each include directory. It implements
// lookup.ImportResolver.
type Loader struct {
	// DocumentDir is the directory of the document being resolved.
	DocumentDir string
	IncludeDirs []string
	// Stat defaults to os.Stat; tests replace it.
	Stat func(string) (fs.FileInfo, error)
	Log  logrus.FieldLogger
}

// ForDocument returns a loader for the document at path.
func ForDocument(path string, includeDirs []string, log logrus.FieldLogger) *Loader {
	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Loader{DocumentDir: dir, IncludeDirs: includeDirs, Log: log}
}

// ResolveImportPath returns the first existing candidate for path. When
// nothing exists the path relative to the document is returned so the
// error surfaces where the resource is loaded.
func (l *Loader) ResolveImportPath(_ *syntax.Node, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	rel := filepath.FromSlash(path)
	fallback := filepath.Join(l.DocumentDir, rel)
	for _, dir := range l.candidates() {
		candidate := filepath.Join(dir, rel)
		if l.exists(candidate) {
			return candidate
		}
	}
	if l.Log != nil {
		l.Log.WithField("path", path).Debug("resource not found in include paths")
	}
	return fallback
}

func (l *Loader) candidates() []string {
	out := make([]string, 0, len(l.IncludeDirs)+1)
	if l.DocumentDir != "" {
		out = append(out, l.DocumentDir)
	}
	return append(out, l.IncludeDirs...)
}

func (l *Loader) exists(path string) bool {
	stat := l.Stat
	if stat == nil {
		stat = os.Stat
	}
	_, err := stat(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) && l.Log != nil {
		l.Log.WithError(err).WithField("path", path).Warn("cannot stat resource")
	}
	return err == nil
}
