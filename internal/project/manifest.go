package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the project file looked up from the input path.
const ManifestName = "sixtyfps.toml"

// Manifest is a loaded sixtyfps.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Resolve ResolveConfig `toml:"resolve"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// ResolveConfig tunes the resolving pass. Zero values mean "use the CLI default".
type ResolveConfig struct {
	// IncludePaths are searched, in order, for relative @image-url paths.
	IncludePaths   []string `toml:"include_paths"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Style          string   `toml:"style"`
}

// LoadManifest finds and decodes the manifest above startDir. ok is false
// when there is none.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes and validates one manifest file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if cfg.Resolve.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("%s: [resolve].max_diagnostics must not be negative", path)
	}
	return cfg, nil
}

// IncludeDirs returns the include paths made absolute against the root.
func (m *Manifest) IncludeDirs() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.Config.Resolve.IncludePaths))
	for _, p := range m.Config.Resolve.IncludePaths {
		p = filepath.FromSlash(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(m.Root, p)
		}
		out = append(out, filepath.Clean(p))
	}
	return out
}

// FindManifest returns the nearest sixtyfps.toml in dir or one of its
// parents.
func FindManifest(dir string) (string, bool, error) {
	if dir == "" {
		dir = "."
	}
	cur, err := filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("manifest lookup from %q: %w", dir, err)
	}
	for {
		candidate := filepath.Join(cur, ManifestName)
		info, err := os.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, true, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", false, fmt.Errorf("manifest lookup: %w", err)
		}
		up := filepath.Dir(cur)
		if up == cur {
			return "", false, nil
		}
		cur = up
	}
}
