package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/manivaultstudio/plugintable/pkg/compat"
	"github.com/manivaultstudio/plugintable/pkg/errors"
	"github.com/manivaultstudio/plugintable/pkg/integrations/github"
)

// Format is a catalog file encoding.
type Format string

// Supported catalog file formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

type catalogFile struct {
	Owner        string     `toml:"owner" yaml:"owner"`
	Repositories []repoFile `toml:"repository" yaml:"repository"`
}

type repoFile struct {
	Name     string `toml:"name" yaml:"name"`
	Category string `toml:"category" yaml:"category"`
	Branch   string `toml:"branch" yaml:"branch"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidConfig, "unsupported catalog file %q: use .toml, .yaml or .yml", path)
	}
}

// Load reads and validates the catalog file at path.
func Load(path string) (compat.Catalog, error) {
	if err := errors.ValidatePath(path); err != nil {
		return compat.Catalog{}, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return compat.Catalog{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return compat.Catalog{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read catalog %s", path)
	}
	return Parse(data, format)
}

// Parse decodes and validates a catalog document. An empty owner defaults
// to [compat.DefaultOwner].
func Parse(data []byte, format Format) (compat.Catalog, error) {
	var f catalogFile
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return compat.Catalog{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode TOML catalog")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return compat.Catalog{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode YAML catalog")
		}
	default:
		return compat.Catalog{}, errors.New(errors.ErrCodeInvalidConfig, "unsupported catalog format %q", format)
	}
	return f.toCatalog()
}

func (f catalogFile) toCatalog() (compat.Catalog, error) {
	owner := f.Owner
	if owner == "" {
		owner = compat.DefaultOwner
	}
	if err := github.ValidateOwner(owner); err != nil {
		return compat.Catalog{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "catalog owner %q", owner)
	}
	if len(f.Repositories) == 0 {
		return compat.Catalog{}, errors.New(errors.ErrCodeInvalidConfig, "catalog lists no repositories")
	}

	seen := make(map[string]bool, len(f.Repositories))
	repos := make([]compat.RepositorySpec, 0, len(f.Repositories))
	for i, r := range f.Repositories {
		if err := github.ValidateRepo(r.Name); err != nil {
			return compat.Catalog{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "repository #%d", i+1)
		}
		if seen[r.Name] {
			return compat.Catalog{}, errors.New(errors.ErrCodeInvalidConfig, "repository %q listed twice", r.Name)
		}
		seen[r.Name] = true

		cat, err := compat.ParseCategory(r.Category)
		if err != nil {
			return compat.Catalog{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "repository %q", r.Name)
		}
		if err := errors.ValidateBranchName(r.Branch); err != nil {
			return compat.Catalog{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "repository %q", r.Name)
		}
		repos = append(repos, compat.RepositorySpec{Name: r.Name, Category: cat, Branch: r.Branch})
	}
	return compat.Catalog{Owner: owner, Repositories: repos}, nil
}
