package compat

import (
	"fmt"

	"github.com/manivaultstudio/plugintable/pkg/errors"
)

// DefaultOwner is the GitHub organization hosting the ManiVault plugins.
const DefaultOwner = "ManiVaultStudio"

// Category tags a plugin by the role it plays in ManiVault.
type Category string

// Supported plugin categories.
const (
	CategoryView     Category = "View"
	CategoryAnalysis Category = "Analysis"
	CategoryIO       Category = "IO"
)

// Categories lists every supported category in display order.
var Categories = []Category{CategoryView, CategoryAnalysis, CategoryIO}

// ParseCategory returns the Category named s. Matching is exact.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidCategory, "unknown category %q (want one of %v)", s, Categories)
}

// RepositorySpec identifies one plugin repository and the branch to inspect.
type RepositorySpec struct {
	Name     string
	Category Category
	Branch   string
}

// Catalog is the ordered set of repositories rendered into one table.
// Rows are produced in the order of Repositories.
type Catalog struct {
	Owner        string
	Repositories []RepositorySpec
}

// RepoURL returns the GitHub web URL of repo under owner.
func RepoURL(owner, repo string) string {
	return fmt.Sprintf("https://github.com/%s/%s", owner, repo)
}
