package compat

import "strings"

// NotAvailable is displayed when no plugin version can be determined.
const NotAvailable = "N/A"

// versionSep joins multiple versions in one table cell.
const versionSep = ", "

// Metadata is what was fetched for one repository. When Manifest is non-nil
// it is the only source used; Branches is consulted only without a manifest.
type Metadata struct {
	Manifest *PluginInfo
	Branches []string // Branch names in API order
}

// HasManifest reports whether a manifest was found.
func (m Metadata) HasManifest() bool { return m.Manifest != nil }

// Row is one resolved line of the compatibility table.
type Row struct {
	PluginName    string
	RepoURL       string
	Category      Category
	CoreVersion   string
	PluginVersion string
	ActivityBadge string
	BuildBadge    string
}

// Resolve computes the table row for spec from its fetched metadata.
//
// With a manifest, the name, core versions and plugin version come from the
// manifest, falling back to the repository name, the prefix's core version
// (also when the declared list joins to an empty string) and [NotAvailable].
// Without one, the core version is the prefix's and the plugin versions are
// the suffixes of all branches starting with prefix.
func Resolve(owner string, spec RepositorySpec, prefix CorePrefix, md Metadata) Row {
	row := Row{
		PluginName:    spec.Name,
		RepoURL:       RepoURL(owner, spec.Name),
		Category:      spec.Category,
		CoreVersion:   prefix.CoreVersion(),
		PluginVersion: NotAvailable,
		ActivityBadge: ActivityBadge(owner, spec.Name, spec.Branch),
		BuildBadge:    BuildBadge(owner, spec.Name, spec.Branch),
	}

	if md.HasManifest() {
		row.PluginName = md.Manifest.DisplayName(spec.Name)
		// A list of empty strings joins to "", which also falls back.
		if core := strings.Join(md.Manifest.CoreVersions(), versionSep); core != "" {
			row.CoreVersion = core
		}
		if v, ok := md.Manifest.PluginVersion(); ok {
			row.PluginVersion = v
		}
		return row
	}

	if versions := BranchVersions(prefix, md.Branches); len(versions) > 0 {
		row.PluginVersion = strings.Join(versions, versionSep)
	}
	return row
}

// BranchVersions returns the suffix of every branch that starts with prefix,
// preserving branch order.
func BranchVersions(prefix CorePrefix, branches []string) []string {
	var versions []string
	for _, b := range branches {
		if suffix, ok := prefix.Suffix(b); ok {
			versions = append(versions, suffix)
		}
	}
	return versions
}
