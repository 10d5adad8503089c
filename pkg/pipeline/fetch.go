package pipeline

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/manivaultstudio/plugintable/pkg/compat"
	"github.com/manivaultstudio/plugintable/pkg/integrations"
	"github.com/manivaultstudio/plugintable/pkg/integrations/github"
)

// Source names where a row's versions came from.
type Source string

const (
	// SourceManifest means PluginInfo.json was found and used.
	SourceManifest Source = "manifest"
	// SourceBranches means the branch list was fetched and used.
	SourceBranches Source = "branches"
	// SourceDefaults means neither source was available.
	SourceDefaults Source = "defaults"
)

// RepoClient is the subset of the GitHub client the fetcher needs.
type RepoClient interface {
	FetchFile(ctx context.Context, owner, repo, branch, path string) ([]byte, error)
	ListBranches(ctx context.Context, owner, repo string) ([]github.Branch, error)
}

// MetadataFetcher retrieves the metadata of one repository.
type MetadataFetcher interface {
	Fetch(ctx context.Context, owner string, spec compat.RepositorySpec) (compat.Metadata, Source)
}

// Fetcher is the default [MetadataFetcher]. It never fails: every transport,
// status or decode error is logged at debug level and treated as absence.
type Fetcher struct {
	client RepoClient
	logger *log.Logger
}

// NewFetcher creates a Fetcher over client. A nil logger uses log.Default().
func NewFetcher(client RepoClient, logger *log.Logger) *Fetcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Fetcher{client: client, logger: logger}
}

// Fetch issues at most two requests: the manifest, and the branch list only
// when the manifest is absent.
func (f *Fetcher) Fetch(ctx context.Context, owner string, spec compat.RepositorySpec) (compat.Metadata, Source) {
	if info := f.fetchManifest(ctx, owner, spec); info != nil {
		return compat.Metadata{Manifest: info}, SourceManifest
	}

	branches, err := f.client.ListBranches(ctx, owner, spec.Name)
	if err != nil {
		f.absorb(spec, "branch list", err)
		return compat.Metadata{}, SourceDefaults
	}
	return compat.Metadata{Branches: github.BranchNames(branches)}, SourceBranches
}

func (f *Fetcher) fetchManifest(ctx context.Context, owner string, spec compat.RepositorySpec) *compat.PluginInfo {
	data, err := f.client.FetchFile(ctx, owner, spec.Name, spec.Branch, compat.ManifestFile)
	if err != nil {
		f.absorb(spec, "manifest", err)
		return nil
	}
	info, err := compat.DecodePluginInfo(data)
	if err != nil {
		f.absorb(spec, "manifest", err)
		return nil
	}
	return info
}

func (f *Fetcher) absorb(spec compat.RepositorySpec, what string, err error) {
	if errors.Is(err, integrations.ErrNotFound) {
		f.logger.Debug(what+" not found", "repo", spec.Name, "branch", spec.Branch)
		return
	}
	f.logger.Debug(what+" unavailable", "repo", spec.Name, "branch", spec.Branch, "err", err)
}
