package pipeline

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/manivaultstudio/plugintable/pkg/compat"
	"github.com/manivaultstudio/plugintable/pkg/integrations"
	"github.com/manivaultstudio/plugintable/pkg/integrations/github"
)

type fakeClient struct {
	manifest    []byte
	manifestErr error
	branches    []github.Branch
	branchErr   error

	fileCalls   int
	branchCalls int
	lastPath    string
}

func (c *fakeClient) FetchFile(_ context.Context, owner, repo, branch, path string) ([]byte, error) {
	c.fileCalls++
	c.lastPath = fmt.Sprintf("%s/%s/%s/%s", owner, repo, branch, path)
	return c.manifest, c.manifestErr
}

func (c *fakeClient) ListBranches(context.Context, string, string) ([]github.Branch, error) {
	c.branchCalls++
	return c.branches, c.branchErr
}

func TestFetcher_Fetch(t *testing.T) {
	spec := compat.RepositorySpec{Name: "HeatMap", Category: compat.CategoryView, Branch: "master"}

	tests := []struct {
		name            string
		client          *fakeClient
		wantSource      Source
		wantManifest    bool
		wantBranches    []string
		wantBranchCalls int
	}{
		{
			name:            "manifest present",
			client:          &fakeClient{manifest: []byte(`{"name":"Heat Map"}`)},
			wantSource:      SourceManifest,
			wantManifest:    true,
			wantBranchCalls: 0,
		},
		{
			name: "manifest missing",
			client: &fakeClient{
				manifestErr: integrations.ErrNotFound,
				branches:    []github.Branch{{Name: "main"}, {Name: "release/core_1.3/a"}},
			},
			wantSource:      SourceBranches,
			wantBranches:    []string{"main", "release/core_1.3/a"},
			wantBranchCalls: 1,
		},
		{
			name: "manifest transport failure",
			client: &fakeClient{
				manifestErr: fmt.Errorf("%w: dial tcp: i/o timeout", integrations.ErrNetwork),
				branches:    []github.Branch{{Name: "main"}},
			},
			wantSource:      SourceBranches,
			wantBranches:    []string{"main"},
			wantBranchCalls: 1,
		},
		{
			name: "manifest malformed",
			client: &fakeClient{
				manifest: []byte(`{"name":`),
				branches: []github.Branch{{Name: "main"}},
			},
			wantSource:      SourceBranches,
			wantBranches:    []string{"main"},
			wantBranchCalls: 1,
		},
		{
			name: "manifest with a malformed field",
			client: &fakeClient{
				manifest: []byte(`{"name":5,"version":{"core":["2.0"],"plugin":"9"}}`),
				branches: []github.Branch{{Name: "release/core_1.3/b"}},
			},
			wantSource:      SourceManifest,
			wantManifest:    true,
			wantBranchCalls: 0,
		},
		{
			name: "manifest empty object",
			client: &fakeClient{
				manifest: []byte(`{}`),
				branches: []github.Branch{},
			},
			wantSource:      SourceBranches,
			wantBranches:    []string{},
			wantBranchCalls: 1,
		},
		{
			name: "both unavailable",
			client: &fakeClient{
				manifestErr: integrations.ErrNotFound,
				branchErr:   integrations.ErrRateLimited,
			},
			wantSource:      SourceDefaults,
			wantBranchCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFetcher(tt.client, log.New(io.Discard))
			md, source := f.Fetch(context.Background(), "ManiVaultStudio", spec)

			if source != tt.wantSource {
				t.Errorf("source = %q, want %q", source, tt.wantSource)
			}
			if md.HasManifest() != tt.wantManifest {
				t.Errorf("HasManifest() = %v, want %v", md.HasManifest(), tt.wantManifest)
			}
			if len(md.Branches) != len(tt.wantBranches) {
				t.Fatalf("branches = %v, want %v", md.Branches, tt.wantBranches)
			}
			for i := range tt.wantBranches {
				if md.Branches[i] != tt.wantBranches[i] {
					t.Errorf("branches[%d] = %q, want %q", i, md.Branches[i], tt.wantBranches[i])
				}
			}
			if tt.client.fileCalls != 1 {
				t.Errorf("FetchFile called %d times, want 1", tt.client.fileCalls)
			}
			if tt.client.branchCalls != tt.wantBranchCalls {
				t.Errorf("ListBranches called %d times, want %d", tt.client.branchCalls, tt.wantBranchCalls)
			}
			if tt.client.lastPath != "ManiVaultStudio/HeatMap/master/PluginInfo.json" {
				t.Errorf("manifest path = %q", tt.client.lastPath)
			}
		})
	}
}

func TestFetcherNeverReturnsManifestAndBranches(t *testing.T) {
	client := &fakeClient{
		manifest: []byte(`{"version":{"plugin":"1.0"}}`),
		branches: []github.Branch{{Name: "release/core_1.3/x"}},
	}
	md, _ := NewFetcher(client, nil).Fetch(context.Background(), "o", compat.RepositorySpec{Name: "r", Branch: "main"})
	if md.HasManifest() && md.Branches != nil {
		t.Error("metadata carries both a manifest and a branch list")
	}
	if client.branchCalls != 0 {
		t.Errorf("ListBranches called %d times with a manifest present", client.branchCalls)
	}
}
