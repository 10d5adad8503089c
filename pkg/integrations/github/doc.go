// Package github provides an HTTP client for GitHub repository content.
//
// # Overview
//
// Two endpoints are used, both unauthenticated:
//
//   - raw.githubusercontent.com for files at the tip of a branch
//     ([Client.FetchFile]), e.g. a plugin's PluginInfo.json
//   - api.github.com/repos/{owner}/{repo}/branches for the branch list
//     ([Client.ListBranches]), limited to one page of 100 branches
//
// # Usage
//
//	client := github.NewClient(10 * time.Second)
//
//	data, err := client.FetchFile(ctx, "ManiVaultStudio", "Scatterplot", "master", "PluginInfo.json")
//	if errors.Is(err, integrations.ErrNotFound) {
//	    branches, err := client.ListBranches(ctx, "ManiVaultStudio", "Scatterplot")
//	    // ...
//	}
//
// # Rate Limits
//
// Unauthenticated API requests are limited to 60 per hour per address.
// Exhausted quotas surface as [integrations.ErrRateLimited].
package github
