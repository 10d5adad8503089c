package compat

import "fmt"

// Badge image templates, filled with owner, repository and branch.
const (
	activityBadgeTemplate = "![last commit](https://img.shields.io/github/last-commit/%s/%s/%s)"
	buildBadgeTemplate    = "![ci-build](https://github.com/%s/%s/actions/workflows/build.yml/badge.svg?branch=%s)"
)

// ActivityBadge returns the Markdown image of the shields.io last-commit
// badge for branch.
func ActivityBadge(owner, repo, branch string) string {
	return fmt.Sprintf(activityBadgeTemplate, owner, repo, branch)
}

// BuildBadge returns the Markdown image of the GitHub Actions build.yml
// status badge for branch.
func BuildBadge(owner, repo, branch string) string {
	return fmt.Sprintf(buildBadgeTemplate, owner, repo, branch)
}
