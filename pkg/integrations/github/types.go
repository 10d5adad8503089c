package github

// Branch is a repository branch as listed by the GitHub API.
type Branch struct {
	Name string `json:"name"`
}

// branchResponse is one element of GET /repos/{owner}/{repo}/branches.
// Only the name is read; commit and protection details are ignored.
type branchResponse struct {
	Name string `json:"name"`
}
