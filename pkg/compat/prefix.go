package compat

import "strings"

// coreReleaseLead is the fixed lead of every core release branch prefix.
const coreReleaseLead = "release/core_"

// CorePrefix is the branch-name prefix of one core release, e.g.
// "release/core_1.3/".
type CorePrefix string

// CoreVersion derives the displayed core version from the prefix:
// "release/core_1.3/" becomes "1.3". A prefix without the "release/core_"
// lead only has its trailing slashes removed.
func (p CorePrefix) CoreVersion() string {
	return strings.TrimRight(strings.TrimPrefix(string(p), coreReleaseLead), "/")
}

// Suffix reports the part of branch following the prefix and whether branch
// starts with the prefix at all. A branch equal to the prefix yields an empty
// suffix.
func (p CorePrefix) Suffix(branch string) (string, bool) {
	if !strings.HasPrefix(branch, string(p)) {
		return "", false
	}
	return strings.TrimPrefix(branch, string(p)), true
}

// Conventional reports whether the prefix follows the
// "release/core_<version>/" convention.
func (p CorePrefix) Conventional() bool {
	s := string(p)
	return strings.HasPrefix(s, coreReleaseLead) && strings.HasSuffix(s, "/") && len(s) > len(coreReleaseLead)+1
}
