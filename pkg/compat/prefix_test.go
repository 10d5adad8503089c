package compat

import "testing"

func TestCorePrefixCoreVersion(t *testing.T) {
	tests := []struct {
		prefix CorePrefix
		want   string
	}{
		{"release/core_1.3/", "1.3"},
		{"release/core_1.3", "1.3"},
		{"release/core_1.3///", "1.3"},
		{"release/core_2.0.1/", "2.0.1"},
		{"custom/1.3/", "custom/1.3"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := tt.prefix.CoreVersion(); got != tt.want {
			t.Errorf("CorePrefix(%q).CoreVersion() = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}

func TestCorePrefixSuffix(t *testing.T) {
	p := CorePrefix("release/core_1.3/")

	tests := []struct {
		branch     string
		wantSuffix string
		wantOK     bool
	}{
		{"release/core_1.3/alpha", "alpha", true},
		{"release/core_1.3/", "", true},
		{"release/core_1.3", "", false},
		{"main", "", false},
		{"release/core_1.2/alpha", "", false},
	}

	for _, tt := range tests {
		suffix, ok := p.Suffix(tt.branch)
		if ok != tt.wantOK || suffix != tt.wantSuffix {
			t.Errorf("Suffix(%q) = %q, %v; want %q, %v", tt.branch, suffix, ok, tt.wantSuffix, tt.wantOK)
		}
	}
}

func TestCorePrefixConventional(t *testing.T) {
	tests := []struct {
		prefix CorePrefix
		want   bool
	}{
		{"release/core_1.3/", true},
		{"release/core_1.3", false},
		{"release/core_/", false},
		{"feature/", false},
	}

	for _, tt := range tests {
		if got := tt.prefix.Conventional(); got != tt.want {
			t.Errorf("CorePrefix(%q).Conventional() = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}
