package compat

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableLines(t *testing.T) {
	var tbl Table
	specs := []RepositorySpec{
		{Name: "Scatterplot", Category: CategoryView, Branch: "master"},
		{Name: "PcaPlugin", Category: CategoryAnalysis, Branch: "main"},
		{Name: "BinIO", Category: CategoryIO, Branch: "master"},
	}
	for _, s := range specs {
		tbl.Append(Resolve(DefaultOwner, s, "release/core_1.3/", Metadata{}))
	}

	lines := tbl.Lines()
	if len(lines) != 2+len(specs) {
		t.Fatalf("got %d lines, want %d", len(lines), 2+len(specs))
	}
	if lines[0] != "| Plugin | Type | Compatible Core | Version | Active | Status |" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "|--------|:----:|:--------:|:----------------:|:------:|:------:|" {
		t.Errorf("alignment = %q", lines[1])
	}
	for i, s := range specs {
		if !strings.HasPrefix(lines[i+2], "| ["+s.Name+"]") {
			t.Errorf("line %d = %q, want row for %s", i+2, lines[i+2], s.Name)
		}
	}
	if tbl.Len() != len(specs) {
		t.Errorf("Len() = %d, want %d", tbl.Len(), len(specs))
	}
}

func TestTableWriteTo(t *testing.T) {
	var tbl Table
	var buf bytes.Buffer
	n, err := tbl.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error: %v", err)
	}
	if int(n) != buf.Len() {
		t.Errorf("WriteTo() n = %d, buffer has %d bytes", n, buf.Len())
	}
	want := strings.Join(tableHeader, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("WriteTo() = %q, want %q", buf.String(), want)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %q, %v", c, got, err)
		}
	}
	for _, bad := range []string{"", "view", "Loader"} {
		if _, err := ParseCategory(bad); err == nil {
			t.Errorf("ParseCategory(%q) error = nil, want error", bad)
		}
	}
}
