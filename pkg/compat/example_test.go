package compat_test

import (
	"fmt"
	"os"

	"github.com/manivaultstudio/plugintable/pkg/compat"
)

func ExampleResolve() {
	spec := compat.RepositorySpec{Name: "MeanShiftClustering", Category: compat.CategoryAnalysis, Branch: "master"}
	md := compat.Metadata{Branches: []string{"release/core_1.3/alpha", "release/core_1.3/beta", "main"}}

	row := compat.Resolve(compat.DefaultOwner, spec, "release/core_1.3/", md)
	fmt.Println(row.CoreVersion)
	fmt.Println(row.PluginVersion)
	// Output:
	// 1.3
	// alpha, beta
}

func ExampleDecodePluginInfo() {
	info, _ := compat.DecodePluginInfo([]byte(`{"name":"Spidr","version":{"core":["1.2","1.3"]}}`))
	row := compat.Resolve(compat.DefaultOwner,
		compat.RepositorySpec{Name: "SpidrPlugin", Category: compat.CategoryAnalysis, Branch: "main"},
		"release/core_1.3/", compat.Metadata{Manifest: info})
	fmt.Println(row.PluginName)
	fmt.Println(row.CoreVersion)
	fmt.Println(row.PluginVersion)
	// Output:
	// Spidr
	// 1.2, 1.3
	// N/A
}

func ExampleTable() {
	var tbl compat.Table
	tbl.Append(compat.Row{
		PluginName:    "BinIO",
		RepoURL:       compat.RepoURL(compat.DefaultOwner, "BinIO"),
		Category:      compat.CategoryIO,
		CoreVersion:   "1.3",
		PluginVersion: compat.NotAvailable,
		ActivityBadge: "a",
		BuildBadge:    "b",
	})
	tbl.WriteTo(os.Stdout)
	// Output:
	// | Plugin | Type | Compatible Core | Version | Active | Status |
	// |--------|:----:|:--------:|:----------------:|:------:|:------:|
	// | [BinIO](https://github.com/ManiVaultStudio/BinIO) | IO | 1.3 | N/A | a | b |
}
