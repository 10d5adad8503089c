// Package catalog provides the repository table rendered by plugintable.
//
// [Default] returns the built-in ManiVault plugin list. [Load] reads a
// replacement table from a TOML or YAML file so coverage can change without
// rebuilding:
//
//	owner = "ManiVaultStudio"
//
//	[[repository]]
//	name = "Scatterplot"
//	category = "View"
//	branch = "master"
//
// The YAML form uses the same keys:
//
//	owner: ManiVaultStudio
//	repository:
//	  - name: Scatterplot
//	    category: View
//	    branch: master
package catalog

import (
	"github.com/manivaultstudio/plugintable/pkg/compat"
)

var defaultRepositories = []compat.RepositorySpec{
	{Name: "Scatterplot", Category: compat.CategoryView, Branch: "master"},
	{Name: "ImageViewerPlugin", Category: compat.CategoryView, Branch: "master"},
	{Name: "HeatMap", Category: compat.CategoryView, Branch: "master"},
	{Name: "ParallelCoordinatesPlugin", Category: compat.CategoryView, Branch: "master"},
	{Name: "SpectralViewPlugin", Category: compat.CategoryView, Branch: "main"},
	{Name: "t-SNE-Analysis", Category: compat.CategoryAnalysis, Branch: "master"},
	{Name: "MeanShiftClustering", Category: compat.CategoryAnalysis, Branch: "master"},
	{Name: "PcaPlugin", Category: compat.CategoryAnalysis, Branch: "main"},
	{Name: "SpidrPlugin", Category: compat.CategoryAnalysis, Branch: "main"},
	{Name: "BinIO", Category: compat.CategoryIO, Branch: "master"},
	{Name: "ExtCsvLoader", Category: compat.CategoryIO, Branch: "main"},
	{Name: "ImageLoaderPlugin", Category: compat.CategoryIO, Branch: "master"},
	{Name: "HDF5Loader", Category: compat.CategoryIO, Branch: "master"},
	{Name: "UMAP-Plugin", Category: compat.CategoryAnalysis, Branch: "main"},
}

// Default returns the built-in ManiVault plugin catalog. Each call returns a
// fresh copy, so callers may modify the result.
func Default() compat.Catalog {
	repos := make([]compat.RepositorySpec, len(defaultRepositories))
	copy(repos, defaultRepositories)
	return compat.Catalog{Owner: compat.DefaultOwner, Repositories: repos}
}
