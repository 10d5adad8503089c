package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/manivaultstudio/plugintable/pkg/compat"
	"github.com/manivaultstudio/plugintable/pkg/errors"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLink    = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleRepoName = lipgloss.NewStyle().Foreground(colorWhite).Width(28)
	styleCategory = lipgloss.NewStyle().Foreground(colorGray).Width(10)
)

// categoryColors tints the category column of the repos listing.
var categoryColors = map[compat.Category]lipgloss.Color{
	compat.CategoryView:     colorCyan,
	compat.CategoryAnalysis: colorGreen,
	compat.CategoryIO:       colorBlue,
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// PrintError prints a fatal error without its code prefix.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+errors.UserMessage(err))
}

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

// =============================================================================
// Catalog Listing
// =============================================================================

// printCatalog lists the repositories of cat, one per line, in catalog order.
func printCatalog(w io.Writer, cat compat.Catalog) {
	noun := "repositories"
	if len(cat.Repositories) == 1 {
		noun = "repository"
	}
	fmt.Fprintln(w, styleTitle.Render(cat.Owner)+styleDim.Render(fmt.Sprintf(" · %d %s", len(cat.Repositories), noun)))
	for _, r := range cat.Repositories {
		category := styleCategory.Foreground(categoryColors[r.Category]).Render(string(r.Category))
		fmt.Fprintln(w, "  "+styleRepoName.Render(r.Name)+category+styleDim.Render(r.Branch))
	}
}

// printRepoLink prints the repository URL of a resolved row.
func printRepoLink(w io.Writer, row compat.Row) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleLink.Render(row.RepoURL))
}
