package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/azure-finops-report-go/internal/domain/entity"
)

// FormatIssueTitle returns the title of the tracking issue.
func FormatIssueTitle(comparison entity.CostComparison) string {
	return fmt.Sprintf("Azure cost report for %s", comparison.Current.Period)
}

// FormatPercentChange renders the change rounded to an integer, or "N/A" when undefined.
func FormatPercentChange(change *float64) string {
	if change == nil {
		return "N/A"
	}
	rounded := math.Round(*change)
	if rounded == 0 {
		rounded = 0 // drops the sign of -0
	}
	return fmt.Sprintf("%.0f%%", rounded)
}

// FormatIssueBody builds the issue intro followed by the resource table of the current period.
func FormatIssueBody(comparison entity.CostComparison) string {
	current, previous := comparison.Current, comparison.Previous

	// Two trailing spaces keep each line on its own row in Markdown.
	var b strings.Builder
	fmt.Fprintf(&b, "Total Azure costs in period %s: **%s** (%s compared to last period).  \n",
		current.Period, withCurrency(current), FormatPercentChange(comparison.PercentChange))
	fmt.Fprintf(&b, "Total Azure costs in period %s: **%s**.  \n", previous.Period, withCurrency(previous))
	fmt.Fprintf(&b, "Total Azure resources in period %s: **%d**.  \n", current.Period, current.TotalNumberOfResources)
	fmt.Fprintf(&b, "Total Azure Resources in period %s: **%d**.  \n\n", previous.Period, previous.TotalNumberOfResources)

	b.WriteString(MarkdownTable(current.Resources))
	return b.String()
}

func withCurrency(r entity.PeriodReport) string {
	if r.Currency == "" {
		return r.TotalCosts
	}
	return r.TotalCosts + " " + r.Currency
}

// MarkdownTable renders the resources as a Markdown table whose columns are
// taken from the first row.
func MarkdownTable(resources []entity.AggregatedResource) string {
	if len(resources) == 0 {
		return "_No resources were billed in this period._\n"
	}

	columns := resources[0].Columns()

	var b strings.Builder
	writeMarkdownRow(&b, columns)
	separators := make([]string, len(columns))
	for i := range separators {
		separators[i] = "---"
	}
	writeMarkdownRow(&b, separators)

	for _, resource := range resources {
		values := resource.Values()
		row := make([]string, len(columns))
		copy(row, values)
		writeMarkdownRow(&b, row)
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer("|", "\\|", "\n", " ", "\r", "")

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, cell := range cells {
		b.WriteString(" ")
		b.WriteString(markdownEscaper.Replace(cell))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
