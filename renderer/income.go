package renderer

import (
	"fmt"
	"strings"

	cryptax "github.com/MatthewLM/gocryptax"
)

// IncomeMarkdown renders the income summary: revenue and expenditure per
// asset and in total.
func IncomeMarkdown(report *cryptax.IncomeReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Income Calculation %s - %s\n\n",
		report.Range.From.Pretty(), report.Range.To.Pretty())

	fmt.Fprintln(&b, "| Asset | Revenue | Expenditure | Total |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, ai := range report.Assets {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			ai.Asset, ai.Value.Revenue, ai.Value.Expenditure, ai.Value.Net())
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%s** |\n",
		report.Total.Revenue, report.Total.Expenditure, report.Total.Net())

	return b.String()
}
