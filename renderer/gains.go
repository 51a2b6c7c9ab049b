// Package renderer turns computed reports into markdown and CSV text.
package renderer

import (
	"fmt"
	"strings"

	cryptax "github.com/MatthewLM/gocryptax"
)

// GainsMarkdown renders the capital gain summary: realized gains per asset
// and the Section 104 holdings standing at the end of the range.
func GainsMarkdown(report *cryptax.GainsReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Capital Gain Calculation %s - %s\n\n",
		report.Range.From.Pretty(), report.Range.To.Pretty())

	fmt.Fprintln(&b, "| Asset | Acquisition Cost | Disposal Value | Gain / Loss |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, ag := range report.Assets {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			ag.Asset, ag.Gain.Cost, ag.Gain.Value, ag.Gain.Gain())
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | **%s** | **%s** |\n\n",
		report.Total.Cost, report.Total.Value, report.Total.Gain())

	fmt.Fprintf(&b, "## Section 104 Holdings as of %s\n\n", report.Range.To.Pretty())

	fmt.Fprintln(&b, "| Asset | Amount | Cost | Value | Unrealised Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
	var totalCost, totalValue cryptax.Money
	for _, h := range report.Holdings {
		totalCost = totalCost.Add(h.Cost)
		totalValue = totalValue.Add(h.Value)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			h.Asset, h.Quantity, h.Cost, h.Value, h.Unrealized())
	}
	fmt.Fprintf(&b, "| **Total** | | **%s** | **%s** | **%s** |\n",
		totalCost, totalValue, totalValue.Sub(totalCost))

	return b.String()
}
