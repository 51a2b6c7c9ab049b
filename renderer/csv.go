package renderer

import (
	"encoding/csv"
	"io"

	cryptax "github.com/MatthewLM/gocryptax"
)

// DisposalsCSV writes every realized disposal of the report as CSV, one row
// per disposal in date order.
func DisposalsCSV(w io.Writer, report *cryptax.GainsReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Asset", "Cost", "Proceeds", "Gain"}); err != nil {
		return err
	}
	for _, d := range report.Disposals {
		row := []string{
			d.Date.Pretty(),
			d.Asset,
			d.Gain.Cost.StringFixed(2),
			d.Gain.Value.StringFixed(2),
			d.Gain.Gain().StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// IncomeTxsCSV writes every priced income transaction of the report as CSV,
// one row per transaction in date order. Zero figures are left blank.
func IncomeTxsCSV(w io.Writer, report *cryptax.IncomeReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Asset", "Amount", "Price", "Revenue", "Expense", "Note"}); err != nil {
		return err
	}
	for _, tx := range report.Transactions {
		row := []string{
			tx.Date.Pretty(),
			tx.Asset,
			tx.Amount.String(),
			blankIfZero(tx.Price),
			blankIfZero(tx.Value.Revenue),
			blankIfZero(tx.Value.Expenditure),
			tx.Note,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func blankIfZero(m cryptax.Money) string {
	if m.IsZero() {
		return ""
	}
	return m.StringFixed(2)
}
