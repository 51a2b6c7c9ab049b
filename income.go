package cryptax

import (
	"github.com/MatthewLM/gocryptax/date"
)

// IncomeValue splits a reporting-asset value into revenue and expenditure.
// Positive values are revenue; zero or negative values are expenditure,
// stored as a positive magnitude. The type is purely additive.
type IncomeValue struct {
	Revenue     Money
	Expenditure Money
}

// NewIncomeValue classifies a value as revenue or expenditure.
func NewIncomeValue(value Money) IncomeValue {
	if value.IsPositive() {
		return IncomeValue{Revenue: value}
	}
	return IncomeValue{Expenditure: value.Neg()}
}

// Add combines two income values.
func (v IncomeValue) Add(o IncomeValue) IncomeValue {
	return IncomeValue{
		Revenue:     v.Revenue.Add(o.Revenue),
		Expenditure: v.Expenditure.Add(o.Expenditure),
	}
}

// Net returns revenue minus expenditure.
func (v IncomeValue) Net() Money { return v.Revenue.Sub(v.Expenditure) }

// AssetIncome is the accumulated income of a single asset.
type AssetIncome struct {
	Asset string
	Value IncomeValue
}

// PricedIncomeTx is an income transaction valued in the reporting asset.
type PricedIncomeTx struct {
	Date   date.Date
	Asset  string
	Amount Quantity
	Price  Money // price of one unit of the asset on that date
	Value  IncomeValue
	Note   string
}

// IncomeReport contains the results of an income calculation.
type IncomeReport struct {
	Range          date.Range
	ReportingAsset string
	Assets         []AssetIncome // sorted by asset
	Total          IncomeValue
	Transactions   []PricedIncomeTx // in date order
}

// Income values every income transaction falling within the period and nets
// revenue against expenditure per asset and in total.
func (as *AccountingSystem) Income(period date.Range) (*IncomeReport, error) {
	report := &IncomeReport{Range: period, ReportingAsset: as.ReportingAsset()}
	byAsset := make(map[string]IncomeValue)

	for on, tx := range as.IncomeTxs.Between(period.From, period.To) {
		price, err := as.Prices.Price(tx.Asset, on)
		if err != nil {
			return nil, err
		}
		value := NewIncomeValue(price.Mul(tx.Amount))
		report.Transactions = append(report.Transactions, PricedIncomeTx{
			Date:   on,
			Asset:  tx.Asset,
			Amount: tx.Amount,
			Price:  price,
			Value:  value,
			Note:   tx.Note,
		})
		report.Total = report.Total.Add(value)
		byAsset[tx.Asset] = byAsset[tx.Asset].Add(value)
	}

	for _, asset := range assetList(byAsset) {
		report.Assets = append(report.Assets, AssetIncome{Asset: asset, Value: byAsset[asset]})
	}
	return report, nil
}
