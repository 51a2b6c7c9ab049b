package cryptax

import (
	"slices"

	"github.com/MatthewLM/gocryptax/date"
)

// priceSeries is the price history of one asset, quoted in another asset.
type priceSeries struct {
	quotedIn string
	prices   *date.History[Quantity]
}

// PriceTable resolves the value of any tracked asset in the reporting asset.
//
// Each asset carries at most one price series, quoted in some other asset.
// Resolution chains through quoted-in assets until the reporting asset is
// reached: an asset priced in btc, itself priced in gbp, resolves to gbp in
// two hops.
type PriceTable struct {
	reportingAsset string
	series         map[string]*priceSeries
}

// NewPriceTable returns an empty table resolving values into reportingAsset.
func NewPriceTable(reportingAsset string) *PriceTable {
	return &PriceTable{
		reportingAsset: reportingAsset,
		series:         make(map[string]*priceSeries),
	}
}

// ReportingAsset returns the asset all values are resolved into.
func (t *PriceTable) ReportingAsset() string { return t.reportingAsset }

// Set registers the price series for an asset, quoted in quotedIn.
// Any previous series for the asset is replaced.
func (t *PriceTable) Set(asset, quotedIn string, prices *date.History[Quantity]) {
	t.series[asset] = &priceSeries{quotedIn: quotedIn, prices: prices}
}

// Has reports whether the table holds a price series for the asset.
func (t *PriceTable) Has(asset string) bool {
	_, ok := t.series[asset]
	return ok
}

// Price returns the value of one unit of asset in the reporting asset on the
// given date, using for each hop the most recent price at or before that date.
//
// It fails with NoPriceDataError when an asset in the chain has no series at
// all, NoPriceForDateError when a series has no entry early enough, and
// PriceCycleError when the quoted-in chain loops.
func (t *PriceTable) Price(asset string, on date.Date) (Money, error) {
	return t.price(asset, on, nil)
}

func (t *PriceTable) price(asset string, on date.Date, visiting []string) (Money, error) {
	if asset == t.reportingAsset {
		return M(1, t.reportingAsset), nil
	}
	if slices.Contains(visiting, asset) {
		return Money{}, &PriceCycleError{Chain: append(visiting, asset)}
	}
	s, ok := t.series[asset]
	if !ok {
		return Money{}, &NoPriceDataError{Asset: asset}
	}
	rate, ok := s.prices.ValueAsOf(on)
	if !ok {
		return Money{}, &NoPriceForDateError{Asset: asset, Date: on}
	}
	quoted, err := t.price(s.quotedIn, on, append(visiting, asset))
	if err != nil {
		return Money{}, err
	}
	return quoted.Mul(rate), nil
}
