package cryptax

import (
	"github.com/MatthewLM/gocryptax/date"
)

// AccountingSystem bundles everything one calculation run needs: the gain and
// income transaction histories and the price table. It serves as the central
// point of access for computing capital gains and income reports.
//
// The histories are built once from the input records and are read-only for
// the duration of the run.
type AccountingSystem struct {
	GainTxs   *date.History[GainTx]
	IncomeTxs *date.History[IncomeTx]
	Prices    *PriceTable
}

// NewAccountingSystem creates an accounting system from the parsed inputs.
// Either transaction history may be nil when the corresponding report is not
// requested.
func NewAccountingSystem(gains *date.History[GainTx], income *date.History[IncomeTx], prices *PriceTable) *AccountingSystem {
	if gains == nil {
		gains = new(date.History[GainTx])
	}
	if income == nil {
		income = new(date.History[IncomeTx])
	}
	return &AccountingSystem{GainTxs: gains, IncomeTxs: income, Prices: prices}
}

// ReportingAsset returns the asset all values are reported in.
func (as *AccountingSystem) ReportingAsset() string { return as.Prices.ReportingAsset() }

// legValue values one side of a transaction in the reporting asset on the
// given date. When the other side names an asset, the exchange value of that
// other side is used, per HMRC CG78310; otherwise the side's own market value.
func (as *AccountingSystem) legValue(side, other Leg, on date.Date) (Money, error) {
	if !other.IsZero() {
		price, err := as.Prices.Price(other.Asset, on)
		if err != nil {
			return Money{}, err
		}
		return price.Mul(other.Amount), nil
	}
	price, err := as.Prices.Price(side.Asset, on)
	if err != nil {
		return Money{}, err
	}
	return price.Mul(side.Amount), nil
}
