package cryptax

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/MatthewLM/gocryptax/date"
)

// bedAndBreakfastDays is the length of the HMRC 30-day matching window.
const bedAndBreakfastDays = 30

// Gain is a realized result: the matched acquisition cost and the disposal
// value. It is purely additive, so per-asset and total figures merge with Add.
type Gain struct {
	Cost  Money
	Value Money
}

// Gain returns the realized gain (or loss, when negative): value minus cost.
func (g Gain) Gain() Money { return g.Value.Sub(g.Cost) }

// Add combines two gains.
func (g Gain) Add(o Gain) Gain { return Gain{Cost: g.Cost.Add(o.Cost), Value: g.Value.Add(o.Value)} }

// AssetGain is the accumulated gain of a single asset.
type AssetGain struct {
	Asset string
	Gain  Gain
}

// Disposal is a single realized disposal event.
type Disposal struct {
	Date  date.Date
	Asset string
	Gain  Gain
}

// Holding is the Section 104 pool of one asset at the end of the reporting
// range, valued at that date.
type Holding struct {
	Asset    string
	Quantity Quantity
	Cost     Money
	Value    Money
}

// Unrealized returns the unrealized gain of the holding: its value at the
// valuation date minus its pooled cost.
func (h Holding) Unrealized() Money { return h.Value.Sub(h.Cost) }

// GainsOptions selects which views the calculation produces. Both may be
// enabled at once.
type GainsOptions struct {
	Summary   bool // per-asset and total gains, plus end-of-range holdings
	Disposals bool // dated list of every realized disposal
}

// GainsReport contains the results of a capital gains calculation.
type GainsReport struct {
	Range          date.Range
	ReportingAsset string
	Assets         []AssetGain // sorted by asset (Summary)
	Total          Gain        // across all assets (Summary)
	Holdings       []Holding   // sorted by asset (Summary)
	Disposals      []Disposal  // in date order (Disposals)
}

// gainsCalc accumulates the results of one calculation run.
type gainsCalc struct {
	period    date.Range
	opts      GainsOptions
	total     Gain
	byAsset   map[string]Gain
	disposals date.History[Disposal]
}

// apply records a realized gain, provided the disposal date falls within the
// reporting range. Out-of-range disposals still consumed matching amounts and
// pool cost, they are just not counted.
func (c *gainsCalc) apply(asset string, on date.Date, g Gain) {
	if !c.period.Contains(on) {
		return
	}
	if c.opts.Summary {
		c.total = c.total.Add(g)
		c.byAsset[asset] = c.byAsset[asset].Add(g)
	}
	if c.opts.Disposals {
		c.disposals.Insert(on, Disposal{Date: on, Asset: asset, Gain: g})
	}
}

// match matches a disposal against an acquisition: up to min(remaining) of
// both, extracting the proportional part of the acquisition cost and of the
// disposal proceeds. For the same-day rule both arguments are the same flow.
func (c *gainsCalc) match(asset string, on date.Date, disposal, acquisition *dayFlow) {
	amount := disposal.disposed.Min(acquisition.acquired)
	if amount.IsZero() {
		return
	}

	cost := acquisition.acquiredValue.Mul(amount).Div(acquisition.acquired)
	proceeds := disposal.disposedValue.Mul(amount).Div(disposal.disposed)

	c.apply(asset, on, Gain{Cost: cost, Value: proceeds})

	disposal.disposed = disposal.disposed.Sub(amount)
	acquisition.acquired = acquisition.acquired.Sub(amount)
	disposal.disposedValue = disposal.disposedValue.Sub(proceeds)
	acquisition.acquiredValue = acquisition.acquiredValue.Sub(cost)
}

// CapitalGains computes realized gains over the reporting period and the
// Section 104 holdings standing at its end.
//
// Disposals are matched in the HMRC order: same-day acquisitions first, then
// acquisitions within the following 30 days (nearest first), and finally the
// Section 104 pool. Pools accumulate from the dawn of history, not just the
// reporting period; gains are only counted when the disposal date is in range.
func (as *AccountingSystem) CapitalGains(period date.Range, opts GainsOptions) (*GainsReport, error) {
	flowsByAsset, err := as.dailyFlows()
	if err != nil {
		return nil, err
	}

	calc := &gainsCalc{period: period, opts: opts, byAsset: make(map[string]Gain)}
	pools := make(map[string]Pool)

	assets := assetList(flowsByAsset)

	for _, asset := range assets {
		flows := flowsByAsset[asset]

		// Same-day rule: disposals match acquisitions of the identical day
		// before any other rule applies.
		for on, flow := range flows.Values() {
			calc.match(asset, on, flow, flow)
		}

		// Bed-and-breakfasting rule: remaining disposals match acquisitions
		// made 1 to 30 days later, nearest first.
		for on, flow := range flows.Values() {
			if flow.disposed.IsZero() {
				continue
			}
			for _, later := range flows.Between(on.Add(1), on.Add(bedAndBreakfastDays)) {
				calc.match(asset, on, flow, later)
			}
		}

		// Section 104 pool: walk every remaining flow from the very beginning,
		// snapshotting the pool after each day up to the end of the range.
		var pool, endPool Pool
		var pooled, haveEnd bool
		for on, flow := range flows.Values() {
			if !flow.acquired.IsZero() && !flow.disposed.IsZero() {
				// The first two rules leave at most one side of a day unmatched.
				panic(fmt.Sprintf("%s (%s): day still has both an acquisition and a disposal after matching", on, asset))
			}

			if !flow.acquired.IsZero() {
				pool.Add(flow.acquired, flow.acquiredValue)
				pooled = true
			}
			if !flow.disposed.IsZero() {
				cost, err := pool.Dispose(flow.disposed)
				if err != nil {
					var short *InsufficientPoolError
					if errors.As(err, &short) {
						short.Asset, short.Date = asset, on
					}
					return nil, err
				}
				calc.apply(asset, on, Gain{Cost: cost, Value: flow.disposedValue})
				pooled = true
			}

			// Snapshot the pool after each day up to the end of the range; the
			// last snapshot is the holding reported for that end date.
			if pooled && !on.After(period.To) {
				endPool, haveEnd = pool, true
			}
		}
		if haveEnd {
			pools[asset] = endPool
		}
	}

	report := &GainsReport{
		Range:          period,
		ReportingAsset: as.ReportingAsset(),
		Total:          calc.total,
	}

	if opts.Summary {
		for _, asset := range assets {
			if g, ok := calc.byAsset[asset]; ok {
				report.Assets = append(report.Assets, AssetGain{Asset: asset, Gain: g})
			}
		}
		for _, asset := range assets {
			pool, ok := pools[asset]
			if !ok {
				continue
			}
			price, err := as.Prices.Price(asset, period.To)
			if err != nil {
				return nil, err
			}
			report.Holdings = append(report.Holdings, Holding{
				Asset:    asset,
				Quantity: pool.Quantity,
				Cost:     pool.Cost,
				Value:    price.Mul(pool.Quantity),
			})
		}
	}
	if opts.Disposals {
		report.Disposals = slices.Collect(onlyValues(calc.disposals.Values()))
	}

	return report, nil
}

// dayFlow is all of one asset's activity collapsed into a single day: net
// acquired and disposed amounts with their reporting-asset values. Matching
// consumes these fields in place.
type dayFlow struct {
	acquired      Quantity
	acquiredValue Money
	disposed      Quantity
	disposedValue Money
}

// dailyFlows aggregates the gain transactions into one flow history per
// asset. Legs denominated in the reporting asset itself are not tracked.
func (as *AccountingSystem) dailyFlows() (map[string]*date.History[*dayFlow], error) {
	reporting := as.ReportingAsset()
	flowsByAsset := make(map[string]*date.History[*dayFlow])

	dayOf := func(asset string, on date.Date) *dayFlow {
		flows := flowsByAsset[asset]
		if flows == nil {
			flows = new(date.History[*dayFlow])
			flowsByAsset[asset] = flows
		}
		if flow, ok := flows.Get(on); ok {
			return flow
		}
		return flows.Insert(on, new(dayFlow))
	}

	for on, tx := range as.GainTxs.Values() {
		if !tx.Buy.IsZero() && tx.Buy.Asset != reporting {
			value, err := as.legValue(tx.Buy, tx.Sell, on)
			if err != nil {
				return nil, err
			}
			flow := dayOf(tx.Buy.Asset, on)
			flow.acquired = flow.acquired.Add(tx.Buy.Amount)
			flow.acquiredValue = flow.acquiredValue.Add(value)
		}
		if !tx.Sell.IsZero() && tx.Sell.Asset != reporting {
			value, err := as.legValue(tx.Sell, tx.Buy, on)
			if err != nil {
				return nil, err
			}
			flow := dayOf(tx.Sell.Asset, on)
			flow.disposed = flow.disposed.Add(tx.Sell.Amount)
			flow.disposedValue = flow.disposedValue.Add(value)
		}
	}
	return flowsByAsset, nil
}

// onlyValues drops the date keys from a history iteration.
func onlyValues[K, V any](seq iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		seq(func(_ K, v V) bool { return yield(v) })
	}
}

// assetList returns the sorted asset names of a per-asset map.
func assetList[V any](m map[string]V) []string {
	assets := make([]string, 0, len(m))
	for asset := range m {
		assets = append(assets, asset)
	}
	slices.Sort(assets)
	return assets
}
