package cryptax

import (
	"errors"
	"testing"

	"github.com/MatthewLM/gocryptax/date"
)

// flatPrices builds a price table where every asset has a constant price in
// the reporting asset from 2019-01-01 onwards.
func flatPrices(reporting string, perUnit map[string]float64) *PriceTable {
	prices := NewPriceTable(reporting)
	for a, p := range perUnit {
		prices.Set(a, reporting, series(map[string]float64{"2019-01-01": p}))
	}
	return prices
}

// trade records one gain transaction. Empty asset means no leg on that side.
func trade(h *date.History[GainTx], on, sellAsset string, sellAmt float64, buyAsset string, buyAmt float64) {
	var tx GainTx
	if sellAsset != "" {
		tx.Sell = Leg{Asset: sellAsset, Amount: Q(sellAmt)}
	}
	if buyAsset != "" {
		tx.Buy = Leg{Asset: buyAsset, Amount: Q(buyAmt)}
	}
	h.Insert(date.MustParse(on), tx)
}

func year2020() date.Range {
	return date.NewRange(date.New(2020, 1, 1), date.New(2020, 12, 31))
}

func TestCapitalGainsSameDay(t *testing.T) {
	// Buy 10 btc for 100 and sell them the same day for 150: the same-day rule
	// matches them against each other, nothing reaches the pool.
	gains := new(date.History[GainTx])
	trade(gains, "2020-06-01", "gbp", 100, "btc", 10)
	trade(gains, "2020-06-01", "btc", 10, "gbp", 150)

	as := NewAccountingSystem(gains, nil, flatPrices("gbp", map[string]float64{"btc": 12}))
	report, err := as.CapitalGains(year2020(), GainsOptions{Summary: true})
	if err != nil {
		t.Fatalf("CapitalGains: %v", err)
	}

	if !report.Total.Gain().Equal(M(50, "gbp")) {
		t.Errorf("total gain = %s, want 50", report.Total.Gain().StringFixed(2))
	}
	if !report.Total.Cost.Equal(M(100, "gbp")) || !report.Total.Value.Equal(M(150, "gbp")) {
		t.Errorf("total cost/value = %s/%s, want 100/150",
			report.Total.Cost.StringFixed(2), report.Total.Value.StringFixed(2))
	}
	if len(report.Holdings) != 0 {
		t.Errorf("holdings = %v, want none", report.Holdings)
	}
}

func TestCapitalGainsThirtyDayWindow(t *testing.T) {
	// A disposal matches re-acquisitions 1 to 30 days later. Day 30 is the
	// last day in; day 31 is out and leaves the disposal to the pool.
	prices := flatPrices("gbp", map[string]float64{"btc": 100})

	t.Run("day 30 matches", func(t *testing.T) {
		gains := new(date.History[GainTx])
		trade(gains, "2020-01-01", "btc", 5, "gbp", 500)
		trade(gains, "2020-01-31", "gbp", 400, "btc", 5)

		as := NewAccountingSystem(gains, nil, prices)
		report, err := as.CapitalGains(year2020(), GainsOptions{Summary: true})
		if err != nil {
			t.Fatalf("CapitalGains: %v", err)
		}
		if !report.Total.Gain().Equal(M(100, "gbp")) {
			t.Errorf("total gain = %s, want 100", report.Total.Gain().StringFixed(2))
		}
	})

	t.Run("day 31 falls to the pool", func(t *testing.T) {
		gains := new(date.History[GainTx])
		trade(gains, "2019-12-01", "gbp", 300, "btc", 5) // pooled before the range
		trade(gains, "2020-01-01", "btc", 5, "gbp", 500)
		trade(gains, "2020-02-01", "gbp", 400, "btc", 5)

		as := NewAccountingSystem(gains, nil, prices)
		report, err := as.CapitalGains(year2020(), GainsOptions{Summary: true})
		if err != nil {
			t.Fatalf("CapitalGains: %v", err)
		}
		// The disposal draws its cost from the pre-range pool, not from the
		// later re-acquisition.
		if !report.Total.Gain().Equal(M(200, "gbp")) {
			t.Errorf("total gain = %s, want 200", report.Total.Gain().StringFixed(2))
		}
		if len(report.Holdings) != 1 {
			t.Fatalf("holdings = %v, want exactly btc", report.Holdings)
		}
		h := report.Holdings[0]
		if !h.Quantity.Equal(Q(5)) || !h.Cost.Equal(M(400, "gbp")) {
			t.Errorf("btc holding = %s units at cost %s, want 5 at 400", h.Quantity, h.Cost.StringFixed(2))
		}
		if !h.Value.Equal(M(500, "gbp")) {
			t.Errorf("btc holding value = %s, want 500", h.Value.StringFixed(2))
		}
	})
}

func TestCapitalGainsNearestAcquisitionFirst(t *testing.T) {
	// Two later acquisitions both fit the window; the earlier one is matched
	// and the later one remains for the pool.
	gains := new(date.History[GainTx])
	trade(gains, "2020-01-01", "btc", 5, "gbp", 500)
	trade(gains, "2020-01-05", "gbp", 300, "btc", 5)
	trade(gains, "2020-01-20", "gbp", 600, "btc", 5)

	as := NewAccountingSystem(gains, nil, flatPrices("gbp", map[string]float64{"btc": 100}))
	report, err := as.CapitalGains(year2020(), GainsOptions{Summary: true})
	if err != nil {
		t.Fatalf("CapitalGains: %v", err)
	}

	if !report.Total.Gain().Equal(M(200, "gbp")) {
		t.Errorf("total gain = %s, want 200 (matched against the nearest acquisition)",
			report.Total.Gain().StringFixed(2))
	}
	if len(report.Holdings) != 1 || !report.Holdings[0].Cost.Equal(M(600, "gbp")) {
		t.Errorf("holdings = %v, want 5 btc at cost 600", report.Holdings)
	}
}

func TestCapitalGainsSection104AverageCost(t *testing.T) {
	// 10 at 1000 plus 10 at 2000 pool to 20 at 3000; disposing 10 extracts
	// half of the pooled cost.
	gains := new(date.History[GainTx])
	trade(gains, "2020-01-01", "gbp", 1000, "btc", 10)
	trade(gains, "2020-02-01", "gbp", 2000, "btc", 10)
	trade(gains, "2020-06-01", "btc", 10, "gbp", 3000)

	as := NewAccountingSystem(gains, nil, flatPrices("gbp", map[string]float64{"btc": 250}))
	report, err := as.CapitalGains(year2020(), GainsOptions{Summary: true})
	if err != nil {
		t.Fatalf("CapitalGains: %v", err)
	}

	if !report.Total.Cost.Equal(M(1500, "gbp")) {
		t.Errorf("total cost = %s, want 1500", report.Total.Cost.StringFixed(2))
	}
	if !report.Total.Gain().Equal(M(1500, "gbp")) {
		t.Errorf("total gain = %s, want 1500", report.Total.Gain().StringFixed(2))
	}
	if len(report.Holdings) != 1 {
		t.Fatalf("holdings = %v, want exactly btc", report.Holdings)
	}
	h := report.Holdings[0]
	if !h.Quantity.Equal(Q(10)) || !h.Cost.Equal(M(1500, "gbp")) {
		t.Errorf("btc holding = %s units at cost %s, want 10 at 1500", h.Quantity, h.Cost.StringFixed(2))
	}
	if !h.Unrealized().Equal(M(1000, "gbp")) {
		t.Errorf("unrealized gain = %s, want 1000", h.Unrealized().StringFixed(2))
	}
}

func TestCapitalGainsOutOfRangeDisposalNotCounted(t *testing.T) {
	// A disposal before the reporting range still consumes the pool, it just
	// does not contribute to the reported gain.
	gains := new(date.History[GainTx])
	trade(gains, "2019-03-01", "gbp", 1000, "btc", 10)
	trade(gains, "2019-06-01", "btc", 5, "gbp", 900)
	trade(gains, "2020-06-01", "btc", 5, "gbp", 800)

	as := NewAccountingSystem(gains, nil, flatPrices("gbp", map[string]float64{"btc": 100}))
	report, err := as.CapitalGains(year2020(), GainsOptions{Summary: true, Disposals: true})
	if err != nil {
		t.Fatalf("CapitalGains: %v", err)
	}

	if !report.Total.Gain().Equal(M(300, "gbp")) {
		t.Errorf("total gain = %s, want 300 (only the 2020 disposal)", report.Total.Gain().StringFixed(2))
	}
	if len(report.Disposals) != 1 {
		t.Fatalf("disposals = %v, want only the 2020 one", report.Disposals)
	}
	if report.Disposals[0].Date != date.New(2020, 6, 1) {
		t.Errorf("disposal date = %s, want 2020-06-01", report.Disposals[0].Date)
	}
}

func TestCapitalGainsCounterAssetValuation(t *testing.T) {
	// For a crypto-to-crypto trade each side is valued at the market value of
	// the opposite side.
	gains := new(date.History[GainTx])
	trade(gains, "2020-01-01", "gbp", 3000, "btc", 1)
	trade(gains, "2020-02-01", "btc", 1, "eth", 10)
	trade(gains, "2020-06-01", "eth", 10, "gbp", 6000)

	prices := flatPrices("gbp", map[string]float64{"btc": 5000, "eth": 400})
	as := NewAccountingSystem(gains, nil, prices)
	report, err := as.CapitalGains(year2020(), GainsOptions{Summary: true})
	if err != nil {
		t.Fatalf("CapitalGains: %v", err)
	}

	want := map[string]float64{
		"btc": 1000, // proceeds 10 eth * 400, cost 3000
		"eth": 1000, // proceeds 6000, cost 1 btc * 5000
	}
	if len(report.Assets) != len(want) {
		t.Fatalf("assets = %v, want btc and eth", report.Assets)
	}
	for _, ag := range report.Assets {
		if !ag.Gain.Gain().Equal(M(want[ag.Asset], "gbp")) {
			t.Errorf("%s gain = %s, want %v", ag.Asset, ag.Gain.Gain().StringFixed(2), want[ag.Asset])
		}
	}
	if !report.Total.Gain().Equal(M(2000, "gbp")) {
		t.Errorf("total gain = %s, want 2000", report.Total.Gain().StringFixed(2))
	}
}

func TestCapitalGainsDisposalList(t *testing.T) {
	gains := new(date.History[GainTx])
	trade(gains, "2020-01-10", "gbp", 1000, "btc", 10)
	trade(gains, "2020-01-10", "gbp", 2000, "eth", 20)
	trade(gains, "2020-05-01", "eth", 20, "gbp", 2500)
	trade(gains, "2020-03-01", "btc", 10, "gbp", 1200)

	prices := flatPrices("gbp", map[string]float64{"btc": 100, "eth": 100})
	as := NewAccountingSystem(gains, nil, prices)
	report, err := as.CapitalGains(year2020(), GainsOptions{Disposals: true})
	if err != nil {
		t.Fatalf("CapitalGains: %v", err)
	}

	if len(report.Disposals) != 2 {
		t.Fatalf("disposals = %v, want 2", report.Disposals)
	}
	// Date order regardless of per-asset processing order.
	first, second := report.Disposals[0], report.Disposals[1]
	if first.Date != date.New(2020, 3, 1) || first.Asset != "btc" {
		t.Errorf("first disposal = %s %s, want 2020-03-01 btc", first.Date, first.Asset)
	}
	if second.Date != date.New(2020, 5, 1) || second.Asset != "eth" {
		t.Errorf("second disposal = %s %s, want 2020-05-01 eth", second.Date, second.Asset)
	}
	if !first.Gain.Gain().Equal(M(200, "gbp")) || !second.Gain.Gain().Equal(M(500, "gbp")) {
		t.Errorf("disposal gains = %s, %s, want 200 and 500",
			first.Gain.Gain().StringFixed(2), second.Gain.Gain().StringFixed(2))
	}
}

func TestCapitalGainsDisposingMoreThanHeld(t *testing.T) {
	gains := new(date.History[GainTx])
	trade(gains, "2020-01-01", "gbp", 100, "btc", 1)
	trade(gains, "2020-06-01", "btc", 2, "gbp", 400)

	as := NewAccountingSystem(gains, nil, flatPrices("gbp", map[string]float64{"btc": 100}))
	_, err := as.CapitalGains(year2020(), GainsOptions{Summary: true})

	var short *InsufficientPoolError
	if !errors.As(err, &short) {
		t.Fatalf("CapitalGains error = %v, want InsufficientPoolError", err)
	}
	if short.Asset != "btc" || short.Date != date.New(2020, 6, 1) {
		t.Errorf("error context = %q %s, want btc 2020-06-01", short.Asset, short.Date)
	}
}
