package cryptax

import (
	"testing"

	"github.com/MatthewLM/gocryptax/date"
)

func TestIncomeClassifiesRevenueAndExpenditure(t *testing.T) {
	income := new(date.History[IncomeTx])
	income.Insert(date.MustParse("2020-03-01"), IncomeTx{Asset: "btc", Amount: Q(2), Note: "mining"})
	income.Insert(date.MustParse("2020-04-01"), IncomeTx{Asset: "btc", Amount: Q(-0.5), Note: "fees"})

	as := NewAccountingSystem(nil, income, flatPrices("gbp", map[string]float64{"btc": 100}))
	report, err := as.Income(year2020())
	if err != nil {
		t.Fatalf("Income: %v", err)
	}

	if !report.Total.Revenue.Equal(M(200, "gbp")) {
		t.Errorf("revenue = %s, want 200", report.Total.Revenue.StringFixed(2))
	}
	if !report.Total.Expenditure.Equal(M(50, "gbp")) {
		t.Errorf("expenditure = %s, want 50", report.Total.Expenditure.StringFixed(2))
	}
	if !report.Total.Net().Equal(M(150, "gbp")) {
		t.Errorf("net = %s, want 150", report.Total.Net().StringFixed(2))
	}
}

func TestIncomeFiltersToRange(t *testing.T) {
	income := new(date.History[IncomeTx])
	income.Insert(date.MustParse("2019-12-31"), IncomeTx{Asset: "btc", Amount: Q(1)})
	income.Insert(date.MustParse("2020-01-01"), IncomeTx{Asset: "btc", Amount: Q(1)})
	income.Insert(date.MustParse("2020-12-31"), IncomeTx{Asset: "btc", Amount: Q(1)})
	income.Insert(date.MustParse("2021-01-01"), IncomeTx{Asset: "btc", Amount: Q(1)})

	as := NewAccountingSystem(nil, income, flatPrices("gbp", map[string]float64{"btc": 100}))
	report, err := as.Income(year2020())
	if err != nil {
		t.Fatalf("Income: %v", err)
	}

	// Both range boundaries are included.
	if len(report.Transactions) != 2 {
		t.Fatalf("transactions = %v, want the two 2020 ones", report.Transactions)
	}
	if !report.Total.Revenue.Equal(M(200, "gbp")) {
		t.Errorf("revenue = %s, want 200", report.Total.Revenue.StringFixed(2))
	}
}

func TestIncomeValuesAtTransactionDate(t *testing.T) {
	income := new(date.History[IncomeTx])
	income.Insert(date.MustParse("2020-03-01"), IncomeTx{Asset: "btc", Amount: Q(1)})
	income.Insert(date.MustParse("2020-09-01"), IncomeTx{Asset: "btc", Amount: Q(1)})

	prices := NewPriceTable("gbp")
	prices.Set("btc", "gbp", series(map[string]float64{
		"2020-01-01": 100,
		"2020-06-01": 300,
	}))

	as := NewAccountingSystem(nil, income, prices)
	report, err := as.Income(year2020())
	if err != nil {
		t.Fatalf("Income: %v", err)
	}

	if !report.Transactions[0].Price.Equal(M(100, "gbp")) {
		t.Errorf("march price = %s, want 100", report.Transactions[0].Price.StringFixed(2))
	}
	if !report.Transactions[1].Price.Equal(M(300, "gbp")) {
		t.Errorf("september price = %s, want 300", report.Transactions[1].Price.StringFixed(2))
	}
	if !report.Total.Revenue.Equal(M(400, "gbp")) {
		t.Errorf("revenue = %s, want 400", report.Total.Revenue.StringFixed(2))
	}
}

func TestIncomePerAssetTotals(t *testing.T) {
	income := new(date.History[IncomeTx])
	income.Insert(date.MustParse("2020-03-01"), IncomeTx{Asset: "btc", Amount: Q(1)})
	income.Insert(date.MustParse("2020-04-01"), IncomeTx{Asset: "eth", Amount: Q(10)})
	income.Insert(date.MustParse("2020-05-01"), IncomeTx{Asset: "btc", Amount: Q(1)})

	prices := flatPrices("gbp", map[string]float64{"btc": 100, "eth": 10})
	as := NewAccountingSystem(nil, income, prices)
	report, err := as.Income(year2020())
	if err != nil {
		t.Fatalf("Income: %v", err)
	}

	if len(report.Assets) != 2 {
		t.Fatalf("assets = %v, want btc and eth", report.Assets)
	}
	if report.Assets[0].Asset != "btc" || !report.Assets[0].Value.Revenue.Equal(M(200, "gbp")) {
		t.Errorf("btc income = %v, want revenue 200", report.Assets[0])
	}
	if report.Assets[1].Asset != "eth" || !report.Assets[1].Value.Revenue.Equal(M(100, "gbp")) {
		t.Errorf("eth income = %v, want revenue 100", report.Assets[1])
	}
}

func TestNewIncomeValueZeroIsExpenditure(t *testing.T) {
	v := NewIncomeValue(M(0, "gbp"))
	if v.Revenue.IsPositive() {
		t.Errorf("zero value classified as revenue: %v", v)
	}
	if !v.Expenditure.IsZero() {
		t.Errorf("zero value expenditure = %s, want 0", v.Expenditure.StringFixed(2))
	}
}
