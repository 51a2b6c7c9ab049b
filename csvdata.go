package cryptax

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MatthewLM/gocryptax/date"
)

// this file reads the three CSV input streams: gain transactions, income
// transactions and price series. Headers are matched case-insensitively.
// Rows with an empty DATE cell are skipped.

// priceFilePattern names a price series file: <asset>_<quotedasset>.csv
var priceFilePattern = regexp.MustCompile(`^(.+)_(.+)\.csv$`)

// RecordError reports a malformed record in an input CSV file.
type RecordError struct {
	File string
	Line int
	Err  error
}

func (e *RecordError) Error() string { return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err) }
func (e *RecordError) Unwrap() error { return e.Err }

// table gives header-keyed access to the rows of one CSV stream.
type table struct {
	name    string
	columns map[string]int
	reader  *csv.Reader
	line    int
}

func newTable(r io.Reader, name string, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // short rows read as empty optional cells

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read header of %s: %w", name, err)
	}
	t := &table{name: name, columns: make(map[string]int), reader: cr, line: 1}
	for i, col := range header {
		t.columns[strings.ToUpper(strings.TrimSpace(col))] = i
	}
	for _, col := range required {
		if _, ok := t.columns[col]; !ok {
			return nil, &RecordError{File: name, Line: 1, Err: fmt.Errorf("missing column %q", col)}
		}
	}
	return t, nil
}

// next returns the next row, or nil at end of input.
func (t *table) next() ([]string, error) {
	row, err := t.reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", t.name, err)
	}
	t.line++
	return row, nil
}

// get returns the named cell of a row, trimmed. Optional columns that are
// absent read as empty.
func (t *table) get(row []string, col string) string {
	i, ok := t.columns[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *table) errorf(format string, args ...any) error {
	return &RecordError{File: t.name, Line: t.line, Err: fmt.Errorf(format, args...)}
}

func (t *table) date(row []string) (date.Date, bool, error) {
	cell := t.get(row, "DATE")
	if cell == "" {
		return date.Date{}, false, nil
	}
	on, err := date.Parse(cell)
	if err != nil {
		return date.Date{}, false, t.errorf("%w", err)
	}
	return on, true, nil
}

func (t *table) quantity(row []string, col string) (Quantity, error) {
	q, err := ParseQuantity(t.get(row, col))
	if err != nil {
		return Quantity{}, t.errorf("invalid number in column %q: %w", col, err)
	}
	return q, nil
}

// asset normalizes an asset code: trimmed, lower case.
func asset(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// ReadGains decodes gain transactions from one CSV stream with columns
// DATE, SELL ASSET, SELL AMOUNT, BUY ASSET, BUY AMOUNT. 'into' may be nil.
func ReadGains(r io.Reader, name string, into *date.History[GainTx]) (*date.History[GainTx], error) {
	if into == nil {
		into = new(date.History[GainTx])
	}
	t, err := newTable(r, name, "DATE", "SELL ASSET", "SELL AMOUNT", "BUY ASSET", "BUY AMOUNT")
	if err != nil {
		return nil, err
	}
	for {
		row, err := t.next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			return into, nil
		}
		on, ok, err := t.date(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		var tx GainTx
		if a := asset(t.get(row, "SELL ASSET")); a != "" {
			amount, err := t.quantity(row, "SELL AMOUNT")
			if err != nil {
				return nil, err
			}
			tx.Sell = Leg{Asset: a, Amount: amount}
		}
		if a := asset(t.get(row, "BUY ASSET")); a != "" {
			amount, err := t.quantity(row, "BUY AMOUNT")
			if err != nil {
				return nil, err
			}
			tx.Buy = Leg{Asset: a, Amount: amount}
		}
		if tx.Sell.IsZero() && tx.Buy.IsZero() {
			return nil, t.errorf("transaction has neither a sell nor a buy side")
		}
		into.Insert(on, tx)
	}
}

// ReadIncome decodes income transactions from one CSV stream with columns
// DATE, ASSET, AMOUNT and an optional NOTE. 'into' may be nil.
func ReadIncome(r io.Reader, name string, into *date.History[IncomeTx]) (*date.History[IncomeTx], error) {
	if into == nil {
		into = new(date.History[IncomeTx])
	}
	t, err := newTable(r, name, "DATE", "ASSET", "AMOUNT")
	if err != nil {
		return nil, err
	}
	for {
		row, err := t.next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			return into, nil
		}
		on, ok, err := t.date(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		amount, err := t.quantity(row, "AMOUNT")
		if err != nil {
			return nil, err
		}
		into.Insert(on, IncomeTx{
			Asset:  asset(t.get(row, "ASSET")),
			Amount: amount,
			Note:   t.get(row, "NOTE"),
		})
	}
}

// ReadPrices decodes one price series from a CSV stream with columns DATE and
// PRICE.
func ReadPrices(r io.Reader, name string) (*date.History[Quantity], error) {
	prices := new(date.History[Quantity])
	t, err := newTable(r, name, "DATE", "PRICE")
	if err != nil {
		return nil, err
	}
	for {
		row, err := t.next()
		if err != nil {
			return nil, err
		}
		if row == nil {
			return prices, nil
		}
		on, ok, err := t.date(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		price, err := t.quantity(row, "PRICE")
		if err != nil {
			return nil, err
		}
		prices.Insert(on, price)
	}
}

// LoadGains reads every file of a directory as gain transaction CSV and
// merges them into a single history.
func LoadGains(dir string) (*date.History[GainTx], error) {
	history := new(date.History[GainTx])
	err := eachFile(dir, func(path string, f *os.File) error {
		_, err := ReadGains(f, path, history)
		return err
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// LoadIncome reads every file of a directory as income CSV and merges them
// into a single history.
func LoadIncome(dir string) (*date.History[IncomeTx], error) {
	history := new(date.History[IncomeTx])
	err := eachFile(dir, func(path string, f *os.File) error {
		_, err := ReadIncome(f, path, history)
		return err
	})
	if err != nil {
		return nil, err
	}
	return history, nil
}

// LoadPrices builds a price table from a directory of price series files.
// Each file <asset>_<quotedasset>.csv holds the price history of asset
// expressed in quotedasset; files named otherwise are ignored.
func LoadPrices(reportingAsset, dir string) (*PriceTable, error) {
	prices := NewPriceTable(reportingAsset)
	err := eachFile(dir, func(path string, f *os.File) error {
		m := priceFilePattern.FindStringSubmatch(strings.ToLower(filepath.Base(path)))
		if m == nil {
			return nil
		}
		series, err := ReadPrices(f, path)
		if err != nil {
			return err
		}
		prices.Set(m[1], m[2], series)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prices, nil
}

// eachFile calls fn with every regular file of dir, in name order.
func eachFile(dir string, fn func(path string, f *os.File) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("cannot read directory %q: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("cannot open %q: %w", path, err)
		}
		if err := fn(path, f); err != nil {
			f.Close()
			return err
		}
		f.Close()
	}
	return nil
}
