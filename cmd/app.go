// Package cmd implements the CLI application computing UK tax figures for
// cryptocurrency activity.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cryptax "github.com/MatthewLM/gocryptax"
	"github.com/MatthewLM/gocryptax/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&gainCmd{}, "capital gains")
	c.Register(&disposalsCmd{}, "capital gains")
	c.Register(&incomeCmd{}, "income")
	c.Register(&txsCmd{}, "income")
	c.Register(&topicCmd{}, "documentation")
}

// The CSV data lives in fixed subdirectories of the data directory.
const (
	gainsDir  = "gains"
	incomeDir = "income"
	pricesDir = "prices"
)

const errNotice = "\nRun 'cryptax topic formats' for a description of the expected files\n"

const disclaimer = `Do not rely on this software for accuracy. Anything provided by this software
does not constitute advice in any form. The software is provided "as is",
without warranty of any kind. Run 'cryptax topic readme' for details.`

// baseCmd carries the flags and loaders every calculation command shares.
type baseCmd struct {
	dir      string
	currency string
}

func (b *baseCmd) setFlags(f *flag.FlagSet) {
	f.StringVar(&b.dir, "d", "./", "root directory of the CSV data")
	f.StringVar(&b.currency, "c", "gbp", "reporting currency to present calculations in")
}

// period parses the two positional arguments <start> <end>.
func (b *baseCmd) period(f *flag.FlagSet) (date.Range, error) {
	args := f.Args()
	if len(args) != 2 {
		return date.Range{}, fmt.Errorf("want two arguments <start> <end>, got %d", len(args))
	}
	start, err := date.Parse(args[0])
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := date.Parse(args[1])
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid end date: %w", err)
	}
	return date.NewRange(start, end), nil
}

func (b *baseCmd) reportingAsset() string { return strings.ToLower(b.currency) }

// loadPrices loads the price table from the prices directory.
func (b *baseCmd) loadPrices() (*cryptax.PriceTable, error) {
	prices, err := cryptax.LoadPrices(b.reportingAsset(), filepath.Join(b.dir, pricesDir))
	if err != nil {
		return nil, fmt.Errorf("you need to provide prices in the %s directory: %w",
			filepath.Join(b.dir, pricesDir), err)
	}
	return prices, nil
}

// loadGainsSystem loads prices and gain transactions.
func (b *baseCmd) loadGainsSystem() (*cryptax.AccountingSystem, error) {
	prices, err := b.loadPrices()
	if err != nil {
		return nil, err
	}
	gains, err := cryptax.LoadGains(filepath.Join(b.dir, gainsDir))
	if err != nil {
		return nil, fmt.Errorf("you need to provide capital gains information in the %s directory: %w",
			filepath.Join(b.dir, gainsDir), err)
	}
	return cryptax.NewAccountingSystem(gains, nil, prices), nil
}

// loadIncomeSystem loads prices and income transactions.
func (b *baseCmd) loadIncomeSystem() (*cryptax.AccountingSystem, error) {
	prices, err := b.loadPrices()
	if err != nil {
		return nil, err
	}
	income, err := cryptax.LoadIncome(filepath.Join(b.dir, incomeDir))
	if err != nil {
		return nil, fmt.Errorf("you need to provide income information in the %s directory: %w",
			filepath.Join(b.dir, incomeDir), err)
	}
	return cryptax.NewAccountingSystem(nil, income, prices), nil
}

// fail renders a calculation error as a precise user message and returns the
// failure status.
func (b *baseCmd) fail(err error) subcommands.ExitStatus {
	var noData *cryptax.NoPriceDataError
	var noDate *cryptax.NoPriceForDateError

	switch {
	case errors.As(err, &noData):
		fmt.Fprintf(os.Stderr, "\nCannot find a %s price for %s. Please provide a %s_%s.csv file in the prices directory\n",
			b.reportingAsset(), noData.Asset, noData.Asset, b.reportingAsset())
	case errors.As(err, &noDate):
		fmt.Fprintf(os.Stderr, "\nCannot find a %s price for %s\n", noDate.Asset, noDate.Date.Pretty())
	default:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
	}
	fmt.Fprint(os.Stderr, errNotice)
	return subcommands.ExitFailure
}
