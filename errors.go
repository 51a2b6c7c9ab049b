package cryptax

import (
	"fmt"
	"strings"

	"github.com/MatthewLM/gocryptax/date"
)

// The calculation aborts on the first error; every error carries enough
// context (asset, date) for the caller to render a precise message.

// NoPriceDataError reports that no price series exists at all for an asset.
type NoPriceDataError struct {
	Asset string
}

func (e *NoPriceDataError) Error() string {
	return fmt.Sprintf("no price data for asset %q", e.Asset)
}

// NoPriceForDateError reports that an asset has a price series, but no entry
// at or before the requested date.
type NoPriceForDateError struct {
	Asset string
	Date  date.Date
}

func (e *NoPriceForDateError) Error() string {
	return fmt.Sprintf("no %q price on or before %s", e.Asset, e.Date.Pretty())
}

// PriceCycleError reports a cycle in the quoted-in chain of price series.
type PriceCycleError struct {
	Chain []string // assets visited, first repeated asset last
}

func (e *PriceCycleError) Error() string {
	return fmt.Sprintf("price chain loops: %s", strings.Join(e.Chain, " -> "))
}

// InsufficientPoolError reports a disposal of more of an asset than its
// Section 104 pool holds. It indicates malformed or incomplete input history.
type InsufficientPoolError struct {
	Asset     string
	Date      date.Date
	Requested Quantity
	Held      Quantity
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("%s (%s): disposing %s but only %s held",
		e.Date.Pretty(), e.Asset, e.Requested, e.Held)
}
