package cryptax

// Leg is one side of a gain transaction: an asset and an amount of it.
// An empty asset means the side is absent.
type Leg struct {
	Asset  string
	Amount Quantity
}

// IsZero reports whether the leg is absent.
func (l Leg) IsZero() bool { return l.Asset == "" }

// GainTx is a single disposal/acquisition event: a trade, a purchase, a gift.
// At least one of Sell and Buy is populated. A trade between two tracked
// assets populates both and counts as a disposal of one and an acquisition of
// the other.
type GainTx struct {
	Sell Leg
	Buy  Leg
}

// IncomeTx is a single income event for an asset. A positive amount is
// revenue, a negative one an expense.
type IncomeTx struct {
	Asset  string
	Amount Quantity
	Note   string
}
