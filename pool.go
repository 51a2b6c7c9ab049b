package cryptax

// Pool is a Section 104 holding of one asset: the total quantity held and its
// pooled acquisition cost. Acquisitions blend into a weighted-average cost;
// disposals extract cost proportionally.
//
// Pool is a plain value type so that assignment snapshots it.
type Pool struct {
	Quantity Quantity
	Cost     Money
}

// Add blends an acquisition into the pool.
func (p *Pool) Add(quantity Quantity, cost Money) {
	p.Quantity = p.Quantity.Add(quantity)
	p.Cost = p.Cost.Add(cost)
}

// Dispose removes a quantity from the pool and returns the proportional part
// of the pooled cost. Disposing more than the pool holds is an error: the
// returned InsufficientPoolError carries the quantities, the caller fills in
// asset and date.
func (p *Pool) Dispose(quantity Quantity) (Money, error) {
	if quantity.GreaterThan(p.Quantity) {
		return Money{}, &InsufficientPoolError{Requested: quantity, Held: p.Quantity}
	}
	cost := p.Cost.Mul(quantity).Div(p.Quantity)
	p.Quantity = p.Quantity.Sub(quantity)
	p.Cost = p.Cost.Sub(cost)
	return cost, nil
}
