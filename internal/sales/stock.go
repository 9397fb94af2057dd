package sales

// StockDelta computes the net quantity adjustment per product when a
// sale transitions from previous to next. Either side may be nil: a nil
// previous models a creation, a nil next a deletion. Quantities from
// the previous sale are returned to stock, quantities from the next are
// taken from it, and products appearing on both sides cancel out.
func StockDelta(previous, next *Sale) map[string]int {
	deltas := make(map[string]int)
	if previous != nil {
		for _, item := range previous.Items {
			deltas[item.ProductID] += item.Quantity
		}
	}
	if next != nil {
		for _, item := range next.Items {
			deltas[item.ProductID] -= item.Quantity
		}
	}
	for id, delta := range deltas {
		if delta == 0 {
			delete(deltas, id)
		}
	}
	return deltas
}
