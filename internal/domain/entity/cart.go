package entity

// CartItem is a single line in a cart ledger. Price is in integer minor
// units. Quantity is always positive; zero-quantity lines are removed, never
// retained.
type CartItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// Ledger is the cart aggregate: an ordered sequence of line items mutated
// strictly by call sequence. It carries no locking of its own; callers
// serialize access.
type Ledger struct {
	Items []CartItem `json:"items"`
}

// Add appends item, or when a line with the same product id already exists,
// increments that line's quantity by the incoming quantity. Items with a
// non-positive quantity are ignored.
func (l *Ledger) Add(item CartItem) {
	if item.Quantity <= 0 {
		return
	}

	for i := range l.Items {
		if l.Items[i].ProductID == item.ProductID {
			l.Items[i].Quantity += item.Quantity

			return
		}
	}

	l.Items = append(l.Items, item)
}

// Remove deletes the line for productID entirely, regardless of quantity.
func (l *Ledger) Remove(productID string) {
	for i := range l.Items {
		if l.Items[i].ProductID == productID {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)

			return
		}
	}
}

// SetQuantity clamps quantity to a minimum of zero and applies it to the
// line for productID. A clamped result of zero removes the line.
func (l *Ledger) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		l.Remove(productID)

		return
	}

	for i := range l.Items {
		if l.Items[i].ProductID == productID {
			l.Items[i].Quantity = quantity

			return
		}
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.Items = nil
}

// TotalItems returns the sum of line quantities.
func (l *Ledger) TotalItems() int {
	total := 0
	for i := range l.Items {
		total += l.Items[i].Quantity
	}

	return total
}

// TotalPrice returns the sum of price times quantity across all lines, in
// integer minor units.
func (l *Ledger) TotalPrice() int64 {
	var total int64
	for i := range l.Items {
		total += l.Items[i].Price * int64(l.Items[i].Quantity)
	}

	return total
}
