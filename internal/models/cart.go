package models

// CartItem is a single cart line. Quantity is always >= 1; a line that would
// drop to zero or below is removed instead. At most one line exists per
// product id.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// CartTotal returns the sum of price x quantity over all lines.
func CartTotal(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// CartItemCount returns the sum of quantities over all lines, used for the
// cart badge.
func CartItemCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
