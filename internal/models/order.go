package models

// OrderLine is the wire form of a cart line in an order request: only the
// product reference and quantity travel to the server.
type OrderLine struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Customer identifies who placed an order.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is a placed order as assigned by the server.
type Order struct {
	ID        string      `json:"id"`
	Cart      []OrderLine `json:"cart"`
	Customer  Customer    `json:"customer"`
	CreatedAt string      `json:"createdAt"`
}
