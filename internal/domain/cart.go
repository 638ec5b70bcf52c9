package domain

// CartLine is one product entry in the cart. Display fields are
// denormalized from the product at the time it was added.
type CartLine struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity"`
}

// Cart is an immutable snapshot of a session's cart state.
type Cart struct {
	Lines       []CartLine `json:"lines"`
	TotalAmount float64    `json:"totalAmount"`
	Visible     bool       `json:"visible"`
}
