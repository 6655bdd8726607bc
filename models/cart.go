package models

// CartItem is one row of a user's cart. Identity is the (user_id, product_id)
// pair; a user never has two rows for the same product.
type CartItem struct {
	UserID    int64 `db:"user_id" json:"user_id"`
	ProductID int64 `db:"product_id" json:"product_id"`
	Quantity  int64 `db:"quantity" json:"quantity"`
}

// CartLine is a cart item joined against the current product row, as returned
// by view-cart.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}
