package models

// Order represents a placed order with a one-to-many relation to OrderLine.
// Orders are immutable once created.
type Order struct {
	ID        int64  `db:"id" json:"id"`
	Reference string `db:"reference" json:"reference"`
	UserID    int64  `db:"user_id" json:"user_id"`
	CreatedAt string `db:"created_at" json:"created_at"`

	Lines []OrderLine `json:"lines,omitempty"`
}

// OrderLine is one product entry of an order. UnitPrice is the product price
// captured at placement time, so later catalog edits never alter history.
type OrderLine struct {
	OrderID   int64   `db:"order_id" json:"order_id"`
	ProductID int64   `db:"product_id" json:"product_id"`
	Quantity  int64   `db:"quantity" json:"quantity"`
	UnitPrice float64 `db:"unit_price" json:"unit_price"`
}
