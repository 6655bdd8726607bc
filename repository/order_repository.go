package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shopManagement/internal/errs"
	"shopManagement/models"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateFromCart converts the user's cart into an order in a single
// transaction: snapshot each line's current product price into an order line,
// insert the order row, delete the cart rows. Any failure rolls the whole
// operation back. An empty cart yields ErrEmptyCart and no writes.
func (r *OrderRepository) CreateFromCart(ctx context.Context, userID int64, reference string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, `
SELECT ci.product_id, ci.quantity, p.price
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.user_id = ?
ORDER BY ci.product_id`, userID)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	var lines []models.OrderLine
	for rows.Next() {
		var l models.OrderLine
		if err := rows.Scan(&l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			rows.Close()
			_ = tx.Rollback()
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		_ = tx.Rollback()
		return nil, err
	}
	rows.Close()

	if len(lines) == 0 {
		_ = tx.Rollback()
		return nil, errs.ErrEmptyCart
	}

	res, err := tx.ExecContext(ctx, `INSERT INTO orders (reference, user_id) VALUES (?, ?)`, reference, userID)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	for i := range lines {
		lines[i].OrderID = orderID
		if _, err := tx.ExecContext(ctx, `INSERT INTO order_lines (order_id, product_id, quantity, unit_price) VALUES (?, ?, ?, ?)`,
			orderID, lines[i].ProductID, lines[i].Quantity, lines[i].UnitPrice); err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ?`, userID); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	o, err := r.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("created order not found: id=%d", orderID)
	}
	return o, nil
}

// GetByID fetches an order with its lines.
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var o models.Order
	err := r.db.QueryRowContext(ctx, `SELECT id, reference, user_id, created_at FROM orders WHERE id = ?`, id).
		Scan(&o.ID, &o.Reference, &o.UserID, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if o.Lines, err = r.linesFor(ctx, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByUserID returns the user's orders newest first, lines included.
func (r *OrderRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, reference, user_id, created_at FROM orders WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Reference, &o.UserID, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Lines, err = r.linesFor(ctx, out[i].ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *OrderRepository) linesFor(ctx context.Context, orderID int64) ([]models.OrderLine, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT order_id, product_id, quantity, unit_price FROM order_lines WHERE order_id = ? ORDER BY product_id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.OrderLine
	for rows.Next() {
		var l models.OrderLine
		if err := rows.Scan(&l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
