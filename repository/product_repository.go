package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shopManagement/models"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product and returns it with its generated ID.
func (r *ProductRepository) Create(ctx context.Context, name, description string, price float64) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO products (name, description, price) VALUES (?, ?, ?)`,
		name, description, price)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Product{ID: id, Name: name, Description: description, Price: price}, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, `SELECT id, name, description, price FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Update overwrites the mutable fields of a product. Returns sql.ErrNoRows
// when the id does not exist.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	if p == nil {
		return errors.New("product is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE products SET name = ?, description = ?, price = ? WHERE id = ?`,
		p.Name, p.Description, p.Price, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a product. Cart rows referencing it go with it, in one
// transaction, so the foreign key stays satisfied. Placed order lines keep
// their snapshot and are not touched. Returns sql.ErrNoRows for a missing id.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE product_id = ?`, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		_ = tx.Rollback()
		return sql.ErrNoRows
	}
	return tx.Commit()
}

// List returns a snapshot of the whole catalog ordered by id ascending.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description, price FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of catalog rows.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM products`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
