package repository

import (
	"context"
	"errors"
	"testing"

	"shopManagement/internal/db"
	"shopManagement/internal/errs"
)

func TestOrderRepository_CreateFromCart(t *testing.T) {
	d, err := db.Open("file:orderrepo?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	ctx := context.Background()
	users := NewUserRepository(d)
	products := NewProductRepository(d)
	carts := NewCartRepository(d)
	orders := NewOrderRepository(d)

	u, err := users.Create(ctx, "alice", "digest", false)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	widget, err := products.Create(ctx, "Widget", "A widget", 9.99)
	if err != nil {
		t.Fatalf("create widget: %v", err)
	}
	gadget, err := products.Create(ctx, "Gadget", "", 2.50)
	if err != nil {
		t.Fatalf("create gadget: %v", err)
	}
	if err := carts.AddQuantity(ctx, u.ID, widget.ID, 3); err != nil {
		t.Fatalf("add widget: %v", err)
	}
	if err := carts.AddQuantity(ctx, u.ID, gadget.ID, 1); err != nil {
		t.Fatalf("add gadget: %v", err)
	}

	o, err := orders.CreateFromCart(ctx, u.ID, "ref-1")
	if err != nil {
		t.Fatalf("create from cart: %v", err)
	}
	if o.ID == 0 || o.UserID != u.ID || o.Reference != "ref-1" || o.CreatedAt == "" {
		t.Fatalf("unexpected order: %+v", o)
	}
	if len(o.Lines) != 2 {
		t.Fatalf("expected 2 order lines, got %d", len(o.Lines))
	}
	if o.Lines[0].ProductID != widget.ID || o.Lines[0].Quantity != 3 || o.Lines[0].UnitPrice != 9.99 {
		t.Fatalf("widget line wrong: %+v", o.Lines[0])
	}
	if o.Lines[1].ProductID != gadget.ID || o.Lines[1].UnitPrice != 2.50 {
		t.Fatalf("gadget line wrong: %+v", o.Lines[1])
	}

	// Cart is cleared by the same transaction
	lines, err := carts.LinesForUser(ctx, u.ID)
	if err != nil || len(lines) != 0 {
		t.Fatalf("expected cart cleared after order, got %v %+v", err, lines)
	}

	// Later catalog edits must not rewrite history
	widget.Price = 99.99
	if err := products.Update(ctx, widget); err != nil {
		t.Fatalf("reprice: %v", err)
	}
	again, err := orders.GetByID(ctx, o.ID)
	if err != nil || again == nil {
		t.Fatalf("get order: %v", err)
	}
	if again.Lines[0].UnitPrice != 9.99 {
		t.Fatalf("snapshot price changed: %+v", again.Lines[0])
	}
}

func TestOrderRepository_EmptyCartCreatesNothing(t *testing.T) {
	d, err := db.Open("file:orderrepoempty?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	ctx := context.Background()
	users := NewUserRepository(d)
	orders := NewOrderRepository(d)

	u, err := users.Create(ctx, "bob", "digest", false)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := orders.CreateFromCart(ctx, u.ID, "ref-x"); !errors.Is(err, errs.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	var n int
	if err := d.QueryRow(`SELECT COUNT(1) FROM orders`).Scan(&n); err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no order rows, got %d", n)
	}
}

func TestOrderRepository_ListByUserID(t *testing.T) {
	d, err := db.Open("file:orderrepolist?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	ctx := context.Background()
	users := NewUserRepository(d)
	products := NewProductRepository(d)
	carts := NewCartRepository(d)
	orders := NewOrderRepository(d)

	u, err := users.Create(ctx, "carol", "digest", false)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	p, err := products.Create(ctx, "Widget", "", 1)
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	for i, ref := range []string{"ref-a", "ref-b"} {
		if err := carts.AddQuantity(ctx, u.ID, p.ID, int64(i+1)); err != nil {
			t.Fatalf("add: %v", err)
		}
		if _, err := orders.CreateFromCart(ctx, u.ID, ref); err != nil {
			t.Fatalf("order %s: %v", ref, err)
		}
	}

	got, err := orders.ListByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(got))
	}
	// Newest first
	if got[0].Reference != "ref-b" || got[1].Reference != "ref-a" {
		t.Fatalf("unexpected order ordering: %+v", got)
	}
	if len(got[0].Lines) != 1 || got[0].Lines[0].Quantity != 2 {
		t.Fatalf("lines not attached: %+v", got[0])
	}
}
