package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"shopManagement/internal/auth"
	"shopManagement/internal/config"
	"shopManagement/internal/testutil"
	"shopManagement/repository"
	"shopManagement/service"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T, name string) (*fiber.App, *repository.UserRepository) {
	t.Helper()
	d := testutil.OpenInMemoryDB(t, name)
	users := repository.NewUserRepository(d)
	products := repository.NewProductRepository(d)
	carts := repository.NewCartRepository(d)
	orders := repository.NewOrderRepository(d)

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = testSecret
	cfg.Auth.TTLMinutes = 60

	app := New(cfg,
		service.NewUserService(users),
		service.NewCatalogService(products),
		service.NewCartService(products, carts, orders),
	)
	return app, users
}

func doJSON(t *testing.T, app *fiber.App, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	var got map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&got)
	return resp, got
}

func login(t *testing.T, app *fiber.App, username, pw string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{"username": username, "password": pw})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", username, resp.StatusCode)
	}
	tok, _ := body["token"].(string)
	if tok == "" {
		t.Fatalf("login %s: no token in %v", username, body)
	}
	return tok
}

func TestAPI_RegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t, "api1")

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{"username": "alice", "password": "pw1"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status %d body %v", resp.StatusCode, body)
	}
	if body["username"] != "alice" || body["is_admin"] != false {
		t.Fatalf("unexpected register body: %v", body)
	}

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{"username": "alice", "password": "pw2"})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register: status %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{"username": "alice", "password": "wrong"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login: status %d", resp.StatusCode)
	}
	resp2, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{"username": "ghost", "password": "pw"})
	if resp2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unknown-user login: status %d", resp2.StatusCode)
	}

	login(t, app, "alice", "pw1")
}

func TestAPI_CatalogGating(t *testing.T) {
	app, users := newTestApp(t, "api2")

	doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{"username": "alice", "password": "pw1"})
	doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{"username": "bob", "password": "pw2"})
	bob, err := users.GetByUsername(context.Background(), "bob")
	if err != nil || bob == nil {
		t.Fatalf("load bob: %v", err)
	}
	if err := users.SetAdmin(context.Background(), bob.ID, true); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	aliceTok := login(t, app, "alice", "pw1")
	bobTok := login(t, app, "bob", "pw2")

	// Unauthenticated mutation is rejected before the handler
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/products", "", fiber.Map{"name": "Widget", "price": 9.99})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous create: status %d", resp.StatusCode)
	}
	// Authenticated non-admin is refused by the service
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/products", aliceTok, fiber.Map{"name": "Widget", "price": 9.99})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("non-admin create: status %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/products", bobTok, fiber.Map{"name": "Widget", "description": "A widget", "price": 9.99})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("admin create: status %d body %v", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/products", bobTok, fiber.Map{"name": "", "price": 1.0})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid product: status %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, http.MethodPut, "/api/v1/products/999", bobTok, fiber.Map{"name": "X", "price": 1.0})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("edit missing: status %d", resp.StatusCode)
	}

	// Reads stay public
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	listResp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("public list: %v", err)
	}
	if listResp.StatusCode != http.StatusOK {
		t.Fatalf("public list: status %d", listResp.StatusCode)
	}
}

func TestAPI_RejectsForgedToken(t *testing.T) {
	app, _ := newTestApp(t, "api4")

	forged := testutil.BearerToken(t, "wrong-secret", auth.Principal{UserID: 1, Username: "alice"})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("forged token: status %d", resp.StatusCode)
	}
}

func TestAPI_CartAndOrderFlow(t *testing.T) {
	app, users := newTestApp(t, "api3")
	ctx := context.Background()

	doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{"username": "alice", "password": "pw1"})
	doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{"username": "bob", "password": "pw2"})
	bob, _ := users.GetByUsername(ctx, "bob")
	if err := users.SetAdmin(ctx, bob.ID, true); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	aliceTok := login(t, app, "alice", "pw1")
	bobTok := login(t, app, "bob", "pw2")

	// Ordering an empty cart is a taxonomy failure, not a crash
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/orders", aliceTok, nil)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("empty-cart order: status %d", resp.StatusCode)
	}

	resp, productBody := doJSON(t, app, http.MethodPost, "/api/v1/products", bobTok, fiber.Map{"name": "Widget", "description": "A widget", "price": 9.99})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create product: status %d", resp.StatusCode)
	}
	productID := int64(productBody["id"].(float64))

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/cart/items", aliceTok, fiber.Map{"product_id": productID, "quantity": 3})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("add to cart: status %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/cart/items", aliceTok, fiber.Map{"product_id": productID, "quantity": 0})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("zero quantity: status %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/cart/items", aliceTok, fiber.Map{"product_id": int64(999), "quantity": 1})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown product: status %d", resp.StatusCode)
	}

	resp, orderBody := doJSON(t, app, http.MethodPost, "/api/v1/orders", aliceTok, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("place order: status %d body %v", resp.StatusCode, orderBody)
	}
	lines, _ := orderBody["lines"].([]any)
	if len(lines) != 1 {
		t.Fatalf("expected 1 order line, got %v", orderBody)
	}
	line := lines[0].(map[string]any)
	if line["quantity"].(float64) != 3 || line["unit_price"].(float64) != 9.99 {
		t.Fatalf("unexpected line: %v", line)
	}

	// Cart is empty after placement
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer "+aliceTok)
	cartResp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("view cart: %v", err)
	}
	if cartResp.StatusCode != http.StatusOK {
		t.Fatalf("view cart: status %d", cartResp.StatusCode)
	}
	var cart []any
	if err := json.NewDecoder(cartResp.Body).Decode(&cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(cart) != 0 {
		t.Fatalf("cart not cleared: %v", cart)
	}
}
