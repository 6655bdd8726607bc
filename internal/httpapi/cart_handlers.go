package httpapi

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"shopManagement/internal/auth"
	"shopManagement/service"
)

// CartHandler serves the authenticated user's cart and orders.
type CartHandler struct {
	cart *service.CartService
}

func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	p, err := auth.FromCtx(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing principal")
	}
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.cart.AddToCart(c.UserContext(), p.UserID, req.ProductID, req.Quantity); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// View handles GET /cart.
func (h *CartHandler) View(c *fiber.Ctx) error {
	p, err := auth.FromCtx(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing principal")
	}
	lines, err := h.cart.ViewCart(c.UserContext(), p.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, lines)
}

// PlaceOrder handles POST /orders.
func (h *CartHandler) PlaceOrder(c *fiber.Ctx) error {
	p, err := auth.FromCtx(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing principal")
	}
	o, err := h.cart.PlaceOrder(c.UserContext(), p.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, o)
}

// ListOrders handles GET /orders.
func (h *CartHandler) ListOrders(c *fiber.Ctx) error {
	p, err := auth.FromCtx(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing principal")
	}
	orders, err := h.cart.ListOrders(c.UserContext(), p.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id.
func (h *CartHandler) GetOrder(c *fiber.Ctx) error {
	p, err := auth.FromCtx(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, "missing principal")
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid order id")
	}
	o, err := h.cart.GetOrder(c.UserContext(), p.UserID, int64(id))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, o)
}
