package httpapi

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"shopManagement/internal/auth"
	"shopManagement/internal/config"
	"shopManagement/service"
)

// New builds the Fiber app with all routes wired. Catalog reads are public;
// everything else behind /api/v1 requires a bearer token.
func New(cfg *config.Config, users *service.UserService, catalog *service.CatalogService, cart *service.CartService) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TTLMinutes)*time.Minute)
	authHandler := NewAuthHandler(users, issuer)
	productHandler := NewProductHandler(catalog, users)
	cartHandler := NewCartHandler(cart)
	requireAuth := auth.NewMiddleware(cfg.Auth.JWTSecret)

	v1 := app.Group("/api/v1")

	v1.Get("/health", func(c *fiber.Ctx) error {
		return respond(c, http.StatusOK, fiber.Map{"status": "ok"})
	})

	a := v1.Group("/auth")
	a.Post("/register", authHandler.Register)
	a.Post("/login", authHandler.Login)
	a.Post("/password", requireAuth, authHandler.ChangePassword)

	v1.Post("/users/:id/promote", requireAuth, authHandler.Promote)

	v1.Get("/products", productHandler.List)
	v1.Get("/products/:id", productHandler.Get)
	v1.Post("/products", requireAuth, productHandler.Create)
	v1.Put("/products/:id", requireAuth, productHandler.Update)
	v1.Delete("/products/:id", requireAuth, productHandler.Delete)

	v1.Post("/cart/items", requireAuth, cartHandler.AddItem)
	v1.Get("/cart", requireAuth, cartHandler.View)
	v1.Post("/orders", requireAuth, cartHandler.PlaceOrder)
	v1.Get("/orders", requireAuth, cartHandler.ListOrders)
	v1.Get("/orders/:id", requireAuth, cartHandler.GetOrder)

	return app
}
